package app

import "wildgrid/internal/sims/ecosystem"

const defaultHistoryLimit = 520

// CensusHistory keeps the most recent census snapshots of a run, oldest
// first. It is cleared whenever the world is reset.
type CensusHistory struct {
	limit   int
	entries []ecosystem.Census
}

// NewCensusHistory returns a history holding at most limit snapshots.
func NewCensusHistory(limit int) *CensusHistory {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return &CensusHistory{limit: limit}
}

// Record appends c. A census for the same tick as the latest entry replaces
// it instead.
func (h *CensusHistory) Record(c ecosystem.Census) {
	if n := len(h.entries); n > 0 && h.entries[n-1].Ticks == c.Ticks {
		h.entries[n-1] = c
		return
	}
	if len(h.entries) == h.limit {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:len(h.entries)-1]
	}
	h.entries = append(h.entries, c)
}

// Reset drops every snapshot.
func (h *CensusHistory) Reset() { h.entries = h.entries[:0] }

// Len reports the number of stored snapshots.
func (h *CensusHistory) Len() int { return len(h.entries) }

// Latest returns the newest snapshot.
func (h *CensusHistory) Latest() (ecosystem.Census, bool) {
	if len(h.entries) == 0 {
		return ecosystem.Census{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Entries exposes the stored snapshots, oldest first. The slice is reused by
// later calls to Record.
func (h *CensusHistory) Entries() []ecosystem.Census { return h.entries }
