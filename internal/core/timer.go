package core

import "time"

// defaultMaxCatchUp bounds how many ticks a single frame may run after a
// stall before the backlog is dropped.
const defaultMaxCatchUp = 240

// FixedStep converts elapsed wall time into a number of simulation ticks at
// a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	maxCatchUp  int
	paused      bool
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps float64) *FixedStep {
	fs := &FixedStep{maxCatchUp: defaultMaxCatchUp}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps float64) {
	if tps <= 0 {
		tps = 1
	}
	f.step = time.Duration(float64(time.Second) / tps)
	if f.step <= 0 {
		f.step = time.Nanosecond
	}
}

// Step reports the wall-clock duration of one tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// SetPaused stops or resumes accumulation. Pausing discards any backlog so
// resuming does not burst.
func (f *FixedStep) SetPaused(paused bool) {
	f.paused = paused
	f.accumulator = 0
	f.last = time.Time{}
}

// Paused reports whether accumulation is stopped.
func (f *FixedStep) Paused() bool { return f.paused }

// Reset drops the backlog and the last frame timestamp.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// Due adds delta to the accumulator and returns how many whole ticks are
// owed. The count never exceeds the catch-up cap.
func (f *FixedStep) Due(delta time.Duration) int {
	if f.paused {
		f.accumulator = 0
		return 0
	}
	if delta > 0 {
		f.accumulator += delta
	}
	n := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		n++
		if n >= f.maxCatchUp {
			f.accumulator = 0
			break
		}
	}
	return n
}

// Frame measures the time since the previous call and returns the ticks owed.
func (f *FixedStep) Frame() int {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	return f.Due(delta)
}
