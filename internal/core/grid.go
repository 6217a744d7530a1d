package core

// Grid stores a 2D grid of cell values in row-major order. Neighbour scans
// clip against the grid extent; there is no wrapping.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid[T any](w, h int) *Grid[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns the value at (x, y). Callers must check bounds first.
func (g *Grid[T]) At(x, y int) T { return g.data[y*g.W+x] }

// Ptr returns a pointer to the value at (x, y) for in-place updates.
func (g *Grid[T]) Ptr(x, y int) *T { return &g.data[y*g.W+x] }

// Set stores v at (x, y).
func (g *Grid[T]) Set(x, y int, v T) { g.data[y*g.W+x] = v }

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clear resets every cell to the zero value.
func (g *Grid[T]) Clear() {
	var zero T
	g.Fill(zero)
}

// CopyFrom overwrites g with the contents of src. Both grids must share
// dimensions.
func (g *Grid[T]) CopyFrom(src *Grid[T]) {
	copy(g.data, src.data)
}

// Moore calls fn for every in-bounds 8-connected neighbour of (x, y), with
// dx in the outer loop and dy in the inner loop.
func (g *Grid[T]) Moore(x, y int, fn func(nx, ny int)) {
	for dx := -1; dx <= 1; dx++ {
		nx := x + dx
		if nx < 0 || nx >= g.W {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			ny := y + dy
			if ny < 0 || ny >= g.H {
				continue
			}
			fn(nx, ny)
		}
	}
}

// CountMoore returns how many in-bounds 8-connected neighbours of (x, y)
// satisfy pred.
func (g *Grid[T]) CountMoore(x, y int, pred func(T) bool) int {
	n := 0
	g.Moore(x, y, func(nx, ny int) {
		if pred(g.data[ny*g.W+nx]) {
			n++
		}
	})
	return n
}
