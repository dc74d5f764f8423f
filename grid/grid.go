package grid

// Grid is a rectangular 8-bit grid stored row-major in a flat slice for
// cache locality. A binarized grid holds exactly 0 (background) or
// 255 (foreground); the labeling algorithms treat any non-zero value as
// foreground, so non-binarized data is accepted but the 0/255 invariant is
// the caller's responsibility.
type Grid struct {
	Width, Height int
	data          []uint8
}

// New allocates a zero-filled Grid of the given dimensions.
// Returns ErrInvalidDimensions if width or height is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Grid{
		Width:  width,
		Height: height,
		data:   make([]uint8, width*height),
	}, nil
}

// FromRows builds a Grid from a non-empty, rectangular 2D slice,
// deep-copying the input to ensure immutability.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func FromRows(rows [][]uint8) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{Width: w, Height: h, data: make([]uint8, w*h)}
	for r := 0; r < h; r++ {
		copy(g.data[r*w:(r+1)*w], rows[r])
	}

	return g, nil
}

// Size returns the total pixel count W×H.
// Complexity: O(1).
func (g *Grid) Size() int { return g.Width * g.Height }

// InBounds reports whether (r,c) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.Height && c >= 0 && c < g.Width
}

// At returns the pixel value at (r,c). Out-of-bounds access panics:
// it indicates a defective neighbor computation, never a runtime condition.
// Complexity: O(1).
func (g *Grid) At(r, c int) uint8 {
	if !g.InBounds(r, c) {
		panic("grid: pixel access out of bounds")
	}

	return g.data[r*g.Width+c]
}

// Set writes the pixel value at (r,c). Panics on out-of-bounds access.
// Complexity: O(1).
func (g *Grid) Set(r, c int, v uint8) {
	if !g.InBounds(r, c) {
		panic("grid: pixel access out of bounds")
	}
	g.data[r*g.Width+c] = v
}

// Fill assigns v to every pixel.
// Complexity: O(W×H).
func (g *Grid) Fill(v uint8) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Index maps (r,c) to its row-major linear index: r*Width + c.
// Complexity: O(1).
func (g *Grid) Index(r, c int) int {
	return r*g.Width + c
}

// Coordinate converts a row-major linear index back to (r,c).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (r, c int) {
	return idx / g.Width, idx % g.Width
}

// Binarize thresholds the grid in place: pixels ≥ threshold become 255,
// all others become 0. After this call the 0/255 invariant holds.
// Complexity: O(W×H).
func (g *Grid) Binarize(threshold uint8) {
	for i, v := range g.data {
		if v >= threshold {
			g.data[i] = 255
		} else {
			g.data[i] = 0
		}
	}
}

// Data exposes the underlying row-major pixel slice for I/O.
// Mutating it mutates the grid.
func (g *Grid) Data() []uint8 { return g.data }
