package grid

// LabelGrid is a rectangular grid of 32-bit signed labels, the result of one
// labeling invocation. 0 marks background; positive values identify
// connected components. It is exclusively owned by the algorithm that builds
// it until returned, then exclusively owned by the caller.
type LabelGrid struct {
	Width, Height int
	labels        []int32
}

// NewLabelGrid allocates a zero-filled LabelGrid of the given dimensions.
// Returns ErrInvalidDimensions if width or height is not positive.
// Complexity: O(W×H) time and memory.
func NewLabelGrid(width, height int) (*LabelGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &LabelGrid{
		Width:  width,
		Height: height,
		labels: make([]int32, width*height),
	}, nil
}

// Size returns the total cell count W×H.
// Complexity: O(1).
func (lg *LabelGrid) Size() int { return lg.Width * lg.Height }

// InBounds reports whether (r,c) lies within the grid boundaries.
// Complexity: O(1).
func (lg *LabelGrid) InBounds(r, c int) bool {
	return r >= 0 && r < lg.Height && c >= 0 && c < lg.Width
}

// At returns the label at (r,c). Panics on out-of-bounds access.
// Complexity: O(1).
func (lg *LabelGrid) At(r, c int) int32 {
	if !lg.InBounds(r, c) {
		panic("grid: label access out of bounds")
	}

	return lg.labels[r*lg.Width+c]
}

// Set writes the label at (r,c). Panics on out-of-bounds access.
// Complexity: O(1).
func (lg *LabelGrid) Set(r, c int, v int32) {
	if !lg.InBounds(r, c) {
		panic("grid: label access out of bounds")
	}
	lg.labels[r*lg.Width+c] = v
}

// AtIndex returns the label at a row-major linear index.
// Complexity: O(1).
func (lg *LabelGrid) AtIndex(idx int) int32 { return lg.labels[idx] }

// SetIndex writes the label at a row-major linear index.
// Complexity: O(1).
func (lg *LabelGrid) SetIndex(idx int, v int32) { lg.labels[idx] = v }

// CountLabels returns the number of distinct positive labels present,
// i.e. the connected-component count.
// Complexity: O(W×H) time, O(K) memory (K = distinct labels).
func (lg *LabelGrid) CountLabels() int {
	seen := make(map[int32]struct{})
	for _, l := range lg.labels {
		if l > 0 {
			seen[l] = struct{}{}
		}
	}

	return len(seen)
}

// MaxLabel returns the largest label value present, 0 for an all-background
// grid. Complexity: O(W×H).
func (lg *LabelGrid) MaxLabel() int32 {
	var max int32
	for _, l := range lg.labels {
		if l > max {
			max = l
		}
	}

	return max
}

// ToVisualization remaps labels onto the 8-bit range for persistence as a
// grayscale image: background stays 0, label l becomes l*254/max + 1, so
// every component lands in [1,255] and distinct components stay visually
// separated for small label counts. The mapping is cosmetic: it never
// changes component membership.
// Complexity: O(W×H) time and memory.
func (lg *LabelGrid) ToVisualization() *Grid {
	out := &Grid{Width: lg.Width, Height: lg.Height, data: make([]uint8, lg.Width*lg.Height)}
	max := lg.MaxLabel()
	if max == 0 {
		return out // all background
	}
	for i, l := range lg.labels {
		if l > 0 {
			out.data[i] = uint8(int64(l)*254/int64(max) + 1)
		}
	}

	return out
}
