// Package grid defines core types, connectivity rules, and sentinel errors
// for the grid subpackage of github.com/Gotman08/labellisation.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and configuration.
var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("grid: width and height must be positive")
	// ErrEmptyGrid indicates the input 2D slice has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrInvalidConnectivity indicates a connectivity value other than 4 or 8.
	ErrInvalidConnectivity = errors.New("grid: connectivity must be 4 or 8")
)

// Connectivity selects neighbor adjacency: orthogonal (Conn4) or including
// diagonals (Conn8). The numeric values match the conventional names so a
// Connectivity prints as the number a caller passed in.
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, S, W, E.
	Conn4 Connectivity = 4
	// Conn8 uses 8-directional connectivity: N, S, W, E plus the four diagonals.
	Conn8 Connectivity = 8
)

// Valid reports whether c is one of the two supported connectivity modes.
// Complexity: O(1).
func (c Connectivity) Valid() bool {
	return c == Conn4 || c == Conn8
}

// ParseConnectivity validates a caller-supplied integer and converts it to a
// Connectivity. Returns ErrInvalidConnectivity for any value other than 4 or 8.
func ParseConnectivity(v int) (Connectivity, error) {
	c := Connectivity(v)
	if !c.Valid() {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidConnectivity, v)
	}

	return c, nil
}

// Neighbor offsets as (dr, dc) pairs. Order is fixed and documented because
// downstream "smallest label wins" tie-breaks rely on a deterministic
// iteration order.
var (
	// offsets4: N, S, W, E.
	offsets4 = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	// offsets8: N, S, W, E, NW, NE, SW, SE.
	offsets8 = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	// preceding4: N, W — the 4-neighbors already visited by a row-major scan.
	preceding4 = [][2]int{{-1, 0}, {0, -1}}
	// preceding8: NW, N, NE, W — the 8-neighbors already visited by a row-major scan.
	preceding8 = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}}
)

// Offsets returns all neighbor offsets for the given connectivity, in the
// fixed order N, S, W, E (Conn4) or N, S, W, E, NW, NE, SW, SE (Conn8).
// The returned slice is shared and must not be mutated.
// Complexity: O(1).
func Offsets(c Connectivity) [][2]int {
	if c == Conn8 {
		return offsets8
	}

	return offsets4
}

// PrecedingOffsets returns only the neighbor offsets that a row-major raster
// scan (increasing row, then increasing column) has already visited:
// {N, W} for Conn4, {NW, N, NE, W} for Conn8. Raster algorithms use this set
// to examine each adjacent pair exactly once.
// The returned slice is shared and must not be mutated.
// Complexity: O(1).
func PrecedingOffsets(c Connectivity) [][2]int {
	if c == Conn8 {
		return preceding8
	}

	return preceding4
}

// Neighbors returns the in-bounds neighbor coordinates of (r,c) in a
// width×height grid, in the fixed Offsets order. Out-of-bounds candidates
// are silently omitted, never an error. The hot loops iterate the offset
// tables directly to avoid this allocation; Neighbors is the convenience
// form of the same rule.
// Complexity: O(d), d = 4 or 8.
func Neighbors(r, c, width, height int, conn Connectivity) [][2]int {
	return applyOffsets(r, c, width, height, Offsets(conn))
}

// PrecedingNeighbors returns the in-bounds neighbors of (r,c) that a
// row-major raster scan has already visited, in the fixed PrecedingOffsets
// order. Out-of-bounds candidates are silently omitted.
// Complexity: O(d).
func PrecedingNeighbors(r, c, width, height int, conn Connectivity) [][2]int {
	return applyOffsets(r, c, width, height, PrecedingOffsets(conn))
}

func applyOffsets(r, c, width, height int, offsets [][2]int) [][2]int {
	out := make([][2]int, 0, len(offsets))
	for _, d := range offsets {
		nr, nc := r+d[0], c+d[1]
		if nr >= 0 && nr < height && nc >= 0 && nc < width {
			out = append(out, [2]int{nr, nc})
		}
	}

	return out
}
