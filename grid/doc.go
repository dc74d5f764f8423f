// Package grid provides the binary input grid and the integer label grid
// shared by every connected-component labeling algorithm, together with the
// 4/8-connectivity neighbor rules.
//
// What:
//
//   - Grid wraps a rectangular row-major []uint8: 0 = background, non-zero
//     (canonically 255) = foreground. Binarize enforces the 0/255 invariant.
//   - LabelGrid holds the int32 result of one labeling call: 0 = background,
//     positive values = component identifiers. CountLabels reports the
//     component count; ToVisualization remaps labels onto [1,255] for
//     persistence as a grayscale image.
//   - Connectivity (Conn4 or Conn8) selects orthogonal or orthogonal+diagonal
//     adjacency. Offsets returns all neighbor offsets; PrecedingOffsets
//     returns only those a row-major raster scan has already visited.
//
// Why:
//
//   - A single shared data model keeps the four labeling algorithms directly
//     comparable: same input, same coordinate/index bijection, same result
//     type.
//   - Precomputed, fixed-order offset tables make "smallest label wins"
//     tie-breaking deterministic across runs.
//
// Complexity:
//
//   - Constructors, Fill, Binarize, CountLabels, ToVisualization: O(W×H).
//   - At/Set/Index/Coordinate/InBounds, offset lookups: O(1).
//
// Errors:
//
//   - ErrInvalidDimensions: non-positive width or height.
//   - ErrEmptyGrid: 2D input has no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrInvalidConnectivity: connectivity other than 4 or 8.
//
// Out-of-bounds pixel access panics: it signals a defective neighbor
// computation (a programming error), never an expected runtime condition.
package grid
