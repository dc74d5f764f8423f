// Package label implements connected-component labeling of binary grids
// through four independent algorithms that induce the same partition.
//
// What:
//
//   - TwoPass: raster scan assigning provisional labels, equivalences
//     resolved through an EquivalenceTable, second scan rewrites roots.
//   - UnionFind: direct partition union over pixel indices in a
//     dsu.DisjointSet, then compaction to dense labels.
//   - Kruskal: explicit unit-weight edge list, sorted, endpoints unioned —
//     the minimum-spanning-forest formulation of the same partition.
//   - Prim: breadth-first frontier growth from each component's first
//     pixel in raster order; PrimDFS is the stack-based alternate.
//   - Label dispatches by Method, a closed enum of the four strategies.
//
// Why:
//
//   - The four strategies are classical and deliberately kept separate:
//     comparing their labelings (identical partitions despite different
//     numbering schemes and traversal orders) is the point of the module.
//   - Two union-find variants coexist on purpose. dsu.DisjointSet
//     (rank-based, over pixel indices) optimizes tree height;
//     EquivalenceTable (minimum-wins, over provisional labels) guarantees
//     monotonic label numbering. Their invariants serve different
//     correctness goals and are not unified.
//
// Guarantees:
//
//   - Background fixed point: source 0 cells are 0 in every result.
//   - Equal labels iff same component, under the configured connectivity.
//   - UnionFind, Kruskal, and Prim emit dense labels 1..K in raster
//     discovery order. TwoPass emits canonical-minimum roots, possibly with
//     gaps — an inherited quirk of the classical formulation, preserved.
//   - Determinism: same grid + connectivity ⇒ byte-identical result.
//
// Complexity:
//
//   - TwoPass, UnionFind: O(W×H×α) time, O(W×H) memory.
//   - Kruskal: O(E log E) time, O(W×H + E) memory (the edge list is an
//     avoidable intermediate, kept for parity with the classical algorithm).
//   - Prim/PrimDFS: O(W×H×d) time, O(W×H) memory.
//
// Errors:
//
//   - ErrNilGrid: nil input grid at dispatch.
//   - ErrUnknownMethod: selector outside the four cases.
//   - grid.ErrInvalidConnectivity: connectivity other than 4 or 8.
//
// All labeling is single-threaded and pure: no I/O, no shared state across
// invocations. Running several algorithms concurrently over the same
// immutable grid is safe.
package label
