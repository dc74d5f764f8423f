package label

import (
	"github.com/Gotman08/labellisation/dsu"
	"github.com/Gotman08/labellisation/grid"
)

// UnionFind labels connected components by partition refinement: one raster
// pass unions every foreground pixel with its preceding foreground
// neighbors in a disjoint-set forest over pixel indices, a second pass maps
// each surviving representative to a compact label.
//
// Labels are gap-free (1..K), numbered in discovery order of each
// component's first pixel in raster order.
//
// Time: O(W×H×α). Memory: O(W×H) for the forest and the label grid.
func UnionFind(g *grid.Grid, conn grid.Connectivity) *grid.LabelGrid {
	labels, _ := grid.NewLabelGrid(g.Width, g.Height) // cannot fail: g carries validated dimensions
	forest := dsu.New(g.Size())
	offsets := grid.PrecedingOffsets(conn)

	// Phase 1: union adjacent foreground pixels. Only preceding neighbors
	// are examined, so every adjacent pair is unioned exactly once.
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if g.At(r, c) == 0 {
				continue
			}
			cur := g.Index(r, c)
			for _, d := range offsets {
				nr, nc := r+d[0], c+d[1]
				if g.InBounds(nr, nc) && g.At(nr, nc) != 0 {
					forest.Union(cur, g.Index(nr, nc))
				}
			}
		}
	}

	// Phase 2: compact representatives to dense labels in raster discovery
	// order. Background cells stay 0 without consulting the forest.
	compact(g, labels, forest)

	return labels
}

// compact rewrites each foreground pixel's forest representative to a dense
// label 1..K, assigned in the order representatives are first seen during a
// row-major scan. Shared by UnionFind and Kruskal, which both finish with a
// forest over pixel indices.
func compact(g *grid.Grid, labels *grid.LabelGrid, forest *dsu.DisjointSet) {
	rootToLabel := make([]int32, g.Size())
	var next int32 = 1

	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if g.At(r, c) == 0 {
				continue
			}
			root := forest.Find(g.Index(r, c))
			if rootToLabel[root] == 0 {
				rootToLabel[root] = next
				next++
			}
			labels.Set(r, c, rootToLabel[root])
		}
	}
}
