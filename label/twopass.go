package label

import (
	"github.com/Gotman08/labellisation/grid"
)

// TwoPass labels connected components with the classical raster two-pass
// algorithm: a forward scan assigns provisional labels and records
// equivalences, a second scan rewrites every label to its resolved root.
//
// Sequential scans give this variant the best cache locality of the four
// algorithms. Its output labels are the canonical class minima, NOT
// compacted to 1..K: unlike UnionFind, Kruskal, and Prim, gaps may remain
// where a provisional label did not survive as its own root. Callers
// needing a dense range must post-process (CountLabels and ToVisualization
// are unaffected).
//
// Time: O(W×H×α). Memory: O(W×H) labels + O(L) equivalence table,
// L = provisional label count.
func TwoPass(g *grid.Grid, conn grid.Connectivity) *grid.LabelGrid {
	labels, _ := grid.NewLabelGrid(g.Width, g.Height) // cannot fail: g carries validated dimensions
	equiv := NewEquivalenceTable()

	firstPass(g, labels, equiv, conn)
	secondPass(labels, equiv)

	return labels
}

// firstPass performs the provisional labeling scan. For each foreground
// pixel it collects the labels of already-visited foreground neighbors:
// none → mint a new label; otherwise assign the minimum and record every
// other neighbor label as equivalent to it.
func firstPass(g *grid.Grid, labels *grid.LabelGrid, equiv *EquivalenceTable, conn grid.Connectivity) {
	offsets := grid.PrecedingOffsets(conn)
	// Reused across pixels to avoid per-pixel allocation; 4 slots cover Conn8.
	neighborLabels := make([]int32, 0, 4)

	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if g.At(r, c) == 0 {
				continue // background stays 0
			}

			// Collect labels of preceding foreground neighbors.
			neighborLabels = neighborLabels[:0]
			for _, d := range offsets {
				nr, nc := r+d[0], c+d[1]
				if !g.InBounds(nr, nc) || g.At(nr, nc) == 0 {
					continue
				}
				if l := labels.At(nr, nc); l > 0 {
					neighborLabels = append(neighborLabels, l)
				}
			}

			if len(neighborLabels) == 0 {
				// No labeled neighbor: new provisional label.
				labels.Set(r, c, equiv.NewLabel())
				continue
			}

			// One or more neighbor labels: take the minimum.
			min := neighborLabels[0]
			for _, l := range neighborLabels[1:] {
				if l < min {
					min = l
				}
			}
			labels.Set(r, c, min)

			// Record equivalences for every non-minimum neighbor label.
			for _, l := range neighborLabels {
				if l != min {
					equiv.Union(min, l)
				}
			}
		}
	}
}

// secondPass rewrites every positive label to its resolved root, so all
// pixels of one component carry the same final label.
func secondPass(labels *grid.LabelGrid, equiv *EquivalenceTable) {
	for i, n := 0, labels.Size(); i < n; i++ {
		if l := labels.AtIndex(i); l > 0 {
			labels.SetIndex(i, equiv.Find(l))
		}
	}
}
