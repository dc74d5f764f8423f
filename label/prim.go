package label

import (
	"github.com/Gotman08/labellisation/grid"
)

// coord is a pixel coordinate on the BFS frontier or DFS stack.
type coord struct {
	r, c int
}

// Prim labels connected components by frontier growth: a row-major scan
// finds the first unlabeled foreground pixel of each component, then a
// breadth-first traversal seeded there labels everything reachable before
// the outer scan resumes.
//
// Unlike the raster algorithms, the traversal examines ALL neighbors — its
// result is order-independent. Labels are naturally compacted (1..K in seed
// discovery order) with no separate compaction pass.
//
// Time: O(W×H×d), each pixel enqueued at most once. Memory: O(W×H).
func Prim(g *grid.Grid, conn grid.Connectivity) *grid.LabelGrid {
	labels, _ := grid.NewLabelGrid(g.Width, g.Height) // cannot fail: g carries validated dimensions
	var current int32

	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if g.At(r, c) != 0 && labels.At(r, c) == 0 {
				// New component: grow it from this seed.
				current++
				bfsLabel(g, labels, r, c, current, conn)
			}
		}
	}

	return labels
}

// bfsLabel floods one component from (r0,c0) with a FIFO frontier. Pixels
// are labeled on enqueue, so each enters the frontier at most once; the
// traversal terminates when the frontier empties, with every pixel
// reachable from the seed labeled.
func bfsLabel(g *grid.Grid, labels *grid.LabelGrid, r0, c0 int, l int32, conn grid.Connectivity) {
	offsets := grid.Offsets(conn)
	frontier := []coord{{r0, c0}}
	labels.Set(r0, c0, l)

	for qi := 0; qi < len(frontier); qi++ {
		cur := frontier[qi]
		for _, d := range offsets {
			nr, nc := cur.r+d[0], cur.c+d[1]
			if !g.InBounds(nr, nc) || g.At(nr, nc) == 0 || labels.At(nr, nc) != 0 {
				continue
			}
			labels.Set(nr, nc, l)
			frontier = append(frontier, coord{nr, nc})
		}
	}
}

// PrimDFS is the depth-first variant of Prim: identical termination and
// labeling guarantees, differing only in exploration order. The stack is
// explicit — recursion depth would be bounded only by component size, which
// can exceed any safe call-stack depth. Provided as an alternate strategy;
// Prim (BFS) is the default.
//
// Time: O(W×H×d). Memory: O(W×H).
func PrimDFS(g *grid.Grid, conn grid.Connectivity) *grid.LabelGrid {
	labels, _ := grid.NewLabelGrid(g.Width, g.Height) // cannot fail: g carries validated dimensions
	var current int32

	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if g.At(r, c) != 0 && labels.At(r, c) == 0 {
				current++
				dfsLabel(g, labels, r, c, current, conn)
			}
		}
	}

	return labels
}

// dfsLabel floods one component from (r0,c0) with an explicit LIFO stack.
func dfsLabel(g *grid.Grid, labels *grid.LabelGrid, r0, c0 int, l int32, conn grid.Connectivity) {
	offsets := grid.Offsets(conn)
	stack := []coord{{r0, c0}}
	labels.Set(r0, c0, l)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range offsets {
			nr, nc := cur.r+d[0], cur.c+d[1]
			if !g.InBounds(nr, nc) || g.At(nr, nc) == 0 || labels.At(nr, nc) != 0 {
				continue
			}
			labels.Set(nr, nc, l)
			stack = append(stack, coord{nr, nc})
		}
	}
}
