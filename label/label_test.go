package label_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gotman08/labellisation/grid"
	"github.com/Gotman08/labellisation/label"
)

// mustGrid builds a binarized grid from rows of '0'/'1' characters,
// '1' mapping to foreground (255).
func mustGrid(t *testing.T, rows []string) *grid.Grid {
	t.Helper()
	data := make([][]uint8, len(rows))
	for r, row := range rows {
		data[r] = make([]uint8, len(row))
		for c, ch := range row {
			if ch == '1' {
				data[r][c] = 255
			}
		}
	}
	g, err := grid.FromRows(data)
	require.NoError(t, err)

	return g
}

// randomGrid builds a deterministic pseudo-random binary grid with roughly
// the given foreground density.
func randomGrid(t *testing.T, w, h int, density float64, seed int64) *grid.Grid {
	t.Helper()
	g, err := grid.New(w, h)
	require.NoError(t, err)
	rnd := rand.New(rand.NewSource(seed))
	data := g.Data()
	for i := range data {
		if rnd.Float64() < density {
			data[i] = 255
		}
	}

	return g
}

// normalize relabels lg densely in first-seen raster order, erasing each
// algorithm's own numbering scheme so partitions compare directly.
func normalize(lg *grid.LabelGrid) []int32 {
	out := make([]int32, lg.Size())
	remap := make(map[int32]int32)
	var next int32 = 1
	for i := 0; i < lg.Size(); i++ {
		l := lg.AtIndex(i)
		if l == 0 {
			continue
		}
		nl, ok := remap[l]
		if !ok {
			nl = next
			next++
			remap[l] = nl
		}
		out[i] = nl
	}

	return out
}

// raw copies the label values of lg into a flat slice.
func raw(lg *grid.LabelGrid) []int32 {
	out := make([]int32, lg.Size())
	for i := range out {
		out[i] = lg.AtIndex(i)
	}

	return out
}

// runAll labels g with all four methods, failing the test on any error.
func runAll(t *testing.T, g *grid.Grid, conn grid.Connectivity) map[label.Method]*grid.LabelGrid {
	t.Helper()
	results := make(map[label.Method]*grid.LabelGrid, 4)
	for _, m := range label.Methods() {
		lg, err := label.Label(g, m, conn)
		require.NoError(t, err, "method %s", m)
		results[m] = lg
	}

	return results
}

// TestLabel_Validation covers dispatch-level input rejection.
func TestLabel_Validation(t *testing.T) {
	g := mustGrid(t, []string{"10", "01"})

	_, err := label.Label(nil, label.MethodPrim, grid.Conn4)
	assert.ErrorIs(t, err, label.ErrNilGrid)

	_, err = label.Label(g, label.MethodPrim, grid.Connectivity(6))
	assert.ErrorIs(t, err, grid.ErrInvalidConnectivity)

	_, err = label.Label(g, label.Method(42), grid.Conn4)
	assert.ErrorIs(t, err, label.ErrUnknownMethod)
}

// TestParseMethod_RoundTrip: every method parses from its own name, and
// unknown selectors are rejected.
func TestParseMethod_RoundTrip(t *testing.T) {
	for _, m := range label.Methods() {
		parsed, err := label.ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
	_, err := label.ParseMethod("dijkstra")
	assert.ErrorIs(t, err, label.ErrUnknownMethod)
	assert.Equal(t, "unknown", label.Method(42).String())
}

// TestScenario_SinglePixel: a lone foreground pixel in a 3×3 grid is one
// component for every algorithm and connectivity.
func TestScenario_SinglePixel(t *testing.T) {
	g := mustGrid(t, []string{
		"000",
		"010",
		"000",
	})
	for _, conn := range []grid.Connectivity{grid.Conn4, grid.Conn8} {
		for m, lg := range runAll(t, g, conn) {
			assert.Equal(t, 1, lg.CountLabels(), "method %s, conn %d", m, conn)
			assert.Positive(t, lg.At(1, 1), "method %s, conn %d", m, conn)
		}
	}
}

// TestScenario_DiagonalPair: two diagonally adjacent pixels are two
// components under Conn4 and one under Conn8.
func TestScenario_DiagonalPair(t *testing.T) {
	g := mustGrid(t, []string{
		"10",
		"01",
	})
	for m, lg := range runAll(t, g, grid.Conn4) {
		assert.Equal(t, 2, lg.CountLabels(), "method %s under Conn4", m)
		assert.NotEqual(t, lg.At(0, 0), lg.At(1, 1), "method %s under Conn4", m)
	}
	for m, lg := range runAll(t, g, grid.Conn8) {
		assert.Equal(t, 1, lg.CountLabels(), "method %s under Conn8", m)
		assert.Equal(t, lg.At(0, 0), lg.At(1, 1), "method %s under Conn8", m)
	}
}

// TestScenario_FullForeground: a 5×5 all-foreground grid is exactly one
// component regardless of connectivity.
func TestScenario_FullForeground(t *testing.T) {
	g := mustGrid(t, []string{
		"11111",
		"11111",
		"11111",
		"11111",
		"11111",
	})
	for _, conn := range []grid.Connectivity{grid.Conn4, grid.Conn8} {
		for m, lg := range runAll(t, g, conn) {
			assert.Equal(t, 1, lg.CountLabels(), "method %s, conn %d", m, conn)
		}
	}
}

// TestScenario_AllBackground: an empty grid yields zero components and an
// all-zero label grid.
func TestScenario_AllBackground(t *testing.T) {
	g := mustGrid(t, []string{
		"0000",
		"0000",
		"0000",
	})
	for _, conn := range []grid.Connectivity{grid.Conn4, grid.Conn8} {
		for m, lg := range runAll(t, g, conn) {
			assert.Zero(t, lg.CountLabels(), "method %s, conn %d", m, conn)
			for _, l := range raw(lg) {
				assert.Zero(t, l, "method %s, conn %d", m, conn)
			}
		}
	}
}

// TestScenario_TwoBlocks: two horizontally separated 2×2 blocks are two
// components under both connectivities, each block sharing one label.
func TestScenario_TwoBlocks(t *testing.T) {
	g := mustGrid(t, []string{
		"00000000",
		"01100110",
		"01100110",
		"00000000",
	})
	blockA := [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}}
	blockB := [][2]int{{1, 5}, {1, 6}, {2, 5}, {2, 6}}

	for _, conn := range []grid.Connectivity{grid.Conn4, grid.Conn8} {
		for m, lg := range runAll(t, g, conn) {
			assert.Equal(t, 2, lg.CountLabels(), "method %s, conn %d", m, conn)
			la, lb := lg.At(1, 1), lg.At(1, 5)
			assert.NotEqual(t, la, lb, "method %s, conn %d", m, conn)
			for _, p := range blockA {
				assert.Equal(t, la, lg.At(p[0], p[1]), "method %s, conn %d, block A", m, conn)
			}
			for _, p := range blockB {
				assert.Equal(t, lb, lg.At(p[0], p[1]), "method %s, conn %d, block B", m, conn)
			}
		}
	}
}

// TestPartitionEquivalence_Random: on random grids, all four algorithms
// (plus the DFS variant) induce the exact same partition — identical
// normalized label arrays — under both connectivities.
func TestPartitionEquivalence_Random(t *testing.T) {
	cases := []struct {
		w, h    int
		density float64
		seed    int64
	}{
		{16, 16, 0.3, 1},
		{32, 17, 0.5, 2},
		{64, 64, 0.7, 3},
		{7, 51, 0.9, 4},
	}
	for _, tc := range cases {
		g := randomGrid(t, tc.w, tc.h, tc.density, tc.seed)
		for _, conn := range []grid.Connectivity{grid.Conn4, grid.Conn8} {
			results := runAll(t, g, conn)
			reference := normalize(results[label.MethodTwoPass])
			refCount := results[label.MethodTwoPass].CountLabels()

			for m, lg := range results {
				assert.Equal(t, refCount, lg.CountLabels(),
					"%dx%d seed %d conn %d: component count of %s diverges", tc.w, tc.h, tc.seed, conn, m)
				assert.Equal(t, reference, normalize(lg),
					"%dx%d seed %d conn %d: partition of %s diverges", tc.w, tc.h, tc.seed, conn, m)
			}

			dfs := label.PrimDFS(g, conn)
			assert.Equal(t, refCount, dfs.CountLabels())
			assert.Equal(t, reference, normalize(dfs), "PrimDFS partition diverges")
		}
	}
}

// TestCompaction: UnionFind, Kruskal, and Prim emit exactly the labels
// {1,…,K} with no gaps; TwoPass is exempt by design.
func TestCompaction(t *testing.T) {
	g := randomGrid(t, 40, 30, 0.45, 7)
	compacted := []label.Method{label.MethodUnionFind, label.MethodKruskal, label.MethodPrim}

	for _, conn := range []grid.Connectivity{grid.Conn4, grid.Conn8} {
		for _, m := range compacted {
			lg, err := label.Label(g, m, conn)
			require.NoError(t, err)

			k := lg.CountLabels()
			present := make(map[int32]bool)
			for _, l := range raw(lg) {
				if l > 0 {
					present[l] = true
				}
			}
			for want := int32(1); want <= int32(k); want++ {
				assert.True(t, present[want], "method %s conn %d: label %d missing from 1..%d", m, conn, want, k)
			}
			assert.Equal(t, int32(k), lg.MaxLabel(), "method %s conn %d", m, conn)
		}
	}
}

// TestTwoPass_NonCompactedRoots pins the documented quirk: TwoPass resolves
// to canonical-minimum provisional roots and may leave gaps. The left
// U-shape mints labels 1 and 2 which merge into 1, so the lone pixel below
// keeps provisional label 3 and the final label set is {1,3}, not {1,2}.
func TestTwoPass_NonCompactedRoots(t *testing.T) {
	g := mustGrid(t, []string{
		"101",
		"101",
		"111",
		"000",
		"010",
	})
	lg := label.TwoPass(g, grid.Conn4)
	assert.Equal(t, 2, lg.CountLabels())

	present := make(map[int32]bool)
	for _, l := range raw(lg) {
		if l > 0 {
			present[l] = true
		}
	}
	assert.True(t, present[1])
	assert.True(t, present[3], "gap quirk lost: expected surviving root 3")
	assert.False(t, present[2], "provisional label 2 must not survive resolution")

	// The three compacting algorithms emit {1,2} on the same input.
	for _, m := range []label.Method{label.MethodUnionFind, label.MethodKruskal, label.MethodPrim} {
		clg, err := label.Label(g, m, grid.Conn4)
		require.NoError(t, err)
		assert.Equal(t, int32(2), clg.MaxLabel(), "method %s", m)
	}
}

// TestBackgroundFixedPoint: every background source cell stays 0 in every
// algorithm's output.
func TestBackgroundFixedPoint(t *testing.T) {
	g := randomGrid(t, 25, 25, 0.5, 11)
	for _, conn := range []grid.Connectivity{grid.Conn4, grid.Conn8} {
		for m, lg := range runAll(t, g, conn) {
			for r := 0; r < g.Height; r++ {
				for c := 0; c < g.Width; c++ {
					if g.At(r, c) == 0 {
						assert.Zero(t, lg.At(r, c), "method %s conn %d cell (%d,%d)", m, conn, r, c)
					} else {
						assert.Positive(t, lg.At(r, c), "method %s conn %d cell (%d,%d)", m, conn, r, c)
					}
				}
			}
		}
	}
}

// TestDeterminism: repeated invocations yield identical label grids.
func TestDeterminism(t *testing.T) {
	g := randomGrid(t, 33, 29, 0.6, 13)
	for _, conn := range []grid.Connectivity{grid.Conn4, grid.Conn8} {
		for _, m := range label.Methods() {
			first, err := label.Label(g, m, conn)
			require.NoError(t, err)
			second, err := label.Label(g, m, conn)
			require.NoError(t, err)
			assert.Equal(t, raw(first), raw(second), "method %s conn %d", m, conn)
		}
	}
}

// TestConnectivityMonotonicity: 8-connectivity can only merge components,
// never split them, so count(Conn8) ≤ count(Conn4).
func TestConnectivityMonotonicity(t *testing.T) {
	for seed := int64(20); seed < 26; seed++ {
		g := randomGrid(t, 30, 30, 0.4, seed)
		for _, m := range label.Methods() {
			lg4, err := label.Label(g, m, grid.Conn4)
			require.NoError(t, err)
			lg8, err := label.Label(g, m, grid.Conn8)
			require.NoError(t, err)
			assert.LessOrEqual(t, lg8.CountLabels(), lg4.CountLabels(),
				"method %s seed %d", m, seed)
		}
	}
}

// TestCompactedAlgorithms_IdenticalNumbering: UnionFind, Kruskal, and Prim
// all number components by raster discovery order of the first pixel, so
// their raw outputs are byte-identical, not merely equivalent.
func TestCompactedAlgorithms_IdenticalNumbering(t *testing.T) {
	g := randomGrid(t, 48, 37, 0.55, 17)
	for _, conn := range []grid.Connectivity{grid.Conn4, grid.Conn8} {
		uf, err := label.Label(g, label.MethodUnionFind, conn)
		require.NoError(t, err)
		kr, err := label.Label(g, label.MethodKruskal, conn)
		require.NoError(t, err)
		pr, err := label.Label(g, label.MethodPrim, conn)
		require.NoError(t, err)

		assert.Equal(t, raw(uf), raw(kr), "conn %d: Kruskal numbering diverges from UnionFind", conn)
		assert.Equal(t, raw(uf), raw(pr), "conn %d: Prim numbering diverges from UnionFind", conn)
	}
}

// TestSpiral_SingleComponent: a 4-connected spiral exercises long label
// chains in TwoPass (many provisional labels collapsing into one class).
func TestSpiral_SingleComponent(t *testing.T) {
	g := mustGrid(t, []string{
		"1111111",
		"0000001",
		"1111101",
		"1000101",
		"1010101",
		"1011101",
		"1000001",
		"1111111",
	})
	for m, lg := range runAll(t, g, grid.Conn4) {
		if !assert.Equal(t, 1, lg.CountLabels(), "method %s", m) {
			t.Logf("labels:\n%s", dump(lg))
		}
	}
}

func dump(lg *grid.LabelGrid) string {
	s := ""
	for r := 0; r < lg.Height; r++ {
		for c := 0; c < lg.Width; c++ {
			s += fmt.Sprintf("%3d", lg.At(r, c))
		}
		s += "\n"
	}

	return s
}
