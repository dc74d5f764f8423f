package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gotman08/labellisation/grid"
	"github.com/Gotman08/labellisation/label"
)

// checkerboard builds a small grid with a predictable component count:
// isolated pixels at even (r+c) under Conn4.
func checkerboard(t *testing.T, n int) *grid.Grid {
	t.Helper()
	g, err := grid.New(n, n)
	require.NoError(t, err)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if (r+c)%2 == 0 {
				g.Set(r, c, 255)
			}
		}
	}

	return g
}

// TestRun_Statistics checks iteration bookkeeping and the aggregate
// invariants min ≤ mean ≤ max, stddev ≥ 0.
func TestRun_Statistics(t *testing.T) {
	g := checkerboard(t, 8)

	res, err := Run(g, label.MethodUnionFind, grid.Conn4, 5)
	require.NoError(t, err)

	assert.Equal(t, label.MethodUnionFind, res.Algorithm)
	assert.Equal(t, grid.Conn4, res.Connectivity)
	assert.Equal(t, 8, res.Width)
	assert.Equal(t, 8, res.Height)
	assert.Equal(t, 5, res.Iterations)
	assert.Len(t, res.Times, 5)
	assert.Equal(t, 32, res.Components, "8×8 checkerboard has 32 isolated pixels under Conn4")

	assert.LessOrEqual(t, res.MinMs, res.MeanMs)
	assert.LessOrEqual(t, res.MeanMs, res.MaxMs)
	assert.GreaterOrEqual(t, res.StdDevMs, 0.0)
	for _, ms := range res.Times {
		assert.GreaterOrEqual(t, ms, 0.0)
	}
}

// TestRun_InvalidIterations rejects non-positive counts.
func TestRun_InvalidIterations(t *testing.T) {
	g := checkerboard(t, 4)
	for _, n := range []int{0, -3} {
		_, err := Run(g, label.MethodPrim, grid.Conn4, n)
		assert.ErrorIs(t, err, ErrInvalidIterations, "iterations %d", n)
	}
}

// TestRun_PropagatesLabelErrors: dispatch validation surfaces unchanged.
func TestRun_PropagatesLabelErrors(t *testing.T) {
	g := checkerboard(t, 4)
	_, err := Run(g, label.Method(99), grid.Conn4, 1)
	assert.ErrorIs(t, err, label.ErrUnknownMethod)

	_, err = Run(nil, label.MethodPrim, grid.Conn4, 1)
	assert.ErrorIs(t, err, label.ErrNilGrid)
}

// TestRunAll_ConsistentComponents: all four algorithms report the same
// component count over the same input — the cross-algorithm contract the
// benchmark relies on for comparability.
func TestRunAll_ConsistentComponents(t *testing.T) {
	g := checkerboard(t, 10)
	for _, conn := range []grid.Connectivity{grid.Conn4, grid.Conn8} {
		results, err := RunAll(g, conn, 2)
		require.NoError(t, err)
		require.Len(t, results, 4)

		want := results[0].Components
		for _, res := range results[1:] {
			assert.Equal(t, want, res.Components,
				"conn %d: %s disagrees with %s", conn, res.Algorithm, results[0].Algorithm)
		}
	}
}

// TestStats_Helpers pins the aggregation math on a known series.
func TestStats_Helpers(t *testing.T) {
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	avg := mean(xs)
	assert.InDelta(t, 5.0, avg, 1e-12)
	assert.InDelta(t, 2.0, stddev(xs, avg), 1e-12, "population stddev of the classic series is exactly 2")

	lo, hi := minMax(xs)
	assert.Equal(t, 2.0, lo)
	assert.Equal(t, 9.0, hi)
}
