package bench

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Gotman08/labellisation/grid"
	"github.com/Gotman08/labellisation/label"
)

// ErrInvalidIterations indicates a non-positive iteration count.
var ErrInvalidIterations = errors.New("bench: iterations must be positive")

// Result holds the timing statistics of repeated labeling runs over one
// grid/algorithm/connectivity triple. Times are wall-clock milliseconds per
// run; the core guarantees determinism, so runs are directly comparable.
type Result struct {
	Algorithm    label.Method
	Connectivity grid.Connectivity
	Width        int
	Height       int
	Iterations   int
	Times        []float64 // per-run wall-clock ms
	MeanMs       float64
	StdDevMs     float64 // population standard deviation
	MinMs        float64
	MaxMs        float64
	Components   int
}

// Run labels g `iterations` times with the given algorithm and connectivity,
// timing each call, and returns the aggregated statistics. The input grid is
// read-only throughout; every run allocates its own label grid.
// Complexity: iterations × cost of one labeling call.
func Run(g *grid.Grid, method label.Method, conn grid.Connectivity, iterations int) (*Result, error) {
	if iterations <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidIterations, iterations)
	}

	times := make([]float64, 0, iterations)
	var components int
	for i := 0; i < iterations; i++ {
		start := time.Now()
		lg, err := label.Label(g, method, conn)
		if err != nil {
			return nil, err
		}
		times = append(times, float64(time.Since(start).Nanoseconds())/1e6)
		if i == 0 {
			components = lg.CountLabels()
		}
	}

	res := &Result{
		Algorithm:    method,
		Connectivity: conn,
		Width:        g.Width,
		Height:       g.Height,
		Iterations:   iterations,
		Times:        times,
		Components:   components,
	}
	res.MeanMs = mean(times)
	res.StdDevMs = stddev(times, res.MeanMs)
	res.MinMs, res.MaxMs = minMax(times)

	return res, nil
}

// RunAll benchmarks all four algorithms over the same grid and connectivity,
// in Method declaration order.
func RunAll(g *grid.Grid, conn grid.Connectivity, iterations int) ([]*Result, error) {
	results := make([]*Result, 0, 4)
	for _, m := range label.Methods() {
		res, err := Run(g, m, conn, iterations)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, nil
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}

func stddev(xs []float64, avg float64) float64 {
	var variance float64
	for _, x := range xs {
		d := x - avg
		variance += d * d
	}
	variance /= float64(len(xs))

	return math.Sqrt(variance)
}

func minMax(xs []float64) (min, max float64) {
	min, max = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}

	return min, max
}
