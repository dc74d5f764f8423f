package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gotman08/labellisation/bench"
	"github.com/Gotman08/labellisation/grid"
	"github.com/Gotman08/labellisation/imageio"
	"github.com/Gotman08/labellisation/label"
)

var (
	benchInput        string
	benchAlgorithm    string
	benchConnectivity int
	benchThreshold    uint8
	benchIterations   int
	benchDB           string
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark labeling algorithms on an image",
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := grid.ParseConnectivity(benchConnectivity)
		if err != nil {
			return err
		}

		g, err := imageio.Open(benchInput)
		if err != nil {
			return fmt.Errorf("loading %s: %w", benchInput, err)
		}
		g.Binarize(benchThreshold)
		cmd.Printf("Benchmarking %s (%dx%d), connectivity %d, %d iterations\n",
			benchInput, g.Width, g.Height, int(conn), benchIterations)

		var results []*bench.Result
		if benchAlgorithm == "all" {
			if results, err = bench.RunAll(g, conn, benchIterations); err != nil {
				return err
			}
		} else {
			method, err := label.ParseMethod(benchAlgorithm)
			if err != nil {
				return err
			}
			res, err := bench.Run(g, method, conn, benchIterations)
			if err != nil {
				return err
			}
			results = append(results, res)
		}

		cmd.Printf("%-12s %10s %10s %10s %10s %12s\n",
			"algorithm", "mean ms", "stddev", "min ms", "max ms", "components")
		for _, res := range results {
			cmd.Printf("%-12s %10.3f %10.3f %10.3f %10.3f %12d\n",
				res.Algorithm, res.MeanMs, res.StdDevMs, res.MinMs, res.MaxMs, res.Components)
		}

		if benchDB == "" {
			return nil
		}
		store, err := bench.OpenStore(benchDB)
		if err != nil {
			return err
		}
		defer store.Close()
		for _, res := range results {
			if err := store.SaveResult(res); err != nil {
				return err
			}
		}
		cmd.Printf("Saved %d result(s) to %s\n", len(results), benchDB)

		return nil
	},
}

func init() {
	benchCmd.Flags().StringVarP(&benchInput, "input", "i", "", "input image")
	benchCmd.Flags().StringVarP(&benchAlgorithm, "algorithm", "a", "all", "two_pass | union_find | kruskal | prim | all")
	benchCmd.Flags().IntVarP(&benchConnectivity, "connectivity", "c", 4, "pixel connectivity: 4 or 8")
	benchCmd.Flags().Uint8VarP(&benchThreshold, "threshold", "t", 128, "binarization threshold")
	benchCmd.Flags().IntVarP(&benchIterations, "iterations", "n", 10, "timed runs per algorithm")
	benchCmd.Flags().StringVar(&benchDB, "db", "", "optional sqlite database to persist results")
	_ = benchCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(benchCmd)
}
