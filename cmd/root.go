package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "labellisation",
	Short: "Connected-component labeling of binary images",
	Long: `labellisation labels the connected components of a binarized image
using one of four algorithms (two_pass, union_find, kruskal, prim) under
4- or 8-connectivity, and writes the labeled result as a grayscale image.`,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
