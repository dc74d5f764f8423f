// Command labellisation labels the connected components of binary images
// with four interchangeable algorithms and benchmarks them against each
// other. See the label and bench subcommands.
package main

import "github.com/Gotman08/labellisation/cmd"

func main() {
	cmd.Execute()
}
