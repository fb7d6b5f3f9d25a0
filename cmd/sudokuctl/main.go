// Command sudokuctl generates and solves sudoku puzzles from the terminal.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "sudokuctl",
	Short:        "Sudoku puzzle toolbox",
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
