package main

import (
	"fmt"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/vancomm/sudoku-server/internal/sudoku"
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a sudoku grid",
		Long: `Solve a grid given as 81 cells in row-major order, read from a
file or stdin. '.' and '0' denote empty cells; whitespace is ignored.
Prints a solution and reports whether it is the only one.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	var (
		input []byte
		err   error
	)
	if len(args) == 1 {
		input, err = os.ReadFile(args[0])
	} else {
		input, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return err
	}

	grid, err := sudoku.ParseGrid(string(input))
	if err != nil {
		return err
	}

	rnd := rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
	solved, err := sudoku.Solve(grid, rnd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, solved)
	if sudoku.CountSolutions(grid, 2) == 1 {
		fmt.Fprintln(out, "# solution is unique")
	} else {
		fmt.Fprintln(out, "# multiple solutions exist")
	}
	return nil
}
