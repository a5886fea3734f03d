// nonet - a constraint-propagation Sudoku solver and puzzle generator.
// Distributed under the GNU General Public License v2.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridseer/nonet/storage"
)

var solveSave bool

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve the grid on stdin",
		Long: `Read a grid from stdin, solve it by elimination with
backtracking, and print the solution.

Examples:
  nonet solve < puzzle.txt
  nonet solve --numeric < puzzle.txt
  nonet solve --save < puzzle.txt`,
		RunE: runSolve,
	}
	solveCmd.Flags().BoolVar(&solveSave, "save", false, "archive the solution")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	g, err := loadStdin()
	if err != nil {
		return err
	}
	if err := g.Solve(); err != nil {
		return err
	}
	if solveSave {
		if _, _, err := storage.Connect(); err != nil {
			return err
		}
		defer storage.Close()
		id, err := storage.SaveGrid(g)
		if err != nil {
			return fmt.Errorf("Couldn't archive solution: %v", err)
		}
		fmt.Printf("saved %s\n", id)
	}
	printGrid(g)
	return nil
}
