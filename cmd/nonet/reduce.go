// nonet - a constraint-propagation Sudoku solver and puzzle generator.
// Distributed under the GNU General Public License v2.

package main

import (
	"log"

	"github.com/spf13/cobra"
)

func init() {
	reduceCmd := &cobra.Command{
		Use:   "reduce",
		Short: "Narrow the grid on stdin by elimination only",
		Long: `Read a grid from stdin and run candidate elimination
without any guessing, then print whatever the passes determined.
Open cells print as '.'.

Examples:
  nonet reduce < puzzle.txt`,
		RunE: runReduce,
	}
	rootCmd.AddCommand(reduceCmd)
}

func runReduce(cmd *cobra.Command, args []string) error {
	g, err := loadStdin()
	if err != nil {
		return err
	}
	solved, err := g.Reduce()
	if err != nil {
		return err
	}
	if !solved {
		log.Printf("Elimination stalled with %d cells fixed.", g.FixedCount())
	}
	printGrid(g)
	return nil
}
