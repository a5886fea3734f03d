// nonet - a constraint-propagation Sudoku solver and puzzle generator.
// Distributed under the GNU General Public License v2.

// The nonet command solves, reduces, generates, and serves
// Sudoku puzzles.  Grids travel on stdin and stdout in either
// the 81-digit numeric form or the 13-line ASCII drawing; see
// the puzzle package for the formats.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridseer/nonet/puzzle"
)

var rootCmd = &cobra.Command{
	Use:   "nonet",
	Short: "A Sudoku solver and minimal-puzzle generator",
	Long: `nonet solves Sudoku grids by candidate elimination with
backtracking, generates minimal puzzles by random clue removal,
and can serve both operations over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// numeric selects the 81-digit output form over the drawing.
var numeric bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&numeric, "numeric", false,
		"print grids as 81 digits instead of a drawing")
}

// printGrid writes a grid to stdout in the selected form.
func printGrid(g *puzzle.Grid) {
	if numeric {
		fmt.Println(g.Numeric())
	} else {
		fmt.Print(g.String())
	}
}

// loadStdin reads the input grid for solve and reduce.
func loadStdin() (*puzzle.Grid, error) {
	g, err := puzzle.Load(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("Couldn't read grid: %v", err)
	}
	return g, nil
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, puzzle.Diagnostic)
		log.Printf("nonet: %v", err)
		os.Exit(1)
	}
}
