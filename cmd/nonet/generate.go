// nonet - a constraint-propagation Sudoku solver and puzzle generator.
// Distributed under the GNU General Public License v2.

package main

import (
	"fmt"
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/gridseer/nonet/puzzle"
	"github.com/gridseer/nonet/storage"
)

var (
	genSeed    int64
	genCount   int
	genWorkers int
	genStdin   bool
	genSave    bool
)

func init() {
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate minimal puzzles",
		Long: `Generate puzzles by removing clues from a solved grid
until no clue can be removed with the puzzle still solvable by
candidate elimination alone.  By
default the solved grid is built internally; with --stdin it is
read from stdin instead.

A fixed --seed reproduces the same puzzles; puzzle i of a batch
always uses seed+i, whatever the worker count.

Examples:
  nonet generate
  nonet generate --seed 7 --count 20 --workers 4
  nonet generate --stdin < solution.txt`,
		RunE: runGenerate,
	}
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "base seed (0 means time-based)")
	generateCmd.Flags().IntVarP(&genCount, "count", "n", 1, "number of puzzles to generate")
	generateCmd.Flags().IntVar(&genWorkers, "workers", runtime.NumCPU(), "generation goroutines")
	generateCmd.Flags().BoolVar(&genStdin, "stdin", false, "minimize the solved grid on stdin")
	generateCmd.Flags().BoolVar(&genSave, "save", false, "archive the generated puzzles")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if genCount < 1 {
		return fmt.Errorf("count must be at least 1, got %d", genCount)
	}
	if genStdin && genCount != 1 {
		return fmt.Errorf("--stdin generates exactly one puzzle")
	}
	if genSeed == 0 {
		genSeed = time.Now().UnixNano()
		log.Printf("Using seed %d.", genSeed)
	}

	var solution *puzzle.Grid
	if genStdin {
		g, err := loadStdin()
		if err != nil {
			return err
		}
		solution = g
	}

	grids, err := generateBatch(solution)
	if err != nil {
		return err
	}

	if genSave {
		if _, _, err := storage.Connect(); err != nil {
			return err
		}
		defer storage.Close()
	}
	for i, g := range grids {
		if genSave {
			id, err := storage.SaveGrid(g)
			if err != nil {
				return fmt.Errorf("Couldn't archive puzzle %d: %v", i+1, err)
			}
			fmt.Printf("saved %s\n", id)
		}
		printGrid(g)
	}
	return nil
}

// generateBatch minimizes genCount puzzles across genWorkers
// goroutines.  Each puzzle gets its own generator seeded with
// genSeed plus its index, so the batch content does not depend
// on how the work is spread.  A non-nil solution is the starting
// grid for every puzzle; otherwise each generator builds its own.
func generateBatch(solution *puzzle.Grid) ([]*puzzle.Grid, error) {
	workers := genWorkers
	if workers < 1 {
		workers = 1
	}
	if workers > genCount {
		workers = genCount
	}

	grids := make([]*puzzle.Grid, genCount)
	errs := make([]error, genCount)
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				gen := puzzle.NewGenerator(genSeed + int64(i))
				var g *puzzle.Grid
				if solution != nil {
					copied := *solution
					g = &copied
				} else {
					g = gen.Solved()
				}
				if err := gen.Minimize(g); err != nil {
					errs[i] = err
					continue
				}
				grids[i] = g
			}
		}()
	}
	for i := 0; i < genCount; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return grids, nil
}
