// nonet - a constraint-propagation Sudoku solver and puzzle generator.
// Distributed under the GNU General Public License v2.

package main

import (
	"reflect"
	"testing"

	"github.com/gridseer/nonet/puzzle"
)

// The batch content must depend only on the base seed, never on
// how many workers carry the load.
func TestGenerateBatchDeterminism(t *testing.T) {
	batch := func(workers int) []*puzzle.Grid {
		genSeed, genCount, genWorkers = 17, 4, workers
		grids, err := generateBatch(nil)
		if err != nil {
			t.Fatalf("generateBatch with %d workers failed: %v", workers, err)
		}
		return grids
	}
	serial := batch(1)
	parallel := batch(4)
	oversubscribed := batch(16)
	for i := range serial {
		if !reflect.DeepEqual(serial[i], parallel[i]) ||
			!reflect.DeepEqual(serial[i], oversubscribed[i]) {
			t.Errorf("puzzle %d differs across worker counts", i)
		}
	}
}

func TestGenerateBatchResults(t *testing.T) {
	genSeed, genCount, genWorkers = 3, 2, 2
	grids, err := generateBatch(nil)
	if err != nil {
		t.Fatalf("generateBatch failed: %v", err)
	}
	for i, g := range grids {
		if g == nil {
			t.Fatalf("puzzle %d is missing", i)
		}
		if !g.NeedsSolving() {
			t.Errorf("puzzle %d has no open cells", i)
		}
		copied := *g
		if e := copied.Solve(); e != nil {
			t.Errorf("puzzle %d is unsolvable: %v", i, e)
		}
	}
}

// A supplied solution grid is the starting point for every
// puzzle in the batch, and must not be disturbed by it.
func TestGenerateBatchFromSolution(t *testing.T) {
	gen := puzzle.NewGenerator(99)
	solution := gen.Solved()
	before := *solution
	genSeed, genCount, genWorkers = 5, 3, 2
	grids, err := generateBatch(solution)
	if err != nil {
		t.Fatalf("generateBatch failed: %v", err)
	}
	if *solution != before {
		t.Errorf("generateBatch changed the input solution")
	}
	for i, g := range grids {
		for j, c := range *g {
			if c.IsFixed() && c != before[j] {
				t.Errorf("puzzle %d clue %d disagrees with the solution", i, j)
			}
		}
	}
}
