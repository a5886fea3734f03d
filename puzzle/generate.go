// nonet - a constraint-propagation Sudoku solver and puzzle generator.
// Distributed under the GNU General Public License v2.

package puzzle

import (
	"math/rand"
)

/*

Puzzle generation

A generator turns a fully solved grid into a puzzle by clue
removal: on each round it collects every fixed cell whose
clearing still leaves the grid solvable, picks one of those at
random, clears it for real, and repeats until no cell can be
cleared.  The eligible set is recomputed from scratch after each
removal, since clearing one cell changes which others remain
removable.

The solvability probe is elimination alone, never backtracking.
That is what gives removal its teeth: under the full search a
cleared clue could always be re-derived from the surviving
solution, every cell would stay eligible, and the loop would
only stop at the empty grid.  Elimination makes forced moves
only, so every puzzle the generator keeps has exactly one
completion reachable by its own passes.

*/

// A Generator produces minimal puzzles from solved grids.  The
// embedded randomness source drives only the choice among
// removable cells, so two generators built with the same seed
// make identical removal sequences from identical inputs.
// Generators are not safe for concurrent use; give each worker
// its own.
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator returns a generator whose removal choices are
// driven by the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Solved builds a fully solved grid to feed Minimize.  The grid
// is the canonical box-valid completion with its digits relabeled
// by a random permutation, so different generator states give
// different solutions.
func (gen *Generator) Solved() *Grid {
	perm := gen.rnd.Perm(SideLen)
	var g Grid
	for row := 0; row < SideLen; row++ {
		for col := 0; col < SideLen; col++ {
			base := (row*BoxLen + row/BoxLen + col) % SideLen
			g[row*SideLen+col] = CellOf(perm[base] + 1)
		}
	}
	return &g
}

// Minimize removes clues from the grid in place until no further
// clue can be removed with elimination still able to finish the
// puzzle.  The grid must
// be fully solved and valid on entry; on return it is a puzzle
// whose remaining clues all carry weight.  Gives an Error if the
// input grid is not valid or not fully determined.
func (gen *Generator) Minimize(g *Grid) error {
	if !g.Valid() {
		return invalidError(g)
	}
	if g.NeedsSolving() {
		return Error{Kind: InternalError, Values: ErrorData{"generation requires a fully solved grid"}}
	}
	for {
		removable := g.removableCells()
		if len(removable) == 0 {
			return nil
		}
		g[removable[gen.rnd.Intn(len(removable))]] = AllCandidates
	}
}

// removableCells returns the indices of every fixed cell that can
// be cleared with elimination alone still finishing the grid.
// Each cell is tested on an independent scratch copy, so the
// receiver is never disturbed.
func (g *Grid) removableCells() []int {
	var removable []int
	for i, c := range *g {
		if !c.IsFixed() {
			continue
		}
		scratch := *g
		scratch[i] = AllCandidates
		if solved, err := scratch.Reduce(); err == nil && solved {
			removable = append(removable, i)
		}
	}
	return removable
}
