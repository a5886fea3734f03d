// nonet - a constraint-propagation Sudoku solver and puzzle generator.
// Distributed under the GNU General Public License v2.

package puzzle

/*

Sudoku grid solver

The solver works in two layers.

The lower layer (Reduce) is pure constraint propagation: for
every row, column, and box, collect the values already fixed in
that region and strip them from the candidate sets of the
region's open cells.  Passes repeat until the grid is fully
determined or a pass makes no change.  Candidate sets only ever
shrink, so the loop terminates.

The upper layer (Solve) is a depth-first search that takes over
when propagation stalls.  It finds the first open cell in
reading order, snapshots the grid, and tries propagation; if
that doesn't finish, it guesses each remaining candidate of the
cell in ascending order, recursing after each guess and
restoring the snapshot after each failure.  Every branch works
on a full copy of the grid state, so a failed search leaves the
input grid exactly as it found it.

*/

// Reduce narrows the grid by repeated region elimination.  It
// returns (true, nil) when the grid became fully determined,
// (false, nil) when a pass made no progress on a still-ambiguous
// grid, and (false, Error) when the grid was or became invalid.
func (g *Grid) Reduce() (bool, error) {
	if !g.Valid() {
		return false, invalidError(g)
	}
	for g.NeedsSolving() {
		changed := false
		for row := 0; row < SideLen; row++ {
			changed = g.eliminateRow(row) || changed
		}
		for col := 0; col < SideLen; col++ {
			changed = g.eliminateCol(col) || changed
		}
		for row := 0; row < SideLen; row += BoxLen {
			for col := 0; col < SideLen; col += BoxLen {
				changed = g.eliminateBox(row, col) || changed
			}
		}
		if !g.Valid() {
			return false, invalidError(g)
		}
		if !changed {
			return false, nil
		}
	}
	return true, nil
}

// Solve fills the grid in place using elimination with
// backtracking.  On success it returns nil and the grid holds a
// complete solution.  On failure it returns an InvalidGridError
// or UnsolvableError and the grid is left unchanged.
func (g *Grid) Solve() error {
	if !g.Valid() {
		return invalidError(g)
	}
	if !g.search() {
		return unsolvableError()
	}
	return nil
}

// search is the recursive body of Solve.  Contract: if a
// solution is reachable by further restricting the grid's open
// cells, search returns true with the grid holding it; otherwise
// it returns false with the grid restored to its entry state.
func (g *Grid) search() bool {
	if !g.Valid() {
		return false
	}

	// find the first open cell in reading order
	target := -1
	for i, c := range *g {
		if !c.IsFixed() {
			target = i
			break
		}
	}
	if target < 0 {
		// every cell fixed and the grid is valid: solved
		return true
	}

	snapshot := *g

	// propagation is cheap, so try it before guessing
	if solved, err := g.Reduce(); err == nil {
		if solved {
			return true
		}
		if g[target].IsFixed() {
			// the target was determined without a guess; restart
			// the cell search on the narrowed grid
			if g.search() {
				return true
			}
			*g = snapshot
			return false
		}
	}

	// guess each candidate the target held before propagation,
	// in ascending order, on a fresh copy of the snapshot
	for v := snapshot[target].Next(0); v != 0; v = snapshot[target].Next(v) {
		*g = snapshot
		g[target] = CellOf(v)
		if g.search() {
			return true
		}
	}
	*g = snapshot
	return false
}
