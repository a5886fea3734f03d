// nonet - a constraint-propagation Sudoku solver and puzzle generator.
// Distributed under the GNU General Public License v2.

package puzzle

/*

Grids

*/

// Grid geometry.  Only the standard 9x9 Sudoku geometry is
// supported: 9 rows, 9 columns, and 9 non-overlapping 3x3 boxes.
const (
	SideLen   = 9
	BoxLen    = 3
	CellCount = SideLen * SideLen
)

// A Grid is a 9x9 Sudoku grid: 81 cells in row-major order.  A
// grid is a plain array value, so assignment produces a full
// independent copy; the solver and generator rely on this for
// their snapshot-and-restore discipline.  A grid is owned by the
// caller driving one load/solve/generate/print cycle and is
// mutated in place by elimination and backtracking.
type Grid [CellCount]Cell

// NewGrid builds a grid from 81 values in row-major order, where
// 0 means an open cell (all candidates allowed) and 1-9 a fixed
// clue.  Gives an Error if the slice has the wrong length or a
// value is out of range.
func NewGrid(values []int) (*Grid, error) {
	if len(values) != CellCount {
		return nil, loadError("grid needs %d values, got %d", CellCount, len(values))
	}
	var g Grid
	for i, v := range values {
		switch {
		case v == 0:
			g[i] = AllCandidates
		case v >= 1 && v <= 9:
			g[i] = CellOf(v)
		default:
			return nil, loadError("value %d at cell %d is out of range", v, i)
		}
	}
	return &g, nil
}

// Values returns the determined value of every cell in row-major
// order, with 0 for every cell that is not fixed.  The result
// does not share storage with the grid.
func (g *Grid) Values() []int {
	vs := make([]int, CellCount)
	for i, c := range *g {
		vs[i] = c.Value()
	}
	return vs
}

// At returns the cell in the given row and column (both
// 0-indexed).
func (g *Grid) At(row, col int) Cell {
	return g[row*SideLen+col]
}

// FixedCount returns the number of fixed cells, i.e. the clue
// count of a puzzle grid.
func (g *Grid) FixedCount() (count int) {
	for _, c := range *g {
		if c.IsFixed() {
			count++
		}
	}
	return
}

// NeedsSolving reports whether any cell is still undetermined.
func (g *Grid) NeedsSolving() bool {
	for _, c := range *g {
		if !c.IsFixed() {
			return true
		}
	}
	return false
}

/*

Region elimination

*/

// fixedMask returns the union of the fixed cells' masks in the
// rectangle [rowStart,rowEnd) x [colStart,colEnd).
func (g *Grid) fixedMask(rowStart, rowEnd, colStart, colEnd int) Cell {
	mask := NoCandidates
	for r := rowStart; r < rowEnd; r++ {
		for c := colStart; c < colEnd; c++ {
			if cell := g.At(r, c); cell.IsFixed() {
				mask |= cell
			}
		}
	}
	return mask
}

// eliminate strips the values already fixed inside the rectangle
// from every non-fixed cell of the rectangle, reporting whether
// any cell changed.  Fixed cells are skipped: a fixed cell's own
// value is part of the fixed mask, so masking it would empty it.
func (g *Grid) eliminate(rowStart, rowEnd, colStart, colEnd int) bool {
	changed := false
	allowed := AllCandidates ^ g.fixedMask(rowStart, rowEnd, colStart, colEnd)
	for r := rowStart; r < rowEnd; r++ {
		for c := colStart; c < colEnd; c++ {
			i := r*SideLen + c
			if g[i].IsFixed() {
				continue
			}
			narrowed := g[i] & allowed
			if narrowed != g[i] {
				g[i] = narrowed
				changed = true
			}
		}
	}
	return changed
}

// eliminateRow runs elimination over one row.
func (g *Grid) eliminateRow(row int) bool {
	return g.eliminate(row, row+1, 0, SideLen)
}

// eliminateCol runs elimination over one column.
func (g *Grid) eliminateCol(col int) bool {
	return g.eliminate(0, SideLen, col, col+1)
}

// eliminateBox runs elimination over the 3x3 box whose top-left
// corner is at the given row and column.
func (g *Grid) eliminateBox(row, col int) bool {
	return g.eliminate(row, row+BoxLen, col, col+BoxLen)
}
