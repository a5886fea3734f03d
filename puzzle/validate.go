// nonet - a constraint-propagation Sudoku solver and puzzle generator.
// Distributed under the GNU General Public License v2.

package puzzle

/*

Grid validation

*/

// regionValid scans the rectangle [rowStart,rowEnd) x
// [colStart,colEnd) and fails if any cell is contradicted (empty
// candidate set) or if two fixed cells share a value.  Duplicates
// are tracked with an accumulating OR-mask: a fixed cell whose
// bit is already in the mask is a duplicate.
func (g *Grid) regionValid(rowStart, rowEnd, colStart, colEnd int) bool {
	mask := NoCandidates
	for r := rowStart; r < rowEnd; r++ {
		for c := colStart; c < colEnd; c++ {
			cell := g.At(r, c)
			if cell == NoCandidates {
				return false
			}
			if cell.IsFixed() {
				if cell|mask == mask {
					return false
				}
				mask |= cell
			}
		}
	}
	return true
}

// RowValid reports whether the given row holds no contradicted
// cell and no duplicate fixed value.
func (g *Grid) RowValid(row int) bool {
	return g.regionValid(row, row+1, 0, SideLen)
}

// ColValid reports whether the given column holds no contradicted
// cell and no duplicate fixed value.
func (g *Grid) ColValid(col int) bool {
	return g.regionValid(0, SideLen, col, col+1)
}

// BoxValid reports whether the 3x3 box with the given top-left
// corner holds no contradicted cell and no duplicate fixed value.
func (g *Grid) BoxValid(row, col int) bool {
	return g.regionValid(row, row+BoxLen, col, col+BoxLen)
}

// conflict returns the identity of the first region that fails
// validation, scanning rows, columns, and boxes in that order for
// each index, and whether any region failed at all.
func (g *Grid) conflict() (RegionID, bool) {
	for i := 0; i < SideLen; i++ {
		if !g.RowValid(i) {
			return RegionID{RtypeRow, i + 1}, true
		}
		if !g.ColValid(i) {
			return RegionID{RtypeCol, i + 1}, true
		}
		if !g.BoxValid(i/BoxLen*BoxLen, i%BoxLen*BoxLen) {
			return RegionID{RtypeBox, i + 1}, true
		}
	}
	return RegionID{}, false
}

// Valid reports whether every row, column, and box of the grid is
// free of contradicted cells and duplicate fixed values.
func (g *Grid) Valid() bool {
	_, bad := g.conflict()
	return !bad
}
