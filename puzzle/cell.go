// nonet - a constraint-propagation Sudoku solver and puzzle generator.
// Distributed under the GNU General Public License v2.

package puzzle

import (
	"math/bits"
)

/*

Cells

*/

// A Cell is the candidate set of one grid position, encoded as a
// 9-bit mask over the values 1 through 9: bit k (0-indexed) set
// means value k+1 can still be placed in the cell.  Cells are
// plain values; operations on them return new cells rather than
// mutating in place, so two positions can never alias the same
// candidate set.
//
// A cell is in one of three states, by candidate count: fixed
// (exactly one bit set, the cell's determined value), open (more
// than one bit set), or contradicted (no bits set, meaning no
// value can legally be placed there).
type Cell uint16

// Cell constants: the full candidate set of an untouched cell,
// and the empty set of a contradicted one.
const (
	AllCandidates Cell = 0x1ff
	NoCandidates  Cell = 0
)

// CellOf returns the fixed cell holding exactly the given value.
// Values outside 1-9 give a contradicted cell.
func CellOf(value int) Cell {
	return NoCandidates.Add(value)
}

// Contains reports whether the value is still a candidate of the
// cell.  Values outside 1-9 are never contained.
func (c Cell) Contains(value int) bool {
	if value < 1 || value > 9 {
		return false
	}
	return c&(1<<(value-1)) != 0
}

// IsFixed reports whether the cell has exactly one candidate
// left, i.e. holds a determined value.
func (c Cell) IsFixed() bool {
	return bits.OnesCount16(uint16(c)) == 1
}

// Add returns the cell with the given value inserted into its
// candidate set.  Values outside 1-9 leave the cell unchanged.
func (c Cell) Add(value int) Cell {
	if value < 1 || value > 9 {
		return c
	}
	return c | 1<<(value-1)
}

// Next returns the smallest candidate of the cell that is greater
// than previous, or 0 if there is none.  Iterate a cell's
// candidates by starting from previous 0 and feeding each result
// back in.
func (c Cell) Next(previous int) int {
	if previous < 0 {
		previous = 0
	}
	for v := previous + 1; v <= 9; v++ {
		if c.Contains(v) {
			return v
		}
	}
	return 0
}

// Value returns the determined value of a fixed cell, and 0 for
// an open or contradicted cell.
func (c Cell) Value() int {
	if !c.IsFixed() {
		return 0
	}
	return c.Next(0)
}
