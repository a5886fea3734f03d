// nonet - a constraint-propagation Sudoku solver and puzzle generator.
// Distributed under the GNU General Public License v2.

package puzzle

import (
	"testing"
)

func TestValidComplete(t *testing.T) {
	g := mustGrid(t, canonicalCompleteValues)
	if !g.Valid() {
		t.Errorf("TestValidComplete: the canonical solved grid is invalid?")
	}
	for i := 0; i < SideLen; i++ {
		if !g.RowValid(i) {
			t.Errorf("TestValidComplete: row %d reported invalid", i)
		}
		if !g.ColValid(i) {
			t.Errorf("TestValidComplete: column %d reported invalid", i)
		}
	}
	for r := 0; r < SideLen; r += BoxLen {
		for c := 0; c < SideLen; c += BoxLen {
			if !g.BoxValid(r, c) {
				t.Errorf("TestValidComplete: box at (%d,%d) reported invalid", r, c)
			}
		}
	}
}

func TestValidAllOpen(t *testing.T) {
	g := mustGrid(t, allOpenValues)
	if !g.Valid() {
		t.Errorf("TestValidAllOpen: an all-open grid is invalid?")
	}
}

// Two 5s in row 1: the row fails, the grid fails, but the other
// regions of the grid are unaffected.
func TestDuplicateInRow(t *testing.T) {
	g := mustGrid(t, duplicateFivesValues)
	if g.RowValid(0) {
		t.Errorf("TestDuplicateInRow: row 1 with two 5s reported valid")
	}
	if g.Valid() {
		t.Errorf("TestDuplicateInRow: grid with a row conflict reported valid")
	}
	if !g.ColValid(0) || !g.ColValid(4) || !g.BoxValid(0, 0) {
		t.Errorf("TestDuplicateInRow: regions without the conflict reported invalid")
	}
	rid, bad := g.conflict()
	if !bad || rid.Rtype != RtypeRow || rid.Index != 1 {
		t.Errorf("TestDuplicateInRow: conflict gave %v (expected row 1)", rid)
	}
}

func TestDuplicateInColAndBox(t *testing.T) {
	g := mustGrid(t, allOpenValues)
	g[0*SideLen+3] = CellOf(7)
	g[5*SideLen+3] = CellOf(7)
	if g.ColValid(3) || g.Valid() {
		t.Errorf("TestDuplicateInColAndBox: column with two 7s reported valid")
	}
	rid, _ := g.conflict()
	if rid.Rtype != RtypeCol || rid.Index != 4 {
		t.Errorf("TestDuplicateInColAndBox: conflict gave %v (expected column 4)", rid)
	}

	g = mustGrid(t, allOpenValues)
	g[3*SideLen+3] = CellOf(2)
	g[5*SideLen+5] = CellOf(2)
	if g.BoxValid(3, 3) || g.Valid() {
		t.Errorf("TestDuplicateInColAndBox: box with two 2s reported valid")
	}
	rid, _ = g.conflict()
	if rid.Rtype != RtypeBox || rid.Index != 5 {
		t.Errorf("TestDuplicateInColAndBox: conflict gave %v (expected box 5)", rid)
	}
}

func TestContradictedCell(t *testing.T) {
	g := mustGrid(t, allOpenValues)
	g[40] = NoCandidates
	if g.Valid() {
		t.Errorf("TestContradictedCell: grid with an empty candidate set reported valid")
	}
	if g.RowValid(4) || g.ColValid(4) || g.BoxValid(3, 3) {
		t.Errorf("TestContradictedCell: regions holding the empty cell reported valid")
	}
}
