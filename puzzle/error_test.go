// nonet - a constraint-propagation Sudoku solver and puzzle generator.
// Distributed under the GNU General Public License v2.

package puzzle

import (
	"encoding/json"
	"strings"
	"testing"
)

type errorMessageTestcase struct {
	err  Error
	want string
}

func TestErrorMessages(t *testing.T) {
	tcs := []errorMessageTestcase{
		errorMessageTestcase{
			Error{Kind: LoadError, Values: ErrorData{"digit expected"}},
			"Malformed input: digit expected",
		},
		errorMessageTestcase{
			Error{Kind: LoadError},
			"Malformed input",
		},
		errorMessageTestcase{
			Error{Kind: InvalidGridError, Region: RegionID{RtypeRow, 1}},
			"Invalid grid: conflict in row 1",
		},
		errorMessageTestcase{
			Error{Kind: InvalidGridError},
			"Invalid grid",
		},
		errorMessageTestcase{
			Error{Kind: UnsolvableError},
			"No solution can be reached from this grid",
		},
		errorMessageTestcase{
			Error{Kind: InternalError, Values: ErrorData{"oops"}},
			"Internal logic error: oops",
		},
		errorMessageTestcase{
			Error{Kind: UnsolvableError, Message: "canned"},
			"canned",
		},
	}
	for i, tc := range tcs {
		if got := tc.err.Error(); got != tc.want {
			t.Errorf("TestErrorMessages case %d: got %q (expected %q)", i+1, got, tc.want)
		}
	}
}

func TestRegionIDString(t *testing.T) {
	if got := (RegionID{RtypeBox, 5}).String(); got != "box 5" {
		t.Errorf("TestRegionIDString: got %q", got)
	}
	if got := (RegionID{"", 3}).String(); !strings.Contains(got, "3") {
		t.Errorf("TestRegionIDString: anonymous region drew as %q", got)
	}
}

// Errors travel to web clients as JSON, so they have to encode
// and decode without losing their classification.
func TestErrorJSON(t *testing.T) {
	in := Error{Kind: InvalidGridError, Region: RegionID{RtypeCol, 4}}
	in.Message = in.Error()
	bytes, e := json.Marshal(in)
	if e != nil {
		t.Fatalf("TestErrorJSON: Marshal failed: %v", e)
	}
	var out Error
	if e := json.Unmarshal(bytes, &out); e != nil {
		t.Fatalf("TestErrorJSON: Unmarshal failed: %v", e)
	}
	if out.Kind != in.Kind || out.Region != in.Region || out.Message != in.Message {
		t.Errorf("TestErrorJSON: round trip gave %+v (expected %+v)", out, in)
	}
}

func TestHelpers(t *testing.T) {
	le := loadError("bad byte %q at %d", byte('x'), 3)
	if le.Kind != LoadError || !strings.Contains(le.Error(), "'x'") {
		t.Errorf("TestHelpers: loadError built %+v", le)
	}
	g := mustGrid(t, duplicateFivesValues)
	ie := invalidError(g)
	if ie.Kind != InvalidGridError || ie.Region.Rtype != RtypeRow || ie.Region.Index != 1 {
		t.Errorf("TestHelpers: invalidError built %+v", ie)
	}
	if ue := unsolvableError(); ue.Kind != UnsolvableError {
		t.Errorf("TestHelpers: unsolvableError built %+v", ue)
	}
}
