// nonet - a constraint-propagation Sudoku solver and puzzle generator.
// Distributed under the GNU General Public License v2.

package puzzle

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

// postState runs a handler against a posted State and returns the
// recorder holding the response.
func postState(t *testing.T, handler func(http.ResponseWriter, *http.Request) (*Grid, error),
	values []int) (*httptest.ResponseRecorder, *Grid, error) {
	t.Helper()
	body, e := json.Marshal(State{Values: values})
	if e != nil {
		t.Fatalf("Failed to encode request body: %v", e)
	}
	r := httptest.NewRequest("POST", "/", bytes.NewReader(body))
	w := httptest.NewRecorder()
	g, err := handler(w, r)
	return w, g, err
}

// decodeState reads the recorded response body back as a State.
func decodeState(t *testing.T, w *httptest.ResponseRecorder) State {
	t.Helper()
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Response content type was %q", ct)
	}
	var state State
	if e := json.Unmarshal(w.Body.Bytes(), &state); e != nil {
		t.Fatalf("Failed to decode response body %q: %v", w.Body.String(), e)
	}
	return state
}

func TestSolveHandler(t *testing.T) {
	w, g, err := postState(t, SolveHandler, sixStarValues)
	if err != nil {
		t.Fatalf("TestSolveHandler: handler failed: %v", err)
	}
	if w.Code != http.StatusOK {
		t.Fatalf("TestSolveHandler: got status %d", w.Code)
	}
	state := decodeState(t, w)
	if !state.Solved || state.Clues != CellCount {
		t.Errorf("TestSolveHandler: response was not a full solution: %+v", state)
	}
	if !reflect.DeepEqual(state.Values, sixStarSolutionValues) {
		t.Errorf("TestSolveHandler: response solution was %v", state.Values)
	}
	if g == nil || !reflect.DeepEqual(g.Values(), state.Values) {
		t.Errorf("TestSolveHandler: returned grid disagrees with the response")
	}
}

func TestSolveHandlerFailures(t *testing.T) {
	// invalid grid: client gets a 400 carrying the Error
	w, g, err := postState(t, SolveHandler, duplicateFivesValues)
	if g != nil || err == nil {
		t.Fatalf("TestSolveHandlerFailures: invalid grid gave (%v, %v)", g, err)
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("TestSolveHandlerFailures: invalid grid gave status %d", w.Code)
	}
	var sent Error
	if e := json.Unmarshal(w.Body.Bytes(), &sent); e != nil {
		t.Fatalf("TestSolveHandlerFailures: undecodable error response: %v", e)
	}
	if sent.Kind != InvalidGridError || sent.Message == "" {
		t.Errorf("TestSolveHandlerFailures: error response was %+v", sent)
	}

	// unsolvable grid
	w, _, err = postState(t, SolveHandler, unreachableNineValues)
	if err == nil || w.Code != http.StatusBadRequest {
		t.Errorf("TestSolveHandlerFailures: unsolvable grid gave (%v, status %d)", err, w.Code)
	}

	// wrong clue count
	w, _, err = postState(t, SolveHandler, []int{1, 2, 3})
	if err == nil || w.Code != http.StatusBadRequest {
		t.Errorf("TestSolveHandlerFailures: short grid gave (%v, status %d)", err, w.Code)
	}

	// body that is not JSON at all
	r := httptest.NewRequest("POST", "/", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	if _, err = SolveHandler(rec, r); err == nil || rec.Code != http.StatusBadRequest {
		t.Errorf("TestSolveHandlerFailures: junk body gave (%v, status %d)", err, rec.Code)
	}
}

func TestReduceHandler(t *testing.T) {
	// a grid elimination alone can finish
	w, _, err := postState(t, ReduceHandler, diagonalBlankedValues)
	if err != nil || w.Code != http.StatusOK {
		t.Fatalf("TestReduceHandler: got (%v, status %d)", err, w.Code)
	}
	state := decodeState(t, w)
	if !state.Solved || !reflect.DeepEqual(state.Values, canonicalCompleteValues) {
		t.Errorf("TestReduceHandler: response was %+v", state)
	}

	// a grid elimination alone cannot finish: still a 200, with
	// Solved false, since stalling is not a failure
	w, _, err = postState(t, ReduceHandler, allOpenValues)
	if err != nil || w.Code != http.StatusOK {
		t.Fatalf("TestReduceHandler: stuck grid gave (%v, status %d)", err, w.Code)
	}
	state = decodeState(t, w)
	if state.Solved || state.Clues != 0 {
		t.Errorf("TestReduceHandler: stuck grid response was %+v", state)
	}
}

func TestGenerateHandler(t *testing.T) {
	post := func(seed int64) State {
		body, e := json.Marshal(GenerateRequest{Seed: seed})
		if e != nil {
			t.Fatalf("TestGenerateHandler: failed to encode request: %v", e)
		}
		r := httptest.NewRequest("POST", "/", bytes.NewReader(body))
		w := httptest.NewRecorder()
		if _, err := GenerateHandler(w, r); err != nil {
			t.Fatalf("TestGenerateHandler: handler failed: %v", err)
		}
		if w.Code != http.StatusOK {
			t.Fatalf("TestGenerateHandler: got status %d", w.Code)
		}
		return decodeState(t, w)
	}
	state := post(11)
	if state.Solved || state.Clues == 0 || state.Clues >= CellCount {
		t.Errorf("TestGenerateHandler: response is not a puzzle: %+v", state)
	}
	g, e := state.Grid()
	if e != nil {
		t.Fatalf("TestGenerateHandler: response grid did not rebuild: %v", e)
	}
	if e := g.Solve(); e != nil {
		t.Errorf("TestGenerateHandler: generated puzzle is unsolvable: %v", e)
	}
	if again := post(11); !reflect.DeepEqual(again, state) {
		t.Errorf("TestGenerateHandler: seed 11 gave two different puzzles")
	}
}
