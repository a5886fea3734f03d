// nonet - a constraint-propagation Sudoku solver and puzzle generator.
// Distributed under the GNU General Public License v2.

package puzzle

import (
	"encoding/json"
	"fmt"
	"net/http"
)

/*

Service surface

The handlers in this file give the solver and generator a JSON
face for the web service.  Every handler reads a posted request
body, runs the corresponding core operation, and writes the
outcome as JSON; the handler's return value mirrors what the
client was sent, so the golang caller can archive results or log
failures without re-decoding its own response.

*/

// A State is the wire form of a grid: 81 values in row-major
// order, 0 for a cell that is not fixed.  Responses also carry
// the clue count and whether the grid is fully determined.
type State struct {
	Values []int `json:"values"`
	Clues  int   `json:"clues,omitempty"`
	Solved bool  `json:"solved,omitempty"`
}

// StateOf builds the wire form of a grid.
func StateOf(g *Grid) State {
	return State{
		Values: g.Values(),
		Clues:  g.FixedCount(),
		Solved: !g.NeedsSolving() && g.Valid(),
	}
}

// Grid rebuilds the grid a state describes.
func (s State) Grid() (*Grid, error) {
	return NewGrid(s.Values)
}

// A GenerateRequest asks for a fresh minimal puzzle.  The seed
// fixes both the solved grid the generator starts from and its
// removal choices, so repeated requests with one seed give one
// puzzle.
type GenerateRequest struct {
	Seed int64 `json:"seed"`
}

/*

Solving and reducing

*/

// SolveHandler is a POST handler that reads a State from the
// request body and solves it.  The solved grid's State is sent
// as a 200 response and returned to the golang caller.  A load
// or solve failure is sent as a 400 response and returned as the
// error.
func SolveHandler(w http.ResponseWriter, r *http.Request) (*Grid, error) {
	g, err := decodeGrid(w, r)
	if err != nil {
		return nil, err
	}
	if e := g.Solve(); e != nil {
		return nil, writeFailure("SolveHandler", e, w, r)
	}
	return g, writeJSON(StateOf(g), http.StatusOK, w, r)
}

// ReduceHandler is a POST handler that reads a State from the
// request body and runs elimination only, without guessing.  The
// narrowed grid's State is sent as a 200 response; its Solved
// field tells the client whether elimination finished the grid.
func ReduceHandler(w http.ResponseWriter, r *http.Request) (*Grid, error) {
	g, err := decodeGrid(w, r)
	if err != nil {
		return nil, err
	}
	if _, e := g.Reduce(); e != nil {
		return nil, writeFailure("ReduceHandler", e, w, r)
	}
	return g, writeJSON(StateOf(g), http.StatusOK, w, r)
}

/*

Generation

*/

// GenerateHandler is a POST handler that reads a GenerateRequest
// from the request body and responds with a freshly generated
// minimal puzzle's State.
func GenerateHandler(w http.ResponseWriter, r *http.Request) (*Grid, error) {
	dec := json.NewDecoder(r.Body)
	var req GenerateRequest
	if e := dec.Decode(&req); e != nil {
		return nil, writeError(requestDecodingError, ErrorData{e.Error()}, w, r)
	}
	gen := NewGenerator(req.Seed)
	g := gen.Solved()
	if e := gen.Minimize(g); e != nil {
		return nil, writeFailure("GenerateHandler", e, w, r)
	}
	return g, writeJSON(StateOf(g), http.StatusOK, w, r)
}

/*

Utilities

*/

// decodeGrid reads a posted State and rebuilds its grid.  On
// failure the client has already been answered and the returned
// error describes the problem.
func decodeGrid(w http.ResponseWriter, r *http.Request) (*Grid, error) {
	dec := json.NewDecoder(r.Body)
	var state State
	if e := dec.Decode(&state); e != nil {
		return nil, writeError(requestDecodingError, ErrorData{e.Error()}, w, r)
	}
	g, e := state.Grid()
	if e != nil {
		return nil, writeFailure("decodeGrid", e, w, r)
	}
	return g, nil
}

// writeFailure sends a core-operation failure to the client as a
// 400 response carrying the Error's JSON form, and returns the
// same error to the handler.  A failure that is not one of this
// package's Error values signals a logic problem and is reported
// as a 500 instead.
func writeFailure(where string, e error, w http.ResponseWriter, r *http.Request) error {
	err, ok := e.(Error)
	if !ok {
		return writeError(errorFormatError, ErrorData{where, e.Error()}, w, r)
	}
	err.Message = err.Error()
	return writeJSON(err, http.StatusBadRequest, w, r)
}

type handlerError int

const (
	requestDecodingError handlerError = iota
	responseEncodingError
	errorFormatError
)

// writeError sends back a server error of the given type, sort of
// like http.Error, but it sends the JSON form of an appropriate
// Error.
func writeError(et handlerError, ed ErrorData,
	w http.ResponseWriter, r *http.Request) error {
	var err Error
	var status int
	switch et {
	case requestDecodingError:
		status = http.StatusBadRequest
		err = Error{Kind: LoadError, Values: ed}
	case responseEncodingError:
		status = http.StatusInternalServerError
		err = Error{Kind: InternalError, Values: ed}
	case errorFormatError:
		status = http.StatusInternalServerError
		err = Error{Kind: InternalError, Values: ed}
	default:
		status = http.StatusInternalServerError
		err = Error{
			Kind: InternalError,
			Values: ErrorData{
				"writeError",
				fmt.Sprintf("Unknown handler error type (%v)", et),
			},
		}
	}
	err.Message = err.Error()
	return writeJSON(err, status, w, r)
}

// writeJSON is called by handlers to encode and send the client
// response.  It returns an appropriate error status for the
// handler to return to its caller, as follows:
//
// 1. If writeJSON encounters an encoding error sending the
// response, it will create an Error object describing the
// failure, encode that Error as a 500-series response to the
// client, and return that Error to the handler.
//
// 2. If no encoding error occurs, but the handler is sending an
// Error object as the response to the client, writeJSON will
// return that same Error to the handler.
//
// 3. If no encoding error occurs, and the handler is sending a
// non-Error object as the response to the client, writeJSON will
// return nil to the handler.
func writeJSON(obj interface{}, status int, w http.ResponseWriter, r *http.Request) error {
	err, isErr := obj.(Error)
	bytes, e := json.Marshal(obj)
	if e != nil {
		if isErr && err.Kind == InternalError {
			// We just failed to encode an internal Error.  This
			// should never happen!!  If it did, it almost
			// certainly means that the JSON encoding system is
			// dead, so pseudo-encode the error by hand by
			// returning the Error's summary as a quoted string.
			status = http.StatusInternalServerError // probably was already!
			bytes = []byte(fmt.Sprintf("%q", err.Error()))
		} else {
			// generate, send, and return an encoding error
			return writeError(responseEncodingError, ErrorData{e.Error()}, w, r)
		}
	}
	hs := w.Header()
	hs.Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
	if isErr {
		return err
	}
	return nil
}
