// nonet - a constraint-propagation Sudoku solver and puzzle generator.
// Distributed under the GNU General Public License v2.

package puzzle

import (
	"fmt"
)

/*

Errors

*/

// Diagnostic is the single line written to the error stream when
// a load or solve fails at the process boundary.
const Diagnostic = "ERROR has occurred!"

// An Error describes a problem with a grid or a requested
// operation.  It can produce an error message in English, but it
// also carries enough structure (a kind, an optional region, and
// supplemental values) for clients of the service surface to
// build their own messaging.  Errors are plain values and are
// JSON-serializable.
type Error struct {
	Kind    ErrorKind `json:"kind"`
	Region  RegionID  `json:"region,omitempty"`
	Values  ErrorData `json:"values,omitempty"`
	Message string    `json:"message,omitempty"` // pre-canned message
}

// An ErrorKind classifies the failure.
type ErrorKind int

// Constants for the error kinds.
const (
	UnknownError ErrorKind = iota
	// LoadError: malformed input in either text encoding.
	LoadError
	// InvalidGridError: a duplicate fixed value or a contradicted
	// cell was detected during validation.
	InvalidGridError
	// UnsolvableError: the grid is valid but elimination and
	// backtracking exhausted without reaching a full solution.
	UnsolvableError
	// InternalError: a logic failure inside this module.
	InternalError
	MaxError
)

// The ErrorData provides details about the failure, such as the
// offending value or input position.  Every item is required to
// be JSON-serializable so errors can be returned to web clients.
type ErrorData []interface{}

// A RegionID names a row, column, or box of the grid.  The index
// is 1-based, in reading order.
type RegionID struct {
	Rtype string `json:"rtype,omitempty"`
	Index int    `json:"index,omitempty"`
}

// Region type constants.  Human-readable but not localized.
const (
	RtypeRow = "row"
	RtypeCol = "column"
	RtypeBox = "box"
)

// Region IDs implement Stringer
func (rid RegionID) String() string {
	if rid.Rtype == "" {
		return fmt.Sprintf("<region> %d", rid.Index)
	}
	return fmt.Sprintf("%s %d", rid.Rtype, rid.Index)
}

// Return an error string from an Error.  If the Error has a
// pre-canned message, this will use it, otherwise it will produce
// an appropriate (English, non-localized) message.
func (e Error) Error() string {
	if len(e.Message) > 0 {
		return e.Message
	}
	switch e.Kind {
	case LoadError:
		if len(e.Values) > 0 {
			return fmt.Sprintf("Malformed input: %v", fmt.Sprint(e.Values...))
		}
		return "Malformed input"
	case InvalidGridError:
		if e.Region.Rtype != "" {
			return fmt.Sprintf("Invalid grid: conflict in %v", e.Region)
		}
		return "Invalid grid"
	case UnsolvableError:
		return "No solution can be reached from this grid"
	case InternalError:
		return fmt.Sprintf("Internal logic error: %v", fmt.Sprint(e.Values...))
	}
	return fmt.Sprintf("Unknown error: %v", fmt.Sprint(e.Values...))
}

// loadError builds a LoadError with a formatted detail message.
func loadError(format string, args ...interface{}) Error {
	return Error{Kind: LoadError, Values: ErrorData{fmt.Sprintf(format, args...)}}
}

// invalidError builds an InvalidGridError naming the first
// conflicted region of the grid, if one can be found.
func invalidError(g *Grid) Error {
	rid, _ := g.conflict()
	return Error{Kind: InvalidGridError, Region: rid}
}

// unsolvableError builds an UnsolvableError.
func unsolvableError() Error {
	return Error{Kind: UnsolvableError}
}
