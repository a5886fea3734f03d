// nonet - a constraint-propagation Sudoku solver and puzzle generator.
// Distributed under the GNU General Public License v2.

package puzzle

import (
	"bufio"
	"io"
	"strings"
)

/*

Text encodings

Grids travel in two textual forms.  The numeric form is 81
decimal digits in row-major order, 0 standing for an open cell,
optionally ended by a newline.  The box form is a 13-line ASCII
drawing: separator lines at rows 0, 4, 8, and 12, and nine
content lines of the shape

	| 1 2 3 | 4 5 6 | 7 8 9 |

where a digit marks a fixed cell, '.' or '0' an open cell, and
'!' a contradicted one.  Loading sniffs the first byte to pick
the form: '+' means box, anything else is tried as numeric.

*/

// boxSeparator is one separator line of the box form, without its
// terminating newline.
const boxSeparator = "+-------+-------+-------+"

// lineLen is the width of every box-form line.
const lineLen = len(boxSeparator)

// Load reads a grid in either text encoding from the reader,
// picking the encoding from the first byte.  Gives a LoadError
// describing the first malformed byte when the input fits neither
// form.
func Load(r io.Reader) (*Grid, error) {
	br := bufio.NewReader(r)
	first, err := br.Peek(1)
	if err != nil {
		return nil, loadError("empty input")
	}
	if first[0] == '+' {
		return loadBox(br)
	}
	return loadNumeric(br)
}

// LoadString reads a grid from a string, for callers that already
// hold the full text.
func LoadString(s string) (*Grid, error) {
	return Load(strings.NewReader(s))
}

// loadNumeric reads the 81-digit form.  Input after the optional
// terminating newline is left unread.
func loadNumeric(br *bufio.Reader) (*Grid, error) {
	var g Grid
	for i := 0; i < CellCount; i++ {
		b, err := br.ReadByte()
		if err != nil {
			return nil, loadError("input ended after %d of %d digits", i, CellCount)
		}
		switch {
		case b == '0':
			g[i] = AllCandidates
		case b >= '1' && b <= '9':
			g[i] = CellOf(int(b - '0'))
		default:
			return nil, loadError("digit expected at position %d, got %q", i, b)
		}
	}
	if b, err := br.ReadByte(); err == nil && b != '\n' {
		return nil, loadError("trailing input after %d digits: %q", CellCount, b)
	}
	return &g, nil
}

// loadBox reads the 13-line box form, checking every byte of the
// layout.  The last line's newline may be missing at end of input.
func loadBox(br *bufio.Reader) (*Grid, error) {
	var g Grid
	row := 0
	for lineNo := 0; lineNo < 13; lineNo++ {
		line, err := readBoxLine(br, lineNo == 12)
		if err != nil {
			return nil, err
		}
		if lineNo%4 == 0 {
			if line != boxSeparator {
				return nil, loadError("malformed separator on line %d", lineNo+1)
			}
			continue
		}
		col := 0
		for pos := 0; pos < lineLen; pos++ {
			b := line[pos]
			switch {
			case pos%8 == 0:
				if b != '|' {
					return nil, loadError("'|' expected on line %d at column %d", lineNo+1, pos+1)
				}
			case pos%2 == 1:
				if b != ' ' {
					return nil, loadError("space expected on line %d at column %d", lineNo+1, pos+1)
				}
			default:
				cell, ok := cellOfByte(b)
				if !ok {
					return nil, loadError("cell character expected on line %d at column %d, got %q", lineNo+1, pos+1, b)
				}
				g[row*SideLen+col] = cell
				col++
			}
		}
		row++
	}
	return &g, nil
}

// readBoxLine reads one line of exactly lineLen bytes plus its
// newline.  When last is set the newline may be replaced by end
// of input.
func readBoxLine(br *bufio.Reader, last bool) (string, error) {
	buf := make([]byte, lineLen)
	if _, err := io.ReadFull(br, buf); err != nil {
		return "", loadError("input ended inside the grid drawing")
	}
	b, err := br.ReadByte()
	if err != nil {
		if last {
			return string(buf), nil
		}
		return "", loadError("input ended inside the grid drawing")
	}
	if b != '\n' {
		return "", loadError("line longer than %d characters", lineLen)
	}
	return string(buf), nil
}

// cellOfByte maps one box-form cell character to a cell.
func cellOfByte(b byte) (Cell, bool) {
	switch {
	case b == '.' || b == '0':
		return AllCandidates, true
	case b == '!':
		return NoCandidates, true
	case b >= '1' && b <= '9':
		return CellOf(int(b - '0')), true
	}
	return NoCandidates, false
}

// byteOfCell maps one cell to its box-form character.
func byteOfCell(c Cell) byte {
	switch {
	case c == NoCandidates:
		return '!'
	case c.IsFixed():
		return byte('0' + c.Value())
	}
	return '.'
}

// String draws the grid in the 13-line box form, with a trailing
// newline.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(13 * (lineLen + 1))
	for row := 0; row < SideLen; row++ {
		if row%BoxLen == 0 {
			sb.WriteString(boxSeparator)
			sb.WriteByte('\n')
		}
		for col := 0; col < SideLen; col++ {
			if col%BoxLen == 0 {
				sb.WriteString("| ")
			}
			sb.WriteByte(byteOfCell(g.At(row, col)))
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(boxSeparator)
	sb.WriteByte('\n')
	return sb.String()
}

// Numeric renders the grid in the 81-digit form, without a
// newline.  Open and contradicted cells both render as '0'.
func (g *Grid) Numeric() string {
	buf := make([]byte, CellCount)
	for i, c := range *g {
		buf[i] = byte('0' + c.Value())
	}
	return string(buf)
}
