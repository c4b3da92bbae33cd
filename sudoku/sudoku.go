package sudoku

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/elinorbgr/silinapse/boltzmann"
	"github.com/elinorbgr/silinapse/symmetric"
)

const (
	// GridSize is the side of the grid: nine cells per row, column, and box band.
	GridSize = 9
	// CellValues is the number of candidate digits per cell.
	CellValues = 9
	// Units is the network size: one unit per (cell, candidate) pair.
	Units = GridSize * GridSize * CellValues
	// PairWeight couples two mutually exclusive candidates. Strongly
	// negative so that at moderate temperatures an active unit all but
	// vetoes its rivals.
	PairWeight = -100.0
	// DefaultBias is the resting drive of every unit; without it the
	// all-zero state would be a fixed point.
	DefaultBias = 10.0

	// conflictMarker flags a cell whose decode found several active
	// candidates. Rendered as 'X'.
	conflictMarker = 10
)

// Board is a 9×9 grid in row-major order. 0 is an open cell, 1..9 a
// digit. Decode additionally emits conflictMarker for cells with more
// than one active candidate.
type Board [GridSize * GridSize]uint8

var (
	// ErrBadBoard reports board text that does not spell out exactly 81
	// cells of digits and blanks.
	ErrBadBoard = errors.New("sudoku: board text must hold 81 cells of 1-9 or blanks")
	// ErrMachineSize reports a machine whose unit count does not match
	// the 729-unit sudoku encoding.
	ErrMachineSize = errors.New("sudoku: machine must hold 729 units")
)

// Parse reads a Board from text. Digits 1-9 are givens; '0', '.', and
// '_' are open cells; whitespace and the box-drawing characters
// '|', '+', '-' are ignored, so the output of Board.String parses back.
// Anything else, or a cell count other than 81, is ErrBadBoard.
func Parse(s string) (Board, error) {
	var b Board
	n := 0
	for _, r := range s {
		var v uint8
		switch {
		case r >= '1' && r <= '9':
			v = uint8(r - '0')
		case r == '0' || r == '.' || r == '_':
			v = 0
		case r == '|' || r == '+' || r == '-' || unicode.IsSpace(r):
			continue
		default:
			return Board{}, fmt.Errorf("sudoku: Parse: unexpected %q: %w", r, ErrBadBoard)
		}
		if n == len(b) {
			return Board{}, fmt.Errorf("sudoku: Parse: more than %d cells: %w", len(b), ErrBadBoard)
		}
		b[n] = v
		n++
	}
	if n != len(b) {
		return Board{}, fmt.Errorf("sudoku: Parse: got %d cells, want %d: %w", n, len(b), ErrBadBoard)
	}
	return b, nil
}

// String renders the board as a boxed grid:
//
//	+-------+-------+-------+
//	| 5 _ _ | 8 _ 6 | _ _ 4 |
//	...
//
// Open cells print as '_', conflict markers as 'X'.
func (b Board) String() string {
	const border = "+-------+-------+-------+\n"
	var sb strings.Builder
	sb.WriteString(border)
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if col%3 == 0 {
				sb.WriteString("| ")
			}
			switch v := b[row*GridSize+col]; {
			case v == 0:
				sb.WriteByte('_')
			case v <= 9:
				sb.WriteByte('0' + v)
			default:
				sb.WriteByte('X')
			}
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
		if row%3 == 2 {
			sb.WriteString(border)
		}
	}
	return sb.String()
}

// Solved reports whether the board is completely filled and every row,
// column, and box holds each digit exactly once.
func (b Board) Solved() bool {
	for _, v := range b {
		if v < 1 || v > 9 {
			return false
		}
	}
	for g := 0; g < GridSize; g++ {
		var row, col, box [GridSize + 1]bool
		for k := 0; k < GridSize; k++ {
			r := b[g*GridSize+k]
			c := b[k*GridSize+g]
			x := b[boxCell(g, k)]
			if row[r] || col[c] || box[x] {
				return false
			}
			row[r], col[c], box[x] = true, true, true
		}
	}
	return true
}

// boxCell maps (box index, position within box) to a row-major cell index.
func boxCell(box, k int) int {
	row := (box/3)*3 + k/3
	col := (box%3)*3 + k%3
	return row*GridSize + col
}

// peers reports whether two cells share a row, a column, or a box.
func peers(a, b int) bool {
	ar, ac := a/GridSize, a%GridSize
	br, bc := b/GridSize, b%GridSize
	if ar == br || ac == bc {
		return true
	}
	return ar/3 == br/3 && ac/3 == bc/3
}

// Weights builds the 729×729 coupling matrix of the sudoku encoding:
// PairWeight between the candidates of one cell pairwise, and between
// the same candidate digit in any two peer cells. Everything else,
// the diagonal included, stays zero.
//
// Complexity: O(Units²) writes into packed storage.
func Weights() (*symmetric.Matrix, error) {
	w, err := symmetric.New(Units)
	if err != nil {
		return nil, err
	}
	for cell := 0; cell < GridSize*GridSize; cell++ {
		base := cell * CellValues
		for u := 0; u < CellValues; u++ {
			for v := 0; v < u; v++ {
				if err := w.Set(base+u, base+v, PairWeight); err != nil {
					return nil, err
				}
			}
		}
		for other := cell + 1; other < GridSize*GridSize; other++ {
			if !peers(cell, other) {
				continue
			}
			for val := 0; val < CellValues; val++ {
				if err := w.Set(base+val, other*CellValues+val, PairWeight); err != nil {
					return nil, err
				}
			}
		}
	}
	return w, nil
}

// Fixed returns the exclusion list protecting the givens: all nine
// candidate units of every filled cell, in ascending order.
func Fixed(b Board) []int {
	var fixed []int
	for i, v := range b {
		if v >= 1 && v <= 9 {
			for k := 0; k < CellValues; k++ {
				fixed = append(fixed, i*CellValues+k)
			}
		}
	}
	return fixed
}

// Pin overwrites the machine's state with the board: every unit is
// cleared, then the unit of each given digit is raised to 1. Cells
// holding anything outside 1..9 are treated as open.
func Pin(m *boltzmann.Machine, b Board) error {
	if m == nil || m.Size() != Units {
		return ErrMachineSize
	}
	values := m.Values()
	for i := range values {
		values[i] = 0
	}
	for i, v := range b {
		if v >= 1 && v <= 9 {
			values[i*CellValues+int(v)-1] = 1
		}
	}
	return nil
}

// NewMachine assembles the full encoding for a puzzle: the coupling
// matrix from Weights, a machine with every bias at DefaultBias, state
// pinned to the givens, and the exclusion list guarding them. Options
// are passed through to the machine, so WithSeed/WithRand control the
// annealing stream.
func NewMachine(b Board, opts ...boltzmann.Option) (*boltzmann.Machine, []int, error) {
	w, err := Weights()
	if err != nil {
		return nil, nil, err
	}
	biases := make([]float64, Units)
	for i := range biases {
		biases[i] = DefaultBias
	}
	m, err := boltzmann.NewWithBiases(w, biases, opts...)
	if err != nil {
		return nil, nil, err
	}
	if err := Pin(m, b); err != nil {
		return nil, nil, err
	}
	return m, Fixed(b), nil
}

// Decode digitizes the machine state. Per cell, a candidate counts as
// active above 0.5; exactly one active candidate becomes the digit, none
// leaves the cell open, and several mark the cell as conflicting.
func Decode(m *boltzmann.Machine) (Board, error) {
	if m == nil || m.Size() != Units {
		return Board{}, ErrMachineSize
	}
	return DecodeValues(m.Values())
}

// DecodeValues digitizes a raw 729-unit activation vector, for states
// captured outside a live machine (annealing results, snapshots). Same
// rules as Decode.
func DecodeValues(values []float64) (Board, error) {
	var b Board
	if len(values) != Units {
		return b, fmt.Errorf("sudoku: DecodeValues: got %d values: %w", len(values), ErrMachineSize)
	}
	for cell := 0; cell < GridSize*GridSize; cell++ {
		for j := 0; j < CellValues; j++ {
			if values[cell*CellValues+j] <= 0.5 {
				continue
			}
			if b[cell] > 0 {
				b[cell] = conflictMarker
			} else {
				b[cell] = uint8(j + 1)
			}
		}
	}
	return b, nil
}
