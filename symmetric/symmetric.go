package symmetric

import (
	"fmt"
	"math"
	"strings"
)

// Matrix is a square symmetric matrix of float64 coefficients in packed
// triangular storage. n is the side length; data holds the lower triangle
// (diagonal included) row by row, exactly n·(n+1)/2 elements.
//
// The zero value is a usable 0×0 matrix; use New for any other size.
type Matrix struct {
	n    int
	data []float64
}

// symErrorf wraps an underlying sentinel with method context and coordinates.
func symErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("symmetric: %s(%d,%d): %w", method, i, j, err)
}

// packedLen computes n·(n+1)/2, reporting false when the result would
// overflow int. The even factor is divided before multiplying so the
// intermediate product stays in range whenever the result does.
func packedLen(n int) (int, bool) {
	if n == 0 {
		return 0, true
	}
	if n > math.MaxInt-1 {
		return 0, false
	}
	a, b := n, n+1
	if a%2 == 0 {
		a /= 2
	} else {
		b /= 2
	}
	if a > math.MaxInt/b {
		return 0, false
	}

	return a * b, true
}

// New creates an n×n symmetric matrix with every coefficient set to 0.
// Returns ErrBadSize when n < 0 and ErrSizeOverflow when the packed
// length n·(n+1)/2 does not fit in int.
//
// Complexity: O(n·(n+1)/2) time and memory.
func New(n int) (*Matrix, error) {
	if n < 0 {
		return nil, ErrBadSize
	}
	size, ok := packedLen(n)
	if !ok {
		return nil, ErrSizeOverflow
	}

	return &Matrix{n: n, data: make([]float64, size)}, nil
}

// Size returns the side length n.
// Complexity: O(1).
func (m *Matrix) Size() int {
	return m.n
}

// PackedLen returns the number of stored coefficient slots, n·(n+1)/2.
// Complexity: O(1).
func (m *Matrix) PackedLen() int {
	return len(m.data)
}

// offset maps the unordered pair (i, j) to its flat storage index, or
// returns ErrOutOfRange (wrapped with method context) when either index
// falls outside [0, n). The pair is normalized so the larger index selects
// the triangular row: for lo ≤ hi the slot is hi·(hi+1)/2 + lo.
// Complexity: O(1).
func (m *Matrix) offset(method string, i, j int) (int, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, symErrorf(method, i, j, ErrOutOfRange)
	}
	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}

	return hi*(hi+1)/2 + lo, nil
}

// At returns the coefficient stored for the unordered pair (i, j).
// At(i, j) and At(j, i) read the same slot.
// Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	idx, err := m.offset("At", i, j)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set overwrites the coefficient stored for the unordered pair (i, j).
// Writing through (i, j) is indistinguishable from writing through (j, i):
// both orderings alias one slot.
// Complexity: O(1).
func (m *Matrix) Set(i, j int, v float64) error {
	idx, err := m.offset("Set", i, j)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(n·(n+1)/2) time and memory.
func (m *Matrix) Clone() *Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Matrix{n: m.n, data: cp}
}

// String implements fmt.Stringer, rendering the full n×n view (both
// triangles) one bracketed row per line, for debugging and small demos.
// Complexity: O(n²).
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.n; j++ {
			lo, hi := i, j
			if lo > hi {
				lo, hi = hi, lo
			}
			fmt.Fprintf(&sb, "%g", m.data[hi*(hi+1)/2+lo])
			if j < m.n-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
