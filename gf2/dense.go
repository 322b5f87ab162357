// SPDX-License-Identifier: MIT
// Package gf2 - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major bit buffer with the explicit index
//     formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead
//     of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).

package gf2

import (
	"fmt"
	"strings"
)

// Bit values of the two-element field.
const (
	// Zero is the additive identity of GF(2).
	Zero byte = 0
	// One is the multiplicative identity of GF(2).
	One byte = 1
)

// Formatting literals for String.
const (
	fmtRowOpen  = "["
	fmtRowClose = "]\n"
	fmtSep      = " "
)

// Method context tags used in error wrappers.
const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxInsert    = "Insert"
	ctxInsertSym = "InsertSym"
	ctxSubmatrix = "Submatrix"
)

// denseErrorf wraps a sentinel with a uniform Dense context and callsite
// coordinates, preserving errors.Is matching via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix over GF(2).
// r is rows, c is columns, and data holds r*c bytes (each 0 or 1) in
// row-major order. The one-byte-per-entry layout trades memory for simple
// exact indexing; the matrices here are at most 105×105.
type Dense struct {
	r, c int    // number of rows and columns
	data []byte // flat backing storage, length == r*c, entries 0/1
}

// NewDense creates an r×c all-zero Dense matrix.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r·c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions before allocating.
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]byte, rows*cols)}, nil
}

// Identity creates the n×n identity matrix over GF(2).
// Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = One
	}

	return m, nil
}

// FromRows builds a Dense from a non-empty rectangular [][]byte of 0/1
// values. The input is copied; the result is independent of it.
// Returns ErrBadShape on an empty or ragged input and ErrBadBit on any
// entry other than 0 or 1.
// Complexity: O(r·c).
func FromRows(rows [][]byte) (*Dense, error) {
	// Validate outer shape.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	r, c := len(rows), len(rows[0])

	m := &Dense{r: r, c: c, data: make([]byte, r*c)}
	for i := 0; i < r; i++ {
		// Validate rectangularity row by row.
		if len(rows[i]) != c {
			return nil, ErrBadShape
		}
		for j := 0; j < c; j++ {
			v := rows[i][j]
			if v != Zero && v != One {
				return nil, denseErrorf(ctxSet, i, j, ErrBadBit)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or reports out-of-range.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (byte, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return Zero, err
	}

	return m.data[idx], nil
}

// Set assigns the field element v at (row, col).
// Returns ErrOutOfRange for invalid indices and ErrBadBit for v ∉ {0,1}.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v byte) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if v != Zero && v != One {
		return denseErrorf(ctxSet, row, col, ErrBadBit)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the matrix, independent of the original.
// Complexity: O(r·c).
func (m *Dense) Clone() *Dense {
	cp := make([]byte, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Insert copies block b into m with its top-left corner at (r0, c0).
// The window must lie fully inside m; on ErrOutOfRange m is unchanged.
// Complexity: O(b.Rows()·b.Cols()).
func (m *Dense) Insert(b *Dense, r0, c0 int) error {
	if b == nil {
		return ErrNilMatrix
	}
	// Validate the whole window before writing anything.
	if r0 < 0 || c0 < 0 || r0+b.r > m.r || c0+b.c > m.c {
		return denseErrorf(ctxInsert, r0, c0, ErrOutOfRange)
	}
	for i := 0; i < b.r; i++ {
		copy(m.data[(r0+i)*m.c+c0:(r0+i)*m.c+c0+b.c], b.data[i*b.c:(i+1)*b.c])
	}

	return nil
}

// InsertSym copies block b at (r0, c0) and its transpose at (c0, r0).
// This is the symmetric placement primitive used during assembly: the two
// windows must both lie inside m, which must be square for the mirror to
// make sense (checked via the window bounds).
// Complexity: O(b.Rows()·b.Cols()).
func (m *Dense) InsertSym(b *Dense, r0, c0 int) error {
	if b == nil {
		return ErrNilMatrix
	}
	if r0 < 0 || c0 < 0 || r0+b.r > m.r || c0+b.c > m.c ||
		c0+b.c > m.r || r0+b.r > m.c {
		return denseErrorf(ctxInsertSym, r0, c0, ErrOutOfRange)
	}
	for i := 0; i < b.r; i++ {
		for j := 0; j < b.c; j++ {
			v := b.data[i*b.c+j]
			m.data[(r0+i)*m.c+c0+j] = v
			m.data[(c0+j)*m.c+r0+i] = v
		}
	}

	return nil
}

// Submatrix returns a copy of the h×w window of m anchored at (r0, c0).
// Complexity: O(h·w).
func (m *Dense) Submatrix(r0, c0, h, w int) (*Dense, error) {
	if h <= 0 || w <= 0 {
		return nil, ErrBadShape
	}
	if r0 < 0 || c0 < 0 || r0+h > m.r || c0+w > m.c {
		return nil, denseErrorf(ctxSubmatrix, r0, c0, ErrOutOfRange)
	}

	out := &Dense{r: h, c: w, data: make([]byte, h*w)}
	for i := 0; i < h; i++ {
		copy(out.data[i*w:(i+1)*w], m.data[(r0+i)*m.c+c0:(r0+i)*m.c+c0+w])
	}

	return out, nil
}

// String implements fmt.Stringer for debugging.
// Complexity: O(r·c).
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(fmtSep)
			}
			sb.WriteByte('0' + m.data[i*m.c+j])
		}
		sb.WriteString(fmtRowClose)
	}

	return sb.String()
}
