// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row/Col return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce the 1..MaxDim shape cap on every public constructor.
//
// AI-Hints:
//   - Kernels operate on the flat data slice directly; the public accessors are for callers.
//   - newDenseUncapped exists for internal working matrices (the n×2n augmented
//     matrix in Inverse) that legitimately exceed MaxDim columns.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Row/Col: O(c)/O(r).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlinalg/scalar"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
	ctxCol = "Col" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return wrapped error.
//
// Notes:
//   - Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over the field T.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Dense is a value container: every operation in this package returns a
// freshly allocated result and never aliases its inputs.
type Dense[T scalar.Field[T]] struct {
	r, c int // row and column counts (1..MaxDim for public values)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for fmt.Stringer conformance.
var (
	_ fmt.Stringer = (*Dense[scalar.Rational])(nil)
	_ fmt.Stringer = (*Dense[scalar.Float])(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate 1 ≤ rows, cols ≤ MaxDim; else ErrInvalidDimensions.
//   - Stage 2: allocate a buffer filled with the field zero.
//
// Inputs:
//   - rows: number of rows in [1, MaxDim]
//   - cols: number of columns in [1, MaxDim]
//
// Returns:
//   - *Dense[T]: newly allocated zero matrix.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Internal oversized working matrices use newDenseUncapped.
func NewDense[T scalar.Field[T]](rows, cols int) (*Dense[T], error) {
	if rows < 1 || cols < 1 || rows > MaxDim || cols > MaxDim {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return newDenseUncapped[T](rows, cols), nil
}

// newDenseUncapped allocates an r×c zero matrix without the MaxDim cap.
// Callers guarantee rows, cols ≥ 1.
func newDenseUncapped[T scalar.Field[T]](rows, cols int) *Dense[T] {
	zero := scalar.Zero[T]()
	buf := make([]T, rows*cols)
	for k := range buf {
		buf[k] = zero
	}

	return &Dense[T]{r: rows, c: cols, data: buf}
}

// NewDenseFromRows builds a matrix from literal row data (deep copy).
// MAIN DESCRIPTION:
//   - Row count is len(rows); column count is len(rows[0]).
//
// Errors:
//   - ErrInvalidDimensions when rows is empty, any row is empty, rows are
//     ragged, or either axis exceeds MaxDim.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows[T scalar.Field[T]](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewDenseFromRows: empty input: %w", ErrInvalidDimensions)
	}
	cols := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d cells, want %d: %w",
				i, len(rows[i]), cols, ErrInvalidDimensions)
		}
	}
	m, err := NewDense[T](len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports Rows() == Cols().
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

// indexOf converts (row, col) into a flat offset with bounds checking.
// Returns ErrOutOfRange (unwrapped) so callers can attach their own tag.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T

		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange when i is outside [0, Rows()).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
// Errors: ErrOutOfRange when j is outside [0, Cols()).
func (m *Dense[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}

	return m.col(j), nil
}

// col copies column j without bounds checks.
func (m *Dense[T]) col(j int) []T {
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out
}

// Clone returns a deep copy (new buffer).
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	buf := make([]T, len(m.data))
	copy(buf, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: buf}
}

// RowsData returns the contents as a freshly allocated [][]T.
func (m *Dense[T]) RowsData() [][]T {
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String provides a readable row-wise dump for diagnostics.
// Display formatting for users lives in package textio.
func (m *Dense[T]) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(m.data[i*m.c+j].String())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
