// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations and minor extraction.
//
// Purpose:
//   - Provide the three elementary row operations used by the reduction kernels.
//   - They mutate the receiver in place and are deliberately unexported: callers
//     outside the package only ever see fresh results.
//   - Submatrix materializes a minor (copy) for cofactor expansion.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/scalar"
)

const opSubmatrix = "Submatrix"

// swapRows exchanges rows i and k. No-op when i == k.
func (m *Dense[T]) swapRows(i, k int) {
	if i == k {
		return
	}
	c := m.c
	for j := 0; j < c; j++ {
		m.data[i*c+j], m.data[k*c+j] = m.data[k*c+j], m.data[i*c+j]
	}
}

// scaleRow multiplies every entry of row i by f.
func (m *Dense[T]) scaleRow(i int, f T) {
	c := m.c
	for j := 0; j < c; j++ {
		m.data[i*c+j] = m.data[i*c+j].Mul(f)
	}
}

// addMultipleOfRow performs row[dst] += f * row[src].
func (m *Dense[T]) addMultipleOfRow(dst, src int, f T) {
	c := m.c
	for j := 0; j < c; j++ {
		m.data[dst*c+j] = m.data[dst*c+j].Add(f.Mul(m.data[src*c+j]))
	}
}

// isZeroRow reports whether every entry of row i is zero under the field's policy.
func (m *Dense[T]) isZeroRow(i int) bool {
	c := m.c
	for j := 0; j < c; j++ {
		if !m.data[i*c+j].IsZero() {
			return false
		}
	}

	return true
}

// Submatrix returns a copy of m without row excludeRow and column excludeCol.
// MAIN DESCRIPTION:
//   - Produces the (r−1)×(c−1) minor used by cofactor expansion.
//
// Errors:
//   - ErrNilMatrix for nil input.
//   - ErrOutOfRange when either index is outside the matrix.
//   - ErrInvalidDimensions when m has a single row or column (empty minor).
//
// Complexity:
//   - Time O(r*c), Space O((r−1)*(c−1)).
func Submatrix[T scalar.Field[T]](m *Dense[T], excludeRow, excludeCol int) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if excludeRow < 0 || excludeRow >= m.r || excludeCol < 0 || excludeCol >= m.c {
		return nil, matrixErrorf(opSubmatrix,
			fmt.Errorf("exclude (%d,%d): %w", excludeRow, excludeCol, ErrOutOfRange))
	}
	if m.r == 1 || m.c == 1 {
		return nil, matrixErrorf(opSubmatrix, ErrInvalidDimensions)
	}

	return m.minor(excludeRow, excludeCol), nil
}

// minor is the unchecked core of Submatrix.
func (m *Dense[T]) minor(excludeRow, excludeCol int) *Dense[T] {
	out := newDenseUncapped[T](m.r-1, m.c-1)
	k := 0
	for i := 0; i < m.r; i++ {
		if i == excludeRow {
			continue
		}
		for j := 0; j < m.c; j++ {
			if j == excludeCol {
				continue
			}
			out.data[k] = m.data[i*m.c+j]
			k++
		}
	}

	return out
}
