// SPDX-License-Identifier: MIT

// Package matrix - row reduction kernels (REF, RREF) and the rank-derived
// predicates built on them.
//
// Pivot policy (shared by REF and RREF):
//   - A lead-column cursor and a current-row cursor both start at 0.
//   - The pivot is the first row at or below the current row whose lead entry
//     is non-zero under the field's IsZero policy (exact for Rational,
//     |v| > 1e-9 for Float). If none exists the lead column advances and the
//     same row is retried (free-column skipping).
//   - No partial pivoting: first non-zero in natural row order. This is a
//     known numerical-stability limit for Float inputs.
//
// Determinism:
//   - Fixed loop orders; identical inputs always produce identical outputs.

package matrix

import "github.com/katalvlaran/lvlinalg/scalar"

const (
	opREF   = "REF"
	opRREF  = "RREF"
	opRank  = "Rank"
	opBasis = "Basis"
)

// reduceInPlace runs the shared pivot loop on m.
// When full is false only entries below each pivot are eliminated (REF);
// when true the pivot row is normalized to 1 and every other row is
// eliminated (RREF).
func (m *Dense[T]) reduceInPlace(full bool) error {
	rows, cols := m.r, m.c
	lead := 0
	for r := 0; r < rows && lead < cols; {
		i := r
		for i < rows && m.data[i*cols+lead].IsZero() {
			i++
		}
		if i == rows {
			lead++
			continue
		}
		m.swapRows(r, i)

		if full {
			one := scalar.One[T]()
			inv, err := one.Div(m.data[r*cols+lead])
			if err != nil {
				return err
			}
			m.scaleRow(r, inv)
			m.data[r*cols+lead] = one
			for k := 0; k < rows; k++ {
				if k == r {
					continue
				}
				f := m.data[k*cols+lead]
				if !f.IsZero() {
					m.addMultipleOfRow(k, r, f.Neg())
				}
			}
		} else {
			pivot := m.data[r*cols+lead]
			for k := r + 1; k < rows; k++ {
				f, err := m.data[k*cols+lead].Div(pivot)
				if err != nil {
					return err
				}
				m.addMultipleOfRow(k, r, f.Neg())
			}
		}
		r++
		lead++
	}

	return nil
}

// rrefInPlace reduces m to RREF and snaps IsZero entries to the exact field
// zero so that tolerance noise does not leak into rank or basis extraction.
func (m *Dense[T]) rrefInPlace() error {
	if err := m.reduceInPlace(true); err != nil {
		return err
	}
	zero := scalar.Zero[T]()
	for k, v := range m.data {
		if v.IsZero() {
			m.data[k] = zero
		}
	}

	return nil
}

// REF returns the row echelon form of m (fresh copy; m is untouched).
// Errors: ErrNilMatrix; scalar.ErrDivisionByZero is not reachable for
// non-zero pivots but is propagated if the field reports it.
// Complexity: O(r²·c).
func REF[T scalar.Field[T]](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opREF, err)
	}
	out := m.Clone()
	if err := out.reduceInPlace(false); err != nil {
		return nil, matrixErrorf(opREF, err)
	}

	return out, nil
}

// RREF returns the reduced row echelon form of m (fresh copy; m is untouched).
// MAIN DESCRIPTION:
//   - Pivots are normalized to 1 and cleared above and below.
//   - Entries within the field's zero tolerance are snapped to exact zero
//     (a no-op for Rational).
//
// Errors: ErrNilMatrix.
//
// Notes:
//   - Idempotent: RREF(RREF(m)) == RREF(m).
//
// Complexity: O(r²·c).
func RREF[T scalar.Field[T]](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRREF, err)
	}
	out := m.Clone()
	if err := out.rrefInPlace(); err != nil {
		return nil, matrixErrorf(opRREF, err)
	}

	return out, nil
}

// Rank returns the number of non-zero rows in the REF of m.
// Errors: ErrNilMatrix.
func Rank[T scalar.Field[T]](m *Dense[T]) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	rank, err := m.rank()
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return rank, nil
}

func (m *Dense[T]) rank() (int, error) {
	ref := m.Clone()
	if err := ref.reduceInPlace(false); err != nil {
		return 0, err
	}
	rank := 0
	for i := 0; i < ref.r; i++ {
		if !ref.isZeroRow(i) {
			rank++
		}
	}

	return rank, nil
}

// IsLinearlyIndependent reports Rank(m) == min(Rows, Cols).
// Errors: ErrNilMatrix.
func IsLinearlyIndependent[T scalar.Field[T]](m *Dense[T]) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf("IsLinearlyIndependent", err)
	}
	rank, err := m.rank()
	if err != nil {
		return false, matrixErrorf("IsLinearlyIndependent", err)
	}

	return rank == min(m.r, m.c), nil
}

// Basis returns the rows of m whose counterpart in RREF(m) is non-zero.
// MAIN DESCRIPTION:
//   - The returned rows are copies of the ORIGINAL (non-reduced) rows at the
//     matching indices, in natural order.
//
// Errors: ErrNilMatrix.
//
// Notes:
//   - A zero matrix yields an empty, non-nil slice.
func Basis[T scalar.Field[T]](m *Dense[T]) ([][]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opBasis, err)
	}
	reduced := m.Clone()
	if err := reduced.rrefInPlace(); err != nil {
		return nil, matrixErrorf(opBasis, err)
	}
	out := make([][]T, 0, m.r)
	for i := 0; i < m.r; i++ {
		if reduced.isZeroRow(i) {
			continue
		}
		row := make([]T, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out = append(out, row)
	}

	return out, nil
}
