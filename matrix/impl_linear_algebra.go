// SPDX-License-Identifier: MIT
// Package matrix provides the core linear-algebra kernels over any scalar
// field: element-wise addition and subtraction, matrix multiplication,
// transpose, scalar scaling, trace, determinant and inverse. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Purpose:
//   - Define operation tags and shared helpers for determinism and error reporting.
//   - Keep every kernel allocation-explicit: results are fresh *Dense values.
//
// Notes:
//   - Reduction (REF/RREF/Rank/Basis), orthogonalization (Gram-Schmidt/QR) and
//     spectral kernels live in dedicated files (same package).
//   - All kernels use central validators and wrap via matrixErrorf.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/scalar"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opTrace       = "Trace"
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
//
// Implementation:
//   - Stage 1: Wrap using fmt.Errorf("%s: %w", tag, err) to enable errors.Is/As.
//
// Notes:
//   - Wrapping nil with %w yields a non-nil error that wraps a nil cause; do not do this.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a ± b.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: NotNil(a) → NotNil(b) → SameShape(a, b).
//   - Stage 2: single flat loop over the row-major buffers.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub[T scalar.Field[T]](a, b *Dense[T], subtract bool, opTag string) (*Dense[T], error) {
	if err := validateBinary(a, b, ValidateSameShape[T]); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := newDenseUncapped[T](a.r, a.c)
	for k := range a.data {
		if subtract {
			out.data[k] = a.data[k].Sub(b.data[k])
		} else {
			out.data[k] = a.data[k].Add(b.data[k])
		}
	}

	return out, nil
}

// Add returns a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add[T scalar.Field[T]](a, b *Dense[T]) (*Dense[T], error) {
	return addSub(a, b, false, opAdd)
}

// Sub returns a − b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub[T scalar.Field[T]](a, b *Dense[T]) (*Dense[T], error) {
	return addSub(a, b, true, opSub)
}

// Mul returns the matrix product a × b.
// MAIN DESCRIPTION:
//   - Standard triple loop (i → j → k) accumulating with the field's Add/Mul.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch when a.Cols != b.Rows.
//
// Determinism:
//   - Fixed loop order; the k-sum always runs 0..n−1.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T scalar.Field[T]](a, b *Dense[T]) (*Dense[T], error) {
	if err := validateBinary(a, b, ValidateMulCompatible[T]); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mulUnchecked(a, b), nil
}

// mulUnchecked multiplies conformable matrices without validation.
func mulUnchecked[T scalar.Field[T]](a, b *Dense[T]) *Dense[T] {
	r, n, c := a.r, a.c, b.c
	out := newDenseUncapped[T](r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			sum := scalar.Zero[T]()
			for k := 0; k < n; k++ {
				sum = sum.Add(a.data[i*n+k].Mul(b.data[k*c+j]))
			}
			out.data[i*c+j] = sum
		}
	}

	return out
}

// Scale returns s · m (every entry multiplied by s).
// Errors: ErrNilMatrix.
func Scale[T scalar.Field[T]](m *Dense[T], s T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := newDenseUncapped[T](m.r, m.c)
	for k, v := range m.data {
		out.data[k] = v.Mul(s)
	}

	return out, nil
}

// Transpose returns mᵀ as a fresh matrix (data copied, never aliased).
// Errors: ErrNilMatrix.
func Transpose[T scalar.Field[T]](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return m.transpose(), nil
}

// transpose is the unchecked core of Transpose.
func (m *Dense[T]) transpose() *Dense[T] {
	out := newDenseUncapped[T](m.c, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out
}

// Trace returns the sum of the diagonal entries.
// Errors: ErrNilMatrix, ErrNonSquare.
func Trace[T scalar.Field[T]](m *Dense[T]) (T, error) {
	if err := validateSquareNotNil(m); err != nil {
		var zero T

		return zero, matrixErrorf(opTrace, err)
	}

	return m.trace(), nil
}

func (m *Dense[T]) trace() T {
	sum := scalar.Zero[T]()
	for i := 0; i < m.r; i++ {
		sum = sum.Add(m.data[i*m.c+i])
	}

	return sum
}

// Determinant returns det(m).
// MAIN DESCRIPTION:
//   - 1×1: the sole entry; 2×2: ad − bc.
//   - Larger: cofactor expansion along row 0, sign alternating by column
//     parity, recursing on minors.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n!) (bounded by the 5×5 cap: at most 5·4·3 = 60 2×2 leaves).
//
// Notes:
//   - Exact for Rational; for Float the result carries ordinary rounding.
func Determinant[T scalar.Field[T]](m *Dense[T]) (T, error) {
	if err := validateSquareNotNil(m); err != nil {
		var zero T

		return zero, matrixErrorf(opDeterminant, err)
	}

	return m.det(), nil
}

// det is the unchecked cofactor expansion; m must be square.
func (m *Dense[T]) det() T {
	n := m.r
	switch n {
	case 1:
		return m.data[0]
	case 2:
		return m.data[0].Mul(m.data[3]).Sub(m.data[1].Mul(m.data[2]))
	}
	sum := scalar.Zero[T]()
	for j := 0; j < n; j++ {
		a := m.data[j]
		if a.IsZero() {
			continue
		}
		term := a.Mul(m.minor(0, j).det())
		if j%2 == 1 {
			sum = sum.Sub(term)
		} else {
			sum = sum.Add(term)
		}
	}

	return sum
}

// Inverse returns m⁻¹.
// MAIN DESCRIPTION:
//   - Checks det(m) first; a zero determinant (exact, or within tolerance for
//     Float) fails with ErrSingular before any reduction.
//   - Builds the n×2n augmented matrix [m | I], reduces it to RREF and
//     extracts the right-hand block.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n!) for the determinant check plus O(n²·2n) for the reduction.
//
// Notes:
//   - The augmented matrix has up to 10 columns; it is an internal working
//     matrix built with newDenseUncapped.
func Inverse[T scalar.Field[T]](m *Dense[T]) (*Dense[T], error) {
	if err := validateSquareNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if m.det().IsZero() {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	inv, err := m.inverseUnchecked()
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}

// inverseUnchecked runs the [m | I] reduction; m must be square.
func (m *Dense[T]) inverseUnchecked() (*Dense[T], error) {
	n := m.r
	w := 2 * n
	aug := newDenseUncapped[T](n, w)
	one := scalar.One[T]()
	for i := 0; i < n; i++ {
		copy(aug.data[i*w:i*w+n], m.data[i*n:(i+1)*n])
		aug.data[i*w+n+i] = one
	}
	if err := aug.rrefInPlace(); err != nil {
		return nil, err
	}
	// A pivot that failed to land on the left block means the tolerance check
	// on det passed but the reduction still found a dependent row.
	for i := 0; i < n; i++ {
		if !aug.data[i*w+i].Equal(one) {
			return nil, ErrSingular
		}
	}
	inv := newDenseUncapped[T](n, n)
	for i := 0; i < n; i++ {
		copy(inv.data[i*n:(i+1)*n], aug.data[i*w+n:(i+1)*w])
	}

	return inv, nil
}
