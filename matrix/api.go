// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.
//   - Use Convert to move a matrix between the exact and floating fields
//     (e.g. to run Diagonalize on a Rational input).

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlinalg/scalar"
)

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros[T scalar.Field[T]](rows, cols int) (*Dense[T], error) {
	return NewDense[T](rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: Use as a neutral element for inverses and products.
func NewIdentity[T scalar.Field[T]](n int) (*Dense[T], error) {
	I, err := NewDense[T](n, n)
	if err != nil {
		return nil, fmt.Errorf("NewIdentity(%d): %w", n, ErrInvalidDimensions)
	}
	one := scalar.One[T]()
	for i := 0; i < n; i++ {
		I.data[i*n+i] = one
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike[T scalar.Field[T]](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense[T](m.r, m.c)
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2). Validates square via central validator.
func IdentityLike[T scalar.Field[T]](m *Dense[T]) (*Dense[T], error) {
	if err := validateSquareNotNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity[T](m.r)
}

// ---------- Linear Algebra (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b.
func Sum[T scalar.Field[T]](a, b *Dense[T]) (*Dense[T], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff[T scalar.Field[T]](a, b *Dense[T]) (*Dense[T], error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
func Product[T scalar.Field[T]](a, b *Dense[T]) (*Dense[T], error) { return Mul(a, b) }

// T is a short alias for Transpose.
func T[E scalar.Field[E]](m *Dense[E]) (*Dense[E], error) { return Transpose(m) }

// ScaleBy is an alias for Scale with the scalar first, reading as "s · m".
func ScaleBy[T scalar.Field[T]](s T, m *Dense[T]) (*Dense[T], error) { return Scale(m, s) }

// ---------- Field conversion & comparison ----------

// Convert re-expresses m in the field D through float64.
// Rational targets are snapped with the default continued-fraction bound,
// so Float → Rational is an approximation and Rational → Float is exact up
// to float64 rounding.
//
// Errors: ErrNilMatrix.
func Convert[D scalar.Field[D], S scalar.Field[S]](m *Dense[S]) (*Dense[D], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Convert", err)
	}
	var zero D
	out := newDenseUncapped[D](m.r, m.c)
	for k, v := range m.data {
		out.data[k] = zero.FromFloat64(v.Float64())
	}

	return out, nil
}

// toFloat is Convert to Float for a known non-nil m.
func toFloat[S scalar.Field[S]](m *Dense[S]) *Dense[scalar.Float] {
	if f, ok := any(m).(*Dense[scalar.Float]); ok {
		return f
	}
	out := newDenseUncapped[scalar.Float](m.r, m.c)
	for k, v := range m.data {
		out.data[k] = scalar.Float(v.Float64())
	}

	return out
}

// AllClose reports equal shapes and |a_ij − b_ij| ≤ tol for every entry,
// compared through Float64. Nil inputs are never close.
//
// AI-Hints: Use for Float results; for Rational prefer exact Equal.
func AllClose[T scalar.Field[T]](a, b *Dense[T], tol float64) bool {
	if a == nil || b == nil || a.r != b.r || a.c != b.c {
		return false
	}
	for k := range a.data {
		if math.Abs(a.data[k].Float64()-b.data[k].Float64()) > tol {
			return false
		}
	}

	return true
}

// Equal reports equal shapes and field-equal entries (exact for Rational,
// within 1e-9 for Float).
func Equal[T scalar.Field[T]](a, b *Dense[T]) bool {
	if a == nil || b == nil || a.r != b.r || a.c != b.c {
		return false
	}
	for k := range a.data {
		if !a.data[k].Equal(b.data[k]) {
			return false
		}
	}

	return true
}
