// SPDX-License-Identifier: MIT

// Package matrix - classical Gram-Schmidt orthonormalization and the QR
// factorization derived from it.
//
// Precision boundary:
//   - Norms are square roots and generally irrational. They are computed in
//     float64 and, for the exact field, snapped back to a Rational through the
//     continued-fraction approximation (denominator ≤ WithMaxDenominator).
//     Exact-mode orthonormal columns are therefore approximations.

package matrix

import (
	"math"

	"github.com/katalvlaran/lvlinalg/scalar"
)

const (
	opGramSchmidt = "GramSchmidt"
	opQR          = "QR"
)

// fromFloat re-enters the field T from a float64, honoring maxDen for Rational.
func fromFloat[T scalar.Field[T]](v float64, maxDen int64) T {
	var zero T
	if _, ok := any(zero).(scalar.Rational); ok {
		return any(scalar.RationalFromFloat64(v, maxDen)).(T)
	}

	return zero.FromFloat64(v)
}

// GramSchmidt orthonormalizes the columns of m in order.
// MAIN DESCRIPTION:
//   - For each column j, subtract its projection onto every previous output
//     column u_k (coefficient dot(v,u)/dot(u,u), skipped when dot(u,u) is zero).
//   - Normalize the residual by its Euclidean norm; a residual with zero
//     squared norm is left as a zero column.
//
// Inputs:
//   - m: any shape within the cap.
//   - opts: WithMaxDenominator (exact field only).
//
// Returns:
//   - *Dense[T]: same shape as m, columns orthonormal (or zero).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r·c²), Space O(r·c).
func GramSchmidt[T scalar.Field[T]](m *Dense[T], opts ...Option) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opGramSchmidt, err)
	}
	q, err := m.gramSchmidt(gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opGramSchmidt, err)
	}

	return q, nil
}

func (m *Dense[T]) gramSchmidt(o Options) (*Dense[T], error) {
	rows, cols := m.r, m.c
	out := newDenseUncapped[T](rows, cols)
	for j := 0; j < cols; j++ {
		v := m.col(j)
		for k := 0; k < j; k++ {
			u := out.col(k)
			dotVU, dotUU := dot(v, u), dot(u, u)
			if dotUU.IsZero() {
				continue
			}
			proj, err := dotVU.Div(dotUU)
			if err != nil {
				return nil, err
			}
			for i := range v {
				v[i] = v[i].Sub(proj.Mul(u[i]))
			}
		}

		normSq := dot(v, v)
		if normSq.IsZero() {
			continue
		}
		norm := fromFloat[T](math.Sqrt(normSq.Float64()), o.maxDenominator)
		if norm.IsZero() {
			continue
		}
		for i := 0; i < rows; i++ {
			x, err := v[i].Div(norm)
			if err != nil {
				return nil, err
			}
			out.data[i*cols+j] = x
		}
	}

	return out, nil
}

// dot returns Σ a_i·b_i; a and b have equal length.
func dot[T scalar.Field[T]](a, b []T) T {
	sum := scalar.Zero[T]()
	for i := range a {
		sum = sum.Add(a[i].Mul(b[i]))
	}

	return sum
}

// QR factors m as Q·R with Q = GramSchmidt(m) and R = Qᵀ·m.
// MAIN DESCRIPTION:
//   - R is upper triangular by construction when the columns of m are
//     independent; this is not re-verified.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r·c²), Space O(r·c + c²).
func QR[T scalar.Field[T]](m *Dense[T], opts ...Option) (q, r *Dense[T], err error) {
	if err = ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	q, r, err = m.qr(gatherOptions(opts...))
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}

	return q, r, nil
}

func (m *Dense[T]) qr(o Options) (q, r *Dense[T], err error) {
	q, err = m.gramSchmidt(o)
	if err != nil {
		return nil, nil, err
	}

	return q, mulUnchecked(q.transpose(), m), nil
}
