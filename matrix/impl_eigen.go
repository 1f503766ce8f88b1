// SPDX-License-Identifier: MIT

// Package matrix - spectral kernels: eigenvalues, null-space eigenvectors,
// diagonalization and the diagonalizability predicate.
//
// Known approximation boundaries:
//   - 2×2 eigenvalues are solved analytically; a negative discriminant
//     (complex-conjugate pair) reports trace/2 twice. Complex values are not represented.
//   - n ≠ 2 runs a fixed budget of unshifted QR iterations (A ← R·Q) with no
//     convergence check. Matrices with repeated or complex eigenvalues may
//     not converge.
//   - Eigenvectors and Diagonalize are floating-only capabilities.
//   - IsDiagonalizable uses two distinct policies: the exact field checks
//     square and det ≠ 0 (a sufficient, not exact, criterion); the floating
//     field requires Diagonalize to succeed.

package matrix

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvlinalg/scalar"
)

const (
	opEigenvalues      = "Eigenvalues"
	opEigenvectors     = "Eigenvectors"
	opDiagonalize      = "Diagonalize"
	opIsDiagonalizable = "IsDiagonalizable"
)

// Eigenvalues returns the eigenvalue estimates of a square matrix.
// MAIN DESCRIPTION:
//   - 1×1: the sole entry.
//   - 2×2: roots of λ² − tr·λ + det = 0, larger root first; each root is
//     re-expressed in T (snapped with WithMaxDenominator for Rational).
//   - otherwise: the diagonal after WithQRIterations unshifted QR steps.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Determinism:
//   - Fixed iteration budget; identical inputs give identical outputs.
//
// Complexity:
//   - O(iterations · n³) for n ≥ 3.
func Eigenvalues[T scalar.Field[T]](m *Dense[T], opts ...Option) ([]T, error) {
	if err := validateSquareNotNil(m); err != nil {
		return nil, matrixErrorf(opEigenvalues, err)
	}
	vals, err := m.eigenvalues(gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opEigenvalues, err)
	}

	return vals, nil
}

func (m *Dense[T]) eigenvalues(o Options) ([]T, error) {
	n := m.r
	switch n {
	case 1:
		return []T{m.data[0]}, nil
	case 2:
		tr, det := m.trace(), m.det()
		trD, detD := tr.Float64(), det.Float64()
		disc := trD*trD - 4*detD
		if disc < 0 {
			half, err := tr.Div(scalar.Zero[T]().FromInt64(2))
			if err != nil {
				return nil, err
			}

			return []T{half, half}, nil
		}
		root := math.Sqrt(disc)

		return []T{
			fromFloat[T]((trD+root)/2, o.maxDenominator),
			fromFloat[T]((trD-root)/2, o.maxDenominator),
		}, nil
	}

	a := m.Clone()
	for it := 0; it < o.qrIterations; it++ {
		q, r, err := a.qr(o)
		if err != nil {
			return nil, err
		}
		a = mulUnchecked(r, q)
	}
	vals := make([]T, n)
	for i := 0; i < n; i++ {
		vals[i] = a.data[i*n+i]
	}

	return vals, nil
}

// nullSpace returns one basis vector of ker(m − λI) per free column of its RREF.
// Each vector has a 1 at its free column and −RREF[row][free] at each pivot column.
func (m *Dense[T]) nullSpace(lambda T) ([][]T, error) {
	n := m.r
	shifted := m.Clone()
	for i := 0; i < n; i++ {
		shifted.data[i*n+i] = shifted.data[i*n+i].Sub(lambda)
	}
	if err := shifted.rrefInPlace(); err != nil {
		return nil, err
	}

	// pivotCol[r] is the pivot column of row r, or -1 for a zero row.
	pivotCol := make([]int, n)
	isPivot := make([]bool, n)
	for r := 0; r < n; r++ {
		pivotCol[r] = -1
		for c := 0; c < n; c++ {
			if !shifted.data[r*n+c].IsZero() {
				pivotCol[r] = c
				isPivot[c] = true

				break
			}
		}
	}

	zero, one := scalar.Zero[T](), scalar.One[T]()
	var out [][]T
	for free := 0; free < n; free++ {
		if isPivot[free] {
			continue
		}
		v := make([]T, n)
		for i := range v {
			v[i] = zero
		}
		v[free] = one
		for r := 0; r < n; r++ {
			if p := pivotCol[r]; p >= 0 {
				v[p] = shifted.data[r*n+free].Neg()
			}
		}
		out = append(out, v)
	}

	return out, nil
}

// Eigenvectors returns a basis of the eigenspace of lambda: the null space
// of (m − λI) read off its RREF, one vector per free column.
// MAIN DESCRIPTION:
//   - A lambda that is not (numerically) an eigenvalue yields an empty result.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func Eigenvectors(m *Dense[scalar.Float], lambda scalar.Float) ([][]scalar.Float, error) {
	if err := validateSquareNotNil(m); err != nil {
		return nil, matrixErrorf(opEigenvectors, err)
	}
	vecs, err := m.nullSpace(lambda)
	if err != nil {
		return nil, matrixErrorf(opEigenvectors, err)
	}

	return vecs, nil
}

// Diagonalize factors m as P·D·P⁻¹.
// MAIN DESCRIPTION:
//   - Eigenvalues are deduplicated within WithDedupTolerance.
//   - Eigenvectors of every distinct value become the columns of P, in order.
//   - D's diagonal is re-derived per column from A·x = λx using the first
//     component with |x_i| > WithComponentThreshold, falling back to the
//     eigenvalue the vector came from.
//
// Returns:
//   - p, d, pInv with m ≈ p·d·pInv.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrNotDiagonalizable when fewer than n eigenvectors are found, or P is
//     singular.
//
// Complexity:
//   - Dominated by Eigenvalues; the null-space work is O(k·n³) for k distinct values.
func Diagonalize(m *Dense[scalar.Float], opts ...Option) (p, d, pInv *Dense[scalar.Float], err error) {
	if err = validateSquareNotNil(m); err != nil {
		return nil, nil, nil, matrixErrorf(opDiagonalize, err)
	}
	o := gatherOptions(opts...)
	n := m.r

	vals, err := m.eigenvalues(o)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opDiagonalize, err)
	}
	distinct := dedupWithin(vals, o.dedupTol)

	type eigenpair struct {
		vec    []scalar.Float
		lambda scalar.Float
	}
	var pairs []eigenpair
	for _, lambda := range distinct {
		vecs, vErr := m.nullSpace(lambda)
		if vErr != nil {
			return nil, nil, nil, matrixErrorf(opDiagonalize, vErr)
		}
		for _, v := range vecs {
			pairs = append(pairs, eigenpair{vec: v, lambda: lambda})
		}
	}
	if len(pairs) < n {
		return nil, nil, nil, matrixErrorf(opDiagonalize, ErrNotDiagonalizable)
	}

	p = newDenseUncapped[scalar.Float](n, n)
	d = newDenseUncapped[scalar.Float](n, n)
	for k := 0; k < n; k++ {
		x := pairs[k].vec
		for i := 0; i < n; i++ {
			p.data[i*n+k] = x[i]
		}
		d.data[k*n+k] = m.rayleighComponent(x, pairs[k].lambda, o.componentThreshold)
	}
	if p.det().IsZero() {
		return nil, nil, nil, matrixErrorf(opDiagonalize, ErrNotDiagonalizable)
	}
	pInv, err = p.inverseUnchecked()
	if err != nil {
		return nil, nil, nil, matrixErrorf(opDiagonalize, ErrNotDiagonalizable)
	}

	return p, d, pInv, nil
}

// rayleighComponent returns (A·x)_i / x_i at the first |x_i| > threshold,
// or fallback when no component qualifies.
func (m *Dense[T]) rayleighComponent(x []T, fallback T, threshold float64) T {
	n := m.r
	for i := 0; i < n; i++ {
		if math.Abs(x[i].Float64()) <= threshold {
			continue
		}
		ax := scalar.Zero[T]()
		for k := 0; k < n; k++ {
			ax = ax.Add(m.data[i*n+k].Mul(x[k]))
		}
		if q, err := ax.Div(x[i]); err == nil {
			return q
		}
	}

	return fallback
}

// dedupWithin keeps the first of every group of values closer than tol, in order.
func dedupWithin[T scalar.Field[T]](vals []T, tol float64) []T {
	out := make([]T, 0, len(vals))
	for _, v := range vals {
		dup := false
		for _, u := range out {
			if math.Abs(v.Float64()-u.Float64()) < tol {
				dup = true

				break
			}
		}
		if !dup {
			out = append(out, v)
		}
	}

	return out
}

// IsDiagonalizable reports whether m is diagonalizable under the policy of
// its field.
// MAIN DESCRIPTION:
//   - Non-square input reports false (no error).
//   - Exact fields (Rational): det(m) ≠ 0. This misreports defective
//     matrices with a non-zero determinant and is kept as a documented policy.
//   - Floating fields: Diagonalize succeeds on the float64 image of m.
//
// Errors:
//   - ErrNilMatrix; any Diagonalize failure other than ErrNotDiagonalizable
//     or ErrSingular is returned as-is.
func IsDiagonalizable[T scalar.Field[T]](m *Dense[T], opts ...Option) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opIsDiagonalizable, err)
	}
	if !m.IsSquare() {
		return false, nil
	}
	if scalar.Zero[T]().Exact() {
		return !m.det().IsZero(), nil
	}

	_, _, _, err := Diagonalize(toFloat(m), opts...)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotDiagonalizable), errors.Is(err, ErrSingular):
		return false, nil
	default:
		return false, matrixErrorf(opIsDiagonalizable, err)
	}
}
