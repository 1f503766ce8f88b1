// Package matrix is a bounded-size (at most 5×5) dense matrix engine written
// once over any scalar field.
//
// The matrix package provides:
//
//   - Dense[T], a row-major value container over scalar.Rational (exact) or
//     scalar.Float (tolerance-based), with safe At/Set/Row/Col accessors.
//   - Arithmetic: Add, Sub, Mul, Scale, Transpose, Trace.
//   - Reduction: REF, RREF, Rank, Basis, IsLinearlyIndependent, sharing one
//     first-non-zero pivot policy with free-column skipping.
//   - Determinant (cofactor expansion) and Inverse ([A|I] reduction).
//   - GramSchmidt and QR, with square-root norms snapped back into the exact
//     field through continued fractions.
//   - Eigenvalues (2×2 analytic, otherwise fixed-budget unshifted QR),
//     and for Float matrices Eigenvectors and Diagonalize.
//   - IsDiagonalizable with a distinct policy per field, and IsSymmetric.
//
// Every derived matrix is a fresh allocation; inputs are never mutated.
// Failures are reported with the sentinels in errors.go (plus
// scalar.ErrDivisionByZero) wrapped with an operation tag, so callers match
// them with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
