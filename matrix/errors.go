// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels (wrapped with an
// operation tag via matrixErrorf) and tests MUST check them via errors.Is.
// No algorithm panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Division failures coming from the scalar layer
// keep their own sentinel (scalar.ErrDivisionByZero) and are propagated as-is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> square -> singular -> diagonalizable.

var (
	// ErrInvalidDimensions is returned when a requested shape lies outside
	// [1, MaxDim] on either axis, or literal data is empty or ragged.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be within [1,5]")

	// ErrOutOfRange indicates that a cell, row or column index is outside bounds.
	// Public indexers (At/Set/Row/Col) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g., Add/Sub on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when Inverse is requested on a matrix whose
	// determinant is zero (exactly, or within tolerance for Float).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotDiagonalizable is returned by Diagonalize when too few independent
	// eigenvectors are found or the eigenvector matrix is not invertible.
	ErrNotDiagonalizable = errors.New("matrix: matrix is not diagonalizable")

	// ErrNilMatrix indicates that a nil *Dense was passed to an operation.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
