// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and builders for both fields.
//   - Keep literal data readable: rationals are written as "n/d" strings.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/scalar"
	"github.com/stretchr/testify/require"
)

// Q is shorthand for an exact rational literal.
type Q = scalar.Rational

// F is shorthand for a floating literal.
type F = scalar.Float

// floatTol is the comparison tolerance for Float results in tests.
const floatTol = 1e-6

// MustDense allocates an r×c zero matrix or fails the test.
func MustDense[T scalar.Field[T]](t *testing.T, r, c int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDense[T](r, c)
	require.NoError(t, err)

	return m
}

// MustRows builds a matrix from literal rows or fails the test.
func MustRows[T scalar.Field[T]](t *testing.T, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustQ builds an exact matrix from "n" / "n/d" literals.
func MustQ(t *testing.T, rows ...[]string) *matrix.Dense[Q] {
	t.Helper()
	data := make([][]Q, len(rows))
	for i, row := range rows {
		data[i] = make([]Q, len(row))
		for j, s := range row {
			v, err := scalar.ParseRational(s)
			require.NoError(t, err, s)
			data[i][j] = v
		}
	}

	return MustRows(t, data)
}

// MustF builds a floating matrix from float64 literals.
func MustF(t *testing.T, rows ...[]float64) *matrix.Dense[F] {
	t.Helper()
	data := make([][]F, len(rows))
	for i, row := range rows {
		data[i] = make([]F, len(row))
		for j, v := range row {
			data[i][j] = F(v)
		}
	}

	return MustRows(t, data)
}

// MustIdentity builds I_n or fails the test.
func MustIdentity[T scalar.Field[T]](t *testing.T, n int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewIdentity[T](n)
	require.NoError(t, err)

	return m
}

// RequireEqualQ asserts exact entrywise equality and prints both sides on failure.
func RequireEqualQ(t *testing.T, want, got *matrix.Dense[Q]) {
	t.Helper()
	require.True(t, matrix.Equal(want, got), "want:\n%s\ngot:\n%s", want, got)
}

// RequireCloseF asserts entrywise |want-got| ≤ floatTol.
func RequireCloseF(t *testing.T, want, got *matrix.Dense[F]) {
	t.Helper()
	require.True(t, matrix.AllClose(want, got, floatTol), "want:\n%s\ngot:\n%s", want, got)
}

// floats projects a []T into []float64 for InDeltaSlice-style checks.
func floats[T scalar.Field[T]](xs []T) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x.Float64()
	}

	return out
}
