// SPDX-License-Identifier: MIT
// Package: stats
//
// Column statistics of a data matrix (rows are observations, columns are
// variables), composed from the matrix kernels Transpose, Mul and Scale.
//
//   - CenterColumns(X) -> (Xc, means)  // subtract per-column mean
//   - Covariance(X)    -> Cov          // sample covariance of columns: (Xcᵀ Xc)/(r-1)
//   - Correlation(X)   -> Corr         // Pearson correlation; zero-variance columns → zero row/column

package stats

import (
	"math"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/scalar"
)

const (
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
	opCorrelation   = "Correlation"
)

// CenterColumns subtracts the per-column mean from every element.
//
// Returns:
//   - the centered copy (r×c) and the column means (len c).
//
// Errors: matrix.ErrNilMatrix.
//
// Complexity: O(r·c).
func CenterColumns[T scalar.Field[T]](m *matrix.Dense[T]) (*matrix.Dense[T], []T, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, nil, statsErrorf(opCenterColumns, err)
	}
	rows := m.RowsData()
	means := make([]T, m.Cols())
	for j := range means {
		col, err := m.Col(j)
		if err != nil {
			return nil, nil, statsErrorf(opCenterColumns, err)
		}
		if means[j], err = Mean(col); err != nil {
			return nil, nil, statsErrorf(opCenterColumns, err)
		}
	}
	for i := range rows {
		for j := range rows[i] {
			rows[i][j] = rows[i][j].Sub(means[j])
		}
	}
	out, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, nil, statsErrorf(opCenterColumns, err)
	}

	return out, means, nil
}

// Covariance returns the sample covariance matrix of the columns of m,
// (Xcᵀ·Xc)/(r−1). The diagonal holds the per-column Variance. Exact for
// Rational input.
//
// Errors:
//   - matrix.ErrNilMatrix.
//   - matrix.ErrDimensionMismatch when m has fewer than two rows.
//
// Complexity: O(r·c²).
func Covariance[T scalar.Field[T]](m *matrix.Dense[T]) (*matrix.Dense[T], error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, statsErrorf(opCovariance, err)
	}
	r := m.Rows()
	if r < 2 {
		return nil, statsErrorf(opCovariance, matrix.ErrDimensionMismatch)
	}
	xc, _, err := CenterColumns(m)
	if err != nil {
		return nil, statsErrorf(opCovariance, err)
	}
	xct, err := matrix.Transpose(xc)
	if err != nil {
		return nil, statsErrorf(opCovariance, err)
	}
	g, err := matrix.Mul(xct, xc)
	if err != nil {
		return nil, statsErrorf(opCovariance, err)
	}
	one := scalar.One[T]()
	inv, err := one.Div(one.FromInt64(int64(r - 1)))
	if err != nil {
		return nil, statsErrorf(opCovariance, err)
	}

	return matrix.Scale(g, inv)
}

// Correlation returns the Pearson correlation matrix of the columns of m,
// cov_ij / (σ_i·σ_j), in float64 for every field.
// Columns with zero variance produce a zero row and column (including the
// diagonal entry).
//
// Errors: as Covariance.
func Correlation[T scalar.Field[T]](m *matrix.Dense[T]) (*matrix.Dense[scalar.Float], error) {
	cov, err := Covariance(m)
	if err != nil {
		return nil, statsErrorf(opCorrelation, err)
	}
	data := cov.RowsData()
	std := make([]float64, len(data))
	for j := range data {
		if !data[j][j].IsZero() {
			std[j] = math.Sqrt(data[j][j].Float64())
		}
	}
	corr := make([][]scalar.Float, len(data))
	for i := range data {
		corr[i] = make([]scalar.Float, len(data))
		for j := range data[i] {
			if std[i] == 0 || std[j] == 0 {
				continue
			}
			corr[i][j] = scalar.Float(data[i][j].Float64() / (std[i] * std[j]))
		}
	}
	out, err := matrix.NewDenseFromRows(corr)
	if err != nil {
		return nil, statsErrorf(opCorrelation, err)
	}

	return out, nil
}
