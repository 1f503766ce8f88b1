// SPDX-License-Identifier: MIT
package stats_test

import (
	"testing"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/scalar"
	"github.com/katalvlaran/lvlinalg/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataQ(t *testing.T, rows ...[]int64) *matrix.Dense[scalar.Rational] {
	t.Helper()

	data := make([][]scalar.Rational, len(rows))
	for i, r := range rows {
		data[i] = ints(r...)
	}
	m, err := matrix.NewDenseFromRows(data)
	require.NoError(t, err)

	return m
}

func TestCenterColumns(t *testing.T) {
	t.Parallel()

	x := dataQ(t, []int64{1, 4}, []int64{2, 4}, []int64{4, 4})
	xc, means, err := stats.CenterColumns(x)
	require.NoError(t, err)
	assert.Equal(t, "7/3", means[0].String())
	assert.Equal(t, "4", means[1].String())
	assert.Equal(t, "[-4/3, 0]\n[-1/3, 0]\n[5/3, 0]\n", xc.String())

	_, _, err = stats.CenterColumns[scalar.Rational](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCovariance_Symmetric_DiagMatchesVariance(t *testing.T) {
	t.Parallel()

	x := dataQ(t,
		[]int64{1, 2, 3},
		[]int64{2, 3, 4},
		[]int64{3, 5, 7},
		[]int64{-1, 0, 1},
	)
	cov, err := stats.Covariance(x)
	require.NoError(t, err)
	require.Equal(t, 3, cov.Rows())

	sym, err := matrix.IsSymmetric(cov)
	require.NoError(t, err)
	assert.True(t, sym)

	for j := 0; j < 3; j++ {
		col, err := x.Col(j)
		require.NoError(t, err)
		want, err := stats.Variance(col)
		require.NoError(t, err)
		got, err := cov.At(j, j)
		require.NoError(t, err)
		assert.True(t, want.Equal(got), "var[%d]: got %s want %s", j, got, want)
	}
}

func TestCovariance_Exact(t *testing.T) {
	t.Parallel()

	cov, err := stats.Covariance(dataQ(t, []int64{1, 2}, []int64{3, 6}, []int64{5, 10}))
	require.NoError(t, err)
	assert.Equal(t, "[4, 8]\n[8, 16]\n", cov.String())
}

func TestCovariance_RowsLessThan2_Error(t *testing.T) {
	t.Parallel()

	_, err := stats.Covariance(dataQ(t, []int64{1, 2, 3}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = stats.Correlation(dataQ(t, []int64{1, 2, 3}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestCorrelation_Basics_DiagAndDegenerate(t *testing.T) {
	t.Parallel()

	// Column 1 is twice column 0; column 2 is constant.
	x := dataQ(t, []int64{1, 2, 7}, []int64{2, 4, 7}, []int64{3, 6, 7})
	corr, err := stats.Correlation(x)
	require.NoError(t, err)

	want, err := matrix.NewDenseFromRows([][]scalar.Float{
		{1, 1, 0},
		{1, 1, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)
	assert.True(t, matrix.AllClose(want, corr, 1e-12), corr.String())
}

func TestCorrelation_ScaleInvariance(t *testing.T) {
	t.Parallel()

	x, err := matrix.NewDenseFromRows([][]scalar.Float{
		{1, 0.5, -2},
		{2, 1.5, 0},
		{4, -1, 1},
		{0, 2, 3},
	})
	require.NoError(t, err)
	scaled, err := matrix.Scale(x, 3.5)
	require.NoError(t, err)

	c1, err := stats.Correlation(x)
	require.NoError(t, err)
	c2, err := stats.Correlation(scaled)
	require.NoError(t, err)
	assert.True(t, matrix.AllClose(c1, c2, 1e-9))

	for j := 0; j < 3; j++ {
		d, _ := c1.At(j, j)
		assert.InDelta(t, 1.0, d.Float64(), 1e-12)
	}
}

func TestCorrelation_NegativeAndExactInput(t *testing.T) {
	t.Parallel()

	// Column 1 falls exactly as column 0 rises.
	corr, err := stats.Correlation(dataQ(t, []int64{1, 6}, []int64{2, 4}, []int64{3, 2}))
	require.NoError(t, err)

	want, err := matrix.NewDenseFromRows([][]scalar.Float{
		{1, -1},
		{-1, 1},
	})
	require.NoError(t, err)
	assert.True(t, matrix.AllClose(want, corr, 1e-12), corr.String())
}
