// SPDX-License-Identifier: MIT
package stats_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/scalar"
	"github.com/katalvlaran/lvlinalg/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ints(ns ...int64) []scalar.Rational {
	out := make([]scalar.Rational, len(ns))
	for i, n := range ns {
		out[i] = scalar.Int(n)
	}

	return out
}

func TestMean(t *testing.T) {
	t.Parallel()

	m, err := stats.Mean(ints(1, 2, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, "5/2", m.String())

	mf, err := stats.Mean([]scalar.Float{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, scalar.Float(2.5), mf)

	empty, err := stats.Mean[scalar.Rational](nil)
	require.NoError(t, err)
	assert.True(t, empty.IsZero())
}

func TestVariance(t *testing.T) {
	t.Parallel()

	v, err := stats.Variance(ints(1, 2, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, "5/3", v.String())

	vf, err := stats.Variance([]scalar.Float{1, 2, 3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 1.6667, vf.Float64(), 1e-4)

	for _, short := range [][]scalar.Rational{nil, ints(7)} {
		v, err = stats.Variance(short)
		require.NoError(t, err)
		assert.True(t, v.IsZero())
	}
}

func TestStandardDeviation(t *testing.T) {
	t.Parallel()

	sd, err := stats.StandardDeviation(ints(1, 2, 3, 4))
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(5.0/3.0), sd, 1e-12)

	sd, err = stats.StandardDeviation([]scalar.Float{5})
	require.NoError(t, err)
	assert.Zero(t, sd)
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	s, err := stats.Describe([]scalar.Rational{scalar.MustRational(1, 2), scalar.MustRational(3, 2)})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Count)
	assert.Equal(t, "1", s.Mean.String())
	assert.Equal(t, "1/2", s.Variance.String())
	assert.InDelta(t, math.Sqrt(0.5), s.StdDev, 1e-12)
}

func TestDescribeRowsCols(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFromRows([][]scalar.Float{
		{1, 2, 3},
		{4, 6, 8},
	})
	require.NoError(t, err)

	rows, err := stats.DescribeRows(m)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, scalar.Float(2), rows[0].Mean)
	assert.Equal(t, scalar.Float(6), rows[1].Mean)
	assert.InDelta(t, 4.0, rows[1].Variance.Float64(), 1e-12)

	cols, err := stats.DescribeCols(m)
	require.NoError(t, err)
	require.Len(t, cols, 3)
	assert.Equal(t, scalar.Float(2.5), cols[0].Mean)
	assert.InDelta(t, 4.5, cols[0].Variance.Float64(), 1e-12)

	_, err = stats.DescribeRows[scalar.Float](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = stats.DescribeCols[scalar.Rational](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
