// SPDX-License-Identifier: MIT
// Package: stats
//
// Purpose:
//   - Provide descriptive statistics (mean, sample variance, standard deviation)
//     over a sequence of field values, written once for every scalar.Field.
//   - Provide per-row and per-column summaries of a matrix as deterministic
//     compositions over Row/Col extraction.
//
// Exposed API:
//   - Mean(xs)              -> T        // arithmetic mean; empty → field zero
//   - Variance(xs)          -> T        // sample variance (n−1); len < 2 → field zero
//   - StandardDeviation(xs) -> float64  // √Variance, always in float64
//   - Describe(xs)          -> Summary  // all three at once
//   - DescribeRows(m) / DescribeCols(m) -> []Summary
//
// Determinism & Performance:
//   - Fixed left-to-right accumulation; identical inputs give identical outputs.
//
// AI-Hints:
//   - For Rational inputs Mean and Variance are exact; only StandardDeviation
//     leaves the exact field, since square roots are generally irrational.

package stats

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/scalar"
)

// Operation name constants for unified error wrapping.
const (
	opMean         = "Mean"
	opVariance     = "Variance"
	opDescribeRows = "DescribeRows"
	opDescribeCols = "DescribeCols"
)

// statsErrorf wraps err with an operation tag, preserving the sentinel via %w.
func statsErrorf(tag string, err error) error {
	return fmt.Errorf("stats.%s: %w", tag, err)
}

// Mean returns the arithmetic mean of xs.
// An empty sequence yields the field zero (not an error).
//
// Errors:
//   - scalar.ErrDivisionByZero propagated from the field (unreachable for n ≥ 1).
//
// Complexity: O(n).
func Mean[T scalar.Field[T]](xs []T) (T, error) {
	zero := scalar.Zero[T]()
	if len(xs) == 0 {
		return zero, nil
	}
	sum := zero
	for _, x := range xs {
		sum = sum.Add(x)
	}
	mean, err := sum.Div(zero.FromInt64(int64(len(xs))))
	if err != nil {
		return zero, statsErrorf(opMean, err)
	}

	return mean, nil
}

// Variance returns the sample variance of xs: Σ(x − mean)² / (n − 1).
// Sequences shorter than 2 yield the field zero.
//
// Complexity: O(n).
func Variance[T scalar.Field[T]](xs []T) (T, error) {
	zero := scalar.Zero[T]()
	if len(xs) < 2 {
		return zero, nil
	}
	mean, err := Mean(xs)
	if err != nil {
		return zero, statsErrorf(opVariance, err)
	}
	sumSq := zero
	for _, x := range xs {
		d := x.Sub(mean)
		sumSq = sumSq.Add(d.Mul(d))
	}
	v, err := sumSq.Div(zero.FromInt64(int64(len(xs) - 1)))
	if err != nil {
		return zero, statsErrorf(opVariance, err)
	}

	return v, nil
}

// StandardDeviation returns √Variance(xs), computed in float64 for every field.
func StandardDeviation[T scalar.Field[T]](xs []T) (float64, error) {
	v, err := Variance(xs)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(v.Float64()), nil
}

// Summary bundles the three descriptive statistics of one sequence.
type Summary[T scalar.Field[T]] struct {
	Count    int
	Mean     T
	Variance T
	StdDev   float64
}

// Describe computes Mean, Variance and StandardDeviation in one call.
func Describe[T scalar.Field[T]](xs []T) (Summary[T], error) {
	mean, err := Mean(xs)
	if err != nil {
		return Summary[T]{}, err
	}
	v, err := Variance(xs)
	if err != nil {
		return Summary[T]{}, err
	}

	return Summary[T]{
		Count:    len(xs),
		Mean:     mean,
		Variance: v,
		StdDev:   math.Sqrt(v.Float64()),
	}, nil
}

// DescribeRows returns one Summary per row of m, in row order.
// Errors: matrix.ErrNilMatrix.
func DescribeRows[T scalar.Field[T]](m *matrix.Dense[T]) ([]Summary[T], error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, statsErrorf(opDescribeRows, err)
	}
	out := make([]Summary[T], m.Rows())
	for i := range out {
		row, err := m.Row(i)
		if err != nil {
			return nil, statsErrorf(opDescribeRows, err)
		}
		if out[i], err = Describe(row); err != nil {
			return nil, statsErrorf(opDescribeRows, err)
		}
	}

	return out, nil
}

// DescribeCols returns one Summary per column of m, in column order.
// Errors: matrix.ErrNilMatrix.
func DescribeCols[T scalar.Field[T]](m *matrix.Dense[T]) ([]Summary[T], error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, statsErrorf(opDescribeCols, err)
	}
	out := make([]Summary[T], m.Cols())
	for j := range out {
		col, err := m.Col(j)
		if err != nil {
			return nil, statsErrorf(opDescribeCols, err)
		}
		if out[j], err = Describe(col); err != nil {
			return nil, statsErrorf(opDescribeCols, err)
		}
	}

	return out, nil
}
