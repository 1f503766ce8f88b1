// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSub(t *testing.T) {
	t.Parallel()

	a := MustQ(t, []string{"1/2", "1"}, []string{"2", "3"})
	b := MustQ(t, []string{"1/2", "-1"}, []string{"1/3", "0"})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	RequireEqualQ(t, MustQ(t, []string{"1", "0"}, []string{"7/3", "3"}), sum)

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	RequireEqualQ(t, MustQ(t, []string{"0", "2"}, []string{"5/3", "3"}), diff)

	_, err = matrix.Add(a, MustQ(t, []string{"1", "2", "3"}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	// Operands are untouched.
	RequireEqualQ(t, MustQ(t, []string{"1/2", "1"}, []string{"2", "3"}), a)
}

func TestMul(t *testing.T) {
	t.Parallel()

	a := MustF(t, []float64{1, 2, 3}, []float64{4, 5, 6})
	b := MustF(t, []float64{7, 8}, []float64{9, 10}, []float64{11, 12})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	RequireCloseF(t, MustF(t, []float64{58, 64}, []float64{139, 154}), got)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestIdentityProductAndTrace(t *testing.T) {
	t.Parallel()

	I := MustIdentity[Q](t, 3)
	II, err := matrix.Mul(I, I)
	require.NoError(t, err)
	RequireEqualQ(t, I, II)

	tr, err := matrix.Trace(I)
	require.NoError(t, err)
	assert.True(t, tr.Equal(scalar.Int(3)))

	_, err = matrix.Trace(MustDense[Q](t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestScaleAndTranspose(t *testing.T) {
	t.Parallel()

	m := MustQ(t, []string{"1", "2", "3"}, []string{"4", "5", "6"})

	s, err := matrix.Scale(m, scalar.MustRational(-1, 2))
	require.NoError(t, err)
	RequireEqualQ(t, MustQ(t, []string{"-1/2", "-1", "-3/2"}, []string{"-2", "-5/2", "-3"}), s)

	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	RequireEqualQ(t, MustQ(t, []string{"1", "4"}, []string{"2", "5"}, []string{"3", "6"}), tr)

	// Derived matrices never alias the source.
	require.NoError(t, tr.Set(0, 0, scalar.Int(9)))
	v, _ := m.At(0, 0)
	assert.Equal(t, "1", v.String())
}

// TestTransposeOfProduct checks (A·B)ᵀ == Bᵀ·Aᵀ in both fields.
func TestTransposeOfProduct(t *testing.T) {
	t.Parallel()

	a := MustQ(t, []string{"1", "2/3", "0"}, []string{"-1", "5", "1/4"})
	b := MustQ(t, []string{"2", "1"}, []string{"0", "-3"}, []string{"7/2", "1"})

	ab, err := matrix.Mul(a, b)
	require.NoError(t, err)
	left, err := matrix.Transpose(ab)
	require.NoError(t, err)

	bt, _ := matrix.Transpose(b)
	at, _ := matrix.Transpose(a)
	right, err := matrix.Mul(bt, at)
	require.NoError(t, err)
	RequireEqualQ(t, left, right)

	af, err := matrix.Convert[F](a)
	require.NoError(t, err)
	bf, err := matrix.Convert[F](b)
	require.NoError(t, err)
	abf, _ := matrix.Mul(af, bf)
	leftF, _ := matrix.T(abf)
	btf, _ := matrix.T(bf)
	atf, _ := matrix.T(af)
	rightF, _ := matrix.Mul(btf, atf)
	RequireCloseF(t, leftF, rightF)
}

func TestDeterminant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    *matrix.Dense[Q]
		want string
	}{
		{"1x1", MustQ(t, []string{"-7/2"}), "-7/2"},
		{"2x2", MustQ(t, []string{"1", "2"}, []string{"3", "4"}), "-2"},
		{"3x3", MustQ(t, []string{"6", "1", "1"}, []string{"4", "-2", "5"}, []string{"2", "8", "7"}), "-306"},
		{"3x3 singular", MustQ(t, []string{"1", "2", "3"}, []string{"4", "5", "6"}, []string{"7", "8", "9"}), "0"},
		{"4x4 triangular", MustQ(t,
			[]string{"2", "1", "0", "3"},
			[]string{"0", "1/2", "4", "1"},
			[]string{"0", "0", "3", "5"},
			[]string{"0", "0", "0", "-1"}), "-3"},
		{"5x5 tridiagonal", tridiagonal5(t), "6"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := matrix.Determinant(tc.m)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}

	_, err := matrix.Determinant(MustDense[Q](t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Determinant[Q](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// tridiagonal5 is the 5×5 matrix with 2 on the diagonal and 1 beside it (det 6).
func tridiagonal5(t *testing.T) *matrix.Dense[Q] {
	t.Helper()

	return MustQ(t,
		[]string{"2", "1", "0", "0", "0"},
		[]string{"1", "2", "1", "0", "0"},
		[]string{"0", "1", "2", "1", "0"},
		[]string{"0", "0", "1", "2", "1"},
		[]string{"0", "0", "0", "1", "2"},
	)
}

func TestInverse_2x2(t *testing.T) {
	t.Parallel()

	m := MustQ(t, []string{"1", "2"}, []string{"3", "4"})
	inv, err := matrix.Inverse(m)
	require.NoError(t, err)
	RequireEqualQ(t, MustQ(t, []string{"-2", "1"}, []string{"3/2", "-1/2"}), inv)

	mf := MustF(t, []float64{1, 2}, []float64{3, 4})
	invF, err := matrix.Inverse(mf)
	require.NoError(t, err)
	RequireCloseF(t, MustF(t, []float64{-2, 1}, []float64{1.5, -0.5}), invF)
}

// TestInverse_UpToCap verifies A·A⁻¹ = I for every size up to 5×5, which
// needs an augmented working matrix wider than the public cap.
func TestInverse_UpToCap(t *testing.T) {
	t.Parallel()

	full := tridiagonal5(t)
	for n := 1; n <= matrix.MaxDim; n++ {
		rows := full.RowsData()[:n]
		for i := range rows {
			rows[i] = rows[i][:n]
		}
		a := MustRows(t, rows)

		inv, err := matrix.Inverse(a)
		require.NoError(t, err, "n=%d", n)
		prod, err := matrix.Mul(a, inv)
		require.NoError(t, err)
		RequireEqualQ(t, MustIdentity[Q](t, n), prod)

		af, _ := matrix.Convert[F](a)
		invF, err := matrix.Inverse(af)
		require.NoError(t, err)
		prodF, _ := matrix.Mul(af, invF)
		RequireCloseF(t, MustIdentity[F](t, n), prodF)
	}
}

func TestInverse_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Inverse(MustQ(t, []string{"1", "2"}, []string{"2", "4"}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Inverse(MustF(t, []float64{1, 2}, []float64{1, 2 + 1e-12}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Inverse(MustDense[Q](t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	assert.EqualError(t, err, "Inverse: ValidateSquare: matrix: matrix is not square")

	_, err = matrix.InverseUncapped_TestOnly(MustQ(t, []string{"1", "2"}, []string{"2", "4"}))
	require.ErrorIs(t, err, matrix.ErrSingular)
}
