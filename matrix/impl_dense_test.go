// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_ShapeCap verifies that both axes must lie in [1, MaxDim].
func TestNewDense_ShapeCap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r, c int
		ok   bool
	}{
		{1, 1, true},
		{5, 5, true},
		{3, 5, true},
		{0, 3, false},
		{3, 0, false},
		{6, 1, false},
		{1, 6, false},
		{-1, 2, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(fmt.Sprintf("%dx%d", tc.r, tc.c), func(t *testing.T) {
			t.Parallel()
			m, err := matrix.NewDense[Q](tc.r, tc.c)
			if tc.ok {
				require.NoError(t, err)
				r, c := m.Shape()
				assert.Equal(t, tc.r, r)
				assert.Equal(t, tc.c, c)

				return
			}
			require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
		})
	}
}

func TestNewDense_ZeroFilled(t *testing.T) {
	t.Parallel()

	m := MustDense[Q](t, 2, 3)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			assert.True(t, v.IsZero())
		}
	}
}

func TestNewDenseFromRows_Validation(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDenseFromRows[F](nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]F{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]F{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	six := make([][]F, 6)
	for i := range six {
		six[i] = []F{1}
	}
	_, err = matrix.NewDenseFromRows(six)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseFromRows_DeepCopy ensures the literal data is not aliased.
func TestNewDenseFromRows_DeepCopy(t *testing.T) {
	t.Parallel()

	src := [][]F{{1, 2}, {3, 4}}
	m := MustRows(t, src)
	src[0][0] = 99

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, F(1), v)

	rows := m.RowsData()
	rows[1][1] = -1
	v, _ = m.At(1, 1)
	assert.Equal(t, F(4), v)
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	m := MustDense[Q](t, 5, 2)
	require.NoError(t, m.Set(4, 1, scalar.Int(7)))
	v, err := m.At(4, 1)
	require.NoError(t, err)
	assert.Equal(t, "7", v.String())

	_, err = m.At(5, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 2, scalar.Int(1)), matrix.ErrOutOfRange)
}

func TestDense_RowCol(t *testing.T) {
	t.Parallel()

	m := MustQ(t, []string{"1", "2", "3"}, []string{"4", "5", "6"})

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, floats(row))

	col, err := m.Col(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6}, floats(col))

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	// Vectors are copies.
	row[0] = scalar.Int(100)
	v, _ := m.At(1, 0)
	assert.Equal(t, "4", v.String())
}

func TestDense_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	m := MustF(t, []float64{1, 2}, []float64{3, 4})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 42))

	v, _ := m.At(0, 0)
	assert.Equal(t, F(1), v)
	assert.True(t, m.IsSquare())
}

func TestDense_String(t *testing.T) {
	t.Parallel()

	m := MustQ(t, []string{"1/2", "-3"}, []string{"0", "4/6"})
	assert.Equal(t, "[1/2, -3]\n[0, 2/3]\n", m.String())

	var nilM *matrix.Dense[Q]
	assert.Equal(t, "<nil>", nilM.String())
}

func TestNewIdentity(t *testing.T) {
	t.Parallel()

	I := MustIdentity[Q](t, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, _ := I.At(i, j)
			if i == j {
				assert.Equal(t, "1", v.String())
			} else {
				assert.True(t, v.IsZero())
			}
		}
	}

	_, err := matrix.NewIdentity[F](6)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewIdentity[F](0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowPrimitives exercises the unexported row operations through the test bridge.
func TestRowPrimitives(t *testing.T) {
	t.Parallel()

	m := MustQ(t, []string{"1", "2"}, []string{"3", "4"})

	RequireEqualQ(t, MustQ(t, []string{"3", "4"}, []string{"1", "2"}), matrix.SwapRows_TestOnly(m, 0, 1))
	RequireEqualQ(t, MustQ(t, []string{"1/2", "1"}, []string{"3", "4"}),
		matrix.ScaleRow_TestOnly(m, 0, scalar.MustRational(1, 2)))
	RequireEqualQ(t, MustQ(t, []string{"1", "2"}, []string{"0", "-2"}),
		matrix.AddMultipleOfRow_TestOnly(m, 1, 0, scalar.Int(-3)))

	// The source is never touched by the bridge.
	RequireEqualQ(t, MustQ(t, []string{"1", "2"}, []string{"3", "4"}), m)
}

func TestSubmatrix(t *testing.T) {
	t.Parallel()

	m := MustQ(t,
		[]string{"1", "2", "3"},
		[]string{"4", "5", "6"},
		[]string{"7", "8", "9"},
	)
	got, err := matrix.Submatrix(m, 1, 0)
	require.NoError(t, err)
	RequireEqualQ(t, MustQ(t, []string{"2", "3"}, []string{"8", "9"}), got)

	_, err = matrix.Submatrix(m, 3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.Submatrix(MustQ(t, []string{"1", "2"}), 0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.Submatrix[Q](nil, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
