package matrix_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/katalvlaran/numlab/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 5},
	} {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			assert.Equal(t, tc.rows, m.Rows())
			assert.Equal(t, tc.cols, m.Cols())
			for i := 0; i < tc.rows; i++ {
				for j := 0; j < tc.cols; j++ {
					assert.Zero(t, MustAt(t, m, i, j))
				}
			}
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(tc.rows, tc.cols)
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestNewDenseFrom(t *testing.T) {
	rows := [][]float64{{4, 1, -1}, {5, 1, 2}, {6, 1, 1}}
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)
	CompareExact(t, rows, m)

	// input is copied, not aliased
	rows[0][0] = 99
	assert.Equal(t, 4.0, MustAt(t, m, 0, 0))

	_, err = matrix.NewDenseFrom(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewDenseData_LengthMismatch(t *testing.T) {
	_, err := matrix.NewDenseData(2, 2, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestIdentity(t *testing.T) {
	id, err := matrix.Identity(3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id)

	_, err = matrix.Identity(0)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestAtSet_OutOfRange(t *testing.T) {
	m := MustDense(t, 2, 2)
	_, err := m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	require.NoError(t, m.Set(1, 1, 7))
	assert.Equal(t, 7.0, MustAt(t, m, 1, 1))
}

func TestClone_Independent(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, -1))
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
	assert.Equal(t, -1.0, MustAt(t, c, 0, 0))
}

func TestRowView_Aliases(t *testing.T) {
	m := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	row, err := m.RowView(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, row)
	row[0] = 40
	assert.Equal(t, 40.0, MustAt(t, m, 1, 0))

	cp, err := m.Row(0)
	require.NoError(t, err)
	cp[0] = 100
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))

	_, err = m.RowView(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestSwapRows(t *testing.T) {
	m := NewFilledDense(t, 3, 2, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, m.SwapRows(0, 2))
	CompareExact(t, [][]float64{{5, 6}, {3, 4}, {1, 2}}, m)

	require.NoError(t, m.SwapRows(1, 1))
	CompareExact(t, [][]float64{{5, 6}, {3, 4}, {1, 2}}, m)

	assert.ErrorIs(t, m.SwapRows(0, 3), matrix.ErrOutOfRange)
}

func TestSwapRowRange_PartialColumns(t *testing.T) {
	m := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, m.SwapRowRange(0, 1, 0, 2))
	CompareExact(t, [][]float64{{4, 5, 3}, {1, 2, 6}}, m)

	// empty range is a no-op
	require.NoError(t, m.SwapRowRange(0, 1, 0, 0))
	CompareExact(t, [][]float64{{4, 5, 3}, {1, 2, 6}}, m)

	assert.ErrorIs(t, m.SwapRowRange(0, 1, 2, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.SwapRowRange(0, 1, 0, 4), matrix.ErrOutOfRange)
}

func TestString_And_JSON(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2.5, -3, 0})
	assert.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())

	raw, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `[[1,2.5],[-3,0]]`, string(raw))
}
