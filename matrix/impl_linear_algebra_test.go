// Package matrix_test contains unit tests for the linear-algebra kernels.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numlab/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMul_Known3x3(t *testing.T) {
	a := NewFilledDense(t, 3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	b := NewFilledDense(t, 3, 3, []float64{9, 8, 7, 6, 5, 4, 3, 2, 1})
	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{
		{30, 24, 18},
		{84, 69, 54},
		{138, 114, 90},
	}, c)
}

func TestMul_Rectangular(t *testing.T) {
	a := NewFilledDense(t, 2, 3, []float64{1, 0, 2, 0, 1, 1})
	b := NewFilledDense(t, 3, 1, []float64{3, 4, 5})
	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{13}, {9}}, c)
}

func TestMul_FastPath_Equals_Fallback(t *testing.T) {
	t.Parallel()
	a := RandFilledDense(t, 6, 4, 1)
	b := RandFilledDense(t, 4, 5, 2)

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)

	diff, err := matrix.MaxAbsDiff(fast, slow)
	require.NoError(t, err)
	assert.Zero(t, diff, "both paths must accumulate in the same order")
}

func TestMul_Errors(t *testing.T) {
	a := MustDense(t, 2, 3)
	_, err := matrix.Mul(a, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.Mul(a, typedNil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_IdentityIsNeutral(t *testing.T) {
	a := RandFilledDense(t, 4, 4, 7)
	id, err := matrix.Identity(4)
	require.NoError(t, err)
	left, err := matrix.Mul(id, a)
	require.NoError(t, err)
	right, err := matrix.Mul(a, id)
	require.NoError(t, err)
	assert.True(t, matrix.EqualApprox(a, left, 0))
	assert.True(t, matrix.EqualApprox(a, right, 0))
}

func TestMatVec(t *testing.T) {
	a := NewFilledDense(t, 3, 3, []float64{4, 1, -1, 5, 1, 2, 6, 1, 1})
	x := []float64{3, -13, 1}
	y, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, 4, 6}, y)

	y2, err := matrix.MatVec(hide{a}, x)
	require.NoError(t, err)
	assert.Equal(t, y, y2)

	_, err = matrix.MatVec(a, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestEqualApprox(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4 + 1e-12})
	assert.True(t, matrix.EqualApprox(a, b, 1e-9))
	assert.False(t, matrix.EqualApprox(a, b, 1e-15))

	c := MustDense(t, 2, 3)
	assert.False(t, matrix.EqualApprox(a, c, 1))
	_, err := matrix.MaxAbsDiff(a, c)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	n := NewFilledDense(t, 2, 2, []float64{1, 2, 3, math.NaN()})
	assert.False(t, matrix.EqualApprox(a, n, math.Inf(1)))
}
