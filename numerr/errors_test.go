package numerr_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/numlab/numerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{numerr.Errorf("Bisection", numerr.ErrDomain, "no sign change"), "domain"},
		{numerr.Errorf("Newton", numerr.ErrNumerical, "f'(x) ~ 0"), "numerical"},
		{numerr.Wrap("Gauss", numerr.ErrInput), "input"},
		{numerr.Wrap("Parse", numerr.ErrExpression), "expression"},
		{errors.New("other"), ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, numerr.Kind(tc.err))
	}
}

func TestErrorf_MessageShape(t *testing.T) {
	err := numerr.Errorf("Secant", numerr.ErrDomain, "x(i-1) == x(i) == %g", 2.0)
	assert.EqualError(t, err, "Secant: x(i-1) == x(i) == 2: numlab: domain error")
	assert.ErrorIs(t, err, numerr.ErrDomain)
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, numerr.Wrap("op", nil))
}

type sample struct {
	N   int       `validate:"gt=0"`
	Tol float64   `validate:"finite,gte=0"`
	V   []float64 `validate:"required,dive,finite"`
}

func TestValidate(t *testing.T) {
	require.NoError(t, numerr.Validate(sample{N: 1, Tol: 0, V: []float64{1}}))

	err := numerr.Validate(sample{N: 0, Tol: 1, V: []float64{1}})
	require.ErrorIs(t, err, numerr.ErrInput)
	assert.Contains(t, err.Error(), "field N")

	err = numerr.Validate(sample{N: 1, Tol: math.NaN(), V: []float64{1}})
	require.ErrorIs(t, err, numerr.ErrInput)
	assert.Contains(t, err.Error(), "Tol")

	err = numerr.Validate(sample{N: 1, V: []float64{1, math.Inf(1)}})
	require.ErrorIs(t, err, numerr.ErrInput)

	err = numerr.Validate(sample{N: 1})
	require.ErrorIs(t, err, numerr.ErrInput)
}

func TestStatus_Text(t *testing.T) {
	b, err := numerr.StatusMaxIterations.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "max_iterations", string(b))
	assert.Equal(t, "converged", numerr.StatusConverged.String())
	assert.Equal(t, "status(0)", numerr.Status(0).String())

	_, err = numerr.Status(42).MarshalText()
	assert.Error(t, err)
}
