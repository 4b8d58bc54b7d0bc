package linsolve_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/katalvlaran/numlab/linsolve"
	"github.com/katalvlaran/numlab/matrix"
	"github.com/katalvlaran/numlab/numerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGauss_Pivoting(t *testing.T) {
	res, err := linsolve.Gauss(mustSystem(t, classA, classB))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3, -13, 1}, res.X, 1e-12)

	assert.Equal(t, []linsolve.PivotEvent{
		{Stage: 0, From: 0, To: 2},
		{Stage: 1, From: 1, To: 2},
	}, res.Pivots)
	require.Len(t, res.Stages, 3)
	require.NotNil(t, res.Stages[0].Pivot)
	assert.Nil(t, res.Stages[2].Pivot)

	ops := res.Stages[0].Ops
	require.Len(t, ops, 2)
	assert.InDelta(t, 5.0/6, ops[0].Multiplier, 1e-15)
	assert.InDelta(t, 4.0/6, ops[1].Multiplier, 1e-15)
	assert.Equal(t, 1, ops[0].Target)
	assert.Len(t, ops[0].Row, 4, "augmented row")
	assert.InDelta(t, 0.5, res.Stages[1].Ops[0].Multiplier, 1e-15)

	first, err := res.Stages[0].Snapshot.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 1, 1, 6}, first)
	assert.Greater(t, res.Cond, 1.0)
}

func TestGauss_NoPivotingIsExact(t *testing.T) {
	res, err := linsolve.Gauss(mustSystem(t, classA, classB), linsolve.WithPivoting(false))
	require.NoError(t, err)
	assert.Equal(t, []float64{3, -13, 1}, res.X)
	assert.Empty(t, res.Pivots)

	assert.Equal(t, 1.25, res.Stages[0].Ops[0].Multiplier)
	assert.Equal(t, 1.5, res.Stages[0].Ops[1].Multiplier)
	assert.Equal(t, 2.0, res.Stages[1].Ops[0].Multiplier)
	assert.Equal(t, []float64{0, -0.25, 3.25, 6.5}, res.Stages[0].Ops[0].Row)

	require.Len(t, res.Back, 3)
	assert.Equal(t, linsolve.Substitution{Row: 2, RHS: -4, Sum: 0, Diagonal: -4, Value: 1}, res.Back[0])
	assert.Equal(t, linsolve.Substitution{Row: 1, RHS: 6.5, Sum: 3.25, Diagonal: -0.25, Value: -13}, res.Back[1])
	assert.Equal(t, 0, res.Back[2].Row)
}

func TestGauss_ZeroLeadingPivot(t *testing.T) {
	a := [][]float64{{0, 1}, {1, 0}}
	b := []float64{2, 3}

	_, err := linsolve.Gauss(mustSystem(t, a, b), linsolve.WithPivoting(false))
	assert.ErrorIs(t, err, numerr.ErrNumerical)
	assert.Contains(t, err.Error(), "singular or near-singular")

	res, err := linsolve.Gauss(mustSystem(t, a, b))
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2}, res.X)
}

func TestGauss_Singular(t *testing.T) {
	cases := map[string][][]float64{
		"dependent rows": {{1, 2}, {2, 4}},
		"last stage":     {{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
		"zero matrix":    {{0, 0}, {0, 0}},
	}
	for name, a := range cases {
		t.Run(name, func(t *testing.T) {
			b := make([]float64, len(a))
			_, err := linsolve.Gauss(mustSystem(t, a, b))
			assert.ErrorIs(t, err, numerr.ErrNumerical)
			assert.Equal(t, "numerical", numerr.Kind(err))
		})
	}
}

func TestGauss_TinyEpsilonOption(t *testing.T) {
	a := [][]float64{{1e-9, 0}, {0, 1}}
	_, err := linsolve.Gauss(mustSystem(t, a, []float64{1, 1}), linsolve.WithEpsilon(1e-6))
	assert.ErrorIs(t, err, numerr.ErrNumerical)

	res, err := linsolve.Gauss(mustSystem(t, a, []float64{1, 1}))
	require.NoError(t, err)
	assert.InDelta(t, 1e9, res.X[0], 1e-3)
}

func TestGauss_InputErrors(t *testing.T) {
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	sq := mustSystem(t, classA, classB)

	cases := []struct {
		name  string
		sys   linsolve.System
		opts  []linsolve.Option
		extra error
	}{
		{"nil A", linsolve.System{B: []float64{1}}, nil, matrix.ErrNilMatrix},
		{"non-square", linsolve.System{A: rect, B: []float64{1, 2}}, nil, matrix.ErrNonSquare},
		{"short b", linsolve.System{A: sq.A, B: []float64{1, 2}}, nil, matrix.ErrDimensionMismatch},
		{"NaN in b", linsolve.System{A: sq.A, B: []float64{1, math.NaN(), 3}}, nil, matrix.ErrNaNInf},
		{"bad epsilon", sq, []linsolve.Option{linsolve.WithEpsilon(0)}, numerr.ErrInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := linsolve.Gauss(tc.sys, tc.opts...)
			assert.ErrorIs(t, err, numerr.ErrInput)
			assert.ErrorIs(t, err, tc.extra)
		})
	}

	_, err = linsolve.NewSystem([][]float64{{1, 2}, {3}}, []float64{1, 2})
	assert.ErrorIs(t, err, numerr.ErrInput)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestGauss_DoesNotMutateInput(t *testing.T) {
	sys := mustSystem(t, classA, classB)
	before := sys.A.Copy()
	_, err := linsolve.Gauss(sys)
	require.NoError(t, err)
	assert.True(t, matrix.EqualApprox(before, sys.A, 0))
	assert.Equal(t, classB, sys.B)
}

func TestGauss_OneByOne(t *testing.T) {
	res, err := linsolve.Gauss(mustSystem(t, [][]float64{{2}}, []float64{4}))
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, res.X)
	assert.InDelta(t, 1.0, res.Cond, 1e-12)
}

func TestGauss_ObserverOrder(t *testing.T) {
	var kinds []linsolve.StepKind
	_, err := linsolve.Gauss(mustSystem(t, classA, classB), linsolve.WithObserver(func(s linsolve.Step) {
		kinds = append(kinds, s.Kind)
	}))
	require.NoError(t, err)
	assert.Equal(t, []linsolve.StepKind{
		linsolve.StepStage, linsolve.StepStage, linsolve.StepStage,
		linsolve.StepBack, linsolve.StepBack, linsolve.StepBack,
	}, kinds)
}

func TestGauss_JSON(t *testing.T) {
	res, err := linsolve.Gauss(mustSystem(t, classA, classB), linsolve.WithPivoting(false))
	require.NoError(t, err)
	b, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"x":[3,-13,1]`)
	assert.Contains(t, string(b), `"augmented":[[4,1,-1,-2],`)
}
