package optimize_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numlab/numerr"
	"github.com/katalvlaran/numlab/optimize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bump = "2*sin(x) - x**2/10"

func TestGoldenSection_Maximize(t *testing.T) {
	res, err := optimize.GoldenSection(optimize.Request{
		Expr: bump, XL: 0, XU: 4, MaxIterations: 8, Sense: optimize.Maximize,
	})
	require.NoError(t, err)
	assert.Equal(t, numerr.StatusCompleted, res.Status)
	assert.Equal(t, 8, res.Iterations)
	require.Len(t, res.Records, 8)

	first := res.Records[0]
	assert.Equal(t, 0.0, first.XL)
	assert.Equal(t, 4.0, first.XU)
	assert.InDelta(t, 2.472136, first.X1, 1e-6)
	assert.InDelta(t, 1.527864, first.X2, 1e-6)
	assert.InDelta(t, 2.472136, first.D, 1e-6)
	assert.Equal(t, first.X2, first.XOpt, "f(x2) wins the first pass")
	assert.False(t, first.KeptLeft())

	assert.InDelta(t, 1.442719, res.X, 1e-6)
	assert.InDelta(t, 1.775475, res.FX, 1e-6)
	assert.InDelta(t, 1.4276, res.X, 0.02, "close to the true maximum")
	assert.InDelta(t, 1.3900966, res.XL, 1e-6)
	assert.InDelta(t, 1.4752416, res.XU, 1e-6)
}

func TestGoldenSection_WidthShrinksByR(t *testing.T) {
	res, err := optimize.GoldenSection(optimize.Request{Expr: bump, XL: 0, XU: 4, MaxIterations: 20})
	require.NoError(t, err)
	assert.Equal(t, optimize.Maximize, res.Sense, "empty sense maximizes")

	for i := 1; i < len(res.Records); i++ {
		prev := res.Records[i-1].XU - res.Records[i-1].XL
		cur := res.Records[i].XU - res.Records[i].XL
		assert.InDeltaf(t, optimize.R, cur/prev, 1e-9, "pass %d", i+1)
	}
	for _, r := range res.Records {
		assert.True(t, r.XL <= r.XOpt && r.XOpt <= r.XU, "optimum inside its interval")
		assert.True(t, r.XL < r.X2 && r.X2 < r.X1 && r.X1 < r.XU, "x2 < x1 inside (xl, xu)")
	}
	last := res.Records[len(res.Records)-1]
	assert.LessOrEqual(t, last.XL, res.X)
	assert.GreaterOrEqual(t, last.XU, res.X)
}

func TestGoldenSection_Minimize(t *testing.T) {
	res, err := optimize.GoldenSection(optimize.Request{
		Expr: "(x - 2)**2 + 1", XL: 0, XU: 5, MaxIterations: 25, Sense: optimize.Minimize,
	})
	require.NoError(t, err)
	assert.InDelta(t, 2, res.X, 1e-3)
	assert.InDelta(t, 1, res.FX, 1e-6)
	assert.Less(t, res.XU-res.XL, 5*math.Pow(optimize.R, 24))
}

func TestGoldenSection_ExactPassCount(t *testing.T) {
	var seen []optimize.Record
	res, err := optimize.GoldenSection(optimize.Request{
		Expr: "1", XL: -1, XU: 1, MaxIterations: 5,
	}, optimize.WithObserver(func(r optimize.Record) { seen = append(seen, r) }))
	require.NoError(t, err)
	assert.Len(t, seen, 5)
	assert.Equal(t, res.Records, seen)
}

func TestGoldenSection_HugeBudget(t *testing.T) {
	// log(x - 1) is finite at x1 and x2 but not at xl, so the first pass fails
	// after the record buffer is sized.
	req := optimize.Request{Expr: "log(x - 1)", XL: 1, XU: 3, MaxIterations: math.MaxInt}
	require.NotPanics(t, func() {
		_, err := optimize.GoldenSection(req)
		assert.ErrorIs(t, err, numerr.ErrExpression)
	})
}

func TestGoldenSection_X1WonTracksBranch(t *testing.T) {
	res, err := optimize.GoldenSection(optimize.Request{
		Expr: bump, XL: 0, XU: 4, MaxIterations: 8, Sense: optimize.Maximize,
	})
	require.NoError(t, err)

	won := 0
	for i, rec := range res.Records[:len(res.Records)-1] {
		next := res.Records[i+1]
		assert.Equal(t, rec.X1Won, rec.KeptLeft())
		if rec.X1Won {
			won++
			assert.Equal(t, rec.X1, rec.XOpt)
			assert.Equal(t, rec.X2, next.XL, "pass %d moves xl up to x2", rec.Iteration)
			assert.Equal(t, rec.XU, next.XU)
		} else {
			assert.Equal(t, rec.X2, rec.XOpt)
			assert.Equal(t, rec.X1, next.XU, "pass %d moves xu down to x1", rec.Iteration)
			assert.Equal(t, rec.XL, next.XL)
		}
	}
	assert.Positive(t, won)
}

func TestGoldenSection_Errors(t *testing.T) {
	cases := []struct {
		name string
		req  optimize.Request
		want error
	}{
		{"xl == xu", optimize.Request{Expr: bump, XL: 1, XU: 1, MaxIterations: 8}, numerr.ErrInput},
		{"zero passes", optimize.Request{Expr: bump, XL: 0, XU: 4}, numerr.ErrInput},
		{"bad sense", optimize.Request{Expr: bump, XL: 0, XU: 4, MaxIterations: 8, Sense: "up"}, numerr.ErrInput},
		{"inf bound", optimize.Request{Expr: bump, XL: math.Inf(-1), XU: 4, MaxIterations: 8}, numerr.ErrInput},
		{"syntax", optimize.Request{Expr: "2*sin(x", XL: 0, XU: 4, MaxIterations: 8}, numerr.ErrExpression},
		{"log at zero bound", optimize.Request{Expr: "log(x)", XL: 0, XU: 4, MaxIterations: 3}, numerr.ErrExpression},
		{"not finite at bound", optimize.Request{Expr: "sqrt(x)", XL: -1, XU: 4, MaxIterations: 3}, numerr.ErrExpression},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := optimize.GoldenSection(tc.req)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseSense(t *testing.T) {
	for in, want := range map[string]optimize.Sense{
		"max": optimize.Maximize, "Maximize": optimize.Maximize,
		" min ": optimize.Minimize, "MINIMUM": optimize.Minimize,
	} {
		got, err := optimize.ParseSense(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
	_, err := optimize.ParseSense("sideways")
	assert.ErrorIs(t, err, numerr.ErrInput)
}
