// SPDX-License-Identifier: MIT

package roots

import (
	"math"

	"github.com/katalvlaran/numlab/expr"
	"github.com/katalvlaran/numlab/numerr"
)

const opNewton = "Newton"

// Newton iterates x_next = x - f(x)/f'(x) starting at X0.
//
// Records are numbered from 0. The error of pass i compares x with the x
// accepted on pass i-1: |x - x_prev| / |x| * 100. Pass 0 has no previous x,
// so its Error is +Inf and it never stops the loop. The method converges on
// the first pass with Error < Tolerance (strict) and reports that pass's x.
// When the budget runs out, Root is the last x_next.
//
// Errors:
//   - ErrNumerical when |f'(x)| < guard (default DefaultNewtonGuard) or the
//     step overflows.
func Newton(req NewtonRequest, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, numerr.Wrap(opNewton, err)
	}
	if err = numerr.Validate(req); err != nil {
		return nil, numerr.Wrap(opNewton, err)
	}
	f, err := expr.Parse(req.Expr)
	if err != nil {
		return nil, numerr.Wrap(opNewton, err)
	}
	df, err := expr.Parse(req.Deriv)
	if err != nil {
		return nil, numerr.Wrap(opNewton, err)
	}
	guard := o.guard(DefaultNewtonGuard)

	res := &Result{Method: MethodNewton, Records: make([]Record, 0, min(req.MaxIterations, 64))}
	var (
		x           = req.X0
		xPrev       float64
		fx, dfx, xn float64
	)
	for i := 0; i < req.MaxIterations; i++ {
		if fx, err = f.Eval(x); err != nil {
			return nil, numerr.Wrap(opNewton, err)
		}
		if dfx, err = df.Eval(x); err != nil {
			return nil, numerr.Wrap(opNewton, err)
		}
		if math.Abs(dfx) < guard {
			return nil, numerr.Errorf(opNewton, numerr.ErrNumerical,
				"|f'(%g)| = %g below %g at iteration %d", x, math.Abs(dfx), guard, i)
		}
		xn = x - fx/dfx
		if !finite(xn) {
			return nil, numerr.Errorf(opNewton, numerr.ErrNumerical,
				"step f(x)/f'(x) = %g/%g overflows at iteration %d", fx, dfx, i)
		}

		rec := Record{Iteration: i, X: x, FX: fx, DFX: dfx, XNext: xn, Error: inf}
		if i > 0 {
			rec.XPrev = xPrev
			rec.Error = relErr(x, xPrev)
		}
		o.emit(res, rec)

		if rec.Error < req.Tolerance {
			return o.finish(res, x, fx, i+1, numerr.StatusConverged), nil
		}
		xPrev, x = x, xn
	}

	fx, err = f.Eval(x)
	if err != nil {
		return nil, numerr.Wrap(opNewton, err)
	}

	return o.finish(res, x, fx, req.MaxIterations, numerr.StatusMaxIterations), nil
}
