// SPDX-License-Identifier: MIT

package roots

import (
	"math"

	"github.com/katalvlaran/numlab/expr"
	"github.com/katalvlaran/numlab/numerr"
)

const opSecant = "Secant"

// Secant iterates x(i+1) = x(i) - f(x(i))*(x(i-1) - x(i))/(f(x(i-1)) - f(x(i)))
// from the pair (XPrev, X), shifting the window forward each pass.
//
// Record 0 holds the initial pair and no error. Later records carry the
// window, the new iterate and Error = |x(i+1) - x(i)| / |x(i+1)| * 100
// (+Inf when x(i+1) == 0, which never converges).
//
// Errors:
//   - ErrDomain when XPrev == X, before anything is evaluated.
//   - ErrNumerical when |f(x(i-1)) - f(x(i))| < guard (default DefaultSecantGuard).
func Secant(req SecantRequest, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, numerr.Wrap(opSecant, err)
	}
	if err = numerr.Validate(req); err != nil {
		return nil, numerr.Wrap(opSecant, err)
	}
	if req.XPrev == req.X {
		return nil, numerr.Errorf(opSecant, numerr.ErrDomain, "x(i-1) == x(i) == %g", req.X)
	}
	f, err := expr.Parse(req.Expr)
	if err != nil {
		return nil, numerr.Wrap(opSecant, err)
	}
	guard := o.guard(DefaultSecantGuard)

	xp, x := req.XPrev, req.X
	fp, err := f.Eval(xp)
	if err != nil {
		return nil, numerr.Wrap(opSecant, err)
	}
	fx, err := f.Eval(x)
	if err != nil {
		return nil, numerr.Wrap(opSecant, err)
	}

	res := &Result{Method: MethodSecant, Records: make([]Record, 0, min(req.MaxIterations, 63)+1)}
	o.emit(res, Record{Iteration: 0, XPrev: xp, FXPrev: fp, X: x, FX: fx, Error: inf})

	var xn, fn, ea float64
	for it := 1; it <= req.MaxIterations; it++ {
		den := fp - fx
		if math.Abs(den) < guard {
			return nil, numerr.Errorf(opSecant, numerr.ErrNumerical,
				"|f(x(i-1)) - f(x(i))| = %g below %g at iteration %d", math.Abs(den), guard, it)
		}
		xn = x - fx*(xp-x)/den
		if fn, err = f.Eval(xn); err != nil {
			return nil, numerr.Wrap(opSecant, err)
		}
		ea = relErr(xn, x)

		o.emit(res, Record{
			Iteration: it,
			XPrev:     xp, FXPrev: fp,
			X: x, FX: fx,
			XNext: xn, FXNext: fn,
			Error: ea,
		})
		if ea <= req.Tolerance {
			return o.finish(res, xn, fn, it, numerr.StatusConverged), nil
		}
		xp, fp = x, fx
		x, fx = xn, fn
	}

	return o.finish(res, x, fx, req.MaxIterations, numerr.StatusMaxIterations), nil
}
