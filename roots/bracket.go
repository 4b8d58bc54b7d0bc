// SPDX-License-Identifier: MIT

package roots

import (
	"github.com/katalvlaran/numlab/expr"
	"github.com/katalvlaran/numlab/numerr"
)

const (
	opBisection     = "Bisection"
	opFalsePosition = "FalsePosition"
)

// Bisection halves [XL, XU] until the relative change of the midpoint xr
// falls to Tolerance percent.
//
// Preconditions: XL < XU and f(XL), f(XU) of opposite sign (ErrDomain).
// A pass with f(xr) == 0 has Error 0 and converges immediately.
//
// Complexity: O(MaxIterations) evaluations of f.
func Bisection(req BracketRequest, opts ...Option) (*Result, error) {
	return bracket(opBisection, MethodBisection, req, bisect, opts)
}

// FalsePosition replaces the midpoint with the chord root
// xr = xu - f(xu)*(xl - xu)/(f(xl) - f(xu)). Everything else matches Bisection.
func FalsePosition(req BracketRequest, opts ...Option) (*Result, error) {
	return bracket(opFalsePosition, MethodFalsePosition, req, chord, opts)
}

func bisect(xl, xu, _, _ float64) float64 { return (xl + xu) / 2 }

// chord never divides by zero: the bracket invariant keeps f(xl) and f(xu)
// of opposite sign.
func chord(xl, xu, fxl, fxu float64) float64 { return xu - fxu*(xl-xu)/(fxl-fxu) }

// opposite reports a strict sign change without forming the product,
// which can underflow to zero for tiny values.
func opposite(a, b float64) bool { return (a < 0 && b > 0) || (a > 0 && b < 0) }

func bracket(op string, method Method, req BracketRequest, next func(xl, xu, fxl, fxu float64) float64, opts []Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, numerr.Wrap(op, err)
	}
	if err = numerr.Validate(req); err != nil {
		return nil, numerr.Wrap(op, err)
	}
	if req.XL >= req.XU {
		return nil, numerr.Errorf(op, numerr.ErrInput, "xl (%g) must be less than xu (%g)", req.XL, req.XU)
	}
	f, err := expr.Parse(req.Expr)
	if err != nil {
		return nil, numerr.Wrap(op, err)
	}

	xl, xu := req.XL, req.XU
	fxl, err := f.Eval(xl)
	if err != nil {
		return nil, numerr.Wrap(op, err)
	}
	fxu, err := f.Eval(xu)
	if err != nil {
		return nil, numerr.Wrap(op, err)
	}
	if !opposite(fxl, fxu) {
		return nil, numerr.Errorf(op, numerr.ErrDomain,
			"f(xl) = %g and f(xu) = %g must have opposite signs", fxl, fxu)
	}

	res := &Result{Method: method, Records: make([]Record, 0, min(req.MaxIterations, 64))}
	var (
		xr, fxr, xrOld float64
		ea             float64
	)
	for it := 1; it <= req.MaxIterations; it++ {
		xr = next(xl, xu, fxl, fxu)
		if fxr, err = f.Eval(xr); err != nil {
			return nil, numerr.Wrap(op, err)
		}
		switch {
		case fxr == 0:
			ea = 0
		case it > 1:
			ea = relErr(xr, xrOld)
		default:
			ea = inf
		}

		rec := Record{Iteration: it, XL: xl, XU: xu, FXL: fxl, FXU: fxu, X: xr, FX: fxr, Error: ea}
		if it > 1 {
			rec.XPrev = xrOld
		}
		o.emit(res, rec)

		if ea <= req.Tolerance {
			return o.finish(res, xr, fxr, it, numerr.StatusConverged), nil
		}
		if opposite(fxl, fxr) {
			xu, fxu = xr, fxr
		} else {
			xl, fxl = xr, fxr
		}
		xrOld = xr
	}

	return o.finish(res, xr, fxr, req.MaxIterations, numerr.StatusMaxIterations), nil
}
