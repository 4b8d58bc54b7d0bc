// SPDX-License-Identifier: MIT

package optimize

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/numlab/expr"
	"github.com/katalvlaran/numlab/numerr"
)

const opGolden = "GoldenSection"

// MethodGolden names golden-section search in traces and metrics.
const MethodGolden = "golden"

// R is the golden-ratio narrowing factor (√5 - 1)/2.
const R = 0.618033988749894848204586834365638117720309179805762862135

// Sense selects maximization or minimization.
type Sense string

const (
	Maximize Sense = "max"
	Minimize Sense = "min"
)

// ParseSense accepts "max"/"maximize" and "min"/"minimize" in any case.
func ParseSense(s string) (Sense, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max", "maximize", "maximum":
		return Maximize, nil
	case "min", "minimize", "minimum":
		return Minimize, nil
	default:
		return "", fmt.Errorf("optimize: unknown sense %q: %w", s, numerr.ErrInput)
	}
}

// better reports whether a wins over b. Ties never win.
func (s Sense) better(a, b float64) bool {
	if s == Minimize {
		return a < b
	}

	return a > b
}

// Request drives GoldenSection. An empty Sense means Maximize.
type Request struct {
	Expr          string  `json:"expr" yaml:"expr" validate:"required"`
	XL            float64 `json:"xl" yaml:"xl" validate:"finite"`
	XU            float64 `json:"xu" yaml:"xu" validate:"finite"`
	MaxIterations int     `json:"max_iterations" yaml:"max_iterations" validate:"gt=0"`
	Sense         Sense   `json:"sense" yaml:"sense" validate:"omitempty,oneof=max min"`
}

// Record is the state at the start of a pass plus the winner it kept.
type Record struct {
	Iteration int     `json:"iteration"`
	XL        float64 `json:"xl"`
	FXL       float64 `json:"fxl"`
	X1        float64 `json:"x1"`
	FX1       float64 `json:"fx1"`
	X2        float64 `json:"x2"`
	FX2       float64 `json:"fx2"`
	XU        float64 `json:"xu"`
	FXU       float64 `json:"fxu"`
	D         float64 `json:"d"`
	XOpt      float64 `json:"x_opt"`
	FOpt      float64 `json:"f_opt"`
	// X1Won is set when x1 beat x2 and the pass moved xl up to x2.
	X1Won bool `json:"x1_won"`
}

// KeptLeft reports whether the pass moved xl up to x2 (x1 won).
func (r Record) KeptLeft() bool { return r.X1Won }

// Result is the trace and final estimate of GoldenSection.
type Result struct {
	Sense      Sense         `json:"sense"`
	Records    []Record      `json:"records"`
	X          float64       `json:"x"`
	FX         float64       `json:"fx"`
	XL         float64       `json:"xl"`
	XU         float64       `json:"xu"`
	Iterations int           `json:"iterations"`
	Status     numerr.Status `json:"status"`
}

// Option configures a GoldenSection call.
type Option func(*Options)

// Options holds per-call hooks.
type Options struct {
	Observer func(Record)
	Logger   *slog.Logger
}

// WithObserver registers fn to run on each Record as it is produced.
func WithObserver(fn func(Record)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Observer = fn
		}
	}
}

// WithLogger routes Debug events to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// GoldenSection runs exactly req.MaxIterations passes over [XL, XU].
//
// When f(x1) beats f(x2) under Sense: xl = x2, x2 = x1, x1 = xl + d.
// Otherwise: xu = x1, x1 = x2, x2 = xu - d. Either way d = R·(xu - xl) is
// recomputed and the winner becomes the provisional optimum of the pass.
//
// Errors: ErrInput (fields, xl >= xu), ErrExpression (f fails anywhere it is
// evaluated).
func GoldenSection(req Request, opts ...Option) (*Result, error) {
	o := Options{Observer: func(Record) {}, Logger: slog.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if err := numerr.Validate(req); err != nil {
		return nil, numerr.Wrap(opGolden, err)
	}
	if req.XL >= req.XU {
		return nil, numerr.Errorf(opGolden, numerr.ErrInput, "xl (%g) must be less than xu (%g)", req.XL, req.XU)
	}
	sense := req.Sense
	if sense == "" {
		sense = Maximize
	}
	f, err := expr.Parse(req.Expr)
	if err != nil {
		return nil, numerr.Wrap(opGolden, err)
	}
	eval := func(x float64) (float64, error) {
		v, err := f.Eval(x)
		if err != nil {
			return 0, numerr.Wrap(opGolden, err)
		}

		return v, nil
	}

	xl, xu := req.XL, req.XU
	d := R * (xu - xl)
	x1, x2 := xl+d, xu-d
	fx1, err := eval(x1)
	if err != nil {
		return nil, err
	}
	fx2, err := eval(x2)
	if err != nil {
		return nil, err
	}

	res := &Result{Sense: sense, Records: make([]Record, 0, min(req.MaxIterations, 64))}
	var fxl, fxu float64
	for it := 1; it <= req.MaxIterations; it++ {
		if fxl, err = eval(xl); err != nil {
			return nil, err
		}
		if fxu, err = eval(xu); err != nil {
			return nil, err
		}
		rec := Record{
			Iteration: it,
			XL:        xl, FXL: fxl,
			X1: x1, FX1: fx1,
			X2: x2, FX2: fx2,
			XU: xu, FXU: fxu,
			D: d,
		}

		if sense.better(fx1, fx2) {
			rec.XOpt, rec.FOpt, rec.X1Won = x1, fx1, true
			xl, x2, fx2 = x2, x1, fx1
			d = R * (xu - xl)
			x1 = xl + d
			if fx1, err = eval(x1); err != nil {
				return nil, err
			}
		} else {
			rec.XOpt, rec.FOpt = x2, fx2
			xu, x1, fx1 = x1, x2, fx2
			d = R * (xu - xl)
			x2 = xu - d
			if fx2, err = eval(x2); err != nil {
				return nil, err
			}
		}

		res.Records = append(res.Records, rec)
		o.Observer(rec)
		o.Logger.Debug("optimize: pass", "iteration", it, "x_opt", rec.XOpt, "width", xu-xl)
	}

	last := res.Records[len(res.Records)-1]
	res.X, res.FX = last.XOpt, last.FOpt
	res.XL, res.XU = xl, xu
	res.Iterations = req.MaxIterations
	res.Status = numerr.StatusCompleted
	o.Logger.Debug("optimize: done", "sense", string(sense), "x", res.X, "fx", res.FX)

	return res, nil
}
