// SPDX-License-Identifier: MIT

package roots

import (
	"encoding/json"
	"math"

	"github.com/katalvlaran/numlab/numerr"
)

// Method names a root-finding algorithm.
type Method string

const (
	MethodBisection     Method = "bisection"
	MethodFalsePosition Method = "false-position"
	MethodSecant        Method = "secant"
	MethodNewton        Method = "newton"
)

// BracketRequest drives the bracketing methods (Bisection, FalsePosition).
type BracketRequest struct {
	Expr          string  `json:"expr" yaml:"expr" validate:"required"`
	XL            float64 `json:"xl" yaml:"xl" validate:"finite"`
	XU            float64 `json:"xu" yaml:"xu" validate:"finite"`
	Tolerance     float64 `json:"tolerance" yaml:"tolerance" validate:"finite,gte=0"`
	MaxIterations int     `json:"max_iterations" yaml:"max_iterations" validate:"gt=0"`
}

// SecantRequest drives Secant. XPrev and X are x(i-1) and x(i) of the first pass.
type SecantRequest struct {
	Expr          string  `json:"expr" yaml:"expr" validate:"required"`
	XPrev         float64 `json:"x_prev" yaml:"x_prev" validate:"finite"`
	X             float64 `json:"x" yaml:"x" validate:"finite"`
	Tolerance     float64 `json:"tolerance" yaml:"tolerance" validate:"finite,gte=0"`
	MaxIterations int     `json:"max_iterations" yaml:"max_iterations" validate:"gt=0"`
}

// NewtonRequest drives Newton. Deriv is the derivative f'(x) written out by hand.
type NewtonRequest struct {
	Expr          string  `json:"expr" yaml:"expr" validate:"required"`
	Deriv         string  `json:"deriv" yaml:"deriv" validate:"required"`
	X0            float64 `json:"x0" yaml:"x0" validate:"finite"`
	Tolerance     float64 `json:"tolerance" yaml:"tolerance" validate:"finite,gte=0"`
	MaxIterations int     `json:"max_iterations" yaml:"max_iterations" validate:"gt=0"`
}

// Record is one loop pass. Fields a method does not use stay zero:
//
//	Bisection, FalsePosition: XL, XU, FXL, FXU (pre-update bracket), X, FX (xr),
//	                          XPrev (previous xr).
//	Secant:                   XPrev, FXPrev, X, FX (window), XNext, FXNext.
//	Newton:                   XPrev (previous accepted x), X, FX, DFX, XNext.
//
// Error is the relative change in percent, +Inf when undefined for the pass.
type Record struct {
	Iteration int     `json:"iteration"`
	XL        float64 `json:"xl"`
	XU        float64 `json:"xu"`
	FXL       float64 `json:"fxl"`
	FXU       float64 `json:"fxu"`
	XPrev     float64 `json:"x_prev"`
	FXPrev    float64 `json:"fx_prev"`
	X         float64 `json:"x"`
	FX        float64 `json:"fx"`
	DFX       float64 `json:"dfx"`
	XNext     float64 `json:"x_next"`
	FXNext    float64 `json:"fx_next"`
	Error     float64 `json:"error"`
}

// HasError reports whether the pass defines an error metric.
func (r Record) HasError() bool { return !math.IsInf(r.Error, 0) && !math.IsNaN(r.Error) }

// MarshalJSON writes an undefined Error as null.
func (r Record) MarshalJSON() ([]byte, error) {
	type plain Record
	aux := struct {
		plain
		Error *float64 `json:"error"`
	}{plain: plain(r)}
	if r.HasError() {
		e := r.Error
		aux.Error = &e
	}

	return json.Marshal(aux)
}

// Result is the outcome of one engine call.
type Result struct {
	Method     Method        `json:"method"`
	Records    []Record      `json:"records"`
	Root       float64       `json:"root"`
	FRoot      float64       `json:"f_root"`
	Iterations int           `json:"iterations"`
	Status     numerr.Status `json:"status"`
}

// Converged reports whether the tolerance was met.
func (r *Result) Converged() bool { return r.Status == numerr.StatusConverged }

// relErr is |cur - prev| / |cur| * 100, +Inf when cur == 0.
func relErr(cur, prev float64) float64 {
	if cur == 0 {
		return math.Inf(1)
	}

	return math.Abs((cur-prev)/cur) * 100
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

var inf = math.Inf(1)
