// SPDX-License-Identifier: MIT

// Package presets holds the worked example of every method, the same problems
// the classroom calculators load with their "Example" button.
package presets

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/numlab/linsolve"
	"github.com/katalvlaran/numlab/numerr"
	"github.com/katalvlaran/numlab/optimize"
	"github.com/katalvlaran/numlab/roots"
)

// Preset is one example problem. Exactly one request field is set, matching Method.
type Preset struct {
	Name    string                `json:"name"`
	Title   string                `json:"title"`
	Method  string                `json:"method"`
	Bracket *roots.BracketRequest `json:"bracket,omitempty"`
	Secant  *roots.SecantRequest  `json:"secant,omitempty"`
	Newton  *roots.NewtonRequest  `json:"newton,omitempty"`
	Linear  *Linear               `json:"linear,omitempty"`
	Golden  *optimize.Request     `json:"golden,omitempty"`
}

// Linear is a system in row form, ready for linsolve.NewSystem.
type Linear struct {
	A [][]float64 `json:"a"`
	B []float64   `json:"b"`
}

// System converts l into a validated linsolve.System.
func (l *Linear) System() (linsolve.System, error) { return linsolve.NewSystem(l.A, l.B) }

var (
	cubicBracket = roots.BracketRequest{
		Expr: "4*x**3 - 6*x**2 + 7*x - 2.3", XL: 0, XU: 1, Tolerance: 1, MaxIterations: 50,
	}
	classroom = Linear{
		A: [][]float64{{4, 1, -1}, {5, 1, 2}, {6, 1, 1}},
		B: []float64{-2, 4, 6},
	}
)

func catalog() []Preset {
	return []Preset{
		{Name: "bisection", Title: "Bisection on a cubic", Method: string(roots.MethodBisection), Bracket: ptr(cubicBracket)},
		{Name: "false-position", Title: "False position on the same cubic", Method: string(roots.MethodFalsePosition), Bracket: ptr(cubicBracket)},
		{Name: "secant", Title: "Secant on a cubic", Method: string(roots.MethodSecant), Secant: &roots.SecantRequest{
			Expr: "2*x**3 - 11.7*x**2 + 17.7*x - 5", XPrev: 3, X: 4, Tolerance: 0.5, MaxIterations: 50,
		}},
		{Name: "newton", Title: "Newton-Raphson on a parabola", Method: string(roots.MethodNewton), Newton: &roots.NewtonRequest{
			Expr: "-0.9*x**2 + 1.7*x + 2.5", Deriv: "-1.8*x + 1.7", X0: 5, Tolerance: 0.7, MaxIterations: 100,
		}},
		{Name: "gauss", Title: "Gaussian elimination, 3x3", Method: string(linsolve.MethodGauss), Linear: cloneLinear(classroom)},
		{Name: "lu", Title: "LU decomposition, 3x3", Method: string(linsolve.MethodLU), Linear: cloneLinear(classroom)},
		{Name: "golden", Title: "Golden-section maximum", Method: optimize.MethodGolden, Golden: &optimize.Request{
			Expr: "2*sin(x) - x**2/10", XL: 0, XU: 4, MaxIterations: 8, Sense: optimize.Maximize,
		}},
	}
}

// All returns fresh copies of every preset, in catalog order.
func All() []Preset { return catalog() }

// Names lists preset names in sorted order.
func Names() []string {
	all := catalog()
	names := make([]string, 0, len(all))
	for _, p := range all {
		names = append(names, p.Name)
	}
	slices.Sort(names)

	return names
}

// Lookup returns a fresh copy of the named preset; callers may modify it.
// Unknown names are numerr.ErrInput.
func Lookup(name string) (Preset, error) {
	for _, p := range catalog() {
		if p.Name == name {
			return p, nil
		}
	}

	return Preset{}, fmt.Errorf("presets: unknown preset %q (have %v): %w", name, Names(), numerr.ErrInput)
}

func ptr[T any](v T) *T { return &v }

func cloneLinear(l Linear) *Linear {
	a := make([][]float64, len(l.A))
	for i, row := range l.A {
		a[i] = slices.Clone(row)
	}

	return &Linear{A: a, B: slices.Clone(l.B)}
}
