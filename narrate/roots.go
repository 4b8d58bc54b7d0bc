// SPDX-License-Identifier: MIT

package narrate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/numlab/roots"
)

// RootTable renders the iteration table of res followed by the verdict line.
func (r *Renderer) RootTable(res *roots.Result) string {
	headers := rootHeaders(res.Method)
	rows := make([][]string, 0, len(res.Records))
	for _, rec := range res.Records {
		rows = append(rows, rootRow(res.Method, rec))
	}

	var sb strings.Builder
	sb.WriteString(r.st.title.Render(methodTitle(res.Method)))
	sb.WriteByte('\n')
	sb.WriteString(r.grid(headers, rows))
	sb.WriteByte('\n')
	sb.WriteString(r.Verdict(res))
	sb.WriteByte('\n')

	return sb.String()
}

// Verdict is the one-line outcome: "Root found: ..." or "Approximate root: ...".
func (r *Renderer) Verdict(res *roots.Result) string {
	if res.Converged() {
		return r.st.success.Render(fmt.Sprintf("Root found: %s (after %d iterations)", Num(res.Root), res.Iterations))
	}

	return r.st.warning.Render(fmt.Sprintf("Approximate root: %s (max iterations reached)", Num(res.Root)))
}

func methodTitle(m roots.Method) string {
	switch m {
	case roots.MethodBisection:
		return "Bisection Method"
	case roots.MethodFalsePosition:
		return "False Position Method"
	case roots.MethodSecant:
		return "Secant Method"
	case roots.MethodNewton:
		return "Newton-Raphson Method"
	default:
		return string(m)
	}
}

func rootHeaders(m roots.Method) []string {
	switch m {
	case roots.MethodSecant:
		return []string{"Iter", "x(i-1)", "x(i)", "x(i+1)", "f(x(i-1))", "f(x(i))", "f(x(i+1))", "Error %"}
	case roots.MethodNewton:
		return []string{"Iter", "x", "f(x)", "f'(x)", "x next", "Error %"}
	default:
		return []string{"Iter", "xl", "xu", "xr", "f(xl)", "f(xu)", "f(xr)", "Error %"}
	}
}

func rootRow(m roots.Method, rec roots.Record) []string {
	it := strconv.Itoa(rec.Iteration)
	switch m {
	case roots.MethodSecant:
		if rec.Iteration == 0 {
			return []string{it, Num(rec.XPrev), Num(rec.X), Undefined, Num(rec.FXPrev), Num(rec.FX), Undefined, Undefined}
		}

		return []string{it, Num(rec.XPrev), Num(rec.X), Num(rec.XNext), Num(rec.FXPrev), Num(rec.FX), Num(rec.FXNext), Pct(rec.Error)}
	case roots.MethodNewton:
		return []string{it, Num(rec.X), Num(rec.FX), Num(rec.DFX), Num(rec.XNext), Pct(rec.Error)}
	default:
		return []string{it, Num(rec.XL), Num(rec.XU), Num(rec.X), Num(rec.FXL), Num(rec.FXU), Num(rec.FX), Pct(rec.Error)}
	}
}

// RootRecord renders one record as a single line, for streaming output.
func (r *Renderer) RootRecord(m roots.Method, rec roots.Record) string {
	h, row := rootHeaders(m), rootRow(m, rec)
	parts := make([]string, 0, len(h))
	for i := 1; i < len(h); i++ {
		parts = append(parts, h[i]+" = "+row[i])
	}

	return r.st.muted.Render("iter "+row[0]+":") + " " + strings.Join(parts, ", ")
}

// RootSteps spells out the arithmetic of every pass.
func (r *Renderer) RootSteps(res *roots.Result) string {
	var sb strings.Builder
	sb.WriteString(r.st.title.Render(methodTitle(res.Method) + ": calculations"))
	sb.WriteByte('\n')
	for _, rec := range res.Records {
		sb.WriteString(r.st.heading.Render(fmt.Sprintf("Iteration %d", rec.Iteration)))
		sb.WriteByte('\n')
		switch res.Method {
		case roots.MethodSecant:
			secantSteps(&sb, rec)
		case roots.MethodNewton:
			newtonSteps(&sb, rec)
		default:
			bracketSteps(&sb, res.Method, rec)
		}
	}
	sb.WriteString(r.Verdict(res))
	sb.WriteByte('\n')

	return sb.String()
}

func bracketSteps(sb *strings.Builder, m roots.Method, rec roots.Record) {
	xl, xu, xr := Num(rec.XL), Num(rec.XU), Num(rec.X)
	if m == roots.MethodFalsePosition {
		fmt.Fprintf(sb, "  1. xr = xu - f(xu)*(xl - xu)/(f(xl) - f(xu)) = %s - %s*(%s - %s)/(%s - %s) = %s\n",
			xu, paren(Num(rec.FXU)), xl, paren(xu), Num(rec.FXL), paren(Num(rec.FXU)), xr)
	} else {
		fmt.Fprintf(sb, "  1. xr = (xl + xu)/2 = (%s + %s)/2 = %s\n", xl, xu, xr)
	}
	fmt.Fprintf(sb, "  2. f(xr) = %s\n", Num(rec.FX))
	step := 3
	switch {
	case rec.FX == 0:
		fmt.Fprintf(sb, "  %d. f(xr) = 0, xr is an exact root: error = 0%%\n", step)
		step++
	case rec.HasError():
		fmt.Fprintf(sb, "  %d. error = |(xr - xr_old)/xr|*100 = |(%s - %s)/%s|*100 = %s\n",
			step, xr, paren(Num(rec.XPrev)), xr, Pct(rec.Error))
		step++
	}
	fmt.Fprintf(sb, "  %d. f(xl)*f(xr) = %s*%s = %s\n", step, Num(rec.FXL), paren(Num(rec.FX)), Num(rec.FXL*rec.FX))
	if (rec.FXL < 0 && rec.FX > 0) || (rec.FXL > 0 && rec.FX < 0) {
		sb.WriteString("     sign change between xl and xr: new interval [xl, xr]\n")
	} else {
		sb.WriteString("     no sign change between xl and xr: new interval [xr, xu]\n")
	}
}

func secantSteps(sb *strings.Builder, rec roots.Record) {
	if rec.Iteration == 0 {
		fmt.Fprintf(sb, "  initial points: x(i-1) = %s, f(x(i-1)) = %s; x(i) = %s, f(x(i)) = %s\n",
			Num(rec.XPrev), Num(rec.FXPrev), Num(rec.X), Num(rec.FX))

		return
	}
	x, xp := Num(rec.X), Num(rec.XPrev)
	fmt.Fprintf(sb, "  1. x(i+1) = x(i) - f(x(i))*(x(i-1) - x(i))/(f(x(i-1)) - f(x(i)))\n")
	fmt.Fprintf(sb, "          = %s - %s*(%s - %s)/(%s - %s) = %s\n",
		x, paren(Num(rec.FX)), xp, paren(x), Num(rec.FXPrev), paren(Num(rec.FX)), Num(rec.XNext))
	fmt.Fprintf(sb, "  2. f(x(i+1)) = %s\n", Num(rec.FXNext))
	fmt.Fprintf(sb, "  3. error = |(x(i+1) - x(i))/x(i+1)|*100 = %s\n", Pct(rec.Error))
}

func newtonSteps(sb *strings.Builder, rec roots.Record) {
	fmt.Fprintf(sb, "  1. f(x) = f(%s) = %s, f'(x) = %s\n", Num(rec.X), Num(rec.FX), Num(rec.DFX))
	fmt.Fprintf(sb, "  2. x_next = x - f(x)/f'(x) = %s - %s/%s = %s\n",
		Num(rec.X), paren(Num(rec.FX)), paren(Num(rec.DFX)), Num(rec.XNext))
	if rec.HasError() {
		fmt.Fprintf(sb, "  3. error = |(x - x_prev)/x|*100 = |(%s - %s)/%s|*100 = %s\n",
			Num(rec.X), paren(Num(rec.XPrev)), Num(rec.X), Pct(rec.Error))
	} else {
		sb.WriteString("  3. error: no previous x on the first pass\n")
	}
}
