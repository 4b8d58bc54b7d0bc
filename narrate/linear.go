// SPDX-License-Identifier: MIT

package narrate

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/numlab/linsolve"
	"github.com/katalvlaran/numlab/matrix"
)

// Matrix renders m as a bare grid.
func (r *Renderer) Matrix(m *matrix.Dense) string {
	if m == nil {
		return ""
	}
	src := m.Rows2D()
	rows := make([][]string, len(src))
	for i, row := range src {
		rows[i] = make([]string, len(row))
		for j, v := range row {
			rows[i][j] = Num(v)
		}
	}

	return r.grid(nil, rows)
}

func (r *Renderer) stages(sb *strings.Builder, stages []linsolve.Stage, label string) {
	for _, st := range stages {
		sb.WriteString(r.st.heading.Render(fmt.Sprintf("Stage %d (column %d)", st.Index+1, st.Index+1)))
		sb.WriteByte('\n')
		if st.Pivot != nil {
			fmt.Fprintf(sb, "  pivot: swap R%d <-> R%d\n", st.Pivot.From+1, st.Pivot.To+1)
		}
		for _, op := range st.Ops {
			fmt.Fprintf(sb, "  R%d = R%d - (%s) x R%d\n", op.Target+1, op.Target+1, Num(op.Multiplier), op.Stage+1)
		}
		if len(st.Ops) == 0 {
			sb.WriteString("  nothing below the pivot\n")
		}
		sb.WriteString(r.st.muted.Render(label))
		sb.WriteByte('\n')
		sb.WriteString(r.Matrix(st.Snapshot))
		sb.WriteByte('\n')
	}
}

func substitutions(sb *strings.Builder, steps []linsolve.Substitution, name string, unit bool) {
	for _, s := range steps {
		if unit {
			fmt.Fprintf(sb, "  %s%d = %s - %s = %s\n", name, s.Row+1, Num(s.RHS), paren(Num(s.Sum)), Num(s.Value))

			continue
		}
		fmt.Fprintf(sb, "  %s%d = (%s - %s) / %s = %s\n",
			name, s.Row+1, Num(s.RHS), paren(Num(s.Sum)), paren(Num(s.Diagonal)), Num(s.Value))
	}
}

func (r *Renderer) solution(sb *strings.Builder, x []float64, resid, cond float64) {
	sb.WriteString(r.st.success.Render("Solution: x = " + Vector(x)))
	sb.WriteByte('\n')
	sb.WriteString(r.st.muted.Render(fmt.Sprintf("max |A·x - b| = %.3g", resid)))
	sb.WriteByte('\n')
	if cond > 0 {
		sb.WriteString(r.st.muted.Render("cond(A) = " + Num(cond)))
		sb.WriteByte('\n')
	}
}

// GaussReport narrates elimination stage by stage, then back substitution.
func (r *Renderer) GaussReport(res *linsolve.GaussResult) string {
	var sb strings.Builder
	sb.WriteString(r.st.title.Render("Gaussian Elimination"))
	sb.WriteByte('\n')
	r.stages(&sb, res.Stages, "[A|b] after this stage:")
	sb.WriteString(r.st.heading.Render("Back substitution"))
	sb.WriteByte('\n')
	substitutions(&sb, res.Back, "x", false)
	r.solution(&sb, res.X, res.Residual, res.Cond)

	return sb.String()
}

// LUReport narrates the factorization, the factors, and both substitutions.
func (r *Renderer) LUReport(res *linsolve.LUResult) string {
	var sb strings.Builder
	sb.WriteString(r.st.title.Render("LU Decomposition"))
	sb.WriteByte('\n')
	r.stages(&sb, res.Stages, "U after this stage:")
	for _, f := range []struct {
		name string
		m    *matrix.Dense
	}{{"L", res.L}, {"U", res.U}, {"P", res.P}} {
		sb.WriteString(r.st.heading.Render(f.name + ":"))
		sb.WriteByte('\n')
		sb.WriteString(r.Matrix(f.m))
		sb.WriteByte('\n')
	}
	sb.WriteString("Pb = " + Vector(res.PB) + "\n")
	sb.WriteString(r.st.heading.Render("Forward substitution (Lc = Pb)"))
	sb.WriteByte('\n')
	substitutions(&sb, res.Forward, "c", true)
	sb.WriteString(r.st.heading.Render("Back substitution (Ux = c)"))
	sb.WriteByte('\n')
	substitutions(&sb, res.Back, "x", false)
	r.solution(&sb, res.X, res.Residual, res.Cond)

	return sb.String()
}

// LinearStep renders one observer step as text, for streaming output.
func (r *Renderer) LinearStep(s linsolve.Step) string {
	var sb strings.Builder
	switch s.Kind {
	case linsolve.StepStage:
		r.stages(&sb, []linsolve.Stage{*s.Stage}, "after this stage:")
	case linsolve.StepForward:
		substitutions(&sb, []linsolve.Substitution{*s.Substitution}, "c", true)
	case linsolve.StepBack:
		substitutions(&sb, []linsolve.Substitution{*s.Substitution}, "x", false)
	}

	return sb.String()
}
