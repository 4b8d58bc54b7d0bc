// SPDX-License-Identifier: MIT

package narrate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/numlab/optimize"
)

var goldenHeaders = []string{"Iter", "xl", "f(xl)", "x1", "f(x1)", "x2", "f(x2)", "xu", "f(xu)", "d"}

func goldenRow(rec optimize.Record) []string {
	return []string{
		strconv.Itoa(rec.Iteration),
		fixed6(rec.XL), fixed6(rec.FXL),
		fixed6(rec.X1), fixed6(rec.FX1),
		fixed6(rec.X2), fixed6(rec.FX2),
		fixed6(rec.XU), fixed6(rec.FXU),
		fixed6(rec.D),
	}
}

func optimumWord(s optimize.Sense) string {
	if s == optimize.Minimize {
		return "Minimum"
	}

	return "Maximum"
}

// GoldenTable renders the pass table and the final optimum.
func (r *Renderer) GoldenTable(res *optimize.Result) string {
	rows := make([][]string, 0, len(res.Records))
	for _, rec := range res.Records {
		rows = append(rows, goldenRow(rec))
	}

	var sb strings.Builder
	sb.WriteString(r.st.title.Render("Golden-Section Search"))
	sb.WriteByte('\n')
	sb.WriteString(r.grid(goldenHeaders, rows))
	sb.WriteByte('\n')
	sb.WriteString(r.st.success.Render(fmt.Sprintf("%s at x = %s, f(x) = %s", optimumWord(res.Sense), fixed6(res.X), fixed6(res.FX))))
	sb.WriteByte('\n')

	return sb.String()
}

// GoldenSteps spells out the comparison and update of every pass.
func (r *Renderer) GoldenSteps(res *optimize.Result) string {
	var sb strings.Builder
	sb.WriteString(r.st.title.Render("Golden-Section Search: calculations"))
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "R = (sqrt(5)-1)/2 = %s\n", fixed6(optimize.R))
	for _, rec := range res.Records {
		sb.WriteString(r.GoldenRecord(res.Sense, rec))
	}

	return sb.String()
}

// GoldenRecord narrates a single pass.
func (r *Renderer) GoldenRecord(s optimize.Sense, rec optimize.Record) string {
	var sb strings.Builder
	cmp := ">"
	if s == optimize.Minimize {
		cmp = "<"
	}
	sb.WriteString(r.st.heading.Render(fmt.Sprintf("Iteration %d", rec.Iteration)))
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "  interval [%s, %s], d = %s\n", fixed6(rec.XL), fixed6(rec.XU), fixed6(rec.D))
	fmt.Fprintf(&sb, "  x1 = xl + d = %s, f(x1) = %s\n", fixed6(rec.X1), fixed6(rec.FX1))
	fmt.Fprintf(&sb, "  x2 = xu - d = %s, f(x2) = %s\n", fixed6(rec.X2), fixed6(rec.FX2))
	if rec.KeptLeft() {
		fmt.Fprintf(&sb, "  f(x1) %s f(x2): drop [xl, x2], new interval [%s, %s]\n", cmp, fixed6(rec.X2), fixed6(rec.XU))
	} else {
		fmt.Fprintf(&sb, "  f(x1) not %s f(x2): drop [x1, xu], new interval [%s, %s]\n", cmp, fixed6(rec.XL), fixed6(rec.X1))
	}
	fmt.Fprintf(&sb, "  x_opt = %s, f(x_opt) = %s\n", fixed6(rec.XOpt), fixed6(rec.FOpt))

	return sb.String()
}
