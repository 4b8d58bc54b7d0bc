// SPDX-License-Identifier: MIT

package narrate

import (
	"math"
	"strconv"
	"strings"
)

// Undefined is printed where a quantity has no value for a pass.
const Undefined = "-"

// Num formats v with 8 decimals, switching to 6-digit scientific notation
// below 1e-4 or above 1e6 in magnitude. ±Inf prints as Undefined.
func Num(v float64) string {
	a := math.Abs(v)
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 0):
		return Undefined
	case v == 0:
		return "0.00000000"
	case a < 1e-4 || a > 1e6:
		return strconv.FormatFloat(v, 'e', 6, 64)
	default:
		return strconv.FormatFloat(v, 'f', 8, 64)
	}
}

// Pct formats a percent error; undefined errors print as Undefined.
func Pct(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return Undefined
	}

	return Num(v) + "%"
}

// fixed6 is the 6-decimal format of the golden-section tables.
func fixed6(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }

// paren wraps negative numbers so substitutions read "x - (-2.5)".
func paren(s string) string {
	if strings.HasPrefix(s, "-") {
		return "(" + s + ")"
	}

	return s
}

// Vector renders [a, b, c] with Num.
func Vector(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = Num(x)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
