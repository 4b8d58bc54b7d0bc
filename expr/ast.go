// SPDX-License-Identifier: MIT

package expr

import (
	"math"
	"strconv"
)

// node is one vertex of the parsed tree. eval returns a value and, on failure,
// the byte offset that produced the non-finite value.
type node interface {
	eval(x float64) (float64, int, bool)
	String() string
}

type numberNode struct {
	v   float64
	pos int
}

type varNode struct{ pos int }

type constNode struct {
	name string
	v    float64
	pos  int
}

type unaryNode struct {
	neg bool
	x   node
	pos int
}

type binaryNode struct {
	op   tokenKind
	l, r node
	pos  int
}

type callNode struct {
	name string
	fn   func(float64) float64
	arg  node
	pos  int
}

// functions and constants are the complete whitelist.
var functions = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"sqrt": math.Sqrt,
	"exp":  math.Exp,
	"log":  math.Log,
}

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func (n numberNode) eval(float64) (float64, int, bool) { return n.v, n.pos, true }
func (n numberNode) String() string                    { return strconv.FormatFloat(n.v, 'g', -1, 64) }

func (n varNode) eval(x float64) (float64, int, bool) {
	if !finite(x) {
		return x, n.pos, false
	}

	return x, n.pos, true
}
func (varNode) String() string { return "x" }

func (n constNode) eval(float64) (float64, int, bool) { return n.v, n.pos, true }
func (n constNode) String() string                    { return n.name }

func (n unaryNode) eval(x float64) (float64, int, bool) {
	v, pos, ok := n.x.eval(x)
	if !ok {
		return v, pos, false
	}
	if n.neg {
		return -v, n.pos, true
	}

	return v, n.pos, true
}

func (n unaryNode) String() string {
	if n.neg {
		return "(-" + n.x.String() + ")"
	}

	return n.x.String()
}

func (n binaryNode) eval(x float64) (float64, int, bool) {
	l, pos, ok := n.l.eval(x)
	if !ok {
		return l, pos, false
	}
	r, pos, ok := n.r.eval(x)
	if !ok {
		return r, pos, false
	}
	var v float64
	switch n.op {
	case tokPlus:
		v = l + r
	case tokMinus:
		v = l - r
	case tokStar:
		v = l * r
	case tokSlash:
		if r == 0 {
			return math.NaN(), n.pos, false
		}
		v = l / r
	case tokPow:
		v = math.Pow(l, r)
	}
	if !finite(v) {
		return v, n.pos, false
	}

	return v, n.pos, true
}

func (n binaryNode) String() string {
	var op string
	switch n.op {
	case tokPlus:
		op = " + "
	case tokMinus:
		op = " - "
	case tokStar:
		op = " * "
	case tokSlash:
		op = " / "
	case tokPow:
		op = " ** "
	}

	return "(" + n.l.String() + op + n.r.String() + ")"
}

func (n callNode) eval(x float64) (float64, int, bool) {
	a, pos, ok := n.arg.eval(x)
	if !ok {
		return a, pos, false
	}
	v := n.fn(a)
	if !finite(v) {
		return v, n.pos, false
	}

	return v, n.pos, true
}

func (n callNode) String() string { return n.name + "(" + n.arg.String() + ")" }
