// SPDX-License-Identifier: MIT

package expr

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/numlab/numerr"
)

var (
	// ErrSyntax is returned for malformed input (unexpected token, unbalanced
	// parentheses, empty formula).
	ErrSyntax = errors.New("expr: syntax error")

	// ErrUnknownIdent is returned for any identifier outside the whitelist.
	ErrUnknownIdent = errors.New("expr: unknown identifier")

	// ErrNonFinite is returned when evaluation produces ±Inf or NaN.
	ErrNonFinite = errors.New("expr: non-finite result")
)

// Error describes a parse or evaluation failure.
// It matches both its cause (ErrSyntax, ErrUnknownIdent, ErrNonFinite) and
// numerr.ErrExpression under errors.Is.
type Error struct {
	Expr   string  // source formula
	Pos    int     // byte offset of the offending token; -1 if not positional
	Detail string  // human-readable detail, may be empty
	X      float64 // evaluation point, meaningful when InEval is true
	InEval bool    // failure happened during evaluation
	Err    error   // one of the package sentinels
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Pos >= 0 {
		msg += " at offset " + strconv.Itoa(e.Pos)
	}
	if e.InEval {
		msg += fmt.Sprintf(" (x = %g)", e.X)
	}

	return fmt.Sprintf("%s in %q", msg, e.Expr)
}

// Unwrap exposes the cause and the shared taxonomy sentinel.
func (e *Error) Unwrap() []error {
	return []error{e.Err, numerr.ErrExpression}
}

func syntaxError(src string, pos int, format string, args ...any) *Error {
	return &Error{Expr: src, Pos: pos, Detail: fmt.Sprintf(format, args...), Err: ErrSyntax}
}
