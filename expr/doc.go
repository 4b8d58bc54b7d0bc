// SPDX-License-Identifier: MIT

// Package expr parses and evaluates scalar formulas in one free variable x.
//
// The accepted language is deliberately small:
//
//	numbers      2   0.5   .5   1e-3
//	variable     x
//	constants    pi  e
//	functions    sin cos tan sqrt exp log   (one argument, log is natural)
//	operators    + - * / **   unary + -   parentheses
//
// ** is right-associative and binds tighter than unary minus, so -x**2 is
// -(x**2) and 2**3**2 is 2**9. Anything else (another identifier, a stray
// character, a call on a constant) is rejected by Parse with an *Error that
// carries the offending source and byte offset.
//
// A parsed *Expr is an immutable tree; Eval walks it and never executes code
// from the input. Evaluation fails with ErrNonFinite when any intermediate or
// final value is ±Inf or NaN (division by zero, sqrt or log of a negative, ...).
//
// Usage:
//
//	f, err := expr.Parse("4*x**3 - 6*x**2 + 7*x - 2.3")
//	if err != nil {
//		// errors.Is(err, numerr.ErrExpression) == true
//	}
//	y, err := f.Eval(0.5) // 0.2
package expr
