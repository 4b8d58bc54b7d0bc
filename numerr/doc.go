// SPDX-License-Identifier: MIT

// Package numerr holds the error taxonomy shared by every numlab engine.
//
// Four recoverable failure kinds exist, each a package-level sentinel:
//
//	ErrExpression — the formula does not parse, names an unknown identifier,
//	                or evaluates to ±Inf/NaN.
//	ErrDomain     — a method precondition does not hold (no sign change at the
//	                bracket ends, identical secant guesses).
//	ErrNumerical  — a near-zero denominator, derivative or pivot.
//	ErrInput      — a malformed request (non-positive iteration budget, xl >= xu,
//	                shape mismatch, invalid option).
//
// Running out of iterations is not an error: engines report it through a
// Status on the result together with the best available estimate.
//
// Engines wrap sentinels with an operation tag so messages read
// "Bisection: f(xl) and f(xu) must have opposite signs: numlab: domain error"
// while errors.Is(err, numerr.ErrDomain) keeps working.
package numerr
