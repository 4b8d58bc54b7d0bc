// SPDX-License-Identifier: MIT

// Package roots provides bracketing and open root-finders for a scalar
// expression f(x): Bisection, FalsePosition, Secant and Newton.
//
// What
//
//   - Each method consumes an immutable request (expression text, bracket or
//     guesses, tolerance, iteration budget) and returns a Result holding the
//     ordered Record trace plus the final estimate.
//   - Records are emitted one per loop pass and never modified afterwards.
//     WithObserver delivers each one synchronously as soon as it is produced,
//     so a caller can render progress while the engine is still running.
//   - The error metric is the approximate relative error in percent. A pass
//     with no defined metric carries +Inf.
//
// Termination
//
//	Bisection, FalsePosition and Secant stop when Error <= Tolerance.
//	Newton stops when Error < Tolerance (strict) and reports the x of that
//	pass. Running out of iterations is not an error: Status is
//	numerr.StatusMaxIterations and Root holds the last estimate.
//
// Errors
//
//   - numerr.ErrInput      — bad request fields, xl >= xu, invalid options.
//   - numerr.ErrExpression — the formula does not parse or evaluates to NaN/±Inf.
//   - numerr.ErrDomain     — no sign change over the bracket, identical guesses.
//   - numerr.ErrNumerical  — near-zero secant denominator or derivative.
//
// Usage
//
//	res, err := roots.Bisection(roots.BracketRequest{
//		Expr: "4*x**3 - 6*x**2 + 7*x - 2.3",
//		XL: 0, XU: 1, Tolerance: 1, MaxIterations: 50,
//	})
//	if err != nil {
//		// errors.Is(err, numerr.ErrDomain) etc.
//	}
//	fmt.Println(res.Root, res.Status)
package roots
