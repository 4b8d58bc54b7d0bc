// Package numlab is a step-by-step numerical-methods laboratory: every
// engine returns its full trace (each iteration, elimination stage and
// substitution) next to the answer, so results can be checked by hand.
//
// 🚀 What is inside?
//
//   - Root finding: bisection, false position, secant, Newton-Raphson
//   - Linear systems: Gaussian elimination and LU (PA = LU), optional
//     partial pivoting, condition number
//   - Optimization: golden-section search for a maximum or minimum
//   - Formulas: a safe single-variable expression language (x, pi, e,
//     sin, cos, tan, sqrt, exp, log and ** for powers)
//
// ✨ Why numlab?
//
//   - Traceable – every record an engine produces is returned and can be
//     streamed through an observer while the loop runs
//   - Honest – failures are typed (expression, domain, numerical, input),
//     running out of iterations is a status, not an error
//   - Ready to use – a CLI with narrated tables and a JSON API with
//     Prometheus metrics
//
// Packages:
//
//	expr/     — formula parsing and evaluation
//	roots/    — bracketing and open root-finders
//	linsolve/ — Gauss and LU solvers over matrix.Dense
//	optimize/ — golden-section search
//	matrix/   — dense row-major matrices
//	numerr/   — shared error taxonomy, run status and request validation
//	narrate/  — tables and worked-step narration
//	presets/  — the worked example of every method
//	config/   — YAML configuration
//	server/   — gin JSON API
//	cmd/numlab — the command-line front end
//
// Quick start:
//
//	res, err := roots.Bisection(roots.BracketRequest{
//		Expr: "4*x**3 - 6*x**2 + 7*x - 2.3", XL: 0, XU: 1,
//		Tolerance: 1, MaxIterations: 50,
//	})
//	// res.Root == 0.44921875 after 8 iterations
//
//	go install github.com/katalvlaran/numlab/cmd/numlab@latest
package numlab
