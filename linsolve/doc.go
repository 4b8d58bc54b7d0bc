// SPDX-License-Identifier: MIT

// Package linsolve solves square linear systems A·x = b by Gaussian
// elimination and by LU decomposition, recording every pivot swap,
// multiplier, row operation and substitution step.
//
// 🚀 What is inside?
//
//   - Gauss: elimination on the augmented matrix [A|b], then back substitution.
//   - LU: P·A = L·U with unit lower L, forward substitution L·c = P·b, then
//     back substitution U·x = c. (*LUResult).Check verifies L·U == P·A.
//   - Partial pivoting (on by default): at stage i the row in [i..n-1] with the
//     largest |a(k,i)| moves up; ties keep the first such row.
//   - Cond: 2-norm condition number of A, reported with every solution.
//
// ✨ Guarantees:
//
//   - The caller's System is never mutated; every call works on private copies.
//   - A pivot with |p| < epsilon at any stage, the last one included, fails with
//     numerr.ErrNumerical ("singular or near-singular").
//   - Traces are deterministic: identical input gives identical trace.
//
// ⚙️ Usage:
//
//	sys, _ := linsolve.NewSystem([][]float64{{4, 1, -1}, {5, 1, 2}, {6, 1, 1}}, []float64{-2, 4, 6})
//	g, err := linsolve.Gauss(sys)
//	lu, err := linsolve.LU(sys, linsolve.WithPivoting(false))
//	err = lu.Check(1e-9)
package linsolve
