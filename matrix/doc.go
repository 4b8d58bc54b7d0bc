// SPDX-License-Identifier: MIT

// Package matrix provides the square and rectangular float64 matrices the
// linear solvers work on.
//
// 🚀 What is inside?
//
//   - Dense: row-major storage in one flat buffer (offset = i*cols + j), safe
//     At/Set accessors that return errors instead of panicking, Clone, and
//     no-copy row views for elimination kernels.
//   - Kernels: Mul, MatVec, Identity, EqualApprox.
//   - Validators: one canonical place for nil/shape/finite checks.
//
// ✨ Guarantees:
//
//   - Deterministic loop orders (i → k → j) in every kernel.
//   - Inputs are never mutated by kernels; results are fresh allocations.
//   - Sentinel errors prefixed "matrix: ..." and wrapped with an op tag
//     ("Mul: matrix: dimension mismatch"), so errors.Is keeps working.
//
// ⚙️ Usage:
//
//	a, _ := matrix.NewDenseFrom([][]float64{{4, 1, -1}, {5, 1, 2}, {6, 1, 1}})
//	pa, _ := matrix.Mul(p, a)
//	ok := matrix.EqualApprox(lu, pa, 1e-9)
package matrix
