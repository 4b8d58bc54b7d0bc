// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels used by the solvers and their checks.
//
// Notes:
//   - Kernels validate through validators.go and wrap failures with matrixErrorf.
//   - *Dense operands take a flat-slice fast path; other Matrix values fall back
//     to At with the same i → k → j order, so both paths give identical bits.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value of dot-product accumulators.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul         = "Mul"
	opMatVec      = "MatVec"
	opEqualApprox = "EqualApprox"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Determinism:
//   - Fixed i → k → j accumulation order on both paths.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Fast path: both *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var i, k, j int
			var aik float64
			for i = 0; i < rows; i++ {
				for k = 0; k < inner; k++ {
					aik = da.data[i*inner+k]
					for j = 0; j < cols; j++ {
						res.data[i*cols+j] += aik * db.data[k*cols+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: interface path, same order.
	var i, k, j int
	var aik, bkj float64
	for i = 0; i < rows; i++ {
		for k = 0; k < inner; k++ {
			if aik, err = a.At(i, k); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
			for j = 0; j < cols; j++ {
				if bkj, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				res.data[i*cols+j] += aik * bkj
			}
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != m.Cols()).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var sum float64
		for i := 0; i < rows; i++ {
			sum = ZeroSum
			base := i * cols
			for j := 0; j < cols; j++ {
				sum += d.data[base+j] * x[j]
			}
			y[i] = sum
		}

		return y, nil
	}

	for i := 0; i < rows; i++ {
		sum := ZeroSum
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// EqualApprox reports whether a and b have the same shape and every pair of
// entries differs by at most tol (absolute). Nil operands compare unequal.
func EqualApprox(a, b Matrix, tol float64) bool {
	diff, _ := MaxAbsDiff(a, b)

	return diff >= 0 && diff <= tol
}

// MaxAbsDiff returns max |a[i,j] - b[i,j]|.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shape differs); the returned value is -1.
func MaxAbsDiff(a, b Matrix) (float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return -1, matrixErrorf(opEqualApprox, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return -1, matrixErrorf(opEqualApprox, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return -1, matrixErrorf(opEqualApprox, ErrDimensionMismatch)
	}
	worst := 0.0
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, err := a.At(i, j)
			if err != nil {
				return -1, matrixErrorf(opEqualApprox, err)
			}
			bv, err := b.At(i, j)
			if err != nil {
				return -1, matrixErrorf(opEqualApprox, err)
			}
			if d := math.Abs(av - bv); d > worst || math.IsNaN(d) {
				worst = d
			}
		}
	}

	return worst, nil
}
