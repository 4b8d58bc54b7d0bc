// SPDX-License-Identifier: MIT

package linsolve

import (
	"math"

	"github.com/katalvlaran/numlab/matrix"
	"gonum.org/v1/gonum/mat"
)

// Cond returns the 2-norm condition number of a, computed by gonum's SVD.
// It is a diagnostic only; 0 is returned for a nil or empty matrix and when
// the estimate is not finite.
func Cond(a *matrix.Dense) float64 {
	if matrix.ValidateNotNil(a) != nil {
		return 0
	}
	data := make([]float64, 0, a.Rows()*a.Cols())
	for _, row := range a.Rows2D() {
		data = append(data, row...)
	}
	c := mat.Cond(mat.NewDense(a.Rows(), a.Cols(), data), 2)
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return 0
	}

	return c
}
