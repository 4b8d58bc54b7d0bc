// SPDX-License-Identifier: MIT

package linsolve

import (
	"math"

	"github.com/katalvlaran/numlab/matrix"
	"github.com/katalvlaran/numlab/numerr"
)

// rowViews returns aliasing views of every row of m. A view is positional:
// after SwapRows, views[i] shows whatever row now sits at position i.
func rowViews(m *matrix.Dense) [][]float64 {
	views := make([][]float64, m.Rows())
	for i := range views {
		views[i], _ = m.RowView(i) // i is always in range
	}

	return views
}

// pivotRow returns the row in [i..n-1] with the largest |rows[k][i]|,
// the first one on ties.
func pivotRow(rows [][]float64, i int) int {
	best, bestAbs := i, math.Abs(rows[i][i])
	for k := i + 1; k < len(rows); k++ {
		if v := math.Abs(rows[k][i]); v > bestAbs {
			best, bestAbs = k, v
		}
	}

	return best
}

func singular(op string, stage int, pivot float64) error {
	return numerr.Errorf(op, numerr.ErrNumerical,
		"singular or near-singular: pivot %g at stage %d", pivot, stage)
}

// residual returns max |A·x - b|.
func residual(op string, a *matrix.Dense, b, x []float64) (float64, error) {
	ax, err := matrix.MatVec(a, x)
	if err != nil {
		return 0, numerr.Wrap(op, err)
	}
	var worst float64
	for i, v := range ax {
		worst = math.Max(worst, math.Abs(v-b[i]))
	}

	return worst, nil
}

func cloneRow(r []float64) []float64 { return append([]float64(nil), r...) }

// backSubstitute solves the upper-triangular rows[0..n-1][0..n-1] against rhs,
// bottom-up. Each step goes to emit as soon as it is computed.
func backSubstitute(op string, rows [][]float64, rhs []float64, emit func(Substitution)) ([]float64, []Substitution, error) {
	n := len(rhs)
	x := make([]float64, n)
	steps := make([]Substitution, 0, n)
	for i := n - 1; i >= 0; i-- {
		sum := matrix.ZeroSum
		for k := i + 1; k < n; k++ {
			sum += rows[i][k] * x[k]
		}
		x[i] = (rhs[i] - sum) / rows[i][i]
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
			return nil, nil, numerr.Errorf(op, numerr.ErrNumerical, "x[%d] overflows during back substitution", i)
		}
		st := Substitution{Row: i, RHS: rhs[i], Sum: sum, Diagonal: rows[i][i], Value: x[i]}
		steps = append(steps, st)
		emit(st)
	}

	return x, steps, nil
}
