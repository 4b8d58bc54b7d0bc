// SPDX-License-Identifier: MIT

package linsolve

import (
	"math"

	"github.com/katalvlaran/numlab/matrix"
	"github.com/katalvlaran/numlab/numerr"
)

const opGauss = "Gauss"

// Gauss solves sys by elimination on the augmented matrix [A|b].
//
// Stage i (i = 0..n-1):
//  1. with pivoting, swap row i with the largest-|a(k,i)| row of [i..n-1];
//  2. fail with ErrNumerical when |a(i,i)| < epsilon;
//  3. for every j > i: m = a(j,i)/a(i,i), row(j) -= m*row(i) over columns i..n.
//
// Back substitution then runs from row n-1 up to row 0:
// x(i) = (b(i) - Σ_{k>i} a(i,k)*x(k)) / a(i,i).
//
// Complexity: O(n³) time, O(n²) for the working copy plus O(n³) for snapshots.
func Gauss(sys System, opts ...Option) (*GaussResult, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, numerr.Wrap(opGauss, err)
	}
	if err = sys.Validate(); err != nil {
		return nil, numerr.Wrap(opGauss, err)
	}

	n := sys.A.Rows()
	aug, err := matrix.NewDense(n, n+1)
	if err != nil {
		return nil, numerr.Wrap(opGauss, err)
	}
	rows := rowViews(aug)
	for i := 0; i < n; i++ {
		src, _ := sys.A.RowView(i)
		copy(rows[i], src)
		rows[i][n] = sys.B[i]
	}

	res := &GaussResult{Stages: make([]Stage, 0, n)}
	var (
		i, j, k int
		piv, m  float64
	)
	for i = 0; i < n; i++ {
		st := Stage{Index: i}
		if o.Pivoting {
			if p := pivotRow(rows, i); p != i {
				_ = aug.SwapRows(i, p)
				ev := PivotEvent{Stage: i, From: i, To: p}
				st.Pivot = &ev
				res.Pivots = append(res.Pivots, ev)
			}
		}
		piv = rows[i][i]
		if math.Abs(piv) < o.Epsilon {
			return nil, singular(opGauss, i, piv)
		}
		for j = i + 1; j < n; j++ {
			m = rows[j][i] / piv
			for k = i; k <= n; k++ {
				rows[j][k] -= m * rows[i][k]
			}
			st.Ops = append(st.Ops, RowOp{Stage: i, Target: j, Multiplier: m, Row: cloneRow(rows[j])})
		}
		st.Snapshot = aug.Copy()
		res.Stages = append(res.Stages, st)
		o.stage(MethodGauss, &res.Stages[len(res.Stages)-1])
	}

	rhs := make([]float64, n)
	for i = 0; i < n; i++ {
		rhs[i] = rows[i][n]
	}
	res.X, res.Back, err = backSubstitute(opGauss, rows, rhs, func(s Substitution) {
		o.substitution(StepBack, &s)
	})
	if err != nil {
		return nil, err
	}
	res.Augmented = aug
	if res.Residual, err = residual(opGauss, sys.A, sys.B, res.X); err != nil {
		return nil, err
	}
	res.Cond = Cond(sys.A)
	o.Logger.Debug("linsolve: done", "method", string(MethodGauss), "n", n, "swaps", len(res.Pivots), "cond", res.Cond)

	return res, nil
}
