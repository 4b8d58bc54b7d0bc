// SPDX-License-Identifier: MIT

package linsolve

import (
	"math"

	"github.com/katalvlaran/numlab/matrix"
	"github.com/katalvlaran/numlab/numerr"
)

const (
	opLU      = "LU"
	opLUCheck = "LUResult.Check"
)

// LU factors P·A = L·U (Doolittle, unit lower L) and solves through it.
//
// Stage i swaps, when pivoting, rows i and p of U and P, the entries of b, and
// only columns [0, i) of L, which are the multipliers already computed. Then for
// every j > i: L(j,i) = U(j,i)/U(i,i) and U(j, i:) -= L(j,i) * U(i, i:).
// A pivot |U(i,i)| < epsilon at any stage fails with ErrNumerical.
//
// Forward substitution gives c(i) = pb(i) - Σ_{k<i} L(i,k)*c(k); back
// substitution gives x(i) = (c(i) - Σ_{k>i} U(i,k)*x(k)) / U(i,i).
func LU(sys System, opts ...Option) (*LUResult, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, numerr.Wrap(opLU, err)
	}
	if err = sys.Validate(); err != nil {
		return nil, numerr.Wrap(opLU, err)
	}

	n := sys.A.Rows()
	L, err := matrix.Identity(n)
	if err != nil {
		return nil, numerr.Wrap(opLU, err)
	}
	P, _ := matrix.Identity(n)
	U := sys.A.Copy()
	pb := cloneRow(sys.B)
	lRows, uRows := rowViews(L), rowViews(U)

	res := &LUResult{A: sys.A.Copy(), L: L, U: U, P: P, PB: pb, Stages: make([]Stage, 0, n)}
	var (
		i, j, k int
		piv, l  float64
	)
	for i = 0; i < n; i++ {
		st := Stage{Index: i}
		if o.Pivoting {
			if p := pivotRow(uRows, i); p != i {
				_ = U.SwapRows(i, p)
				_ = L.SwapRowRange(i, p, 0, i)
				_ = P.SwapRows(i, p)
				pb[i], pb[p] = pb[p], pb[i]
				ev := PivotEvent{Stage: i, From: i, To: p}
				st.Pivot = &ev
				res.Pivots = append(res.Pivots, ev)
			}
		}
		piv = uRows[i][i]
		if math.Abs(piv) < o.Epsilon {
			return nil, singular(opLU, i, piv)
		}
		for j = i + 1; j < n; j++ {
			l = uRows[j][i] / piv
			lRows[j][i] = l
			for k = i; k < n; k++ {
				uRows[j][k] -= l * uRows[i][k]
			}
			st.Ops = append(st.Ops, RowOp{Stage: i, Target: j, Multiplier: l, Row: cloneRow(uRows[j])})
		}
		st.Snapshot = U.Copy()
		res.Stages = append(res.Stages, st)
		o.stage(MethodLU, &res.Stages[len(res.Stages)-1])
	}

	// Forward: L is unit lower, so every Diagonal is 1.
	c := make([]float64, n)
	res.Forward = make([]Substitution, 0, n)
	for i = 0; i < n; i++ {
		sum := matrix.ZeroSum
		for k = 0; k < i; k++ {
			sum += lRows[i][k] * c[k]
		}
		c[i] = pb[i] - sum
		sub := Substitution{Row: i, RHS: pb[i], Sum: sum, Diagonal: 1, Value: c[i]}
		res.Forward = append(res.Forward, sub)
		o.substitution(StepForward, &sub)
	}
	res.C = c

	res.X, res.Back, err = backSubstitute(opLU, uRows, c, func(s Substitution) {
		o.substitution(StepBack, &s)
	})
	if err != nil {
		return nil, err
	}
	if res.Residual, err = residual(opLU, sys.A, sys.B, res.X); err != nil {
		return nil, err
	}
	res.Cond = Cond(sys.A)
	o.Logger.Debug("linsolve: done", "method", string(MethodLU), "n", n, "swaps", len(res.Pivots), "cond", res.Cond)

	return res, nil
}

// Check verifies L·U == P·A entry-wise within tol. A mismatch is ErrNumerical.
func (r *LUResult) Check(tol float64) error {
	lu, err := matrix.Mul(r.L, r.U)
	if err != nil {
		return numerr.Wrap(opLUCheck, err)
	}
	pa, err := matrix.Mul(r.P, r.A)
	if err != nil {
		return numerr.Wrap(opLUCheck, err)
	}
	diff, err := matrix.MaxAbsDiff(lu, pa)
	if err != nil {
		return numerr.Wrap(opLUCheck, err)
	}
	if !(diff <= tol) {
		return numerr.Errorf(opLUCheck, numerr.ErrNumerical, "max |L·U - P·A| = %g exceeds %g", diff, tol)
	}

	return nil
}
