// SPDX-License-Identifier: MIT

package linsolve

import (
	"fmt"

	"github.com/katalvlaran/numlab/matrix"
	"github.com/katalvlaran/numlab/numerr"
)

// Method names a linear solver.
type Method string

const (
	MethodGauss Method = "gauss"
	MethodLU    Method = "lu"
)

// System is the request of both solvers: a square A and a right-hand side B.
type System struct {
	A *matrix.Dense
	B []float64
}

// NewSystem builds a System from row slices and validates it.
func NewSystem(a [][]float64, b []float64) (System, error) {
	m, err := matrix.NewDenseFrom(a)
	if err != nil {
		return System{}, inputErr("NewSystem", err)
	}
	sys := System{A: m, B: append([]float64(nil), b...)}

	return sys, sys.Validate()
}

// Validate reports ErrInput unless A is square, len(B) matches and every
// entry is finite. The matrix sentinel stays reachable through errors.Is.
func (s System) Validate() error {
	if err := matrix.ValidateSquare(s.A); err != nil {
		return inputErr("System", err)
	}
	if err := matrix.ValidateVecLen(s.B, s.A.Rows()); err != nil {
		return inputErr("System", err)
	}
	if err := matrix.ValidateFinite(s.A); err != nil {
		return inputErr("System", err)
	}
	if err := matrix.ValidateFiniteVec(s.B); err != nil {
		return inputErr("System", err)
	}

	return nil
}

func inputErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, err, numerr.ErrInput)
}

// PivotEvent records a row swap at a stage. It is only emitted when From != To.
type PivotEvent struct {
	Stage int `json:"stage"`
	From  int `json:"from"`
	To    int `json:"to"`
}

// RowOp is row(Target) -= Multiplier * row(Stage). Row is the target row
// right after the operation (augmented for Gauss, a row of U for LU).
type RowOp struct {
	Stage      int       `json:"stage"`
	Target     int       `json:"target"`
	Multiplier float64   `json:"multiplier"`
	Row        []float64 `json:"row"`
}

// Substitution is one triangular-solve step:
// Value = (RHS - Sum) / Diagonal, Diagonal is 1 for the unit-lower forward pass.
type Substitution struct {
	Row      int     `json:"row"`
	RHS      float64 `json:"rhs"`
	Sum      float64 `json:"sum"`
	Diagonal float64 `json:"diagonal"`
	Value    float64 `json:"value"`
}

// Stage is one elimination column: the optional swap, the row operations and
// the working matrix once they are applied.
type Stage struct {
	Index    int           `json:"index"`
	Pivot    *PivotEvent   `json:"pivot,omitempty"`
	Ops      []RowOp       `json:"ops"`
	Snapshot *matrix.Dense `json:"snapshot"`
}

// StepKind tags what a Step carries.
type StepKind int

const (
	StepStage StepKind = iota + 1
	StepForward
	StepBack
)

// Step is what the observer receives: a finished Stage or one Substitution.
type Step struct {
	Kind         StepKind
	Stage        *Stage
	Substitution *Substitution
}

// GaussResult is the trace and solution of Gauss.
type GaussResult struct {
	Stages    []Stage        `json:"stages"`
	Pivots    []PivotEvent   `json:"pivots"`
	Augmented *matrix.Dense  `json:"augmented"`
	Back      []Substitution `json:"back"`
	X         []float64      `json:"x"`
	Residual  float64        `json:"residual"`
	Cond      float64        `json:"cond,omitempty"`
}

// LUResult is the decomposition, trace and solution of LU.
type LUResult struct {
	A        *matrix.Dense  `json:"-"`
	L        *matrix.Dense  `json:"l"`
	U        *matrix.Dense  `json:"u"`
	P        *matrix.Dense  `json:"p"`
	PB       []float64      `json:"pb"`
	Stages   []Stage        `json:"stages"`
	Pivots   []PivotEvent   `json:"pivots"`
	Forward  []Substitution `json:"forward"`
	C        []float64      `json:"c"`
	Back     []Substitution `json:"back"`
	X        []float64      `json:"x"`
	Residual float64        `json:"residual"`
	Cond     float64        `json:"cond,omitempty"`
}
