// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numlab/linsolve"
	"github.com/katalvlaran/numlab/matrix"
	"github.com/katalvlaran/numlab/narrate"
	"github.com/katalvlaran/numlab/numerr"
	"github.com/katalvlaran/numlab/presets"
	"github.com/spf13/cobra"
)

func (a *app) linearCmd(method linsolve.Method, short string) *cobra.Command {
	var (
		flat, b []float64
		noPivot bool
		eps     float64
	)
	cmd := &cobra.Command{
		Use:   string(method),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var lin presets.Linear
			p, ok, err := a.lookup(string(method), func(p presets.Preset) bool { return p.Linear != nil })
			if err != nil {
				return err
			}
			if ok {
				lin = *p.Linear
			}
			if cmd.Flags().Changed("a") {
				if lin.A, err = square(flat); err != nil {
					return err
				}
			}
			override(cmd, "b", &lin.B, b)
			sys, err := lin.System()
			if err != nil {
				return err
			}

			epsilon := a.cfg.Linear.Epsilon
			override(cmd, "eps", &epsilon, eps)
			opts := []linsolve.Option{
				linsolve.WithPivoting(a.cfg.Linear.Pivoting && !noPivot),
				linsolve.WithEpsilon(epsilon),
				linsolve.WithLogger(a.log),
			}
			out := cmd.OutOrStdout()
			if a.observing() {
				opts = append(opts, linsolve.WithObserver(func(s linsolve.Step) {
					fmt.Fprint(out, a.r.LinearStep(s))
				}))
			}

			var (
				res    any
				report string
				x      []float64
			)
			switch method {
			case linsolve.MethodLU:
				lu, err := linsolve.LU(sys, opts...)
				if err != nil {
					return err
				}
				res, report, x = lu, a.r.LUReport(lu), lu.X
			default:
				g, err := linsolve.Gauss(sys, opts...)
				if err != nil {
					return err
				}
				res, report, x = g, a.r.GaussReport(g), g.X
			}

			switch {
			case a.asJSON:
				return writeJSON(out, res)
			case a.follow:
				_, err = fmt.Fprintln(out, "Solution: x = "+narrate.Vector(x))
			default:
				_, err = fmt.Fprint(out, report)
			}
			return err
		},
	}
	cmd.Flags().Float64SliceVar(&flat, "a", nil, "A in row-major order, n*n values: --a=4,1,-1,5,1,2,6,1,1")
	cmd.Flags().Float64SliceVar(&b, "b", nil, "right-hand side, n values: --b=-2,4,6")
	cmd.Flags().BoolVar(&noPivot, "no-pivot", false, "disable partial pivoting")
	cmd.Flags().Float64Var(&eps, "eps", 0, "singularity threshold for pivots")

	return cmd
}

// square reshapes n*n row-major values into n rows.
func square(flat []float64) ([][]float64, error) {
	n := int(math.Round(math.Sqrt(float64(len(flat)))))
	m, err := matrix.NewDenseData(n, n, flat)
	if err != nil {
		return nil, fmt.Errorf("--a: %d values do not form a square matrix: %w: %w", len(flat), numerr.ErrInput, err)
	}

	return m.Rows2D(), nil
}
