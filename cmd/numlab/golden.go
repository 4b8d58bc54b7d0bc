// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/numlab/narrate"
	"github.com/katalvlaran/numlab/optimize"
	"github.com/katalvlaran/numlab/presets"
	"github.com/spf13/cobra"
)

func (a *app) goldenCmd() *cobra.Command {
	var (
		f        string
		xl, xu   float64
		maxIter  int
		minimize bool
	)
	cmd := &cobra.Command{
		Use:   "golden",
		Short: "Golden-section search for the maximum (or --min) on [xl, xu]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sense, err := optimize.ParseSense(a.cfg.Golden.Sense)
			if err != nil {
				return err
			}
			req := optimize.Request{MaxIterations: a.cfg.Golden.MaxIterations, Sense: sense}
			p, ok, err := a.lookup("golden", func(p presets.Preset) bool { return p.Golden != nil })
			if err != nil {
				return err
			}
			if ok {
				req = *p.Golden
			}
			override(cmd, "f", &req.Expr, f)
			override(cmd, "xl", &req.XL, xl)
			override(cmd, "xu", &req.XU, xu)
			override(cmd, "max-iter", &req.MaxIterations, maxIter)
			if minimize {
				req.Sense = optimize.Minimize
			}

			out := cmd.OutOrStdout()
			opts := []optimize.Option{optimize.WithLogger(a.log)}
			if a.observing() {
				opts = append(opts, optimize.WithObserver(func(rec optimize.Record) {
					fmt.Fprint(out, a.r.GoldenRecord(req.Sense, rec))
				}))
			}
			res, err := optimize.GoldenSection(req, opts...)
			if err != nil {
				return err
			}

			switch {
			case a.asJSON:
				return writeJSON(out, res)
			case a.follow:
				_, err = fmt.Fprintf(out, "x = %s, f(x) = %s\n", narrate.Num(res.X), narrate.Num(res.FX))
			case a.steps:
				_, err = fmt.Fprint(out, a.r.GoldenSteps(res))
			default:
				_, err = fmt.Fprint(out, a.r.GoldenTable(res))
			}
			return err
		},
	}
	cmd.Flags().StringVar(&f, "f", "", "f(x), e.g. \"2*sin(x) - x**2/10\"")
	cmd.Flags().Float64Var(&xl, "xl", 0, "lower interval end")
	cmd.Flags().Float64Var(&xu, "xu", 0, "upper interval end")
	cmd.Flags().IntVar(&maxIter, "max-iter", 0, "number of passes")
	cmd.Flags().BoolVar(&minimize, "min", false, "search for the minimum instead")

	return cmd
}
