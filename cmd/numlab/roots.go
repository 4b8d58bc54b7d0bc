// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/numlab/presets"
	"github.com/katalvlaran/numlab/roots"
	"github.com/spf13/cobra"
)

// rootFlags are the engine flags shared by the root-finding commands.
type rootFlags struct {
	f, df          string
	xl, xu, x0, x1 float64
	tol            float64
	maxIter        int
}

func (fl *rootFlags) common(cmd *cobra.Command) {
	cmd.Flags().StringVar(&fl.f, "f", "", "f(x), e.g. \"4*x**3 - 6*x**2 + 7*x - 2.3\"")
	cmd.Flags().Float64Var(&fl.tol, "tol", 0, "stop when the relative error (%) reaches this value")
	cmd.Flags().IntVar(&fl.maxIter, "max-iter", 0, "iteration budget")
}

func (a *app) bracketCmd(use, short string, method roots.Method) *cobra.Command {
	solve := roots.Bisection
	if method == roots.MethodFalsePosition {
		solve = roots.FalsePosition
	}
	var fl rootFlags
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := roots.BracketRequest{Tolerance: a.cfg.Roots.Tolerance, MaxIterations: a.cfg.Roots.MaxIterations}
			p, ok, err := a.lookup(use, func(p presets.Preset) bool { return p.Bracket != nil })
			if err != nil {
				return err
			}
			if ok {
				req = *p.Bracket
			}
			override(cmd, "f", &req.Expr, fl.f)
			override(cmd, "xl", &req.XL, fl.xl)
			override(cmd, "xu", &req.XU, fl.xu)
			override(cmd, "tol", &req.Tolerance, fl.tol)
			override(cmd, "max-iter", &req.MaxIterations, fl.maxIter)

			res, err := solve(req, a.rootOptions(cmd, method)...)
			if err != nil {
				return err
			}
			return a.printRoots(cmd, res)
		},
	}
	fl.common(cmd)
	cmd.Flags().Float64Var(&fl.xl, "xl", 0, "lower bracket end")
	cmd.Flags().Float64Var(&fl.xu, "xu", 0, "upper bracket end")

	return cmd
}

func (a *app) secantCmd() *cobra.Command {
	var fl rootFlags
	cmd := &cobra.Command{
		Use:   "secant",
		Short: "Secant method from two starting guesses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := roots.SecantRequest{Tolerance: a.cfg.Roots.Tolerance, MaxIterations: a.cfg.Roots.MaxIterations}
			p, ok, err := a.lookup("secant", func(p presets.Preset) bool { return p.Secant != nil })
			if err != nil {
				return err
			}
			if ok {
				req = *p.Secant
			}
			override(cmd, "f", &req.Expr, fl.f)
			override(cmd, "x0", &req.XPrev, fl.x0)
			override(cmd, "x1", &req.X, fl.x1)
			override(cmd, "tol", &req.Tolerance, fl.tol)
			override(cmd, "max-iter", &req.MaxIterations, fl.maxIter)

			opts := append(a.rootOptions(cmd, roots.MethodSecant), roots.WithGuard(a.cfg.Roots.SecantGuard))
			res, err := roots.Secant(req, opts...)
			if err != nil {
				return err
			}
			return a.printRoots(cmd, res)
		},
	}
	fl.common(cmd)
	cmd.Flags().Float64Var(&fl.x0, "x0", 0, "x(i-1), the older guess")
	cmd.Flags().Float64Var(&fl.x1, "x1", 0, "x(i), the newer guess")

	return cmd
}

func (a *app) newtonCmd() *cobra.Command {
	var fl rootFlags
	cmd := &cobra.Command{
		Use:   "newton",
		Short: "Newton-Raphson with a hand-written derivative",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := roots.NewtonRequest{Tolerance: a.cfg.Roots.Tolerance, MaxIterations: a.cfg.Roots.MaxIterations}
			p, ok, err := a.lookup("newton", func(p presets.Preset) bool { return p.Newton != nil })
			if err != nil {
				return err
			}
			if ok {
				req = *p.Newton
			}
			override(cmd, "f", &req.Expr, fl.f)
			override(cmd, "df", &req.Deriv, fl.df)
			override(cmd, "x0", &req.X0, fl.x0)
			override(cmd, "tol", &req.Tolerance, fl.tol)
			override(cmd, "max-iter", &req.MaxIterations, fl.maxIter)

			opts := append(a.rootOptions(cmd, roots.MethodNewton), roots.WithGuard(a.cfg.Roots.NewtonGuard))
			res, err := roots.Newton(req, opts...)
			if err != nil {
				return err
			}
			return a.printRoots(cmd, res)
		},
	}
	fl.common(cmd)
	cmd.Flags().StringVar(&fl.df, "df", "", "f'(x)")
	cmd.Flags().Float64Var(&fl.x0, "x0", 0, "starting guess")

	return cmd
}

func (a *app) rootOptions(cmd *cobra.Command, method roots.Method) []roots.Option {
	opts := []roots.Option{roots.WithLogger(a.log)}
	if a.observing() {
		out := cmd.OutOrStdout()
		opts = append(opts, roots.WithObserver(func(rec roots.Record) {
			fmt.Fprintln(out, a.r.RootRecord(method, rec))
		}))
	}

	return opts
}

func (a *app) printRoots(cmd *cobra.Command, res *roots.Result) error {
	out := cmd.OutOrStdout()
	switch {
	case a.asJSON:
		return writeJSON(out, res)
	case a.steps:
		_, err := fmt.Fprint(out, a.r.RootSteps(res))
		return err
	case a.follow:
		_, err := fmt.Fprintln(out, a.r.Verdict(res))
		return err
	default:
		_, err := fmt.Fprint(out, a.r.RootTable(res))
		return err
	}
}
