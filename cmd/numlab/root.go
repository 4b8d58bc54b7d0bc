// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/numlab/config"
	"github.com/katalvlaran/numlab/linsolve"
	"github.com/katalvlaran/numlab/narrate"
	"github.com/katalvlaran/numlab/numerr"
	"github.com/katalvlaran/numlab/presets"
	"github.com/katalvlaran/numlab/roots"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// app carries the global flags and what PersistentPreRunE derives from them.
type app struct {
	configPath string
	logLevel   string
	preset     string
	plain      bool
	follow     bool
	steps      bool
	asJSON     bool

	cfg config.Config
	log *slog.Logger
	r   *narrate.Renderer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "numlab",
		Short:        "Step-by-step numerical methods: roots, linear systems, golden-section search",
		Long:         "numlab runs classroom numerical methods and prints every iteration, stage and substitution it performs.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (defaults are built in)")
	pf.StringVar(&a.logLevel, "log-level", "", "override log.level: debug, info, warn or error")
	pf.StringVar(&a.preset, "preset", "", "start from a named example (see `numlab presets`)")
	pf.BoolVar(&a.plain, "plain", false, "no colour, ASCII borders (implied when stdout is not a terminal)")
	pf.BoolVar(&a.follow, "follow", false, "print records as they are produced")
	pf.BoolVar(&a.steps, "steps", false, "spell out the arithmetic of every pass")
	pf.BoolVar(&a.asJSON, "json", false, "print the raw result as JSON")

	root.AddCommand(
		a.bracketCmd("bisect", "Bisection on [xl, xu]", roots.MethodBisection),
		a.bracketCmd("falsepos", "False position (regula falsi) on [xl, xu]", roots.MethodFalsePosition),
		a.secantCmd(),
		a.newtonCmd(),
		a.linearCmd(linsolve.MethodGauss, "Gaussian elimination with optional partial pivoting"),
		a.linearCmd(linsolve.MethodLU, "LU decomposition PA = LU, then Lc = Pb and Ux = c"),
		a.goldenCmd(),
		a.presetsCmd(),
		a.configCmd(),
		a.serveCmd(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err = cfg.Validate(); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}
	a.cfg = cfg
	a.log = cfg.Log.NewLogger(cmd.ErrOrStderr())
	a.r = narrate.New(narrate.WithPlain(a.plain || !terminal(cmd.OutOrStdout())))

	return nil
}

// lookup loads --preset and checks it carries the wanted request.
func (a *app) lookup(want string, has func(presets.Preset) bool) (presets.Preset, bool, error) {
	if a.preset == "" {
		return presets.Preset{}, false, nil
	}
	p, err := presets.Lookup(a.preset)
	if err != nil {
		return presets.Preset{}, false, err
	}
	if !has(p) {
		return presets.Preset{}, false, fmt.Errorf("preset %q is a %s example, not %s: %w", p.Name, p.Method, want, numerr.ErrInput)
	}

	return p, true, nil
}

// override copies v into dst when the flag was given on the command line.
func override[T any](cmd *cobra.Command, name string, dst *T, v T) {
	if cmd.Flags().Changed(name) {
		*dst = v
	}
}

// observing reports whether engine records should stream to out.
func (a *app) observing() bool { return a.follow && !a.asJSON }

// terminal reports whether w is an interactive terminal. Buffers and pipes are not.
func terminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
