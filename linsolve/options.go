// SPDX-License-Identifier: MIT

package linsolve

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/numlab/numerr"
)

// DefaultEpsilon is the pivot magnitude below which a system is singular.
const DefaultEpsilon = 1e-12

// Option configures a solver call; violations surface as numerr.ErrInput.
type Option func(*Options)

// Options holds the per-call settings.
type Options struct {
	Pivoting bool
	Epsilon  float64
	Observer func(Step)
	Logger   *slog.Logger
	err      error
}

// DefaultOptions: pivoting on, DefaultEpsilon, no-op observer, slog.Default().
func DefaultOptions() Options {
	return Options{
		Pivoting: true,
		Epsilon:  DefaultEpsilon,
		Observer: func(Step) {},
		Logger:   slog.Default(),
	}
}

// WithPivoting toggles partial pivoting.
func WithPivoting(on bool) Option {
	return func(o *Options) { o.Pivoting = on }
}

// WithEpsilon sets the singularity threshold; it must be positive and finite.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if !(eps > 0) || math.IsInf(eps, 1) {
			o.err = fmt.Errorf("epsilon must be a positive finite number (%g): %w", eps, numerr.ErrInput)

			return
		}
		o.Epsilon = eps
	}
}

// WithObserver receives each finished stage and substitution step in order.
func WithObserver(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Observer = fn
		}
	}
}

// WithLogger routes Debug events to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}

func (o Options) stage(method Method, st *Stage) {
	o.Observer(Step{Kind: StepStage, Stage: st})
	attrs := []any{"method", string(method), "stage", st.Index, "ops", len(st.Ops)}
	if st.Pivot != nil {
		attrs = append(attrs, "swap_from", st.Pivot.From, "swap_to", st.Pivot.To)
	}
	o.Logger.Debug("linsolve: stage", attrs...)
}

func (o Options) substitution(kind StepKind, sub *Substitution) {
	o.Observer(Step{Kind: kind, Substitution: sub})
}
