// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/numlab/numerr"
)

// Default near-zero guards for the open methods.
const (
	DefaultSecantGuard = 1e-20
	DefaultNewtonGuard = 1e-15
)

// Option configures a root-finder call. Invalid options are recorded and
// surface as numerr.ErrInput when the method runs.
type Option func(*Options)

// Options holds the per-call hooks and overrides.
type Options struct {
	// Observer receives every Record right after it is appended.
	Observer func(Record)

	// Logger receives Debug events per pass and on termination.
	Logger *slog.Logger

	// Guard overrides the method's near-zero threshold when > 0.
	Guard float64

	err error
}

// DefaultOptions returns no-op hooks, slog.Default() and method guards.
func DefaultOptions() Options {
	return Options{
		Observer: func(Record) {},
		Logger:   slog.Default(),
	}
}

// WithObserver registers fn to run synchronously on each emitted Record.
func WithObserver(fn func(Record)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Observer = fn
		}
	}
}

// WithLogger routes engine events to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithGuard sets the near-zero threshold used by Secant (denominator) and
// Newton (derivative).
//
//	eps > 0: use eps
//	otherwise (0, negative, NaN, Inf): invalid option → ErrInput
func WithGuard(eps float64) Option {
	return func(o *Options) {
		if !(eps > 0) || math.IsInf(eps, 1) {
			o.err = fmt.Errorf("guard must be a positive finite number (%g): %w", eps, numerr.ErrInput)

			return
		}
		o.Guard = eps
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

func (o Options) guard(def float64) float64 {
	if o.Guard > 0 {
		return o.Guard
	}

	return def
}

// emit appends rec, notifies the observer and logs the pass.
func (o Options) emit(res *Result, rec Record) {
	res.Records = append(res.Records, rec)
	o.Observer(rec)
	o.Logger.Debug("roots: iteration",
		"method", string(res.Method),
		"iteration", rec.Iteration,
		"x", rec.X,
		"error", rec.Error,
	)
}

// finish stamps the terminal fields of res and logs them.
func (o Options) finish(res *Result, root, froot float64, iterations int, status numerr.Status) *Result {
	res.Root, res.FRoot = root, froot
	res.Iterations = iterations
	res.Status = status
	o.Logger.Debug("roots: done",
		"method", string(res.Method),
		"iterations", iterations,
		"status", status.String(),
		"root", root,
	)

	return res
}
