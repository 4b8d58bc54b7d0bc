// SPDX-License-Identifier: MIT

package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/katalvlaran/numlab/linsolve"
	"github.com/katalvlaran/numlab/numerr"
	"github.com/katalvlaran/numlab/optimize"
	"github.com/katalvlaran/numlab/presets"
	"github.com/katalvlaran/numlab/roots"
)

// Response is the body of every API reply. Exactly one of Result and Error is set.
type Response struct {
	RequestID string `json:"request_id"`
	Result    any    `json:"result,omitempty"`
	Error     string `json:"error,omitempty"`
	Kind      string `json:"kind,omitempty"`
}

// LinearRequest is the body of /v1/linear/*. A is given row by row.
type LinearRequest struct {
	A        [][]float64 `json:"a"`
	B        []float64   `json:"b"`
	Pivoting bool        `json:"pivoting"`
	Epsilon  float64     `json:"epsilon"`
}

// HealthResponse is the body of /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// statusFor maps an error kind to an HTTP status.
func statusFor(kind string) int {
	switch kind {
	case "input", "expression":
		return http.StatusBadRequest
	case "domain", "numerical":
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c *gin.Context, code int, err error) {
	kind := numerr.Kind(err)
	if kind != "" || code < http.StatusInternalServerError {
		s.requestLogger(c).Warn("server: request failed", "error", err, "kind", kind)
	} else {
		s.requestLogger(c).Error("server: request failed", "error", err)
	}
	c.JSON(code, Response{RequestID: c.GetString(keyRequestID), Error: err.Error(), Kind: kind})
}

func (s *Server) ok(c *gin.Context, result any) {
	c.JSON(http.StatusOK, Response{RequestID: c.GetString(keyRequestID), Result: result})
}

// bind decodes the body over req, which already holds the defaults.
func bind(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return fmt.Errorf("request body: %v: %w", err, numerr.ErrInput)
	}

	return nil
}

// engineCall runs one engine and reports what metrics need.
type engineCall func(log *slog.Logger) (result any, iterations int, status numerr.Status, err error)

func (s *Server) serve(c *gin.Context, method string, call engineCall) {
	start := time.Now()
	result, iterations, status, err := call(s.requestLogger(c))
	if err != nil {
		kind := numerr.Kind(err)
		outcome := kind
		if outcome == "" {
			outcome = "internal"
		}
		observe(method, outcome, 0, time.Since(start))
		s.fail(c, statusFor(kind), err)
		return
	}
	observe(method, status.String(), iterations, time.Since(start))
	s.ok(c, result)
}

func (s *Server) capIterations(op string, n int) error {
	if n > s.cfg.Server.MaxIterations {
		return numerr.Errorf(op, numerr.ErrInput, "max_iterations %d exceeds the server limit %d", n, s.cfg.Server.MaxIterations)
	}

	return nil
}

func rootOutcome(res *roots.Result, err error) (any, int, numerr.Status, error) {
	if err != nil {
		return nil, 0, 0, err
	}

	return res, res.Iterations, res.Status, nil
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Version: Version})
}

func (s *Server) handleBisection(c *gin.Context) {
	s.bracket(c, roots.MethodBisection, roots.Bisection)
}

func (s *Server) handleFalsePosition(c *gin.Context) {
	s.bracket(c, roots.MethodFalsePosition, roots.FalsePosition)
}

func (s *Server) bracket(c *gin.Context, method roots.Method, solve func(roots.BracketRequest, ...roots.Option) (*roots.Result, error)) {
	req := roots.BracketRequest{Tolerance: s.cfg.Roots.Tolerance, MaxIterations: s.cfg.Roots.MaxIterations}
	if err := bind(c, &req); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	s.serve(c, string(method), func(log *slog.Logger) (any, int, numerr.Status, error) {
		if err := s.capIterations(string(method), req.MaxIterations); err != nil {
			return nil, 0, 0, err
		}
		return rootOutcome(solve(req, roots.WithLogger(log)))
	})
}

func (s *Server) handleSecant(c *gin.Context) {
	req := roots.SecantRequest{Tolerance: s.cfg.Roots.Tolerance, MaxIterations: s.cfg.Roots.MaxIterations}
	if err := bind(c, &req); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	s.serve(c, string(roots.MethodSecant), func(log *slog.Logger) (any, int, numerr.Status, error) {
		if err := s.capIterations("secant", req.MaxIterations); err != nil {
			return nil, 0, 0, err
		}
		return rootOutcome(roots.Secant(req, roots.WithLogger(log), roots.WithGuard(s.cfg.Roots.SecantGuard)))
	})
}

func (s *Server) handleNewton(c *gin.Context) {
	req := roots.NewtonRequest{Tolerance: s.cfg.Roots.Tolerance, MaxIterations: s.cfg.Roots.MaxIterations}
	if err := bind(c, &req); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	s.serve(c, string(roots.MethodNewton), func(log *slog.Logger) (any, int, numerr.Status, error) {
		if err := s.capIterations("newton", req.MaxIterations); err != nil {
			return nil, 0, 0, err
		}
		return rootOutcome(roots.Newton(req, roots.WithLogger(log), roots.WithGuard(s.cfg.Roots.NewtonGuard)))
	})
}

// linear decodes a LinearRequest and enforces the dimension cap.
func (s *Server) linear(c *gin.Context, method linsolve.Method) (linsolve.System, []linsolve.Option, bool) {
	req := LinearRequest{Pivoting: s.cfg.Linear.Pivoting, Epsilon: s.cfg.Linear.Epsilon}
	if err := bind(c, &req); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return linsolve.System{}, nil, false
	}
	if n := len(req.A); n > s.cfg.Server.MaxDimension {
		s.fail(c, http.StatusBadRequest, numerr.Errorf(string(method), numerr.ErrInput,
			"dimension %d exceeds the server limit %d", n, s.cfg.Server.MaxDimension))
		return linsolve.System{}, nil, false
	}
	sys, err := linsolve.NewSystem(req.A, req.B)
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return linsolve.System{}, nil, false
	}

	return sys, []linsolve.Option{linsolve.WithPivoting(req.Pivoting), linsolve.WithEpsilon(req.Epsilon)}, true
}

func (s *Server) handleGauss(c *gin.Context) {
	sys, opts, ok := s.linear(c, linsolve.MethodGauss)
	if !ok {
		return
	}
	s.serve(c, string(linsolve.MethodGauss), func(log *slog.Logger) (any, int, numerr.Status, error) {
		res, err := linsolve.Gauss(sys, append(opts, linsolve.WithLogger(log))...)
		if err != nil {
			return nil, 0, 0, err
		}
		return res, len(res.Stages), numerr.StatusCompleted, nil
	})
}

func (s *Server) handleLU(c *gin.Context) {
	sys, opts, ok := s.linear(c, linsolve.MethodLU)
	if !ok {
		return
	}
	s.serve(c, string(linsolve.MethodLU), func(log *slog.Logger) (any, int, numerr.Status, error) {
		res, err := linsolve.LU(sys, append(opts, linsolve.WithLogger(log))...)
		if err != nil {
			return nil, 0, 0, err
		}
		return res, len(res.Stages), numerr.StatusCompleted, nil
	})
}

func (s *Server) handleGolden(c *gin.Context) {
	req := optimize.Request{MaxIterations: s.cfg.Golden.MaxIterations, Sense: optimize.Sense(s.cfg.Golden.Sense)}
	if err := bind(c, &req); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	s.serve(c, optimize.MethodGolden, func(log *slog.Logger) (any, int, numerr.Status, error) {
		if err := s.capIterations(optimize.MethodGolden, req.MaxIterations); err != nil {
			return nil, 0, 0, err
		}
		res, err := optimize.GoldenSection(req, optimize.WithLogger(log))
		if err != nil {
			return nil, 0, 0, err
		}
		return res, res.Iterations, res.Status, nil
	})
}

func (s *Server) handlePresets(c *gin.Context) {
	s.ok(c, presets.All())
}

func (s *Server) handlePreset(c *gin.Context) {
	p, err := presets.Lookup(c.Param("name"))
	if err != nil {
		s.fail(c, http.StatusNotFound, err)
		return
	}
	s.ok(c, p)
}
