// SPDX-License-Identifier: MIT

// Package server exposes the numlab engines as a JSON API.
//
// Endpoints:
//
//	POST /v1/roots/bisection       roots.BracketRequest
//	POST /v1/roots/false-position  roots.BracketRequest
//	POST /v1/roots/secant          roots.SecantRequest
//	POST /v1/roots/newton          roots.NewtonRequest
//	POST /v1/linear/gauss          LinearRequest
//	POST /v1/linear/lu             LinearRequest
//	POST /v1/optimize/golden       optimize.Request
//	GET  /v1/presets               every preset
//	GET  /v1/presets/:name         one preset
//	GET  /health
//	GET  /metrics                  Prometheus exposition
//
// Every response body is a Response. Fields omitted from a request body
// take the configured defaults.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/katalvlaran/numlab/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Version is reported by /health.
const Version = "0.1.0"

const (
	headerRequestID = "X-Request-ID"
	keyRequestID    = "request_id"
	shutdownTimeout = 5 * time.Second
)

// Server owns the gin engine and the configuration it serves with.
type Server struct {
	cfg    config.Config
	logger *slog.Logger
	engine *gin.Engine
}

// New wires routes and middleware. A nil logger means slog.Default().
func New(cfg config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{cfg: cfg, logger: logger, engine: gin.New()}
	s.engine.Use(gin.Recovery(), requestID(), s.accessLog())
	s.routes()

	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes() {
	s.engine.GET("/health", s.handleHealth)
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.engine.Group("/v1")
	if l := s.limiter(); l != nil {
		v1.Use(rateLimit(l))
	}
	r := v1.Group("/roots")
	r.POST("/bisection", s.handleBisection)
	r.POST("/false-position", s.handleFalsePosition)
	r.POST("/secant", s.handleSecant)
	r.POST("/newton", s.handleNewton)

	l := v1.Group("/linear")
	l.POST("/gauss", s.handleGauss)
	l.POST("/lu", s.handleLU)

	v1.POST("/optimize/golden", s.handleGolden)
	v1.GET("/presets", s.handlePresets)
	v1.GET("/presets/:name", s.handlePreset)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
	s.logger.Info("server: listening", "addr", srv.Addr)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("server: shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// limiter is nil when rate limiting is off.
func (s *Server) limiter() *rate.Limiter {
	if s.cfg.Server.RateLimit <= 0 {
		return nil
	}

	return rate.NewLimiter(rate.Limit(s.cfg.Server.RateLimit), max(s.cfg.Server.Burst, 1))
}

func rateLimit(l *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, Response{
				RequestID: c.GetString(keyRequestID),
				Error:     "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}

// requestID reuses the caller's X-Request-ID or mints one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(headerRequestID, id)
		c.Set(keyRequestID, id)
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("server: request",
			"request_id", c.GetString(keyRequestID),
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

// requestLogger scopes engine Debug events to the current request.
func (s *Server) requestLogger(c *gin.Context) *slog.Logger {
	return s.logger.With("request_id", c.GetString(keyRequestID))
}
