// Package server exposes the practice API over HTTP.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/abhisek/drill/internal/analytics"
	"github.com/abhisek/drill/internal/observability"
	"github.com/abhisek/drill/internal/practice"
	"github.com/abhisek/drill/internal/store"
)

// shutdownTimeout bounds how long in-flight requests may drain on shutdown.
const shutdownTimeout = 10 * time.Second

// Deps are the services the API is built on.
type Deps struct {
	Problems  store.ProblemRepo
	Reviews   store.ReviewRepo
	Practice  *practice.Service
	Analytics *analytics.Service
	Logger    *slog.Logger

	// WriteLimiter throttles mutating requests per client. Nil disables it.
	WriteLimiter *RateLimiter
}

// Server is the HTTP API.
type Server struct {
	echo *echo.Echo
	deps Deps
}

// New builds the server and registers every route.
func New(deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(deps.Logger)

	s := &Server{echo: e, deps: deps}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: observability.NewRequestID,
		RequestIDHandler: func(c echo.Context, id string) {
			req := c.Request()
			logger := deps.Logger.With(observability.LogFieldRequestID, id)
			c.SetRequest(req.WithContext(observability.WithLogger(req.Context(), logger)))
		},
	}))
	e.Use(requestLogger(deps.Logger))
	e.Use(middleware.CORS())

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.echo.Group("/api")

	var writes []echo.MiddlewareFunc
	if s.deps.WriteLimiter != nil {
		writes = append(writes, s.deps.WriteLimiter.Middleware())
	}

	problems := api.Group("/problems")
	problems.POST("/", s.createProblem, writes...)
	problems.GET("/", s.nextProblem)
	problems.GET("/suspended", s.listSuspended)
	problems.POST("/:id/suspend", s.suspendProblem, writes...)
	problems.POST("/:id/unsuspend", s.unsuspendProblem, writes...)
	problems.GET("/:id", s.getProblem)
	problems.DELETE("/:id", s.deleteProblem, writes...)

	reviews := api.Group("/reviews")
	reviews.POST("/", s.createReview, writes...)
	reviews.GET("/", s.listReviews)
	reviews.GET("/problem/:id", s.listProblemReviews)
	reviews.DELETE("/:id", s.deleteReview, writes...)

	api.GET("/analytics/", s.getAnalytics)
}

// Handler returns the server as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		s.deps.Logger.Info("listening", "addr", addr)
		errCh <- s.echo.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "serve")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	return nil
}

func requestLogger(fallback *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger := observability.FromContext(c.Request().Context(), fallback)
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				observability.LogFieldDuration, v.Latency.Milliseconds(),
			}
			if v.Error != nil {
				logger.Warn("request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.Info("request", attrs...)
			return nil
		},
	})
}
