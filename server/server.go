// Package server assembles the gin engine and runs the HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/blogpost/config"
	"github.com/ncobase/blogpost/handler"
	"github.com/ncobase/blogpost/logging/logger"
	"github.com/ncobase/blogpost/middleware"
)

// ShutdownTimeout bounds how long in-flight requests may take to finish.
const ShutdownTimeout = 30 * time.Second

// Server owns the router and the HTTP listener.
type Server struct {
	config *config.Config
	logger *logger.Logger
	engine *gin.Engine
	server *http.Server
}

// NewServer builds the router with the middleware chain and all routes.
func NewServer(cfg *config.Config, h *handler.Handler, log *logger.Logger) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	s := &Server{
		config: cfg,
		logger: log,
		engine: NewEngine(cfg, h, log),
	}
	s.server = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s, nil
}

// NewEngine returns a gin engine with the middleware chain and routes.
func NewEngine(cfg *config.Config, h *handler.Handler, log *logger.Logger) *gin.Engine {
	gin.SetMode(ginMode(cfg))

	r := gin.New()
	r.Use(
		middleware.Trace(),
		middleware.Span(),
		middleware.Logger(log),
		middleware.Recovery(log),
	)

	h.RegisterRoutes(r)
	return r
}

// ginMode maps the configured environment to a gin mode. Unknown
// environments run in debug mode.
func ginMode(cfg *config.Config) string {
	switch {
	case cfg.IsProd():
		return gin.ReleaseMode
	case cfg.Environment == gin.TestMode:
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.server.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting server", "addr", ln.Addr().String())
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info(context.Background(), "Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		s.logger.Error(shutdownCtx, "Server forced to shutdown", "error", err)
		return err
	}

	s.logger.Info(context.Background(), "Server exited")
	return nil
}
