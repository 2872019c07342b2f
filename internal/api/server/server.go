// Package server provides the HTTP server implementation
package server

// @title           Currency Rates API
// @version         1.0
// @description     Currencies and exchange rates between them.
//
// @description.markdown
// All API endpoints are subject to rate limiting per client IP.
// When the limit is exceeded status 429 is returned together with
// X-RateLimit-Limit, X-RateLimit-Reset and Retry-After headers.
//
// @host            localhost:8080
// @BasePath        /api/v1
//
// @response 429 {object} models.ErrorResponse "Rate limit exceeded"

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"currencyrates/internal/config"
)

// Server represents the HTTP server
type Server struct {
	cfg     config.APIConfig
	handler http.Handler
	logger  *slog.Logger
}

// New creates a new server instance
func New(cfg config.APIConfig, handler http.Handler, logger *slog.Logger) *Server {
	return &Server{
		cfg:     cfg,
		handler: handler,
		logger:  logger,
	}
}

// Run serves on the configured port until ctx is cancelled, then shuts down
// gracefully within the configured timeout
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", ":"+s.cfg.Port)
	if err != nil {
		return fmt.Errorf("listen on port %s: %w", s.cfg.Port, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting server", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...")
	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	if err := <-errCh; err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	s.logger.Info("Server exiting")
	return nil
}
