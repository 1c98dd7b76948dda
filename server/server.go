package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/katalvlaran/algoviz/config"
)

// Server serves the trace API until its context is cancelled.
type Server struct {
	cfg    config.Config
	logger *slog.Logger
	http   *http.Server
}

// New creates a server for cfg. Set gin's mode before calling New.
func New(cfg config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	router := NewRouter(NewHandlers(cfg.Limits, logger))
	return &Server{
		cfg:    cfg,
		logger: logger,
		http: &http.Server{
			Addr:    cfg.Server.Addr,
			Handler: router,
		},
	}
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.http.Handler }

// Run listens on the configured address and blocks until ctx is done or
// the listener fails. On cancellation it drains in-flight requests for
// up to ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.cfg.Server.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", ln.Addr().String())
		errCh <- s.http.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "timeout", s.cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
