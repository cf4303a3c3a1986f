package server

import (
	"context"
	"net/http"
	"time"

	"github.com/OmiShrestha/rpi5-system-info/internal/collector"
	"github.com/OmiShrestha/rpi5-system-info/internal/config"
	"github.com/OmiShrestha/rpi5-system-info/internal/errors"
	"github.com/OmiShrestha/rpi5-system-info/internal/hostinfo"
	"github.com/OmiShrestha/rpi5-system-info/internal/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server serves the JSON API and the dashboard page.
type Server struct {
	cfg     *config.Config
	svc     collector.Service
	host    hostinfo.Provider
	version string
	log     logger.Logger
	mux     *http.ServeMux
}

func New(cfg *config.Config, svc collector.Service, host hostinfo.Provider, version string, log logger.Logger) *Server {
	if log == nil {
		log = logger.New()
	}

	return &Server{
		cfg:     cfg,
		svc:     svc,
		host:    host,
		version: version,
		log:     log,
		mux:     http.NewServeMux(),
	}
}

// Routes registers all HTTP handlers on the server mux.
func (s *Server) Routes() {
	s.mux.HandleFunc("/", s.handleDashboard)
	s.mux.HandleFunc("/api/status", s.handleStatus)
	s.mux.HandleFunc("/api/history", s.handleHistory)
	s.mux.HandleFunc("/api/host", s.handleHost)
	s.mux.HandleFunc("/health", s.handleHealth)
}

// Handler exposes the mux for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe runs the HTTP server until the context is cancelled,
// then drains in-flight requests before returning.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errFactory := errors.New()

	httpServer := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	s.log.Info().Str("addr", httpServer.Addr).Msg("HTTP server listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return errFactory.Wrap(ErrShutdownFailed, err)
		}

		s.log.Info().Msg("HTTP server stopped")

		return nil
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errFactory.Wrap(ErrServeFailed, err)
		}

		return nil
	}
}
