package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/kmlpser/internal/core/domain"
	"github.com/custodia-labs/kmlpser/internal/logger"
	"github.com/custodia-labs/kmlpser/internal/metrics"
)

// Config holds the HTTP server limits.
type Config struct {
	// Addr is the listen address.
	Addr string

	// RateLimit is the sustained request rate per second.
	RateLimit float64

	// Burst is the token bucket size.
	Burst int

	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64
}

// ConfigFromSettings converts server settings to a Config.
func ConfigFromSettings(s domain.ServerSettings) Config {
	return Config{
		Addr:         s.Addr,
		RateLimit:    float64(s.RateLimit),
		Burst:        s.Burst,
		MaxBodyBytes: int64(s.MaxBodyBytes),
	}
}

// Server is the HTTP API server.
type Server struct {
	ports   *Ports
	cfg     Config
	limiter *rate.Limiter
	handler http.Handler
}

// NewServer creates a server with the given ports and limits.
func NewServer(ports *Ports, cfg Config) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}
	if cfg.RateLimit <= 0 || cfg.Burst <= 0 || cfg.MaxBodyBytes <= 0 {
		return nil, fmt.Errorf("server limits must be positive: %w", domain.ErrInvalidInput)
	}

	s := &Server{
		ports:   ports,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst),
	}
	s.handler = instrument(s.rateLimit(s.routes()))
	return s, nil
}

// Handler returns the fully wrapped handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/parse", s.handleParse)
	mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	mux.HandleFunc("GET /api/documents", s.handleListDocuments)
	mux.HandleFunc("GET /api/documents/{id}", s.handleGetDocument)
	mux.HandleFunc("GET /api/documents/{id}/geojson", s.handleGeoJSON)
	mux.HandleFunc("GET /api/documents/{id}/features/{index}/analysis", s.handleFeatureAnalysis)
	mux.HandleFunc("GET /healthz", handleHealth)
	mux.Handle("GET /metrics", metrics.Handler())
	return mux
}

// Run listens on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	logger.Info("HTTP API listening on %s", listener.Addr())
	err := httpServer.Serve(listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
