// Package server assembles the HTTP API: routing, middleware chain and
// lifecycle management.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/jsonplaceholder-api/internal/config"
	"github.com/iudanet/jsonplaceholder-api/internal/server/jwt"
	"github.com/iudanet/jsonplaceholder-api/internal/server/middleware"
	"github.com/iudanet/jsonplaceholder-api/internal/server/password"
	"github.com/iudanet/jsonplaceholder-api/internal/server/storage/sqlite"
)

// Server is the HTTP API server
type Server struct {
	logger  *slog.Logger
	cfg     *config.Config
	store   *sqlite.Storage
	tokens  *jwt.Service
	hasher  password.Hasher
	limiter *middleware.RateLimiter
	httpSrv *http.Server
}

// New wires the server from its dependencies
func New(logger *slog.Logger, cfg *config.Config, store *sqlite.Storage) *Server {
	s := &Server{
		logger:  logger,
		cfg:     cfg,
		store:   store,
		tokens:  jwt.NewService(cfg.JWTSecret, cfg.AccessTokenTTL),
		hasher:  password.NewBcryptHasher(cfg.BcryptCost),
		limiter: middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateWindow, logger),
	}

	s.httpSrv = &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	return s
}

// Run serves requests until the context is cancelled, then drains
// in-flight requests before returning
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("HTTP server listening", "addr", s.cfg.ListenAddr)
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server")
	s.limiter.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.httpSrv.Shutdown(shutdownCtx)
}
