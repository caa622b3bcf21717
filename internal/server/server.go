package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rpgo/card-optimizer/internal/calculation"
	"github.com/rpgo/card-optimizer/internal/config"
	"github.com/rpgo/card-optimizer/internal/repository"
)

const (
	shutdownTimeout      = 10 * time.Second
	defaultMemoryEntries = 1024
)

// Server is the HTTP boundary around the calculation engine.
type Server struct {
	settings config.Settings
	handler  *CardHandler
	limiter  *RateLimiter
	logger   calculation.Logger
	http     *http.Server
}

// New builds a Server. cache may be nil.
func New(settings config.Settings, engine Optimizer, cache repository.CacheRepository, logger calculation.Logger) *Server {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	s := &Server{
		settings: settings,
		handler:  NewCardHandler(engine, cache, logger),
		limiter:  NewRateLimiter(settings.Server.RateLimitPerMinute, time.Minute),
		logger:   logger,
	}
	s.http = &http.Server{
		Addr:         settings.Server.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the routed handler with CORS applied, rate limited unless
// rate_limit_per_minute is 0.
func (s *Server) Handler() http.Handler {
	limited := func(h http.HandlerFunc) http.Handler {
		if !s.limiter.Enabled() {
			return h
		}
		return RateLimitMiddleware(s.limiter, h)
	}

	mux := http.NewServeMux()
	mux.Handle("/", limited(s.handler.Welcome))
	mux.Handle("/cards", limited(s.handler.SuggestPayments))
	mux.Handle("/cards/12", limited(s.handler.CompareStrategies))
	return CORSMiddleware(s.settings.Server.AllowedOrigins, mux)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	defer s.limiter.Stop()

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Infof("listening on %s", s.settings.Server.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		s.logger.Infof("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Infof("server exited")
	return nil
}

// NewCache selects the response cache described by settings: nil when
// disabled, Redis when an address is configured and reachable, and a bounded
// expiring in-memory cache otherwise.
func NewCache(ctx context.Context, settings config.CacheSettings, logger calculation.Logger) (repository.CacheRepository, error) {
	if settings.Disabled {
		return nil, nil
	}
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	ttl := time.Duration(settings.TTLSeconds) * time.Second
	if settings.RedisAddr != "" {
		rc := repository.NewRedisCache(settings.RedisAddr, ttl)
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		err := rc.Ping(pingCtx)
		if err == nil {
			return rc, nil
		}
		logger.Warnf("redis at %s unavailable, using in-memory cache: %v", settings.RedisAddr, err)
		_ = rc.Close()
	}
	entries := settings.MaxEntries
	if entries <= 0 {
		entries = defaultMemoryEntries
	}
	mc, err := repository.NewMemoryCache(entries, ttl)
	if err != nil {
		return nil, err
	}
	return mc, nil
}
