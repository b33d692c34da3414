// Package server accepts TCP connections and serves one request on each.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/rs/zerolog"

	"github.com/shapestone/shape-webserver/internal/config"
	"github.com/shapestone/shape-webserver/internal/pages"
	"github.com/shapestone/shape-webserver/internal/pool"
	"github.com/shapestone/shape-webserver/pkg/http"
)

const maxAcceptDelay = time.Second

// Server dispatches accepted connections to a worker pool.
type Server struct {
	pool    *pool.Pool
	handler *Handler
	log     zerolog.Logger
}

// New returns a Server running handler on the workers of p.
func New(p *pool.Pool, handler *Handler, log zerolog.Logger) *Server {
	return &Server{
		pool:    p,
		handler: handler,
		log:     log,
	}
}

// Serve accepts connections on ln until ctx is cancelled, submitting one
// job per connection. On return the listener is closed and the pool has
// finished every running job.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.pool.Close()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
		case <-stop:
		}
		ln.Close()
	}()

	s.log.Info().Str("addr", ln.Addr().String()).Int("workers", s.pool.Size()).Msg("listening")

	var delay time.Duration
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				s.log.Info().Msg("shutting down")
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			delay = nextDelay(delay)
			s.log.Error().Err(err).Dur("retry_in", delay).Msg("accept failed")
			time.Sleep(delay)
			continue
		}
		delay = 0

		if err := s.pool.Submit(func() { s.handler.ServeConn(conn) }); err != nil {
			conn.Close()
			return fmt.Errorf("server: submit: %w", err)
		}
	}
}

func nextDelay(d time.Duration) time.Duration {
	if d == 0 {
		return 5 * time.Millisecond
	}
	if d *= 2; d > maxAcceptDelay {
		return maxAcceptDelay
	}
	return d
}

// ListenAndServe builds the page store, worker pool and handler described
// by cfg, binds cfg.Address and serves until ctx is cancelled.
func ListenAndServe(ctx context.Context, cfg config.Config, log zerolog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	store := pages.Embedded()
	if cfg.PagesDir != "" {
		store = pages.Dir(cfg.PagesDir)
	}

	p, err := pool.Build(cfg.Workers, log)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		p.Close()
		return fmt.Errorf("server: listen: %w", err)
	}

	handler := NewHandler(store, log, http.WithStrictHeaders(cfg.StrictHeaders))
	return New(p, handler, log).Serve(ctx, ln)
}
