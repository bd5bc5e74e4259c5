package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/quic-go/quic-go/http3"
	"golang.org/x/sync/errgroup"

	"github.com/snaplevel/snaplevel/internal/core/observability/log"
)

// Server hosts the level-generation API. The level builder and physics
// calculator underneath are pure functions, so every request is handled
// independently and concurrent requests cannot interfere.
type Server struct {
	config Config
	logger log.Log

	httpServer *http.Server
}

// New creates a server with its routes wired.
func New(config Config, logger log.Log) *Server {
	s := &Server{
		config: config,
		logger: logger.With(log.String("component", "server")),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("POST /v1/levels", s.handleBuildLevel)
	mux.HandleFunc("POST /v1/physics", s.handlePhysics)
	mux.HandleFunc("GET /v1/preview", s.handlePreview)

	s.httpServer = &http.Server{
		Addr:    config.ListenAddr,
		Handler: s.withRequestLog(mux),
	}

	return s
}

// Handler exposes the wired handler chain, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run starts the HTTP listener (and the optional HTTP/3 listener) and
// blocks until ctx is cancelled or a listener fails.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	s.logger.Info("Server listening", log.String("addr", s.config.ListenAddr))

	g.Go(func() error {
		err := s.httpServer.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	var h3Server *http3.Server
	if s.config.HTTP3.Enabled {
		h3Server = &http3.Server{
			Addr:    s.config.ListenAddr,
			Handler: s.httpServer.Handler,
		}
		s.logger.Info("HTTP/3 listener enabled", log.String("addr", s.config.ListenAddr))
		g.Go(func() error {
			err := h3Server.ListenAndServeTLS(s.config.HTTP3.CertFile, s.config.HTTP3.KeyFile)
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("Stopping server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		if h3Server != nil {
			_ = h3Server.Shutdown(shutdownCtx)
		}
		return s.httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
