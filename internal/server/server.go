package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"fallbaq/internal/accesslog"
	"fallbaq/internal/logging"
	"fallbaq/internal/resolver"
	"fallbaq/internal/telemetry"
)

const (
	ShutdownTimeout   = 10 * time.Second
	ReadHeaderTimeout = 5 * time.Second
	ReadTimeout       = 10 * time.Second
	WriteTimeout      = 5 * time.Minute
	IdleTimeout       = 60 * time.Second
)

type Server struct {
	engine *gin.Engine
	roots  resolver.Roots
	access *accesslog.Logger
	log    zerolog.Logger
}

// New wires the file route over roots. roots is shared by every request and
// never modified.
func New(roots resolver.Roots, access *accesslog.Logger) *Server {
	if access == nil {
		access = accesslog.New(nil)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestID())
	engine.Use(telemetry.Middleware(requestIDKey))

	srv := &Server{
		engine: engine,
		roots:  roots,
		access: access,
		log:    logging.WithComponent("server"),
	}

	engine.GET("/*"+pathParam, srv.serveFile)

	return srv
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then drains in-flight
// requests for up to ShutdownTimeout.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: ReadHeaderTimeout,
		ReadTimeout:       ReadTimeout,
		WriteTimeout:      WriteTimeout,
		IdleTimeout:       IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info().Str("addr", addr).Int("roots", s.roots.Len()).Msg("listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		s.log.Info().Msg("shutting down")

		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
