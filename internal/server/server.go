package server

import (
	"context"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-armqr/internal/config"
	"github.com/MKhiriev/go-armqr/internal/handler"
	"github.com/MKhiriev/go-armqr/internal/logger"
	"golang.org/x/sync/errgroup"
)

type server struct {
	httpServer      *httpServer
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ln, err := s.httpServer.listen()
	if err != nil {
		return err
	}

	return s.run(ctx, ln)
}

func (s *server) run(ctx context.Context, ln net.Listener) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info().Msg("Launching HTTP server")
		return s.httpServer.serve(ln)
	})

	// stop on signal, on parent cancellation, or when Serve failed
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info().Dur("timeout", s.shutdownTimeout).Msg("shutting down HTTP server")
		return s.httpServer.shutdown(s.shutdownTimeout)
	})

	if err := g.Wait(); err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
