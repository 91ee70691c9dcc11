package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MauricioMilano/kwan-challenge/internal/config"
	httphandler "github.com/MauricioMilano/kwan-challenge/internal/handler/http"
	"github.com/MauricioMilano/kwan-challenge/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
	onShutdown []func()
}

// NewServer builds the HTTP server around the handler's router. onShutdown
// hooks run after the transport has drained, in the order given; the caller
// uses them to close the queue connection and the database pool.
func NewServer(handler *httphandler.Handler, cfg config.Server, logger *logger.Logger, onShutdown ...func()) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handler.Init(), cfg, logger),
		logger:     logger,
		onShutdown: onShutdown,
	}, nil
}

func (s *server) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()

	for _, hook := range s.onShutdown {
		hook()
	}
}
