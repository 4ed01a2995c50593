package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/viant/builder-vault/vault/config"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp"
	protocolclient "github.com/viant/mcp-protocol/client"
	"github.com/viant/mcp-protocol/logger"
	serverproto "github.com/viant/mcp-protocol/server"
)

// Server serves the vault endpoint for a single configuration.
type Server struct {
	config config.Config
}

// New creates a server for cfg.
func New(cfg config.Config) *Server {
	return &Server{config: cfg}
}

// Run starts a server for cfg and blocks until ctx is done or the listener
// fails. Failures are reported as *Error.
func Run(ctx context.Context, cfg config.Config) error {
	return New(cfg).Run(ctx)
}

// NewHandler returns the protocol handler used for every incoming connection.
func (s *Server) NewHandler(ctx context.Context, notifier transport.Notifier, l logger.Logger, cli protocolclient.Operations) (serverproto.Handler, error) {
	return serverproto.NewDefaultHandler(notifier, l, cli), nil
}

// Run listens on Config.Listen until ctx is done. A stop caused by
// ctx is not an error.
func (s *Server) Run(ctx context.Context) error {
	mcpServer, err := mcp.NewServer(s.NewHandler, s.config.Server)
	if err != nil {
		return &Error{Err: err}
	}
	httpSrv := mcpServer.HTTP(ctx, s.config.Listen)
	listener, err := net.Listen("tcp", s.config.Listen)
	if err != nil {
		return &Error{Err: err}
	}
	defer listener.Close()

	log.WithFields(log.Fields{
		"listen":    listener.Addr().String(),
		"routers":   len(s.config.Routers),
		"datastore": s.config.Datastore.Addr,
		"workers":   s.config.WorkerThreads,
	}).Info("vault server listening")

	errs := make(chan error, 1)
	go func() {
		errs <- httpSrv.Serve(listener)
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return &Error{Err: err}
	case <-ctx.Done():
		log.Info("shutting down vault server")
		if err := httpSrv.Close(); err != nil {
			return &Error{Err: err}
		}
		if err := <-errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return &Error{Err: err}
		}
		return nil
	}
}
