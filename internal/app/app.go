package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/netutil"

	"proxmox-discord-relay/internal/domain/ports"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// App manages the lifecycle of the relay's HTTP listener.
type App struct {
	server   *http.Server
	logger   ports.Logger
	addr     string
	maxConns int
}

// New constructs an App serving handler on addr with at most maxConns open
// connections (unlimited when maxConns <= 0).
func New(handler http.Handler, logger ports.Logger, addr string, maxConns int) *App {
	return &App{
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger:   logger,
		addr:     addr,
		maxConns: maxConns,
	}
}

// Run listens on the configured address and serves until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.addr)
	if err != nil {
		return err
	}
	return a.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	if a.maxConns > 0 {
		ln = netutil.LimitListener(ln, a.maxConns)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.server.Serve(ln)
	}()
	a.logger.Info(ctx, "starting Proxmox-Discord bridge", "addr", ln.Addr().String(), "max_connections", a.maxConns)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(stopCtx); err != nil {
		a.logger.Error(context.Background(), "graceful shutdown failed", "error", err)
		return err
	}
	a.logger.Info(context.Background(), "server stopped")
	return nil
}
