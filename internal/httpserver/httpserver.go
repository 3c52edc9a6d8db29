package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Run wires the routes, starts the websocket hub, its redis subscriber and
// the HTTP listener, then blocks until ctx is cancelled and shuts everything
// down in reverse order.
func (srv *HTTPServer) Run(ctx context.Context) error {
	srv.mapHandlers()

	go srv.wsUC.Run()
	srv.l.Info(ctx, "WebSocket hub started")

	if err := srv.wsSubscriber.Start(ctx); err != nil {
		srv.l.Errorf(ctx, "Failed to start Redis subscriber: %v", err)
		return err
	}

	srv.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", srv.host, srv.port),
		Handler: srv.gin,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	srv.l.Infof(ctx, "HTTP server started on %s", srv.server.Addr)

	var runErr error
	select {
	case <-ctx.Done():
		srv.l.Info(ctx, "Stopping HTTP server...")
	case runErr = <-errCh:
		srv.l.Errorf(ctx, "HTTP server error: %v", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.server.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(ctx, "HTTP server shutdown error: %v", err)
	}
	if err := srv.wsSubscriber.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(ctx, "Redis subscriber shutdown error: %v", err)
	}
	if err := srv.wsUC.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(ctx, "WebSocket hub shutdown error: %v", err)
	}

	return runErr
}
