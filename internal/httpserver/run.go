package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const defaultShutdownTimeout = 10 * time.Second

// Run serves until ctx is cancelled, then drains in-flight requests and runs the closers.
func (srv *HTTPServer) Run(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:         fmt.Sprintf(":%d", srv.port),
		Handler:      srv.gin,
		ReadTimeout:  srv.readTimeout,
		WriteTimeout: srv.writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on %s", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	timeout := srv.shutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	srv.l.Infof(shutdownCtx, "HTTP server shutting down")
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(shutdownCtx, "httpserver.Run shutdown: %v", err)
	}

	for _, closeFn := range srv.closers {
		closeFn()
	}

	if serveErr != nil {
		return fmt.Errorf("http serve: %w", serveErr)
	}
	return nil
}
