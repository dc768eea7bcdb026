package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Nessyi/pumpkin-management/internal/constants"
)

// NewHTTPServer: h2c 래핑된 HTTP 서버를 생성한다.
func NewHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           WrapH2C(handler),
		ReadHeaderTimeout: constants.ServerTimeout.ReadHeader,
		IdleTimeout:       constants.ServerTimeout.Idle,
	}
}

// Serve: HTTP 서버를 시작하고 ctx가 끝나면 shutdownTimeout 안에 우아하게 종료한다.
func Serve(ctx context.Context, server *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server listen failed: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}

		err := <-errCh
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server stopped with error: %w", err)
	}
}
