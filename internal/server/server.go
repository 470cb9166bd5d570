package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/BruksfildServices01/barber-booking/internal/config"
)

// Start serves router until ctx is cancelled, then shuts down gracefully.
func Start(ctx context.Context, cfg *config.Config, router http.Handler, log *slog.Logger) error {
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http.server.starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()

		log.Info("http.server.shutting_down")
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
