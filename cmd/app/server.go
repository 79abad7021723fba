package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// shutdownTimeout bounds how long in-flight requests may run once ctx is done.
const shutdownTimeout = 30 * time.Second

// serve runs the HTTP server until ctx is cancelled, then drains it.
func (app *application) serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         app.config.Addr(),
		Handler:      app.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelError),
	}

	listenErr := make(chan error, 1)
	go func() {
		app.logger.Info("starting server", slog.String("addr", srv.Addr), slog.String("env", app.config.Environment))
		listenErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}

	app.logger.Info("shutting down server", slog.String("cause", context.Cause(ctx).Error()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-listenErr; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	app.logger.Info("stopped server", slog.String("addr", srv.Addr))

	return nil
}
