package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Serve listens on the configured port until SIGINT or SIGTERM, then
// drains in-flight requests. Functions in onShutdown run after the
// server has stopped accepting requests.
func (app *Application) Serve(mux *http.ServeMux, onShutdown ...func()) error {
	logger := app.logger()

	srv := &http.Server{
		Addr:         app.Config.HTTPPort,
		Handler:      app.BuildRoutes(mux),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	shutdownErr := make(chan error)

	go func() {
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
		s := <-shutdown
		logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := srv.Shutdown(ctx)

		logger.Info("completing background tasks before shutting down")
		for _, fn := range onShutdown {
			fn()
		}
		shutdownErr <- err
	}()

	logger.Info("starting server", "addr", app.Config.HTTPPort, "store", app.Config.StoreType)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err := <-shutdownErr; err != nil {
		return err
	}

	logger.Info("stopped server", "addr", app.Config.HTTPPort)
	return nil
}
