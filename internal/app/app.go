// Package app wires configuration, storage, the service and the HTTP server
// together. Both binaries start from here; no business logic belongs here.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/charleslimjh/tp/internal/config"
	"github.com/charleslimjh/tp/internal/handler"
	"github.com/charleslimjh/tp/internal/repo"
	"github.com/charleslimjh/tp/internal/service"
)

// App holds the long-lived dependencies built from a Config.
type App struct {
	Config  config.Config
	Log     *slog.Logger
	Store   repo.Store
	Service *service.FoodGuideService
}

// New opens the configured store and loads the food guide from it.
func New(ctx context.Context, cfg config.Config, log *slog.Logger) (*App, error) {
	store, err := repo.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("app.New: open store: %w", err)
	}
	log.Info("storage ready", "driver", cfg.StorageDriver)

	svc, err := service.NewFoodGuideService(ctx, store, log)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("app.New: %w", err)
	}

	return &App{Config: cfg, Log: log, Store: store, Service: svc}, nil
}

// Close releases the store.
func (a *App) Close() error {
	return a.Store.Close()
}

// Handler returns the HTTP API with its middleware stack.
func (a *App) Handler() http.Handler {
	srv := handler.NewServer(a.Service, a.Service, a.Log)
	return handler.NewRouter(srv, handler.RouterOptions{
		Logger:       a.Log,
		CORSOrigins:  a.Config.CORSOrigins,
		MaxBodyBytes: a.Config.MaxBodyBytes,
	})
}

// Serve runs the HTTP server until ctx is cancelled, then gives in-flight
// requests up to 15 seconds to complete.
func (a *App) Serve(ctx context.Context) error {
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + a.Config.Port,
		Handler:      a.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Log.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("app.Serve: %w", err)
	case <-ctx.Done():
	}

	a.Log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app.Serve: shutdown: %w", err)
	}
	a.Log.Info("server stopped")
	return nil
}
