// Package main is the entry point for the lunar calendar API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/zapponejosh/lunar-api/internal/api"
	"github.com/zapponejosh/lunar-api/internal/catalog"
	"github.com/zapponejosh/lunar-api/internal/config"
	"github.com/zapponejosh/lunar-api/internal/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.Setup(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

// run serves until ctx is cancelled, then drains in-flight requests.
func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	handler, err := newHandler(cfg, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting lunar API",
			slog.Int("port", cfg.Port),
			slog.String("log_level", cfg.LogLevel),
			slog.String("festival_hook", cfg.FestivalHook),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newHandler wires the festival catalog, hook and resolver into the router.
func newHandler(cfg *config.Config, log *slog.Logger) (http.Handler, error) {
	cat, err := catalog.Load(cfg.FestivalsFile)
	if err != nil {
		return nil, fmt.Errorf("load festivals: %w", err)
	}
	hook, err := catalog.HookByName(cfg.FestivalHook)
	if err != nil {
		return nil, err
	}
	resolver, err := cat.Resolver(hook)
	if err != nil {
		return nil, fmt.Errorf("build resolver: %w", err)
	}

	log.Info("festival catalog loaded",
		slog.String("file", cfg.FestivalsFile),
		slog.Int("solar", cat.Solar.Len()),
		slog.Int("lunar", cat.Lunar.Len()),
	)

	return api.NewRouter(api.NewHandlers(resolver, cfg), log), nil
}
