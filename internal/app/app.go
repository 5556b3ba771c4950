package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/wordmate-backend/internal/config"
	"github.com/heartmarshall/wordmate-backend/internal/transport/middleware"
	"github.com/heartmarshall/wordmate-backend/internal/transport/rest"
)

// Run is the server entry point: it loads configuration, initializes the
// logger and serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	return Serve(ctx, cfg, NewLogger(cfg.Log))
}

// Serve wires the components, starts the HTTP server and the Notion retry
// worker, and shuts both down gracefully when ctx is cancelled.
func Serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	comps, err := Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer comps.Close()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      comps.Handler(cfg, logger, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		comps.Notion.RunWorker(gctx, cfg.Notion.RetryInterval)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// Handler builds the HTTP router over the wired services.
func (c *Components) Handler(cfg *config.Config, logger *slog.Logger, limiter *middleware.RateLimiter) http.Handler {
	health := rest.NewHealthHandler(c.Pool, Version)
	if c.Cache != nil {
		health.WithComponent("cache", c.Cache)
	}

	return rest.NewRouter(rest.RouterDeps{
		Messages:    rest.NewMessageHandler(c.Lookup, c.History, c.Notion, c.Settings, logger),
		History:     rest.NewHistoryHandler(c.History, logger),
		Notion:      rest.NewNotionHandler(c.Notion, logger),
		Settings:    rest.NewSettingsHandler(c.Settings, logger),
		Health:      health,
		Logger:      logger,
		Metrics:     c.Metrics,
		Gatherer:    c.Registry,
		RateLimiter: limiter,
		RateLimit:   cfg.RateLimit.MessagesPerMinute,
		CORS:        cfg.CORS,
	})
}
