// Command notion-retry pushes every queued Notion save once, oldest first,
// stopping at the first failure. It is intended to be invoked by an external
// cron job when the server's in-process worker is disabled or down; both may
// run at the same time.
//
// Exit codes: 0 = queue drained (or Notion not configured), 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/wordmate-backend/internal/app"
	"github.com/heartmarshall/wordmate-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	comps, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error("build components", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer comps.Close()

	flushed, err := comps.Notion.FlushPending(ctx)
	if err != nil {
		logger.Error("notion retry failed",
			slog.String("error", err.Error()),
			slog.Int("flushed", flushed),
		)
		comps.Close()
		os.Exit(1)
	}

	pending, err := comps.Notion.Pending(ctx)
	if err != nil {
		logger.Error("count pending", slog.String("error", err.Error()))
		comps.Close()
		os.Exit(1)
	}

	logger.Info("notion retry completed",
		slog.Int("flushed", flushed),
		slog.Int("pending", pending),
	)
}
