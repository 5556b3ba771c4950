package notionsync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/wordmate-backend/internal/domain"
)

// FlushPending retries queued entries oldest first. It stops at the first
// failure, putting that entry back at the tail of the queue. Does nothing
// when Notion is not configured. Returns the number of entries pushed.
func (s *Service) FlushPending(ctx context.Context) (int, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("notionsync.FlushPending: load settings: %w", err)
	}
	if !settings.HasNotionCredentials() {
		return 0, nil
	}

	flushed := 0
	for ctx.Err() == nil {
		item, err := s.queue.Pop(ctx)
		if err != nil {
			return flushed, fmt.Errorf("notionsync.FlushPending: %w", err)
		}
		if item == nil {
			break
		}

		if _, err := s.push(ctx, settings, item.Entry); err != nil {
			// The item is already off the queue; put it back even if ctx ended mid-push.
			if _, qErr := s.queue.Enqueue(context.WithoutCancel(ctx), item.Entry); qErr != nil {
				s.log.ErrorContext(ctx, "re-queue notion entry",
					slog.String("word", item.Entry.Word),
					slog.String("error", qErr.Error()))
			}
			s.metrics.NotionSave(outcomeRetryFailed)
			s.log.WarnContext(ctx, "notion retry failed, re-queued",
				slog.String("word", item.Entry.Word),
				slog.Int("flushed", flushed),
				slog.String("error", err.Error()))
			return flushed, fmt.Errorf("%w: %w", domain.ErrNotionSyncFailed, err)
		}

		flushed++
		s.metrics.NotionSave(outcomeRetried)
	}

	if flushed > 0 {
		s.log.InfoContext(ctx, "notion queue flushed", slog.Int("count", flushed))
	}
	return flushed, nil
}

// Pending returns the queue length.
func (s *Service) Pending(ctx context.Context) (int, error) {
	n, err := s.queue.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("notionsync.Pending: %w", err)
	}
	return n, nil
}

// RunWorker calls FlushPending every interval until ctx is done.
func (s *Service) RunWorker(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.log.InfoContext(ctx, "notion retry worker started", slog.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			s.log.InfoContext(ctx, "notion retry worker stopped")
			return
		case <-ticker.C:
			if _, err := s.FlushPending(ctx); err != nil {
				s.log.WarnContext(ctx, "notion retry run", slog.String("error", err.Error()))
			}
		}
	}
}
