package notionsync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordmate-backend/internal/adapter/notion"
	"github.com/heartmarshall/wordmate-backend/internal/domain"
)

// Save creates a page for entry. Without credentials it returns
// domain.ErrNotionNotConfigured and queues nothing. A remote failure queues
// the entry for retry and returns an error wrapping domain.ErrNotionSyncFailed.
func (s *Service) Save(ctx context.Context, entry domain.HistoryEntry) (*notion.Page, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("notionsync.Save: load settings: %w", err)
	}
	if !settings.HasNotionCredentials() {
		return nil, domain.ErrNotionNotConfigured
	}

	page, err := s.push(ctx, settings, entry)
	if err != nil {
		if _, qErr := s.queue.Enqueue(context.WithoutCancel(ctx), entry); qErr != nil {
			s.log.ErrorContext(ctx, "queue notion entry",
				slog.String("word", entry.Word),
				slog.String("error", qErr.Error()))
		}
		s.metrics.NotionSave(outcomeQueued)
		s.log.WarnContext(ctx, "notion save failed, queued for retry",
			slog.String("word", entry.Word),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", domain.ErrNotionSyncFailed, err)
	}

	s.metrics.NotionSave(outcomeOK)
	return page, nil
}

// TestConnection verifies token and databaseID against the Notion API and,
// on success, stores them as the configured credentials.
func (s *Service) TestConnection(ctx context.Context, token, databaseID string) (*notion.Database, error) {
	token = strings.TrimSpace(token)
	databaseID = strings.TrimSpace(databaseID)

	var errs []domain.FieldError
	if token == "" {
		errs = append(errs, domain.FieldError{Field: "notionToken", Message: "required"})
	}
	if databaseID == "" {
		errs = append(errs, domain.FieldError{Field: "notionDatabaseId", Message: "required"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	db, err := s.client.GetDatabase(ctx, token, databaseID)
	if err != nil {
		return nil, fmt.Errorf("notionsync.TestConnection: %w", err)
	}

	if _, err := s.settings.ConfirmNotion(ctx, token, databaseID); err != nil {
		return nil, fmt.Errorf("notionsync.TestConnection: store settings: %w", err)
	}

	s.log.InfoContext(ctx, "notion connection verified", slog.String("database", db.Name()))
	return db, nil
}

// push creates the page and marks the history entry synced when it has an id.
func (s *Service) push(ctx context.Context, settings domain.Settings, entry domain.HistoryEntry) (*notion.Page, error) {
	payload := notion.BuildPagePayload(entry, settings.NotionDatabaseID, s.now(), notion.WithStatus(s.status))

	page, err := s.client.CreatePage(ctx, settings.NotionToken, payload)
	if err != nil {
		return nil, err
	}

	if entry.ID != uuid.Nil {
		err := s.history.MarkNotionSynced(ctx, entry.ID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			// Entry was pruned or never saved locally; the page still exists.
		case err != nil:
			s.log.WarnContext(ctx, "mark history entry synced",
				slog.String("entry_id", entry.ID.String()),
				slog.String("error", err.Error()))
		}
	}
	return page, nil
}
