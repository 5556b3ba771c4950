package history

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordmate-backend/internal/domain"
)

// Save stores result as the newest entry and prunes everything past the cap
// in the same transaction.
func (s *Service) Save(ctx context.Context, result domain.LookupResult) (*domain.HistoryEntry, error) {
	if strings.TrimSpace(result.Word) == "" {
		return nil, domain.NewValidationError("word", "required")
	}

	entry := domain.HistoryEntry{
		LookupResult: result,
		ID:           uuid.New(),
		SavedAt:      s.now().UTC(),
	}

	var pruned int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Insert(txCtx, entry); err != nil {
			return fmt.Errorf("insert entry: %w", err)
		}
		n, err := s.repo.Prune(txCtx, s.maxEntries)
		if err != nil {
			return fmt.Errorf("prune: %w", err)
		}
		pruned = n
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("history.Save: %w", err)
	}

	s.log.InfoContext(ctx, "history entry saved",
		slog.String("entry_id", entry.ID.String()),
		slog.String("word", entry.Word),
		slog.Int("pruned", pruned))

	return &entry, nil
}

// MarkNotionSynced flags an existing entry as pushed to Notion.
func (s *Service) MarkNotionSynced(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.MarkNotionSynced(ctx, id); err != nil {
		return fmt.Errorf("history.MarkNotionSynced: %w", err)
	}
	return nil
}

// Clear deletes every entry.
func (s *Service) Clear(ctx context.Context) error {
	n, err := s.repo.Clear(ctx)
	if err != nil {
		return fmt.Errorf("history.Clear: %w", err)
	}
	s.log.InfoContext(ctx, "history cleared", slog.Int("deleted", n))
	return nil
}
