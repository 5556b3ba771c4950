package history

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordmate-backend/internal/domain"
)

// ListResult is one page of history.
type ListResult struct {
	Entries    []domain.HistoryEntry `json:"entries"`
	TotalCount int                   `json:"totalCount"`
	Limit      int                   `json:"limit"`
	Offset     int                   `json:"offset"`
}

// List returns entries newest first.
func (s *Service) List(ctx context.Context, filter domain.HistoryFilter) (*ListResult, error) {
	filter = filter.Normalize()

	entries, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("history.List: %w", err)
	}
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}

	return &ListResult{
		Entries:    entries,
		TotalCount: total,
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	}, nil
}

// Get returns a single entry.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.HistoryEntry, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("history.Get: %w", err)
	}
	return entry, nil
}
