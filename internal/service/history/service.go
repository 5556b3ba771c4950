// Package history keeps the capped list of saved lookups.
package history

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordmate-backend/internal/domain"
)

// DefaultMaxEntries caps the history when no limit is configured.
const DefaultMaxEntries = 200

type historyRepo interface {
	Insert(ctx context.Context, entry domain.HistoryEntry) error
	Prune(ctx context.Context, keep int) (int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.HistoryEntry, error)
	List(ctx context.Context, filter domain.HistoryFilter) ([]domain.HistoryEntry, int, error)
	ListAll(ctx context.Context) ([]domain.HistoryEntry, error)
	MarkNotionSynced(ctx context.Context, id uuid.UUID) error
	Clear(ctx context.Context) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides history operations.
type Service struct {
	log        *slog.Logger
	repo       historyRepo
	tx         txManager
	maxEntries int
	now        func() time.Time
}

// NewService creates a new history service. maxEntries <= 0 uses DefaultMaxEntries.
func NewService(
	logger *slog.Logger,
	repo historyRepo,
	tx txManager,
	maxEntries int,
) *Service {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Service{
		log:        logger.With("service", "history"),
		repo:       repo,
		tx:         tx,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}
