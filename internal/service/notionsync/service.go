// Package notionsync pushes saved words to a Notion database and retries
// failed pushes from a persistent queue.
package notionsync

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordmate-backend/internal/adapter/notion"
	"github.com/heartmarshall/wordmate-backend/internal/domain"
	"github.com/heartmarshall/wordmate-backend/internal/metrics"
)

// Outcome labels for the notion save counter.
const (
	outcomeOK          = "ok"
	outcomeQueued      = "queued"
	outcomeRetried     = "retried"
	outcomeRetryFailed = "retry_failed"
)

type notionClient interface {
	CreatePage(ctx context.Context, token string, payload *notion.PagePayload) (*notion.Page, error)
	GetDatabase(ctx context.Context, token, databaseID string) (*notion.Database, error)
}

type pendingQueue interface {
	Enqueue(ctx context.Context, entry domain.HistoryEntry) (int64, error)
	Pop(ctx context.Context) (*domain.PendingNotionItem, error)
	Count(ctx context.Context) (int, error)
}

type historyMarker interface {
	MarkNotionSynced(ctx context.Context, id uuid.UUID) error
}

type settingsStore interface {
	Get(ctx context.Context) (domain.Settings, error)
	ConfirmNotion(ctx context.Context, token, databaseID string) (domain.Settings, error)
}

// Service implements Notion save, connection test and queue flush.
type Service struct {
	log      *slog.Logger
	client   notionClient
	queue    pendingQueue
	history  historyMarker
	settings settingsStore
	metrics  *metrics.Metrics
	status   string
	now      func() time.Time
}

// NewService creates a Notion sync service. m may be nil. status, when
// non-empty, is written to each page's Status property.
func NewService(
	logger *slog.Logger,
	client notionClient,
	queue pendingQueue,
	history historyMarker,
	settings settingsStore,
	m *metrics.Metrics,
	status string,
) *Service {
	return &Service{
		log:      logger.With("service", "notionsync"),
		client:   client,
		queue:    queue,
		history:  history,
		settings: settings,
		metrics:  m,
		status:   status,
		now:      time.Now,
	}
}
