// Package notionqueue persists Notion saves that failed and wait for retry.
package notionqueue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/wordmate-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordmate-backend/internal/adapter/postgres/notionqueue/sqlc"
	"github.com/heartmarshall/wordmate-backend/internal/domain"
)

// Repo is a FIFO queue backed by the notion_queue table.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new queue repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Enqueue appends entry to the tail of the queue and returns its id.
func (r *Repo) Enqueue(ctx context.Context, entry domain.HistoryEntry) (int64, error) {
	payload, err := json.Marshal(entry)
	if err != nil {
		return 0, fmt.Errorf("marshal notion_queue entry: %w", err)
	}

	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	id, err := q.Enqueue(ctx, payload)
	if err != nil {
		return 0, fmt.Errorf("enqueue notion_queue: %w", err)
	}
	return id, nil
}

// Pop removes and returns the oldest item. Returns nil, nil when the queue is empty.
func (r *Repo) Pop(ctx context.Context) (*domain.PendingNotionItem, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	row, err := q.Pop(ctx)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("pop notion_queue: %w", err)
	}

	item := domain.PendingNotionItem{ID: row.ID, EnqueuedAt: row.EnqueuedAt.UTC()}
	if err := json.Unmarshal(row.Entry, &item.Entry); err != nil {
		return nil, fmt.Errorf("decode notion_queue %d: %w", row.ID, err)
	}
	return &item, nil
}

// Count returns the number of pending items.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	n, err := q.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count notion_queue: %w", err)
	}
	return int(n), nil
}
