// Package settings stores the single settings document as a JSONB row.
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/wordmate-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordmate-backend/internal/adapter/postgres/settings/sqlc"
	"github.com/heartmarshall/wordmate-backend/internal/domain"
)

// Repo provides settings persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new settings repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the stored settings document. Fields missing from the stored
// JSON keep the values of DefaultSettings. Returns domain.ErrNotFound when
// nothing has been stored yet.
func (r *Repo) Get(ctx context.Context) (*domain.Settings, error) {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))

	payload, err := q.GetSettings(ctx)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("settings: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	s := domain.DefaultSettings()
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return &s, nil
}

// Upsert replaces the stored document.
func (r *Repo) Upsert(ctx context.Context, s domain.Settings) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))
	if err := q.UpsertSettings(ctx, payload); err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}

// Delete removes the stored document. Idempotent.
func (r *Repo) Delete(ctx context.Context) error {
	q := sqlc.New(postgres.QuerierFromCtx(ctx, r.pool))
	if err := q.DeleteSettings(ctx); err != nil {
		return fmt.Errorf("delete settings: %w", err)
	}
	return nil
}
