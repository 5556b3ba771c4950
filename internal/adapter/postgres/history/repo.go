// Package history implements the lookup history repository using PostgreSQL.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/wordmate-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordmate-backend/internal/domain"
)

const table = "history_entries"

var columns = []string{"id", "word", "translation", "result", "notion_synced", "saved_at"}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides history persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a history entry by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.HistoryEntry, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build history query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	entry, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "history_entry", id)
	}
	return entry, nil
}

// List returns entries newest first plus the total number matching the filter.
// The filter is expected to be normalized by the caller.
func (r *Repo) List(ctx context.Context, filter domain.HistoryFilter) ([]domain.HistoryEntry, int, error) {
	where := filterConditions(filter)
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := psql.Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build history count: %w", err)
	}
	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count history_entries: %w", err)
	}

	listSQL, listArgs, err := psql.Select(columns...).
		From(table).
		Where(where).
		OrderBy("saved_at DESC", "id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build history list: %w", err)
	}

	entries, err := r.query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// ListAll returns every entry newest first. Used by the CSV export.
func (r *Repo) ListAll(ctx context.Context) ([]domain.HistoryEntry, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		OrderBy("saved_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build history list: %w", err)
	}
	return r.query(ctx, query, args...)
}

func (r *Repo) query(ctx context.Context, query string, args ...any) ([]domain.HistoryEntry, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list history_entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.HistoryEntry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan history_entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history_entries: %w", err)
	}
	return entries, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert persists a new entry. ID and SavedAt must be set by the caller.
func (r *Repo) Insert(ctx context.Context, entry domain.HistoryEntry) error {
	payload, err := json.Marshal(entry.LookupResult)
	if err != nil {
		return fmt.Errorf("marshal history_entry %s: %w", entry.ID, err)
	}

	query, args, err := psql.Insert(table).
		Columns(columns...).
		Values(entry.ID, entry.Word, entry.Translation, payload, entry.NotionSynced, entry.SavedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build history insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "history_entry", entry.ID)
	}
	return nil
}

const pruneSQL = `
DELETE FROM history_entries
WHERE id IN (
	SELECT id FROM history_entries
	ORDER BY saved_at DESC, id DESC
	OFFSET $1
)`

// Prune deletes everything past the newest keep entries and returns how many
// rows were removed.
func (r *Repo) Prune(ctx context.Context, keep int) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, pruneSQL, keep)
	if err != nil {
		return 0, fmt.Errorf("prune history_entries: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// MarkNotionSynced flags an entry as pushed to Notion.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) MarkNotionSynced(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Update(table).
		Set("notion_synced", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build history update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "history_entry", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("history_entry %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Clear removes every entry. Idempotent; returns the number of deleted rows.
func (r *Repo) Clear(ctx context.Context) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM history_entries`)
	if err != nil {
		return 0, fmt.Errorf("clear history_entries: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func filterConditions(filter domain.HistoryFilter) squirrel.And {
	where := squirrel.And{}
	if filter.Search != nil {
		pattern := "%" + *filter.Search + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"word": pattern},
			squirrel.ILike{"translation": pattern},
		})
	}
	if filter.NotionSynced != nil {
		where = append(where, squirrel.Eq{"notion_synced": *filter.NotionSynced})
	}
	return where
}

func scanEntry(row pgx.Row) (*domain.HistoryEntry, error) {
	var (
		entry   domain.HistoryEntry
		payload []byte
		savedAt time.Time
	)
	if err := row.Scan(&entry.ID, &entry.Word, &entry.Translation, &payload, &entry.NotionSynced, &savedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(payload, &entry.LookupResult); err != nil {
		return nil, fmt.Errorf("decode history_entry %s: %w", entry.ID, err)
	}
	entry.SavedAt = savedAt.UTC()
	return &entry, nil
}
