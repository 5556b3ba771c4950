package settings_test

import (
	"context"
	"errors"
	"testing"

	"github.com/heartmarshall/wordmate-backend/internal/adapter/postgres/settings"
	"github.com/heartmarshall/wordmate-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/wordmate-backend/internal/domain"
)

func TestRepo_GetEmpty(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	testhelper.Truncate(t, pool, "settings")
	repo := settings.New(pool)

	_, err := repo.Get(context.Background())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestRepo_UpsertRoundTrip(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	testhelper.Truncate(t, pool, "settings")
	repo := settings.New(pool)
	ctx := context.Background()

	s := domain.DefaultSettings()
	s.TranslationProvider = domain.TranslationProviderGPT
	s.NotionToken = "secret_x"
	if err := repo.Upsert(ctx, s); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	s.Theme = "dark"
	if err := repo.Upsert(ctx, s); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if *got != s {
		t.Errorf("Get = %+v, want %+v", *got, s)
	}

	var rows int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM settings`).Scan(&rows); err != nil {
		t.Fatalf("count: %v", err)
	}
	if rows != 1 {
		t.Errorf("rows = %d, want single settings row", rows)
	}
}

func TestRepo_Get_MissingFieldsKeepDefaults(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	testhelper.Truncate(t, pool, "settings")
	repo := settings.New(pool)
	ctx := context.Background()

	if _, err := pool.Exec(ctx, `INSERT INTO settings (id, data) VALUES (1, '{"theme":"dark"}')`); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", got.Theme)
	}
	if got.DefaultTab != "definition" || !got.AutoOpenPanel || got.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("defaults not applied: %+v", got)
	}
}

func TestRepo_Delete(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	testhelper.Truncate(t, pool, "settings")
	repo := settings.New(pool)
	ctx := context.Background()

	if err := repo.Upsert(ctx, domain.DefaultSettings()); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := repo.Delete(ctx); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(ctx); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get after Delete = %v, want ErrNotFound", err)
	}
}
