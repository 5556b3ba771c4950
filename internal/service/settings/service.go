// Package settings manages the single settings document shared by every client.
package settings

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/wordmate-backend/internal/domain"
)

// settingsRepo defines the persistence the settings service needs.
type settingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Upsert(ctx context.Context, s domain.Settings) error
	Delete(ctx context.Context) error
}

// txManager defines the transaction manager interface needed by settings service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Defaults are deployment-level values layered under stored settings.
// Stored non-empty values always win.
type Defaults struct {
	TranslationProvider domain.TranslationProvider
	NotionToken         string
	NotionDatabaseID    string
}

// Service implements settings read/update/reset.
type Service struct {
	log      *slog.Logger
	repo     settingsRepo
	tx       txManager
	defaults Defaults
}

// NewService creates a new settings service instance.
func NewService(
	logger *slog.Logger,
	repo settingsRepo,
	tx txManager,
	defaults Defaults,
) *Service {
	return &Service{
		log:      logger.With("service", "settings"),
		repo:     repo,
		tx:       tx,
		defaults: defaults,
	}
}

// base returns DefaultSettings with deployment defaults applied.
func (s *Service) base() domain.Settings {
	out := domain.DefaultSettings()
	if s.defaults.TranslationProvider.IsValid() {
		out.TranslationProvider = s.defaults.TranslationProvider
	}
	out.NotionToken = s.defaults.NotionToken
	out.NotionDatabaseID = s.defaults.NotionDatabaseID
	out.NotionConfigured = out.HasNotionCredentials()
	return out
}
