package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wordmate-backend/internal/domain"
)

// Get returns defaults merged with the stored document.
func (s *Service) Get(ctx context.Context) (domain.Settings, error) {
	current, err := s.load(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("settings.Get: %w", err)
	}
	return current, nil
}

// Update merges a partial patch into the stored settings (last write wins)
// and returns the merged result.
func (s *Service) Update(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, error) {
	if err := patch.Validate(); err != nil {
		return domain.Settings{}, err
	}

	var (
		before  domain.Settings
		updated domain.Settings
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.load(txCtx)
		if err != nil {
			return fmt.Errorf("get current settings: %w", err)
		}
		before = current

		updated = patch.Apply(current)
		if !updated.HasNotionCredentials() {
			updated.NotionConfigured = false
		} else if credentialsChanged(current, updated) {
			updated.NotionConfigured = true
		}

		if err := s.repo.Upsert(txCtx, updated); err != nil {
			return fmt.Errorf("store settings: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Settings{}, fmt.Errorf("settings.Update: %w", err)
	}

	s.log.InfoContext(ctx, "settings updated",
		slog.Any("changed", changedFields(before, updated)))

	return updated, nil
}

// Reset removes the stored document so Get returns defaults again.
func (s *Service) Reset(ctx context.Context) (domain.Settings, error) {
	if err := s.repo.Delete(ctx); err != nil {
		return domain.Settings{}, fmt.Errorf("settings.Reset: %w", err)
	}
	s.log.InfoContext(ctx, "settings reset")
	return s.base(), nil
}

// ConfirmNotion stores credentials that just passed a connection test and
// marks Notion as configured.
func (s *Service) ConfirmNotion(ctx context.Context, token, databaseID string) (domain.Settings, error) {
	configured := true
	return s.Update(ctx, domain.SettingsPatch{
		NotionToken:      &token,
		NotionDatabaseID: &databaseID,
		NotionConfigured: &configured,
	})
}

func (s *Service) load(ctx context.Context) (domain.Settings, error) {
	base := s.base()

	stored, err := s.repo.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return base, nil
	}
	if err != nil {
		return domain.Settings{}, err
	}

	merged := *stored
	if merged.NotionToken == "" {
		merged.NotionToken = base.NotionToken
	}
	if merged.NotionDatabaseID == "" {
		merged.NotionDatabaseID = base.NotionDatabaseID
	}
	if !merged.TranslationProvider.IsValid() {
		merged.TranslationProvider = base.TranslationProvider
	}
	if merged.HasNotionCredentials() && !stored.HasNotionCredentials() {
		merged.NotionConfigured = true
	}
	return merged, nil
}

func credentialsChanged(old, new domain.Settings) bool {
	return old.NotionToken != new.NotionToken || old.NotionDatabaseID != new.NotionDatabaseID
}

// changedFields lists the JSON names of fields that differ. Secret values are
// never logged, only the fact that they changed.
func changedFields(old, new domain.Settings) []string {
	var out []string
	add := func(changed bool, name string) {
		if changed {
			out = append(out, name)
		}
	}
	add(old.TranslationProvider != new.TranslationProvider, "translationProvider")
	add(old.AutoPlayAudio != new.AutoPlayAudio, "autoPlayAudio")
	add(old.AutoSaveNotion != new.AutoSaveNotion, "autoSaveNotion")
	add(old.NotionToken != new.NotionToken, "notionToken")
	add(old.NotionDatabaseID != new.NotionDatabaseID, "notionDatabaseId")
	add(old.AudioProvider != new.AudioProvider, "audioProvider")
	add(old.DefaultTab != new.DefaultTab, "defaultTab")
	add(old.Theme != new.Theme, "theme")
	add(old.AutoOpenPanel != new.AutoOpenPanel, "autoOpenPanel")
	add(old.NotionConfigured != new.NotionConfigured, "notionConfigured")
	add(old.OpenAIAPIKey != new.OpenAIAPIKey, "openAIApiKey")
	add(old.OpenAIModel != new.OpenAIModel, "openAIModel")
	return out
}
