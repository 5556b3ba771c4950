// Package lookup resolves a headword into a LookupResult by querying the
// dictionary and translation sources in parallel and merging their output.
package lookup

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/wordmate-backend/internal/domain"
	"github.com/heartmarshall/wordmate-backend/internal/metrics"
	"github.com/heartmarshall/wordmate-backend/internal/provider"
)

const (
	defaultContextMaxLength = 400
	defaultFallbackAudioURL = "https://youglish.com/pronounce/%s/english"
)

type dictionaryProvider interface {
	FetchEntry(ctx context.Context, word string) (*provider.DictionaryEntry, error)
}

type translator interface {
	Translate(ctx context.Context, settings domain.Settings, word, contextText string) (*provider.TranslationResult, error)
}

type settingsReader interface {
	Get(ctx context.Context) (domain.Settings, error)
}

// Config tunes the orchestrator.
type Config struct {
	ContextMaxLength int
	FallbackAudioURL string // fmt template with one %s for the escaped word
	DefaultProvider  domain.TranslationProvider
}

// Service is the lookup orchestrator.
type Service struct {
	log        *slog.Logger
	dictionary dictionaryProvider
	translator translator
	settings   settingsReader
	metrics    *metrics.Metrics
	cfg        Config
}

// NewService creates a lookup Service. m may be nil.
func NewService(
	logger *slog.Logger,
	dictionary dictionaryProvider,
	translator translator,
	settings settingsReader,
	m *metrics.Metrics,
	cfg Config,
) *Service {
	if cfg.ContextMaxLength <= 0 {
		cfg.ContextMaxLength = defaultContextMaxLength
	}
	if cfg.FallbackAudioURL == "" {
		cfg.FallbackAudioURL = defaultFallbackAudioURL
	}
	if !cfg.DefaultProvider.IsValid() {
		cfg.DefaultProvider = domain.TranslationProviderGoogle
	}
	return &Service{
		log:        logger.With("service", "lookup"),
		dictionary: dictionary,
		translator: translator,
		settings:   settings,
		metrics:    m,
		cfg:        cfg,
	}
}

// Lookup fetches dictionary and translation data concurrently and assembles
// the result. Source failures degrade that source to empty; the only error
// is an empty headword, reported as a ValidationError matching
// domain.ErrInvalidRequest.
func (s *Service) Lookup(ctx context.Context, req domain.LookupRequest) (*domain.LookupResult, error) {
	start := time.Now()

	word := strings.TrimSpace(req.Text)
	if word == "" {
		s.metrics.ObserveLookup("invalid", time.Since(start))
		return nil, domain.NewInvalidRequestError("text", "required")
	}
	contextText := domain.TruncateRunes(strings.TrimSpace(req.Context), s.cfg.ContextMaxLength)

	settings := s.currentSettings(ctx)

	var (
		dict  *provider.DictionaryEntry
		trans *provider.TranslationResult
	)

	// Each source swallows its own error so the other is never cancelled.
	var g errgroup.Group
	g.Go(func() error {
		entry, err := s.dictionary.FetchEntry(ctx, word)
		if err != nil {
			s.log.WarnContext(ctx, "dictionary unavailable, continuing without it",
				slog.String("word", word),
				slog.String("error", err.Error()),
			)
			s.metrics.SourceFailed(metrics.SourceDictionary)
			return nil
		}
		dict = entry
		return nil
	})
	g.Go(func() error {
		res, err := s.translator.Translate(ctx, settings, word, contextText)
		if err != nil {
			s.log.WarnContext(ctx, "translation unavailable, continuing without it",
				slog.String("word", word),
				slog.String("provider", settings.TranslationProvider.String()),
				slog.String("error", err.Error()),
			)
			s.metrics.SourceFailed(metrics.SourceTranslation)
			return nil
		}
		trans = res
		return nil
	})
	_ = g.Wait()

	result := s.assemble(word, contextText, req, settings, dict, trans)

	outcome := "ok"
	if dict == nil || trans == nil {
		outcome = "degraded"
	}
	s.metrics.ObserveLookup(outcome, time.Since(start))

	s.log.DebugContext(ctx, "lookup done",
		slog.String("word", word),
		slog.String("outcome", outcome),
		slog.Int("definitions", len(result.Definitions)),
	)

	return result, nil
}

// currentSettings returns stored settings, or defaults if they cannot be read.
func (s *Service) currentSettings(ctx context.Context) domain.Settings {
	fallback := domain.DefaultSettings()
	fallback.TranslationProvider = s.cfg.DefaultProvider

	if s.settings == nil {
		return fallback
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "settings unavailable, using defaults", slog.String("error", err.Error()))
		return fallback
	}
	if !settings.TranslationProvider.IsValid() {
		settings.TranslationProvider = s.cfg.DefaultProvider
	}
	return settings
}
