package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/heartmarshall/wordmate-backend/internal/adapter/notion"
	"github.com/heartmarshall/wordmate-backend/internal/adapter/postgres"
	historyrepo "github.com/heartmarshall/wordmate-backend/internal/adapter/postgres/history"
	"github.com/heartmarshall/wordmate-backend/internal/adapter/postgres/notionqueue"
	settingsrepo "github.com/heartmarshall/wordmate-backend/internal/adapter/postgres/settings"
	"github.com/heartmarshall/wordmate-backend/internal/adapter/provider/freedict"
	"github.com/heartmarshall/wordmate-backend/internal/adapter/provider/google"
	"github.com/heartmarshall/wordmate-backend/internal/adapter/provider/translate"
	rediscache "github.com/heartmarshall/wordmate-backend/internal/adapter/redis"
	"github.com/heartmarshall/wordmate-backend/internal/config"
	"github.com/heartmarshall/wordmate-backend/internal/domain"
	"github.com/heartmarshall/wordmate-backend/internal/metrics"
	"github.com/heartmarshall/wordmate-backend/internal/provider"
	"github.com/heartmarshall/wordmate-backend/internal/service/history"
	"github.com/heartmarshall/wordmate-backend/internal/service/lookup"
	"github.com/heartmarshall/wordmate-backend/internal/service/notionsync"
	"github.com/heartmarshall/wordmate-backend/internal/service/settings"
)

type dictionarySource interface {
	FetchEntry(ctx context.Context, word string) (*provider.DictionaryEntry, error)
}

// Components holds the wired services shared by the server and the CLIs.
type Components struct {
	Pool     *pgxpool.Pool
	Cache    *rediscache.DictionaryCache // nil when caching is disabled
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics

	Settings *settings.Service
	History  *history.Service
	Lookup   *lookup.Service
	Notion   *notionsync.Service

	closers []func()
}

// Build connects to the database (migrating it when configured), the
// optional Redis cache, and wires every service. Call Close when done.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	c := &Components{Registry: prometheus.NewRegistry()}
	c.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	c.Metrics = metrics.New(c.Registry)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	c.Pool = pool
	c.closers = append(c.closers, pool.Close)

	if cfg.Database.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	txm := postgres.NewTxManager(pool)

	c.Settings = settings.NewService(logger, settingsrepo.New(pool), txm, settings.Defaults{
		TranslationProvider: domain.TranslationProvider(cfg.Lookup.DefaultProvider),
		NotionToken:         cfg.Notion.Token,
		NotionDatabaseID:    cfg.Notion.DatabaseID,
	})

	historyRepo := historyrepo.New(pool)
	c.History = history.NewService(logger, historyRepo, txm, cfg.History.MaxEntries)

	var dictionary dictionarySource = freedict.NewProviderWithURL(cfg.Lookup.DictionaryURL, logger).WithTimeout(cfg.Lookup.SourceTimeout)

	if cfg.Cache.Enabled {
		client := rediscache.NewClient(cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB)
		c.closers = append(c.closers, func() { _ = client.Close() })
		c.Cache = rediscache.NewDictionaryCache(client, dictionary, logger,
			rediscache.WithTTL(cfg.Cache.TTL),
			rediscache.WithPrefix(cfg.Cache.Prefix),
			rediscache.WithMetrics(c.Metrics),
		)
		dictionary = c.Cache
		if err := c.Cache.Ping(ctx); err != nil {
			logger.Warn("dictionary cache unreachable, lookups will bypass it",
				slog.String("addr", cfg.Cache.Addr),
				slog.String("error", err.Error()))
		}
	}

	googleClient := google.NewClient(cfg.Lookup.TranslateURL, cfg.Lookup.TargetLanguage, logger).
		WithTimeout(cfg.Lookup.SourceTimeout)
	gpt := translate.NewGPT(translate.OpenAIConfig{
		APIKey:  cfg.OpenAI.APIKey,
		Model:   cfg.OpenAI.Model,
		BaseURL: cfg.OpenAI.BaseURL,
		Timeout: cfg.OpenAI.Timeout,
	}, logger)

	c.Lookup = lookup.NewService(logger, dictionary, translate.NewRouter(googleClient, gpt), c.Settings, c.Metrics, lookup.Config{
		ContextMaxLength: cfg.Lookup.ContextMaxLength,
		FallbackAudioURL: cfg.Lookup.FallbackAudioURL,
		DefaultProvider:  domain.TranslationProvider(cfg.Lookup.DefaultProvider),
	})

	notionClient := notion.NewClient(logger,
		notion.WithBaseURL(cfg.Notion.BaseURL),
		notion.WithAPIVersion(cfg.Notion.APIVersion),
		notion.WithTimeout(cfg.Notion.Timeout),
	)
	c.Notion = notionsync.NewService(logger, notionClient, notionqueue.New(pool), c.History, c.Settings, c.Metrics, cfg.Notion.Status)

	return c, nil
}

// Close releases connections in reverse order of acquisition.
func (c *Components) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}
