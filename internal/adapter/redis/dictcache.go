// Package redis caches dictionary entries in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/wordmate-backend/internal/domain"
	"github.com/heartmarshall/wordmate-backend/internal/metrics"
	"github.com/heartmarshall/wordmate-backend/internal/provider"
)

// emptyMarker records that the dictionary had no entry for a word.
const emptyMarker = "null"

type dictionaryProvider interface {
	FetchEntry(ctx context.Context, word string) (*provider.DictionaryEntry, error)
}

// Option configures a DictionaryCache.
type Option func(*DictionaryCache)

// WithTTL sets the expiration for cached entries.
func WithTTL(ttl time.Duration) Option {
	return func(c *DictionaryCache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(c *DictionaryCache) {
		c.prefix = prefix
	}
}

// WithMetrics records cache failures.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *DictionaryCache) {
		c.metrics = m
	}
}

// DictionaryCache wraps a dictionary provider with a read-through Redis cache.
// Redis failures fall through to the wrapped provider; provider errors are
// never cached.
type DictionaryCache struct {
	client  *backend.Client
	next    dictionaryProvider
	prefix  string
	ttl     time.Duration
	metrics *metrics.Metrics
	log     *slog.Logger
}

// NewClient creates a go-redis client.
func NewClient(address, password string, db int) *backend.Client {
	return backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
}

// NewDictionaryCache creates a cache in front of next.
func NewDictionaryCache(client *backend.Client, next dictionaryProvider, logger *slog.Logger, opts ...Option) *DictionaryCache {
	c := &DictionaryCache{
		client: client,
		next:   next,
		prefix: "wordmate:dict:",
		ttl:    24 * time.Hour,
		log:    logger.With("adapter", "redis_dictcache"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *DictionaryCache) key(word string) string {
	return c.prefix + domain.NormalizeText(word)
}

// FetchEntry returns the cached entry for word, fetching and storing it on a miss.
func (c *DictionaryCache) FetchEntry(ctx context.Context, word string) (*provider.DictionaryEntry, error) {
	key := c.key(word)

	entry, hit, err := c.load(ctx, key)
	if err != nil {
		c.log.WarnContext(ctx, "dictionary cache read failed", slog.String("word", word), slog.String("error", err.Error()))
		c.metrics.SourceFailed(metrics.SourceCache)
	} else if hit {
		return entry, nil
	}

	entry, err = c.next.FetchEntry(ctx, word)
	if err != nil {
		return nil, err
	}

	if err := c.store(ctx, key, entry); err != nil {
		c.log.WarnContext(ctx, "dictionary cache write failed", slog.String("word", word), slog.String("error", err.Error()))
		c.metrics.SourceFailed(metrics.SourceCache)
	}
	return entry, nil
}

func (c *DictionaryCache) load(ctx context.Context, key string) (*provider.DictionaryEntry, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}

	if val == emptyMarker {
		return nil, true, nil
	}

	var entry provider.DictionaryEntry
	if err := json.Unmarshal([]byte(val), &entry); err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", key, err)
	}
	return &entry, true, nil
}

func (c *DictionaryCache) store(ctx context.Context, key string, entry *provider.DictionaryEntry) error {
	data := []byte(emptyMarker)
	if entry != nil {
		var err error
		data, err = json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Ping checks Redis connectivity.
func (c *DictionaryCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
