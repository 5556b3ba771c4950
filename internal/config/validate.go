package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Lookup.validate(); err != nil {
		return fmt.Errorf("lookup: %w", err)
	}

	if _, err := url.ParseRequestURI(c.Notion.BaseURL); err != nil {
		return fmt.Errorf("notion.base_url: %w", err)
	}
	if c.Notion.RetryInterval <= 0 {
		return fmt.Errorf("notion.retry_interval must be > 0 (got %v)", c.Notion.RetryInterval)
	}

	if c.History.MaxEntries <= 0 {
		return fmt.Errorf("history.max_entries must be > 0 (got %d)", c.History.MaxEntries)
	}

	if c.RateLimit.MessagesPerMinute <= 0 {
		return fmt.Errorf("ratelimit.messages_per_minute must be > 0 (got %d)", c.RateLimit.MessagesPerMinute)
	}

	if c.Cache.Enabled && c.Cache.Addr == "" {
		return fmt.Errorf("cache.addr is required when cache is enabled")
	}

	return nil
}

func (l *LookupConfig) validate() error {
	for name, raw := range map[string]string{
		"dictionary_url": l.DictionaryURL,
		"translate_url":  l.TranslateURL,
	} {
		if _, err := url.ParseRequestURI(raw); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	switch l.DefaultProvider {
	case "google", "gpt":
	default:
		return fmt.Errorf("default_provider must be google or gpt (got %q)", l.DefaultProvider)
	}

	if l.ContextMaxLength <= 0 {
		return fmt.Errorf("context_max_length must be > 0 (got %d)", l.ContextMaxLength)
	}

	if strings.Count(l.FallbackAudioURL, "%s") != 1 {
		return fmt.Errorf("fallback_audio_url must contain exactly one %%s (got %q)", l.FallbackAudioURL)
	}

	return nil
}
