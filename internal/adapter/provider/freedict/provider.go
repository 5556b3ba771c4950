package freedict

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/wordmate-backend/internal/domain"
	"github.com/heartmarshall/wordmate-backend/internal/provider"
)

const defaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

// Provider fetches dictionary data from the FreeDictionary API.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider with the default FreeDictionary API URL.
func NewProvider(logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL.
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "freedict"),
	}
}

// WithTimeout overrides the HTTP client timeout.
func (p *Provider) WithTimeout(d time.Duration) *Provider {
	if d > 0 {
		p.httpClient.Timeout = d
	}
	return p
}

// FetchEntry fetches the first dictionary entry for the given word.
// Returns nil, nil if the API answers with an empty array.
// Any transport failure or non-2xx status is reported as domain.ErrSourceUnavailable.
func (p *Provider) FetchEntry(ctx context.Context, word string) (*provider.DictionaryEntry, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(word)

	p.log.DebugContext(ctx, "freedict request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("freedict: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.WarnContext(ctx, "freedict request failed", slog.String("word", word), slog.String("error", err.Error()))
		return nil, fmt.Errorf("freedict: %w: %w", domain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		p.log.DebugContext(ctx, "freedict non-2xx", slog.String("word", word), slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("freedict: %w: status %d", domain.ErrSourceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("freedict: %w: read body: %w", domain.ErrSourceUnavailable, err)
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("freedict: %w: decode json: %w", domain.ErrSourceUnavailable, err)
	}

	if len(entries) == 0 {
		return nil, nil
	}

	result := entries[0].toEntry()

	p.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.Int("meanings", len(result.Meanings)),
		slog.Int("phonetics", len(result.Phonetics)),
	)

	return result, nil
}
