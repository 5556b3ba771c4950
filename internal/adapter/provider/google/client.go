// Package google implements the default translation provider on top of the
// public translate_a endpoint.
package google

import (
	"context"
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

const (
	defaultBaseURL    = "https://translate.googleapis.com/translate_a/single"
	defaultTargetLang = "zh-CN"
)

// Client translates words and sentences through the translate_a endpoint.
type Client struct {
	baseURL    string
	targetLang string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client. Empty baseURL or targetLang fall back to the
// public endpoint and zh-CN.
func NewClient(baseURL, targetLang string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if targetLang == "" {
		targetLang = defaultTargetLang
	}
	return &Client{
		baseURL:    baseURL,
		targetLang: targetLang,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "google_translate"),
	}
}

// WithTimeout overrides the HTTP client timeout.
func (c *Client) WithTimeout(d time.Duration) *Client {
	if d > 0 {
		c.httpClient.Timeout = d
	}
	return c
}

// textResult is the parsed answer for a single piece of text.
type textResult struct {
	primary      string
	translations []string
	dictionary   []provider.POSTranslations
}

// Translate translates the headword and, when present, the context sentence.
// A failed word translation is returned as domain.ErrSourceUnavailable; a
// failed context translation is logged and treated as empty.
func (c *Client) Translate(ctx context.Context, word, contextText string) (*provider.TranslationResult, error) {
	wordRes, err := c.translateText(ctx, word)
	if err != nil {
		return nil, err
	}

	var ctxRes textResult
	if contextText != "" {
		ctxRes, err = c.translateText(ctx, contextText)
		if err != nil {
			c.log.WarnContext(ctx, "context translation failed", slog.String("word", word), slog.String("error", err.Error()))
			ctxRes = textResult{}
		}
	}

	return &provider.TranslationResult{
		Provider:            domain.TranslationProviderGoogle,
		WordTranslation:     wordRes.primary,
		Translations:        nonNil(wordRes.translations),
		Dictionary:          wordRes.dictionary,
		ContextTranslation:  ctxRes.primary,
		ContextTranslations: nonNil(ctxRes.translations),
	}, nil
}

func (c *Client) translateText(ctx context.Context, text string) (textResult, error) {
	if text == "" {
		return textResult{dictionary: []provider.POSTranslations{}}, nil
	}

	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", "auto")
	q.Set("tl", c.targetLang)
	q["dt"] = []string{"t", "bd"}
	q.Set("q", text)

	sep := "?"
	if strings.Contains(c.baseURL, "?") {
		sep = "&"
	}
	reqURL := c.baseURL + sep + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return textResult{}, fmt.Errorf("google translate: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return textResult{}, fmt.Errorf("google translate: %w: %w", domain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return textResult{}, fmt.Errorf("google translate: %w: status %d", domain.ErrSourceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return textResult{}, fmt.Errorf("google translate: %w: read body: %w", domain.ErrSourceUnavailable, err)
	}

	res, err := parseResponse(body)
	if err != nil {
		return textResult{}, fmt.Errorf("google translate: %w: %w", domain.ErrSourceUnavailable, err)
	}

	c.log.DebugContext(ctx, "google translate response",
		slog.Int("translations", len(res.translations)),
		slog.Int("pos_groups", len(res.dictionary)),
	)

	return res, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
