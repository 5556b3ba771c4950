// Package notion talks to the Notion REST API: page creation for saved words
// and database lookups for connection tests.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL    = "https://api.notion.com/v1"
	defaultAPIVersion = "2022-06-28"

	// maxErrorBody bounds how much of a failed response is kept in APIError.
	maxErrorBody = 2048
)

// APIError is a non-2xx answer from Notion.
type APIError struct {
	Op     string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion: %s: status %d: %s", e.Op, e.Status, e.Body)
}

// Page is the subset of a created page the callers need.
type Page struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	CreatedTime string `json:"created_time"`
}

// Database is the subset of a database object returned by GetDatabase.
type Database struct {
	ID     string          `json:"id"`
	Title  []RichTextItem  `json:"title"`
	Parent json.RawMessage `json:"parent"`
}

// RichTextItem is a read-side rich text element.
type RichTextItem struct {
	PlainText string `json:"plain_text"`
}

// Name joins the plain text of the database title.
func (d *Database) Name() string {
	var b strings.Builder
	for _, t := range d.Title {
		b.WriteString(t.PlainText)
	}
	return b.String()
}

// Client is a minimal Notion API client. Tokens are passed per call because
// they live in user settings, not in deployment config.
type Client struct {
	baseURL    string
	apiVersion string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root (tests, proxies).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithAPIVersion overrides the Notion-Version header.
func WithAPIVersion(v string) Option {
	return func(c *Client) {
		if v != "" {
			c.apiVersion = v
		}
	}
}

// WithTimeout overrides the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// NewClient creates a Client.
func NewClient(logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		apiVersion: defaultAPIVersion,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        logger.With("adapter", "notion"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreatePage posts payload to /pages.
func (c *Client) CreatePage(ctx context.Context, token string, payload *PagePayload) (*Page, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("notion: marshal page: %w", err)
	}

	var page Page
	if err := c.do(ctx, "create page", http.MethodPost, "/pages", token, body, &page); err != nil {
		return nil, err
	}
	c.log.InfoContext(ctx, "notion page created", slog.String("page_id", page.ID))
	return &page, nil
}

// GetDatabase fetches database metadata; used to verify credentials.
func (c *Client) GetDatabase(ctx context.Context, token, databaseID string) (*Database, error) {
	var db Database
	if err := c.do(ctx, "get database", http.MethodGet, "/databases/"+url.PathEscape(databaseID), token, nil, &db); err != nil {
		return nil, err
	}
	return &db, nil
}

func (c *Client) do(ctx context.Context, op, method, path, token string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("notion: %s: create request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Notion-Version", c.apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WarnContext(ctx, "notion request failed", slog.String("op", op), slog.String("error", err.Error()))
		return fmt.Errorf("notion: %s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.log.WarnContext(ctx, "notion non-2xx",
			slog.String("op", op),
			slog.Int("status", resp.StatusCode))
		return &APIError{Op: op, Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("notion: %s: decode response: %w", op, err)
	}
	return nil
}
