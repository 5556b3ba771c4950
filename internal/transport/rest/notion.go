package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordmate-backend/internal/domain"
)

type notionQueue interface {
	Pending(ctx context.Context) (int, error)
	FlushPending(ctx context.Context) (int, error)
}

// NotionHandler exposes the Notion retry queue.
type NotionHandler struct {
	svc notionQueue
	log *slog.Logger
}

// NewNotionHandler creates a NotionHandler.
func NewNotionHandler(svc notionQueue, logger *slog.Logger) *NotionHandler {
	return &NotionHandler{svc: svc, log: logger.With("handler", "notion")}
}

type queueResponse struct {
	Pending int `json:"pending"`
	Flushed int `json:"flushed"`
}

// Pending handles GET /api/notion/pending.
func (h *NotionHandler) Pending(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Pending(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, queueResponse{Pending: n})
}

// Flush handles POST /api/notion/flush. A flush that stops on a failed item
// still reports what it pushed, with 502.
func (h *NotionHandler) Flush(w http.ResponseWriter, r *http.Request) {
	flushed, err := h.svc.FlushPending(r.Context())
	if err != nil && !errors.Is(err, domain.ErrNotionSyncFailed) {
		handleError(h.log, w, r, err)
		return
	}

	pending, pErr := h.svc.Pending(r.Context())
	if pErr != nil {
		handleError(h.log, w, r, pErr)
		return
	}

	status := http.StatusOK
	if err != nil {
		status = http.StatusBadGateway
	}
	writeJSON(w, status, queueResponse{Pending: pending, Flushed: flushed})
}
