package rest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/wordmate-backend/internal/domain"
	"github.com/heartmarshall/wordmate-backend/internal/service/history"
)

type historyService interface {
	List(ctx context.Context, filter domain.HistoryFilter) (*history.ListResult, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.HistoryEntry, error)
	ExportCSV(ctx context.Context, w io.Writer) (int, error)
	Clear(ctx context.Context) error
}

// HistoryHandler serves the saved-word history endpoints.
type HistoryHandler struct {
	svc historyService
	log *slog.Logger
	now func() time.Time
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(svc historyService, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{svc: svc, log: logger.With("handler", "history"), now: time.Now}
}

// List handles GET /api/history?q=&synced=&limit=&offset=.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseHistoryFilter(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.List(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Get handles GET /api/history/{id}.
func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("id", "must be a UUID"))
		return
	}

	entry, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// Export handles GET /api/history/export.csv.
func (h *HistoryHandler) Export(w http.ResponseWriter, r *http.Request) {
	filename := fmt.Sprintf("wordmate-history-%d.csv", h.now().UnixMilli())
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if _, err := h.svc.ExportCSV(r.Context(), w); err != nil {
		w.Header().Del("Content-Disposition")
		handleError(h.log, w, r, err)
	}
}

// Clear handles DELETE /api/history.
func (h *HistoryHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Clear(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseHistoryFilter(r *http.Request) (domain.HistoryFilter, error) {
	q := r.URL.Query()
	var (
		filter domain.HistoryFilter
		errs   []domain.FieldError
	)

	if s := q.Get("q"); s != "" {
		filter.Search = &s
	}
	if raw := q.Get("synced"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "synced", Message: "must be true or false"})
		} else {
			filter.NotionSynced = &v
		}
	}
	for name, dst := range map[string]*int{"limit": &filter.Limit, "offset": &filter.Offset} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: name, Message: "must be an integer"})
			continue
		}
		*dst = v
	}

	if len(errs) > 0 {
		return filter, domain.NewValidationErrors(errs)
	}
	return filter, nil
}
