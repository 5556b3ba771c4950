package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordmate-backend/internal/domain"
)

type settingsResetter interface {
	Reset(ctx context.Context) (domain.Settings, error)
}

// SettingsHandler serves settings endpoints not covered by messages.
type SettingsHandler struct {
	svc settingsResetter
	log *slog.Logger
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(svc settingsResetter, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{svc: svc, log: logger.With("handler", "settings")}
}

// Reset handles DELETE /api/settings and returns the defaults now in effect.
func (h *SettingsHandler) Reset(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.Reset(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
