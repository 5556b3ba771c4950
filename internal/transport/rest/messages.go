package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordmate-backend/internal/adapter/notion"
	"github.com/heartmarshall/wordmate-backend/internal/domain"
)

// Message types accepted by POST /api/messages.
const (
	MessageLookup         = "WORDMATE_LOOKUP"
	MessageSaveLocal      = "WORDMATE_SAVE_LOCAL"
	MessageSaveNotion     = "WORDMATE_SAVE_NOTION"
	MessageGetSettings    = "WORDMATE_GET_SETTINGS"
	MessageUpdateSettings = "WORDMATE_UPDATE_SETTINGS"
	MessageTestNotion     = "WORDMATE_TEST_NOTION"
	MessageContextReady   = "WORDMATE_CONTEXT_READY"
)

const (
	msgSavedLocal          = "已加入生词库"
	msgNotionNotConfigured = "请先在设置中配置 Notion"
	msgNotionQueued        = "Notion 同步失败，已加入重试队列"
	msgSaveFailed          = "保存失败"
	msgNotionTestFailed    = "Notion 连接失败"
)

type lookupService interface {
	Lookup(ctx context.Context, req domain.LookupRequest) (*domain.LookupResult, error)
}

type historySaver interface {
	Save(ctx context.Context, result domain.LookupResult) (*domain.HistoryEntry, error)
}

type notionSaver interface {
	Save(ctx context.Context, entry domain.HistoryEntry) (*notion.Page, error)
	TestConnection(ctx context.Context, token, databaseID string) (*notion.Database, error)
}

type settingsService interface {
	Get(ctx context.Context) (domain.Settings, error)
	Update(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, error)
}

// MessageHandler dispatches extension messages to the services.
type MessageHandler struct {
	lookup   lookupService
	history  historySaver
	notion   notionSaver
	settings settingsService
	log      *slog.Logger
}

// NewMessageHandler creates a MessageHandler.
func NewMessageHandler(
	lookup lookupService,
	history historySaver,
	notion notionSaver,
	settings settingsService,
	logger *slog.Logger,
) *MessageHandler {
	return &MessageHandler{
		lookup:   lookup,
		history:  history,
		notion:   notion,
		settings: settings,
		log:      logger.With("handler", "messages"),
	}
}

type messageRequest struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type saveLocalResponse struct {
	Success bool                 `json:"success"`
	Entry   *domain.HistoryEntry `json:"entry,omitempty"`
	Message string               `json:"message"`
}

type saveNotionResponse struct {
	Success bool         `json:"success"`
	Notion  *notion.Page `json:"notion,omitempty"`
	Message string       `json:"message,omitempty"`
}

type testNotionRequest struct {
	NotionToken      string `json:"notionToken"`
	NotionDatabaseID string `json:"notionDatabaseId"`
}

type testNotionResponse struct {
	Success   bool            `json:"success"`
	Workspace json.RawMessage `json:"workspace,omitempty"`
	Database  string          `json:"database,omitempty"`
	Message   string          `json:"message,omitempty"`
}

// Handle serves POST /api/messages.
func (h *MessageHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var msg messageRequest
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch msg.Type {
	case MessageLookup:
		h.handleLookup(w, r, msg.Payload)
	case MessageSaveLocal:
		h.handleSaveLocal(w, r, msg.Payload)
	case MessageSaveNotion:
		h.handleSaveNotion(w, r, msg.Payload)
	case MessageGetSettings:
		h.handleGetSettings(w, r)
	case MessageUpdateSettings:
		h.handleUpdateSettings(w, r, msg.Payload)
	case MessageTestNotion:
		h.handleTestNotion(w, r, msg.Payload)
	case MessageContextReady:
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	default:
		writeError(w, http.StatusBadRequest, "unknown message type")
	}
}

// handleLookup answers with the result, or null when the lookup cannot start.
func (h *MessageHandler) handleLookup(w http.ResponseWriter, r *http.Request, payload json.RawMessage) {
	var req domain.LookupRequest
	if !decodePayload(w, payload, &req) {
		return
	}

	result, err := h.lookup.Lookup(r.Context(), req)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidRequest) {
			h.log.ErrorContext(r.Context(), "lookup failed", slog.String("error", err.Error()))
		}
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *MessageHandler) handleSaveLocal(w http.ResponseWriter, r *http.Request, payload json.RawMessage) {
	var result domain.LookupResult
	if !decodePayload(w, payload, &result) {
		return
	}

	entry, err := h.history.Save(r.Context(), result)
	if err != nil {
		writeJSON(w, http.StatusOK, saveLocalResponse{Message: h.failureMessage(r, err, msgSaveFailed)})
		return
	}
	writeJSON(w, http.StatusOK, saveLocalResponse{Success: true, Entry: entry, Message: msgSavedLocal})
}

func (h *MessageHandler) handleSaveNotion(w http.ResponseWriter, r *http.Request, payload json.RawMessage) {
	var entry domain.HistoryEntry
	if !decodePayload(w, payload, &entry) {
		return
	}

	page, err := h.notion.Save(r.Context(), entry)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, saveNotionResponse{Success: true, Notion: page})
	case errors.Is(err, domain.ErrNotionNotConfigured):
		writeJSON(w, http.StatusOK, saveNotionResponse{Message: msgNotionNotConfigured})
	case errors.Is(err, domain.ErrNotionSyncFailed):
		writeJSON(w, http.StatusOK, saveNotionResponse{Message: msgNotionQueued})
	default:
		writeJSON(w, http.StatusOK, saveNotionResponse{Message: h.failureMessage(r, err, msgSaveFailed)})
	}
}

func (h *MessageHandler) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Get(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *MessageHandler) handleUpdateSettings(w http.ResponseWriter, r *http.Request, payload json.RawMessage) {
	var patch domain.SettingsPatch
	if !decodePayload(w, payload, &patch) {
		return
	}

	settings, err := h.settings.Update(r.Context(), patch)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *MessageHandler) handleTestNotion(w http.ResponseWriter, r *http.Request, payload json.RawMessage) {
	var req testNotionRequest
	if !decodePayload(w, payload, &req) {
		return
	}

	db, err := h.notion.TestConnection(r.Context(), req.NotionToken, req.NotionDatabaseID)
	if err != nil {
		writeJSON(w, http.StatusOK, testNotionResponse{Message: h.failureMessage(r, err, msgNotionTestFailed)})
		return
	}
	writeJSON(w, http.StatusOK, testNotionResponse{
		Success:   true,
		Workspace: db.Parent,
		Database:  db.Name(),
	})
}

// failureMessage is the text shown to the user for a failed save or test.
// Validation and Notion API errors are shown as is; anything else is logged
// and replaced by fallback.
func (h *MessageHandler) failureMessage(r *http.Request, err error, fallback string) string {
	var (
		ve     *domain.ValidationError
		apiErr *notion.APIError
	)
	switch {
	case errors.As(err, &ve):
		return ve.Error()
	case errors.As(err, &apiErr):
		return apiErr.Error()
	default:
		h.log.ErrorContext(r.Context(), "message failed", slog.String("error", err.Error()))
		return fallback
	}
}

// decodePayload writes a 400 and returns false when payload is not valid
// JSON for v. A missing payload decodes as the zero value.
func decodePayload(w http.ResponseWriter, payload json.RawMessage, v any) bool {
	if len(payload) == 0 || string(payload) == "null" {
		return true
	}
	if err := json.Unmarshal(payload, v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return false
	}
	return true
}
