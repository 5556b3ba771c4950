package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordmate-backend/internal/adapter/notion"
	"github.com/heartmarshall/wordmate-backend/internal/domain"
)

type messageFixture struct {
	lookup   *lookupMock
	history  *historyMock
	notion   *notionMock
	settings *settingsMock
	handler  *MessageHandler
}

func newMessageFixture() *messageFixture {
	f := &messageFixture{
		lookup:   &lookupMock{},
		history:  &historyMock{},
		notion:   &notionMock{},
		settings: &settingsMock{},
	}
	f.handler = NewMessageHandler(f.lookup, f.history, f.notion, f.settings, testLogger())
	return f
}

func (f *messageFixture) send(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(body))
	rec := httptest.NewRecorder()
	f.handler.Handle(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestMessages_Lookup(t *testing.T) {
	t.Parallel()

	f := newMessageFixture()
	f.lookup.LookupFunc = func(_ context.Context, req domain.LookupRequest) (*domain.LookupResult, error) {
		return &domain.LookupResult{Word: req.Text, Translation: "苹果"}, nil
	}

	rec := f.send(t, `{"type":"WORDMATE_LOOKUP","payload":{"text":"apple","context":"An apple a day.","sourceUrl":"https://a.example"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[domain.LookupResult](t, rec)
	assert.Equal(t, "apple", got.Word)
	assert.Equal(t, "苹果", got.Translation)
	require.Len(t, f.lookup.LookupCalls, 1)
	assert.Equal(t, "An apple a day.", f.lookup.LookupCalls[0].Context)
	assert.Equal(t, "https://a.example", f.lookup.LookupCalls[0].SourceURL)
}

func TestMessages_LookupInvalidAnswersNull(t *testing.T) {
	t.Parallel()

	f := newMessageFixture()
	f.lookup.LookupFunc = func(context.Context, domain.LookupRequest) (*domain.LookupResult, error) {
		return nil, domain.NewInvalidRequestError("text", "required")
	}

	rec := f.send(t, `{"type":"WORDMATE_LOOKUP","payload":{"text":"   "}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}

func TestMessages_SaveLocal(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	f := newMessageFixture()
	f.history.SaveFunc = func(_ context.Context, result domain.LookupResult) (*domain.HistoryEntry, error) {
		return &domain.HistoryEntry{LookupResult: result, ID: id}, nil
	}

	rec := f.send(t, `{"type":"WORDMATE_SAVE_LOCAL","payload":{"word":"apple","translation":"苹果"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[saveLocalResponse](t, rec)
	assert.True(t, got.Success)
	assert.Equal(t, "已加入生词库", got.Message)
	require.NotNil(t, got.Entry)
	assert.Equal(t, id, got.Entry.ID)
	assert.Equal(t, "apple", got.Entry.Word)
}

func TestMessages_SaveLocalValidation(t *testing.T) {
	t.Parallel()

	f := newMessageFixture()
	f.history.SaveFunc = func(context.Context, domain.LookupResult) (*domain.HistoryEntry, error) {
		return nil, domain.NewValidationError("word", "required")
	}

	rec := f.send(t, `{"type":"WORDMATE_SAVE_LOCAL","payload":{}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[saveLocalResponse](t, rec)
	assert.False(t, got.Success)
	assert.Contains(t, got.Message, "word")
	assert.Nil(t, got.Entry)
}

func TestMessages_SaveLocalInternalErrorHidden(t *testing.T) {
	t.Parallel()

	f := newMessageFixture()
	f.history.SaveFunc = func(context.Context, domain.LookupResult) (*domain.HistoryEntry, error) {
		return nil, errors.New("pq: connection reset")
	}

	rec := f.send(t, `{"type":"WORDMATE_SAVE_LOCAL","payload":{"word":"apple"}}`)

	got := decodeBody[saveLocalResponse](t, rec)
	assert.False(t, got.Success)
	assert.Equal(t, "保存失败", got.Message)
}

func TestMessages_SaveNotion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantSuccess bool
		wantMessage string
	}{
		{name: "created", wantSuccess: true},
		{name: "not configured", err: domain.ErrNotionNotConfigured, wantMessage: "请先在设置中配置 Notion"},
		{
			name:        "queued",
			err:         fmt.Errorf("%w: %w", domain.ErrNotionSyncFailed, &notion.APIError{Op: "create page", Status: 502}),
			wantMessage: "Notion 同步失败，已加入重试队列",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newMessageFixture()
			f.notion.SaveFunc = func(context.Context, domain.HistoryEntry) (*notion.Page, error) {
				if tt.err != nil {
					return nil, tt.err
				}
				return &notion.Page{ID: "page-1", URL: "https://notion.so/page-1"}, nil
			}

			rec := f.send(t, `{"type":"WORDMATE_SAVE_NOTION","payload":{"id":"6f1b3a5e-8c1d-4f8e-9b3a-2d7c4e5f6a7b","word":"apple"}}`)

			require.Equal(t, http.StatusOK, rec.Code)
			got := decodeBody[saveNotionResponse](t, rec)
			assert.Equal(t, tt.wantSuccess, got.Success)
			assert.Equal(t, tt.wantMessage, got.Message)
			if tt.wantSuccess {
				require.NotNil(t, got.Notion)
				assert.Equal(t, "page-1", got.Notion.ID)
			}

			require.Len(t, f.notion.SaveCalls, 1)
			assert.Equal(t, "apple", f.notion.SaveCalls[0].Word)
			assert.Equal(t, "6f1b3a5e-8c1d-4f8e-9b3a-2d7c4e5f6a7b", f.notion.SaveCalls[0].ID.String())
		})
	}
}

func TestMessages_GetSettings(t *testing.T) {
	t.Parallel()

	f := newMessageFixture()
	f.settings.GetFunc = func(context.Context) (domain.Settings, error) {
		s := domain.DefaultSettings()
		s.Theme = "dark"
		return s, nil
	}

	rec := f.send(t, `{"type":"WORDMATE_GET_SETTINGS"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[domain.Settings](t, rec)
	assert.Equal(t, "dark", got.Theme)
	assert.Equal(t, domain.TranslationProviderGoogle, got.TranslationProvider)
}

func TestMessages_UpdateSettings(t *testing.T) {
	t.Parallel()

	f := newMessageFixture()
	f.settings.UpdateFunc = func(_ context.Context, patch domain.SettingsPatch) (domain.Settings, error) {
		return patch.Apply(domain.DefaultSettings()), nil
	}

	rec := f.send(t, `{"type":"WORDMATE_UPDATE_SETTINGS","payload":{"autoPlayAudio":true}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[domain.Settings](t, rec)
	assert.True(t, got.AutoPlayAudio)
	assert.Equal(t, "auto", got.Theme)

	require.Len(t, f.settings.UpdateCalls, 1)
	patch := f.settings.UpdateCalls[0]
	require.NotNil(t, patch.AutoPlayAudio)
	assert.Nil(t, patch.Theme)
}

func TestMessages_UpdateSettingsValidation(t *testing.T) {
	t.Parallel()

	f := newMessageFixture()
	f.settings.UpdateFunc = func(_ context.Context, patch domain.SettingsPatch) (domain.Settings, error) {
		return domain.Settings{}, patch.Validate()
	}

	rec := f.send(t, `{"type":"WORDMATE_UPDATE_SETTINGS","payload":{"translationProvider":"bing"}}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	got := decodeBody[errorResponse](t, rec)
	require.Len(t, got.Fields, 1)
	assert.Equal(t, "translationProvider", got.Fields[0].Field)
}

func TestMessages_TestNotion(t *testing.T) {
	t.Parallel()

	f := newMessageFixture()
	var gotToken, gotDB string
	f.notion.TestConnectionFunc = func(_ context.Context, token, databaseID string) (*notion.Database, error) {
		gotToken, gotDB = token, databaseID
		return &notion.Database{
			ID:     databaseID,
			Title:  []notion.RichTextItem{{PlainText: "Words"}},
			Parent: []byte(`{"type":"workspace","workspace":true}`),
		}, nil
	}

	rec := f.send(t, `{"type":"WORDMATE_TEST_NOTION","payload":{"notionToken":"secret_x","notionDatabaseId":"db-1"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[testNotionResponse](t, rec)
	assert.True(t, got.Success)
	assert.Equal(t, "Words", got.Database)
	assert.JSONEq(t, `{"type":"workspace","workspace":true}`, string(got.Workspace))
	assert.Equal(t, "secret_x", gotToken)
	assert.Equal(t, "db-1", gotDB)
}

func TestMessages_TestNotionFailure(t *testing.T) {
	t.Parallel()

	f := newMessageFixture()
	f.notion.TestConnectionFunc = func(context.Context, string, string) (*notion.Database, error) {
		return nil, &notion.APIError{Op: "get database", Status: http.StatusUnauthorized, Body: "API token is invalid."}
	}

	rec := f.send(t, `{"type":"WORDMATE_TEST_NOTION","payload":{"notionToken":"bad","notionDatabaseId":"db-1"}}`)

	got := decodeBody[testNotionResponse](t, rec)
	assert.False(t, got.Success)
	assert.Contains(t, got.Message, "API token is invalid.")
}

func TestMessages_ContextReady(t *testing.T) {
	t.Parallel()

	rec := newMessageFixture().send(t, `{"type":"WORDMATE_CONTEXT_READY"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestMessages_BadRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"unknown type", `{"type":"WORDMATE_DANCE"}`},
		{"missing type", `{}`},
		{"not json", `{{`},
		{"payload of wrong shape", `{"type":"WORDMATE_LOOKUP","payload":"apple"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := newMessageFixture().send(t, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
