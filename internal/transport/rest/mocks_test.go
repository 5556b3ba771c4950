package rest

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordmate-backend/internal/adapter/notion"
	"github.com/heartmarshall/wordmate-backend/internal/domain"
	"github.com/heartmarshall/wordmate-backend/internal/service/history"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type lookupMock struct {
	LookupFunc  func(ctx context.Context, req domain.LookupRequest) (*domain.LookupResult, error)
	LookupCalls []domain.LookupRequest
}

func (m *lookupMock) Lookup(ctx context.Context, req domain.LookupRequest) (*domain.LookupResult, error) {
	m.LookupCalls = append(m.LookupCalls, req)
	return m.LookupFunc(ctx, req)
}

type historyMock struct {
	SaveFunc      func(ctx context.Context, result domain.LookupResult) (*domain.HistoryEntry, error)
	ListFunc      func(ctx context.Context, filter domain.HistoryFilter) (*history.ListResult, error)
	GetFunc       func(ctx context.Context, id uuid.UUID) (*domain.HistoryEntry, error)
	ExportCSVFunc func(ctx context.Context, w io.Writer) (int, error)
	ClearFunc     func(ctx context.Context) error

	ListCalls []domain.HistoryFilter
}

func (m *historyMock) Save(ctx context.Context, result domain.LookupResult) (*domain.HistoryEntry, error) {
	return m.SaveFunc(ctx, result)
}

func (m *historyMock) List(ctx context.Context, filter domain.HistoryFilter) (*history.ListResult, error) {
	m.ListCalls = append(m.ListCalls, filter)
	return m.ListFunc(ctx, filter)
}

func (m *historyMock) Get(ctx context.Context, id uuid.UUID) (*domain.HistoryEntry, error) {
	return m.GetFunc(ctx, id)
}

func (m *historyMock) ExportCSV(ctx context.Context, w io.Writer) (int, error) {
	return m.ExportCSVFunc(ctx, w)
}

func (m *historyMock) Clear(ctx context.Context) error {
	return m.ClearFunc(ctx)
}

type notionMock struct {
	SaveFunc           func(ctx context.Context, entry domain.HistoryEntry) (*notion.Page, error)
	TestConnectionFunc func(ctx context.Context, token, databaseID string) (*notion.Database, error)
	PendingFunc        func(ctx context.Context) (int, error)
	FlushPendingFunc   func(ctx context.Context) (int, error)

	SaveCalls []domain.HistoryEntry
}

func (m *notionMock) Save(ctx context.Context, entry domain.HistoryEntry) (*notion.Page, error) {
	m.SaveCalls = append(m.SaveCalls, entry)
	return m.SaveFunc(ctx, entry)
}

func (m *notionMock) TestConnection(ctx context.Context, token, databaseID string) (*notion.Database, error) {
	return m.TestConnectionFunc(ctx, token, databaseID)
}

func (m *notionMock) Pending(ctx context.Context) (int, error) {
	return m.PendingFunc(ctx)
}

func (m *notionMock) FlushPending(ctx context.Context) (int, error) {
	return m.FlushPendingFunc(ctx)
}

type settingsMock struct {
	GetFunc    func(ctx context.Context) (domain.Settings, error)
	UpdateFunc func(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, error)
	ResetFunc  func(ctx context.Context) (domain.Settings, error)

	UpdateCalls []domain.SettingsPatch
}

func (m *settingsMock) Get(ctx context.Context) (domain.Settings, error) {
	return m.GetFunc(ctx)
}

func (m *settingsMock) Update(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, error) {
	m.UpdateCalls = append(m.UpdateCalls, patch)
	return m.UpdateFunc(ctx, patch)
}

func (m *settingsMock) Reset(ctx context.Context) (domain.Settings, error) {
	return m.ResetFunc(ctx)
}
