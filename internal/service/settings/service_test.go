package settings

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordmate-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Mocks
// ---------------------------------------------------------------------------

type repoMock struct {
	mu      sync.Mutex
	stored  *domain.Settings
	getErr  error
	saveErr error

	upserts []domain.Settings
	deletes int
}

func (m *repoMock) Get(ctx context.Context) (*domain.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.stored == nil {
		return nil, domain.ErrNotFound
	}
	cp := *m.stored
	return &cp, nil
}

func (m *repoMock) Upsert(ctx context.Context, s domain.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.upserts = append(m.upserts, s)
	m.stored = &s
	return nil
}

func (m *repoMock) Delete(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes++
	m.stored = nil
	return nil
}

type txMock struct{ calls int }

func (m *txMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

func newTestService(repo *repoMock, defaults Defaults) (*Service, *txMock) {
	tx := &txMock{}
	return NewService(slog.Default(), repo, tx, defaults), tx
}

func ptr[T any](v T) *T { return &v }

// ---------------------------------------------------------------------------
// Get
// ---------------------------------------------------------------------------

func TestGet_NothingStored_ReturnsDefaults(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(&repoMock{}, Defaults{})

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), got)
}

func TestGet_DeploymentDefaults(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(&repoMock{}, Defaults{
		TranslationProvider: domain.TranslationProviderGPT,
		NotionToken:         "secret_env",
		NotionDatabaseID:    "db-env",
	})

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.TranslationProviderGPT, got.TranslationProvider)
	assert.Equal(t, "secret_env", got.NotionToken)
	assert.True(t, got.NotionConfigured)
}

func TestGet_StoredValuesWin(t *testing.T) {
	t.Parallel()

	stored := domain.DefaultSettings()
	stored.NotionToken = "secret_user"
	stored.Theme = "dark"
	svc, _ := newTestService(&repoMock{stored: &stored}, Defaults{
		NotionToken:      "secret_env",
		NotionDatabaseID: "db-env",
	})

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "secret_user", got.NotionToken)
	assert.Equal(t, "db-env", got.NotionDatabaseID, "empty stored field falls back to deployment default")
	assert.Equal(t, "dark", got.Theme)
	assert.True(t, got.NotionConfigured)
}

func TestGet_RepoError(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")
	svc, _ := newTestService(&repoMock{getErr: boom}, Defaults{})

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, boom)
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestUpdate_MergesPatch(t *testing.T) {
	t.Parallel()

	repo := &repoMock{}
	svc, tx := newTestService(repo, Defaults{})

	got, err := svc.Update(context.Background(), domain.SettingsPatch{
		Theme:         ptr("dark"),
		AutoPlayAudio: ptr(true),
	})
	require.NoError(t, err)

	assert.Equal(t, "dark", got.Theme)
	assert.True(t, got.AutoPlayAudio)
	assert.Equal(t, "definition", got.DefaultTab, "untouched fields keep defaults")
	assert.Equal(t, 1, tx.calls)
	require.Len(t, repo.upserts, 1)
	assert.Equal(t, got, repo.upserts[0])

	got, err = svc.Update(context.Background(), domain.SettingsPatch{Theme: ptr("light")})
	require.NoError(t, err)
	assert.Equal(t, "light", got.Theme, "last write wins")
	assert.True(t, got.AutoPlayAudio, "earlier update is preserved")
}

func TestUpdate_InvalidProvider(t *testing.T) {
	t.Parallel()

	repo := &repoMock{}
	svc, tx := newTestService(repo, Defaults{})

	_, err := svc.Update(context.Background(), domain.SettingsPatch{
		TranslationProvider: ptr(domain.TranslationProvider("bing")),
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, tx.calls)
	assert.Empty(t, repo.upserts)
}

func TestUpdate_NotionConfiguredFollowsCredentials(t *testing.T) {
	t.Parallel()

	repo := &repoMock{}
	svc, _ := newTestService(repo, Defaults{})
	ctx := context.Background()

	got, err := svc.Update(ctx, domain.SettingsPatch{NotionToken: ptr("secret_x")})
	require.NoError(t, err)
	assert.False(t, got.NotionConfigured, "token alone is not enough")

	got, err = svc.Update(ctx, domain.SettingsPatch{NotionDatabaseID: ptr("db1")})
	require.NoError(t, err)
	assert.True(t, got.NotionConfigured)

	got, err = svc.Update(ctx, domain.SettingsPatch{NotionToken: ptr("")})
	require.NoError(t, err)
	assert.False(t, got.NotionConfigured, "clearing a credential unsets the flag")
}

func TestUpdate_StoreError(t *testing.T) {
	t.Parallel()

	boom := errors.New("write failed")
	svc, _ := newTestService(&repoMock{saveErr: boom}, Defaults{})

	_, err := svc.Update(context.Background(), domain.SettingsPatch{Theme: ptr("dark")})
	assert.ErrorIs(t, err, boom)
}

func TestConfirmNotion(t *testing.T) {
	t.Parallel()

	repo := &repoMock{}
	svc, _ := newTestService(repo, Defaults{})

	got, err := svc.ConfirmNotion(context.Background(), "secret_x", "db1")
	require.NoError(t, err)
	assert.True(t, got.NotionConfigured)
	assert.Equal(t, "secret_x", got.NotionToken)
	require.NotNil(t, repo.stored)
	assert.True(t, repo.stored.NotionConfigured)
	assert.Equal(t, "db1", repo.stored.NotionDatabaseID)
}

// ---------------------------------------------------------------------------
// Reset
// ---------------------------------------------------------------------------

func TestReset(t *testing.T) {
	t.Parallel()

	stored := domain.DefaultSettings()
	stored.Theme = "dark"
	repo := &repoMock{stored: &stored}
	svc, _ := newTestService(repo, Defaults{})

	got, err := svc.Reset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), got)
	assert.Equal(t, 1, repo.deletes)

	after, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "auto", after.Theme)
}

func TestChangedFields(t *testing.T) {
	t.Parallel()

	old := domain.DefaultSettings()
	updated := old
	updated.Theme = "dark"
	updated.OpenAIAPIKey = "sk-secret"

	assert.Equal(t, []string{"theme", "openAIApiKey"}, changedFields(old, updated))
	assert.Empty(t, changedFields(old, old))
}
