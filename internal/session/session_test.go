package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestManager(t *testing.T) (*Manager, *FileStore) {
	t.Helper()
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	return NewManager(store, zap.NewNop()), store
}

func TestEvaluateWithNoSession(t *testing.T) {
	m, _ := newTestManager(t)
	assert.False(t, m.Evaluate())
	assert.False(t, m.Authenticated())
}

func TestEstablishThenEvaluate(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.Establish("tok-123", "admin@example.com"))

	assert.True(t, m.Evaluate())
	assert.True(t, m.Authenticated())
	assert.Equal(t, "admin@example.com", m.Email())
	assert.Equal(t, "tok-123", m.Token())
}

func TestEvaluateRehydratesAfterRestart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")

	first := NewManager(NewFileStore(path), zap.NewNop())
	require.NoError(t, first.Establish("tok-123", "admin@example.com"))

	// A fresh manager over the same file models a process restart: memory
	// is gone but the durable markers remain.
	second := NewManager(NewFileStore(path), zap.NewNop())
	assert.False(t, second.Authenticated())
	assert.True(t, second.Evaluate())
	assert.True(t, second.Authenticated())
	assert.Equal(t, "admin@example.com", second.Email())
}

func TestEvaluateClearsBothLayersWhenMarkersGone(t *testing.T) {
	m, store := newTestManager(t)
	require.NoError(t, m.Establish("tok-123", "admin@example.com"))

	// Simulate the markers being wiped out from under the manager.
	require.NoError(t, store.Clear())

	// Memory still says authenticated with a token, so the session stands
	// on the in-memory layer alone.
	assert.True(t, m.Evaluate())
}

func TestEvaluateDefensiveClear(t *testing.T) {
	m, store := newTestManager(t)

	// Half a session: email marker only, no token, memory unauthenticated.
	require.NoError(t, store.Save("", "admin@example.com"))

	assert.False(t, m.Evaluate())

	// The half-written markers must be gone afterwards.
	token, email, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Empty(t, email)
}

func TestClear(t *testing.T) {
	m, store := newTestManager(t)
	require.NoError(t, m.Establish("tok-123", "admin@example.com"))
	require.NoError(t, m.Clear())

	assert.False(t, m.Authenticated())
	assert.Empty(t, m.Token())

	token, email, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Empty(t, email)

	assert.False(t, m.Evaluate())
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))

	token, email, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Empty(t, email)

	require.NoError(t, store.Save("tok", "a@b.c"))
	token, email, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
	assert.Equal(t, "a@b.c", email)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear(), "clearing an absent file is a no-op")
}

func TestFileStoreCorruptFileMeansNoSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := NewFileStore(path)
	token, email, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Empty(t, email)
}

type failingStore struct{ loadErr error }

func (f *failingStore) Load() (string, string, error) { return "", "", f.loadErr }
func (f *failingStore) Save(string, string) error     { return nil }
func (f *failingStore) Clear() error                  { return nil }

func TestEvaluateSurvivesStoreLoadError(t *testing.T) {
	m := NewManager(&failingStore{loadErr: errors.New("disk gone")}, zap.NewNop())
	assert.False(t, m.Evaluate())
}
