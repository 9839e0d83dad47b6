package gateway

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoltStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wardview.db")

	store, err := NewBoltStore(path)
	require.NoError(t, err)

	token, err := store.Token()
	require.NoError(t, err)
	assert.Empty(t, token, "fresh store holds no credential")

	require.NoError(t, store.SetToken("tok-abc"))
	token, err = store.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)

	require.NoError(t, store.Clear())
	token, err = store.Token()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Close())
}

// A credential set through one Client is visible to a fresh Client constructed
// over the same durable store, i.e. the session survives a restart.
func TestCredentialSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wardview.db")
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	store, err := NewBoltStore(path)
	require.NoError(t, err)

	first, err := NewClient(Config{BaseURL: srv.URL, Store: store})
	require.NoError(t, err)
	require.NoError(t, first.SetToken("persisted-token"))
	require.NoError(t, store.Close())

	reopened, err := NewBoltStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	second, err := NewClient(Config{BaseURL: srv.URL, Store: reopened})
	require.NoError(t, err)
	assert.Equal(t, "persisted-token", second.Token())
	assert.True(t, second.IsAuthenticated())
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	token, err := store.Token()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.SetToken("x"))
	token, _ = store.Token()
	assert.Equal(t, "x", token)

	require.NoError(t, store.Clear())
	token, _ = store.Token()
	assert.Empty(t, token)
}
