package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{
		BaseURL: srv.URL,
		Store:   NewMemoryStore(),
	})
	require.NoError(t, err)
	return client, srv
}

func TestNewClientRequiresStoreAndBaseURL(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "http://x"})
	assert.Error(t, err)

	_, err = NewClient(Config{Store: NewMemoryStore()})
	assert.Error(t, err)
}

func TestRequestHeaders(t *testing.T) {
	var gotContentType, gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))

	client.Get(context.Background(), "/patients")
	assert.Equal(t, "application/json", gotContentType)
	assert.Empty(t, gotAuth, "no bearer header without a credential")

	require.NoError(t, client.SetToken("tok-123"))
	client.Get(context.Background(), "/patients")
	assert.Equal(t, "Bearer tok-123", gotAuth)

	require.NoError(t, client.ClearToken())
	client.Get(context.Background(), "/patients")
	assert.Empty(t, gotAuth, "bearer header must disappear immediately after clear")
}

func TestTokenLifecycle(t *testing.T) {
	client, _ := newTestClient(t, http.NotFoundHandler())

	assert.False(t, client.IsAuthenticated())

	require.NoError(t, client.SetToken("abc"))
	assert.True(t, client.IsAuthenticated(), "authenticated immediately after SetToken")
	assert.Equal(t, "abc", client.Token())

	require.NoError(t, client.ClearToken())
	assert.False(t, client.IsAuthenticated(), "unauthenticated immediately after ClearToken")
}

func TestDoSuccess(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"patient": map[string]any{"id": float64(7)}})
	}))

	result := client.Get(context.Background(), "/patients/7")
	require.True(t, result.Success)
	assert.Empty(t, result.Error)
	assert.Equal(t, float64(7), result.Map("patient")["id"])
}

func TestDoClassifiesErrorMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "Patient not found"}`))
	}))

	result := client.Get(context.Background(), "/patients/99")
	assert.False(t, result.Success)
	assert.Equal(t, "Patient not found", result.Error)
	assert.Nil(t, result.FieldErrors)
}

func TestDoClassifiesFieldErrors(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors": {"first_name": "First name is required", "gender": "Gender must be one of: Male, Female, Other"}}`))
	}))

	result := client.Post(context.Background(), "/patients", map[string]any{})
	assert.False(t, result.Success)
	assert.Equal(t, "validation failed", result.Error)
	assert.Len(t, result.FieldErrors, 2)
	assert.Equal(t, "First name is required", result.FieldErrors["first_name"])
}

func TestDoStatusWithoutBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	result := client.Get(context.Background(), "/patients")
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "status 500")
}

func TestDoInvalidJSON(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))

	result := client.Get(context.Background(), "/patients")
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "invalid response body")
}

func TestDoNetworkErrorIsData(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	client, err := NewClient(Config{BaseURL: srv.URL, Store: NewMemoryStore()})
	require.NoError(t, err)
	srv.Close() // force connection refused

	result := client.Get(context.Background(), "/patients")
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "network error")
}

func TestUnauthorizedIsOrdinaryFailure(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "Token has expired"}`))
	}))
	require.NoError(t, client.SetToken("stale"))

	result := client.Get(context.Background(), "/patients")
	assert.False(t, result.Success)
	assert.Equal(t, "Token has expired", result.Error)
	// No auto-logout on 401.
	assert.True(t, client.IsAuthenticated())
}
