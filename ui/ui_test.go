package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wardview/wardview/pkg/component"
	"github.com/wardview/wardview/pkg/gateway"
	"github.com/wardview/wardview/pkg/router"
)

// fakeService is a scriptable stand-in for the remote records service. It
// records every request so tests can assert a network call did or did not
// happen.
type fakeService struct {
	mu       sync.Mutex
	requests []string
	routes   map[string]func(w http.ResponseWriter, r *http.Request)
}

func newFakeService() *fakeService {
	return &fakeService{routes: map[string]func(http.ResponseWriter, *http.Request){}}
}

// on registers a handler under "METHOD /path".
func (s *fakeService) on(route string, status int, body map[string]any) {
	s.routes[route] = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}
}

func (s *fakeService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	s.mu.Lock()
	s.requests = append(s.requests, key)
	handler := s.routes[key]
	s.mu.Unlock()

	if handler == nil {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"error": "not found"})
		return
	}
	handler(w, r)
}

func (s *fakeService) requestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// harness wires a gateway and router against a fake service.
type harness struct {
	svc *fakeService
	gw  *gateway.Client
	nav *router.Router
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	svc := newFakeService()
	srv := httptest.NewServer(svc)
	t.Cleanup(srv.Close)

	gw, err := gateway.NewClient(gateway.Config{
		BaseURL: srv.URL,
		Store:   gateway.NewMemoryStore(),
	})
	require.NoError(t, err)

	return &harness{svc: svc, gw: gw, nav: router.New(gw)}
}

// mount mounts a component and registers unmount cleanup.
func mount(t *testing.T, c component.Component) *component.Instance {
	t.Helper()
	inst := component.New(c)
	require.NoError(t, inst.Mount())
	t.Cleanup(inst.Unmount)
	return inst
}
