// Package wardview wires the records dashboard together: the gateway client
// with its durable credential store, the per-session router and views, and
// the shell App contract the WebSocket layer hosts. Everything is constructed
// explicitly; there are no package-level singletons.
package wardview

import (
	"fmt"
	"log/slog"

	"github.com/wardview/wardview/pkg/gateway"
	"github.com/wardview/wardview/pkg/shell"
)

// Runtime is the process-wide core shared by all sessions: the credential
// store and the gateway client built on it. The dashboard is a single-user
// client runtime, so every browser session shares one credential.
type Runtime struct {
	cfg    Config
	store  gateway.CredentialStore
	gw     *gateway.Client
	logger *slog.Logger
}

// NewRuntime opens the credential store and constructs the gateway client.
// A credential persisted by a previous run is loaded immediately, so the
// session survives a restart.
func NewRuntime(cfg Config) (*Runtime, error) {
	cfg = cfg.withDefaults()

	var store gateway.CredentialStore
	if cfg.StateDBPath != "" {
		bolt, err := gateway.NewBoltStore(cfg.StateDBPath)
		if err != nil {
			return nil, fmt.Errorf("open state db: %w", err)
		}
		store = bolt
	} else {
		store = gateway.NewMemoryStore()
	}

	gw, err := gateway.NewClient(gateway.Config{
		BaseURL:  cfg.APIBaseURL,
		Store:    store,
		Registry: cfg.Registry,
		Logger:   cfg.Logger.With("component", "gateway"),
	})
	if err != nil {
		return nil, err
	}

	return &Runtime{cfg: cfg, store: store, gw: gw, logger: cfg.Logger}, nil
}

// Close releases the credential store's file lock, if it holds one.
func (rt *Runtime) Close() error {
	if closer, ok := rt.store.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// Gateway returns the shared gateway client.
func (rt *Runtime) Gateway() *gateway.Client {
	return rt.gw
}

// NewApp builds a fresh per-session App. Satisfies shell.AppFactory.
func (rt *Runtime) NewApp() (shell.App, error) {
	return newApp(rt), nil
}
