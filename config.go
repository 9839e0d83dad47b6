package wardview

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Config is the application configuration.
type Config struct {
	// APIBaseURL is the remote records service address.
	APIBaseURL string

	// StateDBPath is the bbolt file holding the session credential. Empty
	// keeps the credential in memory only, so it will not survive a restart.
	StateDBPath string

	// Registry receives gateway and shell metrics. Nil skips registration.
	Registry prometheus.Registerer

	// Logger is the structured logger. Nil uses slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the default application configuration.
func DefaultConfig() Config {
	return Config{
		APIBaseURL:  "http://localhost:5000/api",
		StateDBPath: "wardview.db",
	}
}

// withDefaults fills unset fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.APIBaseURL == "" {
		c.APIBaseURL = d.APIBaseURL
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}
