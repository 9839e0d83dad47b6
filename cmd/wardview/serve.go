package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/wardview/wardview"
	"github.com/wardview/wardview/pkg/shell"
)

func serveCmd() *cobra.Command {
	var (
		addr    string
		apiURL  string
		stateDB string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard server",
		Long: `Start the dashboard server.

Examples:
  wardview serve
  wardview serve --addr=:9000 --api-url=http://records.internal/api`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, apiURL, stateDB)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "Listen address")
	cmd.Flags().StringVar(&apiURL, "api-url", "", "Records service base URL")
	cmd.Flags().StringVar(&stateDB, "state-db", "", "Credential database path")

	return cmd
}

func runServe(addr, apiURL, stateDB string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	registry := prometheus.NewRegistry()

	cfg := wardview.DefaultConfig()
	if apiURL != "" {
		cfg.APIBaseURL = apiURL
	}
	if stateDB != "" {
		cfg.StateDBPath = stateDB
	}
	cfg.Registry = registry
	cfg.Logger = logger

	rt, err := wardview.NewRuntime(cfg)
	if err != nil {
		return err
	}
	defer rt.Close()

	srv := shell.NewServer(&shell.Config{
		Address:  addr,
		Registry: registry,
		Logger:   logger.With("component", "shell"),
	}, rt.NewApp)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
		return srv.Shutdown(context.Background())
	}
}
