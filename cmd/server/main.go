// Tabularium - Mock Archive Management API for Frontend Development
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tabularium

// Package main is the entry point for the Tabularium server.
//
// Tabularium is a mock archive-management backend for frontend development.
// It serves a fixed synthetic data set - archives, categories, statistics,
// dashboard feeds - plus a mock authentication flow, behind the exact HTTP
// contract the archive-management frontend expects. Nothing is persisted;
// restart the process and the world resets.
//
// # Startup
//
// The server initializes in order:
//
//  1. Configuration: defaults, optional YAML file, TABULARIUM_* environment
//     variables (Koanf v2, highest priority last)
//  2. Logging: zerolog, JSON or console format
//  3. Auth state: the static user directory and the empty session store
//  4. HTTP: Chi router with the full route table and middleware stack
//  5. Supervision: the HTTP listener runs under a suture supervisor and is
//     restarted if it ever fails
//
// # Configuration
//
// Everything has a sensible development default; the common overrides are:
//
//	export TABULARIUM_SERVER_PORT=8080
//	export TABULARIUM_LOGGING_LEVEL=debug
//	export TABULARIUM_LOGGING_FORMAT=console
//	./tabularium
//
// # Signal Handling
//
// SIGINT and SIGTERM trigger graceful shutdown: the listener stops accepting
// connections and in-flight requests get the configured shutdown timeout to
// complete.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/tabularium/internal/api"
	"github.com/tomtom215/tabularium/internal/auth"
	"github.com/tomtom215/tabularium/internal/config"
	"github.com/tomtom215/tabularium/internal/logging"
	"github.com/tomtom215/tabularium/internal/supervisor"
)

func main() {
	// Load configuration first to get logging settings.
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Int("archive_count", cfg.API.ArchiveCount).
		Bool("rate_limit_disabled", cfg.Security.RateLimitDisabled).
		Msg("Configuration loaded")

	// Auth state: static directory, empty session store.
	directory := auth.NewDirectory()
	sessions := auth.NewSessionStore()

	handler := api.NewHandler(cfg, directory, sessions)
	router := api.NewRouter(cfg, handler)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog so suture's lifecycle events share the pipeline.
	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.Config{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.Add(supervisor.NewHTTPService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server added to supervisor")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting Tabularium")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor error")
		}
	}

	// Drain until the supervisor has fully stopped.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Server stopped gracefully")
}
