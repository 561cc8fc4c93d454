// Package app wires the shared startup sequence common to every entrypoint:
// env loading, telemetry, and the graph store connection-with-retry.
package app

import (
	"context"
	"log"
	"log/slog"

	"github.com/madmikeross/graphengine/pkg/config"
	"github.com/madmikeross/graphengine/pkg/graphstore"
	"github.com/madmikeross/graphengine/pkg/logging"

	"github.com/joho/godotenv"
)

// Context holds the shared application dependencies every entrypoint needs.
type Context struct {
	GraphStore       *graphstore.Store
	TelemetryManager *logging.TelemetryManager
	ServiceName      string
	shutdownFuncs    []func(context.Context) error
}

// Initialize loads the environment, starts telemetry, and connects to the
// graph store with the configured retry budget. A graph store connection
// failure is fatal; telemetry failures are logged and swallowed.
func Initialize(ctx context.Context, serviceName string) (*Context, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found or error loading it: %v", err)
	}

	telemetryManager := logging.NewTelemetryManager(serviceName)
	if err := telemetryManager.Initialize(ctx); err != nil {
		log.Printf("warning: failed to initialize telemetry: %v", err)
	}

	store, err := graphstore.Connect(ctx,
		config.GetNeo4jURI(),
		config.GetNeo4jUser(),
		config.GetNeo4jPassword(),
		config.GetNeo4jConnectAttempts(),
	)
	if err != nil {
		return nil, err
	}
	slog.Info("connected to graph store")

	appCtx := &Context{
		GraphStore:       store,
		TelemetryManager: telemetryManager,
		ServiceName:      serviceName,
	}
	appCtx.shutdownFuncs = append(appCtx.shutdownFuncs,
		store.Close,
		telemetryManager.Shutdown,
	)
	return appCtx, nil
}

// Shutdown runs every registered shutdown function, logging but not aborting
// on individual failures.
func (a *Context) Shutdown(ctx context.Context) error {
	slog.Info("shutting down application", "service", a.ServiceName)
	for _, shutdown := range a.shutdownFuncs {
		if err := shutdown(ctx); err != nil {
			slog.Error("error during shutdown", "error", err)
		}
	}
	slog.Info("application shutdown complete", "service", a.ServiceName)
	return nil
}
