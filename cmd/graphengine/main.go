package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/madmikeross/graphengine/internal/api"
	"github.com/madmikeross/graphengine/pkg/app"
	"github.com/madmikeross/graphengine/pkg/bootstrap"
	"github.com/madmikeross/graphengine/pkg/catalog"
	"github.com/madmikeross/graphengine/pkg/config"
	"github.com/madmikeross/graphengine/pkg/handlers"
	"github.com/madmikeross/graphengine/pkg/projection"
	"github.com/madmikeross/graphengine/pkg/reconcile"
	"github.com/madmikeross/graphengine/pkg/risk"
	"github.com/madmikeross/graphengine/pkg/scoutfeed"
	"github.com/madmikeross/graphengine/pkg/wormhole"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/robfig/cron/v3"
	_ "go.uber.org/automaxprocs"
)

func main() {
	ctx := context.Background()

	appCtx, err := app.Initialize(ctx, "graphengine")
	if err != nil {
		slog.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}
	defer appCtx.Shutdown(ctx)

	catalogClient := catalog.New(config.GetCatalogBaseURL())
	scoutClient := scoutfeed.New(config.GetWormholeFeedURL())

	reconciler := reconcile.New(catalogClient, appCtx.GraphStore, config.GetStargateFanOutLimit())
	riskEngine := risk.New(catalogClient, appCtx.GraphStore)
	wormholeRefresher := wormhole.New(scoutClient, appCtx.GraphStore)
	projectionManager := projection.New(appCtx.GraphStore)
	orchestrator := bootstrap.New(reconciler, riskEngine, wormholeRefresher, projectionManager)

	if err := orchestrator.Run(ctx); err != nil {
		slog.Error("bootstrap failed", "error", err)
		os.Exit(1)
	}

	cronScheduler := cron.New()
	if _, err := cronScheduler.AddFunc(config.GetReconcileSchedule(), func() {
		runCtx, cancel := context.WithTimeout(context.Background(), config.GetReconcileTimeout())
		defer cancel()
		if err := orchestrator.Run(runCtx); err != nil {
			slog.Error("scheduled bootstrap run failed", "error", err)
		}
	}); err != nil {
		slog.Error("failed to schedule reconcile", "error", err)
		os.Exit(1)
	}
	cronScheduler.Start()
	defer cronScheduler.Stop()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(handlers.TracingMiddleware("graphengine"))
	r.Use(requestLoggingMiddleware)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handlers.NotFoundResponse(w, "route")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handlers.NotFoundResponse(w, "route")
	})

	apiModule := api.NewModule(appCtx.GraphStore, reconciler, riskEngine, wormholeRefresher, projectionManager)
	apiModule.RegisterHealthRoute(r)

	humaConfig := huma.DefaultConfig("Graph Engine API", "1.0.0")
	humaConfig.Info.Description = "EVE Online system map, risk, and route-finding engine"
	unifiedAPI := humachi.New(r, humaConfig)
	apiModule.RegisterRoutes(unifiedAPI)
	go apiModule.StartBackgroundTasks(ctx)

	srv := &http.Server{
		Addr:         config.GetHost() + ":" + config.GetPort(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("starting graph engine server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("received shutdown signal, initiating graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	apiModule.Stop()
	appCtx.Shutdown(shutdownCtx)
	slog.Info("graph engine shutdown complete")
}

// requestLoggingMiddleware wraps every response to capture its status code
// and logs the request, skipping /health per handlers.LogRequest.
func requestLoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := handlers.NewResponseWrapper(w)
		next.ServeHTTP(wrapped, r)
		handlers.LogRequest(r, wrapped.StatusCode, time.Since(start), nil)
	})
}
