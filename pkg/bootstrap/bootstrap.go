// Package bootstrap runs the strict, ordered startup sequence (§4.G): each
// step must complete before the next begins, and the first error aborts the
// whole sequence. The same sequence is re-run on the periodic reconcile
// schedule.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/madmikeross/graphengine/pkg/projection"
	"github.com/madmikeross/graphengine/pkg/reconcile"
	"github.com/madmikeross/graphengine/pkg/risk"
	"github.com/madmikeross/graphengine/pkg/wormhole"

	"github.com/google/uuid"
)

type Orchestrator struct {
	Reconciler *reconcile.Reconciler
	Risk       *risk.Engine
	Wormhole   *wormhole.Refresher
	Projection *projection.Manager
}

func New(reconciler *reconcile.Reconciler, riskEngine *risk.Engine, wormholeRefresher *wormhole.Refresher, projectionManager *projection.Manager) *Orchestrator {
	return &Orchestrator{
		Reconciler: reconciler,
		Risk:       riskEngine,
		Wormhole:   wormholeRefresher,
		Projection: projectionManager,
	}
}

// Run executes, in order: systems sync, stargates sync, risk refresh,
// risk-projection refresh, wormhole refresh, cost-projection refresh. Any
// step's error aborts the remaining steps.
func (o *Orchestrator) Run(ctx context.Context) error {
	runID := uuid.New().String()

	steps := []struct {
		name string
		run  func(context.Context) error
	}{
		{"systems sync", func(ctx context.Context) error {
			_, err := o.Reconciler.SynchronizeSystems(ctx)
			return err
		}},
		{"stargates sync", func(ctx context.Context) error {
			_, err := o.Reconciler.SynchronizeStargates(ctx)
			return err
		}},
		{"risk refresh", o.Risk.Refresh},
		{"risk projection refresh", o.Projection.RefreshRiskProjection},
		{"wormhole refresh", o.Wormhole.Refresh},
		{"cost projection refresh", o.Projection.RefreshCostProjection},
	}

	slog.InfoContext(ctx, "bootstrap run starting", "run_id", runID)
	for _, step := range steps {
		slog.InfoContext(ctx, "bootstrap step starting", "run_id", runID, "step", step.name)
		if err := step.run(ctx); err != nil {
			return fmt.Errorf("bootstrap run %s step %q: %w", runID, step.name, err)
		}
		slog.InfoContext(ctx, "bootstrap step complete", "run_id", runID, "step", step.name)
	}
	slog.InfoContext(ctx, "bootstrap run complete", "run_id", runID)
	return nil
}
