// Package api wires the service HTTP surface (§6) onto a shared huma API:
// two route-finding GETs and four refresh POSTs, each re-refreshing the
// projection(s) it invalidates.
package api

import (
	"context"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"

	"github.com/madmikeross/graphengine/pkg/graphstore"
	"github.com/madmikeross/graphengine/pkg/module"
	"github.com/madmikeross/graphengine/pkg/projection"
	"github.com/madmikeross/graphengine/pkg/reconcile"
	"github.com/madmikeross/graphengine/pkg/risk"
	"github.com/madmikeross/graphengine/pkg/wormhole"
)

// Module exposes the route-finding and refresh endpoints over the graph
// engine's core components. It carries no state of its own beyond its
// BaseModule's graph store handle and the collaborators it was built with.
type Module struct {
	*module.BaseModule
	reconciler *reconcile.Reconciler
	risk       *risk.Engine
	wormhole   *wormhole.Refresher
	projection *projection.Manager
}

func NewModule(store *graphstore.Store, reconciler *reconcile.Reconciler, riskEngine *risk.Engine, wormholeRefresher *wormhole.Refresher, projectionManager *projection.Manager) *Module {
	return &Module{
		BaseModule: module.NewBaseModule("graphengine", store),
		reconciler: reconciler,
		risk:       riskEngine,
		wormhole:   wormholeRefresher,
		projection: projectionManager,
	}
}

// RegisterRoutes mounts the six service endpoints on the shared huma API.
func (m *Module) RegisterRoutes(api huma.API) {
	registerRouteFinding(api, m.GraphStore(), m.projection)
	registerRefreshEndpoints(api, m.reconciler, m.risk, m.wormhole, m.projection)
}

func logStepFailure(ctx context.Context, step string, err error) {
	slog.ErrorContext(ctx, "refresh endpoint failed", "step", step, "error", err)
}
