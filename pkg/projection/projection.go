// Package projection manages the two named in-memory graph projections
// (§4.F): system-map (weight=cost) and jump-risk (weight=risk). Refreshing
// is drop-if-exists-then-build; the manager does not detect staleness —
// callers refresh after any write that changed the edges a projection
// indexes.
package projection

import (
	"context"

	"github.com/madmikeross/graphengine/pkg/graphstore"
)

type Manager struct {
	Store *graphstore.Store
}

func New(store *graphstore.Store) *Manager {
	return &Manager{Store: store}
}

// RefreshCostProjection rebuilds system-map, the cost-weighted projection
// backing the shortest-route query.
func (m *Manager) RefreshCostProjection(ctx context.Context) error {
	return m.Store.RefreshNamedGraph(ctx, graphstore.CostProjection, "cost")
}

// RefreshRiskProjection rebuilds jump-risk, the risk-weighted projection
// backing the safest-route query.
func (m *Manager) RefreshRiskProjection(ctx context.Context) error {
	return m.Store.RefreshNamedGraph(ctx, graphstore.RiskProjection, "risk")
}

// EnsureRiskProjection builds jump-risk only if it is currently absent,
// used by the safest-route handler to build the projection on demand.
func (m *Manager) EnsureRiskProjection(ctx context.Context) error {
	exists, err := m.Store.GraphExists(ctx, graphstore.RiskProjection)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return m.RefreshRiskProjection(ctx)
}
