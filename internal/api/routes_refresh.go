package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/madmikeross/graphengine/pkg/projection"
	"github.com/madmikeross/graphengine/pkg/reconcile"
	"github.com/madmikeross/graphengine/pkg/risk"
	"github.com/madmikeross/graphengine/pkg/wormhole"
)

// registerRefreshEndpoints mounts the four on-demand POST refreshes. Each
// re-refreshes the projection(s) its write invalidates: systems/stargates
// changes invalidate the cost projection, risk changes invalidate the risk
// projection, and wormhole changes invalidate the cost projection (wormhole
// edges carry no risk property, so jump-risk is unaffected).
func registerRefreshEndpoints(api huma.API, reconciler *reconcile.Reconciler, riskEngine *risk.Engine, wormholeRefresher *wormhole.Refresher, proj *projection.Manager) {
	huma.Register(api, huma.Operation{
		OperationID: "refreshSystems",
		Method:      http.MethodPost,
		Path:        "/systems/refresh",
		Summary:     "Synchronize systems from the catalog and rebuild the cost projection",
		Tags:        []string{"Admin"},
	}, func(ctx context.Context, input *struct{}) (*struct{}, error) {
		if _, err := reconciler.SynchronizeSystems(ctx); err != nil {
			logStepFailure(ctx, "systems refresh", err)
			return nil, huma.Error500InternalServerError("failed to refresh systems", err)
		}
		if err := proj.RefreshCostProjection(ctx); err != nil {
			logStepFailure(ctx, "systems refresh projection", err)
			return nil, huma.Error500InternalServerError("failed to refresh systems", err)
		}
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "refreshSystemRisk",
		Method:      http.MethodPost,
		Path:        "/systems/risk",
		Summary:     "Recompute per-system jump risk and rebuild the risk projection",
		Tags:        []string{"Admin"},
	}, func(ctx context.Context, input *struct{}) (*struct{}, error) {
		if err := riskEngine.Refresh(ctx); err != nil {
			logStepFailure(ctx, "risk refresh", err)
			return nil, huma.Error500InternalServerError("failed to refresh risk", err)
		}
		if err := proj.RefreshRiskProjection(ctx); err != nil {
			logStepFailure(ctx, "risk refresh projection", err)
			return nil, huma.Error500InternalServerError("failed to refresh risk", err)
		}
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "refreshStargates",
		Method:      http.MethodPost,
		Path:        "/stargates/refresh",
		Summary:     "Synchronize stargates from the catalog and rebuild the cost projection",
		Tags:        []string{"Admin"},
	}, func(ctx context.Context, input *struct{}) (*struct{}, error) {
		if _, err := reconciler.SynchronizeStargates(ctx); err != nil {
			logStepFailure(ctx, "stargates refresh", err)
			return nil, huma.Error500InternalServerError("failed to refresh stargates", err)
		}
		if err := proj.RefreshCostProjection(ctx); err != nil {
			logStepFailure(ctx, "stargates refresh projection", err)
			return nil, huma.Error500InternalServerError("failed to refresh stargates", err)
		}
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "refreshWormholes",
		Method:      http.MethodPost,
		Path:        "/wormholes/refresh",
		Summary:     "Rebuild wormhole connections from the signature feed and refresh the cost projection",
		Tags:        []string{"Admin"},
	}, func(ctx context.Context, input *struct{}) (*struct{}, error) {
		if err := wormholeRefresher.Refresh(ctx); err != nil {
			logStepFailure(ctx, "wormholes refresh", err)
			return nil, huma.Error500InternalServerError("failed to refresh wormholes", err)
		}
		if err := proj.RefreshCostProjection(ctx); err != nil {
			logStepFailure(ctx, "wormholes refresh projection", err)
			return nil, huma.Error500InternalServerError("failed to refresh wormholes", err)
		}
		return nil, nil
	})
}
