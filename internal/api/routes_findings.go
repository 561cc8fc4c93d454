package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/madmikeross/graphengine/pkg/graphstore"
	"github.com/madmikeross/graphengine/pkg/projection"
)

type routeInput struct {
	From string `path:"from" required:"true" doc:"Source system name"`
	To   string `path:"to" required:"true" doc:"Destination system name"`
}

type routeOutput struct {
	Body []string `json:"route"`
}

// registerRouteFinding mounts the shortest-route and safest-route GETs.
// Both collapse every non-404 failure to 500 and return 404 when either
// endpoint system or a connecting route is absent, per §7.
func registerRouteFinding(api huma.API, store *graphstore.Store, proj *projection.Manager) {
	huma.Register(api, huma.Operation{
		OperationID: "shortestRoute",
		Method:      http.MethodGet,
		Path:        "/shortest-route/{from}/to/{to}",
		Summary:     "Find the fewest-jumps route between two systems",
		Tags:        []string{"Routing"},
	}, func(ctx context.Context, input *routeInput) (*routeOutput, error) {
		names, err := store.FindShortestRoute(ctx, input.From, input.To)
		if err != nil {
			logStepFailure(ctx, "shortest-route", err)
			return nil, huma.Error500InternalServerError("failed to compute route", err)
		}
		if names == nil {
			return nil, huma.Error404NotFound("no route found")
		}
		return &routeOutput{Body: names}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "safestRoute",
		Method:      http.MethodGet,
		Path:        "/safest-route/{from}/to/{to}",
		Summary:     "Find the minimum-accumulated-risk route between two systems",
		Description: "Builds the risk-weighted projection on demand if it does not already exist.",
		Tags:        []string{"Routing"},
	}, func(ctx context.Context, input *routeInput) (*routeOutput, error) {
		if err := proj.EnsureRiskProjection(ctx); err != nil {
			logStepFailure(ctx, "safest-route ensure projection", err)
			return nil, huma.Error500InternalServerError("failed to compute route", err)
		}

		names, err := store.FindSafestRoute(ctx, input.From, input.To)
		if err != nil {
			logStepFailure(ctx, "safest-route", err)
			return nil, huma.Error500InternalServerError("failed to compute route", err)
		}
		if names == nil {
			return nil, huma.Error404NotFound("no route found")
		}
		return &routeOutput{Body: names}, nil
	})
}
