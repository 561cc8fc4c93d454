package graphstore

import "context"

const (
	CostProjection = "system-map"
	RiskProjection = "jump-risk"

	costWeight = "cost"
	riskWeight = "risk"
)

// FindShortestRoute runs single-source Dijkstra over the cost-weighted
// system-map projection, returning the fewest-jumps path as an ordered list
// of system names, or nil when either endpoint or the route is absent.
func (s *Store) FindShortestRoute(ctx context.Context, fromName, toName string) ([]string, error) {
	return s.findRoute(ctx, CostProjection, costWeight, fromName, toName)
}

// FindSafestRoute runs single-source Dijkstra over the risk-weighted
// jump-risk projection, returning the minimum-accumulated-risk path.
func (s *Store) FindSafestRoute(ctx context.Context, fromName, toName string) ([]string, error) {
	return s.findRoute(ctx, RiskProjection, riskWeight, fromName, toName)
}

// findRoute runs a single-source Dijkstra on the named projection with its
// weight property, returning the node-name sequence for the path, or nil
// when either endpoint or a route between them is absent.
func (s *Store) findRoute(ctx context.Context, projection, weightProperty, fromName, toName string) ([]string, error) {
	result, err := s.run(ctx, "find_route", `
		MATCH (source:System {name: $from}), (target:System {name: $to})
		CALL gds.shortestPath.dijkstra.stream($projection, {
			sourceNode: source,
			targetNode: target,
			relationshipWeightProperty: $weightProperty
		})
		YIELD path
		RETURN [n IN nodes(path) | n.name] AS names
		LIMIT 1`,
		map[string]any{
			"from":           fromName,
			"to":             toName,
			"projection":     projection,
			"weightProperty": weightProperty,
		})
	if err != nil {
		return nil, err
	}
	if len(result.Records) == 0 {
		return nil, nil
	}

	v, _ := result.Records[0].Get("names")
	list, ok := v.([]any)
	if !ok {
		return nil, nil
	}
	names := make([]string, 0, len(list))
	for _, item := range list {
		names = append(names, asString(item))
	}
	return names, nil
}
