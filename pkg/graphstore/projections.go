package graphstore

import "context"

// GraphExists reports whether a named in-memory projection currently exists.
func (s *Store) GraphExists(ctx context.Context, name string) (bool, error) {
	result, err := s.run(ctx, "graph_exists",
		"CALL gds.graph.exists($name) YIELD exists RETURN exists", map[string]any{"name": name})
	if err != nil {
		return false, err
	}
	if len(result.Records) == 0 {
		return false, nil
	}
	v, _ := result.Records[0].Get("exists")
	exists, _ := v.(bool)
	return exists, nil
}

// DropNamedGraph drops a projection, if it exists.
func (s *Store) DropNamedGraph(ctx context.Context, name string) error {
	_, err := s.run(ctx, "drop_named_graph",
		"CALL gds.graph.drop($name, false)", map[string]any{"name": name})
	return err
}

// ProjectNamedGraph builds a named in-memory projection over label System and
// relationship type JUMP, exposing weightProperty for shortest-path queries.
func (s *Store) ProjectNamedGraph(ctx context.Context, name, weightProperty string) error {
	_, err := s.run(ctx, "project_named_graph", `
		CALL gds.graph.project(
			$name,
			'System',
			'JUMP',
			{relationshipProperties: $weightProperty}
		)`, map[string]any{"name": name, "weightProperty": weightProperty})
	return err
}

// RefreshNamedGraph drops the projection if present, then rebuilds it.
// Idempotent: calling it twice in a row yields the same named graph.
func (s *Store) RefreshNamedGraph(ctx context.Context, name, weightProperty string) error {
	exists, err := s.GraphExists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		if err := s.DropNamedGraph(ctx, name); err != nil {
			return err
		}
	}
	return s.ProjectNamedGraph(ctx, name, weightProperty)
}
