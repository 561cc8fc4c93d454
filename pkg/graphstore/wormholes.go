package graphstore

import "context"

// SaveWormhole creates JUMP edges in both directions between in and out.
// Unconditional: wormhole edges have been wiped by DropSystemConnections
// first, so there is nothing to merge against. Wormhole edges carry no risk
// property (§9 open question, resolved: matches the source behavior).
func (s *Store) SaveWormhole(ctx context.Context, in, out int64) error {
	_, err := s.run(ctx, "save_wormhole", `
		MATCH (a:System {system_id: $in}), (b:System {system_id: $out})
		CREATE (a)-[:JUMP {cost: 1}]->(b)
		CREATE (b)-[:JUMP {cost: 1}]->(a)`,
		map[string]any{"in": in, "out": out})
	return err
}

// DropSystemConnections deletes every relationship, in either direction,
// incident to the uniquely named system. Used to purge a wormhole hub's
// transient edges before rebuilding them from a fresh signature list.
func (s *Store) DropSystemConnections(ctx context.Context, systemName string) error {
	_, err := s.run(ctx, "drop_system_connections", `
		MATCH (s:System {name: $name})-[r]-()
		DELETE r`,
		map[string]any{"name": systemName})
	return err
}
