package graphstore

import "context"

// ExistsStargate reports whether a Stargate with this id is already stored.
func (s *Store) ExistsStargate(ctx context.Context, id int64) (bool, error) {
	result, err := s.run(ctx, "exists_stargate",
		"MATCH (sg:Stargate {stargate_id: $id}) RETURN count(sg) > 0 AS exists", map[string]any{"id": id})
	if err != nil {
		return false, err
	}
	if len(result.Records) == 0 {
		return false, nil
	}
	exists, _ := result.Records[0].Get("exists")
	b, _ := exists.(bool)
	return b, nil
}

// SaveStargate creates a Stargate node, first checking ExistsStargate so a
// reconcile re-run can't duplicate the node, and ensures a JUMP edge from its
// parent system to its destination system exists (create only if missing —
// permanent links must not be duplicated on every reconcile).
func (s *Store) SaveStargate(ctx context.Context, sg Stargate) error {
	exists, err := s.ExistsStargate(ctx, sg.StargateID)
	if err != nil {
		return err
	}
	if exists {
		return s.createJumpIfMissing(ctx, sg.SystemID, sg.DestinationSystemID)
	}

	_, err = s.run(ctx, "save_stargate", `
		CREATE (sg:Stargate {
			stargate_id: $stargate_id, system_id: $system_id,
			destination_system_id: $destination_system_id,
			destination_stargate_id: $destination_stargate_id,
			name: $name, x: $x, y: $y, z: $z, type_id: $type_id
		})`, map[string]any{
		"stargate_id":             sg.StargateID,
		"system_id":               sg.SystemID,
		"destination_system_id":   sg.DestinationSystemID,
		"destination_stargate_id": sg.DestinationStargateID,
		"name":                    sg.Name,
		"x":                       sg.X,
		"y":                       sg.Y,
		"z":                       sg.Z,
		"type_id":                 sg.TypeID,
	})
	if err != nil {
		return err
	}
	return s.createJumpIfMissing(ctx, sg.SystemID, sg.DestinationSystemID)
}

func (s *Store) createJumpIfMissing(ctx context.Context, from, to int64) error {
	_, err := s.run(ctx, "create_system_jump_if_missing", `
		MATCH (a:System {system_id: $from}), (b:System {system_id: $to})
		MERGE (a)-[r:JUMP]->(b)
		ON CREATE SET r.cost = 1`,
		map[string]any{"from": from, "to": to})
	return err
}

// GetAllStargateIDs returns every stored Stargate's id.
func (s *Store) GetAllStargateIDs(ctx context.Context) ([]int64, error) {
	result, err := s.run(ctx, "get_all_stargate_ids",
		"MATCH (sg:Stargate) RETURN sg.stargate_id AS id", nil)
	if err != nil {
		return nil, err
	}
	return idsFrom(result, "id"), nil
}

// GetSavedStargateCount returns the number of stored Stargates.
func (s *Store) GetSavedStargateCount(ctx context.Context) (int64, error) {
	result, err := s.run(ctx, "get_saved_stargate_count", "MATCH (sg:Stargate) RETURN count(sg) AS c", nil)
	if err != nil {
		return 0, err
	}
	return countFrom(result), nil
}

// RemoveStargatesByID detach-deletes every Stargate whose id is in ids.
func (s *Store) RemoveStargatesByID(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := s.run(ctx, "remove_stargates_by_id",
		"MATCH (sg:Stargate) WHERE sg.stargate_id IN $ids DETACH DELETE sg",
		map[string]any{"ids": ids})
	return err
}

// RemoveDuplicateStargates groups Stargates by stargate_id and detach-deletes
// every node in a group but the first.
func (s *Store) RemoveDuplicateStargates(ctx context.Context) error {
	_, err := s.run(ctx, "remove_duplicate_stargates", `
		MATCH (sg:Stargate)
		WITH sg.stargate_id AS id, COLLECT(sg) AS nodes
		WHERE SIZE(nodes) > 1
		FOREACH (n IN TAIL(nodes) | DETACH DELETE n)`, nil)
	return err
}
