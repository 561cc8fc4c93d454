package graphstore

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// ExistsSystem reports whether a System with this id is already stored.
func (s *Store) ExistsSystem(ctx context.Context, id int64) (bool, error) {
	result, err := s.run(ctx, "exists_system",
		"MATCH (s:System {system_id: $id}) RETURN count(s) > 0 AS exists", map[string]any{"id": id})
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

// SaveSystem creates a System node, first checking ExistsSystem so a
// reconcile re-run (or a race with a concurrent /systems/refresh) can't
// create a second node for the same id; RemoveDuplicateSystems remains the
// backstop for any duplicate that slips past this guard.
func (s *Store) SaveSystem(ctx context.Context, sys System) error {
	exists, err := s.ExistsSystem(ctx, sys.SystemID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = s.run(ctx, "save_system", `
		CREATE (s:System {
			system_id: $system_id, name: $name, constellation_id: $constellation_id,
			star_id: $star_id, x: $x, y: $y, z: $z,
			security_status: $security_status, security_class: $security_class,
			stargates: $stargates, planets: $planets, kills: 0, jumps: 0
		})`, map[string]any{
		"system_id":        sys.SystemID,
		"name":             sys.Name,
		"constellation_id": sys.ConstellationID,
		"star_id":          sys.StarID,
		"x":                sys.X,
		"y":                sys.Y,
		"z":                sys.Z,
		"security_status":  sys.SecurityStatus,
		"security_class":   sys.SecurityClass,
		"stargates":        sys.Stargates,
		"planets":          sys.Planets,
	})
	return err
}

// GetSystem fetches a System by id. A missing system returns (nil, nil).
func (s *Store) GetSystem(ctx context.Context, id int64) (*System, error) {
	result, err := s.run(ctx, "get_system",
		"MATCH (s:System {system_id: $id}) RETURN s", map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	if len(result.Records) == 0 {
		return nil, nil
	}
	return systemFromRecord(result.Records[0])
}

// GetAllSystems returns every stored System.
func (s *Store) GetAllSystems(ctx context.Context) ([]System, error) {
	result, err := s.run(ctx, "get_all_systems", "MATCH (s:System) RETURN s", nil)
	if err != nil {
		return nil, err
	}
	systems := make([]System, 0, len(result.Records))
	for _, record := range result.Records {
		sys, err := systemFromRecord(record)
		if err != nil {
			return nil, err
		}
		systems = append(systems, *sys)
	}
	return systems, nil
}

// GetAllSystemIDs returns every stored System's id.
func (s *Store) GetAllSystemIDs(ctx context.Context) ([]int64, error) {
	result, err := s.run(ctx, "get_all_system_ids",
		"MATCH (s:System) RETURN s.system_id AS id", nil)
	if err != nil {
		return nil, err
	}
	return idsFrom(result, "id"), nil
}

// GetSavedSystemCount returns the number of stored Systems.
func (s *Store) GetSavedSystemCount(ctx context.Context) (int64, error) {
	result, err := s.run(ctx, "get_saved_system_count", "MATCH (s:System) RETURN count(s) AS c", nil)
	if err != nil {
		return 0, err
	}
	return countFrom(result), nil
}

// SetLastHourSystemKills overwrites a System's kills counter.
func (s *Store) SetLastHourSystemKills(ctx context.Context, id int64, kills int64) error {
	_, err := s.run(ctx, "set_last_hour_system_kills",
		"MATCH (s:System {system_id: $id}) SET s.kills = $kills",
		map[string]any{"id": id, "kills": kills})
	return err
}

// SetLastHourSystemJumps overwrites a System's jumps counter.
func (s *Store) SetLastHourSystemJumps(ctx context.Context, id int64, jumps int64) error {
	_, err := s.run(ctx, "set_last_hour_system_jumps",
		"MATCH (s:System {system_id: $id}) SET s.jumps = $jumps",
		map[string]any{"id": id, "jumps": jumps})
	return err
}

// RemoveSystemsByID detach-deletes every System whose id is in ids.
func (s *Store) RemoveSystemsByID(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := s.run(ctx, "remove_systems_by_id",
		"MATCH (s:System) WHERE s.system_id IN $ids DETACH DELETE s",
		map[string]any{"ids": ids})
	return err
}

// RemoveDuplicateSystems groups Systems by system_id and detach-deletes
// every node in a group but the first, enforcing the primary-key invariant.
func (s *Store) RemoveDuplicateSystems(ctx context.Context) error {
	_, err := s.run(ctx, "remove_duplicate_systems", `
		MATCH (s:System)
		WITH s.system_id AS id, COLLECT(s) AS nodes
		WHERE SIZE(nodes) > 1
		FOREACH (n IN TAIL(nodes) | DETACH DELETE n)`, nil)
	return err
}

func systemFromRecord(record *neo4j.Record) (*System, error) {
	raw, _ := record.Get("s")
	node := raw.(neo4j.Node)
	props := node.Props

	return &System{
		SystemID:        asInt64(props["system_id"]),
		Name:            asString(props["name"]),
		ConstellationID: asInt64(props["constellation_id"]),
		StarID:          asInt64(props["star_id"]),
		X:               asFloat64(props["x"]),
		Y:               asFloat64(props["y"]),
		Z:               asFloat64(props["z"]),
		SecurityStatus:  asFloat64(props["security_status"]),
		SecurityClass:   asString(props["security_class"]),
		Stargates:       asInt64Slice(props["stargates"]),
		Planets:         asInt64Slice(props["planets"]),
		Kills:           asInt64(props["kills"]),
		Jumps:           asInt64(props["jumps"]),
	}, nil
}
