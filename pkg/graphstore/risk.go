package graphstore

import "context"

// SetSystemJumpRisk fetches the system, computes its per-edge risk against
// the supplied galaxy baseline, and writes it to the risk property of every
// inbound JUMP edge. A missing system is a silent no-op, not an error.
func (s *Store) SetSystemJumpRisk(ctx context.Context, systemID int64, baseline float64) error {
	sys, err := s.GetSystem(ctx, systemID)
	if err != nil {
		return err
	}
	if sys == nil {
		return nil
	}

	risk := CalculateTotalRisk(sys.Kills, sys.Jumps, baseline)

	_, err = s.run(ctx, "set_system_jump_risk", `
		MATCH (:System)-[r:JUMP]->(dest:System {system_id: $id})
		SET r.risk = $risk`,
		map[string]any{"id": systemID, "risk": risk})
	return err
}

// CalculateTotalRisk implements the per-edge risk formula: kills squared,
// divided by jumps when jumps observed traffic, else carried undivided, plus
// the galaxy-wide baseline floor.
func CalculateTotalRisk(kills, jumps int64, baseline float64) float64 {
	killsSq := float64(kills * kills)
	if jumps > 0 {
		return killsSq/float64(jumps) + baseline
	}
	return killsSq + baseline
}
