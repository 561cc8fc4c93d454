// Package risk implements the activity and risk engine (§4.D): pull the
// hourly kill and jump listings, store per-system counters, compute the
// galaxy-wide baseline, and propagate per-edge risk to every inbound JUMP
// edge.
package risk

import (
	"context"
	"log/slog"

	"github.com/madmikeross/graphengine/pkg/catalog"
	"github.com/madmikeross/graphengine/pkg/graphstore"

	"golang.org/x/sync/errgroup"
)

// minimumBaseline is the floor applied when no jumps were observed
// galaxy-wide, so every edge keeps a positive weight.
const minimumBaseline = 0.01

type Engine struct {
	Catalog *catalog.Client
	Store   *graphstore.Store
}

func New(catalogClient *catalog.Client, store *graphstore.Store) *Engine {
	return &Engine{Catalog: catalogClient, Store: store}
}

// Refresh runs the three phases in order: pull kills, pull jumps, then
// compute the baseline and propagate risk to every system's inbound edges.
func (e *Engine) Refresh(ctx context.Context) error {
	galaxyKills, err := e.pullKills(ctx)
	if err != nil {
		return err
	}

	galaxyJumps, err := e.pullJumps(ctx)
	if err != nil {
		return err
	}

	baseline := minimumBaseline
	if galaxyJumps > 0 {
		baseline = float64(galaxyKills) / float64(galaxyJumps)
	}

	ids, err := e.Store.GetAllSystemIDs(ctx)
	if err != nil {
		return err
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for _, id := range ids {
		id := id
		group.Go(func() error {
			return e.Store.SetSystemJumpRisk(groupCtx, id, baseline)
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	slog.InfoContext(ctx, "jump risk refreshed", "galaxy_kills", galaxyKills, "galaxy_jumps", galaxyJumps, "baseline", baseline, "systems", len(ids))
	return nil
}

// pullKills overwrites every reported system's kills counter and sums the
// batch into the galaxy-wide total. A system absent from the response keeps
// its prior counter.
func (e *Engine) pullKills(ctx context.Context) (int64, error) {
	entries, err := e.Catalog.GetSystemKills(ctx)
	if err != nil {
		return 0, err
	}

	var galaxyKills int64
	group, groupCtx := errgroup.WithContext(ctx)
	for _, entry := range entries {
		entry := entry
		galaxyKills += int64(entry.ShipKills)
		group.Go(func() error {
			return e.Store.SetLastHourSystemKills(groupCtx, int64(entry.SystemID), int64(entry.ShipKills))
		})
	}
	if err := group.Wait(); err != nil {
		return 0, err
	}
	return galaxyKills, nil
}

// pullJumps overwrites every reported system's jumps counter and sums the
// batch into the galaxy-wide total.
func (e *Engine) pullJumps(ctx context.Context) (int64, error) {
	entries, err := e.Catalog.GetSystemJumps(ctx)
	if err != nil {
		return 0, err
	}

	var galaxyJumps int64
	group, groupCtx := errgroup.WithContext(ctx)
	for _, entry := range entries {
		entry := entry
		galaxyJumps += int64(entry.ShipJumps)
		group.Go(func() error {
			return e.Store.SetLastHourSystemJumps(groupCtx, int64(entry.SystemID), int64(entry.ShipJumps))
		})
	}
	if err := group.Wait(); err != nil {
		return 0, err
	}
	return galaxyJumps, nil
}
