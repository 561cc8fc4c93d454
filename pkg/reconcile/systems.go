package reconcile

import (
	"context"
	"log/slog"

	"github.com/madmikeross/graphengine/pkg/catalog"
	"github.com/madmikeross/graphengine/pkg/graphstore"
)

// Reconciler drives the set-difference sync for systems and stargates
// against a shared catalog client and graph store.
type Reconciler struct {
	Catalog        *catalog.Client
	Store          *graphstore.Store
	StargateFanOut int
}

func New(catalogClient *catalog.Client, store *graphstore.Store, stargateFanOutLimit int) *Reconciler {
	return &Reconciler{Catalog: catalogClient, Store: store, StargateFanOut: stargateFanOutLimit}
}

// SynchronizeSystems runs the systems sync: fetch catalog ids, diff against
// the store, remove stale, fetch+save new, dedupe, and return the final
// saved count. Any failure aborts the sync (batch listing and per-system
// detail fetches are both fatal on error — only the stargate detail fetch
// gets the skip-on-NotFound/ServerError policy).
func (r *Reconciler) SynchronizeSystems(ctx context.Context) (int64, error) {
	esiIDs, err := r.Catalog.GetSystemIDs(ctx)
	if err != nil {
		return 0, err
	}
	esiSet := toSet(toInt64Slice(esiIDs))

	dbIDs, err := r.Store.GetAllSystemIDs(ctx)
	if err != nil {
		return 0, err
	}
	dbSet := toSet(dbIDs)

	toRemove := difference(dbSet, esiSet)
	if err := r.Store.RemoveSystemsByID(ctx, toRemove); err != nil {
		return 0, err
	}

	toAdd := difference(esiSet, dbSet)
	if err := fanOut(ctx, toAdd, 0, func(ctx context.Context, id int64) error {
		detail, err := r.Catalog.GetSystemDetail(ctx, int(id))
		if err != nil {
			return err
		}
		return r.Store.SaveSystem(ctx, toSystem(detail))
	}); err != nil {
		return 0, err
	}

	if err := r.Store.RemoveDuplicateSystems(ctx); err != nil {
		return 0, err
	}

	count, err := r.Store.GetSavedSystemCount(ctx)
	if err != nil {
		return 0, err
	}
	slog.InfoContext(ctx, "systems synchronized", "removed", len(toRemove), "added", len(toAdd), "total", count)
	return count, nil
}

func toInt64Slice(ids []int) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		out = append(out, int64(id))
	}
	return out
}
