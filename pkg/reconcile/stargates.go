package reconcile

import (
	"context"
	"errors"
	"log/slog"

	"github.com/madmikeross/graphengine/pkg/errs"
)

// SynchronizeStargates runs the stargates sync. The catalog exposes no flat
// stargate listing, so the source-of-truth id set is the union of every
// stored System's stargates array. Detail fetches are bounded by the
// reconciler's stargate fan-out semaphore (50 permits by default) to avoid
// rate limiting, and a per-item NotFound/ServerError/UnexpectedError is
// logged and skipped rather than aborting the whole sync; RateLimited is
// still fatal to the batch.
func (r *Reconciler) SynchronizeStargates(ctx context.Context) (int64, error) {
	systems, err := r.Store.GetAllSystems(ctx)
	if err != nil {
		return 0, err
	}
	esiSet := make(map[int64]struct{})
	for _, sys := range systems {
		for _, id := range sys.Stargates {
			esiSet[id] = struct{}{}
		}
	}

	dbIDs, err := r.Store.GetAllStargateIDs(ctx)
	if err != nil {
		return 0, err
	}
	dbSet := toSet(dbIDs)

	toRemove := difference(dbSet, esiSet)
	if err := r.Store.RemoveStargatesByID(ctx, toRemove); err != nil {
		return 0, err
	}

	toAdd := difference(esiSet, dbSet)
	if err := fanOut(ctx, toAdd, r.StargateFanOut, func(ctx context.Context, id int64) error {
		detail, err := r.Catalog.GetStargateDetail(ctx, int(id))
		if err != nil {
			return skipOrFail(ctx, id, err)
		}
		return r.Store.SaveStargate(ctx, toStargate(detail))
	}); err != nil {
		return 0, err
	}

	if err := r.Store.RemoveDuplicateStargates(ctx); err != nil {
		return 0, err
	}

	count, err := r.Store.GetSavedStargateCount(ctx)
	if err != nil {
		return 0, err
	}
	slog.InfoContext(ctx, "stargates synchronized", "removed", len(toRemove), "added", len(toAdd), "total", count)
	return count, nil
}

// skipOrFail applies the per-item stargate detail policy: NotFound,
// ServerError, and UnexpectedError are logged and swallowed (the item is
// treated as a success so a single bad stargate does not halt a ~14k-item
// reconcile); RateLimited bubbles up and aborts the enclosing batch.
func skipOrFail(ctx context.Context, id int64, err error) error {
	var sourceErr *errs.SourceError
	if !errors.As(err, &sourceErr) {
		return err
	}
	switch sourceErr.Kind {
	case errs.RateLimited:
		return err
	case errs.NotFound, errs.ServerError, errs.UnexpectedError:
		slog.WarnContext(ctx, "skipping stargate after source error", "stargate_id", id, "kind", sourceErr.Kind.String(), "error", sourceErr)
		return nil
	default:
		return err
	}
}
