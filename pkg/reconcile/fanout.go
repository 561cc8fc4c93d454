package reconcile

import (
	"context"
	"fmt"

	"github.com/madmikeross/graphengine/pkg/errs"

	"golang.org/x/sync/errgroup"
)

// fanOut spawns one task per id into an errgroup, bounded by limit concurrent
// in-flight tasks (limit <= 0 means unbounded). It joins all tasks and
// returns the first error encountered, per the canonical "join all,
// first-error-wins, no task leaked" contract. A panicking task is recovered
// and converted into an *errs.ProcessError rather than crashing the process.
func fanOut(ctx context.Context, ids []int64, limit int, task func(ctx context.Context, id int64) error) error {
	group, groupCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		group.SetLimit(limit)
	}

	for _, id := range ids {
		id := id
		group.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = errs.NewProcessError(fmt.Sprintf("id=%d", id), fmt.Errorf("panic: %v", r))
				}
			}()
			return task(groupCtx, id)
		})
	}

	return group.Wait()
}
