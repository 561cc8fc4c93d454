// Package wormhole implements the wormhole refresher (§4.E): wormholes are
// transient, so their edges are rebuilt from scratch on every refresh rather
// than merged against the prior state.
package wormhole

import (
	"context"

	"github.com/madmikeross/graphengine/pkg/graphstore"
	"github.com/madmikeross/graphengine/pkg/scoutfeed"

	"golang.org/x/sync/errgroup"
)

// hubSystemNames are the designated wormhole hub systems whose incident
// relationships are wiped before every refresh. Hardcoded per §9's flagged,
// non-blocking open question — a cleaner design would persist this set as
// data.
var hubSystemNames = []string{"Thera", "Turnur"}

type Refresher struct {
	Feed  *scoutfeed.Client
	Store *graphstore.Store
}

func New(feed *scoutfeed.Client, store *graphstore.Store) *Refresher {
	return &Refresher{Feed: feed, Store: store}
}

// Refresh drops all relationships incident to the hub systems, fetches the
// public signature list, and unconditionally creates a bidirectional JUMP
// edge pair for every wormhole-typed signature. A failure in any individual
// save aborts the batch, per the fan-out contract in §4.C.
func (r *Refresher) Refresh(ctx context.Context) error {
	for _, name := range hubSystemNames {
		if err := r.Store.DropSystemConnections(ctx, name); err != nil {
			return err
		}
	}

	signatures, err := r.Feed.GetPublicSignatures(ctx)
	if err != nil {
		return err
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for _, sig := range signatures {
		if !sig.IsWormhole() {
			continue
		}
		sig := sig
		group.Go(func() error {
			return r.Store.SaveWormhole(groupCtx, int64(sig.InSystemID), int64(sig.OutSystemID))
		})
	}
	return group.Wait()
}
