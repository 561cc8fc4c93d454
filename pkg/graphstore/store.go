// Package graphstore is the typed adapter over the graph database:
// idempotent upserts, id-set queries, dedupe passes, named-projection
// build/drop, and shortest-path queries, grounded on
// original_source/src/database.rs's Cypher statements. No retries
// live here beyond connection bootstrap — a query failure surfaces
// immediately as a *errs.TargetError.
package graphstore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/madmikeross/graphengine/pkg/errs"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

const connectBackoff = 5 * time.Second

// Store wraps a Bolt driver. The driver is an internally thread-safe
// connection pool and is shared by reference across every task.
type Store struct {
	driver neo4j.DriverWithContext
}

// Connect dials the graph database with up to attempts tries on a 5-second
// linear backoff, health-checking with a trivial node-match query before
// declaring the store ready. Exhausting all attempts is a fatal
// ConnectionFailure.
func Connect(ctx context.Context, uri, user, password string, attempts int) (*Store, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		return nil, errs.NewTargetError(errs.ConnectionFailure, "connect", err)
	}

	store := &Store{driver: driver}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := store.Ping(ctx); err != nil {
			lastErr = err
			slog.WarnContext(ctx, "graph database not ready", "attempt", attempt, "max_attempts", attempts, "error", err)
			if attempt < attempts {
				select {
				case <-time.After(connectBackoff):
				case <-ctx.Done():
					return nil, errs.NewTargetError(errs.ConnectionFailure, "connect", ctx.Err())
				}
			}
			continue
		}
		slog.InfoContext(ctx, "graph database ready", "uri", uri, "attempt", attempt)
		return store, nil
	}

	return nil, errs.NewTargetError(errs.ConnectionFailure, "connect", fmt.Errorf("exhausted %d attempts: %w", attempts, lastErr))
}

// Ping issues a trivial node-match query to verify the connection is usable.
func (s *Store) Ping(ctx context.Context) error {
	_, err := neo4j.ExecuteQuery(ctx, s.driver, "MATCH (n) RETURN n LIMIT 1", nil,
		neo4j.EagerResultTransformer)
	if err != nil {
		return errs.NewTargetError(errs.ConnectionFailure, "ping", err)
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// run is the shared query-execution helper: every operation in this package
// funnels through it so a single place classifies query failures as Target
// errors.
func (s *Store) run(ctx context.Context, operation, cypher string, params map[string]any) (*neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(ctx, s.driver, cypher, params, neo4j.EagerResultTransformer)
	if err != nil {
		return nil, errs.NewTargetError(errs.QueryFailure, operation, err)
	}
	return result, nil
}
