package module

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/madmikeross/graphengine/pkg/graphstore"
	"github.com/madmikeross/graphengine/pkg/handlers"

	"github.com/go-chi/chi/v5"
)

// BaseModule provides common functionality shared by every module: a handle on
// the graph store, a health endpoint, and a stop channel for background tasks.
type BaseModule struct {
	name       string
	graphStore *graphstore.Store
	stopCh     chan struct{}
	stopOnce   chan struct{}
}

func NewBaseModule(name string, store *graphstore.Store) *BaseModule {
	return &BaseModule{
		name:       name,
		graphStore: store,
		stopCh:     make(chan struct{}),
		stopOnce:   make(chan struct{}),
	}
}

func (b *BaseModule) Name() string {
	return b.name
}

func (b *BaseModule) GraphStore() *graphstore.Store {
	return b.graphStore
}

func (b *BaseModule) Stop() {
	select {
	case <-b.stopOnce:
		return
	default:
		close(b.stopOnce)
		close(b.stopCh)
		slog.Info("module stopped", "module", b.name)
	}
}

// StartBackgroundTasks provides a default no-op ticker loop; modules that need
// periodic work embed BaseModule and override this method.
func (b *BaseModule) StartBackgroundTasks(ctx context.Context) {
	slog.Info("starting background tasks", "module", b.name)

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-b.stopCh:
			return
		case <-ticker.C:
		}
	}
}

func (b *BaseModule) HealthHandler() http.HandlerFunc {
	return handlers.HealthHandler(b.name)
}

func (b *BaseModule) RegisterHealthRoute(r chi.Router) {
	r.Get("/health", b.HealthHandler())
}
