// Package blog serves the landing page and the blog routes.
package blog

import (
	"context"

	"github.com/manishyadav/portfolio/internal/services/blog/storage"
	module "github.com/manishyadav/portfolio/internal/services/web/module"
	"github.com/manishyadav/portfolio/internal/services/web/platform/modulehandler"
)

// PostStore is the narrow storage surface the blog module reads and writes.
type PostStore interface {
	InsertPost(ctx context.Context, post storage.NewPost) (storage.Post, error)
	ListRecentPosts(ctx context.Context, limit int) ([]storage.Post, error)
	ListPosts(ctx context.Context) ([]storage.Post, error)
	GetPost(ctx context.Context, id int64) (storage.Post, error)
}

// Module provides the landing page and blog routes.
type Module struct {
	store PostStore
	base  modulehandler.Base
}

// New returns a blog module backed by store.
func New(store PostStore, base modulehandler.Base) Module {
	return Module{store: store, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "blog" }

// Mount wires blog route handlers.
func (m Module) Mount() (module.Mount, error) {
	router := module.NewRouter()
	registerRoutes(router, newHandlers(newService(m.store), m.base))
	return router.Mount(), nil
}
