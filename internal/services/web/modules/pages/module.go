// Package pages serves the fixed portfolio pages.
package pages

import (
	"github.com/manishyadav/portfolio/internal/platform/branding"
	module "github.com/manishyadav/portfolio/internal/services/web/module"
	"github.com/manishyadav/portfolio/internal/services/web/platform/modulehandler"
)

// Module provides the about, experience, projects, contact and legacy home
// pages.
type Module struct {
	owner branding.Profile
	base  modulehandler.Base
}

// New returns a pages module presenting owner.
func New(owner branding.Profile, base modulehandler.Base) Module {
	return Module{owner: owner, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "pages" }

// Mount wires static page handlers.
func (m Module) Mount() (module.Mount, error) {
	router := module.NewRouter()
	registerRoutes(router, newHandlers(newService(m.owner), m.base))
	return router.Mount(), nil
}
