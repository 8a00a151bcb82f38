package modules

import (
	"github.com/manishyadav/portfolio/internal/services/web/modules/blog"
	"github.com/manishyadav/portfolio/internal/services/web/modules/pages"
	"github.com/manishyadav/portfolio/internal/services/web/platform/modulehandler"
)

// DefaultModules returns the site modules in mount order.
func DefaultModules(deps Dependencies) []Module {
	base := modulehandler.NewBase(deps.Flashes)
	return []Module{
		blog.New(deps.Store, base),
		pages.New(deps.Owner, base),
	}
}
