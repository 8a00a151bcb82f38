// Package modules defines web module registry helpers.
package modules

import (
	"github.com/manishyadav/portfolio/internal/platform/branding"
	module "github.com/manishyadav/portfolio/internal/services/web/module"
	"github.com/manishyadav/portfolio/internal/services/web/modules/blog"
	"github.com/manishyadav/portfolio/internal/services/web/platform/flash"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries what the registry needs to compose the site modules.
type Dependencies struct {
	Store   blog.PostStore
	Owner   branding.Profile
	Flashes flash.Store
}
