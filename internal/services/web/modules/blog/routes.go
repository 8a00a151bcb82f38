package blog

import (
	"net/http"

	module "github.com/manishyadav/portfolio/internal/services/web/module"
	"github.com/manishyadav/portfolio/internal/services/web/routepath"
)

func registerRoutes(router *module.Router, h handlers) {
	if router == nil {
		return
	}
	router.HandleFunc(http.MethodGet, routepath.RootExact, h.handleHome)
	router.HandleFunc(http.MethodGet, routepath.Blog, h.handleIndex)
	router.HandleFunc(http.MethodGet, routepath.BlogNew, h.handleNewForm)
	router.HandleFunc(http.MethodPost, routepath.BlogNew, h.handleCreate)
	router.HandleFunc(http.MethodGet, routepath.BlogPost, h.handlePost)
}
