package pages

import (
	"net/http"

	module "github.com/manishyadav/portfolio/internal/services/web/module"
	"github.com/manishyadav/portfolio/internal/services/web/routepath"
)

func registerRoutes(router *module.Router, h handlers) {
	if router == nil {
		return
	}
	router.HandleFunc(http.MethodGet, routepath.About, h.handleAbout)
	router.HandleFunc(http.MethodGet, routepath.Experience, h.handleExperience)
	router.HandleFunc(http.MethodGet, routepath.Projects, h.handleProjects)
	router.HandleFunc(http.MethodGet, routepath.Contact, h.handleContact)
	router.HandleFunc(http.MethodGet, routepath.OldHome, h.handleOldHome)
}
