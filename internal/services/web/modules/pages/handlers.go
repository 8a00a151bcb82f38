package pages

import (
	"net/http"

	"github.com/manishyadav/portfolio/internal/services/web/platform/modulehandler"
	webtemplates "github.com/manishyadav/portfolio/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleAbout(w http.ResponseWriter, r *http.Request) {
	loc := h.PageLocalizer(r)
	h.WritePage(w, r, webtemplates.T(loc, "web.about.title"), http.StatusOK, nil, webtemplates.AboutFragment(h.service.about(), loc))
}

func (h handlers) handleExperience(w http.ResponseWriter, r *http.Request) {
	loc := h.PageLocalizer(r)
	h.WritePage(w, r, webtemplates.T(loc, "web.experience.title"), http.StatusOK, nil, webtemplates.ExperienceFragment(h.service.experience(), loc))
}

func (h handlers) handleProjects(w http.ResponseWriter, r *http.Request) {
	loc := h.PageLocalizer(r)
	h.WritePage(w, r, webtemplates.T(loc, "web.projects.title"), http.StatusOK, nil, webtemplates.ProjectsFragment(h.service.projects(), loc))
}

func (h handlers) handleContact(w http.ResponseWriter, r *http.Request) {
	loc := h.PageLocalizer(r)
	h.WritePage(w, r, webtemplates.T(loc, "web.contact.title"), http.StatusOK, nil, webtemplates.ContactFragment(h.service.contact(), loc))
}

func (h handlers) handleOldHome(w http.ResponseWriter, r *http.Request) {
	loc := h.PageLocalizer(r)
	h.WritePage(w, r, webtemplates.T(loc, "web.old_home.title"), http.StatusOK, nil, webtemplates.OldHomeFragment(h.service.owner, loc))
}
