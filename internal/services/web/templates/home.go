package templates

import (
	"github.com/a-h/templ"
	"github.com/manishyadav/portfolio/internal/platform/branding"
	"github.com/manishyadav/portfolio/internal/services/web/routepath"
)

// HomeView is the landing page state.
type HomeView struct {
	Owner       branding.Profile
	RecentPosts []PostSummary
}

// HomeFragment renders the hero section and the recent posts strip.
func HomeFragment(view HomeView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section class="hero">`)
		h.element("h1", T(loc, "web.home.greeting", view.Owner.Name))
		h.element("p", view.Owner.Role, "class", "hero-role")
		h.element("p", view.Owner.Description, "class", "hero-description")
		h.raw(`<div class="hero-actions">`)
		h.link(routepath.Projects, T(loc, "web.home.cta_projects"), "class", "button")
		h.link(routepath.Contact, T(loc, "web.home.cta_contact"), "class", "button button-secondary")
		h.raw(`</div></section>`)

		h.raw(`<section class="recent-posts">`)
		h.element("h2", T(loc, "web.home.recent_posts"))
		if len(view.RecentPosts) == 0 {
			h.element("p", T(loc, "web.home.no_posts"), "class", "empty-state")
		} else {
			h.render(postCards(view.RecentPosts, loc))
		}
		h.link(routepath.Blog, T(loc, "web.home.view_all_posts"), "class", "view-all")
		h.raw(`</section>`)
	})
}
