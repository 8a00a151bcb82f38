package templates

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/manishyadav/portfolio/internal/platform/branding"
	"github.com/manishyadav/portfolio/internal/services/web/routepath"
)

// AboutView is the about page state.
type AboutView struct {
	Owner      branding.Profile
	Paragraphs []string
	Skills     []SkillGroup
}

// SkillGroup lists related skills under one heading.
type SkillGroup struct {
	Name   string
	Skills []string
}

// ExperienceView is the experience page state.
type ExperienceView struct {
	Roles []Role
}

// Role is one position held.
type Role struct {
	Title      string
	Company    string
	Period     string
	Highlights []string
}

// ProjectsView is the projects page state.
type ProjectsView struct {
	Projects []Project
}

// Project is one portfolio entry.
type Project struct {
	Name        string
	Summary     string
	Stack       []string
	Outcome     string
	RelatedPost string
}

// ContactView is the contact page state.
type ContactView struct {
	Owner branding.Profile
}

// AboutFragment renders the about page.
func AboutFragment(view AboutView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section class="about">`)
		h.element("h1", T(loc, "web.about.heading"))
		h.element("p", view.Owner.Role, "class", "page-subtitle")
		h.element("p", T(loc, "web.about.location", view.Owner.Location), "class", "about-location")
		for _, paragraph := range view.Paragraphs {
			h.element("p", paragraph)
		}
		for _, group := range view.Skills {
			h.raw(`<div class="skill-group">`)
			h.element("h2", group.Name)
			h.render(tagList(group.Skills))
			h.raw(`</div>`)
		}
		h.raw(`</section>`)
	})
}

// ExperienceFragment renders the experience timeline.
func ExperienceFragment(view ExperienceView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section class="experience">`)
		h.element("h1", T(loc, "web.experience.heading"))
		h.raw(`<ol class="timeline">`)
		for _, role := range view.Roles {
			h.raw(`<li class="timeline-item">`)
			h.element("h2", role.Title)
			h.element("p", role.Company, "class", "timeline-company")
			h.element("p", role.Period, "class", "timeline-period")
			h.raw("<ul>")
			for _, highlight := range role.Highlights {
				h.element("li", highlight)
			}
			h.raw("</ul></li>")
		}
		h.raw(`</ol></section>`)
	})
}

// ProjectsFragment renders project cards.
func ProjectsFragment(view ProjectsView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section class="projects">`)
		h.element("h1", T(loc, "web.projects.heading"))
		h.raw(`<div class="project-grid">`)
		for _, project := range view.Projects {
			h.raw(`<article class="project-card">`)
			h.element("h2", project.Name)
			h.element("p", project.Summary)
			if project.Outcome != "" {
				h.element("p", project.Outcome, "class", "project-outcome")
			}
			h.render(tagList(project.Stack))
			if project.RelatedPost != "" {
				h.link(project.RelatedPost, T(loc, "web.blog.read_more"), "class", "read-more")
			}
			h.raw(`</article>`)
		}
		h.raw(`</div></section>`)
	})
}

// ContactFragment renders the contact details.
func ContactFragment(view ContactView, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section class="contact">`)
		h.element("h1", T(loc, "web.contact.heading"))
		h.element("p", T(loc, "web.contact.intro"))
		h.raw(`<dl class="contact-list">`)
		h.element("dt", T(loc, "web.contact.email"))
		h.raw("<dd>")
		h.link("mailto:"+view.Owner.Email, view.Owner.Email)
		h.raw("</dd>")
		h.element("dt", T(loc, "web.contact.phone"))
		h.raw("<dd>")
		h.link("tel:"+strings.ReplaceAll(view.Owner.Phone, " ", ""), view.Owner.Phone)
		h.raw("</dd>")
		h.element("dt", T(loc, "web.contact.linkedin"))
		h.raw("<dd>")
		h.link(view.Owner.LinkedIn, view.Owner.LinkedIn, "rel", "noopener", "target", "_blank")
		h.raw("</dd>")
		h.element("dt", T(loc, "web.contact.github"))
		h.raw("<dd>")
		h.link(view.Owner.GitHub, view.Owner.GitHub, "rel", "noopener", "target", "_blank")
		h.raw("</dd>")
		h.element("dt", T(loc, "web.contact.location"))
		h.element("dd", view.Owner.Location)
		h.raw(`</dl></section>`)
	})
}

// OldHomeFragment renders the legacy single-section landing page.
func OldHomeFragment(owner branding.Profile, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section class="hero hero-legacy">`)
		h.element("h1", owner.Name)
		h.element("p", owner.Role, "class", "hero-role")
		h.element("p", owner.Description, "class", "hero-description")
		h.raw(`<div class="hero-actions">`)
		h.link(routepath.About, T(loc, "web.nav.about"), "class", "button")
		h.link(routepath.Blog, T(loc, "web.nav.blog"), "class", "button button-secondary")
		h.raw(`</div></section>`)
	})
}

func tagList(tags []string) templ.Component {
	return component(func(h *htmlWriter) {
		if len(tags) == 0 {
			return
		}
		h.raw(`<ul class="tags">`)
		for _, tag := range tags {
			h.element("li", tag)
		}
		h.raw(`</ul>`)
	})
}
