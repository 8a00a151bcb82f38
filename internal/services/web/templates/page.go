package templates

import (
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/manishyadav/portfolio/internal/platform/branding"
	"github.com/manishyadav/portfolio/internal/services/web/routepath"
)

// NoticeKind mirrors flash kinds for presentation.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeInfo    NoticeKind = "info"
	NoticeWarning NoticeKind = "warning"
	NoticeError   NoticeKind = "error"
)

// Notice is one transient message rendered above the page content.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang        string
	Loc         Localizer
	Title       string
	CurrentPath string
	Notices     []Notice
	// Now stamps the footer year; zero means time.Now.
	Now time.Time
}

type navItem struct {
	path string
	key  string
}

var navItems = []navItem{
	{path: routepath.Root, key: "web.nav.home"},
	{path: routepath.About, key: "web.nav.about"},
	{path: routepath.Experience, key: "web.nav.experience"},
	{path: routepath.Projects, key: "web.nav.projects"},
	{path: routepath.Blog, key: "web.nav.blog"},
	{path: routepath.Contact, key: "web.nav.contact"},
}

// PageTitle joins a page title with the site name.
func PageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return branding.AppName
	}
	return title + " | " + branding.AppName
}

func isActiveNav(currentPath string, itemPath string) bool {
	if itemPath == routepath.Root {
		return currentPath == routepath.Root
	}
	return currentPath == itemPath || strings.HasPrefix(currentPath, itemPath+"/")
}

// Layout renders the full document shell around the children component.
func Layout(page PageContext) templ.Component {
	return component(func(h *htmlWriter) {
		lang := strings.TrimSpace(page.Lang)
		if lang == "" {
			lang = "en"
		}
		now := page.Now
		if now.IsZero() {
			now = time.Now()
		}

		h.raw("<!doctype html>")
		h.open("html", "lang", lang)
		h.raw("<head>")
		h.raw(`<meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.open("meta", "name", "description", "content", branding.Owner.Description)
		h.element("title", PageTitle(page.Title))
		h.open("link", "rel", "stylesheet", "href", routepath.StaticPrefix+"style.css")
		h.raw("</head><body>")

		h.raw(`<header class="site-header"><nav class="site-nav">`)
		h.link(routepath.Root, branding.Owner.Name, "class", "site-brand")
		h.open("button", "type", "button", "class", "nav-toggle", "aria-label", T(page.Loc, "web.nav.toggle"), "data-nav-toggle", "")
		h.raw(`<span></span><span></span><span></span></button>`)
		h.raw(`<ul class="nav-links">`)
		for _, item := range navItems {
			attrs := []string{}
			if isActiveNav(page.CurrentPath, item.path) {
				attrs = append(attrs, "class", "active", "aria-current", "page")
			}
			h.raw("<li>")
			h.link(item.path, T(page.Loc, item.key), attrs...)
			h.raw("</li>")
		}
		h.raw("</ul></nav></header>")

		h.render(NoticeList(page.Notices, page.Loc))

		h.raw(`<main class="site-main">`)
		h.children()
		h.raw("</main>")

		h.raw(`<footer class="site-footer"><p>`)
		h.text(T(page.Loc, "web.footer.copyright", strconv.Itoa(now.Year()), branding.Owner.Name))
		h.raw(`</p><p class="footer-links">`)
		h.link("mailto:"+branding.Owner.Email, branding.Owner.Email)
		h.link(branding.Owner.LinkedIn, T(page.Loc, "web.contact.linkedin"), "rel", "noopener", "target", "_blank")
		h.link(branding.Owner.GitHub, T(page.Loc, "web.contact.github"), "rel", "noopener", "target", "_blank")
		h.raw("</p></footer>")
		h.open("script", "src", routepath.StaticPrefix+"script.js", "defer", "")
		h.raw("</script></body></html>")
	})
}

// NoticeList renders dismissible notices; it renders nothing when empty.
func NoticeList(notices []Notice, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		if len(notices) == 0 {
			return
		}
		h.raw(`<div class="notices" role="status">`)
		for _, notice := range notices {
			message := strings.TrimSpace(notice.Message)
			if message == "" {
				continue
			}
			kind := notice.Kind
			if kind == "" {
				kind = NoticeInfo
			}
			h.open("div", "class", "notice notice-"+string(kind), "data-notice-kind", string(kind))
			h.element("span", message, "class", "notice-message")
			h.element("button", "×", "type", "button", "class", "notice-dismiss", "aria-label", T(loc, "web.notice.dismiss"), "data-notice-dismiss", "")
			h.close("div")
		}
		h.close("div")
	})
}
