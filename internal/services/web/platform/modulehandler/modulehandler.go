// Package modulehandler provides a composable base for web module handlers.
//
// Modules share localization, page rendering, flash notices, and error
// writing. Handlers embed Base rather than duplicating that scaffold.
package modulehandler

import (
	"net/http"

	"github.com/a-h/templ"
	webi18n "github.com/manishyadav/portfolio/internal/services/web/i18n"
	"github.com/manishyadav/portfolio/internal/services/web/platform/flash"
	"github.com/manishyadav/portfolio/internal/services/web/platform/httpx"
	"github.com/manishyadav/portfolio/internal/services/web/platform/pagerender"
	"github.com/manishyadav/portfolio/internal/services/web/platform/weberror"
	webtemplates "github.com/manishyadav/portfolio/internal/services/web/templates"
)

// Base carries the shared request-scoped helpers used by module handlers.
type Base struct {
	flashes flash.Store
}

// NewBase builds a handler base around the flash cookie store.
func NewBase(flashes flash.Store) Base {
	return Base{flashes: flashes}
}

// Flashes returns the flash cookie store.
func (b Base) Flashes() flash.Store {
	return b.flashes
}

// PageLocalizer returns the localizer for building page text.
func (b Base) PageLocalizer(_ *http.Request) webtemplates.Localizer {
	return webi18n.Localizer()
}

// Notice builds a localized inline notice for the current request.
func (b Base) Notice(r *http.Request, kind webtemplates.NoticeKind, key string) webtemplates.Notice {
	return webtemplates.Notice{Kind: kind, Message: webtemplates.T(b.PageLocalizer(r), key)}
}

// WritePage renders a full module page (HTMX-aware) with the given title,
// status, inline notices, and content fragment.
func (b Base) WritePage(
	w http.ResponseWriter,
	r *http.Request,
	title string,
	statusCode int,
	notices []webtemplates.Notice,
	fragment templ.Component,
) {
	if err := pagerender.Write(w, r, b.flashes, pagerender.Page{
		Title:      title,
		StatusCode: statusCode,
		Notices:    notices,
		Fragment:   fragment,
	}); err != nil {
		b.WriteError(w, r, err)
	}
}

// RedirectWithNotice stores notice for the next page view and redirects.
func (b Base) RedirectWithNotice(w http.ResponseWriter, r *http.Request, location string, notice flash.Notice) {
	b.flashes.Write(w, r, notice)
	httpx.WriteRedirect(w, r, location)
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, b.flashes, err)
}

