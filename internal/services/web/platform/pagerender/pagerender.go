// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	webi18n "github.com/manishyadav/portfolio/internal/services/web/i18n"
	"github.com/manishyadav/portfolio/internal/services/web/platform/flash"
	"github.com/manishyadav/portfolio/internal/services/web/platform/httpx"
	webtemplates "github.com/manishyadav/portfolio/internal/services/web/templates"
)

// Page describes a module page response.
type Page struct {
	Title      string
	StatusCode int
	Notices    []webtemplates.Notice
	Fragment   templ.Component
}

// Write renders page inside the site layout. A pending flash notice is
// consumed and shown ahead of the page's own notices.
//
// The page renders into a buffer first so a template failure never leaves a
// half-written 200 response.
func Write(w http.ResponseWriter, r *http.Request, flashes flash.Store, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = templ.NopComponent
	}

	loc := webi18n.Localizer()
	notices := page.Notices
	if toast, ok := flashNotice(w, r, flashes, loc); ok {
		notices = append([]webtemplates.Notice{toast}, notices...)
	}

	currentPath := ""
	if r != nil && r.URL != nil {
		currentPath = r.URL.Path
	}
	layout := webtemplates.Layout(webtemplates.PageContext{
		Lang:        webi18n.Default().String(),
		Loc:         loc,
		Title:       page.Title,
		CurrentPath: currentPath,
		Notices:     notices,
	})
	var buf bytes.Buffer
	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)
	if err := layout.Render(ctx, &buf); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

func flashNotice(w http.ResponseWriter, r *http.Request, flashes flash.Store, loc webtemplates.Localizer) (webtemplates.Notice, bool) {
	notice, ok := flashes.ReadAndClear(w, r)
	if !ok {
		return webtemplates.Notice{}, false
	}
	message := strings.TrimSpace(webtemplates.T(loc, notice.Key))
	if message == "" {
		message = notice.Key
	}
	return webtemplates.Notice{Kind: webtemplates.NoticeKind(notice.Kind), Message: message}, true
}
