// Package weberror renders shared error responses for web modules.
package weberror

import (
	"log"
	"net/http"
	"strings"

	webi18n "github.com/manishyadav/portfolio/internal/services/web/i18n"
	apperrors "github.com/manishyadav/portfolio/internal/services/web/platform/errors"
	"github.com/manishyadav/portfolio/internal/services/web/platform/flash"
	"github.com/manishyadav/portfolio/internal/services/web/platform/pagerender"
	webtemplates "github.com/manishyadav/portfolio/internal/services/web/templates"
)

// ShouldRenderErrorPage reports whether status should use the error page.
func ShouldRenderErrorPage(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message. Raw error
// text is never returned.
func PublicMessage(loc webtemplates.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return http.StatusText(statusCode)
}

// WriteErrorPage writes the error-state page. detail, when set, replaces the
// generic message for the status.
func WriteErrorPage(w http.ResponseWriter, r *http.Request, flashes flash.Store, statusCode int, detail string) {
	if w == nil {
		return
	}
	if !ShouldRenderErrorPage(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc := webi18n.Localizer()
	err := pagerender.Write(w, r, flashes, pagerender.Page{
		Title:      webtemplates.ErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Fragment:   webtemplates.ErrorState(statusCode, detail, loc),
	})
	if err != nil {
		log.Printf("render error page status=%d: %v", statusCode, err)
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError writes a localized error response for err. Not-found and
// server failures get the error page; client errors get plain text.
func WriteModuleError(w http.ResponseWriter, r *http.Request, flashes flash.Store, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	loc := webi18n.Localizer()
	if ShouldRenderErrorPage(statusCode) {
		detail := ""
		if apperrors.LocalizationKey(err) != "" {
			detail = PublicMessage(loc, err)
		}
		WriteErrorPage(w, r, flashes, statusCode, detail)
		return
	}
	http.Error(w, PublicMessage(loc, err), statusCode)
}
