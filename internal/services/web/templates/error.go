package templates

import (
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/manishyadav/portfolio/internal/services/web/routepath"
)

const (
	errorTitleNotFoundKey   = "web.error.not_found.title"
	errorTitleServerErrKey  = "web.error.server.title"
	errorMessageNotFoundKey = "web.error.not_found.message"
	errorMessageServerKey   = "web.error.server.message"
	errorBackHomeKey        = "web.error.back_home"
)

// ErrorPageTitle returns the browser page title for error pages.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, errorTitleNotFoundKey)
	}
	return T(loc, errorTitleServerErrKey)
}

// ErrorState renders the error body. A non-empty detail replaces the
// generic message.
func ErrorState(statusCode int, detail string, loc Localizer) templ.Component {
	status := normalizeErrorStatus(statusCode)
	return component(func(h *htmlWriter) {
		h.open("section", "class", "error-state", "data-status", strconv.Itoa(status))
		h.element("p", strconv.Itoa(status), "class", "error-code")
		h.element("h1", ErrorPageTitle(status, loc))
		message := detail
		if message == "" {
			message = errorMessage(status, loc)
		}
		h.element("p", message, "class", "error-message")
		h.link(routepath.Root, T(loc, errorBackHomeKey), "class", "button")
		h.close("section")
	})
}

func errorMessage(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, errorMessageNotFoundKey)
	}
	return T(loc, errorMessageServerKey)
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
