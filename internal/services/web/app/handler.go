package app

import (
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/manishyadav/portfolio/internal/services/web/modules"
	"github.com/manishyadav/portfolio/internal/services/web/platform/flash"
	"github.com/manishyadav/portfolio/internal/services/web/platform/httpx"
	"github.com/manishyadav/portfolio/internal/services/web/platform/requestmeta"
	"github.com/manishyadav/portfolio/internal/services/web/platform/weberror"
	"github.com/manishyadav/portfolio/internal/services/web/routepath"
)

// Config captures the inputs for the web root handler.
type Config struct {
	Dependencies        modules.Dependencies
	Assets              fs.FS
	RequestSchemePolicy requestmeta.SchemePolicy
}

// BuildRootHandler composes the site modules, the health probe and the static
// assets behind the shared middleware chain.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	deps := cfg.Dependencies
	deps.Flashes = flash.Store{Policy: cfg.RequestSchemePolicy}

	root, err := Compose(ComposeInput{
		Modules:             modules.DefaultModules(deps),
		NotFound:            errorPage(deps.Flashes, http.StatusNotFound),
		RequestSchemePolicy: cfg.RequestSchemePolicy,
	})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}
	root.HandleFunc(http.MethodGet+" "+routepath.Health, func(w http.ResponseWriter, _ *http.Request) {
		_ = httpx.WriteText(w, http.StatusOK, "ok")
	})
	if cfg.Assets != nil {
		root.Handle(http.MethodGet+" "+routepath.StaticPrefix, staticFiles(cfg.Assets, errorPage(deps.Flashes, http.StatusNotFound)))
	}

	return httpx.Chain(root,
		httpx.RequestID(),
		httpx.SecurityHeaders(),
		httpx.Trace(),
		httpx.RecoverPanic(errorPage(deps.Flashes, http.StatusInternalServerError)),
	), nil
}

// staticFiles serves files from assets under the static prefix. Directory
// paths go to notFound so the asset tree is never listed.
func staticFiles(assets fs.FS, notFound http.Handler) http.Handler {
	files := http.StripPrefix(routepath.StaticPrefix, http.FileServerFS(assets))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			notFound.ServeHTTP(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}

func errorPage(flashes flash.Store, statusCode int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		weberror.WriteErrorPage(w, r, flashes, statusCode, "")
	})
}
