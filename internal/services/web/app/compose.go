package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/manishyadav/portfolio/internal/services/web/module"
	"github.com/manishyadav/portfolio/internal/services/web/platform/requestmeta"
	"github.com/manishyadav/portfolio/internal/services/web/routepath"
)

// ComposeInput carries modules and shared composition contracts.
type ComposeInput struct {
	Modules []module.Module
	// NotFound serves every path no module claims.
	NotFound            http.Handler
	RequestSchemePolicy requestmeta.SchemePolicy
}

// Compose builds the root mux from modules. Each claimed path is registered
// without a method so the module decides between a match and 405.
func Compose(input ComposeInput) (*http.ServeMux, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)
	wrap := rejectCrossOriginMutations(input.RequestSchemePolicy)

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, err := resolveMount(feature)
		if err != nil {
			return nil, err
		}
		handler := wrap(mount.Handler)
		for _, path := range mount.Paths {
			if previous, ok := seen[path]; ok {
				return nil, fmt.Errorf("module %q duplicates path %q owned by module %q", feature.ID(), path, previous)
			}
			seen[path] = feature.ID()
			root.Handle(path, handler)
		}
	}

	notFound := input.NotFound
	if notFound == nil {
		notFound = http.NotFoundHandler()
	}
	if _, ok := seen[routepath.Root]; !ok {
		root.Handle(routepath.Root, notFound)
	}
	return root, nil
}

func resolveMount(feature module.Module) (module.Mount, error) {
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if mount.Handler == nil {
		return module.Mount{}, fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	if len(mount.Paths) == 0 {
		return module.Mount{}, fmt.Errorf("mount module %q: at least one path is required", feature.ID())
	}
	for _, path := range mount.Paths {
		if err := validatePath(path); err != nil {
			return module.Mount{}, fmt.Errorf("mount module %q has invalid path %q: %w", feature.ID(), path, err)
		}
	}
	return mount, nil
}

func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("path is required")
	}
	if strings.TrimSpace(path) != path {
		return fmt.Errorf("path must not include surrounding whitespace")
	}
	if strings.ContainsAny(path, " \t") {
		return fmt.Errorf("path must not carry a method")
	}
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("path must begin with /")
	}
	return nil
}

// rejectCrossOriginMutations answers 403 to state-changing requests whose
// Origin or Referer names another site.
func rejectCrossOriginMutations(policy requestmeta.SchemePolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isMutationMethod(r) && requestmeta.IsCrossOrigin(r, policy) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isMutationMethod(r *http.Request) bool {
	if r == nil {
		return false
	}
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}
