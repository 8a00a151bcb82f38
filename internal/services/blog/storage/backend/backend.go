// Package backend opens the post store named by a DATABASE_URL value.
package backend

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/manishyadav/portfolio/internal/platform/timeouts"
	"github.com/manishyadav/portfolio/internal/services/blog/storage"
	"github.com/manishyadav/portfolio/internal/services/blog/storage/postgres"
	"github.com/manishyadav/portfolio/internal/services/blog/storage/sqlite"
)

// Driver names a supported storage engine.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Target is a resolved storage location.
type Target struct {
	Driver Driver
	// DSN is a file path for sqlite and a connection URL for postgres.
	DSN string
}

// Store is a post store that owns a connection handle.
type Store interface {
	storage.PostStore
	io.Closer
}

// Resolve maps a database URL to a storage target.
//
// Accepted forms:
//
//	postgres://... or postgresql://...  -> postgres
//	sqlite:////abs/path.db               -> sqlite at /abs/path.db
//	sqlite:///rel/path.db                -> sqlite at rel/path.db
//	sqlite://rel/path.db                 -> sqlite at rel/path.db
//	path/to/file.db                      -> sqlite at that path
func Resolve(databaseURL string) (Target, error) {
	value := strings.TrimSpace(databaseURL)
	if value == "" {
		return Target{}, fmt.Errorf("database url is required")
	}
	lower := strings.ToLower(value)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return Target{Driver: DriverPostgres, DSN: value}, nil
	case strings.HasPrefix(lower, "sqlite://"):
		path := value[len("sqlite://"):]
		// sqlite:///x is relative and sqlite:////x is absolute.
		if strings.HasPrefix(path, "/") {
			path = path[1:]
		}
		if i := strings.IndexByte(path, '?'); i >= 0 {
			path = path[:i]
		}
		if strings.TrimSpace(path) == "" {
			return Target{}, fmt.Errorf("sqlite database url %q has no path", value)
		}
		return Target{Driver: DriverSQLite, DSN: path}, nil
	case strings.Contains(value, "://"):
		scheme := value[:strings.Index(value, "://")]
		return Target{}, fmt.Errorf("unsupported database scheme %q", scheme)
	default:
		return Target{Driver: DriverSQLite, DSN: value}, nil
	}
}

// Open resolves databaseURL and opens the matching store. Connecting and
// migrating are bounded by timeouts.StorageOpen.
func Open(ctx context.Context, databaseURL string) (Store, error) {
	target, err := Resolve(databaseURL)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	openCtx, cancel := context.WithTimeout(ctx, timeouts.StorageOpen)
	defer cancel()

	switch target.Driver {
	case DriverPostgres:
		store, err := postgres.Open(openCtx, target.DSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		return store, nil
	default:
		store, err := sqlite.Open(openCtx, target.DSN)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return store, nil
	}
}
