// Package seed parses seed command configuration and inserts the sample
// blog posts.
package seed

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	entrypoint "github.com/manishyadav/portfolio/internal/platform/cmd"
	blogseed "github.com/manishyadav/portfolio/internal/services/blog/seed"
	"github.com/manishyadav/portfolio/internal/services/blog/storage/backend"
)

// Config holds seed command configuration.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL" envDefault:"sqlite://data/portfolio.db"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DatabaseURL, "database-url", cfg.DatabaseURL, "Post store URL (postgres://..., sqlite://path or a file path)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run inserts every embedded sample post whose title is not stored yet and
// reports the counts to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSeed, func(ctx context.Context) error {
		samples, err := blogseed.Samples()
		if err != nil {
			return fmt.Errorf("load samples: %w", err)
		}
		store, err := backend.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("open post store: %w", err)
		}
		defer store.Close()

		result, err := blogseed.Run(ctx, store, samples, time.Now())
		if err != nil {
			return fmt.Errorf("seed posts: %w", err)
		}
		fmt.Fprintf(out, "Seeded %d sample posts (%d already present)\n", result.Created, result.Skipped)
		return nil
	})
}
