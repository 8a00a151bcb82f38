// Package web parses web command configuration and runs the site.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"strings"

	entrypoint "github.com/manishyadav/portfolio/internal/platform/cmd"
	"github.com/manishyadav/portfolio/internal/services/blog/storage/backend"
	"github.com/manishyadav/portfolio/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string `env:"PORTFOLIO_HTTP_ADDR" envDefault:":8000"`
	Port                string `env:"PORT"`
	DatabaseURL         string `env:"DATABASE_URL" envDefault:"sqlite://data/portfolio.db"`
	TrustForwardedProto bool   `env:"PORTFOLIO_TRUST_FORWARDED_PROTO" envDefault:"false"`
}

// ParseConfig parses environment and flags into Config. A PORT variable
// replaces the port of the configured address, as hosting platforms expect.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if port := strings.TrimSpace(cfg.Port); port != "" {
		host, _, err := net.SplitHostPort(cfg.HTTPAddr)
		if err != nil {
			host = ""
		}
		cfg.HTTPAddr = net.JoinHostPort(host, port)
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DatabaseURL, "database-url", cfg.DatabaseURL, "Post store URL (postgres://..., sqlite://path or a file path)")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto from a fronting proxy")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run opens the post store and serves the site until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		store, err := backend.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("open post store: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("close post store: %v", err)
			}
		}()

		server, err := web.NewServer(web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			Store:               store,
			TrustForwardedProto: cfg.TrustForwardedProto,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
