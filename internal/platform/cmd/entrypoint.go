// Package cmd holds the startup plumbing shared by the portfolio commands.
package cmd

import (
	"context"
	"errors"
	"flag"
	"log"
	"strings"

	"github.com/manishyadav/portfolio/internal/platform/config"
	"github.com/manishyadav/portfolio/internal/platform/otel"
	"github.com/manishyadav/portfolio/internal/platform/timeouts"
)

// Service names used for telemetry resources and log lines.
const (
	ServiceSeed = "portfolio-seed"
	ServiceWeb  = "portfolio-web"
)

// ParseConfig loads an optional .env file, then fills cfg from the
// environment. Flags parsed afterwards take precedence.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags. A nil args slice parses nothing.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag set is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry installs the tracer provider for service, calls run and
// flushes pending spans before returning run's error.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	if run == nil {
		return errors.New("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), timeouts.TelemetryShutdown)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			log.Printf("%s: flush telemetry: %v", service, err)
		}
	}()
	return run(ctx)
}
