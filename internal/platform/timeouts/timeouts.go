// Package timeouts holds the durations that bound server, storage and
// telemetry lifecycles.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// StorageOpen caps the time spent connecting to the post store at startup.
const StorageOpen = 10 * time.Second

// TelemetryShutdown bounds flushing pending spans when a command exits.
const TelemetryShutdown = 5 * time.Second
