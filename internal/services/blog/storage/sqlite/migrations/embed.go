package migrations

import "embed"

// FS contains embedded SQLite migrations for blog post storage.
//
//go:embed *.sql
var FS embed.FS
