package migrations

import "embed"

// FS contains embedded Postgres migrations for blog post storage.
//
//go:embed *.sql
var FS embed.FS
