package migrations

import "embed"

// Files holds the forward-only schema migrations for the tracker database.
//
//go:embed *.sql
var Files embed.FS
