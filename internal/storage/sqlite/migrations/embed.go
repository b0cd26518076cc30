package migrations

import "embed"

// FS contains the embedded SQLite migrations for the key-value store.
//
//go:embed *.sql
var FS embed.FS
