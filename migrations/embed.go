// Package migrations embeds the catalog schema and seed data.
package migrations

import "embed"

// FS holds the .sql files, applied in lexicographic order.
//
//go:embed *.sql
var FS embed.FS
