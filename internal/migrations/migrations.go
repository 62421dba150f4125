// Package migrations embeds the goose SQL migrations for the blog schema.
package migrations

import "embed"

// Migrations holds the embedded SQL migration files, applied in order by
// goose at startup or via the server's -migrate flag.
//
//go:embed *.sql
var Migrations embed.FS
