// Package migrations embeds the SQLite schema migration files so the binary
// can migrate itself at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
