// Package migrations embeds the PostgreSQL schema migration files so the
// binary can migrate itself at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
