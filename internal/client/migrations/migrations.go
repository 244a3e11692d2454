// Package migrations embeds the SQL migrations for the local share mirror.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
