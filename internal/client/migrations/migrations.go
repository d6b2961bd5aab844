// Package migrations embeds the SQL migrations for the console's local
// database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
