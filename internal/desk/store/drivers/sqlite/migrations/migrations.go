// Package migrations embeds the state-store schema migrations so the client
// binary is self-contained.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
