// Package migrations holds the versioned SQL schema for the customers store.
// Files follow golang-migrate naming: NNNNNN_name.up.sql / NNNNNN_name.down.sql.
package migrations

import "embed"

// FS contains every migration file, compiled into the binaries
//
//go:embed *.sql
var FS embed.FS
