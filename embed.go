// Package gridscan is the module root. It only carries embedded assets that
// need to be addressable from multiple subcommands.
package gridscan

import "embed"

// Migrations holds the goose SQL migrations applied by the migrate subcommand
// and by integration tests.
//
//go:embed migrations/*.sql
var Migrations embed.FS
