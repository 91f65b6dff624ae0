// Package naamkaran exposes repository-level assets embedded into the binary.
package naamkaran

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
