package grocer

import "embed"

// Migrations contains the embedded goose migration files for the PostgreSQL
// schema.
//
//go:embed migrations/*.sql
var Migrations embed.FS
