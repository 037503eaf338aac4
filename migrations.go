package launcher

import "embed"

// Migrations holds the goose SQL migrations of the domains schema.
//
//go:embed migrations/*.sql
var Migrations embed.FS
