// Package migrations embeds the Postgres schema for the food guide so goose
// can apply it at startup and in integration tests.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
