// Package migrations содержит goose миграции схемы, встроенные в бинарь.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
