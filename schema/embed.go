// Package schema provides embedded JSON schemas for polyroot configuration and reference cases.
package schema

import "embed"

// FS contains the embedded schema files.
//
//go:embed *.schema.json
var FS embed.FS
