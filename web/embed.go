// Package web embeds the HTML templates and static assets served by the
// application in release mode.
package web

import "embed"

// EmbeddedFS contains the templates/ and static/ directory trees.
//
//go:embed templates static
var EmbeddedFS embed.FS
