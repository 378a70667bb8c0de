// Package assets embeds the static files compiled into the site binary.
package assets

import "embed"

// FS holds the stylesheets.
//
//go:embed *.css
var FS embed.FS
