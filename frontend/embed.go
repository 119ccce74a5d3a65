// Package frontend embeds the built dashboard page served by the HTTP
// controller's catch-all route.
package frontend

import "embed"

//go:embed all:dist
var StaticFiles embed.FS
