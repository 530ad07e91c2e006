// Package web holds the embedded browser client.
package web

import "embed"

//go:embed static
var StaticFS embed.FS
