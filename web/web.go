// Package web holds the HTML pages served by the game server.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static/*.html
var static embed.FS

// Pages returns the embedded page files, rooted at the static directory.
func Pages() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
