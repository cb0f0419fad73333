// Package web embeds the admin panel page and its assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed index.html static
var files embed.FS

// Index returns the panel page.
func Index() []byte {
	b, err := files.ReadFile("index.html")
	if err != nil {
		panic("web: index.html missing from embed: " + err.Error())
	}
	return b
}

// Static returns the asset tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic("web: static dir missing from embed: " + err.Error())
	}
	return sub
}
