package view

import (
	"embed"
	"io/fs"
)

//go:embed static/*
var staticFS embed.FS

// StaticFS holds the page script and stylesheet, rooted at static/.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("view: embedded static filesystem: " + err.Error())
	}
	return sub
}
