// Package assets embeds the default view definitions and message bundles.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed views locales
var files embed.FS

// Views returns the embedded view definitions rooted at the views directory.
func Views() fs.FS {
	sub, err := fs.Sub(files, "views")
	if err != nil {
		panic(err)
	}
	return sub
}

// Locales returns the embedded message bundles rooted at the locales directory.
func Locales() fs.FS {
	sub, err := fs.Sub(files, "locales")
	if err != nil {
		panic(err)
	}
	return sub
}
