package main

import (
	"embed"
	"io/fs"
)

//go:embed static/*
var embedded embed.FS

// staticFiles is the stylesheet and script tree served under /static.
var staticFiles = mustSub(embedded, "static")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
