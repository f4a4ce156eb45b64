package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ExportSite writes index.html and the static assets under dir so the page can
// be hosted without the server. It returns the written paths.
func ExportSite(dir string, content Content) ([]string, error) {
	if err := content.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "static"), 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	var buf bytes.Buffer
	if err := RenderPage(&buf, content); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}

	index := filepath.Join(dir, "index.html")
	if err := os.WriteFile(index, buf.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", index, err)
	}
	written := []string{index}

	err := fs.WalkDir(staticFiles, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(staticFiles, path)
		if err != nil {
			return err
		}
		out := filepath.Join(dir, "static", filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(out, data, 0644); err != nil {
			return err
		}
		written = append(written, out)
		return nil
	})
	if err != nil {
		return written, fmt.Errorf("export static assets: %w", err)
	}
	return written, nil
}
