// Package hosting produces the files the static host serves next to the wasm
// binary, and a local server that behaves like that host.
package hosting

import (
	"os"
	"path/filepath"
	"time"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/pkg/errors"

	"github.com/vcrobe/supasite/assets"
	"github.com/vcrobe/supasite/config"
	"github.com/vcrobe/supasite/console"
	"github.com/vcrobe/supasite/style"
)

// Files the export writes besides the stylesheet.
const (
	IndexFile    = "index.html"
	NotFoundFile = "404.html"
	SitemapFile  = "sitemap.xml"
)

// Export writes index.html, 404.html, sitemap.xml and the scoped, minified
// stylesheet into outDir. The wasm binary and wasm_exec.js are built apart.
func Export(cfg *config.Config, outDir string, now time.Time) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	sheet, err := style.Load(assets.FS, cfg.Stylesheet)
	if err != nil {
		return err
	}
	css, err := Minify(sheet.CSS, api.LoaderCSS)
	if err != nil {
		return errors.Wrapf(err, "stylesheet %s", cfg.Stylesheet)
	}

	index, err := IndexHTML(cfg, sheet)
	if err != nil {
		return err
	}
	notFound, err := NotFoundHTML(cfg)
	if err != nil {
		return err
	}
	sitemap, err := SitemapXML(cfg, now)
	if err != nil {
		return err
	}

	files := map[string][]byte{
		IndexFile:      []byte(index),
		NotFoundFile:   []byte(notFound),
		SitemapFile:    sitemap,
		cfg.Stylesheet: []byte(css),
	}
	for name, data := range files {
		path := filepath.Join(outDir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return errors.WithStack(err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return errors.Wrapf(err, "write %s", path)
		}
		console.Log("wrote", path)
	}
	return nil
}
