package hosting

import (
	"embed"
	"html/template"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/gobuffalo/plush"
	"github.com/pkg/errors"

	"github.com/vcrobe/supasite/config"
	"github.com/vcrobe/supasite/router"
	"github.com/vcrobe/supasite/style"
)

//go:embed templates/*.plush.html
var templates embed.FS

func renderTemplate(name string, ctx *plush.Context) (string, error) {
	src, err := templates.ReadFile("templates/" + name)
	if err != nil {
		return "", errors.WithStack(err)
	}
	t, err := plush.Parse(string(src))
	if err != nil {
		return "", errors.Wrapf(err, "parse %s", name)
	}
	out, err := t.Exec(ctx)
	if err != nil {
		return "", errors.Wrapf(err, "execute %s", name)
	}
	return out, nil
}

// script minifies a JavaScript snippet for inlining.
func script(src string) (template.HTML, error) {
	out, err := Minify(src, api.LoaderJS)
	if err != nil {
		return "", err
	}
	return template.HTML(out), nil
}

// mountID returns the element id a "#id" mount selector names.
func mountID(selector string) (string, error) {
	id := strings.TrimPrefix(selector, "#")
	if id == selector || id == "" || strings.ContainsAny(id, " .#[>:") {
		return "", errors.Errorf("mount selector %q is not an id selector", selector)
	}
	return id, nil
}

// IndexHTML renders the page the host serves at the site root. It restores a
// redirected deep link, links the scoped stylesheet and starts the wasm binary.
func IndexHTML(cfg *config.Config, sheet *style.Sheet) (string, error) {
	id, err := mountID(cfg.MountSelector)
	if err != nil {
		return "", err
	}
	restore, err := script(restoreJS)
	if err != nil {
		return "", err
	}
	loader, err := script(loaderJS(cfg.WasmPath))
	if err != nil {
		return "", err
	}

	ctx := plush.NewContext()
	ctx.Set("title", cfg.Title)
	ctx.Set("canonical", cfg.URL(router.Home.Path()))
	ctx.Set("restoreScript", restore)
	ctx.Set("stylesheet", "/"+strings.TrimPrefix(sheet.Path, "/"))
	ctx.Set("sheetClass", sheet.Class)
	ctx.Set("execJS", cfg.ExecJSPath)
	ctx.Set("loaderScript", loader)
	ctx.Set("mountID", id)
	return renderTemplate("index.plush.html", ctx)
}

// NotFoundHTML renders the host's fallback page, which redirects every
// unknown path into the site root's query string.
func NotFoundHTML(cfg *config.Config) (string, error) {
	redirect, err := script(redirectJS)
	if err != nil {
		return "", err
	}
	ctx := plush.NewContext()
	ctx.Set("title", cfg.Title)
	ctx.Set("redirectScript", redirect)
	return renderTemplate("404.plush.html", ctx)
}
