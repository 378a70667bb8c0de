package hosting

import (
	"strconv"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/pkg/errors"
)

// redirectJS runs from 404.html. The static host serves that page for any
// path it has no file for; the script moves the path and query into the query
// string of the site root, the form router.EncodeFallback produces.
const redirectJS = `
var pathSegmentsToKeep = 0;
var l = window.location;
l.replace(
  l.protocol + '//' + l.hostname + (l.port ? ':' + l.port : '') +
  l.pathname.split('/').slice(0, 1 + pathSegmentsToKeep).join('/') + '/?/' +
  l.pathname.slice(1).split('/').slice(pathSegmentsToKeep).join('/').replace(/&/g, '~and~') +
  (l.search ? '&' + l.search.slice(1).replace(/&/g, '~and~') : '') +
  l.hash
);
`

// restoreJS runs from index.html before the wasm binary and turns a
// redirected location back into the visitor's path with replaceState.
const restoreJS = `
(function(l) {
  if (l.search[1] === '/') {
    var decoded = l.search.slice(1).split('&').map(function(s) {
      return s.replace(/~and~/g, '&');
    }).join('?');
    window.history.replaceState(null, null, l.pathname.slice(0, -1) + decoded + l.hash);
  }
}(window.location));
`

// loaderJS starts the wasm binary through the Go runtime shim.
func loaderJS(wasmPath string) string {
	return `
const go = new Go();
WebAssembly.instantiateStreaming(fetch(` + strconv.Quote(wasmPath) + `), go.importObject)
  .then(function(result) { go.run(result.instance); });
`
}

var engines = []api.Engine{
	{Name: api.EngineChrome, Version: "100"},
	{Name: api.EngineFirefox, Version: "100"},
	{Name: api.EngineSafari, Version: "15"},
	{Name: api.EngineEdge, Version: "100"},
}

// Minify compresses JavaScript or CSS source with esbuild.
func Minify(src string, loader api.Loader) (string, error) {
	result := api.Transform(src, api.TransformOptions{
		Loader:            loader,
		MinifyWhitespace:  true,
		MinifyIdentifiers: true,
		MinifySyntax:      true,
		Engines:           engines,
	})
	if len(result.Errors) > 0 {
		msg := result.Errors[0]
		if msg.Location != nil {
			return "", errors.Errorf("minify: %s (line %d)", msg.Text, msg.Location.Line)
		}
		return "", errors.Errorf("minify: %s", msg.Text)
	}
	return strings.TrimSpace(string(result.Code)), nil
}
