package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeFallback(t *testing.T) {
	assert.Equal(t, "/?/blog2", EncodeFallback("/blog2", ""))
	assert.Equal(t, "/?/blog2&x=1~and~y=2", EncodeFallback("/blog2", "x=1&y=2"))
	assert.Equal(t, "/?/a~and~b/c", EncodeFallback("/a&b/c", ""))
	assert.Equal(t, "/?/", EncodeFallback("/", ""))
}

func TestRecoverPath(t *testing.T) {
	assert.Equal(t, "/blog1", RecoverPath("/", "?/blog1"))
	assert.Equal(t, "/blog2?x=1&y=2", RecoverPath("/", "?/blog2&x=1~and~y=2"))
	assert.Equal(t, "/", RecoverPath("/", "?/"))
}

func TestRecoverPath_PlainLocationsUnchanged(t *testing.T) {
	assert.Equal(t, "/blog1", RecoverPath("/blog1", ""))
	assert.Equal(t, "/blog1", RecoverPath("/blog1", "?ref=feed"))
	assert.Equal(t, "/", RecoverPath("/", "?"))
}

func TestFallback_RoundTripResolvesIntendedRoute(t *testing.T) {
	for _, path := range []string{"/", "/blog1", "/blog2", "/nonexistent", "/blog1/extra"} {
		redirected := EncodeFallback(path, "utm=a&b=c")
		// the host serves the redirect at "/" with everything after it in search
		search := redirected[1:]

		recovered := RecoverPath("/", search)

		assert.Equal(t, path+"?utm=a&b=c", recovered)
		assert.Equal(t, Resolve(path), ResolveURL(recovered), "path %q", path)
	}
}
