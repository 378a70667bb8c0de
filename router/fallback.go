package router

import "strings"

// Static hosts answer unknown paths with 404.html. That page redirects to the
// site root with the requested path folded into the query string:
//
//	/blog2?x=1&y=2#top  ->  /?/blog2&x=1~and~y=2#top
//
// EncodeFallback computes the redirected URL and RecoverPath undoes it, so the
// first load of a deep link still lands on the intended route.

const ampersand = "~and~"

// EncodeFallback returns the root URL the fallback page redirects to for a
// request path and its raw query (without '?').
func EncodeFallback(path, rawQuery string) string {
	var b strings.Builder
	b.WriteString("/?/")
	b.WriteString(strings.ReplaceAll(strings.TrimPrefix(path, "/"), "&", ampersand))
	if rawQuery != "" {
		b.WriteByte('&')
		b.WriteString(strings.ReplaceAll(rawQuery, "&", ampersand))
	}
	return b.String()
}

// RecoverPath returns the path and query the visitor originally asked for.
// Locations that did not come through the fallback redirect are returned as
// pathname unchanged.
func RecoverPath(pathname, search string) string {
	if len(search) < 2 || search[0] != '?' || search[1] != '/' {
		return pathname
	}

	parts := strings.Split(search[1:], "&")
	for i, p := range parts {
		parts[i] = strings.ReplaceAll(p, ampersand, "&")
	}
	recovered := strings.Join(parts, "?")

	prefix := strings.TrimSuffix(pathname, "/")
	return prefix + recovered
}
