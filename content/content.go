// Package content holds the site's articles: markdown with YAML frontmatter,
// embedded in the binary and rendered to VNodes once at load time.
package content

import (
	"bytes"
	"embed"
	stdhtml "html"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/vcrobe/supasite/vdom"
)

//go:embed articles/*.md
var articles embed.FS

// CodeSnippetClass marks code blocks and inline code in rendered articles.
const CodeSnippetClass = "code-snippet"

// Link is a labelled URL from frontmatter.
type Link struct {
	Text string `yaml:"text"`
	Href string `yaml:"href"`
}

// Meta is the frontmatter of an article.
type Meta struct {
	Title        string `yaml:"title"`
	Subtitle     string `yaml:"subtitle"`
	SubtitleLink *Link  `yaml:"subtitle_link"`
	Sources      []Link `yaml:"sources"`
}

// Article is a parsed article.
type Article struct {
	Meta

	Slug string
	HTML string // rendered markdown body

	body []*vdom.VNode
}

// Body returns a fresh copy of the body nodes. Callers may attach handlers
// to the copy without affecting later renders.
func (a *Article) Body() []*vdom.VNode {
	out := make([]*vdom.VNode, len(a.body))
	for i, n := range a.body {
		out[i] = n.Clone()
	}
	return out
}

// Parse parses one article source.
func Parse(slug string, src []byte) (*Article, error) {
	front, body, err := splitFrontmatter(src)
	if err != nil {
		return nil, errors.Wrapf(err, "article %s", slug)
	}

	a := &Article{Slug: slug}
	if err := yaml.Unmarshal(front, &a.Meta); err != nil {
		return nil, errors.Wrapf(err, "article %s: frontmatter", slug)
	}
	if strings.TrimSpace(a.Title) == "" {
		return nil, errors.Errorf("article %s: missing title", slug)
	}

	a.HTML = string(ToHTML(body))
	a.body, err = vdom.ParseFragment(a.HTML)
	if err != nil {
		return nil, errors.Wrapf(err, "article %s", slug)
	}
	return a, nil
}

// Load parses an embedded article by slug.
func Load(slug string) (*Article, error) {
	src, err := fs.ReadFile(articles, path.Join("articles", slug+".md"))
	if err != nil {
		return nil, errors.Wrapf(err, "article %s", slug)
	}
	return Parse(slug, src)
}

// Slugs lists the embedded articles in name order.
func Slugs() []string {
	entries, _ := fs.ReadDir(articles, "articles")
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if name := e.Name(); strings.HasSuffix(name, ".md") {
			out = append(out, strings.TrimSuffix(name, ".md"))
		}
	}
	sort.Strings(out)
	return out
}

// LoadAll parses every embedded article, keyed by slug.
func LoadAll() (map[string]*Article, error) {
	out := make(map[string]*Article)
	for _, slug := range Slugs() {
		a, err := Load(slug)
		if err != nil {
			return nil, err
		}
		out[slug] = a
	}
	return out, nil
}

// ToHTML renders markdown. Each line of a code block becomes its own
// p.code-snippet and inline code becomes span.code-snippet.
func ToHTML(md []byte) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Flags:          mdhtml.CommonFlags,
		RenderNodeHook: renderCodeSnippet,
	})
	return markdown.ToHTML(md, p, renderer)
}

func renderCodeSnippet(w io.Writer, node ast.Node, entering bool) (ast.WalkStatus, bool) {
	switch n := node.(type) {
	case *ast.CodeBlock:
		for _, line := range strings.Split(strings.TrimRight(string(n.Literal), "\n"), "\n") {
			io.WriteString(w, `<p class="`+CodeSnippetClass+`">`)
			io.WriteString(w, stdhtml.EscapeString(line))
			io.WriteString(w, "</p>\n")
		}
		return ast.GoToNext, true
	case *ast.Code:
		io.WriteString(w, `<span class="`+CodeSnippetClass+`">`)
		io.WriteString(w, stdhtml.EscapeString(string(n.Literal)))
		io.WriteString(w, "</span>")
		return ast.GoToNext, true
	}
	return ast.GoToNext, false
}

var delimiter = []byte("---")

// splitFrontmatter separates a leading "---" delimited YAML block from the body.
func splitFrontmatter(src []byte) (front, body []byte, err error) {
	src = bytes.TrimPrefix(src, []byte("\ufeff"))
	src = bytes.ReplaceAll(src, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(src, append(delimiter, '\n')) {
		return nil, nil, errors.New("missing frontmatter")
	}
	rest := src[len(delimiter)+1:]
	end := bytes.Index(rest, []byte("\n---\n"))
	if end < 0 {
		return nil, nil, errors.New("unterminated frontmatter")
	}
	return rest[:end+1], rest[end+len("\n---\n"):], nil
}
