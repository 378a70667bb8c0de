// Package style loads the site stylesheet and scopes it to a generated class,
// so a page only needs that class on its root element.
package style

import (
	"fmt"
	"hash/fnv"
	"io/fs"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/pkg/errors"
)

// ClassPrefix starts every generated class name.
const ClassPrefix = "supa-"

// Sheet is a stylesheet scoped under Class.
type Sheet struct {
	Path  string // file the sheet was loaded from
	Class string // generated class for the page root
	CSS   string // scoped stylesheet text
}

// Load reads path from fsys and scopes it.
func Load(fsys fs.FS, path string) (*Sheet, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.Wrapf(err, "read stylesheet %s", path)
	}
	return New(path, string(data))
}

// New scopes source. The class is derived from the source text, so the same
// stylesheet always yields the same class.
func New(path, source string) (*Sheet, error) {
	sheet, err := parser.Parse(source)
	if err != nil {
		return nil, errors.Wrapf(err, "parse stylesheet %s", path)
	}

	class := ClassName(source)
	scopeRules(class, sheet.Rules)

	return &Sheet{
		Path:  path,
		Class: class,
		CSS:   sheet.String(),
	}, nil
}

// ClassName returns the generated class for a stylesheet source.
func ClassName(source string) string {
	h := fnv.New32a()
	h.Write([]byte(source))
	return fmt.Sprintf("%s%08x", ClassPrefix, h.Sum32())
}

// ClassList returns the sheet class followed by extra classes, space separated.
// A nil sheet yields only the extras.
func (s *Sheet) ClassList(extra ...string) string {
	if s == nil {
		return strings.Join(extra, " ")
	}
	return strings.Join(append([]string{s.Class}, extra...), " ")
}

func scopeRules(class string, rules []*css.Rule) {
	for _, rule := range rules {
		switch rule.Kind {
		case css.QualifiedRule:
			for i, sel := range rule.Selectors {
				rule.Selectors[i] = scopeSelector(class, sel)
			}
		case css.AtRule:
			// keyframe selectors (from, to, 50%) are not element selectors
			if rule.EmbedsRules() && !strings.HasSuffix(rule.Name, "keyframes") {
				scopeRules(class, rule.Rules)
			}
		}
	}
}

// scopeSelector nests sel under the class. "&" and ":root" name the page root
// itself.
func scopeSelector(class, sel string) string {
	sel = strings.TrimSpace(sel)
	root := "." + class
	switch {
	case sel == "&" || sel == ":root":
		return root
	case strings.HasPrefix(sel, "&"):
		return root + sel[1:]
	default:
		return root + " " + sel
	}
}
