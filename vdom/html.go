package vdom

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseFragment parses a markup fragment as it would appear inside a <div>
// and returns the top-level nodes. Whitespace-only text between elements is
// dropped, and elements whose only child is text carry it in Content.
func ParseFragment(markup string) ([]*VNode, error) {
	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, errors.Wrap(err, "parse markup fragment")
	}

	out := make([]*VNode, 0, len(nodes))
	for _, n := range nodes {
		if v := fromHTML(n); v != nil {
			out = append(out, v)
		}
	}
	return out, nil
}

func fromHTML(n *html.Node) *VNode {
	switch n.Type {
	case html.TextNode:
		if strings.TrimSpace(n.Data) == "" && strings.ContainsRune(n.Data, '\n') {
			return nil
		}
		return Text(n.Data)
	case html.ElementNode:
		v := &VNode{Tag: n.Data}
		if len(n.Attr) > 0 {
			v.Attributes = make(map[string]any, len(n.Attr))
			for _, a := range n.Attr {
				v.Attributes[a.Key] = a.Val
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if cv := fromHTML(c); cv != nil {
				v.Children = append(v.Children, cv)
			}
		}
		if len(v.Children) == 1 && v.Children[0].Tag == TextTag {
			v.Content = v.Children[0].Content
			v.Children = nil
		}
		return v
	default:
		// comments and doctypes carry nothing renderable
		return nil
	}
}

// RenderHTML serializes the tree as HTML. Attributes are written in sorted
// order; function-valued attributes and OnClick handlers are not serialized.
func RenderHTML(w io.Writer, v *VNode) error {
	if v == nil {
		return nil
	}
	return html.Render(w, toHTML(v))
}

// HTMLString is RenderHTML into a string.
func HTMLString(v *VNode) (string, error) {
	var b strings.Builder
	if err := RenderHTML(&b, v); err != nil {
		return "", errors.Wrapf(err, "render <%s>", v.Tag)
	}
	return b.String(), nil
}

func toHTML(v *VNode) *html.Node {
	if v.Tag == TextTag {
		return &html.Node{Type: html.TextNode, Data: v.Content}
	}

	n := &html.Node{Type: html.ElementNode, Data: v.Tag, DataAtom: atom.Lookup([]byte(v.Tag))}

	keys := make([]string, 0, len(v.Attributes))
	for k := range v.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		switch val := v.Attributes[k].(type) {
		case bool:
			if val {
				n.Attr = append(n.Attr, html.Attribute{Key: k})
			}
		case func():
		default:
			n.Attr = append(n.Attr, html.Attribute{Key: k, Val: fmt.Sprint(val)})
		}
	}

	if v.Content != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: v.Content})
	}
	for _, c := range v.Children {
		if c != nil {
			n.AppendChild(toHTML(c))
		}
	}
	return n
}
