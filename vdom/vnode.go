package vdom

import "strings"

// TextTag is the tag of a bare text node.
const TextTag = "#text"

// VNode represents a virtual DOM node.
type VNode struct {
	Tag        string         // The HTML tag name, or TextTag
	Attributes map[string]any // The attributes of the node
	Children   []*VNode       // The child nodes
	Content    string         // Text rendered before the children
	OnClick    func()         // Optional click event handler
}

// NewVNode creates a new VNode.
// A func() stored under the "onClick" attribute is moved to OnClick.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	var onClick func()
	if attributes != nil {
		if v, ok := attributes["onClick"]; ok {
			if f, ok := v.(func()); ok {
				onClick = f
				// Remove from attributes so it doesn't get rendered as an HTML attribute
				delete(attributes, "onClick")
			}
		}
	}
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
		OnClick:    onClick,
	}
}

// SetContent updates the Content field of the VNode.
func (v *VNode) SetContent(content string) {
	v.Content = content
}

// Attr returns the string form of an attribute, or "" when absent.
func (v *VNode) Attr(name string) string {
	if v == nil || v.Attributes == nil {
		return ""
	}
	s, _ := v.Attributes[name].(string)
	return s
}

// SetAttr sets an attribute, allocating the map if needed.
func (v *VNode) SetAttr(name string, value any) {
	if v.Attributes == nil {
		v.Attributes = make(map[string]any)
	}
	v.Attributes[name] = value
}

// HasClass reports whether the space separated class attribute contains class.
func (v *VNode) HasClass(class string) bool {
	for _, c := range strings.Fields(v.Attr("class")) {
		if c == class {
			return true
		}
	}
	return false
}

// Walk visits v and its descendants depth-first until fn returns false.
func (v *VNode) Walk(fn func(*VNode) bool) bool {
	if v == nil {
		return true
	}
	if !fn(v) {
		return false
	}
	for _, c := range v.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// FindAll returns every node in the tree with the given tag, in document order.
func (v *VNode) FindAll(tag string) []*VNode {
	var out []*VNode
	v.Walk(func(n *VNode) bool {
		if n.Tag == tag {
			out = append(out, n)
		}
		return true
	})
	return out
}

// TextContent concatenates all text in the tree.
func (v *VNode) TextContent() string {
	var b strings.Builder
	v.Walk(func(n *VNode) bool {
		b.WriteString(n.Content)
		return true
	})
	return b.String()
}

// Text creates a bare text node.
func Text(s string) *VNode {
	return &VNode{Tag: TextTag, Content: s}
}

// Element creates a node with the given tag and children.
func Element(tag string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode(tag, attrs, children, "")
}

// Paragraph creates a <p> VNode with the given text as its child and allows passing attributes.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// Heading creates an <h1>..<h6> node. Out of range levels are clamped.
func Heading(level int, text string, attrs map[string]any, children ...*VNode) *VNode {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return NewVNode("h"+string(rune('0'+level)), attrs, children, text)
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Span creates a <span> with text content.
func Span(text string, attrs map[string]any) *VNode {
	return NewVNode("span", attrs, nil, text)
}

// Anchor creates an <a href> with text content.
func Anchor(href, text string, attrs map[string]any) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["href"] = href
	return NewVNode("a", attrs, nil, text)
}

// Image creates an <img>.
func Image(src, alt string) *VNode {
	return NewVNode("img", map[string]any{"src": src, "alt": alt}, nil, "")
}

// Button creates a <button> VNode with the given children and allows passing attributes.
func Button(content string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("button", attrs, children, content)
}

// Clone returns a deep copy of the tree. Attribute values are copied
// shallowly; OnClick handlers are not carried over.
func (v *VNode) Clone() *VNode {
	if v == nil {
		return nil
	}
	c := &VNode{Tag: v.Tag, Content: v.Content}
	if v.Attributes != nil {
		c.Attributes = make(map[string]any, len(v.Attributes))
		for k, val := range v.Attributes {
			c.Attributes[k] = val
		}
	}
	if v.Children != nil {
		c.Children = make([]*VNode, len(v.Children))
		for i, child := range v.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}
