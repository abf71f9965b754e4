// Package view holds the content tree that page views, the layout and the shell
// exchange. Nodes are plain data so they can be inspected in tests without a
// rendering engine; rendering goes through golang.org/x/net/html.
package view

import "strings"

// Kind enumerates the node variants of the content tree.
type Kind int

const (
	ElementNode  Kind = iota // tag with attributes and ordered children
	TextNode                 // escaped character data
	FragmentNode             // ordered children without a wrapping element
)

func (k Kind) String() string {
	switch k {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case FragmentNode:
		return "fragment"
	default:
		return "unknown"
	}
}

// Attr is a single attribute. Attributes keep their declaration order.
type Attr struct {
	Key string
	Val string
}

// Node is one unit of renderable content.
type Node struct {
	Kind     Kind
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Node
}

// A pairs up keys and values: A("href", "/", "class", "btn").
// A trailing key without a value becomes a boolean attribute.
func A(kv ...string) []Attr {
	attrs := make([]Attr, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		a := Attr{Key: kv[i]}
		if i+1 < len(kv) {
			a.Val = kv[i+1]
		}
		attrs = append(attrs, a)
	}
	return attrs
}

// El builds an element node. Nil children are dropped.
func El(tag string, attrs []Attr, children ...*Node) *Node {
	return &Node{
		Kind:     ElementNode,
		Tag:      strings.ToLower(tag),
		Attrs:    attrs,
		Children: compact(children),
	}
}

// Text builds a text node.
func Text(s string) *Node {
	return &Node{Kind: TextNode, Text: s}
}

// Fragment groups nodes without introducing an element.
func Fragment(children ...*Node) *Node {
	return &Node{Kind: FragmentNode, Children: compact(children)}
}

func compact(nodes []*Node) []*Node {
	out := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasClass reports whether the class attribute lists name.
func (n *Node) HasClass(name string) bool {
	v, ok := n.Attr("class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == name {
			return true
		}
	}
	return false
}

// Walk visits n and its descendants depth-first in document order.
// Returning false from fn stops the walk.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first node in document order matching pred.
func (n *Node) Find(pred func(*Node) bool) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if pred(c) {
			found = c
			return false
		}
		return true
	})
	return found
}

// FindAll returns every node matching pred in document order.
func (n *Node) FindAll(pred func(*Node) bool) []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if pred(c) {
			out = append(out, c)
		}
		return true
	})
	return out
}

// TextContent concatenates all descendant text.
func (n *Node) TextContent() string {
	var sb strings.Builder
	n.Walk(func(c *Node) bool {
		if c.Kind == TextNode {
			sb.WriteString(c.Text)
		}
		return true
	})
	return sb.String()
}

// ByTag matches elements with the given tag.
func ByTag(tag string) func(*Node) bool {
	tag = strings.ToLower(tag)
	return func(n *Node) bool {
		return n.Kind == ElementNode && n.Tag == tag
	}
}

// ByClass matches elements carrying the given class.
func ByClass(class string) func(*Node) bool {
	return func(n *Node) bool {
		return n.Kind == ElementNode && n.HasClass(class)
	}
}

// ByAttr matches elements whose attribute key equals val.
func ByAttr(key, val string) func(*Node) bool {
	return func(n *Node) bool {
		if n.Kind != ElementNode {
			return false
		}
		v, ok := n.Attr(key)
		return ok && v == val
	}
}
