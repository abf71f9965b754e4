package view

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ToHTML converts the tree into fresh x/net/html nodes. Fragments are
// flattened, so the result may hold several siblings.
func ToHTML(n *Node) []*html.Node {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case TextNode:
		return []*html.Node{{Type: html.TextNode, Data: n.Text}}
	case FragmentNode:
		var out []*html.Node
		for _, c := range n.Children {
			out = append(out, ToHTML(c)...)
		}
		return out
	default:
		el := newElement(n.Tag, n.Attrs)
		for _, c := range n.Children {
			for _, hc := range ToHTML(c) {
				el.AppendChild(hc)
			}
		}
		return []*html.Node{el}
	}
}

func newElement(tag string, attrs []Attr) *html.Node {
	el := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	if len(attrs) > 0 {
		el.Attr = make([]html.Attribute, 0, len(attrs))
		for _, a := range attrs {
			el.Attr = append(el.Attr, html.Attribute{Key: a.Key, Val: a.Val})
		}
	}
	return el
}

// FromHTML parses an HTML fragment into content nodes. Comments and
// doctype tokens are dropped.
func FromHTML(fragment string) ([]*Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	parsed, err := html.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		return nil, fmt.Errorf("view: parse fragment: %w", err)
	}
	out := make([]*Node, 0, len(parsed))
	for _, hn := range parsed {
		if n := fromHTMLNode(hn); n != nil {
			out = append(out, n)
		}
	}
	return out, nil
}

func fromHTMLNode(hn *html.Node) *Node {
	switch hn.Type {
	case html.TextNode:
		return Text(hn.Data)
	case html.ElementNode:
		attrs := make([]Attr, 0, len(hn.Attr))
		for _, a := range hn.Attr {
			attrs = append(attrs, Attr{Key: a.Key, Val: a.Val})
		}
		var children []*Node
		for c := hn.FirstChild; c != nil; c = c.NextSibling {
			if cn := fromHTMLNode(c); cn != nil {
				children = append(children, cn)
			}
		}
		return El(hn.Data, attrs, children...)
	default:
		return nil
	}
}

// RenderString renders a single tree as an HTML fragment.
func RenderString(n *Node) string {
	var sb strings.Builder
	for _, hn := range ToHTML(n) {
		_ = html.Render(&sb, hn)
	}
	return sb.String()
}
