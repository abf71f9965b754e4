package view

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a complete HTML page: doctype, <html lang>, head and body.
type Document struct {
	Lang string
	Head []*Node
	Body *Node
}

// Render writes the serialized document to w.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.tree())
}

// String renders the document, ignoring write errors on the in-memory buffer.
func (d *Document) String() string {
	var buf bytes.Buffer
	_ = d.Render(&buf)
	return buf.String()
}

// Component exposes the document as a templ component so it can be served
// with templ.Handler.
func (d *Document) Component() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return d.Render(w)
	})
}

// Find searches head then body for the first node matching pred.
func (d *Document) Find(pred func(*Node) bool) *Node {
	for _, h := range d.Head {
		if n := h.Find(pred); n != nil {
			return n
		}
	}
	return d.Body.Find(pred)
}

// FindAll collects matches from head then body.
func (d *Document) FindAll(pred func(*Node) bool) []*Node {
	var out []*Node
	for _, h := range d.Head {
		out = append(out, h.FindAll(pred)...)
	}
	return append(out, d.Body.FindAll(pred)...)
}

// Title returns the text of the <title> element.
func (d *Document) Title() string {
	if t := d.Find(ByTag("title")); t != nil {
		return t.TextContent()
	}
	return ""
}

func (d *Document) tree() *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := &html.Node{Type: html.ElementNode, Data: "html", DataAtom: atom.Html}
	if d.Lang != "" {
		root.Attr = []html.Attribute{{Key: "lang", Val: d.Lang}}
	}
	doc.AppendChild(root)

	head := &html.Node{Type: html.ElementNode, Data: "head", DataAtom: atom.Head}
	for _, n := range d.Head {
		for _, hn := range ToHTML(n) {
			head.AppendChild(hn)
		}
	}
	root.AppendChild(head)

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	for _, hn := range ToHTML(d.Body) {
		body.AppendChild(hn)
	}
	root.AppendChild(body)
	return doc
}
