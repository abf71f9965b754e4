package testutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/Lenon69/MegJoniShop/internal/view"
)

// ParseHTML parses the provided HTML payload into a goquery document for assertions.
func ParseHTML(t testing.TB, body []byte) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// ParseDocument renders a storefront document and parses it for assertions.
func ParseDocument(t testing.TB, d *view.Document) *goquery.Document {
	t.Helper()

	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		t.Fatalf("render document: %v", err)
	}
	return ParseHTML(t, buf.Bytes())
}

// ParseNode renders a single content tree wrapped in a body for assertions.
func ParseNode(t testing.TB, n *view.Node) *goquery.Document {
	t.Helper()

	return ParseHTML(t, []byte("<body>"+view.RenderString(n)+"</body>"))
}

// Texts collects the trimmed text of every selection match.
func Texts(sel *goquery.Selection) []string {
	out := make([]string, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, strings.TrimSpace(s.Text()))
	})
	return out
}
