// Package shell wraps composed page content into a complete HTML document,
// merging page metadata over the site defaults in the document head.
package shell

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/Lenon69/MegJoniShop/internal/layout"
	"github.com/Lenon69/MegJoniShop/internal/nav"
	"github.com/Lenon69/MegJoniShop/internal/pages"
	"github.com/Lenon69/MegJoniShop/internal/seo"
	"github.com/Lenon69/MegJoniShop/internal/view"
)

const defaultLocale = "pl-PL"

// Config is fixed at process start.
type Config struct {
	Locale     string
	Stylesheet string
	Defaults   seo.Meta
	Nav        []nav.Entry
	Site       layout.Site
}

// Renderer produces documents. It holds no mutable state.
type Renderer struct {
	lang       string
	stylesheet string
	defaults   seo.Meta
	nav        []nav.Entry
	site       layout.Site
}

// New validates the locale and freezes the configuration.
func New(cfg Config) (*Renderer, error) {
	locale := strings.TrimSpace(cfg.Locale)
	if locale == "" {
		locale = defaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("shell: parse locale %q: %w", locale, err)
	}
	base, _ := tag.Base()
	region, _ := tag.Region()

	defaults := cfg.Defaults.Clone()
	if defaults.OG == nil {
		defaults.OG = map[string]string{}
	}
	if _, ok := defaults.OG["og:locale"]; !ok {
		defaults.OG["og:locale"] = base.String() + "_" + region.String()
	}

	return &Renderer{
		lang:       base.String(),
		stylesheet: cfg.Stylesheet,
		defaults:   defaults,
		nav:        append([]nav.Entry(nil), cfg.Nav...),
		site:       cfg.Site,
	}, nil
}

// Lang is the value of the html lang attribute.
func (r *Renderer) Lang() string { return r.lang }

// Defaults returns a copy of the site-wide metadata.
func (r *Renderer) Defaults() seo.Meta { return r.defaults.Clone() }

// Render builds the document for a page. activePath selects the highlighted
// nav entry; an empty path highlights none. It never fails.
func (r *Renderer) Render(activePath string, page pages.Result) *view.Document {
	meta := seo.Merge(r.defaults, page.Meta)
	return &view.Document{
		Lang: r.lang,
		Head: r.head(meta),
		Body: layout.Page(r.site, r.nav, activePath, page.Content),
	}
}

func (r *Renderer) head(m seo.Meta) []*view.Node {
	head := []*view.Node{
		view.El("meta", view.A("charset", "utf-8")),
		view.El("meta", view.A("name", "viewport", "content", "width=device-width, initial-scale=1")),
		view.El("title", nil, view.Text(m.Title)),
	}
	if m.Description != "" {
		head = append(head, view.El("meta", view.A("name", "description", "content", m.Description)))
	}
	for _, k := range m.NameKeys() {
		head = append(head, view.El("meta", view.A("name", k, "content", m.Names[k])))
	}
	if m.Canonical != "" {
		head = append(head, view.El("link", view.A("rel", "canonical", "href", m.Canonical)))
	}
	for _, k := range m.OGKeys() {
		head = append(head, view.El("meta", view.A("property", k, "content", m.OG[k])))
	}
	if r.stylesheet != "" {
		head = append(head, view.El("link", view.A("rel", "stylesheet", "href", r.stylesheet)))
	}
	for _, ld := range m.JSONLD {
		head = append(head, view.El("script", view.A("type", "application/ld+json"), view.Text(ld)))
	}
	return head
}
