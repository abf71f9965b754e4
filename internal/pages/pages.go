// Package pages is the registry of page views. Each view is a pure function
// returning the page content and an optional metadata override; everything a
// view needs is resolved when the registry is built.
package pages

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Lenon69/MegJoniShop/internal/catalog"
	"github.com/Lenon69/MegJoniShop/internal/cms"
	"github.com/Lenon69/MegJoniShop/internal/nav"
	"github.com/Lenon69/MegJoniShop/internal/seo"
	"github.com/Lenon69/MegJoniShop/internal/view"
)

// Result is what a view produces. A nil Meta means the global defaults apply verbatim.
type Result struct {
	Content *view.Node
	Meta    *seo.Meta
}

// View renders one page.
type View func() Result

// Route binds a static path to a view.
type Route struct {
	Path string
	Name string
	View View
}

// Deps are the collaborators resolved once when the registry is built.
type Deps struct {
	Catalog catalog.Source
	Legal   *cms.Library
	Nav     []nav.Entry
	SiteURL string
	Brand   string
	// ContactEmail and ContactAction configure the contact page.
	ContactEmail  string
	ContactAction string
}

// Registry holds the views in registration order plus the not-found view.
type Registry struct {
	routes   []Route
	notFound View
}

// NewRegistry builds every view. Catalog listings and legal pages are copied in
// here, so invalid collaborator data fails now rather than per request.
func NewRegistry(d Deps) (*Registry, error) {
	if d.Catalog == nil {
		return nil, errors.New("pages: catalog source is required")
	}
	if d.Legal == nil {
		return nil, errors.New("pages: legal page library is required")
	}
	d.SiteURL = strings.TrimRight(strings.TrimSpace(d.SiteURL), "/")
	if d.Brand == "" {
		d.Brand = "Meg Joni"
	}
	if d.ContactEmail == "" {
		d.ContactEmail = "kontakt@megjoni.pl"
	}
	if d.ContactAction == "" {
		d.ContactAction = "/submit-contact-form"
	}

	r := &Registry{notFound: notFoundView(d)}
	r.add("/", "home", homeView(d, d.Catalog.Products(catalog.Featured)))
	r.add("/about", "about", aboutView(d))
	r.add("/contact", "contact", contactView(d))
	for _, c := range categoryPages() {
		r.add(c.path, string(c.category), categoryView(d, c, d.Catalog.Products(c.category)))
	}
	for _, l := range legalPages() {
		page, err := d.Legal.Page(l.slug)
		if err != nil {
			return nil, fmt.Errorf("pages: legal page %q: %w", l.slug, err)
		}
		r.add(l.path, l.slug, legalView(d, l.path, page))
	}
	return r, nil
}

func (r *Registry) add(path, name string, v View) {
	r.routes = append(r.routes, Route{Path: path, Name: name, View: v})
}

// Routes returns the registered routes in registration order.
func (r *Registry) Routes() []Route {
	out := make([]Route, len(r.routes))
	copy(out, r.routes)
	return out
}

// NotFound returns the fallback view.
func (r *Registry) NotFound() View { return r.notFound }

// pageMeta builds the common override for a page at path.
func pageMeta(d Deps, path, title, description string) *seo.Meta {
	canonical := absURL(d.SiteURL, path)
	return &seo.Meta{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		OG: map[string]string{
			"og:title":       title,
			"og:description": description,
			"og:url":         canonical,
		},
	}
}

func absURL(site, p string) string {
	switch {
	case p == "":
		return site + "/"
	case strings.HasPrefix(p, "http://"), strings.HasPrefix(p, "https://"):
		return p
	case strings.HasPrefix(p, "/"):
		return site + p
	default:
		return site + "/" + p
	}
}
