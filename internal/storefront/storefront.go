// Package storefront wires the registry, router and shell into the single
// operation the transport layer needs: turn a request path into a document.
package storefront

import (
	"fmt"
	"strings"

	"github.com/Lenon69/MegJoniShop/internal/catalog"
	"github.com/Lenon69/MegJoniShop/internal/cms"
	"github.com/Lenon69/MegJoniShop/internal/layout"
	"github.com/Lenon69/MegJoniShop/internal/nav"
	"github.com/Lenon69/MegJoniShop/internal/pages"
	"github.com/Lenon69/MegJoniShop/internal/router"
	"github.com/Lenon69/MegJoniShop/internal/seo"
	"github.com/Lenon69/MegJoniShop/internal/shell"
	"github.com/Lenon69/MegJoniShop/internal/view"
)

const (
	DefaultSiteURL    = "https://www.megjoni.pl"
	DefaultStylesheet = "/style.css"
	brand             = "Meg Joni"
)

// Options configure a Storefront. Zero values fall back to the bundled
// catalog, the bundled legal pages and the production site settings.
type Options struct {
	Catalog       catalog.Source
	Legal         *cms.Library
	SiteURL       string
	Locale        string
	Stylesheet    string
	CopyrightYear int
}

// Storefront is immutable once built and safe for concurrent use.
type Storefront struct {
	router *router.Router
	shell  *shell.Renderer
	nav    []nav.Entry
}

// Rendered is a document plus how its path was resolved.
type Rendered struct {
	Document *view.Document
	Path     string
	Route    string
	Kind     router.MatchKind
}

// New builds every page up front. Errors here mean bad bundled or configured
// content and should stop the process.
func New(opts Options) (*Storefront, error) {
	var err error
	if opts.Catalog == nil {
		if opts.Catalog, err = catalog.Default(); err != nil {
			return nil, fmt.Errorf("storefront: load catalog: %w", err)
		}
	}
	if opts.Legal == nil {
		if opts.Legal, err = cms.Default(); err != nil {
			return nil, fmt.Errorf("storefront: load legal pages: %w", err)
		}
	}
	siteURL := strings.TrimRight(strings.TrimSpace(opts.SiteURL), "/")
	if siteURL == "" {
		siteURL = DefaultSiteURL
	}
	stylesheet := opts.Stylesheet
	if stylesheet == "" {
		stylesheet = DefaultStylesheet
	}
	site := layout.DefaultSite()
	if opts.CopyrightYear > 0 {
		site.CopyrightYear = opts.CopyrightYear
	}
	entries := nav.Main()

	reg, err := pages.NewRegistry(pages.Deps{
		Catalog: opts.Catalog,
		Legal:   opts.Legal,
		Nav:     entries,
		SiteURL: siteURL,
		Brand:   brand,
	})
	if err != nil {
		return nil, fmt.Errorf("storefront: %w", err)
	}
	rt, err := router.FromRegistry(reg)
	if err != nil {
		return nil, fmt.Errorf("storefront: %w", err)
	}
	sh, err := shell.New(shell.Config{
		Locale:     opts.Locale,
		Stylesheet: stylesheet,
		Defaults:   DefaultMeta(siteURL, site),
		Nav:        entries,
		Site:       site,
	})
	if err != nil {
		return nil, fmt.Errorf("storefront: %w", err)
	}
	return &Storefront{router: rt, shell: sh, nav: entries}, nil
}

// Render resolves path and renders the full document. Unknown paths render
// the not-found page inside the regular chrome with no active nav entry.
func (s *Storefront) Render(path string) Rendered {
	normalized := router.Normalize(path)
	m := s.router.Match(normalized)
	return Rendered{
		Document: s.shell.Render(m.Pattern, m.View()),
		Path:     normalized,
		Route:    m.Pattern,
		Kind:     m.Kind,
	}
}

// RenderPath is Render without the routing details.
func (s *Storefront) RenderPath(path string) (*view.Document, router.MatchKind) {
	r := s.Render(path)
	return r.Document, r.Kind
}

// Routes lists the registered routes in registration order.
func (s *Storefront) Routes() []router.Route { return s.router.Routes() }

// Nav returns the navigation entries.
func (s *Storefront) Nav() []nav.Entry { return append([]nav.Entry(nil), s.nav...) }

// DefaultMeta is the site-wide metadata every page starts from.
func DefaultMeta(siteURL string, site layout.Site) seo.Meta {
	title := "Meg Joni - Odzież Używana Online | Najlepsze Second Hand Odkrycia"
	description := "Znajdź stylowe perełki z drugiej ręki i odśwież swoją garderobę w ekologiczny sposób. Wysoka jakość w świetnych cenach!"
	sameAs := make([]string, 0, len(site.Social))
	for _, s := range site.Social {
		sameAs = append(sameAs, s.Href)
	}
	return seo.Meta{
		Title:       title,
		Description: description,
		Canonical:   siteURL + "/",
		OG: map[string]string{
			"og:title":       "Meg Joni - Odkryj Unikalną Odzież Używaną Online",
			"og:description": description,
			"og:type":        "website",
			"og:url":         siteURL + "/",
			"og:site_name":   site.Brand,
		},
		Names: map[string]string{
			"keywords":    "odzież używana, second hand online, sklep vintage, ciuchy z drugiej ręki, moda ekologiczna, ubrania używane, outlet, odzież damska używana, odzież męska używana",
			"author":      site.Brand,
			"robots":      "index, follow",
			"theme-color": "#ffffff",
		},
		JSONLD: []string{
			seo.JSON(seo.Organization(site.Brand, siteURL+"/", siteURL+site.Logo, sameAs)),
			seo.JSON(seo.WebSite(site.Brand, siteURL+"/", siteURL+site.SearchAction+"?query=")),
		},
	}
}
