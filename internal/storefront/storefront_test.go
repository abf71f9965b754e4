package storefront

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/Lenon69/MegJoniShop/internal/catalog"
	"github.com/Lenon69/MegJoniShop/internal/router"
	"github.com/Lenon69/MegJoniShop/internal/testutil"
)

func newTestStorefront(t *testing.T, opts Options) *Storefront {
	t.Helper()

	s, err := New(opts)
	require.NoError(t, err)
	return s
}

func requireChrome(t *testing.T, doc *goquery.Document) {
	t.Helper()

	for _, sel := range []string{"body > header", "body > nav", "body > main", "body > footer"} {
		require.Equal(t, 1, doc.Find(sel).Length(), sel)
	}
}

func TestRenderHome(t *testing.T) {
	t.Parallel()

	s := newTestStorefront(t, Options{})
	r := s.Render("/")
	require.Equal(t, router.Exact, r.Kind)
	require.Equal(t, "/", r.Route)

	doc := testutil.ParseDocument(t, r.Document)
	requireChrome(t, doc)
	require.Equal(t, 1, doc.Find("main section.hero-section").Length())
	require.Equal(t, "Meg Joni - Odzież Używana Online | Najlepsze Second Hand Odkrycia", doc.Find("title").Text())
	canonical, _ := doc.Find(`link[rel="canonical"]`).Attr("href")
	require.Equal(t, "https://www.megjoni.pl/", canonical)
	require.Equal(t, 2, doc.Find(`script[type="application/ld+json"]`).Length())
}

func TestRenderUnknownPathFallsBack(t *testing.T) {
	t.Parallel()

	s := newTestStorefront(t, Options{})
	d, kind := s.RenderPath("/does-not-exist")
	require.Equal(t, router.Fallback, kind)

	doc := testutil.ParseDocument(t, d)
	requireChrome(t, doc)
	require.Contains(t, doc.Find("main").Text(), "Strona nie istnieje.")
	robots, _ := doc.Find(`meta[name="robots"]`).Attr("content")
	require.Equal(t, "noindex, follow", robots)
	require.Zero(t, doc.Find(`nav a[aria-current]`).Length())

	for _, path := range []string{"/category/woman/extra", "/sale/old", "/about/team"} {
		d, kind := s.RenderPath(path)
		require.Equal(t, router.Fallback, kind, path)
		doc := testutil.ParseDocument(t, d)
		require.Zero(t, doc.Find(`nav a[aria-current]`).Length(), path)
		require.Zero(t, doc.Find(`nav a.active`).Length(), path)
	}
}

func TestRenderCategoryKeepsCatalogOrder(t *testing.T) {
	t.Parallel()

	src, err := catalog.NewStaticSource(map[catalog.Category][]catalog.Product{
		catalog.Man: {
			{Name: "C", Price: catalog.Price{Minor: 300}, Image: "/c.jpg", DetailPath: "/product/c"},
			{Name: "A", Price: catalog.Price{Minor: 100}, Image: "/a.jpg", DetailPath: "/product/a"},
			{Name: "B", Price: catalog.Price{Minor: 200}, Image: "/b.jpg", DetailPath: "/product/b"},
		},
	})
	require.NoError(t, err)

	s := newTestStorefront(t, Options{Catalog: src, SiteURL: "https://example.test/"})
	r := s.Render("/category/man/")
	require.Equal(t, "/category/man", r.Route)

	doc := testutil.ParseDocument(t, r.Document)
	require.Equal(t, []string{"C", "A", "B"}, testutil.Texts(doc.Find("main article.product-item h3")))
	require.Equal(t, "Męska", doc.Find(`nav a[aria-current="page"]`).Text())
	canonical, _ := doc.Find(`link[rel="canonical"]`).Attr("href")
	require.Equal(t, "https://example.test/category/man", canonical)
	require.Equal(t, 4, doc.Find(`script[type="application/ld+json"]`).Length())
}

func TestEveryRouteRendersChrome(t *testing.T) {
	t.Parallel()

	s := newTestStorefront(t, Options{CopyrightYear: 2026})
	for _, rt := range s.Routes() {
		r := s.Render(rt.Pattern)
		require.Equal(t, router.Exact, r.Kind, rt.Pattern)

		out := r.Document.String()
		require.True(t, strings.HasPrefix(out, `<!DOCTYPE html><html lang="pl">`), rt.Pattern)
		doc := testutil.ParseDocument(t, r.Document)
		requireChrome(t, doc)
		require.Equal(t, "2026", doc.Find("#current-year").Text(), rt.Pattern)
		require.NotEmpty(t, strings.TrimSpace(doc.Find("title").Text()), rt.Pattern)
	}
}

func TestNavMatchesRoutes(t *testing.T) {
	t.Parallel()

	s := newTestStorefront(t, Options{})
	for _, e := range s.Nav() {
		_, kind := s.RenderPath(e.Path)
		require.Equal(t, router.Exact, kind, e.Path)
	}
}

func TestNewRejectsBadLocale(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Locale: "??"})
	require.Error(t, err)
}
