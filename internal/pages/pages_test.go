package pages

import (
	"encoding/json"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/Lenon69/MegJoniShop/internal/catalog"
	"github.com/Lenon69/MegJoniShop/internal/cms"
	"github.com/Lenon69/MegJoniShop/internal/nav"
	"github.com/Lenon69/MegJoniShop/internal/testutil"
	"github.com/Lenon69/MegJoniShop/internal/view"
)

type fakeSource map[catalog.Category][]catalog.Product

func (f fakeSource) Products(c catalog.Category) []catalog.Product { return f[c] }

func pln(minor int64) catalog.Price { return catalog.Price{Minor: minor, Currency: "PLN"} }

func newTestRegistry(t *testing.T, src catalog.Source) *Registry {
	t.Helper()

	legal, err := cms.Default()
	require.NoError(t, err)
	if src == nil {
		src, err = catalog.Default()
		require.NoError(t, err)
	}
	reg, err := NewRegistry(Deps{
		Catalog: src,
		Legal:   legal,
		Nav:     nav.Main(),
		SiteURL: "https://megjoni.pl/",
	})
	require.NoError(t, err)
	return reg
}

func viewFor(t *testing.T, reg *Registry, path string) View {
	t.Helper()
	for _, r := range reg.Routes() {
		if r.Path == path {
			return r.View
		}
	}
	t.Fatalf("no route %q", path)
	return nil
}

func TestRegistryRoutes(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t, nil)
	var paths []string
	for _, r := range reg.Routes() {
		paths = append(paths, r.Path)
		require.NotNil(t, r.View, r.Path)
	}
	want := []string{
		"/", "/about", "/contact",
		"/category/woman", "/category/man", "/new-arrivals", "/sale",
		"/privacy", "/terms", "/shipping",
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Fatalf("routes mismatch (-want +got):\n%s", diff)
	}
	require.NotNil(t, reg.NotFound())
}

func TestNewRegistryRequiresCollaborators(t *testing.T) {
	t.Parallel()

	_, err := NewRegistry(Deps{})
	require.Error(t, err)

	src, err := catalog.Default()
	require.NoError(t, err)
	_, err = NewRegistry(Deps{Catalog: src})
	require.ErrorContains(t, err, "legal")
}

func TestHomeUsesGlobalMetadata(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t, nil)
	res := viewFor(t, reg, "/")()
	require.Nil(t, res.Meta)

	doc := testutil.ParseNode(t, res.Content)
	require.Equal(t, 1, doc.Find("section.hero-section").Length())
	require.Equal(t, []string{"Spodnie Vintage"}, testutil.Texts(doc.Find(".featured-products .product-item h3")))
}

func TestCategoryKeepsCatalogOrder(t *testing.T) {
	t.Parallel()

	src := fakeSource{
		catalog.Woman: {
			{Name: "Zielony Płaszcz", Price: pln(12000), Image: "/c.jpg", DetailPath: "/product/c"},
			{Name: "Apaszka", Price: pln(1500), Image: "/a.jpg", DetailPath: "/product/a"},
			{Name: "Marynarka", Price: pln(9900), Image: "/m.jpg", DetailPath: "/product/m"},
		},
	}
	reg := newTestRegistry(t, src)
	res := viewFor(t, reg, "/category/woman")()

	doc := testutil.ParseNode(t, res.Content)
	require.Equal(t, []string{"Zielony Płaszcz", "Apaszka", "Marynarka"}, testutil.Texts(doc.Find("article.product-item h3")))
	require.Equal(t, []string{"120.00 PLN", "15.00 PLN", "99.00 PLN"}, testutil.Texts(doc.Find("p.product-price")))
	href, _ := doc.Find("article.product-item a").First().Attr("href")
	require.Equal(t, "/product/c", href)

	require.NotNil(t, res.Meta)
	require.Equal(t, "https://megjoni.pl/category/woman", res.Meta.Canonical)
	require.Len(t, res.Meta.JSONLD, 2)

	var list struct {
		Type     string `json:"@type"`
		Elements []struct {
			Position int `json:"position"`
			Item     struct {
				Name string `json:"name"`
			} `json:"item"`
		} `json:"itemListElement"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.Meta.JSONLD[0]), &list))
	require.Equal(t, "ItemList", list.Type)
	require.Len(t, list.Elements, 3)
	require.Equal(t, "Apaszka", list.Elements[1].Item.Name)
	require.Equal(t, 2, list.Elements[1].Position)
}

func TestCategoryCopiesListingAtConstruction(t *testing.T) {
	t.Parallel()

	src := fakeSource{
		catalog.Man: {{Name: "Koszula", Price: pln(3950), Image: "/k.jpg", DetailPath: "/product/k"}},
	}
	reg := newTestRegistry(t, src)
	src[catalog.Man][0].Name = "Zmieniona"

	res := viewFor(t, reg, "/category/man")()
	require.Equal(t, "Koszula", res.Content.Find(view.ByTag("h3")).TextContent())
}

func TestSaleShowsPreviousPrice(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t, nil)
	res := viewFor(t, reg, "/sale")()

	doc := testutil.ParseNode(t, res.Content)
	price := doc.Find("article.product-item p.product-price")
	require.Equal(t, "50.00 PLN", price.Find("del").Text())
	require.Equal(t, "50.00 PLN 30.00 PLN", price.Text())
	src, _ := doc.Find("article.product-item img").Attr("src")
	require.Equal(t, "letnia-sukienka.jpg", src)
}

func TestEmptyCategory(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t, fakeSource{})
	res := viewFor(t, reg, "/new-arrivals")()
	require.Nil(t, res.Content.Find(view.ByClass("product-item")))
	require.Equal(t, EmptyListingMessage, res.Content.Find(view.ByClass("empty-listing")).TextContent())
}

func TestContactFormMarkup(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t, nil)
	doc := testutil.ParseNode(t, viewFor(t, reg, "/contact")().Content)

	form := doc.Find("form")
	action, _ := form.Attr("action")
	method, _ := form.Attr("method")
	require.Equal(t, "/submit-contact-form", action)
	require.Equal(t, "post", method)

	var names []string
	form.Find("input, textarea").Each(func(_ int, s *goquery.Selection) {
		n, _ := s.Attr("name")
		names = append(names, n)
	})
	require.Equal(t, []string{"name", "email", "subject", "message"}, names)
	mail, _ := doc.Find(".contact-info a").Attr("href")
	require.Equal(t, "mailto:kontakt@megjoni.pl", mail)
}

func TestLegalPages(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t, nil)
	res := viewFor(t, reg, "/shipping")()
	require.Equal(t, "Wysyłka i zwroty | Meg Joni", res.Meta.Title)
	require.Equal(t, "https://megjoni.pl/shipping", res.Meta.OG["og:url"])

	doc := testutil.ParseNode(t, res.Content)
	require.Equal(t, "Wysyłka i zwroty", doc.Find("article.legal-page h2").First().Text())
	datetime, _ := doc.Find(".legal-updated time").Attr("datetime")
	require.Equal(t, "2025-03-01", datetime)
	require.Equal(t, 1, doc.Find(".legal-body table").Length())
}

func TestNotFoundView(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t, nil)
	res := reg.NotFound()()
	require.Equal(t, NotFoundMessage, res.Content.Find(view.ByTag("p")).TextContent())
	require.Equal(t, "noindex, follow", res.Meta.Names["robots"])
}

func TestViewsAreDeterministic(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t, nil)
	for _, r := range reg.Routes() {
		first, second := r.View(), r.View()
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("%s: view output differs between calls (-first +second):\n%s", r.Path, diff)
		}
		if first.Meta != nil {
			first.Meta.Title = "mutated"
			require.NotEqual(t, "mutated", r.View().Meta.Title, r.Path)
		}
	}
}
