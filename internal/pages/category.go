package pages

import (
	"github.com/Lenon69/MegJoniShop/internal/catalog"
	"github.com/Lenon69/MegJoniShop/internal/format"
	"github.com/Lenon69/MegJoniShop/internal/nav"
	"github.com/Lenon69/MegJoniShop/internal/seo"
	"github.com/Lenon69/MegJoniShop/internal/view"
)

// EmptyListingMessage is shown when a category has no products.
const EmptyListingMessage = "Brak produktów w tej kategorii. Zajrzyj wkrótce!"

type categoryPage struct {
	path        string
	category    catalog.Category
	heading     string
	intro       string
	title       string
	description string
}

func categoryPages() []categoryPage {
	return []categoryPage{
		{
			path:        "/category/woman",
			category:    catalog.Woman,
			heading:     "Kategoria: Damska",
			intro:       "Odkryj naszą kolekcję odzieży damskiej z drugiej ręki. Eleganckie sukienki, wygodne spodnie, stylowe bluzki i wiele więcej!",
			title:       "Odzież damska",
			description: "Odzież damska z drugiej ręki: sukienki, spodnie i bluzki w świetnym stanie.",
		},
		{
			path:        "/category/man",
			category:    catalog.Man,
			heading:     "Kategoria: Męska",
			intro:       "Przeglądaj naszą ofertę męskiej odzieży używanej. Znajdź koszule, spodnie, marynarki i inne elementy garderoby w świetnych cenach.",
			title:       "Odzież męska",
			description: "Męska odzież używana: koszule, spodnie i kurtki w świetnych cenach.",
		},
		{
			path:        "/new-arrivals",
			category:    catalog.NewArrivals,
			heading:     "Nowości u Meg Joni",
			intro:       "Zobacz nasze najnowsze dostawy! Świeże i unikalne ubrania dodane do sklepu.",
			title:       "Nowości",
			description: "Najnowsze dostawy odzieży z drugiej ręki w Meg Joni.",
		},
		{
			path:        "/sale",
			category:    catalog.Sale,
			heading:     "Wyprzedaż",
			intro:       "Super okazje czekają! Ostatnie sztuki w niższych cenach.",
			title:       "Wyprzedaż",
			description: "Ostatnie sztuki odzieży używanej w obniżonych cenach.",
		},
	}
}

func categoryView(d Deps, c categoryPage, products []catalog.Product) View {
	products = append([]catalog.Product(nil), products...)
	title := c.title + " | " + d.Brand

	meta := pageMeta(d, c.path, title, c.description)
	meta.JSONLD = append(meta.JSONLD,
		seo.JSON(itemList(d, c.title, products)),
		seo.JSON(seo.BreadcrumbList(breadcrumbItems(d, c.path))),
	)

	return func() Result {
		m := meta.Clone()
		return Result{
			Content: view.El("section", view.A("class", "category", "data-category", string(c.category)),
				view.El("h2", nil, view.Text(c.heading)),
				view.El("p", nil, view.Text(c.intro)),
				listing(products),
			),
			Meta: &m,
		}
	}
}

func listing(products []catalog.Product) *view.Node {
	if len(products) == 0 {
		return view.El("p", view.A("class", "empty-listing"), view.Text(EmptyListingMessage))
	}
	return productGrid(products)
}

func productGrid(products []catalog.Product) *view.Node {
	items := make([]*view.Node, 0, len(products))
	for _, p := range products {
		items = append(items, productCard(p))
	}
	return view.El("div", view.A("class", "product-grid"), items...)
}

func productCard(p catalog.Product) *view.Node {
	alt := p.Alt
	if alt == "" {
		alt = p.Name
	}
	price := view.El("p", view.A("class", "product-price"), view.Text(p.PriceDisplay()))
	if !p.WasPrice.IsZero() {
		price = view.El("p", view.A("class", "product-price"),
			view.El("del", nil, view.Text(p.WasPrice.Display())),
			view.Text(" "+p.PriceDisplay()),
		)
	}
	return view.El("article", view.A("class", "product-item"),
		view.El("a", view.A("href", p.DetailPath),
			view.El("figure", nil,
				view.El("img", view.A("src", p.Image, "alt", alt, "width", "300", "height", "400")),
			),
			view.El("h3", nil, view.Text(p.Name)),
			price,
		),
	)
}

func itemList(d Deps, name string, products []catalog.Product) map[string]any {
	items := make([]map[string]any, 0, len(products))
	for _, p := range products {
		items = append(items, seo.Product(p.Name, absURL(d.SiteURL, p.DetailPath), absURL(d.SiteURL, p.Image), seo.Offer{
			Price:    format.Decimal(p.Price.Minor),
			Currency: p.Price.Currency,
		}))
	}
	return seo.ItemList(name, items)
}

func breadcrumbItems(d Deps, path string) []seo.BreadcrumbItem {
	crumbs := nav.Breadcrumbs(d.Nav, path)
	items := make([]seo.BreadcrumbItem, 0, len(crumbs))
	for _, c := range crumbs {
		items = append(items, seo.BreadcrumbItem{Name: c.Label, Item: absURL(d.SiteURL, c.Href)})
	}
	return items
}
