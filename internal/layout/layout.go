// Package layout builds the chrome shared by every page: header, navigation bar
// and footer, and composes them around page content.
package layout

import (
	"strconv"

	"github.com/Lenon69/MegJoniShop/internal/nav"
	"github.com/Lenon69/MegJoniShop/internal/view"
)

// Link is a labelled href used in the footer.
type Link struct {
	Label string
	Href  string
}

// SocialLink points at an external profile.
type SocialLink struct {
	Label string
	Href  string
	Icon  string
}

// Site is the static configuration of the shared chrome.
type Site struct {
	Brand         string
	Logo          string
	LogoAlt       string
	SearchAction  string
	AccountPath   string
	CartPath      string
	FooterLinks   []Link
	Social        []SocialLink
	CopyrightYear int
}

// DefaultSite mirrors the storefront's production chrome.
func DefaultSite() Site {
	return Site{
		Brand:        "Meg Joni",
		Logo:         "/megjoni-big.png",
		LogoAlt:      "Nazwa Sklepu Meg Joni / Logo",
		SearchAction: "/search",
		AccountPath:  "/account",
		CartPath:     "/cart",
		FooterLinks: []Link{
			{Label: "Kontakt", Href: "/contact"},
			{Label: "Wysyłka i zwroty", Href: "/shipping"},
			{Label: "Polityka Prywatności", Href: "/privacy"},
			{Label: "Regulamin sklepu", Href: "/terms"},
		},
		Social: []SocialLink{
			{Label: "Facebook", Href: "https://www.facebook.com/MegJoni", Icon: "/facebook.svg"},
			{Label: "Instagram", Href: "https://www.instagram.com/Meg.joni", Icon: "/instagram.svg"},
		},
		CopyrightYear: 2025,
	}
}

// Compose nests page inside the shared chrome. The result is a fragment whose
// children are exactly header, nav, main and footer, in that order.
func Compose(header, navbar, page, footer *view.Node) *view.Node {
	return &view.Node{
		Kind: view.FragmentNode,
		Children: []*view.Node{
			orEmpty(header, "header"),
			orEmpty(navbar, "nav"),
			view.El("main", nil, page),
			orEmpty(footer, "footer"),
		},
	}
}

// Page builds the chrome for path from site and entries and composes it
// around page.
func Page(site Site, entries []nav.Entry, path string, page *view.Node) *view.Node {
	return Compose(Header(site), Navbar(nav.Build(entries, path)), page, Footer(site))
}

func orEmpty(n *view.Node, tag string) *view.Node {
	if n == nil {
		return view.El(tag, nil)
	}
	return n
}

// Header renders the logo, the search form and the account and cart links.
func Header(s Site) *view.Node {
	return view.El("header", nil,
		view.El("div", view.A("class", "logo-title"),
			view.El("a", view.A("href", "/"),
				view.El("img", view.A("src", s.Logo, "alt", s.LogoAlt, "height", "100%")),
			),
		),
		view.El("div", view.A("class", "search-bar"),
			view.El("form", view.A("action", s.SearchAction, "method", "get"),
				view.El("label", view.A("for", "search-input", "class", "visually-hidden"), view.Text("Szukaj produktów")),
				view.El("input", view.A("type", "text", "id", "search-input", "name", "query", "placeholder", "Szukaj...")),
				view.El("button", view.A("type", "submit"), view.Text("Szukaj")),
			),
		),
		view.El("div", view.A("class", "user-cart-icons"),
			view.El("a", view.A("href", s.AccountPath, "aria-label", "Moje konto"),
				view.El("img", view.A("src", "/my-account.svg", "width", "32", "height", "32", "alt", "")),
			),
			view.El("a", view.A("href", s.CartPath, "aria-label", "Mój koszyk"),
				view.El("img", view.A("src", "/shopping-cart.svg", "width", "32", "height", "32", "alt", "")),
				view.El("span", view.A("class", "cart-count"), view.Text("0")),
			),
		),
	)
}

// Navbar renders the navigation list; the active entry carries aria-current.
func Navbar(items []nav.RenderedItem) *view.Node {
	lis := make([]*view.Node, 0, len(items))
	for _, it := range items {
		attrs := view.A("href", it.Href)
		if it.Active {
			attrs = append(attrs, view.Attr{Key: "aria-current", Val: "page"}, view.Attr{Key: "class", Val: "active"})
		}
		lis = append(lis, view.El("li", nil, view.El("a", attrs, view.Text(it.Label))))
	}
	return view.El("nav", nil, view.El("ul", nil, lis...))
}

// Footer renders the informational links, social profiles and copyright line.
func Footer(s Site) *view.Node {
	links := make([]*view.Node, 0, len(s.FooterLinks))
	for _, l := range s.FooterLinks {
		links = append(links, view.El("li", nil, view.El("a", view.A("href", l.Href), view.Text(l.Label))))
	}
	social := []*view.Node{view.El("p", nil, view.Text("Znajdź nas w social mediach:"))}
	for _, sl := range s.Social {
		social = append(social, view.El("a", view.A(
			"href", sl.Href,
			"target", "_blank",
			"rel", "noopener noreferrer",
			"aria-label", sl.Label,
		), view.El("img", view.A("src", sl.Icon, "width", "48", "height", "48", "alt", ""))))
	}
	return view.El("footer", nil,
		view.El("div", view.A("class", "footer-links"), view.El("ul", nil, links...)),
		view.El("div", view.A("class", "social-media"), social...),
		view.El("div", view.A("class", "copyright"),
			view.El("p", nil,
				view.Text("©"),
				view.El("span", view.A("id", "current-year"), view.Text(strconv.Itoa(s.CopyrightYear))),
				view.Text(" "+s.Brand+". Wszelkie prawa zastrzeżone."),
			),
		),
	)
}
