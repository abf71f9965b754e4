package pages

import (
	"github.com/Lenon69/MegJoniShop/internal/catalog"
	"github.com/Lenon69/MegJoniShop/internal/seo"
	"github.com/Lenon69/MegJoniShop/internal/view"
)

// NotFoundMessage is the body text of the fallback page.
const NotFoundMessage = "Strona nie istnieje."

func homeView(d Deps, featured []catalog.Product) View {
	return func() Result {
		return Result{Content: view.Fragment(
			view.El("section", view.A("class", "hero-section"),
				view.El("img", view.A("src", "/clothes1.jpg", "alt", "Odkryj unikalne perełki z drugiej ręki", "class", "hero-image")),
				view.El("div", view.A("class", "hero-text"),
					view.El("h2", nil, view.Text("Moda z Duszą - Znajdź Swoje Unikalne Perełki")),
					view.El("p", nil, view.Text("Wysokiej jakości odzież używana, starannie wyselekcjonowana dla Ciebie.")),
					view.El("a", view.A("href", "/shop"), view.El("button", nil, view.Text("Przejdź do sklepu"))),
				),
			),
			view.El("section", view.A("class", "featured-products"),
				view.El("h2", nil, view.Text("Polecane produkty")),
				productGrid(featured),
				view.El("div", view.A("class", "view-all-link"),
					view.El("a", view.A("href", "/shop"), view.Text("Zobacz wszystkie produkty")),
				),
			),
			view.El("section", view.A("class", "about-promo"),
				view.El("h2", nil, view.Text("Dlaczego Second Hand?")),
				view.El("p", nil, view.Text("Moda z drugiej ręki to świadomy wybór - ekologiczny, ekonomiczny i niepowtarzalny. Daj ubraniom drugie życie!")),
				view.El("a", view.A("href", "/about", "class", "btn"), view.El("button", nil, view.Text("Dowiedz się więcej o nas"))),
			),
		)}
	}
}

func aboutView(d Deps) View {
	return func() Result {
		return Result{
			Content: view.El("section", view.A("class", "about-promo"),
				view.El("h2", nil, view.Text("O Nas - "+d.Brand)),
				view.El("p", nil, view.Text("Witaj w "+d.Brand+"! Jesteśmy pasjonatami mody z drugiej ręki i wierzymy, że ubrania zasługują na drugie życie. "+
					"Nasz sklep to miejsce, gdzie znajdziesz unikalne perełki vintage i starannie wyselekcjonowaną odzież używaną w doskonałym stanie.")),
				view.El("p", nil, view.Text("Naszą misją jest promowanie zrównoważonej mody i pokazywanie, że można ubierać się stylowo, dbając jednocześnie o planetę. "+
					"Każdy zakup w naszym sklepie to krok w stronę bardziej świadomego konsumpcjonizmu.")),
				view.El("p", nil, view.Text("Dołącz do naszej społeczności miłośników second handu i odkryj swój niepowtarzalny styl!")),
				view.El("a", view.A("href", "/category/woman"), view.El("button", nil, view.Text("Zobacz nasze produkty"))),
			),
			Meta: pageMeta(d, "/about", "O Nas | "+d.Brand,
				"Poznaj "+d.Brand+" - sklep z odzieżą używaną, który daje ubraniom drugie życie."),
		}
	}
}

func contactView(d Deps) View {
	field := func(id, label string, input *view.Node) *view.Node {
		return view.El("div", view.A("class", "form-field"),
			view.El("label", view.A("for", id, "class", "visually-hidden"), view.Text(label)),
			input,
		)
	}
	return func() Result {
		return Result{
			Content: view.El("section", view.A("class", "contact-section"),
				view.El("h2", nil, view.Text("Skontaktuj się z Nami")),
				view.El("p", nil, view.Text("Masz pytania dotyczące produktów, zamówień, czy współpracy? Chętnie pomożemy! "+
					"Skontaktuj się z nami poprzez formularz poniżej lub bezpośrednio.")),
				view.El("div", view.A("class", "contact-info"),
					view.El("p", nil,
						view.El("strong", nil, view.Text("Email: ")),
						view.El("a", view.A("href", "mailto:"+d.ContactEmail), view.Text(d.ContactEmail)),
					),
				),
				view.El("form", view.A("action", d.ContactAction, "method", "post"),
					field("name", "Twoje imię:",
						view.El("input", view.A("type", "text", "id", "name", "name", "name", "placeholder", "Twoje imię", "required"))),
					field("email", "Twój email:",
						view.El("input", view.A("type", "email", "id", "email", "name", "email", "placeholder", "Twój email", "required"))),
					field("subject", "Temat:",
						view.El("input", view.A("type", "text", "id", "subject", "name", "subject", "placeholder", "Temat wiadomości"))),
					field("message", "Twoja wiadomość:",
						view.El("textarea", view.A("id", "message", "name", "message", "placeholder", "Twoja wiadomość", "rows", "6", "required"))),
					view.El("button", view.A("type", "submit"), view.Text("Wyślij wiadomość")),
				),
			),
			Meta: pageMeta(d, "/contact", "Kontakt | "+d.Brand,
				"Skontaktuj się z "+d.Brand+" w sprawie produktów, zamówień lub współpracy."),
		}
	}
}

func notFoundView(d Deps) View {
	return func() Result {
		return Result{
			Content: view.El("section", view.A("class", "not-found"),
				view.El("p", nil, view.Text(NotFoundMessage)),
				view.El("a", view.A("href", "/"), view.Text("Wróć na stronę główną")),
			),
			Meta: &seo.Meta{
				Title: "Strona nie istnieje | " + d.Brand,
				Names: map[string]string{"robots": "noindex, follow"},
			},
		}
	}
}
