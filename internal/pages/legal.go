package pages

import (
	"github.com/Lenon69/MegJoniShop/internal/cms"
	"github.com/Lenon69/MegJoniShop/internal/format"
	"github.com/Lenon69/MegJoniShop/internal/view"
)

type legalPage struct {
	slug string
	path string
}

func legalPages() []legalPage {
	return []legalPage{
		{slug: "privacy", path: "/privacy"},
		{slug: "terms", path: "/terms"},
		{slug: "shipping", path: "/shipping"},
	}
}

func legalView(d Deps, path string, page cms.ContentPage) View {
	title := page.Title + " | " + d.Brand
	if page.SEO.Title != "" {
		title = page.SEO.Title
	}
	description := page.Summary
	if page.SEO.Description != "" {
		description = page.SEO.Description
	}
	body := append([]*view.Node(nil), page.Body...)

	var updated *view.Node
	if !page.UpdatedAt.IsZero() {
		updated = view.El("p", view.A("class", "legal-updated"),
			view.Text("Ostatnia aktualizacja: "),
			view.El("time", view.A("datetime", page.UpdatedAt.Format("2006-01-02")),
				view.Text(format.Date(page.UpdatedAt, "pl"))),
		)
	}

	return func() Result {
		meta := pageMeta(d, path, title, description)
		if page.SEO.OGImage != "" {
			meta.OG["og:image"] = absURL(d.SiteURL, page.SEO.OGImage)
		}
		return Result{
			Content: view.El("article", view.A("class", "legal-page", "data-slug", page.Slug),
				view.El("h2", nil, view.Text(page.Title)),
				updated,
				view.El("div", view.A("class", "legal-body"), body...),
			),
			Meta: meta,
		}
	}
}
