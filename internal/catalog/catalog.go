// Package catalog is the placeholder product source behind the category pages.
// Listings are validated once when the source is built and never change afterwards.
package catalog

import (
	"fmt"
	"strings"

	"github.com/Lenon69/MegJoniShop/internal/format"
)

// Category names a product listing.
type Category string

const (
	Featured    Category = "featured"
	Woman       Category = "woman"
	Man         Category = "man"
	NewArrivals Category = "new-arrivals"
	Sale        Category = "sale"
)

// Categories lists every listing the storefront renders.
func Categories() []Category {
	return []Category{Featured, Woman, Man, NewArrivals, Sale}
}

// Known reports whether c is one of Categories.
func (c Category) Known() bool {
	for _, k := range Categories() {
		if c == k {
			return true
		}
	}
	return false
}

// Price is an amount in minor units.
type Price struct {
	Minor    int64
	Currency string
}

// Display renders the price as shown on product cards.
func (p Price) Display() string { return format.Price(p.Minor, p.Currency) }

// IsZero reports whether the price is unset.
func (p Price) IsZero() bool { return p.Minor == 0 && p.Currency == "" }

// Product is one card in a listing.
type Product struct {
	ID         string
	Name       string
	Price      Price
	WasPrice   Price // previous price for sale items; zero when absent
	Image      string
	Alt        string
	DetailPath string
}

// PriceDisplay returns the formatted current price.
func (p Product) PriceDisplay() string { return p.Price.Display() }

// Source yields the products of a category in presentation order.
type Source interface {
	Products(c Category) []Product
}

// ValidationError describes a product entry missing a required field.
type ValidationError struct {
	Category Category
	Index    int
	Field    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog: %s[%d]: missing or invalid %s", e.Category, e.Index, e.Field)
}

func validate(c Category, i int, p Product) error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return &ValidationError{Category: c, Index: i, Field: "name"}
	case p.Price.Minor <= 0:
		return &ValidationError{Category: c, Index: i, Field: "price"}
	case strings.TrimSpace(p.Image) == "":
		return &ValidationError{Category: c, Index: i, Field: "image"}
	case strings.TrimSpace(p.DetailPath) == "":
		return &ValidationError{Category: c, Index: i, Field: "detail_path"}
	case !p.WasPrice.IsZero() && p.WasPrice.Minor <= p.Price.Minor:
		return &ValidationError{Category: c, Index: i, Field: "was_price"}
	}
	return nil
}
