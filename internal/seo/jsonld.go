package seo

import (
	"encoding/json"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
// encoding/json escapes <, > and &, so the result is safe inside a script tag.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Organization returns a minimal Organization schema.
func Organization(name, url, logoURL string, sameAs []string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	if len(sameAs) > 0 {
		m["sameAs"] = append([]string(nil), sameAs...)
	}
	return m
}

// WebSite returns a minimal WebSite schema with optional SearchAction.
func WebSite(name, url, searchActionURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if searchActionURL != "" {
		m["potentialAction"] = map[string]any{
			"@type":       "SearchAction",
			"target":      searchActionURL + "{search_term_string}",
			"query-input": "required name=search_term_string",
		}
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// Offer is the price part of a Product schema.
type Offer struct {
	Price    string
	Currency string
}

// Product returns a minimal Product schema without the @context key, suitable
// for nesting inside an ItemList.
func Product(name, url, imageURL string, offer Offer) map[string]any {
	m := map[string]any{
		"@type": "Product",
		"name":  name,
	}
	if url != "" {
		m["url"] = url
	}
	if imageURL != "" {
		m["image"] = imageURL
	}
	if offer.Price != "" {
		m["offers"] = map[string]any{
			"@type":         "Offer",
			"price":         offer.Price,
			"priceCurrency": offer.Currency,
			"itemCondition": "https://schema.org/UsedCondition",
		}
	}
	return m
}

// ItemList wraps products in a schema.org ItemList, keeping their order.
func ItemList(name string, items []map[string]any) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"item":     it,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "ItemList",
		"name":            name,
		"numberOfItems":   len(items),
		"itemListElement": el,
	}
}
