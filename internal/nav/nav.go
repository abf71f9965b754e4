package nav

import (
	"path"
	"strings"
)

// Entry is one navigation bar link.
type Entry struct {
	Label string
	Path  string // e.g. "/category/woman"
}

// RenderedItem is an entry with its active state resolved for one request.
type RenderedItem struct {
	Href   string
	Label  string
	Active bool
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Main returns the primary navigation of the storefront in display order.
func Main() []Entry {
	return []Entry{
		{Label: "Strona Główna", Path: "/"},
		{Label: "Damska", Path: "/category/woman"},
		{Label: "Męska", Path: "/category/man"},
		{Label: "Nowości", Path: "/new-arrivals"},
		{Label: "Wyprzedaż", Path: "/sale"},
		{Label: "O Nas", Path: "/about"},
		{Label: "Kontakt", Path: "/contact"},
	}
}

// Build renders navigation items with active state given the current path.
func Build(entries []Entry, currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(entries))
	for _, it := range entries {
		items = append(items, RenderedItem{
			Href:   it.Path,
			Label:  it.Label,
			Active: isActive(it.Path, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	// match exact or prefix boundary: "/sale" or "/sale/..."
	if currentPath == itemPath {
		return true
	}
	return strings.HasPrefix(currentPath, itemPath+"/")
}

// Breadcrumbs builds breadcrumb entries from the current path.
// Rules:
// - Always start with the home entry
// - Intermediate segments appear only when they are navigation entries
// - The last segment always appears, labelled from entries or the prettified slug
func Breadcrumbs(entries []Entry, currentPath string) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	labels := make(map[string]string, len(entries))
	for _, e := range entries {
		labels[e.Path] = e.Label
	}
	home := labels["/"]
	if home == "" {
		home = "Home"
	}
	crumbs := []Crumb{{Href: "/", Label: home, Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}

	clean := path.Clean(currentPath)
	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")
	href := ""
	for i, part := range parts {
		if part == "" {
			continue
		}
		href += "/" + part
		last := i == len(parts)-1
		label, known := labels[href]
		if !known && !last {
			continue
		}
		if !known {
			label = titleFromSegment(part)
		}
		crumbs = append(crumbs, Crumb{Href: href, Label: label, Active: last})
	}
	return crumbs
}

func titleFromSegment(seg string) string {
	if seg == "" {
		return seg
	}
	// replace hyphens/underscores with spaces and capitalize first letter
	s := strings.ReplaceAll(seg, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	r := []rune(s)
	r[0] = toUpper(r[0])
	return string(r)
}

func toUpper(r rune) rune {
	// ASCII only is sufficient for slugs here
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
