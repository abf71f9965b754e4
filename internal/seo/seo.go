package seo

import (
	"sort"
	"strings"
)

// Meta describes the document head. A string field counts as set when it is
// non-empty after trimming; map entries and JSON-LD blocks are additive.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	// OG holds Open Graph property tags keyed by property ("og:title").
	OG map[string]string
	// Names holds <meta name=...> tags (keywords, author, robots, theme-color).
	Names map[string]string
	// JSONLD holds serialized schema.org payloads.
	JSONLD []string
}

// Merge overlays page on defaults field by field. A nil page yields a copy of
// defaults. Map entries from page win on key collision.
func Merge(defaults Meta, page *Meta) Meta {
	out := defaults.Clone()
	if page == nil {
		return out
	}
	out.Title = pick(page.Title, out.Title)
	out.Description = pick(page.Description, out.Description)
	out.Canonical = pick(page.Canonical, out.Canonical)
	out.OG = union(out.OG, page.OG)
	out.Names = union(out.Names, page.Names)
	if len(page.JSONLD) > 0 {
		out.JSONLD = append(out.JSONLD, page.JSONLD...)
	}
	return out
}

// Clone returns a deep copy so callers can mutate maps freely.
func (m Meta) Clone() Meta {
	cp := m
	cp.OG = union(nil, m.OG)
	cp.Names = union(nil, m.Names)
	if m.JSONLD != nil {
		cp.JSONLD = append([]string(nil), m.JSONLD...)
	}
	return cp
}

// OGKeys returns the Open Graph keys in a stable order.
func (m Meta) OGKeys() []string { return sortedKeys(m.OG) }

// NameKeys returns the named meta keys in a stable order.
func (m Meta) NameKeys() []string { return sortedKeys(m.Names) }

func pick(override, fallback string) string {
	if strings.TrimSpace(override) != "" {
		return override
	}
	return fallback
}

func union(base, over map[string]string) map[string]string {
	if base == nil && over == nil {
		return nil
	}
	out := make(map[string]string, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
