// Package cms loads the storefront's static text pages (privacy policy, terms,
// shipping) from markdown files with YAML front matter. Pages are rendered,
// sanitized and converted into content nodes once, at load time.
package cms

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"

	"github.com/Lenon69/MegJoniShop/internal/view"
)

//go:embed content
var bundled embed.FS

const defaultContentDir = "content/legal"

// ErrNotFound is returned when a page slug is not in the library.
var ErrNotFound = errors.New("cms: page not found")

// ContentPage is a rendered static page.
type ContentPage struct {
	Slug      string
	Title     string
	Summary   string
	Body      []*view.Node
	UpdatedAt time.Time
	SEO       ContentSEO
}

// ContentSEO holds optional metadata overrides for static pages.
type ContentSEO struct {
	Title       string
	Description string
	OGImage     string
}

type contentFrontMatter struct {
	Title     string                `yaml:"title"`
	Summary   string                `yaml:"summary"`
	UpdatedAt string                `yaml:"updated_at"`
	SEO       contentFrontMatterSEO `yaml:"seo"`
}

type contentFrontMatterSEO struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	OGImage     string `yaml:"og_image"`
}

// Library is an immutable set of rendered pages keyed by slug.
type Library struct {
	pages map[string]ContentPage
}

// Default loads the pages bundled with the binary.
func Default() (*Library, error) {
	return Load(bundled, defaultContentDir)
}

// Load renders every *.md file directly under dir in fsys.
func Load(fsys fs.FS, dir string) (*Library, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("cms: read %s: %w", dir, err)
	}
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	policy := newContentPolicy()
	lib := &Library{pages: make(map[string]ContentPage, len(entries))}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		slug := sanitizeSlug(strings.TrimSuffix(e.Name(), ".md"))
		if slug == "" {
			continue
		}
		file := path.Join(dir, e.Name())
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("cms: read %s: %w", file, err)
		}
		page, err := renderPage(md, policy, slug, data)
		if err != nil {
			return nil, fmt.Errorf("cms: %s: %w", file, err)
		}
		lib.pages[slug] = page
	}
	return lib, nil
}

// Page returns the page stored under slug.
func (l *Library) Page(slug string) (ContentPage, error) {
	if l == nil {
		return ContentPage{}, ErrNotFound
	}
	page, ok := l.pages[sanitizeSlug(slug)]
	if !ok {
		return ContentPage{}, ErrNotFound
	}
	return page, nil
}

// Slugs lists the loaded pages in alphabetical order.
func (l *Library) Slugs() []string {
	if l == nil {
		return nil
	}
	out := make([]string, 0, len(l.pages))
	for slug := range l.pages {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}

func renderPage(md goldmark.Markdown, policy *bluemonday.Policy, slug string, data []byte) (ContentPage, error) {
	fm, body := splitFrontMatter(string(data))
	front := contentFrontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return ContentPage{}, fmt.Errorf("parse front matter: %w", err)
		}
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(body), &buf); err != nil {
		return ContentPage{}, fmt.Errorf("render markdown: %w", err)
	}
	nodes, err := view.FromHTML(policy.Sanitize(buf.String()))
	if err != nil {
		return ContentPage{}, err
	}
	page := ContentPage{
		Slug:      slug,
		Title:     strings.TrimSpace(front.Title),
		Summary:   strings.TrimSpace(front.Summary),
		Body:      nodes,
		UpdatedAt: parseContentDate(front.UpdatedAt),
		SEO: ContentSEO{
			Title:       strings.TrimSpace(front.SEO.Title),
			Description: strings.TrimSpace(front.SEO.Description),
			OGImage:     strings.TrimSpace(front.SEO.OGImage),
		},
	}
	if page.Title == "" {
		// fall back to slug prettified
		page.Title = prettifySlug(slug)
	}
	return page, nil
}

func newContentPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(false)
	policy.RequireNoFollowOnFullyQualifiedLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	return policy
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func parseContentDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006/01/02",
		"02.01.2006",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func prettifySlug(slug string) string {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return slug
	}
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		runes[0] = asciiUpper(runes[0])
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

func sanitizeSlug(slug string) string {
	slug = strings.TrimSpace(strings.ToLower(slug))
	slug = strings.Trim(slug, "/")
	if slug == "" || strings.Contains(slug, "..") || strings.Contains(slug, "/") {
		return ""
	}
	return slug
}

func asciiUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
