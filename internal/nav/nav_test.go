package nav

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildMarksActiveEntry(t *testing.T) {
	items := Build(Main(), "/category/woman")
	var active []string
	for _, it := range items {
		if it.Active {
			active = append(active, it.Href)
		}
	}
	if diff := cmp.Diff([]string{"/category/woman"}, active); diff != "" {
		t.Fatalf("active mismatch (-want +got):\n%s", diff)
	}
	if len(items) != len(Main()) {
		t.Fatalf("expected %d items, got %d", len(Main()), len(items))
	}
}

func TestBuildHomeOnlyActiveAtRoot(t *testing.T) {
	for _, it := range Build(Main(), "/sale") {
		if it.Href == "/" && it.Active {
			t.Fatalf("home should not be active on /sale")
		}
	}
	if !Build(Main(), "")[0].Active {
		t.Fatalf("home should be active for empty path")
	}
}

func TestBuildPreservesOrder(t *testing.T) {
	entries := Main()
	items := Build(entries, "/")
	for i := range entries {
		if items[i].Href != entries[i].Path || items[i].Label != entries[i].Label {
			t.Fatalf("item %d = %+v, want %+v", i, items[i], entries[i])
		}
	}
}

func TestBreadcrumbs(t *testing.T) {
	got := Breadcrumbs(Main(), "/category/man")
	want := []Crumb{
		{Href: "/", Label: "Strona Główna"},
		{Href: "/category/man", Label: "Męska", Active: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("crumbs mismatch (-want +got):\n%s", diff)
	}

	got = Breadcrumbs(Main(), "/privacy")
	want = []Crumb{
		{Href: "/", Label: "Strona Główna"},
		{Href: "/privacy", Label: "Privacy", Active: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("crumbs mismatch (-want +got):\n%s", diff)
	}

	got = Breadcrumbs(nil, "/")
	if len(got) != 1 || got[0].Label != "Home" || !got[0].Active {
		t.Fatalf("unexpected root crumbs: %+v", got)
	}
}
