package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogListings(t *testing.T) {
	src, err := Default()
	require.NoError(t, err)

	woman := src.Products(Woman)
	require.Len(t, woman, 2)
	require.Equal(t, "Elegancka Sukienka", woman[0].Name)
	require.Equal(t, "75.00 PLN", woman[0].PriceDisplay())
	require.Equal(t, "Jeansy Vintage", woman[1].Name)

	sale := src.Products(Sale)
	require.Len(t, sale, 1)
	require.Equal(t, "30.00 PLN", sale[0].PriceDisplay())
	require.Equal(t, "50.00 PLN", sale[0].WasPrice.Display())
	// asset and detail paths are passed through verbatim
	require.Equal(t, "letnia-sukienka.jpg", sale[0].Image)
	require.Equal(t, "product/id-produktu", src.Products(Featured)[0].DetailPath)

	for _, c := range Categories() {
		require.NotEmpty(t, src.Products(c), "category %s", c)
	}
}

func TestProductsPreservesInsertionOrder(t *testing.T) {
	doc := `
categories:
  man:
    - {name: Zeta, price: "10", image: /z.jpg, detail_path: /p/z}
    - {name: Alfa, price: "20.5", image: /a.jpg, detail_path: /p/a}
    - {name: Mi, price: "5.05", image: /m.jpg, detail_path: /p/m}
`
	src, err := LoadYAML(strings.NewReader(doc))
	require.NoError(t, err)
	got := src.Products(Man)
	require.Equal(t, []string{"Zeta", "Alfa", "Mi"}, []string{got[0].Name, got[1].Name, got[2].Name})
	require.Equal(t, int64(2050), got[1].Price.Minor)
	require.Equal(t, "5.05 PLN", got[2].PriceDisplay())
}

func TestProductsReturnsCopy(t *testing.T) {
	src, err := Default()
	require.NoError(t, err)
	got := src.Products(Woman)
	got[0].Name = "mutated"
	require.Equal(t, "Elegancka Sukienka", src.Products(Woman)[0].Name)
	require.Nil(t, src.Products(Category("unknown")))
}

func TestLoadYAMLRejectsIncompleteEntries(t *testing.T) {
	cases := map[string]string{
		"name":        `{price: "1", image: /a.jpg, detail_path: /p}`,
		"price":       `{name: A, image: /a.jpg, detail_path: /p}`,
		"image":       `{name: A, price: "1", detail_path: /p}`,
		"detail_path": `{name: A, price: "1", image: /a.jpg}`,
		"was_price":   `{name: A, price: "10", was_price: "5", image: /a.jpg, detail_path: /p}`,
	}
	for field, entry := range cases {
		_, err := LoadYAML(strings.NewReader("categories:\n  sale:\n    - " + entry + "\n"))
		var verr *ValidationError
		require.True(t, errors.As(err, &verr), "field %s: %v", field, err)
		require.Equal(t, field, verr.Field)
		require.Equal(t, Sale, verr.Category)
	}
}

func TestLoadYAMLRejectsBadInput(t *testing.T) {
	for _, amount := range []string{"1.234", "-0.50", "-5", "+5", "1.-5", "1.+5", "1.", ".5", "1,50", "1e3", "92233720368547758.07"} {
		_, err := LoadYAML(strings.NewReader("categories:\n  sale:\n    - {name: A, price: \"" + amount + "\", image: x, detail_path: y}\n"))
		require.Error(t, err, "amount %s", amount)
	}

	_, err := LoadYAML(strings.NewReader("categories:\n  womn:\n    - {name: A, price: \"1\", image: x, detail_path: y}\n"))
	require.ErrorContains(t, err, `unknown category "womn"`)

	_, err = LoadYAML(strings.NewReader("unknown_key: 1\n"))
	require.Error(t, err)

	src, err := LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	require.Nil(t, src.Products(Woman))
}

func TestParseMinor(t *testing.T) {
	cases := map[string]int64{
		"":       0,
		"75":     7500,
		"49.99":  4999,
		"1.5":    150,
		" 0.05 ": 5,
		"007.10": 710,
	}
	for in, want := range cases {
		got, err := parseMinor(in)
		require.NoError(t, err, "amount %q", in)
		require.Equal(t, want, got, "amount %q", in)
	}
}

func TestNewStaticSourceRejectsUnknownCategory(t *testing.T) {
	_, err := NewStaticSource(map[Category][]Product{
		"womn": {{Name: "A", Price: Price{Minor: 100}, Image: "/a.jpg", DetailPath: "/p"}},
	})
	require.ErrorContains(t, err, "unknown category")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("currency: eur\ncategories:\n  woman:\n    - {name: A, price: \"1.5\", image: /a.jpg, detail_path: /p/a}\n"), 0o600))

	src, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "1.50 EUR", src.Products(Woman)[0].PriceDisplay())

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	def, err := LoadFile("")
	require.NoError(t, err)
	require.Len(t, def.Products(Man), 2)
}
