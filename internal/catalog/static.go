package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

const defaultCurrency = "PLN"

// StaticSource serves listings fixed at construction time.
type StaticSource struct {
	listings map[Category][]Product
}

// NewStaticSource validates and copies the listings.
func NewStaticSource(listings map[Category][]Product) (*StaticSource, error) {
	s := &StaticSource{listings: make(map[Category][]Product, len(listings))}
	for c, products := range listings {
		if !c.Known() {
			return nil, fmt.Errorf("catalog: unknown category %q (want one of %s)", c, categoryNames())
		}
		for i, p := range products {
			if p.Price.Currency == "" {
				p.Price.Currency = defaultCurrency
			}
			if !p.WasPrice.IsZero() && p.WasPrice.Currency == "" {
				p.WasPrice.Currency = p.Price.Currency
			}
			if err := validate(c, i, p); err != nil {
				return nil, err
			}
			s.listings[c] = append(s.listings[c], p)
		}
	}
	return s, nil
}

// Products returns a copy of the category listing in insertion order.
func (s *StaticSource) Products(c Category) []Product {
	if s == nil {
		return nil
	}
	src := s.listings[c]
	if len(src) == 0 {
		return nil
	}
	out := make([]Product, len(src))
	copy(out, src)
	return out
}

// Default returns the placeholder catalog bundled with the binary.
func Default() (*StaticSource, error) {
	return LoadYAML(bytes.NewReader(defaultCatalog))
}

// LoadFile reads a catalog YAML file; an empty path yields the bundled catalog.
func LoadFile(path string) (*StaticSource, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()
	return LoadYAML(f)
}

type yamlCatalog struct {
	Currency   string                   `yaml:"currency"`
	Categories map[string][]yamlProduct `yaml:"categories"`
}

type yamlProduct struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Price      string `yaml:"price"`
	WasPrice   string `yaml:"was_price"`
	Image      string `yaml:"image"`
	Alt        string `yaml:"alt"`
	DetailPath string `yaml:"detail_path"`
}

// LoadYAML decodes a catalog document:
//
//	currency: PLN
//	categories:
//	  woman:
//	    - name: Elegancka Sukienka
//	      price: "75.00"
//	      image: /placeholder-damska-1.jpg
//	      detail_path: /product/damskie-001
func LoadYAML(r io.Reader) (*StaticSource, error) {
	var doc yamlCatalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("catalog: decode yaml: %w", err)
	}
	currency := strings.ToUpper(strings.TrimSpace(doc.Currency))
	if currency == "" {
		currency = defaultCurrency
	}
	listings := make(map[Category][]Product, len(doc.Categories))
	for name, items := range doc.Categories {
		c := Category(strings.TrimSpace(name))
		for i, it := range items {
			price, err := parseMinor(it.Price)
			if err != nil {
				return nil, fmt.Errorf("catalog: %s[%d] price: %w", c, i, err)
			}
			p := Product{
				ID:         strings.TrimSpace(it.ID),
				Name:       strings.TrimSpace(it.Name),
				Price:      Price{Minor: price, Currency: currency},
				Image:      strings.TrimSpace(it.Image),
				Alt:        strings.TrimSpace(it.Alt),
				DetailPath: strings.TrimSpace(it.DetailPath),
			}
			if strings.TrimSpace(it.WasPrice) != "" {
				was, err := parseMinor(it.WasPrice)
				if err != nil {
					return nil, fmt.Errorf("catalog: %s[%d] was_price: %w", c, i, err)
				}
				p.WasPrice = Price{Minor: was, Currency: currency}
			}
			listings[c] = append(listings[c], p)
		}
	}
	return NewStaticSource(listings)
}

// parseMinor converts "49.99" or "75" into minor units. Only unsigned decimal
// digits are accepted, with at most two fractional digits.
func parseMinor(v string) (int64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	whole, frac, hasFrac := strings.Cut(v, ".")
	if !isDigits(whole) || (hasFrac && (!isDigits(frac) || len(frac) > 2)) {
		return 0, fmt.Errorf("invalid amount %q", v)
	}
	if len(frac) == 1 {
		frac += "0"
	}
	major, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || major > (math.MaxInt64-99)/100 {
		return 0, fmt.Errorf("amount %q out of range", v)
	}
	var minor int64
	if frac != "" {
		minor, _ = strconv.ParseInt(frac, 10, 64)
	}
	return major*100 + minor, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func categoryNames() string {
	names := make([]string, 0, len(Categories()))
	for _, c := range Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
