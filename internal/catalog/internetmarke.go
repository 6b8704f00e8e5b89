package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Internetmarke destinations
const (
	DestinationNational      = "national"
	DestinationEU            = "eu"
	DestinationInternational = "international"
)

// IMProduct is one Deutsche Post Internetmarke product. Child products
// combine a parent with a fixed set of additional services.
type IMProduct struct {
	Code        string          `json:"code" yaml:"code"`
	Name        string          `json:"name" yaml:"name"`
	ParentCode  string          `json:"parent_code,omitempty" yaml:"parent_code"`
	Services    []string        `json:"services,omitempty" yaml:"services"`
	Destination string          `json:"destination" yaml:"destination"`
	MaxWeight   int             `json:"max_weight_g,omitempty" yaml:"max_weight_g"` // grams, 0 = unlimited
	Price       decimal.Decimal `json:"price" yaml:"price"`
}

// InternetmarkeTable resolves Deutsche Post products from a static list.
type InternetmarkeTable struct {
	products []IMProduct
	byCode   map[string]IMProduct
}

// NewInternetmarkeTable indexes products. Later duplicates win.
func NewInternetmarkeTable(products []IMProduct) *InternetmarkeTable {
	t := &InternetmarkeTable{
		products: make([]IMProduct, 0, len(products)),
		byCode:   make(map[string]IMProduct, len(products)),
	}
	for _, p := range products {
		if p.Code == "" {
			continue
		}
		if _, dup := t.byCode[p.Code]; !dup {
			t.products = append(t.products, p)
		}
		t.byCode[p.Code] = p
	}
	return t
}

// IsParent reports whether code is a parent (service-less) product.
func (t *InternetmarkeTable) IsParent(code string) bool {
	p, ok := t.byCode[code]
	return ok && p.ParentCode == ""
}

// ParentCode returns the parent of code, or code itself for parents and
// unknown codes.
func (t *InternetmarkeTable) ParentCode(code string) string {
	if p, ok := t.byCode[code]; ok && p.ParentCode != "" {
		return p.ParentCode
	}
	return code
}

// ProductServices returns the additional services baked into code.
func (t *InternetmarkeTable) ProductServices(code string) []string {
	p, ok := t.byCode[code]
	if !ok {
		return nil
	}
	out := make([]string, len(p.Services))
	copy(out, p.Services)
	return out
}

// ProductCode finds the child of parent that carries exactly services.
// An empty service list resolves to the parent itself.
func (t *InternetmarkeTable) ProductCode(parent string, services []string) (string, bool) {
	parent = t.ParentCode(parent)
	if _, ok := t.byCode[parent]; !ok {
		return "", false
	}
	if len(services) == 0 {
		return parent, true
	}
	want := normalizeServices(services)
	for _, p := range t.products {
		if p.ParentCode != parent {
			continue
		}
		if normalizeServices(p.Services) == want {
			return p.Code, true
		}
	}
	return "", false
}

// ProductTotal returns the stamp price of code; zero when unknown.
func (t *InternetmarkeTable) ProductTotal(code string) decimal.Decimal {
	if p, ok := t.byCode[code]; ok {
		return p.Price
	}
	return decimal.Zero
}

// AvailableProducts lists codes sold for destination that accept a
// shipment of weightGrams, in table order. parentOnly collapses children
// onto their parents.
func (t *InternetmarkeTable) AvailableProducts(destination string, weightGrams int, parentOnly bool) []string {
	var out []string
	seen := map[string]bool{}
	for _, p := range t.products {
		if p.Destination != destination {
			continue
		}
		if p.MaxWeight > 0 && weightGrams > p.MaxWeight {
			continue
		}
		code := p.Code
		if parentOnly {
			code = t.ParentCode(code)
		}
		if seen[code] {
			continue
		}
		seen[code] = true
		out = append(out, code)
	}
	return out
}

// Product returns the product stored under code.
func (t *InternetmarkeTable) Product(code string) (IMProduct, bool) {
	p, ok := t.byCode[code]
	return p, ok
}

func normalizeServices(services []string) string {
	s := make([]string, 0, len(services))
	for _, v := range services {
		if v = strings.TrimSpace(v); v != "" {
			s = append(s, v)
		}
	}
	sort.Strings(s)
	return strings.Join(s, ",")
}
