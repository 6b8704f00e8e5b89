package catalog

import "strings"

// Product is a DHL product code with its display title.
type Product struct {
	Code  string `json:"code"`
	Title string `json:"title"`
}

// Product codes
const (
	ProductPaket              = "V01PAK"
	ProductPaketPrio          = "V01PRIO"
	ProductPaketTaggleich     = "V06PAK"
	ProductWarenpost          = "V62WP"
	ProductPaketConnect       = "V55PAK"
	ProductEuropaket          = "V54EPAK"
	ProductPaketInternational = "V53WPAK"
)

var germanyDomestic = []Product{
	{Code: ProductPaket, Title: "DHL Paket"},
	{Code: ProductPaketPrio, Title: "DHL Paket PRIO"},
	{Code: ProductPaketTaggleich, Title: "DHL Paket Taggleich"},
	{Code: ProductWarenpost, Title: "DHL Warenpost"},
}

var germanyInternational = []Product{
	{Code: ProductPaketConnect, Title: "DHL Paket Connect"},
	{Code: ProductEuropaket, Title: "DHL Europaket (B2B)"},
	{Code: ProductPaketInternational, Title: "DHL Paket International"},
}

var returnDomestic = []Product{
	{Code: "retoure_online", Title: "DHL Retoure Online"},
}

var returnInternational = []Product{
	{Code: "retoure_international_a", Title: "DHL Retoure International A"},
	{Code: "retoure_international_b", Title: "DHL Retoure International B"},
}

var inlayReturnProducts = []string{
	ProductPaket,
	ProductPaketPrio,
	"V86PARCEL",
	ProductPaketConnect,
}

var labelFormats = []string{
	"A4",
	"910-300-700",
	"910-300-700-oZ",
	"910-300-600",
	"910-300-610",
	"910-300-710",
}

// warenpostLabelFormat is only printable for V62WP.
const warenpostLabelFormat = "100x70mm"

// Catalog is the static product/service compatibility table for one base
// country. It is read-only after construction and safe for concurrent use.
type Catalog struct {
	domestic      []Product
	international []Product
	table         map[string][]Service
}

// New builds the catalog for baseCountry. Only DE ships DHL products; any
// other origin gets empty product lists.
func New(baseCountry string) *Catalog {
	c := &Catalog{table: map[string][]Service{}}

	if strings.EqualFold(strings.TrimSpace(baseCountry), "DE") || strings.TrimSpace(baseCountry) == "" {
		c.domestic = germanyDomestic
		c.international = germanyInternational
		c.table = map[string][]Service{
			ProductPaket:              allServices,
			ProductPaketPrio:          allServices,
			ProductPaketTaggleich:     allServices,
			ProductWarenpost:          warenpostServices,
			ProductPaketConnect:       internationalServices,
			ProductEuropaket:          internationalServices,
			ProductPaketInternational: internationalServices,
		}
	}
	return c
}

// ServicesFor returns the services product supports. Products outside the
// table are treated as international products.
func (c *Catalog) ServicesFor(product string) []Service {
	if services, ok := c.table[product]; ok {
		return clone(services)
	}
	return clone(internationalServices)
}

// Supports reports whether product can book service.
func (c *Catalog) Supports(product string, service Service) bool {
	services, ok := c.table[product]
	if !ok {
		services = internationalServices
	}
	for _, s := range services {
		if s == service {
			return true
		}
	}
	return false
}

// Products lists domestic or international products in display order.
func (c *Catalog) Products(domestic bool) []Product {
	src := c.international
	if domestic {
		src = c.domestic
	}
	out := make([]Product, len(src))
	copy(out, src)
	return out
}

// IsDomesticProduct reports whether code is one of the domestic products.
func (c *Catalog) IsDomesticProduct(code string) bool {
	for _, p := range c.domestic {
		if p.Code == code {
			return true
		}
	}
	return false
}

// ProductsSupporting lists every known product that can book service.
func (c *Catalog) ProductsSupporting(service Service) []string {
	var codes []string
	for _, p := range append(c.Products(true), c.Products(false)...) {
		if c.Supports(p.Code, service) {
			codes = append(codes, p.Code)
		}
	}
	return codes
}

// ReturnProducts lists the DHL Retoure products for a destination class.
func (c *Catalog) ReturnProducts(domestic bool) []Product {
	src := returnInternational
	if domestic {
		src = returnDomestic
	}
	out := make([]Product, len(src))
	copy(out, src)
	return out
}

// InlayReturnProducts lists products that may carry an inlay return label.
func (c *Catalog) InlayReturnProducts() []string {
	out := make([]string, len(inlayReturnProducts))
	copy(out, inlayReturnProducts)
	return out
}

// SupportsInlayReturn reports whether product may carry an inlay return label.
func (c *Catalog) SupportsInlayReturn(product string) bool {
	for _, p := range inlayReturnProducts {
		if p == product {
			return true
		}
	}
	return false
}

// LabelFormat returns requested if it is printable for product, else "".
func (c *Catalog) LabelFormat(product, requested string) string {
	if requested == "" {
		return ""
	}
	if product == ProductWarenpost && requested == warenpostLabelFormat {
		return requested
	}
	for _, f := range labelFormats {
		if f == requested {
			return requested
		}
	}
	return ""
}
