package labels

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/imrishuroy/go-dhl-labelflow/internal/catalog"
	"github.com/imrishuroy/go-dhl-labelflow/internal/region"
	"github.com/imrishuroy/go-dhl-labelflow/internal/shipment"
)

type fakeSettings struct {
	values    map[string]string
	methods   map[string]map[string]string
	receivers map[string]string
}

func (f fakeSettings) Setting(key, method string) string {
	if m, ok := f.methods[method]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return f.values[key]
}

func (f fakeSettings) ReturnReceiver(country string) string {
	if slug, ok := f.receivers[country]; ok {
		return slug
	}
	return f.receivers["*"]
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testIM() *catalog.InternetmarkeTable {
	return catalog.NewInternetmarkeTable([]catalog.IMProduct{
		{Code: "1", Name: "Standardbrief", Destination: catalog.DestinationNational, MaxWeight: 20, Price: dec("0.85")},
		{Code: "11", Name: "Warensendung", Destination: catalog.DestinationNational, MaxWeight: 500, Price: dec("2.25")},
		{Code: "1002", Name: "Standardbrief Einschreiben", ParentCode: "1", Services: []string{"ESEW"}, Destination: catalog.DestinationNational, MaxWeight: 20, Price: dec("3.50")},
		{Code: "1102", Name: "Warensendung Einschreiben", ParentCode: "11", Services: []string{"ESEW"}, Destination: catalog.DestinationNational, MaxWeight: 500, Price: dec("4.90")},
		{Code: "10246", Name: "Warenpost International", Destination: catalog.DestinationEU, MaxWeight: 1000, Price: dec("4.10")},
		{Code: "10001", Name: "Brief International", Destination: catalog.DestinationInternational, MaxWeight: 50, Price: dec("1.10")},
	})
}

func testSettings() fakeSettings {
	return fakeSettings{
		values: map[string]string{
			"label_default_product_dom":               catalog.ProductPaket,
			"label_default_product_int":               catalog.ProductPaketInternational,
			"label_default_duty":                      "DDP",
			"label_minimum_shipment_weight":           "0.5",
			"label_default_shipment_weight":           "2",
			"deutsche_post_label_default_product_dom": "1002",
			"deutsche_post_label_default_product_eu":  "10246",
			"deutsche_post_label_default_product_int": "10001",
			"deutsche_post_label_default_page_format": "A4",
			"return_address_name":                     "Shop GmbH",
			"return_address_street":                   "Hauptstr.",
			"return_address_street_no":                "1",
			"return_address_postcode":                 "12345",
			"return_address_city":                     "Berlin",
			"return_address_country":                  "DE",
		},
		methods:   map[string]map[string]string{},
		receivers: map[string]string{"DE": "deutschland", "*": "international"},
	}
}

func newTestValidator(opts ...Option) *Validator {
	return New(Config{
		Region:        region.New("DE"),
		Catalog:       catalog.New("DE"),
		Internetmarke: testIM(),
		Settings:      testSettings(),
	}, opts...)
}

func testOrder() *shipment.Order {
	return &shipment.Order{
		ID:                        "100",
		Number:                    "A-100",
		HasCODPayment:             true,
		SupportsEmailNotification: true,
	}
}

func domesticShipment() *shipment.Shipment {
	return &shipment.Shipment{
		ID:              "7",
		OrderID:         "100",
		Type:            shipment.TypeSimple,
		Provider:        shipment.ProviderDHL,
		ShippingMethod:  "flat_rate:1",
		Address:         shipment.Address{Name: "Max Muster", Street: "Weg", StreetNumber: "3", Postcode: "10115", City: "Berlin", Country: "DE"},
		Items:           []shipment.Item{{Name: "Mug", Quantity: 1, Weight: dec("0.4"), Subtotal: dec("12")}},
		Weight:          dec("0.4"),
		PackagingWeight: dec("0.2"),
		TotalWeight:     dec("0.6"),
		Total:           dec("12"),
		AdditionalTotal: dec("4.9"),
		Order:           testOrder(),
	}
}

func foreignShipment(country string) *shipment.Shipment {
	s := domesticShipment()
	s.Address.Country = country
	return s
}

func day(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}
