package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/imrishuroy/go-dhl-labelflow/internal/catalog"
	"github.com/imrishuroy/go-dhl-labelflow/internal/labels"
	"github.com/imrishuroy/go-dhl-labelflow/internal/region"
)

// ReturnReceiver is a DHL return receiver. An empty country matches every
// sender country without a dedicated receiver.
type ReturnReceiver struct {
	ID      string `yaml:"id" json:"id" validate:"required"`
	Slug    string `yaml:"slug" json:"slug" validate:"required"`
	Country string `yaml:"country" json:"country,omitempty" validate:"omitempty,iso3166_1_alpha2"`
}

// Settings is the carrier configuration. Values holds the global settings;
// Methods holds per shipping method overrides of the same keys.
type Settings struct {
	BaseCountry           string                       `yaml:"base_country" validate:"omitempty,iso3166_1_alpha2"`
	Values                map[string]string            `yaml:"settings"`
	Methods               map[string]map[string]string `yaml:"methods"`
	ReturnReceivers       []ReturnReceiver             `yaml:"return_receivers" validate:"dive"`
	InternetmarkeProducts []catalog.IMProduct          `yaml:"internetmarke_products"`
}

var defaultValues = map[string]string{
	"label_default_product_dom":                   catalog.ProductPaket,
	"label_default_product_int":                   catalog.ProductPaketInternational,
	"label_default_duty":                          "DDP",
	"label_minimum_shipment_weight":               "0.5",
	"label_default_shipment_weight":               "2",
	"label_address_codeable_only":                 "no",
	"label_visual_min_age":                        "0",
	"label_ident_min_age":                         "0",
	"deutsche_post_label_minimum_shipment_weight": "0.01",
	"deutsche_post_label_default_shipment_weight": "0.5",
	"deutsche_post_label_default_page_format":     "1",
	"return_address_country":                      "DE",
}

// Default returns the built-in settings used when no file is configured.
func Default() *Settings {
	values := make(map[string]string, len(defaultValues))
	for k, v := range defaultValues {
		values[k] = v
	}
	return &Settings{
		BaseCountry: "DE",
		Values:      values,
		Methods:     map[string]map[string]string{},
	}
}

// Load reads settings from path. A missing file yields Default. File values
// are layered over the defaults, and DHL_BASE_COUNTRY overrides the base
// country.
func Load(path string) (*Settings, error) {
	s := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read settings: %w", err)
		default:
			var file Settings
			if err := yaml.Unmarshal(data, &file); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
			s.merge(file)
		}
	}

	if base := strings.TrimSpace(os.Getenv("DHL_BASE_COUNTRY")); base != "" {
		s.BaseCountry = base
	}
	s.BaseCountry = strings.ToUpper(s.BaseCountry)

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

func (s *Settings) merge(file Settings) {
	if file.BaseCountry != "" {
		s.BaseCountry = file.BaseCountry
	}
	for k, v := range file.Values {
		s.Values[k] = v
	}
	for method, values := range file.Methods {
		s.Methods[method] = values
	}
	s.ReturnReceivers = file.ReturnReceivers
	s.InternetmarkeProducts = file.InternetmarkeProducts
}

var validate = validator.New()

// Validate checks the structural constraints of the settings.
func (s *Settings) Validate() error {
	return validate.Struct(s)
}

// Setting returns the value of key. A non-empty value configured for method
// wins over the global one.
func (s *Settings) Setting(key, method string) string {
	if method != "" {
		if v := s.Methods[method][key]; v != "" {
			return v
		}
	}
	return s.Values[key]
}

// ReturnReceiver returns the slug of the receiver for a sender country.
func (s *Settings) ReturnReceiver(country string) string {
	country = strings.ToUpper(strings.TrimSpace(country))
	fallback := ""
	for _, r := range s.ReturnReceivers {
		if strings.EqualFold(r.Country, country) {
			return r.Slug
		}
		if r.Country == "" && fallback == "" {
			fallback = r.Slug
		}
	}
	return fallback
}

// Internetmarke builds the product table from the configured products.
func (s *Settings) Internetmarke() *catalog.InternetmarkeTable {
	return catalog.NewInternetmarkeTable(s.InternetmarkeProducts)
}

// Region returns the region rooted at the configured base country.
func (s *Settings) Region() region.Region {
	return region.New(s.BaseCountry)
}

// Validator wires a label validator to these settings.
func (s *Settings) Validator(opts ...labels.Option) *labels.Validator {
	return labels.New(labels.Config{
		Region:        s.Region(),
		Catalog:       catalog.New(s.BaseCountry),
		Internetmarke: s.Internetmarke(),
		Settings:      s,
	}, opts...)
}
