package labels

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/imrishuroy/go-dhl-labelflow/internal/shipment"
)

var thousand = decimal.NewFromInt(1000)

// ShipmentWeight returns the label weight of s in kilograms. net excludes
// packaging. When the contents have no weight the provider's default
// weight is used, and the result never drops below the provider's minimum.
func ShipmentWeight(s *shipment.Shipment, settings Settings, net bool) decimal.Decimal {
	weight := s.TotalWeight
	content := s.Weight
	packaging := s.PackagingWeight

	if net {
		packaging = decimal.Zero
		weight = content
	}

	prefix, ok := settingPrefix(s.Provider)
	if !ok {
		return weight
	}

	method := s.ShippingMethod
	minWeight := settingDecimal(settings, prefix+"minimum_shipment_weight", method)

	if content.IsZero() {
		weight = settingDecimal(settings, prefix+"default_shipment_weight", method)
		if !net {
			weight = weight.Add(packaging)
		}
	}

	if weight.LessThan(minWeight) {
		weight = minWeight
	}
	return weight
}

// settingPrefix maps a provider onto its settings namespace.
func settingPrefix(provider string) (string, bool) {
	switch provider {
	case shipment.ProviderDHL:
		return "label_", true
	case shipment.ProviderDeutschePost:
		return "deutsche_post_label_", true
	}
	return "", false
}

func settingDecimal(settings Settings, key, method string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(settings.Setting(key, method)))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Dimensions returns the package dimensions in centimeters, zero when the
// shipment has none.
func Dimensions(s *shipment.Shipment) shipment.Dimensions {
	if s.Dimensions == nil {
		return shipment.Dimensions{Length: decimal.Zero, Width: decimal.Zero, Height: decimal.Zero}
	}
	return *s.Dimensions
}

func weightGrams(kg decimal.Decimal) int {
	return int(kg.Mul(thousand).Ceil().IntPart())
}
