package validation

import (
	"fmt"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/imrishuroy/go-dhl-labelflow/internal/shipment"
)

// New returns a configured validator with the shipment checks registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	v.RegisterStructValidation(labelRequestStructValidation, LabelRequest{})
	v.RegisterStructValidation(customsRequestStructValidation, CustomsRequest{})

	return v
}

func labelRequestStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(LabelRequest)
	if req.Shipment == nil {
		return
	}
	validateShipment(sl, req.Shipment)
}

// customsRequestStructValidation also requires at least one item and a
// non-negative net weight.
func customsRequestStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(CustomsRequest)
	if req.NetWeight != nil && req.NetWeight.IsNegative() {
		sl.ReportError(req.NetWeight, "net_weight", "NetWeight", "gte_zero", "")
	}
	if req.Shipment == nil {
		return
	}
	validateShipment(sl, req.Shipment)
	if len(req.Shipment.Items) == 0 {
		sl.ReportError(req.Shipment.Items, "shipment.items", "Items", "required", "")
	}
}

func validateShipment(sl validatorv10.StructLevel, s *shipment.Shipment) {
	if strings.TrimSpace(s.ID) == "" {
		sl.ReportError(s.ID, "shipment.id", "ID", "required", "")
	}
	if c := s.Country(); len(c) != 2 {
		sl.ReportError(c, "shipment.address.country", "Country", "iso3166_alpha2", c)
	}
	for i, it := range s.Items {
		if it.Quantity < 1 {
			sl.ReportError(it.Quantity, fmt.Sprintf("shipment.items[%d].quantity", i), "Quantity", "min", "1")
		}
		if it.Weight.IsNegative() {
			sl.ReportError(it.Weight, fmt.Sprintf("shipment.items[%d].weight", i), "Weight", "gte_zero", "")
		}
	}
}
