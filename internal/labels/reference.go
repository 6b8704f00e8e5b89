package labels

import (
	"strings"

	"github.com/imrishuroy/go-dhl-labelflow/internal/region"
	"github.com/imrishuroy/go-dhl-labelflow/internal/shipment"
)

// Reference templates and the carrier's field limits.
const (
	customerReferenceTemplate = "Shipment #{shipment_id} to order {order_id}"
	returnReferenceTemplate   = "Return #{shipment_id} to order {order_id}"
	inlayReferenceTemplate    = "Return shipment #{shipment_id} to order #{order_id}"

	customerReferenceLimit = 35
	returnReferenceLimit   = 30
	inlayReferenceLimit    = 35
)

// StreetNumberPlaceholder is sent for foreign addresses without a number.
const StreetNumberPlaceholder = "0"

// CustomerReference is the reference printed on an outbound label.
func CustomerReference(s *shipment.Shipment) string {
	return reference(customerReferenceTemplate, s, customerReferenceLimit)
}

// ReturnCustomerReference is the reference printed on a return label.
func ReturnCustomerReference(s *shipment.Shipment) string {
	return reference(returnReferenceTemplate, s, returnReferenceLimit)
}

// InlayReturnReference is the reference printed on an inlay return label.
func InlayReturnReference(s *shipment.Shipment) string {
	return reference(inlayReferenceTemplate, s, inlayReferenceLimit)
}

func reference(template string, s *shipment.Shipment, limit int) string {
	ref := strings.NewReplacer(
		"{shipment_id}", s.ID,
		"{order_id}", s.OrderNumber(),
	).Replace(template)

	if r := []rune(ref); len(r) > limit {
		ref = string(r[:limit])
	}
	return strings.TrimSpace(ref)
}

// StreetNumber returns number, or the placeholder for non-domestic
// destinations that have none.
func StreetNumber(r region.Region, number, country string) string {
	if number == "" && !r.IsDomestic(country) {
		return StreetNumberPlaceholder
	}
	return number
}

// AddressAddition joins the street addition and the second address line.
func AddressAddition(address2, streetAddition string) string {
	addition := address2
	if streetAddition != "" {
		addition = streetAddition
		if address2 != "" {
			addition += " " + address2
		}
	}
	return strings.TrimSpace(addition)
}
