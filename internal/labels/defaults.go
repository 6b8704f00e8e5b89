package labels

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/imrishuroy/go-dhl-labelflow/internal/catalog"
	"github.com/imrishuroy/go-dhl-labelflow/internal/region"
	"github.com/imrishuroy/go-dhl-labelflow/internal/shipment"
)

// Defaults builds the default arguments for a label of kind for s from the
// configured settings. Raw request arguments are merged over the result.
func (v *Validator) Defaults(kind Kind, s *shipment.Shipment) (Args, error) {
	if s == nil {
		return nil, ErrMissingShipment
	}

	switch kind {
	case KindSimple, "":
		return v.simpleDefaults(s)
	case KindReturn, KindDeutschePostReturn:
		return v.returnDefaults(s), nil
	case KindDeutschePost:
		return v.deutschePostDefaults(s), nil
	case KindInlayReturn:
		return Args{
			KeyShipmentID:    s.ID,
			KeySenderAddress: s.Address,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func (v *Validator) packageDefaults(s *shipment.Shipment) Args {
	dims := Dimensions(s)
	return Args{
		KeyWeight:    ShipmentWeight(s, v.cfg.Settings, false),
		KeyNetWeight: ShipmentWeight(s, v.cfg.Settings, true),
		KeyLength:    dims.Length,
		KeyWidth:     dims.Width,
		KeyHeight:    dims.Height,
	}
}

func (v *Validator) simpleDefaults(s *shipment.Shipment) (Args, error) {
	order := s.Order
	if order == nil {
		return nil, missingOrder(s)
	}

	set := v.cfg.Settings
	method := s.ShippingMethod
	country := s.Country()
	r := v.cfg.Region

	product := set.Setting("label_default_product_int", method)
	if r.IsDomestic(country) {
		product = set.Setting("label_default_product_dom", method)
	}
	supports := func(svc catalog.Service) bool { return v.cfg.Catalog.Supports(product, svc) }
	enabled := func(key string) bool { return set.Setting(key, method) == "yes" }

	d := v.packageDefaults(s)
	d[KeyProduct] = product
	d[KeyCodeableAddressOnly] = set.Setting("label_address_codeable_only", method)

	var services ServiceSet

	if order.SupportsEmailNotification {
		d[KeyEmailNotification] = "yes"
	}

	if order.HasCODPayment && supports(catalog.CashOnDelivery) {
		cod := s.Total
		// only one label per order carries shipping and fees
		if !s.CODAdditionalTotalClaimed {
			cod = cod.Add(s.AdditionalTotal.Round(2))
			d[KeyCODIncludesAddition] = "yes"
		}
		d[KeyCODTotal] = cod
	}

	switch {
	case r.IsCrossBorder(country):
		d[KeyDuties] = set.Setting("label_default_duty", method)

	case r.IsDomestic(country):
		if r.BaseCountry() == region.DefaultBaseCountry {
			if order.PreferredDay != nil {
				d[KeyPreferredDay] = order.PreferredDay.Format(dateLayout)
			}
			if order.HasPreferredTime() {
				d[KeyPreferredTimeStart] = order.PreferredTimeStart
				d[KeyPreferredTimeEnd] = order.PreferredTimeEnd
			}
			if order.PreferredLocation != "" {
				d[KeyPreferredLocation] = order.PreferredLocation
			}
			if order.PreferredNeighbor != "" {
				d[KeyPreferredNeighbor] = order.PreferredNeighbor
			}

			var visualAge, identAge string

			if supports(catalog.VisualCheckOfAge) {
				if age := set.Setting("label_visual_min_age", method); isAge(age) {
					services.Add(catalog.VisualCheckOfAge)
					visualAge = age
				}
				if order.NeedsAgeVerification && enabled("label_auto_age_check_sync") {
					services.Add(catalog.VisualCheckOfAge)
					visualAge = order.MinAge
				}
			}

			if supports(catalog.IdentCheck) {
				if age := set.Setting("label_ident_min_age", method); isAge(age) {
					services.Add(catalog.IdentCheck)
					identAge = age
				}
				// the order's age is synced to the visual check first
				if !services.Has(catalog.VisualCheckOfAge) && order.NeedsAgeVerification && enabled("label_auto_age_check_ident_sync") {
					services.Add(catalog.IdentCheck)
					identAge = order.MinAge
				}
			}

			if visualAge != "" {
				d[KeyVisualMinAge] = visualAge
			}
			if identAge != "" {
				d[KeyIdentMinAge] = identAge
			}

			for _, svc := range catalog.Services() {
				if !supports(svc) {
					continue
				}
				if svc == catalog.NamedPersonOnly && (visualAge != "" || identAge != "") {
					continue
				}
				if enabled("label_service_" + string(svc)) {
					services.Add(svc)
				}
			}

			d[KeyReturnAddress] = shipment.Address{
				Name:         set.Setting("return_address_name", ""),
				Company:      set.Setting("return_address_company", ""),
				Street:       set.Setting("return_address_street", ""),
				StreetNumber: set.Setting("return_address_street_no", ""),
				Postcode:     set.Setting("return_address_postcode", ""),
				City:         set.Setting("return_address_city", ""),
				Country:      set.Setting("return_address_country", ""),
				Phone:        set.Setting("return_address_phone", ""),
				Email:        set.Setting("return_address_email", ""),
			}
			if enabled("label_auto_inlay_return_label") {
				d[KeyHasInlayReturn] = "yes"
			}
		}
	}

	if !r.IsDomestic(country) {
		for _, svc := range catalog.InternationalServices() {
			if supports(svc) && enabled("label_service_"+string(svc)) {
				services.Add(svc)
			}
		}
	}

	d[KeyServices] = services.Strings()
	return d, nil
}

func (v *Validator) returnDefaults(s *shipment.Shipment) Args {
	d := v.packageDefaults(s)
	d[KeyServices] = []string{}
	d[KeyReceiverSlug] = v.cfg.Settings.ReturnReceiver(s.SenderAddress.Country)
	d[KeySenderAddress] = s.SenderAddress
	return d
}

func (v *Validator) deutschePostDefaults(s *shipment.Shipment) Args {
	set := v.cfg.Settings
	im := v.cfg.Internetmarke
	method := s.ShippingMethod
	country := s.Country()

	key := "deutsche_post_label_default_product_int"
	switch {
	case v.cfg.Region.IsDomestic(country):
		key = "deutsche_post_label_default_product_dom"
	case v.cfg.Region.IsEU(country):
		key = "deutsche_post_label_default_product_eu"
	}

	d := v.packageDefaults(s)
	d[KeyPageFormat] = set.Setting("deutsche_post_label_default_page_format", method)
	d[KeyStampTotal] = decimal.Zero
	d[KeyAdditionalServices] = []string{}

	product := set.Setting(key, method)
	if product != "" {
		// default to the parent so services can be picked freely
		d[KeyAdditionalServices] = im.ProductServices(product)
		product = im.ParentCode(product)
		d[KeyStampTotal] = im.ProductTotal(product)
	}
	d[KeyProduct] = product
	return d
}
