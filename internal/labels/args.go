package labels

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/imrishuroy/go-dhl-labelflow/internal/catalog"
	"github.com/imrishuroy/go-dhl-labelflow/internal/shipment"
)

// Argument keys understood by the validator.
const (
	KeyProduct             = "dhl_product"
	KeyServices            = "services"
	KeyPreferredDay        = "preferred_day"
	KeyPreferredTimeStart  = "preferred_time_start"
	KeyPreferredTimeEnd    = "preferred_time_end"
	KeyPreferredLocation   = "preferred_location"
	KeyPreferredNeighbor   = "preferred_neighbor"
	KeyVisualMinAge        = "visual_min_age"
	KeyIdentMinAge         = "ident_min_age"
	KeyIdentDateOfBirth    = "ident_date_of_birth"
	KeyCODTotal            = "cod_total"
	KeyCODIncludesAddition = "cod_includes_additional_total"
	KeyDuties              = "duties"
	KeyReturnAddress       = "return_address"
	KeySenderAddress       = "sender_address"
	KeyHasInlayReturn      = "has_inlay_return"
	KeyEmailNotification   = "email_notification"
	KeyCodeableAddressOnly = "codeable_address_only"
	KeyWeight              = "weight"
	KeyNetWeight           = "net_weight"
	KeyLength              = "length"
	KeyWidth               = "width"
	KeyHeight              = "height"
	KeyReceiverSlug        = "receiver_slug"
	KeyPageFormat          = "page_format"
	KeyLabelFormat         = "label_format"
	KeyAdditionalServices  = "additional_services"
	KeyStampTotal          = "stamp_total"
	KeyShipmentID          = "shipment_id"
)

// Args is a loosely typed argument map, as decoded from JSON or built from
// settings. Accessors tolerate the usual JSON and Go representations.
type Args map[string]any

// Merge returns a copy of defaults overlaid with raw. Keys present in raw
// win even when their value is empty.
func Merge(raw, defaults Args) Args {
	out := make(Args, len(raw)+len(defaults))
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range raw {
		out[k] = v
	}
	return out
}

// String returns the value under key as a trimmed string.
func (a Args) String(key string) string {
	switch v := a[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return yesNo(v)
	case fmt.Stringer:
		return v.String()
	default:
		return ""
	}
}

// Flag reads a yes/no style flag.
func (a Args) Flag(key string) bool {
	switch v := a[key].(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "yes", "true", "1", "on":
			return true
		}
	case float64:
		return v != 0
	case int:
		return v != 0
	}
	return false
}

// Decimal reads a numeric value. Unparsable input reads as zero.
func (a Args) Decimal(key string) decimal.Decimal {
	switch v := a[key].(type) {
	case decimal.Decimal:
		return v
	case *decimal.Decimal:
		if v != nil {
			return *v
		}
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case json.Number:
		if d, err := decimal.NewFromString(v.String()); err == nil {
			return d
		}
	case string:
		if d, err := decimal.NewFromString(strings.TrimSpace(v)); err == nil {
			return d
		}
	}
	return decimal.Zero
}

// Strings reads a list of strings. A plain string is split on commas.
func (a Args) Strings(key string) []string {
	var out []string
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}

	switch v := a[key].(type) {
	case []string:
		for _, s := range v {
			add(s)
		}
	case []catalog.Service:
		for _, s := range v {
			add(string(s))
		}
	case ServiceSet:
		for _, s := range v {
			add(string(s))
		}
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				add(s)
			}
		}
	case string:
		for _, s := range strings.Split(v, ",") {
			add(s)
		}
	}
	return out
}

// Address reads an address sub-map. ok is false when the key is absent or
// holds something that is not an address.
func (a Args) Address(key string) (shipment.Address, bool) {
	switch v := a[key].(type) {
	case shipment.Address:
		return v, true
	case *shipment.Address:
		if v != nil {
			return *v, true
		}
	case map[string]string:
		m := make(Args, len(v))
		for k, s := range v {
			m[k] = s
		}
		return m.asAddress(), true
	case map[string]any:
		return Args(v).asAddress(), true
	case Args:
		return v.asAddress(), true
	}
	return shipment.Address{}, false
}

func (a Args) asAddress() shipment.Address {
	return shipment.Address{
		Name:           a.String("name"),
		Company:        a.String("company"),
		Street:         a.String("street"),
		StreetNumber:   a.String("street_number"),
		StreetAddition: a.String("street_addition"),
		Address2:       a.String("address_2"),
		Postcode:       a.String("postcode"),
		City:           a.String("city"),
		State:          a.String("state"),
		Country:        a.String("country"),
		Phone:          a.String("phone"),
		Email:          a.String("email"),
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
