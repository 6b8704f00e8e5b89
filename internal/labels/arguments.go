package labels

import (
	"github.com/shopspring/decimal"

	"github.com/imrishuroy/go-dhl-labelflow/internal/catalog"
	"github.com/imrishuroy/go-dhl-labelflow/internal/shipment"
)

// ServiceSet is an ordered list of unique services.
type ServiceSet []catalog.Service

// Has reports whether svc is in the set.
func (s ServiceSet) Has(svc catalog.Service) bool {
	for _, v := range s {
		if v == svc {
			return true
		}
	}
	return false
}

// Add appends svc unless it is already present.
func (s *ServiceSet) Add(svc catalog.Service) {
	if !s.Has(svc) {
		*s = append(*s, svc)
	}
}

// Remove drops svc, keeping the order of the rest.
func (s *ServiceSet) Remove(svc catalog.Service) {
	out := (*s)[:0]
	for _, v := range *s {
		if v != svc {
			out = append(out, v)
		}
	}
	*s = out
}

// Strings returns the service codes.
func (s ServiceSet) Strings() []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = string(v)
	}
	return out
}

// Arguments is the normalized argument set of one label.
type Arguments struct {
	Product                    string            `json:"dhl_product,omitempty"`
	Services                   ServiceSet        `json:"services"`
	PreferredDay               string            `json:"preferred_day,omitempty"`
	PreferredTimeStart         string            `json:"preferred_time_start,omitempty"`
	PreferredTimeEnd           string            `json:"preferred_time_end,omitempty"`
	PreferredLocation          string            `json:"preferred_location,omitempty"`
	PreferredNeighbor          string            `json:"preferred_neighbor,omitempty"`
	VisualMinAge               string            `json:"visual_min_age,omitempty"`
	IdentMinAge                string            `json:"ident_min_age,omitempty"`
	IdentDateOfBirth           string            `json:"ident_date_of_birth,omitempty"`
	CODTotal                   decimal.Decimal   `json:"cod_total"`
	CODIncludesAdditionalTotal bool              `json:"cod_includes_additional_total,omitempty"`
	Duties                     string            `json:"duties,omitempty"`
	HasInlayReturn             bool              `json:"has_inlay_return"`
	ReturnAddress              *shipment.Address `json:"return_address,omitempty"`
	SenderAddress              *shipment.Address `json:"sender_address,omitempty"`
	EmailNotification          bool              `json:"email_notification"`
	CodeableAddressOnly        bool              `json:"codeable_address_only"`
	Weight                     decimal.Decimal   `json:"weight"`
	NetWeight                  decimal.Decimal   `json:"net_weight"`
	Length                     decimal.Decimal   `json:"length"`
	Width                      decimal.Decimal   `json:"width"`
	Height                     decimal.Decimal   `json:"height"`
	ReceiverSlug               string            `json:"receiver_slug,omitempty"`
	PageFormat                 string            `json:"page_format,omitempty"`
	LabelFormat                string            `json:"label_format,omitempty"`
	AdditionalServices         []string          `json:"additional_services,omitempty"`
	StampTotal                 decimal.Decimal   `json:"stamp_total"`
}

// argumentsFrom reads every known key of a into a fresh Arguments value.
// Services are taken verbatim; filtering happens during validation.
func argumentsFrom(a Args) *Arguments {
	args := &Arguments{
		Product:                    a.String(KeyProduct),
		PreferredDay:               a.String(KeyPreferredDay),
		PreferredTimeStart:         a.String(KeyPreferredTimeStart),
		PreferredTimeEnd:           a.String(KeyPreferredTimeEnd),
		PreferredLocation:          a.String(KeyPreferredLocation),
		PreferredNeighbor:          a.String(KeyPreferredNeighbor),
		VisualMinAge:               a.String(KeyVisualMinAge),
		IdentMinAge:                a.String(KeyIdentMinAge),
		IdentDateOfBirth:           a.String(KeyIdentDateOfBirth),
		CODTotal:                   a.Decimal(KeyCODTotal),
		CODIncludesAdditionalTotal: a.Flag(KeyCODIncludesAddition),
		Duties:                     a.String(KeyDuties),
		HasInlayReturn:             a.Flag(KeyHasInlayReturn),
		EmailNotification:          a.Flag(KeyEmailNotification),
		CodeableAddressOnly:        a.Flag(KeyCodeableAddressOnly),
		Weight:                     a.Decimal(KeyWeight),
		NetWeight:                  a.Decimal(KeyNetWeight),
		Length:                     a.Decimal(KeyLength),
		Width:                      a.Decimal(KeyWidth),
		Height:                     a.Decimal(KeyHeight),
		ReceiverSlug:               a.String(KeyReceiverSlug),
		PageFormat:                 a.String(KeyPageFormat),
		LabelFormat:                a.String(KeyLabelFormat),
		AdditionalServices:         a.Strings(KeyAdditionalServices),
		StampTotal:                 a.Decimal(KeyStampTotal),
	}

	for _, s := range a.Strings(KeyServices) {
		args.Services.Add(catalog.Service(s))
	}
	if addr, ok := a.Address(KeyReturnAddress); ok {
		args.ReturnAddress = &addr
	}
	if addr, ok := a.Address(KeySenderAddress); ok {
		args.SenderAddress = &addr
	}
	return args
}

// Map renders the arguments back into an argument map. Validating the
// result again yields the same Arguments.
func (a *Arguments) Map() Args {
	m := Args{
		KeyProduct:             a.Product,
		KeyServices:            a.Services.Strings(),
		KeyPreferredDay:        a.PreferredDay,
		KeyPreferredTimeStart:  a.PreferredTimeStart,
		KeyPreferredTimeEnd:    a.PreferredTimeEnd,
		KeyPreferredLocation:   a.PreferredLocation,
		KeyPreferredNeighbor:   a.PreferredNeighbor,
		KeyVisualMinAge:        a.VisualMinAge,
		KeyIdentMinAge:         a.IdentMinAge,
		KeyIdentDateOfBirth:    a.IdentDateOfBirth,
		KeyCODTotal:            a.CODTotal,
		KeyCODIncludesAddition: yesNo(a.CODIncludesAdditionalTotal),
		KeyDuties:              a.Duties,
		KeyHasInlayReturn:      yesNo(a.HasInlayReturn),
		KeyEmailNotification:   yesNo(a.EmailNotification),
		KeyCodeableAddressOnly: yesNo(a.CodeableAddressOnly),
		KeyWeight:              a.Weight,
		KeyNetWeight:           a.NetWeight,
		KeyLength:              a.Length,
		KeyWidth:               a.Width,
		KeyHeight:              a.Height,
		KeyReceiverSlug:        a.ReceiverSlug,
		KeyPageFormat:          a.PageFormat,
		KeyLabelFormat:         a.LabelFormat,
		KeyAdditionalServices:  append([]string(nil), a.AdditionalServices...),
		KeyStampTotal:          a.StampTotal,
	}
	if a.ReturnAddress != nil {
		m[KeyReturnAddress] = *a.ReturnAddress
	}
	if a.SenderAddress != nil {
		m[KeySenderAddress] = *a.SenderAddress
	}
	return m
}
