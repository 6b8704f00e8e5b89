package shipment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shipping providers handled by this service.
const (
	ProviderDHL          = "dhl"
	ProviderDeutschePost = "deutsche_post"
)

// Shipment types
const (
	TypeSimple = "simple"
	TypeReturn = "return"
)

// Item is one line of a shipment. Weights are per unit, in kilograms.
type Item struct {
	ProductID          string          `json:"product_id"`
	Name               string          `json:"name"`
	Quantity           int             `json:"quantity"`
	Weight             decimal.Decimal `json:"weight"`   // unit weight (kg)
	Subtotal           decimal.Decimal `json:"subtotal"` // line subtotal before discounts
	OrderLineSubtotal  decimal.Decimal `json:"order_line_subtotal"`
	HSCode             string          `json:"hs_code,omitempty"`
	ManufactureCountry string          `json:"manufacture_country,omitempty"`
}

// Address is a postal address as stored on a shipment or in settings.
type Address struct {
	Name           string `json:"name,omitempty" yaml:"name"`
	Company        string `json:"company,omitempty" yaml:"company"`
	Street         string `json:"street,omitempty" yaml:"street"`
	StreetNumber   string `json:"street_number,omitempty" yaml:"street_number"`
	StreetAddition string `json:"street_addition,omitempty" yaml:"street_addition"`
	Address2       string `json:"address_2,omitempty" yaml:"address_2"`
	Postcode       string `json:"postcode,omitempty" yaml:"postcode"`
	City           string `json:"city,omitempty" yaml:"city"`
	State          string `json:"state,omitempty" yaml:"state"`
	Country        string `json:"country,omitempty" yaml:"country"`
	Phone          string `json:"phone,omitempty" yaml:"phone"`
	Email          string `json:"email,omitempty" yaml:"email"`
}

// Dimensions of the package in centimeters.
type Dimensions struct {
	Length decimal.Decimal `json:"length"`
	Width  decimal.Decimal `json:"width"`
	Height decimal.Decimal `json:"height"`
}

// Order carries the order-level capabilities the label logic asks about.
type Order struct {
	ID                        string     `json:"id"`
	Number                    string     `json:"number,omitempty"`
	HasCODPayment             bool       `json:"has_cod_payment"`
	SupportsEmailNotification bool       `json:"supports_email_notification"`
	PreferredDay              *time.Time `json:"preferred_day,omitempty"`
	PreferredTimeStart        string     `json:"preferred_time_start,omitempty"` // HH:MM
	PreferredTimeEnd          string     `json:"preferred_time_end,omitempty"`   // HH:MM
	PreferredLocation         string     `json:"preferred_location,omitempty"`
	PreferredNeighbor         string     `json:"preferred_neighbor,omitempty"`
	NeedsAgeVerification      bool       `json:"needs_age_verification"`
	MinAge                    string     `json:"min_age,omitempty"`
}

// Shipment is the read-only view of a shipment handed to the label logic.
type Shipment struct {
	ID              string          `json:"id"`
	OrderID         string          `json:"order_id"`
	Type            string          `json:"type,omitempty"`
	Provider        string          `json:"provider,omitempty"`
	ShippingMethod  string          `json:"shipping_method,omitempty"`
	Email           string          `json:"email,omitempty"`
	Address         Address         `json:"address"`
	SenderAddress   Address         `json:"sender_address,omitempty"`
	Items           []Item          `json:"items"`
	Weight          decimal.Decimal `json:"weight"`           // content weight (kg)
	PackagingWeight decimal.Decimal `json:"packaging_weight"` // kg
	TotalWeight     decimal.Decimal `json:"total_weight"`     // content + packaging (kg)
	Dimensions      *Dimensions     `json:"dimensions,omitempty"`
	Total           decimal.Decimal `json:"total"`
	AdditionalTotal decimal.Decimal `json:"additional_total"` // shipping + fees
	// CODAdditionalTotalClaimed is set when another label of the same order
	// already carries the additional total in its COD amount.
	CODAdditionalTotalClaimed bool   `json:"cod_additional_total_claimed,omitempty"`
	Order                     *Order `json:"order,omitempty"`
}

// Country returns the destination country. Return shipments travel from
// the sender address.
func (s *Shipment) Country() string {
	if s.Type == TypeReturn && s.SenderAddress.Country != "" {
		return s.SenderAddress.Country
	}
	return s.Address.Country
}

// OrderNumber falls back to the order ID when no display number is known.
func (s *Shipment) OrderNumber() string {
	if s.Order != nil && s.Order.Number != "" {
		return s.Order.Number
	}
	return s.OrderID
}

// HasPreferredTime reports whether both ends of the preferred time window are set.
func (o *Order) HasPreferredTime() bool {
	return o.PreferredTimeStart != "" && o.PreferredTimeEnd != ""
}
