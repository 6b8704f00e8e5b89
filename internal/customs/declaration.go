package customs

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/imrishuroy/go-dhl-labelflow/internal/shipment"
)

const maxDescriptionLength = 255

// MinCustomsValue is the lowest value a customs line may declare.
var MinCustomsValue = decimal.New(1, -2)

// ErrMissingShipment is returned when no shipment is given.
var ErrMissingShipment = errors.New("customs: shipment is missing")

// Line is one export document position.
type Line struct {
	Description   string          `json:"description"`
	OriginCountry string          `json:"country_code_origin"`
	TariffNumber  string          `json:"customs_tariff_number"`
	Quantity      int             `json:"amount"`
	NetWeightKG   decimal.Decimal `json:"net_weight_in_kg"` // per piece
	CustomsValue  decimal.Decimal `json:"customs_value"`    // per piece
}

// Declaration is the customs payload attached to a cross-border label.
type Declaration struct {
	InvoiceNumber         string          `json:"invoice_number"`
	AdditionalFee         decimal.Decimal `json:"additional_fee"`
	ExportTypeDescription string          `json:"export_type_description"`
	PlaceOfCommital       string          `json:"place_of_commital"`
	Positions             []Line          `json:"export_doc_positions"`
	// UnresolvedWeightKG is the part of the declared net weight that could
	// not be placed on any line without breaking the per-piece minimum.
	UnresolvedWeightKG decimal.Decimal `json:"unresolved_weight_in_kg"`
}

// BuildDeclaration derives the customs declaration for s. netWeight is the
// label's net weight in kilograms; baseCountry is used as origin for items
// without a manufacture country.
func BuildDeclaration(s *shipment.Shipment, netWeight decimal.Decimal, baseCountry string) (Declaration, error) {
	if s == nil {
		return Declaration{}, ErrMissingShipment
	}

	items := make([]Item, len(s.Items))
	for i, it := range s.Items {
		items[i] = Item{Quantity: it.Quantity, UnitWeight: WeightFromKilograms(it.Weight)}
	}

	rec, err := Reconcile(items, TotalFromKilograms(netWeight))
	if err != nil {
		return Declaration{}, err
	}

	names := make([]string, 0, len(s.Items))
	lines := make([]Line, 0, len(s.Items))

	for i, it := range s.Items {
		name := strings.TrimSpace(it.Name)
		names = append(names, name)

		origin := it.ManufactureCountry
		if origin == "" {
			origin = baseCountry
		}

		lines = append(lines, Line{
			Description:   truncate(name, maxDescriptionLength),
			OriginCountry: origin,
			TariffNumber:  it.HSCode,
			Quantity:      it.Quantity,
			NetWeightKG:   rec.PerUnit[i].Kilograms(),
			CustomsValue:  customsValue(it),
		})
	}

	return Declaration{
		InvoiceNumber:         s.ID,
		AdditionalFee:         s.AdditionalTotal.Round(2),
		ExportTypeDescription: truncate(strings.Join(names, ", "), maxDescriptionLength),
		PlaceOfCommital:       s.Country(),
		Positions:             lines,
		UnresolvedWeightKG:    rec.Unresolved.Kilograms(),
	}, nil
}

// MarshalJSON renders weights and values with exactly two decimals.
func (l Line) MarshalJSON() ([]byte, error) {
	type line Line
	return json.Marshal(struct {
		line
		NetWeightKG  string `json:"net_weight_in_kg"`
		CustomsValue string `json:"customs_value"`
	}{line(l), l.NetWeightKG.StringFixed(2), l.CustomsValue.StringFixed(2)})
}

// MarshalJSON renders the fee and the unresolved weight with two decimals.
func (d Declaration) MarshalJSON() ([]byte, error) {
	type declaration Declaration
	return json.Marshal(struct {
		declaration
		AdditionalFee      string `json:"additional_fee"`
		UnresolvedWeightKG string `json:"unresolved_weight_in_kg"`
	}{declaration(d), d.AdditionalFee.StringFixed(2), d.UnresolvedWeightKG.StringFixed(2)})
}

// customsValue is the per-piece value before discounts. It falls back to
// the order line subtotal and finally to MinCustomsValue.
func customsValue(it shipment.Item) decimal.Decimal {
	qty := decimal.NewFromInt(int64(it.Quantity))

	value := it.Subtotal.Div(qty)
	if value.LessThan(MinCustomsValue) && !it.OrderLineSubtotal.IsZero() {
		value = it.OrderLineSubtotal.Div(qty)
	}
	if value.LessThan(MinCustomsValue) {
		return MinCustomsValue
	}
	return value.Round(2)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
