package validation

import (
	"github.com/shopspring/decimal"

	"github.com/imrishuroy/go-dhl-labelflow/internal/shipment"
)

// LabelRequest is the payload for POST /labels/validate and POST /labels.
type LabelRequest struct {
	Kind        string             `json:"kind" validate:"omitempty,oneof=simple return deutsche_post deutsche_post_return inlay_return"`
	Shipment    *shipment.Shipment `json:"shipment" validate:"required"`
	Args        map[string]any     `json:"args,omitempty"`
	Defaults    map[string]any     `json:"defaults,omitempty"` // built from settings when absent
	Interactive bool               `json:"interactive,omitempty"`
}

// CustomsRequest is the payload for POST /customs/declaration.
type CustomsRequest struct {
	Shipment  *shipment.Shipment `json:"shipment" validate:"required"`
	NetWeight *decimal.Decimal   `json:"net_weight,omitempty"` // kg; shipment content weight when absent
}
