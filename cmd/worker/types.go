package main

import "github.com/imrishuroy/go-dhl-labelflow/internal/customs"

// Summary is the outcome stored on the idempotency record and replayed to
// clients retrying with the same Idempotency-Key.
type Summary struct {
	RequestID    string               `json:"request_id"`
	ShipmentID   string               `json:"shipment_id"`
	Kind         string               `json:"kind"`
	Status       string               `json:"status"`
	Reference    string               `json:"reference"`
	StreetNumber string               `json:"street_number,omitempty"`
	Product      string               `json:"product,omitempty"`
	Services     []string             `json:"services,omitempty"`
	Customs      *customs.Declaration `json:"customs,omitempty"`
}
