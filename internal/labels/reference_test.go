package labels

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/imrishuroy/go-dhl-labelflow/internal/region"
	"github.com/imrishuroy/go-dhl-labelflow/internal/shipment"
)

func TestReferences(t *testing.T) {
	s := domesticShipment()

	assert.Equal(t, "Shipment #7 to order A-100", CustomerReference(s))
	assert.Equal(t, "Return #7 to order A-100", ReturnCustomerReference(s))
	assert.Equal(t, "Return shipment #7 to order #A-100", InlayReturnReference(s))

	s.ID = "1234567890"
	s.Order.Number = "ORDER-9876543210"
	assert.Equal(t, "Shipment #1234567890 to order ORDER", CustomerReference(s))
	assert.Len(t, ReturnCustomerReference(s), 30)

	s.Order = nil
	s.OrderID = "55"
	assert.Equal(t, "Shipment #1234567890 to order 55", CustomerReference(s))
}

func TestStreetNumber(t *testing.T) {
	r := region.New("DE")

	assert.Equal(t, "", StreetNumber(r, "", "DE"))
	assert.Equal(t, "12a", StreetNumber(r, "12a", "AT"))
	assert.Equal(t, StreetNumberPlaceholder, StreetNumber(r, "", "AT"))
}

func TestAddressAddition(t *testing.T) {
	assert.Equal(t, "Hinterhaus 2. OG", AddressAddition("2. OG", "Hinterhaus"))
	assert.Equal(t, "2. OG", AddressAddition(" 2. OG ", ""))
	assert.Equal(t, "Hinterhaus", AddressAddition("", "Hinterhaus"))
	assert.Equal(t, "", AddressAddition("", ""))
}

func TestShipmentWeight(t *testing.T) {
	settings := testSettings()

	s := domesticShipment()
	assert.Equal(t, "0.6", ShipmentWeight(s, settings, false).String())
	assert.Equal(t, "0.5", ShipmentWeight(s, settings, true).String())

	s.Weight = dec("0")
	s.TotalWeight = dec("0.2")
	assert.Equal(t, "2.2", ShipmentWeight(s, settings, false).String())
	assert.Equal(t, "2", ShipmentWeight(s, settings, true).String())

	s.Provider = "ups"
	assert.Equal(t, "0.2", ShipmentWeight(s, settings, false).String())

	dp := &shipment.Shipment{Provider: shipment.ProviderDeutschePost, Weight: dec("0.01"), TotalWeight: dec("0.01")}
	settings.values["deutsche_post_label_minimum_shipment_weight"] = "0.02"
	assert.Equal(t, "0.02", ShipmentWeight(dp, settings, false).String())
}

func TestDimensions(t *testing.T) {
	s := domesticShipment()
	assert.True(t, Dimensions(s).Length.IsZero())

	s.Dimensions = &shipment.Dimensions{Length: dec("30"), Width: dec("20"), Height: dec("10")}
	assert.Equal(t, "20", Dimensions(s).Width.String())
}
