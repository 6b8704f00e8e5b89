package labels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imrishuroy/go-dhl-labelflow/internal/catalog"
	"github.com/imrishuroy/go-dhl-labelflow/internal/region"
	"github.com/imrishuroy/go-dhl-labelflow/internal/shipment"
)

func validatorWith(settings fakeSettings) *Validator {
	return New(Config{
		Region:        region.New("DE"),
		Catalog:       catalog.New("DE"),
		Internetmarke: testIM(),
		Settings:      settings,
	})
}

func TestDefaults_SimpleDomestic(t *testing.T) {
	settings := testSettings()
	settings.values["label_service_GoGreen"] = "yes"
	settings.values["label_service_NamedPersonOnly"] = "yes"
	settings.values["label_auto_age_check_sync"] = "yes"
	settings.values["label_auto_inlay_return_label"] = "yes"

	s := domesticShipment()
	s.Order.PreferredDay = day("2024-06-03")
	s.Order.PreferredTimeStart = "18:00"
	s.Order.PreferredTimeEnd = "20:00"
	s.Order.PreferredNeighbor = "Frau Nachbarin, Weg 5"
	s.Order.NeedsAgeVerification = true
	s.Order.MinAge = "A18"

	d, err := validatorWith(settings).Defaults(KindSimple, s)
	require.NoError(t, err)

	assert.Equal(t, catalog.ProductPaket, d.String(KeyProduct))
	assert.Equal(t, "16.9", d.Decimal(KeyCODTotal).String())
	assert.True(t, d.Flag(KeyCODIncludesAddition))
	assert.True(t, d.Flag(KeyEmailNotification))
	assert.Equal(t, "2024-06-03", d.String(KeyPreferredDay))
	assert.Equal(t, "18:00", d.String(KeyPreferredTimeStart))
	assert.Equal(t, "Frau Nachbarin, Weg 5", d.String(KeyPreferredNeighbor))
	assert.Empty(t, d.String(KeyPreferredLocation))
	assert.Equal(t, "A18", d.String(KeyVisualMinAge))
	assert.Empty(t, d.String(KeyIdentMinAge))
	assert.Equal(t, []string{"VisualCheckOfAge", "GoGreen"}, d.Strings(KeyServices))
	assert.True(t, d.Flag(KeyHasInlayReturn))
	assert.Empty(t, d.String(KeyDuties))

	addr, ok := d.Address(KeyReturnAddress)
	require.True(t, ok)
	assert.Equal(t, "Shop GmbH", addr.Name)
	assert.Equal(t, "Berlin", addr.City)

	assert.Equal(t, "0.6", d.Decimal(KeyWeight).String())
	// net weight is raised to the 0.5 kg minimum
	assert.Equal(t, "0.5", d.Decimal(KeyNetWeight).String())
}

func TestDefaults_IdentSyncOnlyWithoutVisualCheck(t *testing.T) {
	settings := testSettings()
	settings.values["label_auto_age_check_ident_sync"] = "yes"

	s := domesticShipment()
	s.Order.NeedsAgeVerification = true
	s.Order.MinAge = "A16"

	d, err := validatorWith(settings).Defaults(KindSimple, s)
	require.NoError(t, err)
	assert.Equal(t, []string{"IdentCheck"}, d.Strings(KeyServices))
	assert.Equal(t, "A16", d.String(KeyIdentMinAge))

	settings.values["label_visual_min_age"] = "A18"
	d, err = validatorWith(settings).Defaults(KindSimple, s)
	require.NoError(t, err)
	assert.Equal(t, []string{"VisualCheckOfAge"}, d.Strings(KeyServices))
	assert.Empty(t, d.String(KeyIdentMinAge))
}

func TestDefaults_SimpleCrossBorder(t *testing.T) {
	settings := testSettings()
	settings.values["label_service_Premium"] = "yes"
	settings.values["label_service_BulkyGoods"] = "yes"

	s := foreignShipment("US")
	s.CODAdditionalTotalClaimed = true
	s.Order.PreferredLocation = "Garage"

	d, err := validatorWith(settings).Defaults(KindSimple, s)
	require.NoError(t, err)

	assert.Equal(t, catalog.ProductPaketInternational, d.String(KeyProduct))
	assert.Equal(t, "DDP", d.String(KeyDuties))
	assert.Equal(t, []string{"Premium"}, d.Strings(KeyServices))
	assert.Empty(t, d.String(KeyPreferredLocation))
	assert.Nil(t, d[KeyCODTotal])
	_, hasReturn := d.Address(KeyReturnAddress)
	assert.False(t, hasReturn)
}

func TestDefaults_CODWithoutAdditionalTotal(t *testing.T) {
	s := domesticShipment()
	s.CODAdditionalTotalClaimed = true

	d, err := newTestValidator().Defaults(KindSimple, s)
	require.NoError(t, err)
	assert.Equal(t, "12", d.Decimal(KeyCODTotal).String())
	assert.False(t, d.Flag(KeyCODIncludesAddition))
}

func TestDefaults_PerMethodOverride(t *testing.T) {
	settings := testSettings()
	settings.methods["express:2"] = map[string]string{"label_default_product_dom": catalog.ProductPaketPrio}

	s := domesticShipment()
	s.ShippingMethod = "express:2"

	d, err := validatorWith(settings).Defaults(KindSimple, s)
	require.NoError(t, err)
	assert.Equal(t, catalog.ProductPaketPrio, d.String(KeyProduct))
}

func TestDefaults_Return(t *testing.T) {
	s := domesticShipment()
	s.Type = shipment.TypeReturn
	s.SenderAddress = shipment.Address{Name: "Kunde", Country: "AT"}

	d, err := newTestValidator().Defaults(KindReturn, s)
	require.NoError(t, err)
	assert.Equal(t, "international", d.String(KeyReceiverSlug))

	sender, ok := d.Address(KeySenderAddress)
	require.True(t, ok)
	assert.Equal(t, "Kunde", sender.Name)

	s.SenderAddress.Country = "DE"
	d, err = newTestValidator().Defaults(KindDeutschePostReturn, s)
	require.NoError(t, err)
	assert.Equal(t, "deutschland", d.String(KeyReceiverSlug))
}

func TestDefaults_DeutschePost(t *testing.T) {
	v := newTestValidator()

	d, err := v.Defaults(KindDeutschePost, deutschePostShipment("DE"))
	require.NoError(t, err)
	assert.Equal(t, "1", d.String(KeyProduct))
	assert.Equal(t, []string{"ESEW"}, d.Strings(KeyAdditionalServices))
	assert.Equal(t, "0.85", d.Decimal(KeyStampTotal).String())
	assert.Equal(t, "A4", d.String(KeyPageFormat))

	d, err = v.Defaults(KindDeutschePost, deutschePostShipment("FR"))
	require.NoError(t, err)
	assert.Equal(t, "10246", d.String(KeyProduct))

	d, err = v.Defaults(KindDeutschePost, deutschePostShipment("JP"))
	require.NoError(t, err)
	assert.Equal(t, "10001", d.String(KeyProduct))
}

func TestDefaults_InlayReturnAndErrors(t *testing.T) {
	v := newTestValidator()
	s := domesticShipment()

	d, err := v.Defaults(KindInlayReturn, s)
	require.NoError(t, err)
	assert.Equal(t, "7", d.String(KeyShipmentID))

	_, err = v.Defaults(KindSimple, nil)
	assert.ErrorIs(t, err, ErrMissingShipment)

	s.Order = nil
	_, err = v.Defaults(KindSimple, s)
	assert.ErrorIs(t, err, ErrMissingOrder)

	_, err = v.Defaults("bogus", domesticShipment())
	assert.ErrorIs(t, err, ErrUnknownKind)
}
