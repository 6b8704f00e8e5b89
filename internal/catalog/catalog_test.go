package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServicesFor_Table(t *testing.T) {
	c := New("DE")

	for _, code := range []string{ProductPaket, ProductPaketPrio, ProductPaketTaggleich} {
		assert.Equal(t, Services(), c.ServicesFor(code), code)
	}

	for _, code := range []string{ProductPaketConnect, ProductEuropaket, ProductPaketInternational} {
		assert.ElementsMatch(t, []Service{Premium, GoGreen, AdditionalInsurance}, c.ServicesFor(code), code)
	}

	assert.ElementsMatch(t, []Service{
		PreferredTime, PreferredLocation, PreferredNeighbour, PreferredDay, ParcelOutletRouting, GoGreen,
	}, c.ServicesFor(ProductWarenpost))
}

func TestSupports_Warenpost(t *testing.T) {
	c := New("DE")

	assert.False(t, c.Supports(ProductWarenpost, IdentCheck))
	assert.False(t, c.Supports(ProductWarenpost, CashOnDelivery))
	assert.True(t, c.Supports(ProductWarenpost, GoGreen))
	assert.True(t, c.Supports(ProductWarenpost, PreferredDay))
}

func TestSupports_UnknownProductFallsBackToInternational(t *testing.T) {
	c := New("DE")

	assert.True(t, c.Supports("V99XX", Premium))
	assert.False(t, c.Supports("V99XX", PreferredDay))
	assert.False(t, c.Supports("", IdentCheck))
}

func TestServicesFor_ReturnsCopy(t *testing.T) {
	c := New("DE")

	s := c.ServicesFor(ProductPaket)
	s[0] = "Broken"
	assert.Equal(t, PreferredTime, c.ServicesFor(ProductPaket)[0])
}

func TestNew_NonGermanBaseHasNoProducts(t *testing.T) {
	c := New("AT")

	assert.Empty(t, c.Products(true))
	assert.Empty(t, c.Products(false))
	assert.False(t, c.Supports(ProductPaket, PreferredDay))
	assert.True(t, c.Supports(ProductPaket, Premium))
}

func TestProductsSupporting(t *testing.T) {
	c := New("DE")

	assert.Equal(t, []string{ProductPaket, ProductPaketPrio, ProductPaketTaggleich}, c.ProductsSupporting(IdentCheck))
	assert.Len(t, c.ProductsSupporting(GoGreen), 7)
}

func TestIsService(t *testing.T) {
	assert.True(t, IsService("GoGreen"))
	assert.False(t, IsService("Teleport"))
	assert.Len(t, Services(), 15)
	assert.Len(t, PreferredServices(), 4)
}

func TestLabelFormat(t *testing.T) {
	c := New("DE")

	assert.Equal(t, "A4", c.LabelFormat(ProductPaket, "A4"))
	assert.Equal(t, "", c.LabelFormat(ProductPaket, "100x70mm"))
	assert.Equal(t, "100x70mm", c.LabelFormat(ProductWarenpost, "100x70mm"))
	assert.Equal(t, "", c.LabelFormat(ProductPaket, "Letter"))
}

func TestReturnAndInlayProducts(t *testing.T) {
	c := New("DE")

	require.Len(t, c.ReturnProducts(true), 1)
	assert.Equal(t, "retoure_online", c.ReturnProducts(true)[0].Code)
	assert.Len(t, c.ReturnProducts(false), 2)
	assert.True(t, c.SupportsInlayReturn(ProductPaket))
	assert.False(t, c.SupportsInlayReturn(ProductWarenpost))
	assert.True(t, c.IsDomesticProduct(ProductWarenpost))
	assert.False(t, c.IsDomesticProduct(ProductPaketConnect))
}
