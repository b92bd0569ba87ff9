package payments

import (
	"context"
	"testing"

	"petsit_booking/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("token required outside mock mode", func(t *testing.T) {
		_, err := NewMercadoPagoGateway("", false, BackURLs{}, nil)
		assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
	})

	t.Run("mock mode returns a redirect", func(t *testing.T) {
		g, err := NewMercadoPagoGateway("", true, BackURLs{}, nil)
		require.NoError(t, err)

		s, err := g.CreateCheckoutSession(context.Background(), interfaces.CheckoutRequest{BookingID: "bk-1", AmountCents: 10000})
		require.NoError(t, err)
		assert.NotEmpty(t, s.ID)
		assert.Contains(t, s.RedirectURL, s.ID)
	})

	t.Run("nil gateway is not configured", func(t *testing.T) {
		var g *MercadoPagoGateway
		_, err := g.CreateCheckoutSession(context.Background(), interfaces.CheckoutRequest{})
		assert.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
	})
}

func TestBuildPreferenceRequest(t *testing.T) {
	r := buildPreferenceRequest(interfaces.CheckoutRequest{
		BookingID:     "bk-1",
		InvoiceNumber: "INV-20250310-000001",
		AmountCents:   12345,
		Currency:      "brl",
		PayerEmail:    "owner@example.com",
	}, BackURLs{Success: "https://app.example.com/paid"})

	require.Len(t, r.Items, 1)
	assert.Equal(t, "Booking INV-20250310-000001", r.Items[0].Title)
	assert.Equal(t, 123.45, r.Items[0].UnitPrice)
	assert.Equal(t, "BRL", r.Items[0].CurrencyID)
	assert.Equal(t, "INV-20250310-000001", r.ExternalReference)
	require.NotNil(t, r.Payer)
	assert.Equal(t, "owner@example.com", r.Payer.Email)
	require.NotNil(t, r.BackURLs)
	assert.Equal(t, "approved", r.AutoReturn)
}
