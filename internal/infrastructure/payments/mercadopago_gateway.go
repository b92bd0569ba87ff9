package payments

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"petsit_booking/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// BackURLs are the pages the checkout redirects the owner to after paying.
type BackURLs struct {
	Success string
	Failure string
	Pending string
}

// MercadoPagoGateway creates hosted checkout sessions (preferences) at Mercado Pago.
type MercadoPagoGateway struct {
	client   preference.Client
	backURLs BackURLs
	mockMode bool
	log      *zap.Logger
}

var _ interfaces.ICheckoutGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mock bool, backURLs BackURLs, log *zap.Logger) (*MercadoPagoGateway, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("payment.gateway")

	if mock {
		log.Info("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, backURLs: backURLs, log: log}, nil
	}

	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error("failed creating sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("Mercado Pago client initialized")

	return &MercadoPagoGateway{client: preference.NewClient(cfg), backURLs: backURLs, log: log}, nil
}

func (g *MercadoPagoGateway) CreateCheckoutSession(ctx context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutSession, error) {
	if g != nil && g.mockMode {
		id := "mock-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		g.log.Info("mock checkout created", zap.String("booking_id", req.BookingID), zap.String("session_id", id))
		return interfaces.CheckoutSession{
			ID:          id,
			RedirectURL: "https://www.mercadopago.com/checkout/v1/redirect?pref_id=" + id,
		}, nil
	}

	if g == nil || g.client == nil {
		return interfaces.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}
	g.log.Info("create checkout start", zap.String("booking_id", req.BookingID), zap.Int64("amount_cents", req.AmountCents))

	resp, err := g.client.Create(ctx, buildPreferenceRequest(req, g.backURLs))
	if err != nil {
		g.log.Error("create checkout failed", zap.String("booking_id", req.BookingID), zap.Error(err))
		return interfaces.CheckoutSession{}, fmt.Errorf("mercado pago create preference: %w", err)
	}

	g.log.Info("create checkout success", zap.String("booking_id", req.BookingID), zap.String("session_id", resp.ID))
	return interfaces.CheckoutSession{ID: resp.ID, RedirectURL: resp.InitPoint}, nil
}

func buildPreferenceRequest(req interfaces.CheckoutRequest, back BackURLs) preference.Request {
	title := req.Description
	if title == "" {
		title = "Booking " + req.InvoiceNumber
	}

	r := preference.Request{
		ExternalReference: req.InvoiceNumber,
		Items: []preference.ItemRequest{{
			ID:         req.BookingID,
			Title:      title,
			Quantity:   1,
			UnitPrice:  float64(req.AmountCents) / 100,
			CurrencyID: strings.ToUpper(req.Currency),
		}},
	}
	if req.PayerEmail != "" {
		r.Payer = &preference.PayerRequest{Email: req.PayerEmail}
	}
	if back.Success != "" || back.Failure != "" || back.Pending != "" {
		r.BackURLs = &preference.BackURLsRequest{
			Success: back.Success,
			Failure: back.Failure,
			Pending: back.Pending,
		}
		if back.Success != "" {
			r.AutoReturn = "approved"
		}
	}
	return r
}
