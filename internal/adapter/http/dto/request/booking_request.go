package request

import (
	"errors"
	"strings"
	"time"

	"petsit_booking/internal/domain/entities"
	"petsit_booking/internal/usecase"
)

var (
	ErrInvalidDateFormat = errors.New("start_at and end_at must be RFC3339 timestamps")
)

// CreateBookingRequest is the owner's booking request for a sitter's service.
type CreateBookingRequest struct {
	SitterID    string `json:"sitter_id"`
	ServiceID   string `json:"service_id" binding:"required"`
	ServiceType string `json:"service_type"`
	StartAt     string `json:"start_at" binding:"required"`
	EndAt       string `json:"end_at" binding:"required"`
	PriceCents  int64  `json:"price_cents"`
	Notes       string `json:"notes"`
}

func (r CreateBookingRequest) ToInput() (usecase.CreateBookingInput, error) {
	start, err := time.Parse(time.RFC3339, strings.TrimSpace(r.StartAt))
	if err != nil {
		return usecase.CreateBookingInput{}, ErrInvalidDateFormat
	}
	end, err := time.Parse(time.RFC3339, strings.TrimSpace(r.EndAt))
	if err != nil {
		return usecase.CreateBookingInput{}, ErrInvalidDateFormat
	}
	return usecase.CreateBookingInput{
		SitterID:    strings.TrimSpace(r.SitterID),
		ServiceID:   strings.TrimSpace(r.ServiceID),
		ServiceType: strings.TrimSpace(r.ServiceType),
		StartAt:     start.UTC(),
		EndAt:       end.UTC(),
		PriceCents:  r.PriceCents,
		Notes:       strings.TrimSpace(r.Notes),
	}, nil
}

// AcceptBookingRequest carries the price the sitter quotes when accepting.
type AcceptBookingRequest struct {
	PriceCents int64 `json:"price_cents" binding:"required"`
}

// ReasonRequest is the optional body of decline and cancel.
type ReasonRequest struct {
	Reason string `json:"reason"`
}

type UploadProofRequest struct {
	ProofURL string `json:"proof_url" binding:"required"`
}

type PaymentReceivedRequest struct {
	AmountCents int64  `json:"amount_cents" binding:"required"`
	Method      string `json:"method"`
}

var validPaymentMethods = map[entities.PaymentMethod]bool{
	entities.PaymentMethodBankTransfer: true,
	entities.PaymentMethodCheckout:     true,
	entities.PaymentMethodManual:       true,
}

// ResolveMethod returns the payment method, empty when not given. ok is false for unknown methods.
func (r PaymentReceivedRequest) ResolveMethod() (entities.PaymentMethod, bool) {
	m := entities.PaymentMethod(strings.ToLower(strings.TrimSpace(r.Method)))
	if m == "" {
		return "", true
	}
	return m, validPaymentMethods[m]
}

type PayoutPaidRequest struct {
	TransactionRef string `json:"transaction_ref"`
}

type PlatformFeeRequest struct {
	FeePercent *float64 `json:"fee_percent" binding:"required"`
}
