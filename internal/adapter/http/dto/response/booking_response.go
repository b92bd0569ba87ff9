package response

import (
	"time"

	"petsit_booking/internal/domain/entities"
	"petsit_booking/internal/usecase"
)

type BookingResponse struct {
	ID                 string    `json:"id"`
	OwnerID            string    `json:"owner_id"`
	SitterID           string    `json:"sitter_id,omitempty"`
	ServiceID          string    `json:"service_id"`
	ServiceType        string    `json:"service_type,omitempty"`
	StartAt            time.Time `json:"start_at"`
	EndAt              time.Time `json:"end_at"`
	PriceCents         int64     `json:"price_cents"`
	Price              string    `json:"price"`
	Currency           string    `json:"currency"`
	Status             string    `json:"status"`
	PaymentStatus      string    `json:"payment_status"`
	Notes              string    `json:"notes,omitempty"`
	CancelledBy        string    `json:"cancelled_by,omitempty"`
	CancellationReason string    `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:                 b.ID,
		OwnerID:            b.OwnerID,
		SitterID:           b.SitterID,
		ServiceID:          b.ServiceID,
		ServiceType:        b.ServiceType,
		StartAt:            b.StartAt,
		EndAt:              b.EndAt,
		PriceCents:         b.PriceCents,
		Price:              usecase.FormatAmount(b.PriceCents, b.Currency),
		Currency:           b.Currency,
		Status:             string(b.Status),
		PaymentStatus:      string(b.PaymentStatus),
		Notes:              b.Notes,
		CancelledBy:        b.CancelledBy,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func FromBookings(in []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(in))
	for _, b := range in {
		out = append(out, FromBooking(b))
	}
	return out
}

type InvoiceLineResponse struct {
	Description string `json:"description"`
	Quantity    int64  `json:"quantity"`
	UnitCents   int64  `json:"unit_cents"`
	AmountCents int64  `json:"amount_cents"`
}

type InvoiceResponse struct {
	ID                  string                `json:"id"`
	BookingID           string                `json:"booking_id"`
	InvoiceNumber       string                `json:"invoice_number"`
	IssuedAt            time.Time             `json:"issued_at"`
	DueAt               time.Time             `json:"due_at"`
	TotalCents          int64                 `json:"total_cents"`
	Total               string                `json:"total"`
	Currency            string                `json:"currency"`
	Status              string                `json:"status"`
	PaymentInstructions string                `json:"payment_instructions"`
	Lines               []InvoiceLineResponse `json:"lines"`
	CheckoutURL         string                `json:"checkout_url,omitempty"`
	PaidAt              *time.Time            `json:"paid_at,omitempty"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	lines := make([]InvoiceLineResponse, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		lines = append(lines, InvoiceLineResponse(l))
	}
	return InvoiceResponse{
		ID:                  inv.ID,
		BookingID:           inv.BookingID,
		InvoiceNumber:       inv.InvoiceNumber,
		IssuedAt:            inv.IssuedAt,
		DueAt:               inv.DueAt,
		TotalCents:          inv.TotalCents,
		Total:               usecase.FormatAmount(inv.TotalCents, inv.Currency),
		Currency:            inv.Currency,
		Status:              string(inv.Status),
		PaymentInstructions: inv.PaymentInstructions,
		Lines:               lines,
		CheckoutURL:         inv.CheckoutURL,
		PaidAt:              inv.PaidAt,
	}
}

type PaymentResponse struct {
	ID          string     `json:"id"`
	InvoiceID   string     `json:"invoice_id"`
	BookingID   string     `json:"booking_id"`
	PayerID     string     `json:"payer_id"`
	AmountCents int64      `json:"amount_cents"`
	Method      string     `json:"method"`
	ProofURL    string     `json:"proof_url,omitempty"`
	ReceivedAt  *time.Time `json:"received_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		InvoiceID:   p.InvoiceID,
		BookingID:   p.BookingID,
		PayerID:     p.PayerID,
		AmountCents: p.AmountCents,
		Method:      string(p.Method),
		ProofURL:    p.ProofURL,
		ReceivedAt:  p.ReceivedAt,
		CreatedAt:   p.CreatedAt,
	}
}

func FromPayments(in []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(in))
	for _, p := range in {
		out = append(out, FromPayment(p))
	}
	return out
}

type ConfirmResponse struct {
	Booking BookingResponse `json:"booking"`
	Invoice InvoiceResponse `json:"invoice"`
}

func FromConfirm(r usecase.ConfirmResult) ConfirmResponse {
	return ConfirmResponse{Booking: FromBooking(r.Booking), Invoice: FromInvoice(r.Invoice)}
}

type SettlementResponse struct {
	Booking BookingResponse `json:"booking"`
	Invoice InvoiceResponse `json:"invoice"`
	Payment PaymentResponse `json:"payment"`
}

func FromSettlement(r usecase.SettlementResult) SettlementResponse {
	return SettlementResponse{
		Booking: FromBooking(r.Booking),
		Invoice: FromInvoice(r.Invoice),
		Payment: FromPayment(r.Payment),
	}
}

type CheckoutResponse struct {
	InvoiceNumber string `json:"invoice_number"`
	CheckoutURL   string `json:"checkout_url"`
}
