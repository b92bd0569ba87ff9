package response

import (
	"time"

	"petsit_booking/internal/domain/entities"
	"petsit_booking/internal/usecase"
)

type PayoutResponse struct {
	ID             string     `json:"id"`
	BookingID      string     `json:"booking_id"`
	SitterID       string     `json:"sitter_id"`
	GrossCents     int64      `json:"gross_cents"`
	FeePercent     float64    `json:"fee_percent"`
	FeeCents       int64      `json:"fee_cents"`
	AmountCents    int64      `json:"amount_cents"`
	Amount         string     `json:"amount"`
	Currency       string     `json:"currency"`
	Status         string     `json:"status"`
	TransactionRef string     `json:"transaction_ref,omitempty"`
	ScheduledAt    time.Time  `json:"scheduled_at"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
}

func FromPayout(p entities.Payout) PayoutResponse {
	return PayoutResponse{
		ID:             p.ID,
		BookingID:      p.BookingID,
		SitterID:       p.SitterID,
		GrossCents:     p.GrossCents,
		FeePercent:     p.FeePercent,
		FeeCents:       p.FeeCents,
		AmountCents:    p.AmountCents,
		Amount:         usecase.FormatAmount(p.AmountCents, p.Currency),
		Currency:       p.Currency,
		Status:         string(p.Status),
		TransactionRef: p.TransactionRef,
		ScheduledAt:    p.ScheduledAt,
		PaidAt:         p.PaidAt,
	}
}

func FromPayouts(in []entities.Payout) []PayoutResponse {
	out := make([]PayoutResponse, 0, len(in))
	for _, p := range in {
		out = append(out, FromPayout(p))
	}
	return out
}

type CompletionResponse struct {
	Booking BookingResponse `json:"booking"`
	Payout  PayoutResponse  `json:"payout"`
}

func FromCompletion(r usecase.CompletionResult) CompletionResponse {
	return CompletionResponse{Booking: FromBooking(r.Booking), Payout: FromPayout(r.Payout)}
}

type LedgerEventResponse struct {
	ID        string         `json:"id"`
	EventName string         `json:"event_name"`
	ActorID   string         `json:"actor_id"`
	ActorRole string         `json:"actor_role"`
	BookingID string         `json:"booking_id,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func FromLedgerEvents(in []entities.LedgerEvent) []LedgerEventResponse {
	out := make([]LedgerEventResponse, 0, len(in))
	for _, e := range in {
		out = append(out, LedgerEventResponse{
			ID:        e.ID,
			EventName: e.EventName,
			ActorID:   e.ActorID,
			ActorRole: string(e.ActorRole),
			BookingID: e.BookingID,
			Metadata:  e.Metadata,
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}
