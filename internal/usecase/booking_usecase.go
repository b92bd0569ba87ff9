package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"petsit_booking/internal/domain/entities"
	"petsit_booking/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IBookingUseCase covers the booking request/accept/confirm part of the lifecycle:
//   - create-booking      => Create()
//   - sitter-accept       => SitterAccept()
//   - dashboard decline   => SitterDecline()
//   - owner cancel        => OwnerCancel()
//   - owner-confirm       => OwnerConfirm() (generates the invoice)

type IBookingUseCase interface {
	Create(ctx context.Context, actor entities.Actor, in CreateBookingInput) (entities.Booking, error)
	SitterAccept(ctx context.Context, actor entities.Actor, bookingID string, priceCents int64) (entities.Booking, error)
	SitterDecline(ctx context.Context, actor entities.Actor, bookingID, reason string) (entities.Booking, error)
	OwnerCancel(ctx context.Context, actor entities.Actor, bookingID, reason string) (entities.Booking, error)
	OwnerConfirm(ctx context.Context, actor entities.Actor, bookingID string) (ConfirmResult, error)
	Get(ctx context.Context, actor entities.Actor, bookingID string) (entities.Booking, error)
	List(ctx context.Context, actor entities.Actor, status entities.BookingStatus) ([]entities.Booking, error)
}

type CreateBookingInput struct {
	SitterID    string
	ServiceID   string
	ServiceType string
	StartAt     time.Time
	EndAt       time.Time
	PriceCents  int64
	Notes       string
}

type ConfirmResult struct {
	Booking entities.Booking `json:"booking"`
	Invoice entities.Invoice `json:"invoice"`
}

// InvoiceSettings configures invoice generation on owner confirmation.
type InvoiceSettings struct {
	NumberTemplate      string
	DueDays             int
	Currency            string
	PaymentInstructions string
}

type BookingUseCaseParams struct {
	Bookings  interfaces.IBookingRepository
	Invoices  interfaces.IInvoiceRepository
	Lifecycle interfaces.ILifecycleStore
	Audit     interfaces.IAuditRecorder
	Notifier  interfaces.INotificationDispatcher
	Invoice   InvoiceSettings
	Log       *zap.Logger
}

type BookingUseCase struct {
	bookings  interfaces.IBookingRepository
	invoices  interfaces.IInvoiceRepository
	lifecycle interfaces.ILifecycleStore
	audit     interfaces.IAuditRecorder
	notifier  interfaces.INotificationDispatcher
	invoice   InvoiceSettings
	log       *zap.Logger
	now       func() time.Time
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(p BookingUseCaseParams) *BookingUseCase {
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}
	inv := p.Invoice
	if inv.NumberTemplate == "" {
		inv.NumberTemplate = entities.DefaultInvoiceNumberTemplate
	}
	if inv.DueDays <= 0 {
		inv.DueDays = 3
	}
	if inv.Currency == "" {
		inv.Currency = "EUR"
	}
	return &BookingUseCase{
		bookings:  p.Bookings,
		invoices:  p.Invoices,
		lifecycle: p.Lifecycle,
		audit:     p.Audit,
		notifier:  p.Notifier,
		invoice:   inv,
		log:       log.Named("booking.usecase"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *BookingUseCase) Create(ctx context.Context, actor entities.Actor, in CreateBookingInput) (entities.Booking, error) {
	in.ServiceID = strings.TrimSpace(in.ServiceID)
	in.SitterID = strings.TrimSpace(in.SitterID)
	if in.ServiceID == "" || in.StartAt.IsZero() || in.EndAt.IsZero() {
		return entities.Booking{}, ErrInvalidBookingInput
	}
	if !in.EndAt.After(in.StartAt) {
		return entities.Booking{}, ErrInvalidBookingDates
	}
	if in.PriceCents < 0 {
		return entities.Booking{}, ErrInvalidPrice
	}

	now := u.now()
	b := entities.Booking{
		ID:            uuid.NewString(),
		OwnerID:       actor.ID,
		SitterID:      in.SitterID,
		ServiceID:     in.ServiceID,
		ServiceType:   strings.TrimSpace(in.ServiceType),
		StartAt:       in.StartAt.UTC(),
		EndAt:         in.EndAt.UTC(),
		PriceCents:    in.PriceCents,
		Currency:      u.invoice.Currency,
		Status:        entities.BookingStatusPending,
		PaymentStatus: entities.BookingPaymentUnpaid,
		Notes:         strings.TrimSpace(in.Notes),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.bookings.Create(ctx, b)
	if err != nil {
		u.log.Error("create-booking failed", zap.String("owner_id", actor.ID), zap.Error(err))
		return entities.Booking{}, err
	}
	u.log.Info("create-booking success", zap.String("booking_id", created.ID), zap.String("owner_id", actor.ID))

	u.record(ctx, actor, entities.EventBookingCreated, created.ID, map[string]any{
		"service_id": created.ServiceID,
		"sitter_id":  created.SitterID,
		"start_at":   created.StartAt.Format(time.RFC3339),
		"end_at":     created.EndAt.Format(time.RFC3339),
	})
	if created.SitterID != "" {
		u.notify(ctx, entities.Notification{
			Template:    entities.TemplateBookingRequested,
			RecipientID: created.SitterID,
			BookingID:   created.ID,
			Data:        bookingData(created),
		})
	}
	return created, nil
}

func (u *BookingUseCase) SitterAccept(ctx context.Context, actor entities.Actor, bookingID string, priceCents int64) (entities.Booking, error) {
	if priceCents <= 0 {
		return entities.Booking{}, ErrInvalidPrice
	}
	b, err := loadBooking(ctx, u.bookings, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	if err := requireSitter(b, actor); err != nil {
		u.log.Warn("sitter-accept rejected", zap.String("booking_id", b.ID), zap.String("actor_id", actor.ID), zap.Error(err))
		return entities.Booking{}, err
	}
	if err := requireTransition(b, entities.TransitionSitterAccept); err != nil {
		u.log.Warn("sitter-accept rejected", zap.String("booking_id", b.ID), zap.String("status", string(b.Status)))
		return entities.Booking{}, err
	}

	updated, err := u.transition(ctx, b.ID, entities.TransitionSitterAccept,
		interfaces.BookingGuard{SitterID: actor.ID},
		entities.BookingPatch{PriceCents: ptr(priceCents)})
	if err != nil {
		return entities.Booking{}, err
	}

	u.record(ctx, actor, entities.EventBookingAccepted, updated.ID, map[string]any{"price_cents": priceCents})
	u.notify(ctx, entities.Notification{
		Template:    entities.TemplateBookingAccepted,
		RecipientID: updated.OwnerID,
		BookingID:   updated.ID,
		Data:        bookingData(updated),
	})
	return updated, nil
}

func (u *BookingUseCase) SitterDecline(ctx context.Context, actor entities.Actor, bookingID, reason string) (entities.Booking, error) {
	b, err := loadBooking(ctx, u.bookings, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	if err := requireSitter(b, actor); err != nil {
		return entities.Booking{}, err
	}
	if err := requireTransition(b, entities.TransitionSitterDecline); err != nil {
		return entities.Booking{}, err
	}

	reason = strings.TrimSpace(reason)
	updated, err := u.transition(ctx, b.ID, entities.TransitionSitterDecline,
		interfaces.BookingGuard{SitterID: actor.ID},
		entities.BookingPatch{CancelledBy: ptr(actor.ID), CancellationReason: ptr(reason)})
	if err != nil {
		return entities.Booking{}, err
	}

	u.record(ctx, actor, entities.EventBookingDeclined, updated.ID, map[string]any{
		"previous_status": string(b.Status),
		"reason":          reason,
	})
	u.notify(ctx, entities.Notification{
		Template:    entities.TemplateBookingDeclined,
		RecipientID: updated.OwnerID,
		BookingID:   updated.ID,
		Data:        bookingData(updated),
	})
	return updated, nil
}

func (u *BookingUseCase) OwnerCancel(ctx context.Context, actor entities.Actor, bookingID, reason string) (entities.Booking, error) {
	b, err := loadBooking(ctx, u.bookings, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	if err := requireOwner(b, actor); err != nil {
		return entities.Booking{}, err
	}
	if err := requireTransition(b, entities.TransitionOwnerCancel); err != nil {
		return entities.Booking{}, err
	}
	if b.PaymentStatus == entities.BookingPaymentPaid {
		return entities.Booking{}, ErrBookingAlreadyPaid
	}

	reason = strings.TrimSpace(reason)
	updated, err := u.transition(ctx, b.ID, entities.TransitionOwnerCancel,
		interfaces.BookingGuard{
			OwnerID:         actor.ID,
			PaymentStatusIn: []entities.BookingPaymentStatus{entities.BookingPaymentUnpaid, entities.BookingPaymentPendingVerification},
		},
		entities.BookingPatch{CancelledBy: ptr(actor.ID), CancellationReason: ptr(reason)})
	if err != nil {
		return entities.Booking{}, err
	}

	u.record(ctx, actor, entities.EventBookingCancelled, updated.ID, map[string]any{
		"previous_status": string(b.Status),
		"reason":          reason,
	})

	if b.Status == entities.BookingStatusConfirmed {
		inv, err := u.invoices.Void(ctx, updated.ID)
		switch {
		case err != nil:
			u.log.Error("owner-cancel void invoice failed", zap.String("booking_id", updated.ID), zap.Error(err))
		case inv.ID != "":
			u.record(ctx, actor, entities.EventInvoiceVoided, updated.ID, map[string]any{"invoice_number": inv.InvoiceNumber})
		}
	}

	if updated.SitterID != "" {
		u.notify(ctx, entities.Notification{
			Template:    entities.TemplateBookingCancelled,
			RecipientID: updated.SitterID,
			BookingID:   updated.ID,
			Data:        bookingData(updated),
		})
	}
	return updated, nil
}

func (u *BookingUseCase) OwnerConfirm(ctx context.Context, actor entities.Actor, bookingID string) (ConfirmResult, error) {
	b, err := loadBooking(ctx, u.bookings, bookingID)
	if err != nil {
		return ConfirmResult{}, err
	}
	if err := requireOwner(b, actor); err != nil {
		u.log.Warn("owner-confirm rejected", zap.String("booking_id", b.ID), zap.String("actor_id", actor.ID), zap.Error(err))
		return ConfirmResult{}, err
	}
	if err := requireTransition(b, entities.TransitionOwnerConfirm); err != nil {
		u.log.Warn("owner-confirm rejected", zap.String("booking_id", b.ID), zap.String("status", string(b.Status)))
		return ConfirmResult{}, err
	}
	if b.PriceCents <= 0 {
		return ConfirmResult{}, ErrInvalidPrice
	}

	now := u.now()
	inv, err := u.buildInvoice(ctx, b, now)
	if err != nil {
		u.log.Error("owner-confirm invoice build failed", zap.String("booking_id", b.ID), zap.Error(err))
		return ConfirmResult{}, err
	}

	if err := u.lifecycle.ConfirmWithInvoice(ctx, b.ID, actor.ID, inv, now); err != nil {
		switch {
		case errors.Is(err, interfaces.ErrStaleStatus):
			u.log.Warn("owner-confirm lost status race", zap.String("booking_id", b.ID))
			return ConfirmResult{}, ErrBookingStatusChanged
		case errors.Is(err, interfaces.ErrAlreadyExists):
			return ConfirmResult{}, ErrInvoiceAlreadyExists
		}
		u.log.Error("owner-confirm failed", zap.String("booking_id", b.ID), zap.Error(err))
		return ConfirmResult{}, err
	}

	b.Status = entities.BookingStatusConfirmed
	b.UpdatedAt = now
	u.log.Info("owner-confirm success", zap.String("booking_id", b.ID), zap.String("invoice_number", inv.InvoiceNumber))

	u.record(ctx, actor, entities.EventBookingConfirmed, b.ID, nil)
	u.record(ctx, actor, entities.EventInvoiceGenerated, b.ID, map[string]any{
		"invoice_id":     inv.ID,
		"invoice_number": inv.InvoiceNumber,
		"total_cents":    inv.TotalCents,
		"due_at":         inv.DueAt.Format(time.RFC3339),
	})
	data := bookingData(b)
	data["invoice_number"] = inv.InvoiceNumber
	data["due_at"] = inv.DueAt.Format("2006-01-02")
	data["payment_instructions"] = inv.PaymentInstructions
	u.notify(ctx, entities.Notification{
		Template:    entities.TemplateInvoiceIssued,
		RecipientID: b.OwnerID,
		BookingID:   b.ID,
		Data:        data,
	})
	return ConfirmResult{Booking: b, Invoice: inv}, nil
}

func (u *BookingUseCase) Get(ctx context.Context, actor entities.Actor, bookingID string) (entities.Booking, error) {
	b, err := loadBooking(ctx, u.bookings, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	if err := requirePartyOrAdmin(b, actor); err != nil {
		return entities.Booking{}, err
	}
	return b, nil
}

// List returns the caller's bookings: owners see what they requested, sitters what they are
// assigned to, admins every booking in the given status.
func (u *BookingUseCase) List(ctx context.Context, actor entities.Actor, status entities.BookingStatus) ([]entities.Booking, error) {
	if status != "" && !status.IsValid() {
		return nil, ErrInvalidStatusFilter
	}

	var (
		items []entities.Booking
		err   error
	)
	switch actor.Role {
	case entities.UserTypeAdmin:
		if status == "" {
			status = entities.BookingStatusPending
		}
		return u.bookings.ListByStatus(ctx, status)
	case entities.UserTypeSitter:
		items, err = u.bookings.ListBySitter(ctx, actor.ID)
	default:
		items, err = u.bookings.ListByOwner(ctx, actor.ID)
	}
	if err != nil {
		return nil, err
	}
	if status == "" {
		return items, nil
	}
	filtered := make([]entities.Booking, 0, len(items))
	for _, b := range items {
		if b.Status == status {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

func (u *BookingUseCase) transition(ctx context.Context, bookingID string, t entities.Transition, guard interfaces.BookingGuard, patch entities.BookingPatch) (entities.Booking, error) {
	updated, err := u.bookings.Transition(ctx, bookingID, t, guard, patch)
	if err != nil {
		if errors.Is(err, interfaces.ErrStaleStatus) {
			u.log.Warn("transition lost status race", zap.String("booking_id", bookingID), zap.String("event", t.Event))
			return entities.Booking{}, ErrBookingStatusChanged
		}
		u.log.Error("transition failed", zap.String("booking_id", bookingID), zap.String("event", t.Event), zap.Error(err))
		return entities.Booking{}, err
	}
	u.log.Info("transition success", zap.String("booking_id", bookingID), zap.String("event", t.Event), zap.String("status", string(updated.Status)))
	return updated, nil
}

func (u *BookingUseCase) buildInvoice(ctx context.Context, b entities.Booking, now time.Time) (entities.Invoice, error) {
	seq, err := u.invoices.NextSequence(ctx)
	if err != nil {
		return entities.Invoice{}, fmt.Errorf("next invoice sequence: %w", err)
	}
	number, err := entities.FormatInvoiceNumber(u.invoice.NumberTemplate, now, seq)
	if err != nil {
		return entities.Invoice{}, err
	}

	due := now.AddDate(0, 0, u.invoice.DueDays)
	if b.StartAt.After(now) && b.StartAt.Before(due) {
		due = b.StartAt
	}
	currency := b.Currency
	if currency == "" {
		currency = u.invoice.Currency
	}

	description := "Pet sitting"
	if b.ServiceType != "" {
		description = strings.ReplaceAll(b.ServiceType, "_", " ")
	}
	description = fmt.Sprintf("%s %s to %s", description, b.StartAt.Format("2006-01-02"), b.EndAt.Format("2006-01-02"))

	return entities.Invoice{
		ID:                  uuid.NewString(),
		BookingID:           b.ID,
		InvoiceNumber:       number,
		IssuedAt:            now,
		DueAt:               due,
		TotalCents:          b.PriceCents,
		Currency:            currency,
		Status:              entities.InvoiceStatusAwaitingPayment,
		PaymentInstructions: renderInstructions(u.invoice.PaymentInstructions, number, b.PriceCents, currency, due),
		Lines: []entities.InvoiceLine{{
			Description: description,
			Quantity:    1,
			UnitCents:   b.PriceCents,
			AmountCents: b.PriceCents,
		}},
	}, nil
}

func (u *BookingUseCase) record(ctx context.Context, actor entities.Actor, event, bookingID string, metadata map[string]any) {
	if u.audit == nil {
		return
	}
	if err := u.audit.Record(ctx, actor, event, bookingID, metadata); err != nil {
		u.log.Warn("ledger append failed", zap.String("event", event), zap.String("booking_id", bookingID), zap.Error(err))
	}
}

func (u *BookingUseCase) notify(ctx context.Context, n entities.Notification) {
	if u.notifier == nil {
		return
	}
	u.notifier.Dispatch(ctx, n)
}

// renderInstructions fills the {invoice_number}, {amount} and {due_date} placeholders.
func renderInstructions(template, invoiceNumber string, amountCents int64, currency string, due time.Time) string {
	if strings.TrimSpace(template) == "" {
		template = "Please pay {amount} by bank transfer before {due_date} using reference {invoice_number}."
	}
	return strings.NewReplacer(
		"{invoice_number}", invoiceNumber,
		"{amount}", FormatAmount(amountCents, currency),
		"{due_date}", due.Format("2006-01-02"),
	).Replace(template)
}

// FormatAmount renders cents as "123.45 EUR".
func FormatAmount(cents int64, currency string) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, cents/100, cents%100, currency)
}

func bookingData(b entities.Booking) map[string]any {
	return map[string]any{
		"booking_id": b.ID,
		"start_at":   b.StartAt.Format("2006-01-02 15:04"),
		"end_at":     b.EndAt.Format("2006-01-02 15:04"),
		"amount":     FormatAmount(b.PriceCents, b.Currency),
		"status":     string(b.Status),
	}
}
