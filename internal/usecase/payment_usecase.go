package usecase

import (
	"context"
	"errors"
	"net/url"
	"sort"
	"strings"
	"time"

	"petsit_booking/internal/domain/entities"
	"petsit_booking/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultPaymentStartWindow is how close the booking start must be for a received payment to
// move the booking straight to in_progress.
const DefaultPaymentStartWindow = 24 * time.Hour

// IPaymentUseCase covers the invoice/payment sub-flow:
//   - owner-upload-proof          => UploadProof()
//   - hosted checkout             => StartCheckout()
//   - admin-mark-payment-received => MarkPaymentReceived()
//   - start sweep                 => StartDueBookings()

type IPaymentUseCase interface {
	UploadProof(ctx context.Context, actor entities.Actor, bookingID, proofURL string) (entities.Payment, error)
	StartCheckout(ctx context.Context, actor entities.Actor, bookingID string) (entities.Invoice, error)
	MarkPaymentReceived(ctx context.Context, actor entities.Actor, bookingID string, amountCents int64, method entities.PaymentMethod) (SettlementResult, error)
	StartDueBookings(ctx context.Context, actor entities.Actor) ([]entities.Booking, error)
	GetInvoice(ctx context.Context, actor entities.Actor, bookingID string) (entities.Invoice, error)
	ListPayments(ctx context.Context, actor entities.Actor, bookingID string) ([]entities.Payment, error)
}

type SettlementResult struct {
	Booking entities.Booking `json:"booking"`
	Invoice entities.Invoice `json:"invoice"`
	Payment entities.Payment `json:"payment"`
}

type PaymentUseCaseParams struct {
	Bookings    interfaces.IBookingRepository
	Invoices    interfaces.IInvoiceRepository
	Payments    interfaces.IPaymentRepository
	Lifecycle   interfaces.ILifecycleStore
	Gateway     interfaces.ICheckoutGateway
	Audit       interfaces.IAuditRecorder
	Notifier    interfaces.INotificationDispatcher
	StartWindow time.Duration
	Log         *zap.Logger
}

type PaymentUseCase struct {
	bookings    interfaces.IBookingRepository
	invoices    interfaces.IInvoiceRepository
	payments    interfaces.IPaymentRepository
	lifecycle   interfaces.ILifecycleStore
	gateway     interfaces.ICheckoutGateway
	audit       interfaces.IAuditRecorder
	notifier    interfaces.INotificationDispatcher
	startWindow time.Duration
	log         *zap.Logger
	now         func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(p PaymentUseCaseParams) *PaymentUseCase {
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}
	window := p.StartWindow
	if window <= 0 {
		window = DefaultPaymentStartWindow
	}
	return &PaymentUseCase{
		bookings:    p.Bookings,
		invoices:    p.Invoices,
		payments:    p.Payments,
		lifecycle:   p.Lifecycle,
		gateway:     p.Gateway,
		audit:       p.Audit,
		notifier:    p.Notifier,
		startWindow: window,
		log:         log.Named("payment.usecase"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (u *PaymentUseCase) UploadProof(ctx context.Context, actor entities.Actor, bookingID, proofURL string) (entities.Payment, error) {
	proofURL = strings.TrimSpace(proofURL)
	if !isHTTPURL(proofURL) {
		return entities.Payment{}, ErrInvalidProofURL
	}
	b, err := loadBooking(ctx, u.bookings, bookingID)
	if err != nil {
		return entities.Payment{}, err
	}
	if err := requireOwner(b, actor); err != nil {
		return entities.Payment{}, err
	}
	if err := requireTransition(b, entities.TransitionPaymentProof); err != nil {
		u.log.Warn("upload-proof rejected", zap.String("booking_id", b.ID), zap.String("status", string(b.Status)))
		return entities.Payment{}, err
	}
	if b.PaymentStatus == entities.BookingPaymentPaid {
		return entities.Payment{}, ErrBookingAlreadyPaid
	}
	inv, err := u.loadInvoice(ctx, b.ID)
	if err != nil {
		return entities.Payment{}, err
	}

	now := u.now()
	p := entities.Payment{
		ID:          uuid.NewString(),
		InvoiceID:   inv.ID,
		BookingID:   b.ID,
		PayerID:     actor.ID,
		AmountCents: inv.TotalCents,
		Method:      entities.PaymentMethodBankTransfer,
		ProofURL:    proofURL,
		CreatedAt:   now,
	}
	if err := u.lifecycle.RecordPaymentProof(ctx, actor.ID, p, now); err != nil {
		if errors.Is(err, interfaces.ErrStaleStatus) {
			return entities.Payment{}, ErrBookingStatusChanged
		}
		u.log.Error("upload-proof failed", zap.String("booking_id", b.ID), zap.Error(err))
		return entities.Payment{}, err
	}
	u.log.Info("upload-proof success", zap.String("booking_id", b.ID), zap.String("payment_id", p.ID))

	u.record(ctx, actor, entities.EventPaymentProofUploaded, b.ID, map[string]any{
		"payment_id": p.ID,
		"invoice_id": inv.ID,
		"proof_url":  proofURL,
	})
	u.notify(ctx, entities.Notification{
		Template:  entities.TemplatePaymentProofToTeam,
		ToAdmin:   true,
		BookingID: b.ID,
		Data: map[string]any{
			"booking_id":     b.ID,
			"invoice_number": inv.InvoiceNumber,
			"amount":         FormatAmount(inv.TotalCents, inv.Currency),
			"proof_url":      proofURL,
		},
	})
	return p, nil
}

func (u *PaymentUseCase) StartCheckout(ctx context.Context, actor entities.Actor, bookingID string) (entities.Invoice, error) {
	if u.gateway == nil {
		return entities.Invoice{}, ErrCheckoutNotConfigured
	}
	b, err := loadBooking(ctx, u.bookings, bookingID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if err := requireOwner(b, actor); err != nil {
		return entities.Invoice{}, err
	}
	if b.Status != entities.BookingStatusConfirmed {
		return entities.Invoice{}, ErrInvalidBookingStatus
	}
	inv, err := u.loadInvoice(ctx, b.ID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.Status != entities.InvoiceStatusAwaitingPayment {
		return entities.Invoice{}, ErrInvoiceNotAwaitingPayment
	}

	session, err := u.gateway.CreateCheckoutSession(ctx, interfaces.CheckoutRequest{
		BookingID:     b.ID,
		InvoiceNumber: inv.InvoiceNumber,
		Description:   "Booking " + inv.InvoiceNumber,
		AmountCents:   inv.TotalCents,
		Currency:      inv.Currency,
		PayerEmail:    actor.Email,
	})
	if err != nil {
		u.log.Error("start-checkout gateway failed", zap.String("booking_id", b.ID), zap.Error(err))
		return entities.Invoice{}, err
	}

	updated, err := u.invoices.SetCheckoutSession(ctx, b.ID, session.ID, session.RedirectURL)
	if err != nil {
		if errors.Is(err, interfaces.ErrStaleStatus) {
			return entities.Invoice{}, ErrInvoiceNotAwaitingPayment
		}
		u.log.Error("start-checkout store session failed", zap.String("booking_id", b.ID), zap.Error(err))
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	u.log.Info("start-checkout success", zap.String("booking_id", b.ID), zap.String("session_id", session.ID))

	u.record(ctx, actor, entities.EventCheckoutStarted, b.ID, map[string]any{"checkout_session_id": session.ID})
	return updated, nil
}

func (u *PaymentUseCase) MarkPaymentReceived(ctx context.Context, actor entities.Actor, bookingID string, amountCents int64, method entities.PaymentMethod) (SettlementResult, error) {
	if err := requireAdmin(actor); err != nil {
		return SettlementResult{}, err
	}
	b, err := loadBooking(ctx, u.bookings, bookingID)
	if err != nil {
		return SettlementResult{}, err
	}
	inv, err := u.loadInvoice(ctx, b.ID)
	if err != nil {
		return SettlementResult{}, err
	}
	if amountCents != inv.TotalCents {
		u.log.Warn("mark-payment-received amount mismatch",
			zap.String("booking_id", b.ID),
			zap.Int64("amount_cents", amountCents),
			zap.Int64("invoice_total_cents", inv.TotalCents))
		return SettlementResult{}, ErrAmountMismatch
	}
	if b.Status != entities.BookingStatusConfirmed {
		return SettlementResult{}, ErrInvalidBookingStatus
	}
	if inv.Status != entities.InvoiceStatusAwaitingPayment {
		return SettlementResult{}, ErrInvoiceNotAwaitingPayment
	}

	payments, err := u.payments.ListByInvoiceID(ctx, inv.ID)
	if err != nil {
		return SettlementResult{}, err
	}

	now := u.now()
	payment, found := latestUnreceived(payments)
	if !found {
		if method == "" {
			method = entities.PaymentMethodManual
		}
		payment = entities.Payment{
			ID:          uuid.NewString(),
			InvoiceID:   inv.ID,
			BookingID:   b.ID,
			PayerID:     b.OwnerID,
			AmountCents: amountCents,
			Method:      method,
			CreatedAt:   now,
		}
	}

	start := b.StartsWithin(now, u.startWindow)
	settlement := entities.PaymentSettlement{
		Booking:      b,
		Invoice:      inv,
		Payment:      payment,
		NewPayment:   !found,
		StartBooking: start,
		ReceivedAt:   now,
	}
	if err := u.lifecycle.SettlePayment(ctx, settlement); err != nil {
		if errors.Is(err, interfaces.ErrStaleStatus) {
			u.log.Warn("mark-payment-received lost status race", zap.String("booking_id", b.ID))
			return SettlementResult{}, ErrBookingStatusChanged
		}
		u.log.Error("mark-payment-received failed", zap.String("booking_id", b.ID), zap.Error(err))
		return SettlementResult{}, err
	}

	inv.Status = entities.InvoiceStatusPaidEscrow
	inv.PaidAt = &now
	payment.ReceivedAt = &now
	b.PaymentStatus = entities.BookingPaymentPaid
	b.UpdatedAt = now
	if start {
		b.Status = entities.BookingStatusInProgress
	}
	u.log.Info("mark-payment-received success",
		zap.String("booking_id", b.ID),
		zap.String("payment_id", payment.ID),
		zap.String("status", string(b.Status)))

	u.record(ctx, actor, entities.EventPaymentReceived, b.ID, map[string]any{
		"payment_id":     payment.ID,
		"invoice_number": inv.InvoiceNumber,
		"amount_cents":   amountCents,
		"booking_status": string(b.Status),
	})
	if start {
		u.record(ctx, actor, entities.EventBookingStarted, b.ID, nil)
	}
	if b.SitterID != "" {
		u.notify(ctx, entities.Notification{
			Template:    entities.TemplatePaymentReceived,
			RecipientID: b.SitterID,
			BookingID:   b.ID,
			Data:        bookingData(b),
		})
	}
	return SettlementResult{Booking: b, Invoice: inv, Payment: payment}, nil
}

// StartDueBookings moves paid confirmed bookings whose start entered the window to in_progress.
// Bookings changed concurrently are skipped.
func (u *PaymentUseCase) StartDueBookings(ctx context.Context, actor entities.Actor) ([]entities.Booking, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	confirmed, err := u.bookings.ListByStatus(ctx, entities.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}

	now := u.now()
	started := make([]entities.Booking, 0)
	for _, b := range confirmed {
		if b.PaymentStatus != entities.BookingPaymentPaid || !b.StartsWithin(now, u.startWindow) {
			continue
		}
		updated, err := u.bookings.Transition(ctx, b.ID, entities.TransitionPaymentStart,
			interfaces.BookingGuard{PaymentStatusIn: []entities.BookingPaymentStatus{entities.BookingPaymentPaid}},
			entities.BookingPatch{})
		if err != nil {
			if errors.Is(err, interfaces.ErrStaleStatus) {
				u.log.Info("start-due skipped changed booking", zap.String("booking_id", b.ID))
				continue
			}
			return started, err
		}
		u.record(ctx, actor, entities.EventBookingStarted, updated.ID, map[string]any{"trigger": "start_due_sweep"})
		started = append(started, updated)
	}
	u.log.Info("start-due finished", zap.Int("candidates", len(confirmed)), zap.Int("started", len(started)))
	return started, nil
}

func (u *PaymentUseCase) GetInvoice(ctx context.Context, actor entities.Actor, bookingID string) (entities.Invoice, error) {
	b, err := loadBooking(ctx, u.bookings, bookingID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if err := requirePartyOrAdmin(b, actor); err != nil {
		return entities.Invoice{}, err
	}
	return u.loadInvoice(ctx, b.ID)
}

func (u *PaymentUseCase) ListPayments(ctx context.Context, actor entities.Actor, bookingID string) ([]entities.Payment, error) {
	inv, err := u.GetInvoice(ctx, actor, bookingID)
	if err != nil {
		return nil, err
	}
	payments, err := u.payments.ListByInvoiceID(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	sort.Slice(payments, func(i, j int) bool { return payments[i].CreatedAt.Before(payments[j].CreatedAt) })
	return payments, nil
}

func (u *PaymentUseCase) loadInvoice(ctx context.Context, bookingID string) (entities.Invoice, error) {
	inv, err := u.invoices.GetByBookingID(ctx, bookingID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *PaymentUseCase) record(ctx context.Context, actor entities.Actor, event, bookingID string, metadata map[string]any) {
	if u.audit == nil {
		return
	}
	if err := u.audit.Record(ctx, actor, event, bookingID, metadata); err != nil {
		u.log.Warn("ledger append failed", zap.String("event", event), zap.String("booking_id", bookingID), zap.Error(err))
	}
}

func (u *PaymentUseCase) notify(ctx context.Context, n entities.Notification) {
	if u.notifier == nil {
		return
	}
	u.notifier.Dispatch(ctx, n)
}

// latestUnreceived picks the most recent payment that has not been stamped as received yet.
func latestUnreceived(payments []entities.Payment) (entities.Payment, bool) {
	var (
		latest entities.Payment
		found  bool
	)
	for _, p := range payments {
		if p.ReceivedAt != nil {
			continue
		}
		if !found || p.CreatedAt.After(latest.CreatedAt) {
			latest = p
			found = true
		}
	}
	return latest, found
}

func isHTTPURL(raw string) bool {
	if raw == "" {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "https" || parsed.Scheme == "http") && parsed.Host != ""
}
