package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"petsit_booking/internal/domain/entities"
	"petsit_booking/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IPayoutUseCase covers the payout sub-flow:
//   - admin-complete-booking => CompleteBooking() (schedules the payout)
//   - payout settlement      => MarkPaid()

type IPayoutUseCase interface {
	CompleteBooking(ctx context.Context, actor entities.Actor, bookingID string) (CompletionResult, error)
	MarkPaid(ctx context.Context, actor entities.Actor, payoutID, transactionRef string) (entities.Payout, error)
	List(ctx context.Context, actor entities.Actor, status entities.PayoutStatus) ([]entities.Payout, error)
}

type CompletionResult struct {
	Booking entities.Booking `json:"booking"`
	Payout  entities.Payout  `json:"payout"`
}

type PayoutUseCaseParams struct {
	Bookings  interfaces.IBookingRepository
	Payouts   interfaces.IPayoutRepository
	Lifecycle interfaces.ILifecycleStore
	Fees      interfaces.IPlatformFeeResolver
	Audit     interfaces.IAuditRecorder
	Notifier  interfaces.INotificationDispatcher
	Log       *zap.Logger
}

type PayoutUseCase struct {
	bookings  interfaces.IBookingRepository
	payouts   interfaces.IPayoutRepository
	lifecycle interfaces.ILifecycleStore
	fees      interfaces.IPlatformFeeResolver
	audit     interfaces.IAuditRecorder
	notifier  interfaces.INotificationDispatcher
	log       *zap.Logger
	now       func() time.Time
}

var _ IPayoutUseCase = (*PayoutUseCase)(nil)

func NewPayoutUseCase(p PayoutUseCaseParams) *PayoutUseCase {
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &PayoutUseCase{
		bookings:  p.Bookings,
		payouts:   p.Payouts,
		lifecycle: p.Lifecycle,
		fees:      p.Fees,
		audit:     p.Audit,
		notifier:  p.Notifier,
		log:       log.Named("payout.usecase"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CompleteBooking marks the booking completed whatever its current status and schedules the
// sitter payout. Completing an already completed booking returns the payout scheduled the first time.
func (u *PayoutUseCase) CompleteBooking(ctx context.Context, actor entities.Actor, bookingID string) (CompletionResult, error) {
	if err := requireAdmin(actor); err != nil {
		return CompletionResult{}, err
	}
	b, err := loadBooking(ctx, u.bookings, bookingID)
	if err != nil {
		return CompletionResult{}, err
	}
	if b.SitterID == "" {
		return CompletionResult{}, ErrBookingHasNoSitter
	}

	fee := entities.DefaultPlatformFeePercent
	if u.fees != nil {
		fee = u.fees.PlatformFeePercent(ctx)
	}
	feeCents, amountCents := entities.SplitPlatformFee(b.PriceCents, fee)

	now := u.now()
	payout := entities.Payout{
		ID:          uuid.NewString(),
		BookingID:   b.ID,
		SitterID:    b.SitterID,
		GrossCents:  b.PriceCents,
		FeePercent:  fee,
		FeeCents:    feeCents,
		AmountCents: amountCents,
		Currency:    b.Currency,
		Status:      entities.PayoutStatusScheduled,
		ScheduledAt: now,
	}

	if err := u.lifecycle.CompleteWithPayout(ctx, b.ID, payout, now); err != nil {
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			return u.existingCompletion(ctx, b.ID)
		}
		u.log.Error("complete-booking failed", zap.String("booking_id", b.ID), zap.Error(err))
		return CompletionResult{}, err
	}

	previous := b.Status
	b.Status = entities.BookingStatusCompleted
	b.UpdatedAt = now
	u.log.Info("complete-booking success",
		zap.String("booking_id", b.ID),
		zap.String("previous_status", string(previous)),
		zap.Int64("payout_cents", amountCents),
		zap.Float64("fee_percent", fee))

	u.record(ctx, actor, entities.EventBookingCompleted, b.ID, map[string]any{"previous_status": string(previous)})
	u.record(ctx, actor, entities.EventPayoutScheduled, b.ID, map[string]any{
		"payout_id":    payout.ID,
		"gross_cents":  payout.GrossCents,
		"fee_percent":  fee,
		"fee_cents":    feeCents,
		"amount_cents": amountCents,
	})
	if u.notifier != nil {
		data := bookingData(b)
		data["payout_amount"] = FormatAmount(amountCents, payout.Currency)
		u.notifier.Dispatch(ctx, entities.Notification{
			Template:    entities.TemplateBookingCompleted,
			RecipientID: b.SitterID,
			BookingID:   b.ID,
			Data:        data,
		})
	}
	return CompletionResult{Booking: b, Payout: payout}, nil
}

func (u *PayoutUseCase) existingCompletion(ctx context.Context, bookingID string) (CompletionResult, error) {
	existing, err := u.payouts.GetByBookingID(ctx, bookingID)
	if err != nil {
		return CompletionResult{}, err
	}
	if existing.ID == "" {
		return CompletionResult{}, ErrPayoutNotFound
	}
	b, err := loadBooking(ctx, u.bookings, bookingID)
	if err != nil {
		return CompletionResult{}, err
	}
	u.log.Info("complete-booking already completed", zap.String("booking_id", bookingID), zap.String("payout_id", existing.ID))
	return CompletionResult{Booking: b, Payout: existing}, nil
}

func (u *PayoutUseCase) MarkPaid(ctx context.Context, actor entities.Actor, payoutID, transactionRef string) (entities.Payout, error) {
	if err := requireAdmin(actor); err != nil {
		return entities.Payout{}, err
	}
	payoutID = strings.TrimSpace(payoutID)
	if payoutID == "" {
		return entities.Payout{}, ErrInvalidPayoutID
	}
	p, err := u.payouts.GetByID(ctx, payoutID)
	if err != nil {
		return entities.Payout{}, err
	}
	if p.ID == "" {
		return entities.Payout{}, ErrPayoutNotFound
	}
	if p.Status != entities.PayoutStatusScheduled {
		return entities.Payout{}, ErrPayoutNotScheduled
	}

	transactionRef = strings.TrimSpace(transactionRef)
	updated, err := u.payouts.MarkPaid(ctx, p.ID, transactionRef, u.now())
	if err != nil {
		if errors.Is(err, interfaces.ErrStaleStatus) {
			return entities.Payout{}, ErrPayoutNotScheduled
		}
		u.log.Error("mark-payout-paid failed", zap.String("payout_id", p.ID), zap.Error(err))
		return entities.Payout{}, err
	}
	u.log.Info("mark-payout-paid success", zap.String("payout_id", p.ID), zap.String("booking_id", p.BookingID))

	u.record(ctx, actor, entities.EventPayoutPaid, p.BookingID, map[string]any{
		"payout_id":       p.ID,
		"amount_cents":    p.AmountCents,
		"transaction_ref": transactionRef,
	})
	return updated, nil
}

// List returns the sitter's own payouts, or for admins every payout in the given status.
func (u *PayoutUseCase) List(ctx context.Context, actor entities.Actor, status entities.PayoutStatus) ([]entities.Payout, error) {
	if status != "" && status != entities.PayoutStatusScheduled && status != entities.PayoutStatusPaid {
		return nil, ErrInvalidStatusFilter
	}
	switch actor.Role {
	case entities.UserTypeAdmin:
		if status == "" {
			status = entities.PayoutStatusScheduled
		}
		return u.payouts.ListByStatus(ctx, status)
	case entities.UserTypeSitter:
		items, err := u.payouts.ListBySitter(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		if status == "" {
			return items, nil
		}
		filtered := make([]entities.Payout, 0, len(items))
		for _, p := range items {
			if p.Status == status {
				filtered = append(filtered, p)
			}
		}
		return filtered, nil
	}
	return nil, ErrAdminOnly
}

func (u *PayoutUseCase) record(ctx context.Context, actor entities.Actor, event, bookingID string, metadata map[string]any) {
	if u.audit == nil {
		return
	}
	if err := u.audit.Record(ctx, actor, event, bookingID, metadata); err != nil {
		u.log.Warn("ledger append failed", zap.String("event", event), zap.String("booking_id", bookingID), zap.Error(err))
	}
}
