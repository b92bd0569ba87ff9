package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"petsit_booking/internal/domain/entities"
	"petsit_booking/internal/infrastructure/metrics"
	"petsit_booking/internal/usecase/interfaces"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
)

type ILedgerUseCase interface {
	ListByBooking(ctx context.Context, actor entities.Actor, bookingID string) ([]entities.LedgerEvent, error)
}

type LedgerUseCaseParams struct {
	Repo      interfaces.ILedgerRepository
	Publisher interfaces.IEventPublisher
	Metrics   *metrics.Metrics
	GenID     *snowflake.Node
	Log       *zap.Logger
}

// LedgerUseCase appends lifecycle events to the ledger and fans them out to the broker.
type LedgerUseCase struct {
	repo      interfaces.ILedgerRepository
	publisher interfaces.IEventPublisher
	metrics   *metrics.Metrics
	genID     *snowflake.Node
	log       *zap.Logger
	now       func() time.Time
}

var (
	_ ILedgerUseCase            = (*LedgerUseCase)(nil)
	_ interfaces.IAuditRecorder = (*LedgerUseCase)(nil)
)

func NewLedgerUseCase(p LedgerUseCaseParams) *LedgerUseCase {
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &LedgerUseCase{
		repo:      p.Repo,
		publisher: p.Publisher,
		metrics:   p.Metrics,
		genID:     p.GenID,
		log:       log.Named("ledger.usecase"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *LedgerUseCase) Record(ctx context.Context, actor entities.Actor, eventName, bookingID string, metadata map[string]any) error {
	if strings.TrimSpace(eventName) == "" {
		return fmt.Errorf("ledger event name is required")
	}
	if actor.ID == "" {
		actor = entities.SystemActor
	}
	e := entities.LedgerEvent{
		ID:        u.genID.Generate().String(),
		EventName: eventName,
		ActorID:   actor.ID,
		ActorRole: actor.Role,
		BookingID: bookingID,
		Metadata:  metadata,
		CreatedAt: u.now(),
	}
	if err := u.repo.Append(ctx, e); err != nil {
		u.log.Warn("ledger append failed", zap.String("event", eventName), zap.String("booking_id", bookingID), zap.Error(err))
		return fmt.Errorf("append ledger event %s: %w", eventName, err)
	}
	u.metrics.LifecycleEvent(eventName)

	if u.publisher != nil {
		if err := u.publisher.PublishJSON(ctx, eventName, e); err != nil {
			u.log.Warn("ledger publish failed", zap.String("event", eventName), zap.String("ledger_id", e.ID), zap.Error(err))
		}
	}
	return nil
}

func (u *LedgerUseCase) ListByBooking(ctx context.Context, actor entities.Actor, bookingID string) ([]entities.LedgerEvent, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}
	events, err := u.repo.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].CreatedAt.Before(events[j].CreatedAt) })
	return events, nil
}
