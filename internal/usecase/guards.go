package usecase

import (
	"context"
	"strings"

	"petsit_booking/internal/domain/entities"
	"petsit_booking/internal/usecase/interfaces"
)

// loadBooking reads a booking and maps a missing row to ErrBookingNotFound.
func loadBooking(ctx context.Context, repo interfaces.IBookingRepository, bookingID string) (entities.Booking, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}
	b, err := repo.GetByID(ctx, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

func requireOwner(b entities.Booking, actor entities.Actor) error {
	if actor.ID == "" || b.OwnerID != actor.ID {
		return ErrNotBookingOwner
	}
	return nil
}

func requireSitter(b entities.Booking, actor entities.Actor) error {
	if actor.ID == "" || b.SitterID != actor.ID {
		return ErrNotAssignedSitter
	}
	return nil
}

func requirePartyOrAdmin(b entities.Booking, actor entities.Actor) error {
	if actor.IsAdmin() || b.IsParty(actor.ID) {
		return nil
	}
	return ErrNotBookingParty
}

func requireAdmin(actor entities.Actor) error {
	if !actor.IsAdmin() {
		return ErrAdminOnly
	}
	return nil
}

func requireTransition(b entities.Booking, t entities.Transition) error {
	if !t.Allows(b.Status) {
		return ErrInvalidBookingStatus
	}
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
