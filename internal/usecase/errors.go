package usecase

import "errors"

var (
	ErrInvalidBookingID     = errors.New("invalid booking id")
	ErrInvalidBookingInput  = errors.New("service_id, start_at and end_at are required")
	ErrInvalidBookingDates  = errors.New("end_at must be after start_at")
	ErrInvalidPrice         = errors.New("price_cents must be positive")
	ErrInvalidStatusFilter  = errors.New("invalid status filter")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrNotBookingOwner      = errors.New("caller is not the booking owner")
	ErrNotAssignedSitter    = errors.New("caller is not the assigned sitter")
	ErrNotBookingParty      = errors.New("caller is not a party to the booking")
	ErrAdminOnly            = errors.New("admin role required")
	ErrInvalidBookingStatus = errors.New("booking status does not allow this action")
	ErrBookingStatusChanged = errors.New("booking status changed, reload and retry")
	ErrBookingAlreadyPaid   = errors.New("booking already paid")
	ErrBookingHasNoSitter   = errors.New("booking has no assigned sitter")

	ErrInvoiceNotFound           = errors.New("invoice not found")
	ErrInvoiceAlreadyExists      = errors.New("invoice already exists for booking")
	ErrInvoiceNotAwaitingPayment = errors.New("invoice is not awaiting payment")
	ErrAmountMismatch            = errors.New("amount does not match invoice total")
	ErrInvalidProofURL           = errors.New("invalid proof_url")
	ErrCheckoutNotConfigured     = errors.New("checkout gateway not configured")

	ErrInvalidPayoutID    = errors.New("invalid payout id")
	ErrPayoutNotFound     = errors.New("payout not found")
	ErrPayoutNotScheduled = errors.New("payout is not scheduled")

	ErrInvalidFeePercent = errors.New("fee percent must be in [0, 100)")

	ErrInvalidEmail = errors.New("to, subject and html are required")
)
