package handlers

import (
	"errors"
	"net/http"

	"petsit_booking/internal/adapter/http/middleware"
	"petsit_booking/internal/domain/entities"
	"petsit_booking/internal/usecase"
	"petsit_booking/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var invalidRequestErrors = []error{
	usecase.ErrInvalidBookingID,
	usecase.ErrInvalidBookingInput,
	usecase.ErrInvalidBookingDates,
	usecase.ErrInvalidPrice,
	usecase.ErrInvalidStatusFilter,
	usecase.ErrInvalidProofURL,
	usecase.ErrInvalidPayoutID,
	usecase.ErrInvalidFeePercent,
	usecase.ErrInvalidEmail,
}

var forbiddenErrors = []error{
	usecase.ErrNotBookingOwner,
	usecase.ErrNotAssignedSitter,
	usecase.ErrNotBookingParty,
	usecase.ErrAdminOnly,
}

// mapError translates usecase errors into the HTTP error taxonomy. Unknown errors become a
// generic 500; the cause stays on the AppError for logging and is never serialized.
func mapError(err error) *pkg.AppError {
	for _, target := range invalidRequestErrors {
		if errors.Is(err, target) {
			return pkg.NewDomainErrorSimple("INVALID_REQUEST", target.Error(), http.StatusBadRequest)
		}
	}
	for _, target := range forbiddenErrors {
		if errors.Is(err, target) {
			return pkg.NewDomainErrorSimple("FORBIDDEN", target.Error(), http.StatusForbidden)
		}
	}

	switch {
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPayoutNotFound):
		return pkg.NewDomainErrorSimple("PAYOUT_NOT_FOUND", "Payout not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidBookingStatus):
		return pkg.NewDomainErrorSimple("INVALID_BOOKING_STATUS", "Booking status does not allow this action", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingStatusChanged):
		return pkg.NewDomainErrorSimple("BOOKING_STATUS_CHANGED", "Booking status changed, reload and retry", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingAlreadyPaid):
		return pkg.NewDomainErrorSimple("BOOKING_ALREADY_PAID", "Booking already paid", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingHasNoSitter):
		return pkg.NewDomainErrorSimple("BOOKING_HAS_NO_SITTER", "Booking has no assigned sitter", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceAlreadyExists):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_EXISTS", "Invoice already exists for booking", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotAwaitingPayment):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_AWAITING_PAYMENT", "Invoice is not awaiting payment", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAmountMismatch):
		return pkg.NewDomainErrorSimple("AMOUNT_MISMATCH", "Amount does not match invoice total", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPayoutNotScheduled):
		return pkg.NewDomainErrorSimple("PAYOUT_NOT_SCHEDULED", "Payout is not scheduled", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCheckoutNotConfigured):
		return pkg.NewDomainError("CHECKOUT_NOT_CONFIGURED", "Online checkout is not available", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, log *zap.Logger, op string, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error(op+" failed", zap.String("code", appErr.Code), zap.Error(err))
	} else {
		log.Warn(op+" rejected", zap.String("code", appErr.Code), zap.String("reason", err.Error()))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeInvalidRequest(c *gin.Context, message string) {
	appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", message, http.StatusBadRequest)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// actor returns the authenticated caller; routes are mounted behind RequireAuth so a missing
// actor only happens on misconfigured routes.
func actor(c *gin.Context) (entities.Actor, bool) {
	a, ok := middleware.ActorFrom(c)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authorization required", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
	return a, ok
}

func namedLogger(log *zap.Logger, name string) *zap.Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return log.Named(name)
}
