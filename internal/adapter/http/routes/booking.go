package routes

import (
	"petsit_booking/internal/adapter/http/middleware"
	"petsit_booking/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathBookings = "/bookings"
	PathPayouts  = "/payouts"
)

func addBookingRoutes(rg *gin.RouterGroup, d Dependencies, idempotent gin.HandlerFunc) {
	owner := middleware.RequireRole(entities.UserTypeOwner)
	sitter := middleware.RequireRole(entities.UserTypeSitter)

	bookings := rg.Group(PathBookings)
	{
		bookings.GET("", d.Bookings.ListBookings)
		bookings.POST("", owner, idempotent, d.Bookings.CreateBooking)
		bookings.GET("/:id", d.Bookings.GetBooking)

		bookings.POST("/:id/accept", sitter, idempotent, d.Bookings.AcceptBooking)
		bookings.POST("/:id/decline", sitter, idempotent, d.Bookings.DeclineBooking)
		bookings.POST("/:id/cancel", owner, idempotent, d.Bookings.CancelBooking)
		bookings.POST("/:id/confirm", owner, idempotent, d.Bookings.ConfirmBooking)

		bookings.POST("/:id/payment-proof", owner, idempotent, d.Payments.UploadProof)
		bookings.POST("/:id/checkout", owner, idempotent, d.Payments.StartCheckout)
		bookings.GET("/:id/invoice", d.Payments.GetInvoice)
		bookings.GET("/:id/payments", d.Payments.ListPayments)
	}

	rg.GET(PathPayouts, middleware.RequireRole(entities.UserTypeSitter, entities.UserTypeAdmin), d.Payouts.ListPayouts)
}
