package routes

import (
	"petsit_booking/internal/adapter/http/middleware"
	"petsit_booking/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const PathAdmin = "/admin"

func addAdminRoutes(rg *gin.RouterGroup, d Dependencies, idempotent gin.HandlerFunc) {
	admin := rg.Group(PathAdmin, middleware.RequireRole(entities.UserTypeAdmin))
	{
		admin.POST("/bookings/start-due", d.Payments.StartDueBookings)
		admin.POST("/bookings/:id/payment-received", idempotent, d.Payments.MarkPaymentReceived)
		admin.POST("/bookings/:id/complete", idempotent, d.Payouts.CompleteBooking)
		admin.GET("/bookings/:id/events", d.Ledger.ListBookingEvents)

		admin.POST("/payouts/:id/paid", idempotent, d.Payouts.MarkPayoutPaid)

		admin.GET("/settings/platform-fee", d.Settings.GetPlatformFee)
		admin.PUT("/settings/platform-fee", d.Settings.SetPlatformFee)
	}
}
