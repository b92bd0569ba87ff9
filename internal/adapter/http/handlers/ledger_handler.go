package handlers

import (
	"net/http"

	"petsit_booking/internal/adapter/http/dto/response"
	"petsit_booking/internal/usecase"
	"petsit_booking/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LedgerHandler struct {
	usecase usecase.ILedgerUseCase
	log     *zap.Logger
}

func NewLedgerHandler(uc usecase.ILedgerUseCase, log *zap.Logger) *LedgerHandler {
	return &LedgerHandler{usecase: uc, log: namedLogger(log, "ledger.handler")}
}

// ListBookingEvents godoc
// @Summary      Lifecycle events recorded for a booking
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  pkg.Envelope{data=[]response.LedgerEventResponse}
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/bookings/{id}/events [get]
func (h *LedgerHandler) ListBookingEvents(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	events, err := h.usecase.ListByBooking(c.Request.Context(), a, c.Param("id"))
	if err != nil {
		writeError(c, h.log, "list-events", err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(response.FromLedgerEvents(events)))
}
