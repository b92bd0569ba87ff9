package handlers

import (
	"net/http"

	"petsit_booking/internal/adapter/http/dto/request"
	"petsit_booking/internal/adapter/http/dto/response"
	"petsit_booking/internal/domain/entities"
	"petsit_booking/internal/usecase"
	"petsit_booking/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PayoutHandler struct {
	usecase usecase.IPayoutUseCase
	log     *zap.Logger
}

func NewPayoutHandler(uc usecase.IPayoutUseCase, log *zap.Logger) *PayoutHandler {
	return &PayoutHandler{usecase: uc, log: namedLogger(log, "payout.handler")}
}

// CompleteBooking godoc
// @Summary      Admin completes a booking and schedules the sitter payout
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  pkg.Envelope{data=response.CompletionResponse}
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/bookings/{id}/complete [post]
func (h *PayoutHandler) CompleteBooking(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	res, err := h.usecase.CompleteBooking(c.Request.Context(), a, c.Param("id"))
	if err != nil {
		writeError(c, h.log, "complete-booking", err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(response.FromCompletion(res)))
}

// MarkPayoutPaid godoc
// @Summary      Admin marks a scheduled payout as paid
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true   "Payout ID"
// @Param        body  body      request.PayoutPaidRequest  false  "Transfer reference"
// @Success      200   {object}  pkg.Envelope{data=response.PayoutResponse}
// @Failure      400   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/payouts/{id}/paid [post]
func (h *PayoutHandler) MarkPayoutPaid(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req request.PayoutPaidRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			writeInvalidRequest(c, "invalid request body")
			return
		}
	}

	p, err := h.usecase.MarkPaid(c.Request.Context(), a, c.Param("id"), req.TransactionRef)
	if err != nil {
		writeError(c, h.log, "payout-paid", err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(response.FromPayout(p)))
}

// ListPayouts godoc
// @Summary      List payouts; sitters see their own
// @Tags         payouts
// @Produce      json
// @Param        status  query     string  false  "scheduled or paid"
// @Success      200     {object}  pkg.Envelope{data=[]response.PayoutResponse}
// @Failure      400     {object}  pkg.HTTPError
// @Failure      403     {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /payouts [get]
func (h *PayoutHandler) ListPayouts(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	status := entities.PayoutStatus(c.Query("status"))
	switch status {
	case "", entities.PayoutStatusScheduled, entities.PayoutStatusPaid:
	default:
		writeInvalidRequest(c, "status must be scheduled or paid")
		return
	}

	items, err := h.usecase.List(c.Request.Context(), a, status)
	if err != nil {
		writeError(c, h.log, "list-payouts", err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(response.FromPayouts(items)))
}
