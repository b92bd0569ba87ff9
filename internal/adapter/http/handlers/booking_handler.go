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

// BookingHandler handles the request/accept/confirm part of the booking lifecycle.
type BookingHandler struct {
	usecase usecase.IBookingUseCase
	log     *zap.Logger
}

func NewBookingHandler(uc usecase.IBookingUseCase, log *zap.Logger) *BookingHandler {
	return &BookingHandler{usecase: uc, log: namedLogger(log, "booking.handler")}
}

// CreateBooking godoc
// @Summary      Request a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateBookingRequest  true  "Booking request"
// @Success      201   {object}  pkg.Envelope{data=response.BookingResponse}
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req request.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidRequest(c, "service_id, start_at and end_at are required")
		return
	}
	in, err := req.ToInput()
	if err != nil {
		writeInvalidRequest(c, err.Error())
		return
	}

	b, err := h.usecase.Create(c.Request.Context(), a, in)
	if err != nil {
		writeError(c, h.log, "create-booking", err)
		return
	}
	c.JSON(http.StatusCreated, pkg.OK(response.FromBooking(b)))
}

// GetBooking godoc
// @Summary      Get a booking
// @Tags         bookings
// @Produce      json
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  pkg.Envelope{data=response.BookingResponse}
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	b, err := h.usecase.Get(c.Request.Context(), a, c.Param("id"))
	if err != nil {
		writeError(c, h.log, "get-booking", err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(response.FromBooking(b)))
}

// ListBookings godoc
// @Summary      List bookings visible to the caller
// @Tags         bookings
// @Produce      json
// @Param        status  query     string  false  "Status filter"
// @Success      200     {object}  pkg.Envelope{data=[]response.BookingResponse}
// @Failure      400     {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	items, err := h.usecase.List(c.Request.Context(), a, entities.BookingStatus(c.Query("status")))
	if err != nil {
		writeError(c, h.log, "list-bookings", err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(response.FromBookings(items)))
}

// AcceptBooking godoc
// @Summary      Sitter accepts a pending booking and sets the price
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true  "Booking ID"
// @Param        body  body      request.AcceptBookingRequest  true  "Price"
// @Success      200   {object}  pkg.Envelope{data=response.BookingResponse}
// @Failure      400   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /bookings/{id}/accept [post]
func (h *BookingHandler) AcceptBooking(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req request.AcceptBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidRequest(c, usecase.ErrInvalidPrice.Error())
		return
	}

	b, err := h.usecase.SitterAccept(c.Request.Context(), a, c.Param("id"), req.PriceCents)
	if err != nil {
		writeError(c, h.log, "sitter-accept", err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(response.FromBooking(b)))
}

// DeclineBooking godoc
// @Summary      Sitter declines a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true   "Booking ID"
// @Param        body  body      request.ReasonRequest  false  "Reason"
// @Success      200   {object}  pkg.Envelope{data=response.BookingResponse}
// @Failure      400   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /bookings/{id}/decline [post]
func (h *BookingHandler) DeclineBooking(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	reason, ok := bindReason(c)
	if !ok {
		return
	}
	b, err := h.usecase.SitterDecline(c.Request.Context(), a, c.Param("id"), reason)
	if err != nil {
		writeError(c, h.log, "sitter-decline", err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(response.FromBooking(b)))
}

// CancelBooking godoc
// @Summary      Owner cancels a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true   "Booking ID"
// @Param        body  body      request.ReasonRequest  false  "Reason"
// @Success      200   {object}  pkg.Envelope{data=response.BookingResponse}
// @Failure      400   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	reason, ok := bindReason(c)
	if !ok {
		return
	}
	b, err := h.usecase.OwnerCancel(c.Request.Context(), a, c.Param("id"), reason)
	if err != nil {
		writeError(c, h.log, "owner-cancel", err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(response.FromBooking(b)))
}

// ConfirmBooking godoc
// @Summary      Owner confirms an accepted booking; the invoice is generated
// @Tags         bookings
// @Produce      json
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  pkg.Envelope{data=response.ConfirmResponse}
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /bookings/{id}/confirm [post]
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	res, err := h.usecase.OwnerConfirm(c.Request.Context(), a, c.Param("id"))
	if err != nil {
		writeError(c, h.log, "owner-confirm", err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(response.FromConfirm(res)))
}

// bindReason reads the optional reason body; an empty body is allowed.
func bindReason(c *gin.Context) (string, bool) {
	var req request.ReasonRequest
	if c.Request.ContentLength == 0 {
		return "", true
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidRequest(c, "invalid request body")
		return "", false
	}
	return req.Reason, true
}
