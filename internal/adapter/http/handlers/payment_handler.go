package handlers

import (
	"net/http"

	"petsit_booking/internal/adapter/http/dto/request"
	"petsit_booking/internal/adapter/http/dto/response"
	"petsit_booking/internal/usecase"
	"petsit_booking/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler covers invoices and the owner/admin side of payment settlement.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
	log     *zap.Logger
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{usecase: uc, log: namedLogger(log, "payment.handler")}
}

// UploadProof godoc
// @Summary      Owner uploads a proof of bank transfer
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true  "Booking ID"
// @Param        body  body      request.UploadProofRequest  true  "Proof"
// @Success      201   {object}  pkg.Envelope{data=response.PaymentResponse}
// @Failure      400   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /bookings/{id}/payment-proof [post]
func (h *PaymentHandler) UploadProof(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req request.UploadProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidRequest(c, usecase.ErrInvalidProofURL.Error())
		return
	}

	p, err := h.usecase.UploadProof(c.Request.Context(), a, c.Param("id"), req.ProofURL)
	if err != nil {
		writeError(c, h.log, "upload-proof", err)
		return
	}
	c.JSON(http.StatusCreated, pkg.OK(response.FromPayment(p)))
}

// StartCheckout godoc
// @Summary      Owner starts an online checkout for the booking invoice
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  pkg.Envelope{data=response.CheckoutResponse}
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /bookings/{id}/checkout [post]
func (h *PaymentHandler) StartCheckout(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	inv, err := h.usecase.StartCheckout(c.Request.Context(), a, c.Param("id"))
	if err != nil {
		writeError(c, h.log, "start-checkout", err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(response.CheckoutResponse{
		InvoiceNumber: inv.InvoiceNumber,
		CheckoutURL:   inv.CheckoutURL,
	}))
}

// GetInvoice godoc
// @Summary      Get the booking invoice
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  pkg.Envelope{data=response.InvoiceResponse}
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /bookings/{id}/invoice [get]
func (h *PaymentHandler) GetInvoice(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	inv, err := h.usecase.GetInvoice(c.Request.Context(), a, c.Param("id"))
	if err != nil {
		writeError(c, h.log, "get-invoice", err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(response.FromInvoice(inv)))
}

// ListPayments godoc
// @Summary      List payments recorded for a booking
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  pkg.Envelope{data=[]response.PaymentResponse}
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /bookings/{id}/payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	items, err := h.usecase.ListPayments(c.Request.Context(), a, c.Param("id"))
	if err != nil {
		writeError(c, h.log, "list-payments", err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(response.FromPayments(items)))
}

// MarkPaymentReceived godoc
// @Summary      Admin records that the invoice was paid
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string                          true  "Booking ID"
// @Param        body  body      request.PaymentReceivedRequest  true  "Amount received"
// @Success      200   {object}  pkg.Envelope{data=response.SettlementResponse}
// @Failure      400   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/bookings/{id}/payment-received [post]
func (h *PaymentHandler) MarkPaymentReceived(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req request.PaymentReceivedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidRequest(c, "amount_cents is required")
		return
	}
	method, valid := req.ResolveMethod()
	if !valid {
		writeInvalidRequest(c, "method must be one of bank_transfer, checkout, manual")
		return
	}

	res, err := h.usecase.MarkPaymentReceived(c.Request.Context(), a, c.Param("id"), req.AmountCents, method)
	if err != nil {
		writeError(c, h.log, "payment-received", err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(response.FromSettlement(res)))
}

// StartDueBookings godoc
// @Summary      Start paid bookings whose start time has passed
// @Tags         admin
// @Produce      json
// @Success      200  {object}  pkg.Envelope{data=[]response.BookingResponse}
// @Failure      403  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/bookings/start-due [post]
func (h *PaymentHandler) StartDueBookings(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	started, err := h.usecase.StartDueBookings(c.Request.Context(), a)
	if err != nil {
		writeError(c, h.log, "start-due", err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(response.FromBookings(started)))
}
