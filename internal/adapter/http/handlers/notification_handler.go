package handlers

import (
	"net/http"

	"petsit_booking/internal/adapter/http/dto/request"
	"petsit_booking/internal/usecase"
	"petsit_booking/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler exposes the email endpoint used by trusted internal callers.
type NotificationHandler struct {
	usecase usecase.INotificationUseCase
	log     *zap.Logger
}

func NewNotificationHandler(uc usecase.INotificationUseCase, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{usecase: uc, log: namedLogger(log, "notification.handler")}
}

// SendEmail godoc
// @Summary      Send a transactional email
// @Description  When no provider is configured the email is logged and reported as a fallback delivery.
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        X-Notify-Secret  header    string                    true  "Shared secret"
// @Param        body             body      request.SendEmailRequest  true  "Email"
// @Success      200              {object}  pkg.Envelope{data=usecase.Delivery}
// @Failure      400              {object}  pkg.HTTPError
// @Failure      401              {object}  pkg.HTTPError
// @Failure      500              {object}  pkg.HTTPError
// @Router       /notifications/email [post]
func (h *NotificationHandler) SendEmail(c *gin.Context) {
	var req request.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidRequest(c, "to, subject and html are required")
		return
	}

	delivery, err := h.usecase.SendEmail(c.Request.Context(), req.ToEmail())
	if err != nil {
		writeError(c, h.log, "send-email", err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(delivery))
}
