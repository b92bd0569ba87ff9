package handlers

import (
	"net/http"

	"petsit_booking/internal/adapter/http/dto/request"
	"petsit_booking/internal/usecase"
	"petsit_booking/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
	log     *zap.Logger
}

func NewSettingsHandler(uc usecase.ISettingsUseCase, log *zap.Logger) *SettingsHandler {
	return &SettingsHandler{usecase: uc, log: namedLogger(log, "settings.handler")}
}

// GetPlatformFee godoc
// @Summary      Current platform fee percent
// @Tags         admin
// @Produce      json
// @Success      200  {object}  pkg.Envelope{data=usecase.PlatformFee}
// @Failure      403  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/settings/platform-fee [get]
func (h *SettingsHandler) GetPlatformFee(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	fee, err := h.usecase.GetPlatformFee(c.Request.Context(), a)
	if err != nil {
		writeError(c, h.log, "get-platform-fee", err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(fee))
}

// SetPlatformFee godoc
// @Summary      Update the platform fee percent
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      request.PlatformFeeRequest  true  "Fee percent in [0, 100)"
// @Success      200   {object}  pkg.Envelope{data=usecase.PlatformFee}
// @Failure      400   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/settings/platform-fee [put]
func (h *SettingsHandler) SetPlatformFee(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req request.PlatformFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FeePercent == nil {
		writeInvalidRequest(c, "fee_percent is required")
		return
	}

	fee, err := h.usecase.SetPlatformFee(c.Request.Context(), a, *req.FeePercent)
	if err != nil {
		writeError(c, h.log, "set-platform-fee", err)
		return
	}
	c.JSON(http.StatusOK, pkg.OK(fee))
}
