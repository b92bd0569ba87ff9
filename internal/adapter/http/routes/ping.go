package routes

import (
	"net/http"

	"petsit_booking/internal/adapter/http/middleware"
	"petsit_booking/pkg"

	"github.com/gin-gonic/gin"
)

// Ping godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  pkg.Envelope
// @Router       /ping [get]
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, pkg.OK(gin.H{"message": "pong"}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", ping)
}

func addNotificationRoutes(rg *gin.RouterGroup, d Dependencies) {
	rg.POST("/notifications/email", middleware.RequireNotifySecret(d.NotifySecret), d.Notifications.SendEmail)
}
