package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// изменяющие маршруты закрыты ключом, если ключи заданы
	protected := h.authMiddleware()

	api.POST("/detections", protected, h.detect)

	incidents := api.Group("/incidents")
	{
		incidents.POST("", protected, h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/stats", h.getStats)
		incidents.GET("/:id", h.getIncident)
		incidents.DELETE("/:id", protected, h.deleteIncident)
	}

	alerts := api.Group("/alerts")
	{
		alerts.POST("", protected, h.createAlert)
		alerts.GET("", h.listAlerts)
		alerts.DELETE("/:id", protected, h.resolveAlert)
	}

	threats := api.Group("/threats")
	{
		threats.POST("", protected, h.createThreat)
		threats.GET("", h.listThreats)
		threats.DELETE("/:id", protected, h.deleteThreat)
	}

	system := api.Group("/system")
	{
		system.GET("/health", h.getSystemHealth)
		system.PUT("/health", protected, h.updateSystemHealth)
		system.GET("/ping", h.ping)
	}
}

func (h *Handler) authMiddleware() gin.HandlerFunc {
	if len(h.cfg.APIKeys) == 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return APIKeyAuthMiddleware(h.cfg.APIKeys, h.logger)
}
