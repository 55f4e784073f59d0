package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты вызовов: создание и чтение открыты, отклик требует сессии
	incidents := api.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.POST("/:id/response", SessionAuthMiddleware(h.sessions, h.logger), h.submitResponse)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
