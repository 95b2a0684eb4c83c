package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1.
// Операторские маршруты (работа с алертами, просмотр подписчиков) закрыты
// API-ключом; регистрация подписки, инжест и геокодирование открыты.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты оператора
	alerts := api.Group("/alerts", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		alerts.POST("", h.createAlert)
		alerts.GET("/pending", h.listPendingAlerts)
		alerts.GET("/:id", h.getAlert)
		alerts.POST("/:id/confirm", h.confirmAlert)
		alerts.POST("/:id/dismiss", h.dismissAlert)
	}

	// Маршруты подписок
	subscriptions := api.Group("/subscriptions")
	{
		subscriptions.POST("", h.registerSubscription)
		subscriptions.GET("", APIKeyAuthMiddleware(h.cfg, h.logger), h.listSubscriptions)
	}

	// Инжест постов-кандидатов
	api.POST("/ingest/posts", h.ingestPost)

	// Геокодирование адресов
	api.POST("/geocode", h.geocodeAddress)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
