package v1

import (
	"embed"

	"github.com/gin-gonic/gin"
)

//go:embed templates
var templatesFS embed.FS

// RegisterRoutes регистрирует все маршруты сервиса
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.Use(RequestIDMiddleware())

	// Главная страница с картой
	r.GET("/", h.index)

	// Аварии в формате GeoJSON
	r.GET("/geojson", APIKeyAuthMiddleware(h.cfg, h.logger), h.getGeoJSON)

	// Маршрут Health-check
	r.GET("/system/health", h.healthCheck)
}
