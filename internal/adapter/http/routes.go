package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all travel planner API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *TripHandler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with middleware applied to the
// versioned API group only. The health check never carries it.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *TripHandler, middleware ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	api.POST("/trips/validate", h.ValidateTrip)
	api.POST("/attractions/search", h.SearchAttractions)
	api.POST("/hotels/search", h.SearchHotels)
}
