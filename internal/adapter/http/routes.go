package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all simulator API routes under /api/v1.
func RegisterRoutes(e *echo.Echo, h *SimulationHandler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with middleware applied to the
// versioned group only. The health check stays outside it.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *SimulationHandler, middleware ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	simulations := api.Group("/simulations")
	simulations.POST("", h.RunSimulation)
	simulations.POST("/compare", h.CompareSizes)
	simulations.GET("/latest", h.LatestSimulation)
	simulations.GET("/latest/flights", h.ListFlights)

	api.GET("/routes", h.ListRoutes)
	api.GET("/routes/profit", h.RouteProfit)
	api.GET("/graph", h.Graph)
}
