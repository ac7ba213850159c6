package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, handler *Handler, gatherer prometheus.Gatherer) {
	// Health check and metrics
	app.Get("/health", handler.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// API v1 routes
	api := app.Group("/api/v1")
	{
		// Own station
		api.Get("/station", handler.GetStation)
		api.Get("/station/last-cam", handler.GetLastCAM)

		// Inputs normally fed by vehicle bus and radio
		api.Put("/vehicle", handler.UpdateVehicle)
		api.Post("/vehicle/simulation", handler.StartSimulation)
		api.Delete("/vehicle/simulation", handler.StopSimulation)
		api.Put("/dcc", handler.UpdateChannelLoad)
		api.Post("/indications", handler.InjectIndication)

		// Neighbor table
		api.Get("/neighbors", handler.GetNeighbors)
		api.Get("/neighbors/:id", handler.GetNeighbor)
	}
}

// ErrorHandler renders errors as JSON
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
