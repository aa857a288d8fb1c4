package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/experts/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, page *handlers.PageHandler, ask *handlers.AskHandler, health *handlers.HealthHandler) {
	// Form page
	app.Get("/", page.Show)
	app.Post("/", page.Submit)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	v1.Get("/experts", ask.Experts)
	v1.Post("/ask", ask.Ask)
}
