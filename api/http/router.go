package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-analyzer/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, resumes *handlers.ResumesHandler) {
	api := app.Group("/api")

	// Health and readiness endpoints for probes/monitoring
	api.Get("/health", health.Health)
	api.Get("/ready", health.Ready)

	rg := api.Group("/resumes")
	rg.Post("/upload", resumes.Upload)
	rg.Get("/", resumes.List)
	rg.Get("/:id", resumes.Get)
	rg.Put("/:id", resumes.Update)
	rg.Delete("/:id", resumes.Delete)
}
