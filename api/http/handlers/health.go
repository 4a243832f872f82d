package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-analyzer/pkg/health"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	svc health.ReadinessUseCase
	env string
}

func NewHealthHandler(svc health.ReadinessUseCase, env string) *HealthHandler {
	return &HealthHandler{svc: svc, env: env}
}

// Health reports API liveness plus database connectivity. It always answers
// 200; a broken database shows up as "disconnected", not as a failure.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 1*time.Second)
	defer cancel()
	db := "connected"
	if err := h.svc.Ready(ctx); err != nil {
		db = "disconnected"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":      "ok",
		"message":     "Resume Analyzer API is running",
		"database":    db,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.env,
	})
}

// Ready is the strict readiness probe: 503 until every dependency answers.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 1*time.Second)
	defer cancel()
	if err := h.svc.Ready(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":  "not_ready",
			"details": err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ready"})
}
