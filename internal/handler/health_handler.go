package handler

import (
	"kidsedu/internal/config"
	"kidsedu/internal/dto"
	"kidsedu/internal/logger"
	"kidsedu/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	service service.HealthService
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(service service.HealthService) *HealthHandler {
	return &HealthHandler{service: service}
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: "healthy", App: config.AppName})
}

// Ready godoc
// @Summary Readiness probe
// @Description Pings the database and cache when they are configured
// @Tags health
// @Produce json
// @Success 200 {object} dto.ReadinessResponse
// @Failure 503 {object} dto.ReadinessResponse
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	checks, err := h.service.Ready(c.UserContext())
	if err != nil {
		logger.Get().Warn("Readiness check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ReadinessResponse{
			Status: "unavailable",
			Checks: checks,
		})
	}
	return c.JSON(dto.ReadinessResponse{Status: "ready", Checks: checks})
}
