package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/heizlog/heizlog/internal/dto"
	"github.com/heizlog/heizlog/internal/services"
	"github.com/heizlog/heizlog/internal/tenant"
)

type DashboardHandler struct {
	dashboard *services.DashboardService
}

func NewDashboardHandler(dashboard *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	userID, err := tenant.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	stats, err := h.dashboard.Stats(userID)
	if err != nil {
		slog.Error("failed to compute dashboard stats", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to fetch statistics"))
	}

	return c.JSON(dto.Success(stats))
}
