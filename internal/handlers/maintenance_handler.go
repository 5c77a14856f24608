package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/heizlog/heizlog/internal/dto"
	"github.com/heizlog/heizlog/internal/services"
	"github.com/heizlog/heizlog/internal/tenant"
	"github.com/heizlog/heizlog/internal/validation"
)

type MaintenanceHandler struct {
	maintenances *services.MaintenanceService
}

func NewMaintenanceHandler(maintenances *services.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenances: maintenances}
}

func (h *MaintenanceHandler) Create(c *fiber.Ctx) error {
	userID, err := tenant.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	var req dto.CreateMaintenanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	maintenance, err := h.maintenances.Create(userID, &req)
	if err != nil {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.FailDetails("Validation error", vErr.Fields))
		}
		if errors.Is(err, services.ErrHeaterNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Heater not found"))
		}
		slog.Error("failed to create maintenance", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to create maintenance"))
	}

	return c.Status(fiber.StatusCreated).JSON(dto.Success(maintenance))
}

// List returns the maintenance history of one heater, identified by the
// heaterId query parameter.
func (h *MaintenanceHandler) List(c *fiber.Ctx) error {
	userID, err := tenant.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	heaterID, err := uuid.Parse(c.Query("heaterId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Missing or invalid heaterId"))
	}

	maintenances, err := h.maintenances.ListByHeater(userID, heaterID)
	if err != nil {
		if errors.Is(err, services.ErrHeaterNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Heater not found"))
		}
		slog.Error("failed to list maintenances", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to fetch maintenances"))
	}

	return c.JSON(dto.SuccessCount(maintenances, len(maintenances)))
}

func (h *MaintenanceHandler) Get(c *fiber.Ctx) error {
	userID, err := tenant.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid maintenance ID"))
	}

	maintenance, err := h.maintenances.Get(userID, id)
	if err != nil {
		if errors.Is(err, services.ErrMaintenanceNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Maintenance not found"))
		}
		slog.Error("failed to fetch maintenance", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to fetch maintenance"))
	}

	return c.JSON(dto.Success(maintenance))
}

func (h *MaintenanceHandler) Delete(c *fiber.Ctx) error {
	userID, err := tenant.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid maintenance ID"))
	}

	if err := h.maintenances.Delete(c.Context(), userID, id); err != nil {
		if errors.Is(err, services.ErrMaintenanceNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Maintenance not found"))
		}
		slog.Error("failed to delete maintenance", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to delete maintenance"))
	}

	return c.JSON(dto.SuccessMessage("Maintenance deleted successfully"))
}
