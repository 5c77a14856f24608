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

type HeaterHandler struct {
	heaters *services.HeaterService
}

func NewHeaterHandler(heaters *services.HeaterService) *HeaterHandler {
	return &HeaterHandler{heaters: heaters}
}

func (h *HeaterHandler) Create(c *fiber.Ctx) error {
	userID, err := tenant.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	var req dto.CreateHeaterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	heater, err := h.heaters.Create(userID, &req)
	if err != nil {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.FailDetails("Validation error", vErr.Fields))
		}
		if errors.Is(err, services.ErrCustomerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Customer not found"))
		}
		slog.Error("failed to create heater", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to create heater"))
	}

	return c.Status(fiber.StatusCreated).JSON(dto.Success(heater))
}

// List returns the heaters of one customer, identified by the customerId
// query parameter.
func (h *HeaterHandler) List(c *fiber.Ctx) error {
	userID, err := tenant.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	customerID, err := uuid.Parse(c.Query("customerId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Missing or invalid customerId"))
	}

	heaters, err := h.heaters.ListByCustomer(userID, customerID)
	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Customer not found"))
		}
		slog.Error("failed to list heaters", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to fetch heaters"))
	}

	return c.JSON(dto.SuccessCount(heaters, len(heaters)))
}

func (h *HeaterHandler) Get(c *fiber.Ctx) error {
	userID, err := tenant.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid heater ID"))
	}

	heater, err := h.heaters.Get(userID, id)
	if err != nil {
		if errors.Is(err, services.ErrHeaterNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Heater not found"))
		}
		slog.Error("failed to fetch heater", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to fetch heater"))
	}

	return c.JSON(dto.Success(heater))
}

func (h *HeaterHandler) Update(c *fiber.Ctx) error {
	userID, err := tenant.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid heater ID"))
	}

	var req dto.UpdateHeaterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	heater, err := h.heaters.Update(userID, id, &req)
	if err != nil {
		if errors.Is(err, services.ErrHeaterNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Heater not found"))
		}
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.FailDetails("Validation error", vErr.Fields))
		}
		slog.Error("failed to update heater", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to update heater"))
	}

	return c.JSON(dto.Success(heater))
}

func (h *HeaterHandler) Delete(c *fiber.Ctx) error {
	userID, err := tenant.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid heater ID"))
	}

	if err := h.heaters.Delete(userID, id); err != nil {
		if errors.Is(err, services.ErrHeaterNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Heater not found"))
		}
		slog.Error("failed to delete heater", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to delete heater"))
	}

	return c.JSON(dto.SuccessMessage("Heater deleted successfully"))
}
