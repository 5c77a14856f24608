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

type CustomerHandler struct {
	customers *services.CustomerService
}

func NewCustomerHandler(customers *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	userID, err := tenant.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	var req dto.CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	customer, err := h.customers.Create(userID, &req)
	if err != nil {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.FailDetails("Validation error", vErr.Fields))
		}
		slog.Error("failed to create customer", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to create customer"))
	}

	return c.Status(fiber.StatusCreated).JSON(dto.Success(customer))
}

func (h *CustomerHandler) List(c *fiber.Ctx) error {
	userID, err := tenant.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	search := c.Query("search")
	sortBy := c.Query("sortBy", "name")
	sortOrder := c.Query("sortOrder", "asc")

	customers, err := h.customers.List(userID, search, sortBy, sortOrder)
	if err != nil {
		slog.Error("failed to list customers", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to fetch customers"))
	}

	return c.JSON(dto.SuccessCount(customers, len(customers)))
}

func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	userID, err := tenant.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid customer ID"))
	}

	customer, err := h.customers.Get(userID, id)
	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Customer not found"))
		}
		slog.Error("failed to fetch customer", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to fetch customer"))
	}

	return c.JSON(dto.Success(customer))
}

func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	userID, err := tenant.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid customer ID"))
	}

	var req dto.UpdateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	customer, err := h.customers.Update(userID, id, &req)
	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Customer not found"))
		}
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.FailDetails("Validation error", vErr.Fields))
		}
		slog.Error("failed to update customer", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to update customer"))
	}

	return c.JSON(dto.Success(customer))
}

func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	userID, err := tenant.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid customer ID"))
	}

	if err := h.customers.Delete(userID, id); err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Customer not found"))
		}
		slog.Error("failed to delete customer", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to delete customer"))
	}

	return c.JSON(dto.SuccessMessage("Customer deleted successfully"))
}
