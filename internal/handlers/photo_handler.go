package handlers

import (
	"io"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/heizlog/heizlog/internal/dto"
	"github.com/heizlog/heizlog/internal/services"
	"github.com/heizlog/heizlog/internal/tenant"
)

type PhotoHandler struct {
	photos *services.PhotoService
}

func NewPhotoHandler(photos *services.PhotoService) *PhotoHandler {
	return &PhotoHandler{photos: photos}
}

// Upload accepts a multipart file plus the association id it belongs to and
// returns the public URL of the stored photo.
func (h *PhotoHandler) Upload(c *fiber.Ctx) error {
	userID, err := tenant.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	associationID := c.FormValue("associationId")
	if associationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("associationId is required"))
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("file is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		slog.Error("failed to open uploaded file", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to upload photo"))
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error("failed to read uploaded file", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to upload photo"))
	}

	url, err := h.photos.Upload(c.Context(), associationID, fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		slog.Error("photo upload failed", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to upload photo"))
	}

	return c.Status(fiber.StatusCreated).JSON(dto.Success(dto.PhotoUploadResponse{URL: url}))
}
