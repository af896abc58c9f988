package csvfiles

import (
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/onecore-platform/doc-analyzer-be/internal/core/auth"
	"github.com/onecore-platform/doc-analyzer-be/internal/shared/utils"
)

// Handler handles CSV upload requests
type Handler struct {
	service *Service
}

// NewHandler creates a new csvfiles handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Upload receives a .csv file, validates it, stores it and persists its rows
// plus an event log entry.
func (h *Handler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file is required",
		})
	}
	if file.Filename == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file has no name",
		})
	}
	if !strings.HasSuffix(strings.ToLower(file.Filename), ".csv") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "only .csv files are allowed",
		})
	}

	fileHandle, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to read uploaded file",
		})
	}
	defer fileHandle.Close()

	data, err := io.ReadAll(fileHandle)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to read uploaded file",
		})
	}
	if len(data) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "csv file is empty",
		})
	}

	input := UploadInput{
		Filename:    file.Filename,
		Data:        data,
		DatasetName: strings.TrimSpace(c.FormValue("dataset_name")),
		Description: strings.TrimSpace(c.FormValue("description")),
	}

	result, err := h.service.Upload(c.Context(), input, auth.UserIDFromCtx(c))
	if err != nil {
		if errors.Is(err, ErrInvalidCSV) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "failed to parse csv content",
			})
		}
		utils.LogError("csv upload failed", err, map[string]interface{}{
			"filename": file.Filename,
		})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to register csv file",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"file_id":      result.File.ID,
		"filename":     result.File.Filename,
		"dataset_name": result.File.DatasetName,
		"description":  result.File.Description,
		"storage": fiber.Map{
			"type": result.Provider,
			"key":  result.Stored.Key,
		},
		"validation": result.Validation,
	})
}
