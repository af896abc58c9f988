package documents

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/onecore-platform/doc-analyzer-be/internal/core/auth"
	"github.com/onecore-platform/doc-analyzer-be/internal/core/extract"
	"github.com/onecore-platform/doc-analyzer-be/internal/shared/utils"
)

var allowedContentTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"text/plain":      true,
}

// Handler handles document analysis requests
type Handler struct {
	service *Service
}

// NewHandler creates a new documents handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Analyze uploads a document, stores it, extracts its text (or takes the OCR
// text handed in via the "text" form field), runs classification and field
// extraction and persists the result together with an event log entry.
func (h *Handler) Analyze(c *fiber.Ctx) error {
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

	contentType := file.Header.Get("Content-Type")
	if !allowedContentTypes[contentType] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "only PDF, JPG, PNG or plain text files are allowed",
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
			"error": "file is empty",
		})
	}

	input := AnalyzeInput{
		Filename:    file.Filename,
		Data:        data,
		Description: c.FormValue("description"),
		Text:        c.FormValue("text"),
		DocType:     extract.DocType(c.FormValue("doc_type")),
		Upstream: extract.Fields{
			Client:   c.FormValue("cliente"),
			Provider: c.FormValue("proveedor"),
			Number:   c.FormValue("numero_factura"),
			Date:     c.FormValue("fecha"),
			Total:    c.FormValue("total"),
		},
	}

	result, err := h.service.Analyze(c.Context(), input, auth.UserIDFromCtx(c))
	if err != nil {
		utils.LogError("document analysis failed", err, map[string]interface{}{
			"filename": file.Filename,
		})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to analyze document",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"document_id": result.Document.ID,
		"filename":    result.Document.Filename,
		"doc_type":    result.Document.DocType,
		"storage": fiber.Map{
			"type": result.Provider,
			"key":  result.Stored.Key,
		},
		"extracted": result.Extracted,
	})
}

// List returns stored documents, newest first.
func (h *Handler) List(c *fiber.Ctx) error {
	docs, err := h.service.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list documents",
		})
	}
	if docs == nil {
		docs = []Document{}
	}
	return c.JSON(docs)
}
