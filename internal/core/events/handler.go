package events

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/onecore-platform/doc-analyzer-be/internal/core/export"
)

// Handler handles event history requests
type Handler struct {
	service  *Service
	exporter *export.ExcelExporter
}

// NewHandler creates a new events handler
func NewHandler(service *Service, exporter *export.ExcelExporter) *Handler {
	return &Handler{service: service, exporter: exporter}
}

// List returns the event history, newest first, with optional filters:
// event_type, description (substring), date_from, date_to.
func (h *Handler) List(c *fiber.Ctx) error {
	filter, err := filterFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	logs, err := h.service.List(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list events",
		})
	}
	if logs == nil {
		logs = []EventLog{}
	}
	return c.JSON(logs)
}

// Export streams the filtered event history as an .xlsx attachment.
func (h *Handler) Export(c *fiber.Ctx) error {
	filter, err := filterFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	logs, err := h.service.List(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list events",
		})
	}
	if len(logs) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no events to export",
		})
	}

	data := &export.ExportData{
		SheetName: "Eventos",
		Headers:   []string{"ID", "Tipo", "Descripción", "FechaHora"},
		Rows:      make([][]interface{}, 0, len(logs)),
	}
	for _, e := range logs {
		data.Rows = append(data.Rows, []interface{}{
			e.ID, e.EventType, e.Description, e.CreatedAt.Format(time.RFC3339),
		})
	}

	var buf bytes.Buffer
	if err := h.exporter.Export(data, &buf); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to build export file",
		})
	}

	filename := fmt.Sprintf("eventos_%s%s", time.Now().UTC().Format("20060102_150405"), h.exporter.GetFileExtension())
	c.Set(fiber.HeaderContentType, h.exporter.GetContentType())
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}

// filterFromQuery parses the shared filter query params. Dates accept
// RFC3339 or plain YYYY-MM-DD.
func filterFromQuery(c *fiber.Ctx) (Filter, error) {
	filter := Filter{
		EventType:   c.Query("event_type"),
		Description: c.Query("description"),
	}

	if raw := c.Query("date_from"); raw != "" {
		t, err := parseTime(raw)
		if err != nil {
			return Filter{}, fmt.Errorf("invalid date_from: %s", raw)
		}
		filter.DateFrom = &t
	}
	if raw := c.Query("date_to"); raw != "" {
		t, err := parseTime(raw)
		if err != nil {
			return Filter{}, fmt.Errorf("invalid date_to: %s", raw)
		}
		filter.DateTo = &t
	}
	return filter, nil
}

func parseTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
