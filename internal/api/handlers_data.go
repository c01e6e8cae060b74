package api

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/terraincognita07/healthlog/internal/export"
)

type importResponse struct {
	Imported map[string]int `json:"imported"`
	Skipped  map[string]int `json:"skipped"`
}

// ExportData streams a backup as an attachment. ?format picks json (default),
// yaml or csv.
func (handler *Handler) ExportData(c *fiber.Ctx) error {
	format := export.FormatJSON
	if raw := strings.TrimSpace(c.Query("format")); raw != "" {
		parsed, err := export.ParseFormat(raw)
		if err != nil {
			return handler.writeError(c, err)
		}
		format = parsed
	}

	snapshot, err := handler.tracker.Export(c.UserContext())
	if err != nil {
		return handler.writeError(c, err)
	}

	var buffer bytes.Buffer
	if err := export.Encode(&buffer, snapshot, format, currentLanguage(c)); err != nil {
		handler.logger.Error("export failed", "format", format, "error", err)
		return apiError(c, fiber.StatusInternalServerError, handler.translate(c, "errors.exportFailed"))
	}

	filename := fmt.Sprintf("healthlog-export-%s.%s", handler.tracker.Today(), format)
	c.Set(fiber.HeaderContentType, format.ContentType())
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return c.Send(buffer.Bytes())
}

// ImportData replaces every collection with the posted backup. The format
// comes from ?format or is detected from the body.
func (handler *Handler) ImportData(c *fiber.Ctx) error {
	var format export.Format
	if raw := strings.TrimSpace(c.Query("format")); raw != "" {
		parsed, err := export.ParseFormat(raw)
		if err != nil {
			return handler.writeError(c, err)
		}
		format = parsed
	}

	snapshot, report, err := export.Decode(bytes.NewReader(c.Body()), format)
	if err != nil {
		return handler.writeError(c, err)
	}
	if err := handler.tracker.Import(c.UserContext(), snapshot); err != nil {
		handler.logger.Error("import failed", "error", err)
		return apiError(c, fiber.StatusInternalServerError, handler.translate(c, "errors.importFailed"))
	}

	skipped := report.Skipped
	if skipped == nil {
		skipped = map[string]int{}
	}
	return c.JSON(importResponse{
		Imported: map[string]int{
			"ailmentTypes":   len(snapshot.AilmentTypes),
			"triggerTypes":   len(snapshot.TriggerTypes),
			"healthEntries":  len(snapshot.HealthEntries),
			"dailyCheckIns":  len(snapshot.DailyCheckIns),
			"periodEntries":  len(snapshot.PeriodEntries),
			"customSymptoms": len(snapshot.CustomSymptoms),
		},
		Skipped: skipped,
	})
}

func (handler *Handler) ClearData(c *fiber.Ctx) error {
	if err := handler.tracker.ClearUserData(c.UserContext()); err != nil {
		return handler.writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) ResetData(c *fiber.Ctx) error {
	if err := handler.tracker.ResetAll(c.UserContext()); err != nil {
		return handler.writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
