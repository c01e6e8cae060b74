package api

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/terraincognita07/healthlog/internal/dates"
	"github.com/terraincognita07/healthlog/internal/export"
	"github.com/terraincognita07/healthlog/internal/services"
	"github.com/terraincognita07/healthlog/internal/state"
)

var errInvalidRange = errors.New("invalid date range")

var validationErrors = []error{
	services.ErrInvalidDate,
	services.ErrInvalidTime,
	services.ErrInvalidSeverity,
	services.ErrInvalidMood,
	services.ErrInvalidFlow,
	services.ErrInvalidCategory,
	services.ErrInvalidName,
	services.ErrMissingAilment,
	services.ErrInvalidLanguage,
	services.ErrInvalidTheme,
	services.ErrUnknownTile,
	export.ErrUnsupportedFormat,
	export.ErrUnsupportedVersion,
	export.ErrInvalidDocument,
	errInvalidRange,
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// writeError maps tracker errors onto HTTP statuses: validation failures are
// 400, unknown records 404 and storage failures 500.
func (handler *Handler) writeError(c *fiber.Ctx, err error) error {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	switch {
	case errors.Is(err, state.ErrNotFound):
		return apiError(c, fiber.StatusNotFound, handler.translate(c, "errors.notFound"))
	case errors.Is(err, state.ErrDeleteFailed):
		handler.logger.Error("delete failed", "path", c.Path(), "error", err)
		return apiError(c, fiber.StatusInternalServerError, handler.translate(c, "errors.deleteFailed"))
	case errors.Is(err, state.ErrLoadFailed):
		handler.logger.Error("load failed", "path", c.Path(), "error", err)
		return apiError(c, fiber.StatusInternalServerError, handler.translate(c, "errors.loadFailed"))
	default:
		handler.logger.Error("save failed", "path", c.Path(), "error", err)
		return apiError(c, fiber.StatusInternalServerError, handler.translate(c, "errors.saveFailed"))
	}
}

func (handler *Handler) parseBody(c *fiber.Ctx, target any) error {
	if err := c.BodyParser(target); err != nil {
		return apiError(c, fiber.StatusBadRequest, handler.translate(c, "errors.invalidInput"))
	}
	return nil
}

func parseDateParam(raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if !dates.Valid(value) {
		return "", fmt.Errorf("%w: %q", services.ErrInvalidDate, raw)
	}
	return value, nil
}

// dateRange reads ?from and ?to. Missing bounds default to the current
// month.
func (handler *Handler) dateRange(c *fiber.Ctx) (string, string, error) {
	year, month, err := dates.MonthYear(handler.tracker.Today())
	if err != nil {
		return "", "", err
	}
	from, to := dates.MonthRange(year, month)
	return handler.rangeWithDefaults(c, from, to)
}

// trailingRange reads ?from and ?to, defaulting to the days-long window
// ending today.
func (handler *Handler) trailingRange(c *fiber.Ctx, days int) (string, string, error) {
	to := handler.tracker.Today()
	from, err := dates.AddDays(to, 1-days)
	if err != nil {
		return "", "", err
	}
	return handler.rangeWithDefaults(c, from, to)
}

func (handler *Handler) rangeWithDefaults(c *fiber.Ctx, from string, to string) (string, string, error) {
	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		parsed, err := parseDateParam(raw)
		if err != nil {
			return "", "", err
		}
		from = parsed
	}
	if raw := strings.TrimSpace(c.Query("to")); raw != "" {
		parsed, err := parseDateParam(raw)
		if err != nil {
			return "", "", err
		}
		to = parsed
	}
	if from > to {
		return "", "", fmt.Errorf("%w: %s is after %s", errInvalidRange, from, to)
	}
	return from, to, nil
}

// monthQuery reads ?month=YYYY-MM, defaulting to the current month.
func (handler *Handler) monthQuery(c *fiber.Ctx) (int, time.Month, error) {
	raw := strings.TrimSpace(c.Query("month"))
	if raw == "" {
		return dates.MonthYear(handler.tracker.Today())
	}
	return dates.MonthYear(raw + "-01")
}

func limitQuery(c *fiber.Ctx, fallback int) int {
	limit, err := strconv.Atoi(strings.TrimSpace(c.Query("limit")))
	if err != nil || limit <= 0 {
		return fallback
	}
	return limit
}
