package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the fiber app with middleware and routes registered.
func NewApp(handler *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "healthlog",
		DisableStartupMessage: true,
		ReadTimeout:           30 * time.Second,
		// Params and query values end up in stored records.
		Immutable:    true,
		ErrorHandler: handler.errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "${time} ${status} ${method} ${path} ${latency}\n",
		TimeFormat: time.RFC3339,
	}))
	app.Use(handler.LanguageMiddleware)

	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api", handler.AuthRequired)
	api.Get("/today", handler.GetToday)
	api.Get("/days/:date", handler.GetDay)
	api.Get("/selected-date", handler.GetSelectedDate)
	api.Put("/selected-date", handler.SetSelectedDate)

	entries := api.Group("/entries")
	entries.Get("", handler.ListEntries)
	entries.Post("", handler.CreateEntry)
	entries.Put("/:id", handler.UpdateEntry)
	entries.Delete("/:id", handler.DeleteEntry)

	checkIns := api.Group("/check-ins")
	checkIns.Get("", handler.ListCheckIns)
	checkIns.Put("/:date", handler.PutCheckIn)

	periods := api.Group("/periods")
	periods.Get("", handler.ListPeriods)
	periods.Put("/:date", handler.PutPeriod)
	periods.Delete("/:date", handler.DeletePeriod)

	ailments := api.Group("/ailment-types")
	ailments.Get("", handler.ListAilmentTypes)
	ailments.Post("", handler.CreateAilmentType)
	ailments.Put("/:id", handler.UpdateAilmentType)
	ailments.Post("/:id/toggle", handler.ToggleAilmentType)
	ailments.Delete("/:id", handler.DeleteAilmentType)

	triggers := api.Group("/trigger-types")
	triggers.Get("", handler.ListTriggerTypes)
	triggers.Post("", handler.CreateTriggerType)
	triggers.Put("/:id", handler.UpdateTriggerType)
	triggers.Post("/:id/toggle", handler.ToggleTriggerType)
	triggers.Delete("/:id", handler.DeleteTriggerType)

	symptoms := api.Group("/custom-symptoms")
	symptoms.Get("", handler.ListCustomSymptoms)
	symptoms.Post("", handler.CreateCustomSymptom)
	symptoms.Put("/:id", handler.UpdateCustomSymptom)
	symptoms.Post("/:id/toggle", handler.ToggleCustomSymptom)
	symptoms.Delete("/:id", handler.DeleteCustomSymptom)

	settings := api.Group("/settings")
	settings.Get("", handler.GetSettings)
	settings.Patch("", handler.UpdateSettings)
	settings.Get("/tiles/:set", handler.GetTiles)
	settings.Put("/tiles/:set", handler.SetTiles)
	settings.Post("/tiles/:set/toggle/:id", handler.ToggleTile)
	settings.Post("/tiles/:set/reorder", handler.ReorderTiles)
	settings.Delete("/tiles/:set", handler.ResetTiles)

	stats := api.Group("/stats")
	stats.Get("/summary", handler.StatsSummary)
	stats.Get("/cycle", handler.StatsCycle)
	stats.Get("/usage", handler.StatsUsage)
	stats.Get("/correlation", handler.StatsPeriodCorrelation)
	stats.Get("/time-of-day", handler.StatsTimeOfDay)
	stats.Get("/weekly", handler.StatsWeekly)
	stats.Get("/triggers", handler.StatsTopTriggers)
	stats.Get("/trigger-correlation", handler.StatsTriggerCorrelation)
	stats.Get("/heatmap", handler.StatsHeatmap)
	stats.Get("/trend", handler.StatsSeverityTrend)

	data := api.Group("/data")
	data.Get("/export", handler.ExportData)
	data.Post("/import", handler.ImportData)
	data.Post("/clear", handler.ClearData)
	data.Post("/reset", handler.ResetData)
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "phase": handler.tracker.Phase().String()})
}

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	return apiError(c, fiber.StatusNotFound, handler.translate(c, "errors.notFound"))
}

func (handler *Handler) errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return apiError(c, fiberErr.Code, fiberErr.Message)
	}
	handler.logger.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	return apiError(c, fiber.StatusInternalServerError, "internal error")
}
