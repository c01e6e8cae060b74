package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/terraincognita07/healthlog/internal/models"
	"github.com/terraincognita07/healthlog/internal/services"
)

type dayView struct {
	Date     string                          `json:"date"`
	Entries  []models.HealthEntryWithDetails `json:"entries"`
	CheckIn  *models.DailyCheckIn            `json:"checkIn"`
	Period   *models.PeriodEntry             `json:"period"`
	IsPeriod bool                            `json:"isPeriod"`
}

type moodPayload struct {
	Mood  models.Mood `json:"mood"`
	Notes string      `json:"notes"`
}

type periodPayload struct {
	Flow     models.Flow      `json:"flow"`
	Symptoms []models.Symptom `json:"symptoms"`
	Notes    string           `json:"notes"`
}

type selectedDatePayload struct {
	Date string `json:"date"`
}

// ListEntries returns the entries between ?from and ?to with their ailment
// and triggers resolved.
func (handler *Handler) ListEntries(c *fiber.Ctx) error {
	from, to, err := handler.dateRange(c)
	if err != nil {
		return handler.writeError(c, err)
	}
	return c.JSON(handler.tracker.EntriesWithDetails(from, to))
}

func (handler *Handler) CreateEntry(c *fiber.Ctx) error {
	var input services.EntryInput
	if err := handler.parseBody(c, &input); err != nil {
		return err
	}
	if input.Date == "" {
		input.Date = handler.tracker.SelectedDate()
	}

	entry, err := handler.tracker.AddEntry(c.UserContext(), input)
	if err != nil {
		return handler.writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) UpdateEntry(c *fiber.Ctx) error {
	var input services.EntryInput
	if err := handler.parseBody(c, &input); err != nil {
		return err
	}

	entry, err := handler.tracker.UpdateEntry(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return handler.writeError(c, err)
	}
	return c.JSON(entry)
}

func (handler *Handler) DeleteEntry(c *fiber.Ctx) error {
	if err := handler.tracker.DeleteEntry(c.UserContext(), c.Params("id")); err != nil {
		return handler.writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetDay returns everything logged on one date.
func (handler *Handler) GetDay(c *fiber.Ctx) error {
	date, err := parseDateParam(c.Params("date"))
	if err != nil {
		return handler.writeError(c, err)
	}

	view := dayView{
		Date:    date,
		Entries: handler.tracker.EntriesWithDetails(date, date),
	}
	if checkIn, ok := services.CheckInForDate(handler.tracker.CheckIns(), date); ok {
		view.CheckIn = &checkIn
	}
	if period, ok := services.PeriodEntryForDate(handler.tracker.PeriodEntries(), date); ok {
		view.Period = &period
		view.IsPeriod = true
	}
	return c.JSON(view)
}

func (handler *Handler) GetToday(c *fiber.Ctx) error {
	today := handler.tracker.Today()
	view := dayView{
		Date:    today,
		Entries: handler.tracker.EntriesWithDetails(today, today),
	}
	if checkIn, ok := handler.tracker.TodayCheckIn(); ok {
		view.CheckIn = &checkIn
	}
	if period, ok := services.PeriodEntryForDate(handler.tracker.PeriodEntries(), today); ok {
		view.Period = &period
		view.IsPeriod = true
	}
	return c.JSON(view)
}

func (handler *Handler) GetSelectedDate(c *fiber.Ctx) error {
	view := dayView{
		Date:    handler.tracker.SelectedDate(),
		Entries: handler.tracker.SelectedDateEntriesWithDetails(),
	}
	if checkIn, ok := handler.tracker.SelectedDateCheckIn(); ok {
		view.CheckIn = &checkIn
	}
	if period, ok := handler.tracker.SelectedDatePeriod(); ok {
		view.Period = &period
		view.IsPeriod = true
	}
	return c.JSON(view)
}

func (handler *Handler) SetSelectedDate(c *fiber.Ctx) error {
	var payload selectedDatePayload
	if err := handler.parseBody(c, &payload); err != nil {
		return err
	}
	if err := handler.tracker.SetSelectedDate(payload.Date); err != nil {
		return handler.writeError(c, err)
	}
	return handler.GetSelectedDate(c)
}

func (handler *Handler) ListCheckIns(c *fiber.Ctx) error {
	from, to, err := handler.dateRange(c)
	if err != nil {
		return handler.writeError(c, err)
	}
	checkIns := make([]models.DailyCheckIn, 0)
	for _, checkIn := range handler.tracker.CheckIns() {
		if checkIn.Date >= from && checkIn.Date <= to {
			checkIns = append(checkIns, checkIn)
		}
	}
	return c.JSON(checkIns)
}

func (handler *Handler) PutCheckIn(c *fiber.Ctx) error {
	var payload moodPayload
	if err := handler.parseBody(c, &payload); err != nil {
		return err
	}

	checkIn, err := handler.tracker.SetMood(c.UserContext(), c.Params("date"), payload.Mood, payload.Notes)
	if err != nil {
		return handler.writeError(c, err)
	}
	return c.JSON(checkIn)
}

func (handler *Handler) ListPeriods(c *fiber.Ctx) error {
	from, to, err := handler.dateRange(c)
	if err != nil {
		return handler.writeError(c, err)
	}
	return c.JSON(handler.tracker.PeriodEntriesInRange(from, to))
}

func (handler *Handler) PutPeriod(c *fiber.Ctx) error {
	var payload periodPayload
	if err := handler.parseBody(c, &payload); err != nil {
		return err
	}

	period, err := handler.tracker.SetPeriodEntry(c.UserContext(), services.PeriodInput{
		Date:     c.Params("date"),
		Flow:     payload.Flow,
		Symptoms: payload.Symptoms,
		Notes:    payload.Notes,
	})
	if err != nil {
		return handler.writeError(c, err)
	}
	return c.JSON(period)
}

func (handler *Handler) DeletePeriod(c *fiber.Ctx) error {
	date, err := parseDateParam(c.Params("date"))
	if err != nil {
		return handler.writeError(c, err)
	}
	if err := handler.tracker.DeletePeriodEntry(c.UserContext(), date); err != nil {
		return handler.writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
