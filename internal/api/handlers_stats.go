package api

import (
	"sort"

	"github.com/gofiber/fiber/v2"

	"github.com/terraincognita07/healthlog/internal/i18n"
	"github.com/terraincognita07/healthlog/internal/models"
	"github.com/terraincognita07/healthlog/internal/services"
)

const (
	defaultTopTriggers = 5
	defaultTrendDays   = 30
)

type rangeResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type cycleResponse struct {
	models.CycleStats
	PeriodDates  []string `json:"periodDates"`
	PeriodStarts []string `json:"periodStarts"`
}

type usageResponse struct {
	Ailments      map[string]int `json:"ailments"`
	Symptoms      map[string]int `json:"symptoms"`
	EntriesByDate map[string]int `json:"entriesByDate"`
	MaxSeverity   map[string]int `json:"maxSeverityByDate"`
}

type correlationResponse struct {
	services.PeriodCorrelationReport
	Labels map[string]string `json:"labels"`
}

func (handler *Handler) StatsSummary(c *fiber.Ctx) error {
	from, to, err := handler.dateRange(c)
	if err != nil {
		return handler.writeError(c, err)
	}
	return c.JSON(rangeResponse{From: from, To: to, Data: handler.tracker.Summary(from, to)})
}

func (handler *Handler) StatsCycle(c *fiber.Ctx) error {
	days := make([]string, 0)
	for date := range handler.tracker.PeriodDates() {
		days = append(days, date)
	}
	sort.Strings(days)
	return c.JSON(cycleResponse{
		CycleStats:   handler.tracker.CycleStats(),
		PeriodDates:  days,
		PeriodStarts: services.PeriodStarts(days),
	})
}

func (handler *Handler) StatsUsage(c *fiber.Ctx) error {
	maxSeverity := make(map[string]int)
	for date, severity := range handler.tracker.MaxSeverityByDate() {
		maxSeverity[date] = int(severity)
	}
	return c.JSON(usageResponse{
		Ailments:      handler.tracker.AilmentUsageCounts(),
		Symptoms:      handler.tracker.SymptomUsageCounts(),
		EntriesByDate: handler.tracker.EntriesCountByDate(),
		MaxSeverity:   maxSeverity,
	})
}

// StatsPeriodCorrelation adds a localized label for every verdict in the
// report.
func (handler *Handler) StatsPeriodCorrelation(c *fiber.Ctx) error {
	report := handler.tracker.PeriodCorrelation()
	labels := map[string]string{
		string(report.Overall.Verdict): handler.translate(c, i18n.CorrelationKey(string(report.Overall.Verdict))),
	}
	for _, ailment := range report.Ailments {
		labels[string(ailment.Verdict)] = handler.translate(c, i18n.CorrelationKey(string(ailment.Verdict)))
	}
	return c.JSON(correlationResponse{PeriodCorrelationReport: report, Labels: labels})
}

func (handler *Handler) StatsTimeOfDay(c *fiber.Ctx) error {
	from, to, err := handler.dateRange(c)
	if err != nil {
		return handler.writeError(c, err)
	}
	return c.JSON(rangeResponse{From: from, To: to, Data: handler.tracker.TimeOfDayPattern(from, to)})
}

func (handler *Handler) StatsWeekly(c *fiber.Ctx) error {
	from, to, err := handler.dateRange(c)
	if err != nil {
		return handler.writeError(c, err)
	}
	return c.JSON(rangeResponse{From: from, To: to, Data: handler.tracker.WeeklyPattern(from, to)})
}

func (handler *Handler) StatsTopTriggers(c *fiber.Ctx) error {
	from, to, err := handler.dateRange(c)
	if err != nil {
		return handler.writeError(c, err)
	}
	limit := limitQuery(c, defaultTopTriggers)
	return c.JSON(rangeResponse{From: from, To: to, Data: handler.tracker.TopTriggers(from, to, limit)})
}

func (handler *Handler) StatsTriggerCorrelation(c *fiber.Ctx) error {
	from, to, err := handler.dateRange(c)
	if err != nil {
		return handler.writeError(c, err)
	}
	return c.JSON(rangeResponse{From: from, To: to, Data: handler.tracker.TriggerCorrelation(from, to)})
}

func (handler *Handler) StatsHeatmap(c *fiber.Ctx) error {
	year, month, err := handler.monthQuery(c)
	if err != nil {
		return handler.writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"year":  year,
		"month": int(month),
		"title": i18n.MonthName(month, currentLanguage(c)),
		"days":  handler.tracker.CalendarHeatmap(year, month),
	})
}

func (handler *Handler) StatsSeverityTrend(c *fiber.Ctx) error {
	from, to, err := handler.trailingRange(c, defaultTrendDays)
	if err != nil {
		return handler.writeError(c, err)
	}
	return c.JSON(rangeResponse{From: from, To: to, Data: handler.tracker.SeverityTrend(from, to)})
}
