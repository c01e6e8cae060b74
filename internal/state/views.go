package state

import (
	"time"

	"github.com/terraincognita07/healthlog/internal/dates"
	"github.com/terraincognita07/healthlog/internal/models"
	"github.com/terraincognita07/healthlog/internal/services"
)

// read runs view with the snapshot read-locked.
func read[T any](tracker *Tracker, view func() T) T {
	tracker.mu.RLock()
	defer tracker.mu.RUnlock()
	return view()
}

func (tracker *Tracker) AilmentTypes() []models.AilmentType {
	return read(tracker, func() []models.AilmentType {
		return append([]models.AilmentType{}, tracker.ailmentTypes...)
	})
}

func (tracker *Tracker) TriggerTypes() []models.TriggerType {
	return read(tracker, func() []models.TriggerType {
		return append([]models.TriggerType{}, tracker.triggerTypes...)
	})
}

func (tracker *Tracker) Entries() []models.HealthEntry {
	return read(tracker, func() []models.HealthEntry { return cloneEntries(tracker.entries) })
}

func (tracker *Tracker) CheckIns() []models.DailyCheckIn {
	return read(tracker, func() []models.DailyCheckIn {
		return append([]models.DailyCheckIn{}, tracker.checkIns...)
	})
}

func (tracker *Tracker) PeriodEntries() []models.PeriodEntry {
	return read(tracker, func() []models.PeriodEntry { return clonePeriods(tracker.periods) })
}

func (tracker *Tracker) CustomSymptoms() []models.CustomPeriodSymptom {
	return read(tracker, func() []models.CustomPeriodSymptom {
		return append([]models.CustomPeriodSymptom{}, tracker.customSymptoms...)
	})
}

func (tracker *Tracker) Settings() models.AppSettings {
	return read(tracker, func() models.AppSettings { return tracker.settings.Clone() })
}

func (tracker *Tracker) Language() models.Language {
	return read(tracker, func() models.Language { return tracker.settings.Language })
}

func (tracker *Tracker) CustomName() string {
	return read(tracker, func() string { return tracker.settings.CustomName })
}

func (tracker *Tracker) HasCompletedOnboarding() bool {
	return read(tracker, func() bool { return tracker.settings.HasCompletedOnboarding })
}

func (tracker *Tracker) SelectedDate() string {
	return read(tracker, func() string { return tracker.selectedDate })
}

func (tracker *Tracker) Today() string {
	return dates.DayAt(tracker.now(), tracker.location)
}

func (tracker *Tracker) ActiveAilmentTypes() []models.AilmentType {
	return read(tracker, func() []models.AilmentType {
		return services.ActiveAilmentTypes(tracker.ailmentTypes, tracker.entries)
	})
}

func (tracker *Tracker) ActiveTriggerTypes() []models.TriggerType {
	return read(tracker, func() []models.TriggerType {
		return services.ActiveTriggerTypes(tracker.triggerTypes, tracker.entries)
	})
}

func (tracker *Tracker) ActiveCustomSymptoms() []models.CustomPeriodSymptom {
	return read(tracker, func() []models.CustomPeriodSymptom {
		return services.ActiveCustomSymptoms(tracker.customSymptoms, tracker.periods)
	})
}

func (tracker *Tracker) SortedBuiltinSymptoms() []models.BuiltinSymptom {
	return read(tracker, func() []models.BuiltinSymptom { return services.SortedBuiltinSymptoms(tracker.periods) })
}

func (tracker *Tracker) AilmentUsageCounts() map[string]int {
	return read(tracker, func() map[string]int { return services.AilmentUsageCounts(tracker.entries) })
}

func (tracker *Tracker) SymptomUsageCounts() map[string]int {
	return read(tracker, func() map[string]int { return services.SymptomUsageCounts(tracker.periods) })
}

func (tracker *Tracker) EntriesCountByDate() map[string]int {
	return read(tracker, func() map[string]int { return services.EntriesCountByDate(tracker.entries) })
}

func (tracker *Tracker) MaxSeverityByDate() map[string]models.Severity {
	return read(tracker, func() map[string]models.Severity { return services.MaxSeverityByDate(tracker.entries) })
}

func (tracker *Tracker) EntriesInRange(from string, to string) []models.HealthEntry {
	return read(tracker, func() []models.HealthEntry { return services.EntriesInRange(tracker.entries, from, to) })
}

func (tracker *Tracker) PeriodEntriesInRange(from string, to string) []models.PeriodEntry {
	return read(tracker, func() []models.PeriodEntry {
		return services.PeriodEntriesInRange(tracker.periods, from, to)
	})
}

func (tracker *Tracker) EntriesWithDetails(from string, to string) []models.HealthEntryWithDetails {
	return read(tracker, func() []models.HealthEntryWithDetails {
		return services.WithDetails(services.EntriesInRange(tracker.entries, from, to), tracker.ailmentTypes, tracker.triggerTypes)
	})
}

func (tracker *Tracker) SelectedDateEntries() []models.HealthEntry {
	return read(tracker, func() []models.HealthEntry {
		return services.EntriesForDate(tracker.entries, tracker.selectedDate)
	})
}

func (tracker *Tracker) SelectedDateEntriesWithDetails() []models.HealthEntryWithDetails {
	return read(tracker, func() []models.HealthEntryWithDetails {
		return services.WithDetails(services.EntriesForDate(tracker.entries, tracker.selectedDate), tracker.ailmentTypes, tracker.triggerTypes)
	})
}

func (tracker *Tracker) SelectedDateCheckIn() (models.DailyCheckIn, bool) {
	tracker.mu.RLock()
	defer tracker.mu.RUnlock()
	return services.CheckInForDate(tracker.checkIns, tracker.selectedDate)
}

func (tracker *Tracker) TodayCheckIn() (models.DailyCheckIn, bool) {
	today := tracker.Today()
	tracker.mu.RLock()
	defer tracker.mu.RUnlock()
	return services.CheckInForDate(tracker.checkIns, today)
}

func (tracker *Tracker) SelectedDatePeriod() (models.PeriodEntry, bool) {
	tracker.mu.RLock()
	defer tracker.mu.RUnlock()
	return services.PeriodEntryForDate(tracker.periods, tracker.selectedDate)
}

func (tracker *Tracker) PeriodDates() map[string]bool {
	return read(tracker, func() map[string]bool { return services.PeriodDates(tracker.periods) })
}

func (tracker *Tracker) CycleStats() models.CycleStats {
	return read(tracker, func() models.CycleStats { return services.CalculateCycleStats(tracker.periods) })
}

func (tracker *Tracker) PeriodCorrelation() services.PeriodCorrelationReport {
	return read(tracker, func() services.PeriodCorrelationReport {
		return services.PeriodCorrelation(tracker.entries, tracker.checkIns, tracker.periods, tracker.ailmentTypes)
	})
}

// Summary totals the entries and check-ins between from and to inclusive.
func (tracker *Tracker) Summary(from string, to string) services.SummaryStats {
	return read(tracker, func() services.SummaryStats {
		checkIns := make([]models.DailyCheckIn, 0)
		for _, checkIn := range tracker.checkIns {
			if dates.InRange(checkIn.Date, from, to) {
				checkIns = append(checkIns, checkIn)
			}
		}
		return services.Summarize(services.EntriesInRange(tracker.entries, from, to), checkIns)
	})
}

func (tracker *Tracker) TimeOfDayPattern(from string, to string) []services.TimeOfDayBucket {
	return read(tracker, func() []services.TimeOfDayBucket {
		return services.TimeOfDayPattern(services.EntriesInRange(tracker.entries, from, to))
	})
}

func (tracker *Tracker) WeeklyPattern(from string, to string) []services.WeekdayBucket {
	return read(tracker, func() []services.WeekdayBucket {
		return services.WeeklyPattern(services.EntriesInRange(tracker.entries, from, to))
	})
}

func (tracker *Tracker) TopTriggers(from string, to string, limit int) []services.TriggerCount {
	return read(tracker, func() []services.TriggerCount {
		return services.TopTriggers(services.EntriesInRange(tracker.entries, from, to), tracker.triggerTypes, limit)
	})
}

func (tracker *Tracker) TriggerCorrelation(from string, to string) []services.AilmentTriggers {
	return read(tracker, func() []services.AilmentTriggers {
		return services.TriggerCorrelation(services.EntriesInRange(tracker.entries, from, to), tracker.ailmentTypes, tracker.triggerTypes)
	})
}

func (tracker *Tracker) SeverityTrend(from string, to string) []services.SeverityPoint {
	return read(tracker, func() []services.SeverityPoint { return services.SeverityTrend(tracker.entries, from, to) })
}

func (tracker *Tracker) CalendarHeatmap(year int, month time.Month) []services.HeatmapDay {
	return read(tracker, func() []services.HeatmapDay {
		return services.CalendarHeatmap(tracker.entries, tracker.periods, year, month)
	})
}

// Tiles returns the saved layout of set, or its default layout.
func (tracker *Tracker) Tiles(set TileSet) []models.TileConfig {
	return read(tracker, func() []models.TileConfig {
		return services.ResolveTiles(set.saved(tracker.settings), set.defaults())
	})
}

func (tracker *Tracker) SortedTiles(set TileSet) []models.TileConfig {
	return services.SortedTiles(tracker.Tiles(set))
}

func (tracker *Tracker) VisibleTiles(set TileSet) []models.TileConfig {
	return services.VisibleTiles(tracker.Tiles(set))
}
