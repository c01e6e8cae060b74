package services

import (
	"sort"

	"github.com/terraincognita07/healthlog/internal/models"
)

// AilmentUsageCounts maps ailment type ids to the number of entries that
// reference them.
func AilmentUsageCounts(entries []models.HealthEntry) map[string]int {
	counts := make(map[string]int)
	for _, entry := range entries {
		counts[entry.AilmentTypeID]++
	}
	return counts
}

func TriggerUsageCounts(entries []models.HealthEntry) map[string]int {
	counts := make(map[string]int)
	for _, entry := range entries {
		for _, triggerID := range uniqueStrings(entry.TriggerIDs) {
			counts[triggerID]++
		}
	}
	return counts
}

// SymptomUsageCounts maps symptom text forms to the number of period entries
// that list them.
func SymptomUsageCounts(periods []models.PeriodEntry) map[string]int {
	counts := make(map[string]int)
	for _, period := range periods {
		seen := make(map[string]bool, len(period.Symptoms))
		for _, symptom := range period.Symptoms {
			key := symptom.String()
			if symptom.IsZero() || seen[key] {
				continue
			}
			seen[key] = true
			counts[key]++
		}
	}
	return counts
}

// ActiveAilmentTypes returns the active ailment types, most used first. Equal
// usage keeps the input order.
func ActiveAilmentTypes(ailments []models.AilmentType, entries []models.HealthEntry) []models.AilmentType {
	active := make([]models.AilmentType, 0, len(ailments))
	for _, ailment := range ailments {
		if ailment.IsActive {
			active = append(active, ailment)
		}
	}
	counts := AilmentUsageCounts(entries)
	sort.SliceStable(active, func(i, j int) bool {
		return counts[active[i].ID] > counts[active[j].ID]
	})
	return active
}

func ActiveTriggerTypes(triggers []models.TriggerType, entries []models.HealthEntry) []models.TriggerType {
	active := make([]models.TriggerType, 0, len(triggers))
	for _, trigger := range triggers {
		if trigger.IsActive {
			active = append(active, trigger)
		}
	}
	counts := TriggerUsageCounts(entries)
	sort.SliceStable(active, func(i, j int) bool {
		return counts[active[i].ID] > counts[active[j].ID]
	})
	return active
}

func ActiveCustomSymptoms(symptoms []models.CustomPeriodSymptom, periods []models.PeriodEntry) []models.CustomPeriodSymptom {
	active := make([]models.CustomPeriodSymptom, 0, len(symptoms))
	for _, symptom := range symptoms {
		if symptom.IsActive {
			active = append(active, symptom)
		}
	}
	counts := SymptomUsageCounts(periods)
	sort.SliceStable(active, func(i, j int) bool {
		return counts[models.Custom(active[i].ID).String()] > counts[models.Custom(active[j].ID).String()]
	})
	return active
}

// SortedBuiltinSymptoms orders the built-in period symptoms by usage.
func SortedBuiltinSymptoms(periods []models.PeriodEntry) []models.BuiltinSymptom {
	symptoms := models.BuiltinSymptoms()
	counts := SymptomUsageCounts(periods)
	sort.SliceStable(symptoms, func(i, j int) bool {
		return counts[string(symptoms[i])] > counts[string(symptoms[j])]
	})
	return symptoms
}

func EntriesCountByDate(entries []models.HealthEntry) map[string]int {
	counts := make(map[string]int)
	for _, entry := range entries {
		counts[entry.Date]++
	}
	return counts
}

// MaxSeverityByDate maps each date with entries to its highest severity.
func MaxSeverityByDate(entries []models.HealthEntry) map[string]models.Severity {
	maxima := make(map[string]models.Severity)
	for _, entry := range entries {
		if entry.Severity > maxima[entry.Date] {
			maxima[entry.Date] = entry.Severity
		}
	}
	return maxima
}

// EntriesInRange keeps the entries dated between from and to, both inclusive.
func EntriesInRange(entries []models.HealthEntry, from string, to string) []models.HealthEntry {
	filtered := make([]models.HealthEntry, 0)
	for _, entry := range entries {
		if entry.Date >= from && entry.Date <= to {
			filtered = append(filtered, entry.Clone())
		}
	}
	return filtered
}

func PeriodEntriesInRange(periods []models.PeriodEntry, from string, to string) []models.PeriodEntry {
	filtered := make([]models.PeriodEntry, 0)
	for _, period := range periods {
		if period.Date >= from && period.Date <= to {
			filtered = append(filtered, period.Clone())
		}
	}
	return filtered
}

// EntriesForDate returns the entries logged on date, latest time first.
func EntriesForDate(entries []models.HealthEntry, date string) []models.HealthEntry {
	filtered := EntriesInRange(entries, date, date)
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Time > filtered[j].Time
	})
	return filtered
}

func CheckInForDate(checkIns []models.DailyCheckIn, date string) (models.DailyCheckIn, bool) {
	for _, checkIn := range checkIns {
		if checkIn.Date == date {
			return checkIn, true
		}
	}
	return models.DailyCheckIn{}, false
}

func PeriodEntryForDate(periods []models.PeriodEntry, date string) (models.PeriodEntry, bool) {
	for _, period := range periods {
		if period.Date == date {
			return period.Clone(), true
		}
	}
	return models.PeriodEntry{}, false
}

// PeriodDates is the set of dates that have a period entry.
func PeriodDates(periods []models.PeriodEntry) map[string]bool {
	set := make(map[string]bool, len(periods))
	for _, period := range periods {
		set[period.Date] = true
	}
	return set
}

// WithDetails resolves the ailment and triggers of each entry. Unknown
// trigger ids are dropped. An entry whose ailment no longer exists is shown
// under the first ailment type, or skipped when there are none.
func WithDetails(entries []models.HealthEntry, ailments []models.AilmentType, triggers []models.TriggerType) []models.HealthEntryWithDetails {
	ailmentsByID := make(map[string]models.AilmentType, len(ailments))
	for _, ailment := range ailments {
		ailmentsByID[ailment.ID] = ailment
	}
	triggersByID := make(map[string]models.TriggerType, len(triggers))
	for _, trigger := range triggers {
		triggersByID[trigger.ID] = trigger
	}

	detailed := make([]models.HealthEntryWithDetails, 0, len(entries))
	for _, entry := range entries {
		ailment, ok := ailmentsByID[entry.AilmentTypeID]
		if !ok {
			if len(ailments) == 0 {
				continue
			}
			ailment = ailments[0]
		}

		resolved := make([]models.TriggerType, 0, len(entry.TriggerIDs))
		for _, triggerID := range entry.TriggerIDs {
			if trigger, ok := triggersByID[triggerID]; ok {
				resolved = append(resolved, trigger)
			}
		}

		detailed = append(detailed, models.HealthEntryWithDetails{
			HealthEntry: entry.Clone(),
			AilmentType: ailment,
			Triggers:    resolved,
		})
	}
	return detailed
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	unique := make([]string, 0, len(values))
	for _, value := range values {
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		unique = append(unique, value)
	}
	return unique
}
