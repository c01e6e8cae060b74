package export

import (
	"fmt"
	"strings"

	"github.com/terraincognita07/healthlog/internal/dates"
	"github.com/terraincognita07/healthlog/internal/models"
	"github.com/terraincognita07/healthlog/internal/services"
)

// Report counts the records Sanitize dropped, per collection.
type Report struct {
	Skipped map[string]int `json:"skipped"`
}

func (report Report) Total() int {
	total := 0
	for _, count := range report.Skipped {
		total += count
	}
	return total
}

func (report *Report) skip(collection string) {
	if report.Skipped == nil {
		report.Skipped = make(map[string]int)
	}
	report.Skipped[collection]++
}

// Sanitize drops records that cannot be stored and repairs the ones that can.
// Records with a malformed date or without an id are dropped, severities are
// clamped, and of several records sharing an id (or a date, for check-ins
// and period entries) the last one wins.
func Sanitize(snapshot models.Snapshot) (models.Snapshot, Report) {
	var report Report
	clean := models.Snapshot{
		Version:    snapshot.Version,
		ExportedAt: snapshot.ExportedAt,
	}

	for _, ailment := range snapshot.AilmentTypes {
		ailment.Name = strings.TrimSpace(ailment.Name)
		if strings.TrimSpace(ailment.ID) == "" || ailment.Name == "" {
			report.skip("ailmentTypes")
			continue
		}
		clean.AilmentTypes = append(clean.AilmentTypes, ailment)
	}
	clean.AilmentTypes = lastByKey(clean.AilmentTypes, func(ailment models.AilmentType) string { return ailment.ID })

	for _, trigger := range snapshot.TriggerTypes {
		trigger.Name = strings.TrimSpace(trigger.Name)
		if strings.TrimSpace(trigger.ID) == "" || trigger.Name == "" {
			report.skip("triggerTypes")
			continue
		}
		if !trigger.Category.Valid() {
			trigger.Category = models.TriggerCategoryOther
		}
		clean.TriggerTypes = append(clean.TriggerTypes, trigger)
	}
	clean.TriggerTypes = lastByKey(clean.TriggerTypes, func(trigger models.TriggerType) string { return trigger.ID })

	for _, entry := range snapshot.HealthEntries {
		if strings.TrimSpace(entry.ID) == "" || !dates.Valid(entry.Date) || strings.TrimSpace(entry.AilmentTypeID) == "" {
			report.skip("healthEntries")
			continue
		}
		hour, minute, err := dates.ParseClock(entry.Time)
		if err != nil {
			hour, minute = 0, 0
		}
		entry.Time = fmt.Sprintf("%02d:%02d", hour, minute)
		entry.Severity = models.ClampSeverity(int(entry.Severity))
		entry.Notes = services.TrimNotes(entry.Notes)
		clean.HealthEntries = append(clean.HealthEntries, entry.Clone())
	}
	clean.HealthEntries = lastByKey(clean.HealthEntries, func(entry models.HealthEntry) string { return entry.ID })

	for _, checkIn := range snapshot.DailyCheckIns {
		if strings.TrimSpace(checkIn.ID) == "" || !dates.Valid(checkIn.Date) || !checkIn.Mood.Valid() {
			report.skip("dailyCheckIns")
			continue
		}
		checkIn.Notes = services.TrimNotes(checkIn.Notes)
		clean.DailyCheckIns = append(clean.DailyCheckIns, checkIn)
	}
	clean.DailyCheckIns = lastByKey(clean.DailyCheckIns, func(checkIn models.DailyCheckIn) string { return checkIn.Date })
	clean.DailyCheckIns = lastByKey(clean.DailyCheckIns, func(checkIn models.DailyCheckIn) string { return checkIn.ID })

	for _, period := range snapshot.PeriodEntries {
		if strings.TrimSpace(period.ID) == "" || !dates.Valid(period.Date) || !period.Flow.Valid() {
			report.skip("periodEntries")
			continue
		}
		symptoms := make([]models.Symptom, 0, len(period.Symptoms))
		for _, symptom := range period.Symptoms {
			if !symptom.IsZero() {
				symptoms = append(symptoms, symptom)
			}
		}
		period.Symptoms = symptoms
		period.Notes = services.TrimNotes(period.Notes)
		clean.PeriodEntries = append(clean.PeriodEntries, period)
	}
	clean.PeriodEntries = lastByKey(clean.PeriodEntries, func(period models.PeriodEntry) string { return period.Date })
	clean.PeriodEntries = lastByKey(clean.PeriodEntries, func(period models.PeriodEntry) string { return period.ID })

	for _, symptom := range snapshot.CustomSymptoms {
		symptom.Name = strings.TrimSpace(symptom.Name)
		if strings.TrimSpace(symptom.ID) == "" || symptom.Name == "" {
			report.skip("customSymptoms")
			continue
		}
		clean.CustomSymptoms = append(clean.CustomSymptoms, symptom)
	}
	clean.CustomSymptoms = lastByKey(clean.CustomSymptoms, func(symptom models.CustomPeriodSymptom) string { return symptom.ID })

	if snapshot.Settings != nil {
		settings := snapshot.Settings.Clone()
		settings.ID = models.SettingsID
		if !settings.Language.Valid() {
			settings.Language = models.LanguageEN
		}
		if !settings.Theme.Valid() {
			settings.Theme = models.ThemeLight
		}
		clean.Settings = &settings
	}
	return clean, report
}

// lastByKey keeps, for every key, the last record carrying it, in the
// position of that last occurrence.
func lastByKey[T any](records []T, key func(T) string) []T {
	last := make(map[string]int, len(records))
	for index, record := range records {
		last[key(record)] = index
	}
	kept := make([]T, 0, len(last))
	for index, record := range records {
		if last[key(record)] == index {
			kept = append(kept, record)
		}
	}
	return kept
}
