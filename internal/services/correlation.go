package services

import "github.com/terraincognita07/healthlog/internal/models"

const (
	CorrelationNone              CorrelationVerdict = "none"
	CorrelationOnlyDuringPeriod  CorrelationVerdict = "onlyDuringPeriod"
	CorrelationOnlyOutsidePeriod CorrelationVerdict = "onlyOutsidePeriod"
	CorrelationMoreDuringPeriod  CorrelationVerdict = "moreDuringPeriod"
	CorrelationLessDuringPeriod  CorrelationVerdict = "lessDuringPeriod"
	CorrelationSimilar           CorrelationVerdict = "similar"
)

// Frequency ratios (period over non-period) at or beyond which an ailment is
// reported as more or less frequent during the period.
const (
	moreDuringPeriodRatio = 1.25
	lessDuringPeriodRatio = 0.8
)

type CorrelationVerdict string

// CorrelationSide describes entries on one side of the period split.
// Frequency is entries per tracked day on that side.
type CorrelationSide struct {
	Days            int     `json:"days"`
	Entries         int     `json:"entries"`
	Frequency       float64 `json:"frequency"`
	AverageSeverity float64 `json:"averageSeverity"`
}

type Correlation struct {
	During  CorrelationSide    `json:"during"`
	Outside CorrelationSide    `json:"outside"`
	Ratio   float64            `json:"ratio,omitempty"`
	Verdict CorrelationVerdict `json:"verdict"`
}

type AilmentPeriodCorrelation struct {
	AilmentType models.AilmentType `json:"ailmentType"`
	Correlation
}

type PeriodCorrelationReport struct {
	Overall  Correlation                `json:"overall"`
	Ailments []AilmentPeriodCorrelation `json:"ailments"`
}

// PeriodCorrelation compares entries logged on period days with entries on
// the other tracked days. A day is tracked when it has an entry, a check-in
// or a period entry.
func PeriodCorrelation(entries []models.HealthEntry, checkIns []models.DailyCheckIn, periods []models.PeriodEntry, ailments []models.AilmentType) PeriodCorrelationReport {
	periodDays := PeriodDates(periods)
	tracked := make(map[string]bool, len(entries)+len(checkIns)+len(periods))
	for _, entry := range entries {
		tracked[entry.Date] = true
	}
	for _, checkIn := range checkIns {
		tracked[checkIn.Date] = true
	}
	for day := range periodDays {
		tracked[day] = true
	}
	duringDays := len(periodDays)
	outsideDays := len(tracked) - duringDays

	report := PeriodCorrelationReport{
		Overall:  correlate(entries, periodDays, duringDays, outsideDays),
		Ailments: make([]AilmentPeriodCorrelation, 0),
	}

	byAilment := make(map[string][]models.HealthEntry)
	for _, entry := range entries {
		byAilment[entry.AilmentTypeID] = append(byAilment[entry.AilmentTypeID], entry)
	}
	for _, ailment := range ailments {
		ailmentEntries := byAilment[ailment.ID]
		if len(ailmentEntries) == 0 {
			continue
		}
		report.Ailments = append(report.Ailments, AilmentPeriodCorrelation{
			AilmentType: ailment,
			Correlation: correlate(ailmentEntries, periodDays, duringDays, outsideDays),
		})
	}
	return report
}

func correlate(entries []models.HealthEntry, periodDays map[string]bool, duringDays int, outsideDays int) Correlation {
	var during, outside []models.HealthEntry
	for _, entry := range entries {
		if periodDays[entry.Date] {
			during = append(during, entry)
		} else {
			outside = append(outside, entry)
		}
	}

	result := Correlation{
		During:  correlationSide(during, duringDays),
		Outside: correlationSide(outside, outsideDays),
	}
	switch {
	case len(during) == 0 && len(outside) == 0:
		result.Verdict = CorrelationNone
	case len(outside) == 0:
		result.Verdict = CorrelationOnlyDuringPeriod
	case len(during) == 0:
		result.Verdict = CorrelationOnlyOutsidePeriod
	default:
		result.Ratio = result.During.Frequency / result.Outside.Frequency
		switch {
		case result.Ratio >= moreDuringPeriodRatio:
			result.Verdict = CorrelationMoreDuringPeriod
		case result.Ratio <= lessDuringPeriodRatio:
			result.Verdict = CorrelationLessDuringPeriod
		default:
			result.Verdict = CorrelationSimilar
		}
	}
	return result
}

func correlationSide(entries []models.HealthEntry, days int) CorrelationSide {
	side := CorrelationSide{Days: days, Entries: len(entries), AverageSeverity: averageSeverity(entries)}
	if days > 0 {
		side.Frequency = float64(len(entries)) / float64(days)
	}
	return side
}

func averageSeverity(entries []models.HealthEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	total := 0
	for _, entry := range entries {
		total += int(entry.Severity)
	}
	return float64(total) / float64(len(entries))
}
