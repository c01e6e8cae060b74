package services

import (
	"math"
	"sort"

	"github.com/terraincognita07/healthlog/internal/dates"
	"github.com/terraincognita07/healthlog/internal/models"
)

const (
	// MaxPeriodGapDays is the longest gap between two period days that still
	// counts as the same period.
	MaxPeriodGapDays = 2
	MinCycleLength   = 20
	MaxCycleLength   = 45
)

// CalculateCycleStats derives cycle and period averages from the period log.
// Entries with malformed dates are ignored.
func CalculateCycleStats(periods []models.PeriodEntry) models.CycleStats {
	stats := models.CycleStats{
		AverageCycleLength:  models.DefaultCycleLength,
		AveragePeriodLength: models.DefaultPeriodLength,
	}

	days := sortedPeriodDays(periods)
	if len(days) == 0 {
		return stats
	}

	starts := PeriodStarts(days)
	stats.TotalCyclesTracked = len(starts)

	if lengths := plausibleCycleLengths(starts); len(lengths) > 0 {
		stats.AverageCycleLength = roundedAverage(lengths)
	}
	stats.AveragePeriodLength = roundedAverage(periodLengths(days))

	lastStart := starts[len(starts)-1]
	stats.LastPeriodStart = &lastStart
	if predicted, err := dates.AddDays(lastStart, stats.AverageCycleLength); err == nil {
		stats.PredictedNextStart = &predicted
	}
	return stats
}

// PeriodStarts returns the first day of every period run in sorted days. A
// run ends when the next day is more than MaxPeriodGapDays away.
func PeriodStarts(days []string) []string {
	starts := make([]string, 0)
	for index, day := range days {
		if index == 0 || gapDays(days[index-1], day) > MaxPeriodGapDays {
			starts = append(starts, day)
		}
	}
	return starts
}

func sortedPeriodDays(periods []models.PeriodEntry) []string {
	days := make([]string, 0, len(periods))
	for _, period := range periods {
		if dates.Valid(period.Date) {
			days = append(days, period.Date)
		}
	}
	sort.Strings(days)
	return days
}

func plausibleCycleLengths(starts []string) []int {
	lengths := make([]int, 0, len(starts))
	for index := 1; index < len(starts); index++ {
		length := gapDays(starts[index-1], starts[index])
		if length >= MinCycleLength && length <= MaxCycleLength {
			lengths = append(lengths, length)
		}
	}
	return lengths
}

// periodLengths counts the logged days of each run.
func periodLengths(days []string) []int {
	lengths := make([]int, 0)
	current := 1
	for index := 1; index < len(days); index++ {
		if gapDays(days[index-1], days[index]) <= MaxPeriodGapDays {
			current++
			continue
		}
		lengths = append(lengths, current)
		current = 1
	}
	return append(lengths, current)
}

func gapDays(from string, to string) int {
	gap, err := dates.DaysBetween(from, to)
	if err != nil {
		return 0
	}
	return gap
}

func roundedAverage(values []int) int {
	if len(values) == 0 {
		return 0
	}
	total := 0
	for _, value := range values {
		total += value
	}
	return int(math.Floor(float64(total)/float64(len(values)) + 0.5))
}
