package services

import (
	"testing"

	"github.com/terraincognita07/healthlog/internal/models"
)

func periodsOn(days ...string) []models.PeriodEntry {
	periods := make([]models.PeriodEntry, 0, len(days))
	for _, day := range days {
		periods = append(periods, models.PeriodEntry{ID: "p-" + day, Date: day, Flow: models.FlowMedium})
	}
	return periods
}

func derefDay(t *testing.T, value *string) string {
	t.Helper()
	if value == nil {
		t.Fatal("expected date, got nil")
	}
	return *value
}

func TestCalculateCycleStatsEmptyUsesDefaults(t *testing.T) {
	stats := CalculateCycleStats(nil)

	if stats.AverageCycleLength != 28 || stats.AveragePeriodLength != 5 || stats.TotalCyclesTracked != 0 {
		t.Fatalf("unexpected defaults: %+v", stats)
	}
	if stats.LastPeriodStart != nil || stats.PredictedNextStart != nil {
		t.Fatalf("expected nil dates, got %+v", stats)
	}
}

func TestCalculateCycleStatsSegmentsRuns(t *testing.T) {
	stats := CalculateCycleStats(periodsOn("2024-01-29", "2024-01-02", "2024-01-01", "2024-01-03"))

	if stats.TotalCyclesTracked != 2 {
		t.Fatalf("expected 2 cycles, got %d", stats.TotalCyclesTracked)
	}
	if got := derefDay(t, stats.LastPeriodStart); got != "2024-01-29" {
		t.Fatalf("expected last start 2024-01-29, got %s", got)
	}
	if stats.AverageCycleLength != 28 {
		t.Fatalf("expected average cycle 28, got %d", stats.AverageCycleLength)
	}
	if got := derefDay(t, stats.PredictedNextStart); got != "2024-02-26" {
		t.Fatalf("expected predicted start 2024-02-26, got %s", got)
	}
	// runs of 3 and 1 days
	if stats.AveragePeriodLength != 2 {
		t.Fatalf("expected average period 2, got %d", stats.AveragePeriodLength)
	}
}

func TestCalculateCycleStatsToleratesTwoDayGaps(t *testing.T) {
	stats := CalculateCycleStats(periodsOn("2024-03-01", "2024-03-03", "2024-03-05"))

	if stats.TotalCyclesTracked != 1 {
		t.Fatalf("expected one run, got %d", stats.TotalCyclesTracked)
	}
	if stats.AveragePeriodLength != 3 {
		t.Fatalf("expected period length 3, got %d", stats.AveragePeriodLength)
	}
}

func TestCalculateCycleStatsExcludesImplausibleCycles(t *testing.T) {
	stats := CalculateCycleStats(periodsOn("2024-01-01", "2024-01-11"))

	if stats.TotalCyclesTracked != 2 {
		t.Fatalf("expected 2 starts, got %d", stats.TotalCyclesTracked)
	}
	if stats.AverageCycleLength != 28 {
		t.Fatalf("expected fallback cycle length 28, got %d", stats.AverageCycleLength)
	}
	if got := derefDay(t, stats.PredictedNextStart); got != "2024-02-08" {
		t.Fatalf("expected prediction from fallback length, got %s", got)
	}
}

func TestCalculateCycleStatsRoundsAverages(t *testing.T) {
	// cycles of 27 and 30 days average to 28.5
	stats := CalculateCycleStats(periodsOn("2024-01-01", "2024-01-28", "2024-02-27"))

	if stats.AverageCycleLength != 29 {
		t.Fatalf("expected 28.5 to round to 29, got %d", stats.AverageCycleLength)
	}
	if got := derefDay(t, stats.PredictedNextStart); got != "2024-03-27" {
		t.Fatalf("unexpected prediction %s", got)
	}
}

func TestCalculateCycleStatsSkipsMalformedDates(t *testing.T) {
	periods := periodsOn("2024-05-01", "not-a-date", "2024-05-02")

	stats := CalculateCycleStats(periods)
	if stats.TotalCyclesTracked != 1 || stats.AveragePeriodLength != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	onlyBad := CalculateCycleStats(periodsOn("2024-13-45"))
	if onlyBad.TotalCyclesTracked != 0 || onlyBad.LastPeriodStart != nil {
		t.Fatalf("expected defaults for malformed-only input, got %+v", onlyBad)
	}
}

func TestPeriodStarts(t *testing.T) {
	starts := PeriodStarts([]string{"2025-01-01", "2025-01-02", "2025-01-03", "2025-01-29", "2025-01-30", "2025-02-26"})

	expected := []string{"2025-01-01", "2025-01-29", "2025-02-26"}
	if len(starts) != len(expected) {
		t.Fatalf("expected %d starts, got %v", len(expected), starts)
	}
	for index := range expected {
		if starts[index] != expected[index] {
			t.Fatalf("expected start %s, got %s", expected[index], starts[index])
		}
	}
}
