package services

import (
	"testing"

	"github.com/terraincognita07/healthlog/internal/models"
)

func TestPeriodCorrelationWithoutEntries(t *testing.T) {
	report := PeriodCorrelation(nil, nil, periodsOn("2024-01-01"), nil)

	if report.Overall.Verdict != CorrelationNone {
		t.Fatalf("expected none, got %s", report.Overall.Verdict)
	}
	if len(report.Ailments) != 0 {
		t.Fatalf("expected no ailment rows, got %d", len(report.Ailments))
	}
}

func TestPeriodCorrelationOneSided(t *testing.T) {
	ailments := []models.AilmentType{{ID: "headache"}, {ID: "stomach"}}
	entries := []models.HealthEntry{
		entry("1", "2024-01-01", "09:00", "headache", 3),
		entry("2", "2024-01-10", "09:00", "stomach", 2),
	}

	report := PeriodCorrelation(entries, nil, periodsOn("2024-01-01", "2024-01-02"), ailments)

	if len(report.Ailments) != 2 {
		t.Fatalf("expected 2 ailment rows, got %d", len(report.Ailments))
	}
	if report.Ailments[0].Verdict != CorrelationOnlyDuringPeriod {
		t.Fatalf("expected headache only during period, got %s", report.Ailments[0].Verdict)
	}
	if report.Ailments[1].Verdict != CorrelationOnlyOutsidePeriod {
		t.Fatalf("expected stomach only outside period, got %s", report.Ailments[1].Verdict)
	}
	if report.Ailments[0].Ratio != 0 {
		t.Fatalf("one-sided verdicts carry no ratio, got %f", report.Ailments[0].Ratio)
	}
}

func TestPeriodCorrelationComparesFrequencies(t *testing.T) {
	ailments := []models.AilmentType{{ID: "headache"}}
	entries := []models.HealthEntry{
		entry("1", "2024-01-01", "09:00", "headache", 4),
		entry("2", "2024-01-02", "09:00", "headache", 4),
		entry("3", "2024-01-10", "09:00", "headache", 2),
	}
	checkIns := []models.DailyCheckIn{
		{Date: "2024-01-11", Mood: models.MoodGood},
		{Date: "2024-01-12", Mood: models.MoodGood},
		{Date: "2024-01-13", Mood: models.MoodGood},
	}

	report := PeriodCorrelation(entries, checkIns, periodsOn("2024-01-01", "2024-01-02"), ailments)
	row := report.Ailments[0]

	if row.During.Days != 2 || row.Outside.Days != 4 {
		t.Fatalf("unexpected day split: during %d outside %d", row.During.Days, row.Outside.Days)
	}
	if row.During.Frequency != 1 || row.Outside.Frequency != 0.25 {
		t.Fatalf("unexpected frequencies: %+v %+v", row.During, row.Outside)
	}
	if row.Verdict != CorrelationMoreDuringPeriod {
		t.Fatalf("expected more during period, got %s", row.Verdict)
	}
	if row.During.AverageSeverity != 4 || row.Outside.AverageSeverity != 2 {
		t.Fatalf("unexpected severities: %+v %+v", row.During, row.Outside)
	}
}

func TestPeriodCorrelationSimilarAndLess(t *testing.T) {
	entries := []models.HealthEntry{
		entry("1", "2024-01-01", "09:00", "a", 1),
		entry("2", "2024-01-10", "09:00", "a", 1),
	}
	similar := PeriodCorrelation(entries, nil, periodsOn("2024-01-01"), nil)
	if similar.Overall.Verdict != CorrelationSimilar {
		t.Fatalf("expected similar, got %s", similar.Overall.Verdict)
	}

	sparse := PeriodCorrelation(entries, nil, periodsOn("2024-01-01", "2024-01-02", "2024-01-03"), nil)
	if sparse.Overall.Verdict != CorrelationLessDuringPeriod {
		t.Fatalf("expected less during period, got %s", sparse.Overall.Verdict)
	}
}
