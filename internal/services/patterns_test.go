package services

import (
	"testing"
	"time"

	"github.com/terraincognita07/healthlog/internal/models"
)

func TestTimeOfDayOf(t *testing.T) {
	tests := []struct {
		clock    string
		expected TimeOfDay
	}{
		{clock: "04:59", expected: TimeOfDayNight},
		{clock: "05:00", expected: TimeOfDayMorning},
		{clock: "11:59", expected: TimeOfDayMorning},
		{clock: "12:00", expected: TimeOfDayAfternoon},
		{clock: "17:00", expected: TimeOfDayEvening},
		{clock: "20:59", expected: TimeOfDayEvening},
		{clock: "21:00", expected: TimeOfDayNight},
		{clock: "00:30", expected: TimeOfDayNight},
	}

	for _, tt := range tests {
		got, ok := TimeOfDayOf(tt.clock)
		if !ok || got != tt.expected {
			t.Fatalf("TimeOfDayOf(%q) = %q, %v; want %q", tt.clock, got, ok, tt.expected)
		}
	}
	if _, ok := TimeOfDayOf("25:00"); ok {
		t.Fatal("expected invalid clock to be rejected")
	}
}

func TestSummarize(t *testing.T) {
	entries := []models.HealthEntry{
		entry("1", "2024-01-01", "09:00", "headache", 2, "caffeine"),
		entry("2", "2024-01-02", "09:00", "headache", 4, "caffeine", "stress"),
	}
	checkIns := []models.DailyCheckIn{{Date: "2024-01-01", Mood: models.MoodBad}, {Date: "2024-01-02", Mood: models.MoodBad}}

	stats := Summarize(entries, checkIns)
	if stats.TotalEntries != 2 || stats.AverageSeverity != 3 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if stats.AilmentCounts["headache"] != 2 || stats.TriggerCounts["caffeine"] != 2 || stats.TriggerCounts["stress"] != 1 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.MoodCounts[models.MoodBad] != 2 || stats.MoodCounts[models.MoodGood] != 0 {
		t.Fatalf("unexpected mood counts: %v", stats.MoodCounts)
	}
	if _, ok := stats.MoodCounts[models.MoodOkay]; !ok {
		t.Fatal("expected every mood to be present")
	}
}

func TestWeeklyAndTimeOfDayPatterns(t *testing.T) {
	entries := []models.HealthEntry{
		entry("1", "2024-01-07", "08:00", "a", 2), // Sunday
		entry("2", "2024-01-07", "13:00", "a", 4),
		entry("3", "2024-01-13", "22:00", "a", 5), // Saturday
	}

	weekly := WeeklyPattern(entries)
	if len(weekly) != 7 || weekly[0].Weekday != time.Sunday {
		t.Fatalf("unexpected weekly layout: %+v", weekly)
	}
	if weekly[0].Count != 2 || weekly[0].AverageSeverity != 3 || weekly[6].Count != 1 {
		t.Fatalf("unexpected weekly counts: %+v", weekly)
	}

	daily := TimeOfDayPattern(entries)
	if daily[0].Count != 1 || daily[1].Count != 1 || daily[2].Count != 0 || daily[3].Count != 1 {
		t.Fatalf("unexpected time of day buckets: %+v", daily)
	}
}

func TestTopTriggersAndCorrelation(t *testing.T) {
	triggers := []models.TriggerType{{ID: "caffeine"}, {ID: "stress"}, {ID: "sleep"}}
	ailments := []models.AilmentType{{ID: "headache"}, {ID: "stomach"}}
	entries := []models.HealthEntry{
		entry("1", "2024-01-01", "09:00", "headache", 2, "stress"),
		entry("2", "2024-01-02", "09:00", "headache", 2, "stress", "caffeine"),
		entry("3", "2024-01-03", "09:00", "stomach", 2, "caffeine", "gone"),
		entry("4", "2024-01-04", "09:00", "headache", 2, "stress", "stress"),
	}

	top := TopTriggers(entries, triggers, 1)
	if len(top) != 1 || top[0].Trigger.ID != "stress" || top[0].Count != 3 {
		t.Fatalf("unexpected top triggers: %+v", top)
	}

	rows := TriggerCorrelation(entries, ailments, triggers)
	if len(rows) != 2 || rows[0].Entries != 3 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
	if rows[0].Triggers[0].Trigger.ID != "stress" || rows[0].Triggers[0].Share != 1 {
		t.Fatalf("unexpected headache shares: %+v", rows[0].Triggers)
	}
	if len(rows[1].Triggers) != 1 || rows[1].Triggers[0].Trigger.ID != "caffeine" {
		t.Fatalf("unknown triggers must be dropped: %+v", rows[1].Triggers)
	}
}

func TestSeverityTrendCoversEveryDay(t *testing.T) {
	entries := []models.HealthEntry{
		entry("1", "2024-02-28", "09:00", "a", 2),
		entry("2", "2024-02-28", "10:00", "a", 5),
		entry("3", "2024-03-01", "10:00", "a", 1),
	}

	trend := SeverityTrend(entries, "2024-02-28", "2024-03-01")
	if len(trend) != 3 {
		t.Fatalf("expected 3 points across leap day, got %d", len(trend))
	}
	if trend[1].Date != "2024-02-29" || trend[1].Count != 0 {
		t.Fatalf("expected empty leap day, got %+v", trend[1])
	}
	if trend[0].MaxSeverity != 5 || trend[0].AverageSeverity != 3.5 {
		t.Fatalf("unexpected first point: %+v", trend[0])
	}
	if empty := SeverityTrend(entries, "2024-03-02", "2024-03-01"); len(empty) != 0 {
		t.Fatalf("expected no points for reversed range, got %d", len(empty))
	}
}

func TestCalendarHeatmap(t *testing.T) {
	entries := []models.HealthEntry{entry("1", "2024-02-10", "09:00", "a", 3)}

	cells := CalendarHeatmap(entries, periodsOn("2024-02-11"), 2024, time.February)
	if len(cells) != 29 {
		t.Fatalf("expected 29 cells, got %d", len(cells))
	}
	if cells[9].Count != 1 || cells[9].MaxSeverity != 3 || !cells[10].Period {
		t.Fatalf("unexpected cells: %+v %+v", cells[9], cells[10])
	}
}
