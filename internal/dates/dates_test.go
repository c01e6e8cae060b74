package dates

import (
	"errors"
	"testing"
	"time"
)

func TestAddDays(t *testing.T) {
	tests := []struct {
		day    string
		offset int
		want   string
	}{
		{day: "2024-01-29", offset: 28, want: "2024-02-26"},
		{day: "2024-02-28", offset: 1, want: "2024-02-29"},
		{day: "2023-02-28", offset: 1, want: "2023-03-01"},
		{day: "2024-12-31", offset: 1, want: "2025-01-01"},
		{day: "2024-03-01", offset: -1, want: "2024-02-29"},
		{day: "2024-03-10", offset: 0, want: "2024-03-10"},
	}

	for _, testCase := range tests {
		got, err := AddDays(testCase.day, testCase.offset)
		if err != nil {
			t.Fatalf("AddDays(%q, %d) unexpected error: %v", testCase.day, testCase.offset, err)
		}
		if got != testCase.want {
			t.Fatalf("AddDays(%q, %d) = %q, want %q", testCase.day, testCase.offset, got, testCase.want)
		}
	}
}

func TestAddDaysRejectsMalformedInput(t *testing.T) {
	if _, err := AddDays("2024-13-01", 1); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestDaysBetween(t *testing.T) {
	got, err := DaysBetween("2024-01-01", "2024-01-29")
	if err != nil {
		t.Fatalf("DaysBetween() unexpected error: %v", err)
	}
	if got != 28 {
		t.Fatalf("expected 28 days, got %d", got)
	}

	got, err = DaysBetween("2024-03-31", "2024-03-01")
	if err != nil {
		t.Fatalf("DaysBetween() unexpected error: %v", err)
	}
	if got != -30 {
		t.Fatalf("expected -30 days, got %d", got)
	}
}

func TestMonthRangeAndDatesInMonth(t *testing.T) {
	start, end := MonthRange(2024, time.February)
	if start != "2024-02-01" || end != "2024-02-29" {
		t.Fatalf("unexpected leap February range %s..%s", start, end)
	}

	days := DatesInMonth(2023, time.February)
	if len(days) != 28 {
		t.Fatalf("expected 28 days in Feb 2023, got %d", len(days))
	}
	if days[0] != "2023-02-01" || days[27] != "2023-02-28" {
		t.Fatalf("unexpected boundaries %s..%s", days[0], days[27])
	}
}

func TestWeekdayAndMonthYear(t *testing.T) {
	weekday, err := Weekday("2024-01-29")
	if err != nil {
		t.Fatalf("Weekday() unexpected error: %v", err)
	}
	if weekday != time.Monday {
		t.Fatalf("expected Monday, got %s", weekday)
	}

	year, month, err := MonthYear("2025-11-26")
	if err != nil {
		t.Fatalf("MonthYear() unexpected error: %v", err)
	}
	if year != 2025 || month != time.November {
		t.Fatalf("unexpected month/year %d-%d", year, month)
	}
}

func TestInRangeIsInclusive(t *testing.T) {
	if !InRange("2024-01-01", "2024-01-01", "2024-01-31") {
		t.Fatal("expected start boundary to be included")
	}
	if !InRange("2024-01-31", "2024-01-01", "2024-01-31") {
		t.Fatal("expected end boundary to be included")
	}
	if InRange("2024-02-01", "2024-01-01", "2024-01-31") {
		t.Fatal("expected day after range to be excluded")
	}
}

func TestDayAtUsesLocation(t *testing.T) {
	location := time.FixedZone("UTC+9", 9*60*60)
	instant := time.Date(2024, time.May, 31, 20, 0, 0, 0, time.UTC)
	if got := DayAt(instant, location); got != "2024-06-01" {
		t.Fatalf("expected next-day date in UTC+9, got %s", got)
	}
}

func TestParseClock(t *testing.T) {
	hour, minute, err := ParseClock("07:45")
	if err != nil || hour != 7 || minute != 45 {
		t.Fatalf("unexpected parse result %d:%d err=%v", hour, minute, err)
	}
	if _, _, err := ParseClock("7pm"); err == nil {
		t.Fatal("expected error for malformed clock value")
	}
}
