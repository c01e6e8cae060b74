// Package dates does calendar arithmetic on ISO "YYYY-MM-DD" day strings.
//
// All arithmetic happens on UTC midnights so daylight-saving transitions
// never shift a day count.
package dates

import (
	"errors"
	"fmt"
	"time"
)

const (
	Layout     = "2006-01-02"
	TimeLayout = "15:04"
)

var ErrInvalidDate = errors.New("invalid date")

func Parse(day string) (time.Time, error) {
	parsed, err := time.ParseInLocation(Layout, day, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, day)
	}
	return parsed, nil
}

func Valid(day string) bool {
	_, err := Parse(day)
	return err == nil
}

func Format(value time.Time) string {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(Layout)
}

// Today returns the current calendar day at location.
func Today(location *time.Location) string {
	return DayAt(time.Now(), location)
}

func DayAt(value time.Time, location *time.Location) string {
	if location == nil {
		location = time.UTC
	}
	return Format(value.In(location))
}

// CurrentTime returns the wall clock at location as "HH:mm".
func CurrentTime(location *time.Location) string {
	if location == nil {
		location = time.UTC
	}
	return time.Now().In(location).Format(TimeLayout)
}

func IsToday(day string, location *time.Location) bool {
	return day == Today(location)
}

// AddDays moves day by offset calendar days. Month and year boundaries roll
// over the way a wall calendar does.
func AddDays(day string, offset int) (string, error) {
	parsed, err := Parse(day)
	if err != nil {
		return "", err
	}
	return parsed.AddDate(0, 0, offset).Format(Layout), nil
}

// DaysBetween returns to minus from in whole days; negative when to is
// earlier.
func DaysBetween(from string, to string) (int, error) {
	start, err := Parse(from)
	if err != nil {
		return 0, err
	}
	end, err := Parse(to)
	if err != nil {
		return 0, err
	}
	return int(end.Sub(start).Hours() / 24), nil
}

// MonthRange returns the first and last day of a month. month is 1-based.
func MonthRange(year int, month time.Month) (string, string) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start.Format(Layout), end.Format(Layout)
}

func DatesInMonth(year int, month time.Month) []string {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := make([]string, 0, 31)
	for cursor := start; cursor.Month() == start.Month(); cursor = cursor.AddDate(0, 0, 1) {
		days = append(days, cursor.Format(Layout))
	}
	return days
}

func MonthYear(day string) (int, time.Month, error) {
	parsed, err := Parse(day)
	if err != nil {
		return 0, 0, err
	}
	return parsed.Year(), parsed.Month(), nil
}

func Weekday(day string) (time.Weekday, error) {
	parsed, err := Parse(day)
	if err != nil {
		return 0, err
	}
	return parsed.Weekday(), nil
}

// InRange reports whether start <= day <= end. ISO day strings sort the same
// way as the days they name, so plain string comparison is enough.
func InRange(day string, start string, end string) bool {
	return day >= start && day <= end
}

// ParseClock parses "HH:mm" (seconds are tolerated) and returns hour and
// minute.
func ParseClock(value string) (int, int, error) {
	for _, layout := range []string{TimeLayout, "15:04:05"} {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed.Hour(), parsed.Minute(), nil
		}
	}
	return 0, 0, fmt.Errorf("invalid time %q", value)
}
