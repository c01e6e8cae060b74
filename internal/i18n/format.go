package i18n

import (
	"fmt"
	"time"

	"github.com/terraincognita07/healthlog/internal/dates"
	"github.com/terraincognita07/healthlog/internal/models"
)

var zhWeekdays = [...]string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"}

// FormatDate renders an ISO date in long form: "Friday, March 15, 2024" or
// "2024年3月15日星期五". Unparseable input is returned unchanged.
func FormatDate(day string, lang models.Language) string {
	parsed, err := dates.Parse(day)
	if err != nil {
		return day
	}
	if lang == models.LanguageZhHK {
		return fmt.Sprintf("%d年%d月%d日%s", parsed.Year(), int(parsed.Month()), parsed.Day(), zhWeekdays[parsed.Weekday()])
	}
	return parsed.Format("Monday, January 2, 2006")
}

func FormatDateShort(day string, lang models.Language) string {
	parsed, err := dates.Parse(day)
	if err != nil {
		return day
	}
	if lang == models.LanguageZhHK {
		return fmt.Sprintf("%d月%d日", int(parsed.Month()), parsed.Day())
	}
	return parsed.Format("Jan 2")
}

// FormatTime renders an HH:MM clock as 12-hour for English and 24-hour for
// Chinese.
func FormatTime(clock string, lang models.Language) string {
	hour, minute, err := dates.ParseClock(clock)
	if err != nil {
		return clock
	}
	if lang == models.LanguageZhHK {
		return fmt.Sprintf("%02d:%02d", hour, minute)
	}
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, minute, suffix)
}

func WeekdayName(day string, lang models.Language) string {
	weekday, err := dates.Weekday(day)
	if err != nil {
		return day
	}
	if lang == models.LanguageZhHK {
		return zhWeekdays[weekday]
	}
	return weekday.String()
}

func MonthName(month time.Month, lang models.Language) string {
	if month < time.January || month > time.December {
		return ""
	}
	if lang == models.LanguageZhHK {
		return fmt.Sprintf("%d月", int(month))
	}
	return month.String()
}
