package services

import (
	"sort"
	"time"

	"github.com/terraincognita07/healthlog/internal/dates"
	"github.com/terraincognita07/healthlog/internal/models"
)

const (
	TimeOfDayMorning   TimeOfDay = "morning"
	TimeOfDayAfternoon TimeOfDay = "afternoon"
	TimeOfDayEvening   TimeOfDay = "evening"
	TimeOfDayNight     TimeOfDay = "night"
)

// MaxTrendDays bounds the range SeverityTrend walks.
const MaxTrendDays = 366

type TimeOfDay string

type SummaryStats struct {
	TotalEntries    int                 `json:"totalEntries"`
	AilmentCounts   map[string]int      `json:"ailmentCounts"`
	TriggerCounts   map[string]int      `json:"triggerCounts"`
	AverageSeverity float64             `json:"averageSeverity"`
	MoodCounts      map[models.Mood]int `json:"moodCounts"`
}

type PatternBucket struct {
	Count           int     `json:"count"`
	AverageSeverity float64 `json:"averageSeverity"`
}

type TimeOfDayBucket struct {
	Period TimeOfDay `json:"period"`
	PatternBucket
}

type WeekdayBucket struct {
	Weekday time.Weekday `json:"weekday"`
	PatternBucket
}

type TriggerCount struct {
	Trigger models.TriggerType `json:"trigger"`
	Count   int                `json:"count"`
}

type TriggerShare struct {
	Trigger models.TriggerType `json:"trigger"`
	Count   int                `json:"count"`
	Share   float64            `json:"share"`
}

type AilmentTriggers struct {
	AilmentType models.AilmentType `json:"ailmentType"`
	Entries     int                `json:"entries"`
	Triggers    []TriggerShare     `json:"triggers"`
}

type SeverityPoint struct {
	Date            string          `json:"date"`
	Count           int             `json:"count"`
	AverageSeverity float64         `json:"averageSeverity"`
	MaxSeverity     models.Severity `json:"maxSeverity"`
}

type HeatmapDay struct {
	Date        string          `json:"date"`
	Count       int             `json:"count"`
	MaxSeverity models.Severity `json:"maxSeverity"`
	Period      bool            `json:"period"`
}

// Summarize totals the entries and check-ins of a period.
func Summarize(entries []models.HealthEntry, checkIns []models.DailyCheckIn) SummaryStats {
	stats := SummaryStats{
		TotalEntries:    len(entries),
		AilmentCounts:   AilmentUsageCounts(entries),
		TriggerCounts:   TriggerUsageCounts(entries),
		AverageSeverity: averageSeverity(entries),
		MoodCounts:      make(map[models.Mood]int, 3),
	}
	for _, mood := range models.Moods() {
		stats.MoodCounts[mood] = 0
	}
	for _, checkIn := range checkIns {
		if checkIn.Mood.Valid() {
			stats.MoodCounts[checkIn.Mood]++
		}
	}
	return stats
}

// TimeOfDayOf buckets an HH:mm clock: morning from 05:00, afternoon from
// 12:00, evening from 17:00 and night from 21:00.
func TimeOfDayOf(clock string) (TimeOfDay, bool) {
	hour, _, err := dates.ParseClock(clock)
	if err != nil {
		return "", false
	}
	switch {
	case hour >= 5 && hour < 12:
		return TimeOfDayMorning, true
	case hour >= 12 && hour < 17:
		return TimeOfDayAfternoon, true
	case hour >= 17 && hour < 21:
		return TimeOfDayEvening, true
	default:
		return TimeOfDayNight, true
	}
}

func TimeOfDayPattern(entries []models.HealthEntry) []TimeOfDayBucket {
	grouped := make(map[TimeOfDay][]models.HealthEntry, 4)
	for _, entry := range entries {
		if period, ok := TimeOfDayOf(entry.Time); ok {
			grouped[period] = append(grouped[period], entry)
		}
	}

	periods := []TimeOfDay{TimeOfDayMorning, TimeOfDayAfternoon, TimeOfDayEvening, TimeOfDayNight}
	buckets := make([]TimeOfDayBucket, 0, len(periods))
	for _, period := range periods {
		buckets = append(buckets, TimeOfDayBucket{Period: period, PatternBucket: bucketOf(grouped[period])})
	}
	return buckets
}

// WeeklyPattern groups entries by weekday, Sunday first.
func WeeklyPattern(entries []models.HealthEntry) []WeekdayBucket {
	grouped := make(map[time.Weekday][]models.HealthEntry, 7)
	for _, entry := range entries {
		if weekday, err := dates.Weekday(entry.Date); err == nil {
			grouped[weekday] = append(grouped[weekday], entry)
		}
	}

	buckets := make([]WeekdayBucket, 0, 7)
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		buckets = append(buckets, WeekdayBucket{Weekday: weekday, PatternBucket: bucketOf(grouped[weekday])})
	}
	return buckets
}

// TopTriggers ranks the known triggers by how many entries cite them. A limit
// of zero or less returns all of them.
func TopTriggers(entries []models.HealthEntry, triggers []models.TriggerType, limit int) []TriggerCount {
	counts := TriggerUsageCounts(entries)
	ranked := make([]TriggerCount, 0)
	for _, trigger := range triggers {
		if count := counts[trigger.ID]; count > 0 {
			ranked = append(ranked, TriggerCount{Trigger: trigger, Count: count})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// TriggerCorrelation lists, per ailment with entries, the triggers cited
// alongside it and the share of that ailment's entries citing each.
func TriggerCorrelation(entries []models.HealthEntry, ailments []models.AilmentType, triggers []models.TriggerType) []AilmentTriggers {
	byAilment := make(map[string][]models.HealthEntry)
	for _, entry := range entries {
		byAilment[entry.AilmentTypeID] = append(byAilment[entry.AilmentTypeID], entry)
	}

	rows := make([]AilmentTriggers, 0)
	for _, ailment := range ailments {
		ailmentEntries := byAilment[ailment.ID]
		if len(ailmentEntries) == 0 {
			continue
		}

		counts := TriggerUsageCounts(ailmentEntries)
		shares := make([]TriggerShare, 0)
		for _, trigger := range triggers {
			if count := counts[trigger.ID]; count > 0 {
				shares = append(shares, TriggerShare{
					Trigger: trigger,
					Count:   count,
					Share:   float64(count) / float64(len(ailmentEntries)),
				})
			}
		}
		sort.SliceStable(shares, func(i, j int) bool {
			return shares[i].Count > shares[j].Count
		})

		rows = append(rows, AilmentTriggers{AilmentType: ailment, Entries: len(ailmentEntries), Triggers: shares})
	}
	return rows
}

// SeverityTrend has one point per day from from to to inclusive. Days without
// entries have zero values. At most MaxTrendDays points are returned.
func SeverityTrend(entries []models.HealthEntry, from string, to string) []SeverityPoint {
	grouped := make(map[string][]models.HealthEntry)
	for _, entry := range EntriesInRange(entries, from, to) {
		grouped[entry.Date] = append(grouped[entry.Date], entry)
	}

	points := make([]SeverityPoint, 0)
	if !dates.Valid(from) || !dates.Valid(to) {
		return points
	}
	for day := from; day <= to && len(points) < MaxTrendDays; {
		dayEntries := grouped[day]
		point := SeverityPoint{Date: day, Count: len(dayEntries), AverageSeverity: averageSeverity(dayEntries)}
		for _, entry := range dayEntries {
			if entry.Severity > point.MaxSeverity {
				point.MaxSeverity = entry.Severity
			}
		}
		points = append(points, point)

		next, err := dates.AddDays(day, 1)
		if err != nil {
			break
		}
		day = next
	}
	return points
}

// CalendarHeatmap has one cell per day of the month.
func CalendarHeatmap(entries []models.HealthEntry, periods []models.PeriodEntry, year int, month time.Month) []HeatmapDay {
	counts := EntriesCountByDate(entries)
	maxima := MaxSeverityByDate(entries)
	periodDays := PeriodDates(periods)

	days := dates.DatesInMonth(year, month)
	cells := make([]HeatmapDay, 0, len(days))
	for _, day := range days {
		cells = append(cells, HeatmapDay{
			Date:        day,
			Count:       counts[day],
			MaxSeverity: maxima[day],
			Period:      periodDays[day],
		})
	}
	return cells
}

func bucketOf(entries []models.HealthEntry) PatternBucket {
	return PatternBucket{Count: len(entries), AverageSeverity: averageSeverity(entries)}
}
