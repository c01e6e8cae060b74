package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/terraincognita07/healthlog/internal/models"
)

func TestSanitizeDropsAndRepairsRecords(t *testing.T) {
	snapshot := models.Snapshot{
		Version: models.SnapshotVersion,
		AilmentTypes: []models.AilmentType{
			{ID: "headache", Name: " Headache "},
			{ID: "", Name: "No id"},
		},
		TriggerTypes: []models.TriggerType{
			{ID: "t1", Name: "Pollen", Category: "weird"},
		},
		HealthEntries: []models.HealthEntry{
			{ID: "e1", Date: "2024-02-30", Time: "08:00", AilmentTypeID: "headache", Severity: 3},
			{ID: "e2", Date: "2024-03-01", Time: "7:05", AilmentTypeID: "headache", Severity: 9, Notes: strings.Repeat("x", 2100)},
			{ID: "e3", Date: "2024-03-02", Time: "noon", AilmentTypeID: "headache", Severity: 0},
			{ID: "e4", Date: "2024-03-02", Time: "10:00", AilmentTypeID: "", Severity: 2},
		},
		DailyCheckIns: []models.DailyCheckIn{
			{ID: "c1", Date: "2024-03-01", Mood: models.MoodGood},
			{ID: "c2", Date: "2024-03-01", Mood: models.MoodBad},
			{ID: "c3", Date: "2024-03-02", Mood: "meh"},
		},
		PeriodEntries: []models.PeriodEntry{
			{ID: "p1", Date: "2024-03-03", Flow: models.FlowLight},
			{ID: "p2", Date: "bad", Flow: models.FlowLight},
			{ID: "p3", Date: "2024-03-04", Flow: "gushing"},
		},
		Settings: &models.AppSettings{ID: "other", Language: "fr", Theme: "neon"},
	}

	clean, report := Sanitize(snapshot)

	require.Len(t, clean.AilmentTypes, 1)
	require.Equal(t, "Headache", clean.AilmentTypes[0].Name)
	require.Equal(t, models.TriggerCategoryOther, clean.TriggerTypes[0].Category)

	require.Len(t, clean.HealthEntries, 2)
	require.Equal(t, "07:05", clean.HealthEntries[0].Time)
	require.Equal(t, models.MaxSeverity, clean.HealthEntries[0].Severity)
	require.Len(t, []rune(clean.HealthEntries[0].Notes), 2000)
	require.Equal(t, "00:00", clean.HealthEntries[1].Time)
	require.Equal(t, models.MinSeverity, clean.HealthEntries[1].Severity)

	require.Len(t, clean.DailyCheckIns, 1)
	require.Equal(t, "c2", clean.DailyCheckIns[0].ID)
	require.Len(t, clean.PeriodEntries, 1)

	require.Equal(t, models.SettingsID, clean.Settings.ID)
	require.Equal(t, models.LanguageEN, clean.Settings.Language)
	require.Equal(t, models.ThemeLight, clean.Settings.Theme)

	require.Equal(t, map[string]int{
		"ailmentTypes":  1,
		"healthEntries": 2,
		"dailyCheckIns": 1,
		"periodEntries": 2,
	}, report.Skipped)
	require.Equal(t, 6, report.Total())
}

func TestSanitizeKeepsLastRecordPerID(t *testing.T) {
	snapshot := models.Snapshot{
		HealthEntries: []models.HealthEntry{
			{ID: "e1", Date: "2024-03-01", Time: "08:00", AilmentTypeID: "a", Severity: 1},
			{ID: "e2", Date: "2024-03-01", Time: "09:00", AilmentTypeID: "a", Severity: 2},
			{ID: "e1", Date: "2024-03-05", Time: "10:00", AilmentTypeID: "a", Severity: 3},
		},
		PeriodEntries: []models.PeriodEntry{
			{ID: "p1", Date: "2024-03-03", Flow: models.FlowLight},
			{ID: "p2", Date: "2024-03-03", Flow: models.FlowHeavy},
		},
	}

	clean, report := Sanitize(snapshot)

	require.Zero(t, report.Total())
	require.Len(t, clean.HealthEntries, 2)
	require.Equal(t, "e2", clean.HealthEntries[0].ID)
	require.Equal(t, "2024-03-05", clean.HealthEntries[1].Date)
	require.Len(t, clean.PeriodEntries, 1)
	require.Equal(t, models.FlowHeavy, clean.PeriodEntries[0].Flow)
	require.Nil(t, clean.Settings)
}
