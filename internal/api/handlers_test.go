package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/terraincognita07/healthlog/internal/models"
	"github.com/terraincognita07/healthlog/internal/security"
	"github.com/terraincognita07/healthlog/internal/services"
)

func TestHealthDoesNotRequireToken(t *testing.T) {
	server := newTestServer(t)

	response, err := server.app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, response.StatusCode)
}

func TestAPIRejectsMissingOrForeignTokens(t *testing.T) {
	server := newTestServer(t)

	request := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	response, err := server.app.Test(request, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, response.StatusCode)

	otherKey, err := security.SigningKey(strings.Repeat("o", security.MinSecretLength))
	require.NoError(t, err)
	foreign, err := security.IssueToken(otherKey, "test", time.Hour, time.Now())
	require.NoError(t, err)

	request = httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	request.Header.Set("Authorization", "Bearer "+foreign)
	response, err = server.app.Test(request, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, response.StatusCode)

	request = httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	request.Header.Set("Authorization", "Basic "+server.token)
	response, err = server.app.Test(request, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, response.StatusCode)
}

func TestEntryLifecycle(t *testing.T) {
	server := newTestServer(t)

	response, body := server.do(t, http.MethodPost, "/api/entries", services.EntryInput{
		Date:          "2024-03-10",
		Time:          "08:15",
		AilmentTypeID: "headache",
		Severity:      7,
		TriggerIDs:    []string{"caffeine", "caffeine", "missing"},
	})
	require.Equal(t, http.StatusCreated, response.StatusCode, string(body))
	created := decodeJSON[models.HealthEntry](t, body)
	require.Equal(t, models.MaxSeverity, created.Severity)
	require.Equal(t, []string{"caffeine", "missing"}, created.TriggerIDs)

	response, body = server.do(t, http.MethodGet, "/api/entries?from=2024-03-01&to=2024-03-31", nil)
	require.Equal(t, http.StatusOK, response.StatusCode)
	listed := decodeJSON[[]models.HealthEntryWithDetails](t, body)
	require.Len(t, listed, 1)
	require.Equal(t, "headache", listed[0].AilmentType.ID)
	require.Len(t, listed[0].Triggers, 1)

	response, body = server.do(t, http.MethodPut, "/api/entries/"+created.ID, services.EntryInput{
		Date:          "2024-03-10",
		Time:          "21:00",
		AilmentTypeID: "fatigue",
		Severity:      2,
	})
	require.Equal(t, http.StatusOK, response.StatusCode, string(body))
	require.Equal(t, "fatigue", decodeJSON[models.HealthEntry](t, body).AilmentTypeID)

	response, _ = server.do(t, http.MethodDelete, "/api/entries/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, response.StatusCode)
	require.Empty(t, server.tracker.Entries())

	response, body = server.do(t, http.MethodPut, "/api/entries/"+created.ID, services.EntryInput{
		Date: "2024-03-10", Time: "21:00", AilmentTypeID: "fatigue", Severity: 2,
	})
	require.Equal(t, http.StatusNotFound, response.StatusCode)
	require.Equal(t, "Record not found", readAPIError(t, body))
}

func TestCreateEntryDefaultsToSelectedDate(t *testing.T) {
	server := newTestServer(t)

	response, body := server.do(t, http.MethodPut, "/api/selected-date", map[string]string{"date": "2024-03-12"})
	require.Equal(t, http.StatusOK, response.StatusCode, string(body))

	response, body = server.do(t, http.MethodPost, "/api/entries", services.EntryInput{
		Time: "10:00", AilmentTypeID: "stomach", Severity: 3,
	})
	require.Equal(t, http.StatusCreated, response.StatusCode, string(body))
	require.Equal(t, "2024-03-12", decodeJSON[models.HealthEntry](t, body).Date)

	response, body = server.do(t, http.MethodGet, "/api/selected-date", nil)
	require.Equal(t, http.StatusOK, response.StatusCode)
	view := decodeJSON[dayView](t, body)
	require.Equal(t, "2024-03-12", view.Date)
	require.Len(t, view.Entries, 1)

	response, _ = server.do(t, http.MethodPut, "/api/selected-date", map[string]string{"date": "12/03/2024"})
	require.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestValidationErrorsAreBadRequests(t *testing.T) {
	server := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{name: "entry date", method: http.MethodPost, path: "/api/entries", body: services.EntryInput{Date: "2024-02-30", Time: "10:00", AilmentTypeID: "headache", Severity: 2}},
		{name: "entry time", method: http.MethodPost, path: "/api/entries", body: services.EntryInput{Date: "2024-02-03", Time: "25:00", AilmentTypeID: "headache", Severity: 2}},
		{name: "mood", method: http.MethodPut, path: "/api/check-ins/2024-03-01", body: map[string]string{"mood": "great"}},
		{name: "flow", method: http.MethodPut, path: "/api/periods/2024-03-01", body: map[string]string{"flow": "none"}},
		{name: "malformed body", method: http.MethodPost, path: "/api/entries", body: "{not json"},
		{name: "range", method: http.MethodGet, path: "/api/stats/summary?from=2024-03-10&to=2024-03-01", body: nil},
		{name: "tile set", method: http.MethodGet, path: "/api/settings/tiles/sidebar", body: nil},
		{name: "language", method: http.MethodPatch, path: "/api/settings", body: map[string]string{"language": "fr"}},
		{name: "export format", method: http.MethodGet, path: "/api/data/export?format=xml", body: nil},
	}

	for _, test := range tests {
		response, body := server.do(t, test.method, test.path, test.body)
		require.Equal(t, http.StatusBadRequest, response.StatusCode, "%s: %s", test.name, string(body))
		require.NotEmpty(t, readAPIError(t, body), test.name)
	}
}

func TestCheckInAndPeriodUpserts(t *testing.T) {
	server := newTestServer(t)

	response, body := server.do(t, http.MethodPut, "/api/check-ins/2024-03-15", map[string]string{"mood": "okay"})
	require.Equal(t, http.StatusOK, response.StatusCode, string(body))
	response, body = server.do(t, http.MethodPut, "/api/check-ins/2024-03-15", map[string]string{"mood": "good", "notes": "better"})
	require.Equal(t, http.StatusOK, response.StatusCode, string(body))
	require.Len(t, server.tracker.CheckIns(), 1)

	response, body = server.do(t, http.MethodPut, "/api/periods/2024-03-15", map[string]any{
		"flow":     "heavy",
		"symptoms": []string{"cramps", "custom:sym-1"},
	})
	require.Equal(t, http.StatusOK, response.StatusCode, string(body))
	period := decodeJSON[models.PeriodEntry](t, body)
	require.Equal(t, []models.Symptom{models.Builtin(models.SymptomCramps), models.Custom("sym-1")}, period.Symptoms)

	response, body = server.do(t, http.MethodGet, "/api/today", nil)
	require.Equal(t, http.StatusOK, response.StatusCode)
	today := decodeJSON[dayView](t, body)
	require.Equal(t, "2024-03-15", today.Date)
	require.NotNil(t, today.CheckIn)
	require.Equal(t, models.MoodGood, today.CheckIn.Mood)
	require.True(t, today.IsPeriod)

	response, _ = server.do(t, http.MethodDelete, "/api/periods/2024-03-15", nil)
	require.Equal(t, http.StatusNoContent, response.StatusCode)

	response, body = server.do(t, http.MethodGet, "/api/days/2024-03-15", nil)
	require.Equal(t, http.StatusOK, response.StatusCode)
	require.False(t, decodeJSON[dayView](t, body).IsPeriod)
}

func TestRecordDatesSurviveLaterRequests(t *testing.T) {
	server := newTestServer(t)

	periodDays := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-29"}
	for _, day := range periodDays {
		response, body := server.do(t, http.MethodPut, "/api/periods/"+day, map[string]string{"flow": "light"})
		require.Equal(t, http.StatusOK, response.StatusCode, string(body))
	}
	checkInDays := []string{"2024-01-05", "2024-01-06", "2024-01-07"}
	for _, day := range checkInDays {
		response, body := server.do(t, http.MethodPut, "/api/check-ins/"+day, map[string]string{"mood": "good"})
		require.Equal(t, http.StatusOK, response.StatusCode, string(body))
	}

	var periodDates []string
	for _, period := range server.tracker.PeriodEntries() {
		periodDates = append(periodDates, period.Date)
	}
	require.ElementsMatch(t, periodDays, periodDates)

	var checkInDates []string
	for _, checkIn := range server.tracker.CheckIns() {
		checkInDates = append(checkInDates, checkIn.Date)
	}
	require.ElementsMatch(t, checkInDays, checkInDates)

	response, body := server.do(t, http.MethodGet, "/api/periods?from=2024-01-01&to=2024-01-31", nil)
	require.Equal(t, http.StatusOK, response.StatusCode)
	require.Len(t, decodeJSON[[]models.PeriodEntry](t, body), len(periodDays))

	response, body = server.do(t, http.MethodGet, "/api/stats/cycle", nil)
	require.Equal(t, http.StatusOK, response.StatusCode)
	stats := decodeJSON[cycleResponse](t, body)
	require.Equal(t, 2, stats.TotalCyclesTracked)
	require.NotNil(t, stats.LastPeriodStart)
	require.Equal(t, "2024-01-29", *stats.LastPeriodStart)
}

func TestDefaultTypesAreProtected(t *testing.T) {
	server := newTestServer(t)

	response, _ := server.do(t, http.MethodDelete, "/api/ailment-types/headache", nil)
	require.Equal(t, http.StatusNoContent, response.StatusCode)

	response, body := server.do(t, http.MethodPut, "/api/ailment-types/headache", services.NameInput{Name: "Renamed"})
	require.Equal(t, http.StatusOK, response.StatusCode, string(body))
	require.Equal(t, "Headache / Migraine", decodeJSON[models.AilmentType](t, body).Name)

	response, body = server.do(t, http.MethodGet, "/api/ailment-types", nil)
	require.Equal(t, http.StatusOK, response.StatusCode)
	require.Len(t, decodeJSON[[]models.AilmentType](t, body), 4)

	response, body = server.do(t, http.MethodPost, "/api/trigger-types", services.NameInput{Name: "Pollen", Icon: "noto:blossom"})
	require.Equal(t, http.StatusCreated, response.StatusCode, string(body))
	trigger := decodeJSON[models.TriggerType](t, body)
	require.Equal(t, models.TriggerCategoryOther, trigger.Category)

	response, body = server.do(t, http.MethodPost, "/api/trigger-types/"+trigger.ID+"/toggle", nil)
	require.Equal(t, http.StatusOK, response.StatusCode, string(body))
	require.False(t, decodeJSON[models.TriggerType](t, body).IsActive)

	response, _ = server.do(t, http.MethodDelete, "/api/trigger-types/"+trigger.ID, nil)
	require.Equal(t, http.StatusNoContent, response.StatusCode)

	response, _ = server.do(t, http.MethodPost, "/api/custom-symptoms/unknown/toggle", nil)
	require.Equal(t, http.StatusNotFound, response.StatusCode)
}

func TestSettingsAndTiles(t *testing.T) {
	server := newTestServer(t)

	response, body := server.do(t, http.MethodPatch, "/api/settings", map[string]any{
		"language":               "zh-HK",
		"customName":             "  Amy ",
		"hasCompletedOnboarding": true,
	})
	require.Equal(t, http.StatusOK, response.StatusCode, string(body))
	view := decodeJSON[settingsView](t, body)
	require.Equal(t, models.LanguageZhHK, view.Language)
	require.Equal(t, "Amy", view.CustomName)
	require.True(t, view.HasCompletedOnboarding)
	require.Equal(t, "Amy 嘅健康追蹤", view.Title)
	require.Len(t, view.TileConfig, len(models.DefaultTileOrder()))

	response, body = server.do(t, http.MethodPost, "/api/settings/tiles/home/toggle/mood", nil)
	require.Equal(t, http.StatusOK, response.StatusCode, string(body))
	tiles := decodeJSON[tilesView](t, body)
	require.Len(t, tiles.Visible, len(models.DefaultTileOrder())-1)

	response, body = server.do(t, http.MethodPost, "/api/settings/tiles/stats/reorder", reorderPayload{Order: []models.TileID{models.StatsTileHeatmap}})
	require.Equal(t, http.StatusOK, response.StatusCode, string(body))
	tiles = decodeJSON[tilesView](t, body)
	require.Equal(t, models.StatsTileHeatmap, tiles.Tiles[0].ID)
	require.Len(t, tiles.Tiles, len(models.DefaultStatsTileOrder()))

	response, body = server.do(t, http.MethodPost, "/api/settings/tiles/home/toggle/unknown", nil)
	require.Equal(t, http.StatusBadRequest, response.StatusCode, string(body))

	response, body = server.do(t, http.MethodDelete, "/api/settings/tiles/home", nil)
	require.Equal(t, http.StatusOK, response.StatusCode)
	require.Len(t, decodeJSON[tilesView](t, body).Visible, len(models.DefaultTileOrder()))
}

func TestErrorsFollowRequestLanguage(t *testing.T) {
	server := newTestServer(t)

	response, body := server.do(t, http.MethodDelete, "/api/nowhere?lang=zh-HK", nil)
	require.Equal(t, http.StatusNotFound, response.StatusCode)
	require.Equal(t, "搵唔到記錄", readAPIError(t, body))
}
