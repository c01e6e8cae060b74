package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/terraincognita07/healthlog/internal/dates"
	"github.com/terraincognita07/healthlog/internal/models"
)

const (
	MaxNotesLength = 2000
	MaxNameLength  = 80
)

var (
	ErrInvalidDate     = dates.ErrInvalidDate
	ErrInvalidTime     = errors.New("invalid time")
	ErrInvalidSeverity = errors.New("invalid severity")
	ErrInvalidMood     = errors.New("invalid mood")
	ErrInvalidFlow     = errors.New("invalid flow")
	ErrInvalidCategory = errors.New("invalid trigger category")
	ErrInvalidName     = errors.New("invalid name")
	ErrMissingAilment  = errors.New("missing ailment type")
	ErrInvalidLanguage = errors.New("invalid language")
	ErrInvalidTheme    = errors.New("invalid theme")
	ErrUnknownTile     = errors.New("unknown tile")
)

type EntryInput struct {
	Date          string   `json:"date"`
	Time          string   `json:"time"`
	AilmentTypeID string   `json:"ailmentTypeId"`
	Severity      int      `json:"severity"`
	TriggerIDs    []string `json:"triggerIds"`
	Notes         string   `json:"notes"`
}

type PeriodInput struct {
	Date     string           `json:"date"`
	Flow     models.Flow      `json:"flow"`
	Symptoms []models.Symptom `json:"symptoms"`
	Notes    string           `json:"notes"`
}

type NameInput struct {
	Name     string                 `json:"name"`
	NameZh   string                 `json:"nameZh"`
	Icon     string                 `json:"icon"`
	Category models.TriggerCategory `json:"category,omitempty"`
}

// NormalizeEntryInput validates the date, time and ailment of an entry,
// clamps its severity, drops duplicate or blank trigger ids and trims notes.
func NormalizeEntryInput(input EntryInput) (EntryInput, error) {
	input.Date = strings.TrimSpace(input.Date)
	if !dates.Valid(input.Date) {
		return input, fmt.Errorf("%w: %q", ErrInvalidDate, input.Date)
	}
	input.Time = strings.TrimSpace(input.Time)
	hour, minute, err := dates.ParseClock(input.Time)
	if err != nil {
		return input, fmt.Errorf("%w: %q", ErrInvalidTime, input.Time)
	}
	input.Time = fmt.Sprintf("%02d:%02d", hour, minute)

	input.AilmentTypeID = strings.TrimSpace(input.AilmentTypeID)
	if input.AilmentTypeID == "" {
		return input, ErrMissingAilment
	}
	input.Severity = int(models.ClampSeverity(input.Severity))
	input.TriggerIDs = uniqueStrings(trimAll(input.TriggerIDs))
	input.Notes = TrimNotes(input.Notes)
	return input, nil
}

// NormalizePeriodInput validates the date and flow and drops empty or
// repeated symptoms.
func NormalizePeriodInput(input PeriodInput) (PeriodInput, error) {
	input.Date = strings.TrimSpace(input.Date)
	if !dates.Valid(input.Date) {
		return input, fmt.Errorf("%w: %q", ErrInvalidDate, input.Date)
	}
	if !input.Flow.Valid() {
		return input, fmt.Errorf("%w: %q", ErrInvalidFlow, input.Flow)
	}

	seen := make(map[models.Symptom]bool, len(input.Symptoms))
	symptoms := make([]models.Symptom, 0, len(input.Symptoms))
	for _, symptom := range input.Symptoms {
		if symptom.IsZero() || seen[symptom] {
			continue
		}
		seen[symptom] = true
		symptoms = append(symptoms, symptom)
	}
	input.Symptoms = symptoms
	input.Notes = TrimNotes(input.Notes)
	return input, nil
}

// NormalizeNameInput trims the names and falls back to the English name when
// no Chinese name is given. Category is only checked when set.
func NormalizeNameInput(input NameInput) (NameInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.NameZh = strings.TrimSpace(input.NameZh)
	input.Icon = strings.TrimSpace(input.Icon)
	if input.Name == "" || utf8.RuneCountInString(input.Name) > MaxNameLength {
		return input, fmt.Errorf("%w: %q", ErrInvalidName, input.Name)
	}
	if utf8.RuneCountInString(input.NameZh) > MaxNameLength {
		return input, fmt.Errorf("%w: %q", ErrInvalidName, input.NameZh)
	}
	if input.NameZh == "" {
		input.NameZh = input.Name
	}
	if input.Category != "" && !input.Category.Valid() {
		return input, fmt.Errorf("%w: %q", ErrInvalidCategory, input.Category)
	}
	return input, nil
}

// TrimNotes cuts notes to MaxNotesLength characters.
func TrimNotes(value string) string {
	value = strings.TrimSpace(value)
	if utf8.RuneCountInString(value) <= MaxNotesLength {
		return value
	}
	return string([]rune(value)[:MaxNotesLength])
}

func trimAll(values []string) []string {
	trimmed := make([]string, 0, len(values))
	for _, value := range values {
		trimmed = append(trimmed, strings.TrimSpace(value))
	}
	return trimmed
}
