package state

import (
	"context"
	"fmt"
	"strings"

	"github.com/terraincognita07/healthlog/internal/dates"
	"github.com/terraincognita07/healthlog/internal/models"
	"github.com/terraincognita07/healthlog/internal/services"
)

func entryID(entry models.HealthEntry) string      { return entry.ID }
func checkInID(checkIn models.DailyCheckIn) string { return checkIn.ID }
func periodID(period models.PeriodEntry) string    { return period.ID }

func (tracker *Tracker) AddEntry(ctx context.Context, input services.EntryInput) (models.HealthEntry, error) {
	input, err := services.NormalizeEntryInput(input)
	if err != nil {
		return models.HealthEntry{}, err
	}

	var added models.HealthEntry
	err = tracker.write(ctx, func() error {
		now := tracker.timestamp()
		entry := models.HealthEntry{
			ID:            tracker.newID(),
			Date:          input.Date,
			Time:          input.Time,
			AilmentTypeID: input.AilmentTypeID,
			Severity:      models.Severity(input.Severity),
			TriggerIDs:    append([]string{}, input.TriggerIDs...),
			Notes:         input.Notes,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := tracker.store.HealthEntries().Add(ctx, &entry); err != nil {
			return saveFailed(err)
		}
		tracker.entries = appendCopy(tracker.entries, entry)
		added = entry.Clone()
		return nil
	})
	return added, err
}

// UpdateEntry replaces the editable fields of an entry.
func (tracker *Tracker) UpdateEntry(ctx context.Context, id string, input services.EntryInput) (models.HealthEntry, error) {
	input, err := services.NormalizeEntryInput(input)
	if err != nil {
		return models.HealthEntry{}, err
	}

	var updated models.HealthEntry
	err = tracker.write(ctx, func() error {
		if _, ok := findByID(tracker.entries, id, entryID); !ok {
			return fmt.Errorf("%w: entry %s", ErrNotFound, id)
		}
		now := tracker.timestamp()
		stored, err := tracker.store.HealthEntries().Update(ctx, id, func(entry *models.HealthEntry) {
			entry.Date = input.Date
			entry.Time = input.Time
			entry.AilmentTypeID = input.AilmentTypeID
			entry.Severity = models.Severity(input.Severity)
			entry.TriggerIDs = append([]string{}, input.TriggerIDs...)
			entry.Notes = input.Notes
			entry.UpdatedAt = now
		})
		if err != nil {
			return saveFailed(err)
		}
		tracker.entries = replaceByID(tracker.entries, id, entryID, stored)
		updated = stored.Clone()
		return nil
	})
	return updated, err
}

// DeleteEntry removes an entry. Unknown ids are ignored.
func (tracker *Tracker) DeleteEntry(ctx context.Context, id string) error {
	return tracker.write(ctx, func() error {
		if err := tracker.store.HealthEntries().Delete(ctx, id); err != nil {
			return deleteFailed(err)
		}
		tracker.entries = removeByID(tracker.entries, id, entryID)
		return nil
	})
}

// SetMood records the mood of date, replacing an earlier check-in for the
// same day.
func (tracker *Tracker) SetMood(ctx context.Context, date string, mood models.Mood, notes string) (models.DailyCheckIn, error) {
	date = strings.TrimSpace(date)
	if !dates.Valid(date) {
		return models.DailyCheckIn{}, fmt.Errorf("%w: %q", services.ErrInvalidDate, date)
	}
	if !mood.Valid() {
		return models.DailyCheckIn{}, fmt.Errorf("%w: %q", services.ErrInvalidMood, mood)
	}
	notes = services.TrimNotes(notes)

	var saved models.DailyCheckIn
	err := tracker.write(ctx, func() error {
		now := tracker.timestamp()
		if existing, ok := services.CheckInForDate(tracker.checkIns, date); ok {
			stored, err := tracker.store.DailyCheckIns().Update(ctx, existing.ID, func(checkIn *models.DailyCheckIn) {
				checkIn.Mood = mood
				checkIn.Notes = notes
				checkIn.UpdatedAt = now
			})
			if err != nil {
				return saveFailed(err)
			}
			tracker.checkIns = replaceByID(tracker.checkIns, existing.ID, checkInID, stored)
			saved = stored
			return nil
		}

		checkIn := models.DailyCheckIn{
			ID:        tracker.newID(),
			Date:      date,
			Mood:      mood,
			Notes:     notes,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tracker.store.DailyCheckIns().Add(ctx, &checkIn); err != nil {
			return saveFailed(err)
		}
		tracker.checkIns = appendCopy(tracker.checkIns, checkIn)
		saved = checkIn
		return nil
	})
	return saved, err
}

// SetPeriodEntry records the period log of a day, replacing an earlier entry
// for the same date.
func (tracker *Tracker) SetPeriodEntry(ctx context.Context, input services.PeriodInput) (models.PeriodEntry, error) {
	input, err := services.NormalizePeriodInput(input)
	if err != nil {
		return models.PeriodEntry{}, err
	}

	var saved models.PeriodEntry
	err = tracker.write(ctx, func() error {
		now := tracker.timestamp()
		if existing, ok := services.PeriodEntryForDate(tracker.periods, input.Date); ok {
			stored, err := tracker.store.PeriodEntries().Update(ctx, existing.ID, func(period *models.PeriodEntry) {
				period.Flow = input.Flow
				period.Symptoms = append([]models.Symptom{}, input.Symptoms...)
				period.Notes = input.Notes
				period.UpdatedAt = now
			})
			if err != nil {
				return saveFailed(err)
			}
			tracker.periods = replaceByID(tracker.periods, existing.ID, periodID, stored)
			saved = stored.Clone()
			return nil
		}

		period := models.PeriodEntry{
			ID:        tracker.newID(),
			Date:      input.Date,
			Flow:      input.Flow,
			Symptoms:  append([]models.Symptom{}, input.Symptoms...),
			Notes:     input.Notes,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tracker.store.PeriodEntries().Add(ctx, &period); err != nil {
			return saveFailed(err)
		}
		tracker.periods = appendCopy(tracker.periods, period)
		saved = period.Clone()
		return nil
	})
	return saved, err
}

// DeletePeriodEntry removes the period entry of date, if there is one.
func (tracker *Tracker) DeletePeriodEntry(ctx context.Context, date string) error {
	return tracker.write(ctx, func() error {
		existing, ok := services.PeriodEntryForDate(tracker.periods, date)
		if !ok {
			return nil
		}
		if err := tracker.store.PeriodEntries().Delete(ctx, existing.ID); err != nil {
			return deleteFailed(err)
		}
		tracker.periods = removeByID(tracker.periods, existing.ID, periodID)
		return nil
	})
}
