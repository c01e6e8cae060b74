package state

import (
	"context"
	"fmt"

	"github.com/terraincognita07/healthlog/internal/models"
)

// ClearUserData deletes entries, check-ins, period entries and custom
// symptoms. Types and settings stay.
func (tracker *Tracker) ClearUserData(ctx context.Context) error {
	return tracker.write(ctx, func() error {
		if err := tracker.store.ClearUserData(ctx); err != nil {
			return deleteFailed(err)
		}
		tracker.entries = []models.HealthEntry{}
		tracker.checkIns = []models.DailyCheckIn{}
		tracker.periods = []models.PeriodEntry{}
		tracker.customSymptoms = []models.CustomPeriodSymptom{}
		return nil
	})
}

// ResetAll wipes the store back to its seeded state and reloads.
func (tracker *Tracker) ResetAll(ctx context.Context) error {
	return tracker.write(ctx, func() error {
		if err := tracker.store.Reset(ctx); err != nil {
			return deleteFailed(err)
		}
		tracker.phase = PhaseUninitialized
		return tracker.ensureReady(ctx)
	})
}

// Export returns a copy of every collection.
func (tracker *Tracker) Export(ctx context.Context) (models.Snapshot, error) {
	var snapshot models.Snapshot
	err := tracker.write(ctx, func() error {
		settings := tracker.settings.Clone()
		snapshot = models.Snapshot{
			Version:        models.SnapshotVersion,
			ExportedAt:     tracker.timestamp(),
			AilmentTypes:   append([]models.AilmentType{}, tracker.ailmentTypes...),
			TriggerTypes:   append([]models.TriggerType{}, tracker.triggerTypes...),
			HealthEntries:  cloneEntries(tracker.entries),
			DailyCheckIns:  append([]models.DailyCheckIn{}, tracker.checkIns...),
			PeriodEntries:  clonePeriods(tracker.periods),
			CustomSymptoms: append([]models.CustomPeriodSymptom{}, tracker.customSymptoms...),
			Settings:       &settings,
		}
		return nil
	})
	return snapshot, err
}

// Import replaces everything with snapshot. Missing defaults are seeded
// again afterwards.
func (tracker *Tracker) Import(ctx context.Context, snapshot models.Snapshot) error {
	return tracker.write(ctx, func() error {
		if err := tracker.store.ReplaceAll(ctx, snapshot); err != nil {
			return saveFailed(err)
		}
		tracker.phase = PhaseUninitialized
		if err := tracker.ensureReady(ctx); err != nil {
			return fmt.Errorf("reload after import: %w", err)
		}
		tracker.logger.Info("imported snapshot",
			"version", snapshot.Version,
			"entries", len(snapshot.HealthEntries),
			"periods", len(snapshot.PeriodEntries),
		)
		return nil
	})
}

func cloneEntries(entries []models.HealthEntry) []models.HealthEntry {
	cloned := make([]models.HealthEntry, 0, len(entries))
	for _, entry := range entries {
		cloned = append(cloned, entry.Clone())
	}
	return cloned
}

func clonePeriods(periods []models.PeriodEntry) []models.PeriodEntry {
	cloned := make([]models.PeriodEntry, 0, len(periods))
	for _, period := range periods {
		cloned = append(cloned, period.Clone())
	}
	return cloned
}
