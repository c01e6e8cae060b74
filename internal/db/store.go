package db

import (
	"context"
	"fmt"
	"time"

	"github.com/terraincognita07/healthlog/internal/models"
	"gorm.io/gorm"
)

// Store groups the tracker collections over one database handle.
type Store struct {
	database *gorm.DB
	now      func() time.Time
}

func NewStore(database *gorm.DB) *Store {
	return &Store{database: database, now: func() time.Time { return time.Now().UTC() }}
}

func (store *Store) AilmentTypes() Collection[models.AilmentType] {
	return NewTable[models.AilmentType](store.database, "ailment type")
}

func (store *Store) TriggerTypes() Collection[models.TriggerType] {
	return NewTable[models.TriggerType](store.database, "trigger type")
}

func (store *Store) HealthEntries() Collection[models.HealthEntry] {
	return NewTable[models.HealthEntry](store.database, "health entry")
}

func (store *Store) DailyCheckIns() Collection[models.DailyCheckIn] {
	return NewTable[models.DailyCheckIn](store.database, "daily check-in")
}

func (store *Store) PeriodEntries() Collection[models.PeriodEntry] {
	return NewTable[models.PeriodEntry](store.database, "period entry")
}

func (store *Store) CustomSymptoms() Collection[models.CustomPeriodSymptom] {
	return NewTable[models.CustomPeriodSymptom](store.database, "custom symptom")
}

func (store *Store) Settings() Collection[models.AppSettings] {
	return NewTable[models.AppSettings](store.database, "settings")
}

// Transaction runs fn against a Store bound to one transaction. Any error
// rolls back every write made through it.
func (store *Store) Transaction(ctx context.Context, fn func(*Store) error) error {
	return store.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{database: tx, now: store.now})
	})
}

// Seed writes the default ailments, triggers and settings when the database
// has none.
func (store *Store) Seed(ctx context.Context) error {
	return store.Transaction(ctx, func(tx *Store) error {
		return tx.seed(ctx)
	})
}

func (store *Store) seed(ctx context.Context) error {
	now := store.now()

	count, err := store.AilmentTypes().Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if count == 0 {
		if err := store.AilmentTypes().PutBatch(ctx, models.DefaultAilmentTypes(now)); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		if err := store.TriggerTypes().PutBatch(ctx, models.DefaultTriggerTypes(now)); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	_, found, err := store.Settings().Get(ctx, models.SettingsID)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if !found {
		settings := models.DefaultSettings(now)
		if err := store.Settings().Add(ctx, &settings); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	return nil
}

// ClearUserData removes logged data and keeps types and settings.
func (store *Store) ClearUserData(ctx context.Context) error {
	return store.Transaction(ctx, func(tx *Store) error {
		return tx.clearUserData(ctx)
	})
}

func (store *Store) clearUserData(ctx context.Context) error {
	clears := []func(context.Context) error{
		store.HealthEntries().Clear,
		store.DailyCheckIns().Clear,
		store.PeriodEntries().Clear,
		store.CustomSymptoms().Clear,
	}
	for _, clear := range clears {
		if err := clear(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (store *Store) clearAll(ctx context.Context) error {
	if err := store.clearUserData(ctx); err != nil {
		return err
	}
	clears := []func(context.Context) error{
		store.AilmentTypes().Clear,
		store.TriggerTypes().Clear,
		store.Settings().Clear,
	}
	for _, clear := range clears {
		if err := clear(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Reset wipes every collection and reseeds the defaults.
func (store *Store) Reset(ctx context.Context) error {
	return store.Transaction(ctx, func(tx *Store) error {
		if err := tx.clearAll(ctx); err != nil {
			return err
		}
		return tx.seed(ctx)
	})
}

// ReplaceAll swaps the whole database content for snapshot. A snapshot
// without settings gets the default settings.
func (store *Store) ReplaceAll(ctx context.Context, snapshot models.Snapshot) error {
	return store.Transaction(ctx, func(tx *Store) error {
		if err := tx.clearAll(ctx); err != nil {
			return err
		}
		if err := tx.AilmentTypes().PutBatch(ctx, snapshot.AilmentTypes); err != nil {
			return err
		}
		if err := tx.TriggerTypes().PutBatch(ctx, snapshot.TriggerTypes); err != nil {
			return err
		}
		if err := tx.HealthEntries().PutBatch(ctx, snapshot.HealthEntries); err != nil {
			return err
		}
		if err := tx.DailyCheckIns().PutBatch(ctx, snapshot.DailyCheckIns); err != nil {
			return err
		}
		if err := tx.PeriodEntries().PutBatch(ctx, snapshot.PeriodEntries); err != nil {
			return err
		}
		if err := tx.CustomSymptoms().PutBatch(ctx, snapshot.CustomSymptoms); err != nil {
			return err
		}

		settings := models.DefaultSettings(tx.now())
		if snapshot.Settings != nil {
			settings = snapshot.Settings.Clone()
			settings.ID = models.SettingsID
		}
		return tx.Settings().Put(ctx, &settings)
	})
}
