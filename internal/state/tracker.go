// Package state holds the in-memory snapshot of the tracker and applies every
// change to the record store before it becomes visible.
package state

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/terraincognita07/healthlog/internal/dates"
	"github.com/terraincognita07/healthlog/internal/db"
	"github.com/terraincognita07/healthlog/internal/models"
	"golang.org/x/sync/errgroup"
)

var (
	ErrLoadFailed   = errors.New("failed to load data")
	ErrSaveFailed   = errors.New("failed to save")
	ErrDeleteFailed = errors.New("failed to delete")
	ErrNotFound     = errors.New("not found")
)

// Phase is the initialization state of a Tracker.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseLoading
	PhaseReady
)

func (phase Phase) String() string {
	switch phase {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	default:
		return "uninitialized"
	}
}

// Store is the record store the tracker persists to.
type Store interface {
	AilmentTypes() db.Collection[models.AilmentType]
	TriggerTypes() db.Collection[models.TriggerType]
	HealthEntries() db.Collection[models.HealthEntry]
	DailyCheckIns() db.Collection[models.DailyCheckIn]
	PeriodEntries() db.Collection[models.PeriodEntry]
	CustomSymptoms() db.Collection[models.CustomPeriodSymptom]
	Settings() db.Collection[models.AppSettings]
	Seed(ctx context.Context) error
	ClearUserData(ctx context.Context) error
	Reset(ctx context.Context) error
	ReplaceAll(ctx context.Context, snapshot models.Snapshot) error
}

type Option func(*Tracker)

func WithClock(now func() time.Time) Option {
	return func(tracker *Tracker) { tracker.now = now }
}

// WithLocation sets the zone that decides which calendar day "today" is.
func WithLocation(location *time.Location) Option {
	return func(tracker *Tracker) { tracker.location = location }
}

func WithIDGenerator(newID func() string) Option {
	return func(tracker *Tracker) { tracker.newID = newID }
}

func WithLogger(logger *slog.Logger) Option {
	return func(tracker *Tracker) { tracker.logger = logger }
}

func WithLanguage(language models.Language) Option {
	return func(tracker *Tracker) { tracker.fallbackLanguage = language }
}

// Tracker is the application state. Mutations write to the store first and
// replace the in-memory collections only after the write succeeded. Slices
// handed out are copies.
type Tracker struct {
	mu    sync.RWMutex
	store Store

	now              func() time.Time
	location         *time.Location
	newID            func() string
	logger           *slog.Logger
	fallbackLanguage models.Language

	phase          Phase
	ailmentTypes   []models.AilmentType
	triggerTypes   []models.TriggerType
	entries        []models.HealthEntry
	checkIns       []models.DailyCheckIn
	periods        []models.PeriodEntry
	customSymptoms []models.CustomPeriodSymptom
	settings       models.AppSettings
	selectedDate   string
}

func New(store Store, options ...Option) *Tracker {
	tracker := &Tracker{
		store:            store,
		now:              func() time.Time { return time.Now().UTC() },
		location:         time.UTC,
		newID:            db.NewID,
		logger:           slog.Default(),
		fallbackLanguage: models.LanguageEN,
	}
	for _, option := range options {
		option(tracker)
	}
	tracker.selectedDate = dates.DayAt(tracker.now(), tracker.location)
	tracker.settings = tracker.defaultSettings()
	return tracker
}

func (tracker *Tracker) Phase() Phase {
	tracker.mu.RLock()
	defer tracker.mu.RUnlock()
	return tracker.phase
}

// Initialize seeds the store when it is empty and loads every collection.
// Calling it again once ready does nothing.
func (tracker *Tracker) Initialize(ctx context.Context) error {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	return tracker.ensureReady(ctx)
}

// Reload replaces the snapshot with the store content.
func (tracker *Tracker) Reload(ctx context.Context) error {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	tracker.phase = PhaseUninitialized
	return tracker.ensureReady(ctx)
}

func (tracker *Tracker) ensureReady(ctx context.Context) error {
	if tracker.phase == PhaseReady {
		return nil
	}

	tracker.phase = PhaseLoading
	if err := tracker.store.Seed(ctx); err != nil {
		tracker.phase = PhaseUninitialized
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	if err := tracker.load(ctx); err != nil {
		tracker.phase = PhaseUninitialized
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	tracker.phase = PhaseReady
	tracker.logger.Debug("tracker ready",
		"entries", len(tracker.entries),
		"check_ins", len(tracker.checkIns),
		"periods", len(tracker.periods),
	)
	return nil
}

func (tracker *Tracker) load(ctx context.Context) error {
	var (
		ailments       []models.AilmentType
		triggers       []models.TriggerType
		entries        []models.HealthEntry
		checkIns       []models.DailyCheckIn
		periods        []models.PeriodEntry
		customSymptoms []models.CustomPeriodSymptom
		settings       models.AppSettings
		found          bool
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		ailments, err = tracker.store.AilmentTypes().List(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		triggers, err = tracker.store.TriggerTypes().List(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		entries, err = tracker.store.HealthEntries().List(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		checkIns, err = tracker.store.DailyCheckIns().List(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		periods, err = tracker.store.PeriodEntries().List(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		customSymptoms, err = tracker.store.CustomSymptoms().List(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		settings, found, err = tracker.store.Settings().Get(groupCtx, models.SettingsID)
		return err
	})
	if err := group.Wait(); err != nil {
		return err
	}

	if !found {
		settings = tracker.defaultSettings()
	}
	tracker.ailmentTypes = ailments
	tracker.triggerTypes = triggers
	tracker.entries = entries
	tracker.checkIns = checkIns
	tracker.periods = periods
	tracker.customSymptoms = customSymptoms
	tracker.settings = settings
	return nil
}

func (tracker *Tracker) defaultSettings() models.AppSettings {
	settings := models.DefaultSettings(tracker.now())
	if tracker.fallbackLanguage.Valid() {
		settings.Language = tracker.fallbackLanguage
	}
	return settings
}

// write runs a mutation with the lock held and the snapshot loaded.
func (tracker *Tracker) write(ctx context.Context, mutate func() error) error {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	if err := tracker.ensureReady(ctx); err != nil {
		return err
	}
	return mutate()
}

func (tracker *Tracker) timestamp() time.Time {
	return tracker.now().UTC()
}

func saveFailed(err error) error {
	if errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return fmt.Errorf("%w: %w", ErrSaveFailed, err)
}

func deleteFailed(err error) error {
	return fmt.Errorf("%w: %w", ErrDeleteFailed, err)
}

// replaceByID returns a copy of records with the record matching id swapped
// for updated.
func replaceByID[T any](records []T, id string, idOf func(T) string, updated T) []T {
	replaced := make([]T, 0, len(records))
	for _, record := range records {
		if idOf(record) == id {
			record = updated
		}
		replaced = append(replaced, record)
	}
	return replaced
}

func removeByID[T any](records []T, id string, idOf func(T) string) []T {
	kept := make([]T, 0, len(records))
	for _, record := range records {
		if idOf(record) != id {
			kept = append(kept, record)
		}
	}
	return kept
}

func appendCopy[T any](records []T, record T) []T {
	appended := make([]T, 0, len(records)+1)
	appended = append(appended, records...)
	return append(appended, record)
}

func findByID[T any](records []T, id string, idOf func(T) string) (T, bool) {
	for _, record := range records {
		if idOf(record) == id {
			return record, true
		}
	}
	var zero T
	return zero, false
}
