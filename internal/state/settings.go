package state

import (
	"context"
	"fmt"
	"strings"

	"github.com/terraincognita07/healthlog/internal/dates"
	"github.com/terraincognita07/healthlog/internal/models"
	"github.com/terraincognita07/healthlog/internal/services"
)

// TileSet selects the home screen or the statistics screen layout.
type TileSet int

const (
	HomeTiles TileSet = iota
	StatsTiles
)

func (set TileSet) defaults() []models.TileConfig {
	if set == StatsTiles {
		return models.DefaultStatsTileOrder()
	}
	return models.DefaultTileOrder()
}

func (set TileSet) saved(settings models.AppSettings) []models.TileConfig {
	if set == StatsTiles {
		return settings.StatsTileConfig
	}
	return settings.TileConfig
}

func (set TileSet) assign(settings *models.AppSettings, tiles []models.TileConfig) {
	if set == StatsTiles {
		settings.StatsTileConfig = tiles
		return
	}
	settings.TileConfig = tiles
}

// saveSettings writes the settings row as modified by apply. A missing row is
// created.
func (tracker *Tracker) saveSettings(ctx context.Context, apply func(*models.AppSettings) error) error {
	return tracker.write(ctx, func() error {
		next := tracker.settings.Clone()
		if err := apply(&next); err != nil {
			return err
		}
		next.ID = models.SettingsID
		next.UpdatedAt = tracker.timestamp()
		if next.CreatedAt.IsZero() {
			next.CreatedAt = next.UpdatedAt
		}
		if err := tracker.store.Settings().Put(ctx, &next); err != nil {
			return saveFailed(err)
		}
		tracker.settings = next
		return nil
	})
}

func (tracker *Tracker) SetLanguage(ctx context.Context, language models.Language) error {
	if !language.Valid() {
		return fmt.Errorf("%w: %q", services.ErrInvalidLanguage, language)
	}
	return tracker.saveSettings(ctx, func(settings *models.AppSettings) error {
		settings.Language = language
		return nil
	})
}

func (tracker *Tracker) SetTheme(ctx context.Context, theme models.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("%w: %q", services.ErrInvalidTheme, theme)
	}
	return tracker.saveSettings(ctx, func(settings *models.AppSettings) error {
		settings.Theme = theme
		return nil
	})
}

// SetCustomName stores the display name. A blank name clears it.
func (tracker *Tracker) SetCustomName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	return tracker.saveSettings(ctx, func(settings *models.AppSettings) error {
		settings.CustomName = name
		return nil
	})
}

func (tracker *Tracker) ClearCustomName(ctx context.Context) error {
	return tracker.SetCustomName(ctx, "")
}

func (tracker *Tracker) CompleteOnboarding(ctx context.Context) error {
	return tracker.saveSettings(ctx, func(settings *models.AppSettings) error {
		settings.HasCompletedOnboarding = true
		return nil
	})
}

// updateTiles saves the layout produced by change from the current one.
func (tracker *Tracker) updateTiles(ctx context.Context, set TileSet, change func([]models.TileConfig) ([]models.TileConfig, error)) error {
	return tracker.saveSettings(ctx, func(settings *models.AppSettings) error {
		tiles, err := change(services.ResolveTiles(set.saved(*settings), set.defaults()))
		if err != nil {
			return err
		}
		if tiles == nil {
			tiles = []models.TileConfig{}
		}
		set.assign(settings, tiles)
		return nil
	})
}

func (tracker *Tracker) SetTileConfig(ctx context.Context, set TileSet, tiles []models.TileConfig) error {
	return tracker.updateTiles(ctx, set, func([]models.TileConfig) ([]models.TileConfig, error) {
		return models.CloneTiles(tiles), nil
	})
}

func (tracker *Tracker) ToggleTileVisibility(ctx context.Context, set TileSet, id models.TileID) error {
	return tracker.updateTiles(ctx, set, func(current []models.TileConfig) ([]models.TileConfig, error) {
		tiles, ok := services.ToggleTile(current, id)
		if !ok {
			return nil, fmt.Errorf("%w: %q", services.ErrUnknownTile, id)
		}
		return tiles, nil
	})
}

func (tracker *Tracker) ReorderTiles(ctx context.Context, set TileSet, order []models.TileID) error {
	return tracker.updateTiles(ctx, set, func(current []models.TileConfig) ([]models.TileConfig, error) {
		return services.ReorderTiles(current, order), nil
	})
}

func (tracker *Tracker) ResetTileConfig(ctx context.Context, set TileSet) error {
	return tracker.SetTileConfig(ctx, set, set.defaults())
}

// SetSelectedDate moves the day the Selected* views describe. It is not
// persisted.
func (tracker *Tracker) SetSelectedDate(date string) error {
	if !dates.Valid(date) {
		return fmt.Errorf("%w: %q", services.ErrInvalidDate, date)
	}
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	tracker.selectedDate = date
	return nil
}
