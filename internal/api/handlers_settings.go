package api

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/terraincognita07/healthlog/internal/models"
	"github.com/terraincognita07/healthlog/internal/services"
	"github.com/terraincognita07/healthlog/internal/state"
)

// settingsPatch holds optional fields; nil means unchanged.
type settingsPatch struct {
	Language               *models.Language `json:"language"`
	Theme                  *models.Theme    `json:"theme"`
	CustomName             *string          `json:"customName"`
	HasCompletedOnboarding *bool            `json:"hasCompletedOnboarding"`
}

type settingsView struct {
	models.AppSettings
	Title string `json:"title"`
}

type reorderPayload struct {
	Order []models.TileID `json:"order"`
}

type tilesView struct {
	Tiles   []models.TileConfig `json:"tiles"`
	Visible []models.TileConfig `json:"visible"`
}

func (handler *Handler) GetSettings(c *fiber.Ctx) error {
	settings := handler.tracker.Settings()
	settings.TileConfig = handler.tracker.Tiles(state.HomeTiles)
	settings.StatsTileConfig = handler.tracker.Tiles(state.StatsTiles)
	return c.JSON(settingsView{
		AppSettings: settings,
		Title:       handler.i18n.AppTitle(settings.Language, settings.CustomName),
	})
}

func (handler *Handler) UpdateSettings(c *fiber.Ctx) error {
	var patch settingsPatch
	if err := handler.parseBody(c, &patch); err != nil {
		return err
	}
	ctx := c.UserContext()

	if patch.Language != nil {
		if err := handler.tracker.SetLanguage(ctx, *patch.Language); err != nil {
			return handler.writeError(c, err)
		}
	}
	if patch.Theme != nil {
		if err := handler.tracker.SetTheme(ctx, *patch.Theme); err != nil {
			return handler.writeError(c, err)
		}
	}
	if patch.CustomName != nil {
		if err := handler.tracker.SetCustomName(ctx, *patch.CustomName); err != nil {
			return handler.writeError(c, err)
		}
	}
	if patch.HasCompletedOnboarding != nil && *patch.HasCompletedOnboarding {
		if err := handler.tracker.CompleteOnboarding(ctx); err != nil {
			return handler.writeError(c, err)
		}
	}
	return handler.GetSettings(c)
}

func parseTileSet(raw string) (state.TileSet, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "home":
		return state.HomeTiles, nil
	case "stats":
		return state.StatsTiles, nil
	default:
		return 0, fmt.Errorf("%w: tile set %q", services.ErrUnknownTile, raw)
	}
}

func (handler *Handler) tilesResponse(c *fiber.Ctx, set state.TileSet) error {
	return c.JSON(tilesView{
		Tiles:   handler.tracker.SortedTiles(set),
		Visible: handler.tracker.VisibleTiles(set),
	})
}

func (handler *Handler) GetTiles(c *fiber.Ctx) error {
	set, err := parseTileSet(c.Params("set"))
	if err != nil {
		return handler.writeError(c, err)
	}
	return handler.tilesResponse(c, set)
}

func (handler *Handler) SetTiles(c *fiber.Ctx) error {
	set, err := parseTileSet(c.Params("set"))
	if err != nil {
		return handler.writeError(c, err)
	}
	var tiles []models.TileConfig
	if err := handler.parseBody(c, &tiles); err != nil {
		return err
	}
	if err := handler.tracker.SetTileConfig(c.UserContext(), set, tiles); err != nil {
		return handler.writeError(c, err)
	}
	return handler.tilesResponse(c, set)
}

func (handler *Handler) ToggleTile(c *fiber.Ctx) error {
	set, err := parseTileSet(c.Params("set"))
	if err != nil {
		return handler.writeError(c, err)
	}
	if err := handler.tracker.ToggleTileVisibility(c.UserContext(), set, models.TileID(c.Params("id"))); err != nil {
		return handler.writeError(c, err)
	}
	return handler.tilesResponse(c, set)
}

func (handler *Handler) ReorderTiles(c *fiber.Ctx) error {
	set, err := parseTileSet(c.Params("set"))
	if err != nil {
		return handler.writeError(c, err)
	}
	var payload reorderPayload
	if err := handler.parseBody(c, &payload); err != nil {
		return err
	}
	if err := handler.tracker.ReorderTiles(c.UserContext(), set, payload.Order); err != nil {
		return handler.writeError(c, err)
	}
	return handler.tilesResponse(c, set)
}

func (handler *Handler) ResetTiles(c *fiber.Ctx) error {
	set, err := parseTileSet(c.Params("set"))
	if err != nil {
		return handler.writeError(c, err)
	}
	if err := handler.tracker.ResetTileConfig(c.UserContext(), set); err != nil {
		return handler.writeError(c, err)
	}
	return handler.tilesResponse(c, set)
}
