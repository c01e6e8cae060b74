package services

import (
	"sort"

	"github.com/terraincognita07/healthlog/internal/models"
)

// ResolveTiles returns the saved layout, or fallback when nothing is saved.
func ResolveTiles(saved []models.TileConfig, fallback []models.TileConfig) []models.TileConfig {
	if saved == nil {
		return models.CloneTiles(fallback)
	}
	return models.CloneTiles(saved)
}

// SortedTiles orders tiles by their Order field. Equal orders keep the input
// order.
func SortedTiles(tiles []models.TileConfig) []models.TileConfig {
	sorted := models.CloneTiles(tiles)
	if sorted == nil {
		sorted = []models.TileConfig{}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	return sorted
}

func VisibleTiles(tiles []models.TileConfig) []models.TileConfig {
	visible := make([]models.TileConfig, 0, len(tiles))
	for _, tile := range SortedTiles(tiles) {
		if tile.Visible {
			visible = append(visible, tile)
		}
	}
	return visible
}

// ToggleTile flips the visibility of id. The second result is false when the
// layout has no such tile.
func ToggleTile(tiles []models.TileConfig, id models.TileID) ([]models.TileConfig, bool) {
	toggled := models.CloneTiles(tiles)
	for index := range toggled {
		if toggled[index].ID == id {
			toggled[index].Visible = !toggled[index].Visible
			return toggled, true
		}
	}
	return toggled, false
}

// ReorderTiles renumbers the layout to follow order. Ids in order that the
// layout lacks are added as visible tiles; tiles missing from order keep their
// visibility and go last in their previous relative order.
func ReorderTiles(tiles []models.TileConfig, order []models.TileID) []models.TileConfig {
	existing := make(map[models.TileID]models.TileConfig, len(tiles))
	for _, tile := range tiles {
		existing[tile.ID] = tile
	}

	reordered := make([]models.TileConfig, 0, len(tiles))
	placed := make(map[models.TileID]bool, len(order))
	for _, id := range order {
		if placed[id] {
			continue
		}
		placed[id] = true

		tile, ok := existing[id]
		if !ok {
			tile = models.TileConfig{ID: id, Visible: true}
		}
		tile.Order = len(reordered)
		reordered = append(reordered, tile)
	}

	for _, tile := range SortedTiles(tiles) {
		if placed[tile.ID] {
			continue
		}
		tile.Order = len(reordered)
		reordered = append(reordered, tile)
	}
	return reordered
}
