package models

// Home screen tiles.
const (
	TileMood    TileID = "mood"
	TilePeriod  TileID = "period"
	TileLog     TileID = "log"
	TileEntries TileID = "entries"
	TileSummary TileID = "summary"
)

// Statistics screen tiles.
const (
	StatsTileSummary            TileID = "summary"
	StatsTileCycle              TileID = "cycle"
	StatsTilePeriodCorrelation  TileID = "periodCorrelation"
	StatsTileSeverityTrend      TileID = "severityTrend"
	StatsTileAilmentFrequency   TileID = "ailmentFrequency"
	StatsTileTopTriggers        TileID = "topTriggers"
	StatsTileTriggerCorrelation TileID = "triggerCorrelation"
	StatsTileTimeOfDay          TileID = "timeOfDay"
	StatsTileWeekly             TileID = "weekly"
	StatsTileHeatmap            TileID = "heatmap"
)

type TileID string

type TileConfig struct {
	ID      TileID `json:"id" yaml:"id"`
	Visible bool   `json:"visible" yaml:"visible"`
	Order   int    `json:"order" yaml:"order"`
}

func DefaultTileOrder() []TileConfig {
	return tilesInOrder(TileMood, TilePeriod, TileLog, TileEntries, TileSummary)
}

func DefaultStatsTileOrder() []TileConfig {
	return tilesInOrder(
		StatsTileSummary,
		StatsTileCycle,
		StatsTilePeriodCorrelation,
		StatsTileSeverityTrend,
		StatsTileAilmentFrequency,
		StatsTileTopTriggers,
		StatsTileTriggerCorrelation,
		StatsTileTimeOfDay,
		StatsTileWeekly,
		StatsTileHeatmap,
	)
}

func CloneTiles(tiles []TileConfig) []TileConfig {
	if tiles == nil {
		return nil
	}
	return append([]TileConfig{}, tiles...)
}

func tilesInOrder(ids ...TileID) []TileConfig {
	tiles := make([]TileConfig, 0, len(ids))
	for index, id := range ids {
		tiles = append(tiles, TileConfig{ID: id, Visible: true, Order: index})
	}
	return tiles
}
