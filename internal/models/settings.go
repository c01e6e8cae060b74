package models

import "time"

const SettingsID = "settings"

const (
	LanguageEN   Language = "en"
	LanguageZhHK Language = "zh-HK"
)

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

type Language string

func (language Language) Valid() bool {
	return language == LanguageEN || language == LanguageZhHK
}

type Theme string

func (theme Theme) Valid() bool {
	switch theme {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	default:
		return false
	}
}

// AppSettings is a singleton row keyed by SettingsID. Nil tile configs mean
// the default layout.
type AppSettings struct {
	ID                     string       `gorm:"primaryKey" json:"id" yaml:"id"`
	Language               Language     `gorm:"not null" json:"language" yaml:"language"`
	Theme                  Theme        `gorm:"not null" json:"theme" yaml:"theme"`
	CustomName             string       `gorm:"not null" json:"customName,omitempty" yaml:"customName,omitempty"`
	TileConfig             []TileConfig `gorm:"serializer:json" json:"tileConfig,omitempty" yaml:"tileConfig,omitempty"`
	StatsTileConfig        []TileConfig `gorm:"serializer:json" json:"statsTileConfig,omitempty" yaml:"statsTileConfig,omitempty"`
	HasCompletedOnboarding bool         `gorm:"not null" json:"hasCompletedOnboarding,omitempty" yaml:"hasCompletedOnboarding,omitempty"`
	CreatedAt              time.Time    `json:"createdAt" yaml:"createdAt"`
	UpdatedAt              time.Time    `json:"updatedAt" yaml:"updatedAt"`
}

func (AppSettings) TableName() string { return "app_settings" }

func (settings AppSettings) Clone() AppSettings {
	settings.TileConfig = CloneTiles(settings.TileConfig)
	settings.StatsTileConfig = CloneTiles(settings.StatsTileConfig)
	return settings
}
