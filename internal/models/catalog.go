package models

import "time"

const (
	TriggerCategoryFood        TriggerCategory = "food"
	TriggerCategoryLifestyle   TriggerCategory = "lifestyle"
	TriggerCategoryEnvironment TriggerCategory = "environment"
	TriggerCategorySubstance   TriggerCategory = "substance"
	TriggerCategoryOther       TriggerCategory = "other"
)

type TriggerCategory string

func (category TriggerCategory) Valid() bool {
	switch category {
	case TriggerCategoryFood, TriggerCategoryLifestyle, TriggerCategoryEnvironment, TriggerCategorySubstance, TriggerCategoryOther:
		return true
	default:
		return false
	}
}

// AilmentType is a trackable kind of discomfort. Default rows are seeded on
// first start and are never renamed or deleted.
type AilmentType struct {
	ID        string    `gorm:"primaryKey" json:"id" yaml:"id"`
	Name      string    `gorm:"not null" json:"name" yaml:"name"`
	NameZh    string    `gorm:"column:name_zh;not null" json:"nameZh" yaml:"nameZh"`
	Icon      string    `gorm:"not null" json:"icon" yaml:"icon"`
	IsDefault bool      `gorm:"not null" json:"isDefault" yaml:"isDefault"`
	IsActive  bool      `gorm:"not null" json:"isActive" yaml:"isActive"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

func (AilmentType) TableName() string { return "ailment_types" }

type TriggerType struct {
	ID        string          `gorm:"primaryKey" json:"id" yaml:"id"`
	Name      string          `gorm:"not null" json:"name" yaml:"name"`
	NameZh    string          `gorm:"column:name_zh;not null" json:"nameZh" yaml:"nameZh"`
	Icon      string          `gorm:"not null" json:"icon" yaml:"icon"`
	Category  TriggerCategory `gorm:"not null" json:"category" yaml:"category"`
	IsDefault bool            `gorm:"not null" json:"isDefault" yaml:"isDefault"`
	IsActive  bool            `gorm:"not null" json:"isActive" yaml:"isActive"`
	CreatedAt time.Time       `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt" yaml:"updatedAt"`
}

func (TriggerType) TableName() string { return "trigger_types" }

type CustomPeriodSymptom struct {
	ID        string    `gorm:"primaryKey" json:"id" yaml:"id"`
	Name      string    `gorm:"not null" json:"name" yaml:"name"`
	NameZh    string    `gorm:"column:name_zh;not null" json:"nameZh" yaml:"nameZh"`
	Icon      string    `gorm:"not null" json:"icon" yaml:"icon"`
	IsActive  bool      `gorm:"not null" json:"isActive" yaml:"isActive"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

func (CustomPeriodSymptom) TableName() string { return "custom_symptoms" }
