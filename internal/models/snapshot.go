package models

import "time"

// Snapshot is a full copy of every collection, used for backup and restore.
type Snapshot struct {
	Version        string                `json:"version" yaml:"version"`
	ExportedAt     time.Time             `json:"exportedAt" yaml:"exportedAt"`
	AilmentTypes   []AilmentType         `json:"ailmentTypes" yaml:"ailmentTypes"`
	TriggerTypes   []TriggerType         `json:"triggerTypes" yaml:"triggerTypes"`
	HealthEntries  []HealthEntry         `json:"healthEntries" yaml:"healthEntries"`
	DailyCheckIns  []DailyCheckIn        `json:"dailyCheckIns" yaml:"dailyCheckIns"`
	PeriodEntries  []PeriodEntry         `json:"periodEntries" yaml:"periodEntries"`
	CustomSymptoms []CustomPeriodSymptom `json:"customSymptoms,omitempty" yaml:"customSymptoms,omitempty"`
	Settings       *AppSettings          `json:"settings" yaml:"settings"`
}

// SnapshotVersion is written into every export. Imports accept any 1.x
// version.
const SnapshotVersion = "1.0"
