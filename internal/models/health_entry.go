package models

import "time"

const (
	MinSeverity Severity = 1
	MaxSeverity Severity = 5
)

// Severity is an ailment intensity from 1 (mild) to 5 (severe).
type Severity int

func (severity Severity) Valid() bool {
	return severity >= MinSeverity && severity <= MaxSeverity
}

func ClampSeverity(value int) Severity {
	if value < int(MinSeverity) {
		return MinSeverity
	}
	if value > int(MaxSeverity) {
		return MaxSeverity
	}
	return Severity(value)
}

// HealthEntry is one logged occurrence of an ailment. TriggerIDs may point at
// trigger types that no longer exist; readers drop those.
type HealthEntry struct {
	ID            string    `gorm:"primaryKey" json:"id" yaml:"id"`
	Date          string    `gorm:"not null;index" json:"date" yaml:"date"`
	Time          string    `gorm:"not null" json:"time" yaml:"time"`
	AilmentTypeID string    `gorm:"column:ailment_type_id;not null;index" json:"ailmentTypeId" yaml:"ailmentTypeId"`
	Severity      Severity  `gorm:"not null" json:"severity" yaml:"severity"`
	TriggerIDs    []string  `gorm:"column:trigger_ids;serializer:json" json:"triggerIds" yaml:"triggerIds"`
	Notes         string    `json:"notes" yaml:"notes"`
	CreatedAt     time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" yaml:"updatedAt"`
}

func (HealthEntry) TableName() string { return "health_entries" }

// Clone returns a copy that shares no slices with the receiver.
func (entry HealthEntry) Clone() HealthEntry {
	entry.TriggerIDs = append([]string{}, entry.TriggerIDs...)
	return entry
}

// HealthEntryWithDetails is an entry with its ailment and triggers resolved.
type HealthEntryWithDetails struct {
	HealthEntry
	AilmentType AilmentType   `json:"ailmentType"`
	Triggers    []TriggerType `json:"triggers"`
}
