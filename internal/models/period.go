package models

import "time"

const (
	FlowSpotting Flow = "spotting"
	FlowLight    Flow = "light"
	FlowMedium   Flow = "medium"
	FlowHeavy    Flow = "heavy"
)

type Flow string

func (flow Flow) Valid() bool {
	switch flow {
	case FlowSpotting, FlowLight, FlowMedium, FlowHeavy:
		return true
	default:
		return false
	}
}

func Flows() []Flow {
	return []Flow{FlowSpotting, FlowLight, FlowMedium, FlowHeavy}
}

// PeriodEntry is the period log for a day. Writing a second entry for the same
// date replaces the first.
type PeriodEntry struct {
	ID        string    `gorm:"primaryKey" json:"id" yaml:"id"`
	Date      string    `gorm:"not null;uniqueIndex" json:"date" yaml:"date"`
	Flow      Flow      `gorm:"not null" json:"flow" yaml:"flow"`
	Symptoms  []Symptom `gorm:"serializer:json" json:"symptoms" yaml:"symptoms"`
	Notes     string    `json:"notes" yaml:"notes"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

func (PeriodEntry) TableName() string { return "period_entries" }

func (entry PeriodEntry) Clone() PeriodEntry {
	entry.Symptoms = append([]Symptom{}, entry.Symptoms...)
	return entry
}

// CycleStats summarises the tracked menstrual cycles. Nil dates mean there is
// not enough period data to derive them.
type CycleStats struct {
	AverageCycleLength  int     `json:"averageCycleLength"`
	AveragePeriodLength int     `json:"averagePeriodLength"`
	LastPeriodStart     *string `json:"lastPeriodStart"`
	PredictedNextStart  *string `json:"predictedNextStart"`
	TotalCyclesTracked  int     `json:"totalCyclesTracked"`
}
