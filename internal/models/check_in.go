package models

import "time"

const (
	MoodGood Mood = "good"
	MoodOkay Mood = "okay"
	MoodBad  Mood = "bad"
)

type Mood string

func (mood Mood) Valid() bool {
	switch mood {
	case MoodGood, MoodOkay, MoodBad:
		return true
	default:
		return false
	}
}

func Moods() []Mood {
	return []Mood{MoodGood, MoodOkay, MoodBad}
}

// DailyCheckIn is the mood log for a day. There is at most one per date.
type DailyCheckIn struct {
	ID        string    `gorm:"primaryKey" json:"id" yaml:"id"`
	Date      string    `gorm:"not null;uniqueIndex" json:"date" yaml:"date"`
	Mood      Mood      `gorm:"not null" json:"mood" yaml:"mood"`
	Notes     string    `json:"notes" yaml:"notes"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

func (DailyCheckIn) TableName() string { return "daily_check_ins" }
