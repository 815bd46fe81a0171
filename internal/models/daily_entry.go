package models

import "time"

const (
	MoodNone    = ""
	MoodHappy   = "happy"
	MoodSad     = "sad"
	MoodAngry   = "angry"
	MoodInLove  = "inlove"
	MoodAnxious = "anxious"
	MoodCalm    = "calm"
	MoodTired   = "tired"
	MoodExcited = "excited"
)

// DailyEntry is one customer's log for a single calendar day: mood,
// symptoms, and free-form notes. One entry per customer per day.
type DailyEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null;uniqueIndex:uidx_entry_customer_date" json:"customer_id"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:uidx_entry_customer_date" json:"date"`
	Mood       string    `json:"mood"`
	SymptomIDs []uint    `gorm:"serializer:json" json:"symptom_ids"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// HasData reports whether the entry carries anything worth keeping.
func (entry DailyEntry) HasData() bool {
	return entry.Mood != MoodNone || len(entry.SymptomIDs) > 0 || entry.Notes != ""
}

type SymptomType struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	Icon      string `gorm:"not null" json:"icon"`
	Color     string `gorm:"not null" json:"color"`
	IsBuiltin bool   `gorm:"not null;default:false" json:"is_builtin"`
}

type BuiltinSymptom struct {
	Name  string
	Icon  string
	Color string
}

func DefaultBuiltinSymptoms() []BuiltinSymptom {
	return []BuiltinSymptom{
		{Name: "Cramps", Icon: "🩸", Color: "#FF4444"},
		{Name: "Headache", Icon: "🤕", Color: "#FFA500"},
		{Name: "Mood swings", Icon: "😢", Color: "#9B59B6"},
		{Name: "Bloating", Icon: "🎈", Color: "#3498DB"},
		{Name: "Fatigue", Icon: "😴", Color: "#95A5A6"},
		{Name: "Breast tenderness", Icon: "💔", Color: "#E91E63"},
		{Name: "Acne", Icon: "🔴", Color: "#E74C3C"},
		{Name: "Back pain", Icon: "🦴", Color: "#8E6E53"},
		{Name: "Nausea", Icon: "🤢", Color: "#7CB342"},
		{Name: "Spotting", Icon: "🩹", Color: "#C55A7A"},
	}
}

type MoodOption struct {
	Tag   string `json:"tag"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

func MoodOptions() []MoodOption {
	return []MoodOption{
		{Tag: MoodHappy, Name: "Happy", Emoji: "😊", Color: "#FFE0B2"},
		{Tag: MoodSad, Name: "Sad", Emoji: "😢", Color: "#BBDEFB"},
		{Tag: MoodAngry, Name: "Angry", Emoji: "😠", Color: "#FFCDD2"},
		{Tag: MoodInLove, Name: "In Love", Emoji: "😍", Color: "#F8BBD0"},
		{Tag: MoodAnxious, Name: "Anxious", Emoji: "😰", Color: "#D1C4E9"},
		{Tag: MoodCalm, Name: "Calm", Emoji: "😌", Color: "#C8E6C9"},
		{Tag: MoodTired, Name: "Tired", Emoji: "😴", Color: "#E1BEE7"},
		{Tag: MoodExcited, Name: "Excited", Emoji: "🤩", Color: "#FFF9C4"},
	}
}

// IsKnownMood accepts the empty mood as "not logged".
func IsKnownMood(mood string) bool {
	if mood == MoodNone {
		return true
	}
	for _, option := range MoodOptions() {
		if option.Tag == mood {
			return true
		}
	}
	return false
}
