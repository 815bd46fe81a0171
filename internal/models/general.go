package models

import "time"

// AppSettings is a single-row table of operator-tunable knobs. The two
// windows feed the cycle statistics independently: averaging looks at a
// short recent window, regularity classification at a longer one.
type AppSettings struct {
	ID                uint `gorm:"primaryKey" json:"id"`
	PeriodsForAverage int  `gorm:"not null;default:3" json:"periods_for_average"`
	RegularityWindow  int  `gorm:"not null;default:6" json:"regularity_window"`
}

func DefaultAppSettings() AppSettings {
	return AppSettings{PeriodsForAverage: 3, RegularityWindow: 6}
}

type DailyTip struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Date             time.Time `gorm:"type:date;uniqueIndex;not null" json:"date"`
	ShortDescription string    `json:"short_description"`
	LongDescription  string    `json:"long_description"`
}
