package models

import (
	"math"
	"time"
)

const (
	DefaultGlassSizeMl = 250
	DefaultDailyGoalMl = 2000
)

// HydrationLog tracks water intake for one customer on one calendar day.
type HydrationLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CustomerID  uint      `gorm:"not null;uniqueIndex:uidx_hydration_customer_date" json:"customer_id"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:uidx_hydration_customer_date" json:"date"`
	AmountMl    int       `gorm:"not null;default:0" json:"amount_ml"`
	GlassSizeMl int       `gorm:"not null;default:250" json:"glass_size_ml"`
	DailyGoalMl int       `gorm:"not null;default:2000" json:"daily_goal_ml"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GlassesCount converts the logged amount into glasses, one decimal.
func (log HydrationLog) GlassesCount() float64 {
	if log.GlassSizeMl == 0 {
		return 0
	}
	return math.Round(float64(log.AmountMl)/float64(log.GlassSizeMl)*10) / 10
}

// TotalLiters converts the logged amount into liters, two decimals.
func (log HydrationLog) TotalLiters() float64 {
	return math.Round(float64(log.AmountMl)/1000*100) / 100
}

// ProgressPercent reports progress toward the daily goal, capped at 100.
func (log HydrationLog) ProgressPercent() float64 {
	if log.DailyGoalMl == 0 {
		return 0
	}
	percent := math.Round(float64(log.AmountMl)/float64(log.DailyGoalMl)*100*100) / 100
	return math.Min(percent, 100)
}
