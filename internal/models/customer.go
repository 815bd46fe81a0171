package models

import "time"

const (
	WeightUnitKg = "kg"
	WeightUnitLb = "lb"
)

type Customer struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth"`
	HeightCm    *float64   `json:"height_cm"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	State       string     `json:"state"`
	Country     string     `json:"country"`
	ZipCode     string     `json:"zip_code"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Age returns full years as of today, or 0 when the birth date is unknown.
func (customer Customer) Age(today time.Time) int {
	if customer.DateOfBirth == nil {
		return 0
	}
	birth := *customer.DateOfBirth
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

type WeightEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Weight     float64   `gorm:"not null" json:"weight"`
	Unit       string    `gorm:"not null;default:kg" json:"unit"`
	EntryDate  time.Time `gorm:"type:date;not null" json:"entry_date"`
	CreatedAt  time.Time `json:"created_at"`
}

// WeightKg converts the entry to kilograms regardless of the stored unit.
func (entry WeightEntry) WeightKg() float64 {
	if entry.Unit == WeightUnitLb {
		return entry.Weight * 0.453592
	}
	return entry.Weight
}
