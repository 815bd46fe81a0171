package models

import "time"

const (
	DefaultCycleLength       = 28
	DefaultPeriodLength      = 5
	DefaultLutealPhaseLength = 14
	MinLutealPhaseLength     = 12
	MaxLutealPhaseLength     = 16
)

const (
	RegularityUnknown   = "unknown"
	RegularityRegular   = "regular"
	RegularityIrregular = "irregular"
)

const (
	PhaseMenstrual  = "menstrual"
	PhaseFollicular = "follicular"
	PhaseOvulation  = "ovulation"
	PhaseLuteal     = "luteal"
)

const (
	PregnancyChanceLow    = "low"
	PregnancyChanceMedium = "medium"
	PregnancyChanceHigh   = "high"
)

// PeriodRecord is one logged menstrual period. EndDate stays nil while the
// period is ongoing; PeriodLength and CycleLength are recomputed on every
// write and never edited directly. There is no stored "active" flag:
// whether a record covers the current day is always derived from its dates.
type PeriodRecord struct {
	ID           string     `gorm:"primaryKey" json:"id"`
	CustomerID   uint       `gorm:"not null;index:idx_periods_customer_start,priority:1" json:"customer_id"`
	StartDate    time.Time  `gorm:"not null;index:idx_periods_customer_start,priority:2" json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	PeriodLength *int       `json:"period_length"`
	CycleLength  *int       `json:"cycle_length"`
	CreatedBy    uint       `json:"-"`
	UpdatedBy    uint       `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsClosed reports whether an explicit end date has been logged.
func (record PeriodRecord) IsClosed() bool {
	return record.EndDate != nil
}

// CoversDay reports whether the record spans the given calendar day.
// An open record counts as running through today, so it covers every day
// from its start up to and including today.
func (record PeriodRecord) CoversDay(day time.Time, today time.Time) bool {
	if day.Before(dayOf(record.StartDate)) {
		return false
	}
	if record.EndDate != nil {
		return !day.After(dayOf(*record.EndDate))
	}
	return !day.After(today)
}

// PeriodProfile keeps the per-customer scalar inputs for cycle prediction.
// Forward-looking dates are always computed on read from these scalars and
// the referenced last period; they are never persisted.
type PeriodProfile struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	CustomerID        uint      `gorm:"uniqueIndex;not null" json:"customer_id"`
	UseAverageCycle   bool      `gorm:"not null;default:false" json:"use_average_cycle"`
	AvgCycleLength    int       `gorm:"not null;default:28" json:"avg_cycle_length"`
	AvgPeriodLength   int       `gorm:"not null;default:5" json:"avg_period_length"`
	LutealPhaseLength int       `gorm:"not null;default:14" json:"luteal_phase_length"`
	LastPeriodID      *string   `json:"last_period_id"`
	CycleRegularity   string    `gorm:"not null;default:unknown" json:"cycle_regularity"`
	CycleVariance     *float64  `json:"cycle_variance"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// DefaultPeriodProfile returns the profile used before any period is logged.
func DefaultPeriodProfile(customerID uint) PeriodProfile {
	return PeriodProfile{
		CustomerID:        customerID,
		AvgCycleLength:    DefaultCycleLength,
		AvgPeriodLength:   DefaultPeriodLength,
		LutealPhaseLength: DefaultLutealPhaseLength,
		CycleRegularity:   RegularityUnknown,
	}
}

func dayOf(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, value.Location())
}
