package services

import (
	"errors"

	"github.com/terraincognita07/cyra/internal/db"
	"github.com/terraincognita07/cyra/internal/models"
)

var (
	ErrInvalidLutealPhase = errors.New("luteal phase length out of range")
	ErrInvalidCycleLength = errors.New("cycle length out of range")
)

const (
	minManualCycleLength  = 15
	maxManualCycleLength  = 60
	minManualPeriodLength = 1
	maxManualPeriodLength = 14
)

type PeriodSettingsInput struct {
	UseAverageCycle   *bool
	AvgCycleLength    *int
	AvgPeriodLength   *int
	LutealPhaseLength *int
}

// PeriodSettingsService updates the customer-tunable prediction inputs.
type PeriodSettingsService struct {
	profiles *db.PeriodProfileRepository
}

func NewPeriodSettingsService(profiles *db.PeriodProfileRepository) *PeriodSettingsService {
	return &PeriodSettingsService{profiles: profiles}
}

func (service *PeriodSettingsService) GetProfile(customerID uint) (models.PeriodProfile, error) {
	profile, found, err := service.profiles.FindByCustomer(customerID)
	if err != nil {
		return models.PeriodProfile{}, err
	}
	if !found {
		return models.DefaultPeriodProfile(customerID), nil
	}
	return profile, nil
}

// UpdateProfile applies the supplied fields after range-checking them.
// The luteal phase is a physiological constant and only accepts 12-16.
func (service *PeriodSettingsService) UpdateProfile(customerID uint, input PeriodSettingsInput) (models.PeriodProfile, error) {
	updates := make(map[string]any)

	if input.UseAverageCycle != nil {
		updates["use_average_cycle"] = *input.UseAverageCycle
	}
	if input.AvgCycleLength != nil {
		if *input.AvgCycleLength < minManualCycleLength || *input.AvgCycleLength > maxManualCycleLength {
			return models.PeriodProfile{}, ErrInvalidCycleLength
		}
		updates["avg_cycle_length"] = *input.AvgCycleLength
	}
	if input.AvgPeriodLength != nil {
		if *input.AvgPeriodLength < minManualPeriodLength || *input.AvgPeriodLength > maxManualPeriodLength {
			return models.PeriodProfile{}, ErrInvalidCycleLength
		}
		updates["avg_period_length"] = *input.AvgPeriodLength
	}
	if input.LutealPhaseLength != nil {
		if *input.LutealPhaseLength < models.MinLutealPhaseLength || *input.LutealPhaseLength > models.MaxLutealPhaseLength {
			return models.PeriodProfile{}, ErrInvalidLutealPhase
		}
		updates["luteal_phase_length"] = *input.LutealPhaseLength
	}

	if len(updates) > 0 {
		profile, err := service.profiles.FindOrCreateByCustomer(customerID)
		if err != nil {
			return models.PeriodProfile{}, err
		}
		if err := service.profiles.UpdatePreferences(profile.CustomerID, updates); err != nil {
			return models.PeriodProfile{}, err
		}
	}

	return service.GetProfile(customerID)
}
