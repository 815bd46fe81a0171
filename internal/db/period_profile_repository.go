package db

import (
	"errors"

	"github.com/terraincognita07/cyra/internal/models"
	"gorm.io/gorm"
)

type PeriodProfileRepository struct {
	database *gorm.DB
}

func NewPeriodProfileRepository(database *gorm.DB) *PeriodProfileRepository {
	return &PeriodProfileRepository{database: database}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (repo *PeriodProfileRepository) WithTx(tx *gorm.DB) *PeriodProfileRepository {
	return &PeriodProfileRepository{database: tx}
}

func (repo *PeriodProfileRepository) FindByCustomer(customerID uint) (models.PeriodProfile, bool, error) {
	var profile models.PeriodProfile
	result := repo.database.
		Where("customer_id = ?", customerID).
		Limit(1).
		Find(&profile)
	if result.Error != nil {
		return models.PeriodProfile{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.PeriodProfile{}, false, nil
	}
	return profile, true, nil
}

// FindOrCreateByCustomer lazily creates the profile with defaults on the
// customer's first period record.
func (repo *PeriodProfileRepository) FindOrCreateByCustomer(customerID uint) (models.PeriodProfile, error) {
	profile, found, err := repo.FindByCustomer(customerID)
	if err != nil {
		return models.PeriodProfile{}, err
	}
	if found {
		return profile, nil
	}

	profile = models.DefaultPeriodProfile(customerID)
	if err := repo.database.Create(&profile).Error; err != nil {
		return models.PeriodProfile{}, err
	}
	return profile, nil
}

// UpdateScalars persists only the recalculated scalar fields. Derived dates
// are never stored.
func (repo *PeriodProfileRepository) UpdateScalars(customerID uint, updates map[string]any) error {
	result := repo.database.Model(&models.PeriodProfile{}).
		Where("customer_id = ?", customerID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("period profile not found")
	}
	return nil
}

func (repo *PeriodProfileRepository) UpdatePreferences(customerID uint, updates map[string]any) error {
	return repo.database.Model(&models.PeriodProfile{}).
		Where("customer_id = ?", customerID).
		Updates(updates).Error
}
