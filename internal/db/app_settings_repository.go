package db

import (
	"github.com/terraincognita07/cyra/internal/models"
	"gorm.io/gorm"
)

type AppSettingsRepository struct {
	database *gorm.DB
}

func NewAppSettingsRepository(database *gorm.DB) *AppSettingsRepository {
	return &AppSettingsRepository{database: database}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (repo *AppSettingsRepository) WithTx(tx *gorm.DB) *AppSettingsRepository {
	return &AppSettingsRepository{database: tx}
}

// Load returns the single settings row, falling back to defaults when the
// table is empty or unreadable. Statistics windows must never be zero.
func (repo *AppSettingsRepository) Load() models.AppSettings {
	var settings models.AppSettings
	result := repo.database.Order("id ASC").Limit(1).Find(&settings)
	if result.Error != nil || result.RowsAffected == 0 {
		return models.DefaultAppSettings()
	}
	if settings.PeriodsForAverage <= 0 {
		settings.PeriodsForAverage = models.DefaultAppSettings().PeriodsForAverage
	}
	if settings.RegularityWindow <= 0 {
		settings.RegularityWindow = models.DefaultAppSettings().RegularityWindow
	}
	return settings
}

func (repo *AppSettingsRepository) Save(settings *models.AppSettings) error {
	return repo.database.Save(settings).Error
}
