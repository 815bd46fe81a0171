package db

import (
	"time"

	"github.com/terraincognita07/cyra/internal/models"
	"gorm.io/gorm"
)

type DailyTipRepository struct {
	database *gorm.DB
}

func NewDailyTipRepository(database *gorm.DB) *DailyTipRepository {
	return &DailyTipRepository{database: database}
}

func (repo *DailyTipRepository) FindByDayRange(dayStart time.Time, dayEnd time.Time) (models.DailyTip, bool, error) {
	var tip models.DailyTip
	result := repo.database.
		Where("date >= ? AND date < ?", dayStart, dayEnd).
		Limit(1).
		Find(&tip)
	if result.Error != nil {
		return models.DailyTip{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyTip{}, false, nil
	}
	return tip, true, nil
}

func (repo *DailyTipRepository) Create(tip *models.DailyTip) error {
	return repo.database.Create(tip).Error
}
