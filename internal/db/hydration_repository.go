package db

import (
	"time"

	"github.com/terraincognita07/cyra/internal/models"
	"gorm.io/gorm"
)

type HydrationRepository struct {
	database *gorm.DB
}

func NewHydrationRepository(database *gorm.DB) *HydrationRepository {
	return &HydrationRepository{database: database}
}

func (repo *HydrationRepository) FindByCustomerAndDayRange(customerID uint, dayStart time.Time, dayEnd time.Time) (models.HydrationLog, bool, error) {
	var log models.HydrationLog
	result := repo.database.
		Where("customer_id = ? AND date >= ? AND date < ?", customerID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&log)
	if result.Error != nil {
		return models.HydrationLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.HydrationLog{}, false, nil
	}
	return log, true, nil
}

func (repo *HydrationRepository) ListByCustomerRange(customerID uint, fromStart *time.Time, toEnd *time.Time) ([]models.HydrationLog, error) {
	query := repo.database.Model(&models.HydrationLog{}).Where("customer_id = ?", customerID)
	if fromStart != nil {
		query = query.Where("date >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("date < ?", *toEnd)
	}

	logs := make([]models.HydrationLog, 0)
	if err := query.Order("date DESC, id DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *HydrationRepository) Create(log *models.HydrationLog) error {
	return repo.database.Create(log).Error
}

func (repo *HydrationRepository) Save(log *models.HydrationLog) error {
	return repo.database.Save(log).Error
}
