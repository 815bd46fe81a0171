package db

import (
	"time"

	"github.com/terraincognita07/cyra/internal/models"
	"gorm.io/gorm"
)

type DailyEntryRepository struct {
	database *gorm.DB
}

func NewDailyEntryRepository(database *gorm.DB) *DailyEntryRepository {
	return &DailyEntryRepository{database: database}
}

func (repo *DailyEntryRepository) FindByCustomerAndDayRange(customerID uint, dayStart time.Time, dayEnd time.Time) (models.DailyEntry, bool, error) {
	var entry models.DailyEntry
	result := repo.database.
		Where("customer_id = ? AND date >= ? AND date < ?", customerID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.DailyEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *DailyEntryRepository) ListByCustomerRange(customerID uint, fromStart *time.Time, toEnd *time.Time) ([]models.DailyEntry, error) {
	query := repo.database.Model(&models.DailyEntry{}).Where("customer_id = ?", customerID)
	if fromStart != nil {
		query = query.Where("date >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("date < ?", *toEnd)
	}

	entries := make([]models.DailyEntry, 0)
	if err := query.Order("date DESC, id DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *DailyEntryRepository) Create(entry *models.DailyEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *DailyEntryRepository) Save(entry *models.DailyEntry) error {
	return repo.database.Save(entry).Error
}

func (repo *DailyEntryRepository) DeleteByCustomerAndDayRange(customerID uint, dayStart time.Time, dayEnd time.Time) error {
	return repo.database.
		Where("customer_id = ? AND date >= ? AND date < ?", customerID, dayStart, dayEnd).
		Delete(&models.DailyEntry{}).Error
}
