package db

import (
	"time"

	"github.com/terraincognita07/cyra/internal/models"
	"gorm.io/gorm"
)

type PeriodRepository struct {
	database *gorm.DB
}

func NewPeriodRepository(database *gorm.DB) *PeriodRepository {
	return &PeriodRepository{database: database}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (repo *PeriodRepository) WithTx(tx *gorm.DB) *PeriodRepository {
	return &PeriodRepository{database: tx}
}

func (repo *PeriodRepository) FindByIDForCustomer(recordID string, customerID uint) (models.PeriodRecord, bool, error) {
	var record models.PeriodRecord
	result := repo.database.
		Where("id = ? AND customer_id = ?", recordID, customerID).
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.PeriodRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.PeriodRecord{}, false, nil
	}
	return record, true, nil
}

// FindPreviousBefore returns the record with the greatest start_date strictly
// before the given start for the same customer. The previous record is always
// resolved by start_date ordering, never by insertion order, so out-of-order
// logging and deletions cannot leave a dangling reference.
func (repo *PeriodRepository) FindPreviousBefore(customerID uint, start time.Time, excludeID string) (models.PeriodRecord, bool, error) {
	query := repo.database.
		Where("customer_id = ? AND start_date < ?", customerID, start)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var record models.PeriodRecord
	result := query.Order("start_date DESC").Limit(1).Find(&record)
	if result.Error != nil {
		return models.PeriodRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.PeriodRecord{}, false, nil
	}
	return record, true, nil
}

func (repo *PeriodRepository) FindLatestByCustomer(customerID uint) (models.PeriodRecord, bool, error) {
	var record models.PeriodRecord
	result := repo.database.
		Where("customer_id = ?", customerID).
		Order("start_date DESC").
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.PeriodRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.PeriodRecord{}, false, nil
	}
	return record, true, nil
}

// FindActiveOn returns the record covering the given day, if any. A record
// with no end date counts as running through today. At most one active
// record should exist per customer; the caller treats this as a read-time
// invariant, so the newest start wins if the data is transiently overlapping.
func (repo *PeriodRepository) FindActiveOn(customerID uint, dayStart time.Time, dayEnd time.Time) (models.PeriodRecord, bool, error) {
	var record models.PeriodRecord
	result := repo.database.
		Where("customer_id = ? AND start_date < ? AND (end_date IS NULL OR end_date >= ?)", customerID, dayEnd, dayStart).
		Order("start_date DESC").
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.PeriodRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.PeriodRecord{}, false, nil
	}
	return record, true, nil
}

// FindMostRecentClosed returns the newest record whose end date has already
// passed. Used to anchor predictions while a period is still in progress.
func (repo *PeriodRepository) FindMostRecentClosed(customerID uint, before time.Time) (models.PeriodRecord, bool, error) {
	var record models.PeriodRecord
	result := repo.database.
		Where("customer_id = ? AND end_date IS NOT NULL AND end_date < ?", customerID, before).
		Order("start_date DESC").
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.PeriodRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.PeriodRecord{}, false, nil
	}
	return record, true, nil
}

// ListRecentWithCycleLength returns up to limit records carrying a computed
// cycle length, newest first. Feeds the averaging and regularity windows.
func (repo *PeriodRepository) ListRecentWithCycleLength(customerID uint, limit int) ([]models.PeriodRecord, error) {
	records := make([]models.PeriodRecord, 0, limit)
	if err := repo.database.
		Where("customer_id = ? AND cycle_length IS NOT NULL", customerID).
		Order("start_date DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *PeriodRepository) ListByCustomerDesc(customerID uint, limit int, offset int) ([]models.PeriodRecord, error) {
	records := make([]models.PeriodRecord, 0)
	query := repo.database.
		Where("customer_id = ?", customerID).
		Order("start_date DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *PeriodRepository) CountByCustomer(customerID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.PeriodRecord{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *PeriodRepository) Create(record *models.PeriodRecord) error {
	return repo.database.Create(record).Error
}

func (repo *PeriodRepository) Save(record *models.PeriodRecord) error {
	return repo.database.Save(record).Error
}

func (repo *PeriodRepository) DeleteByID(recordID string) error {
	return repo.database.Delete(&models.PeriodRecord{}, "id = ?", recordID).Error
}
