package db

import (
	"github.com/terraincognita07/cyra/internal/models"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	database *gorm.DB
}

func NewCustomerRepository(database *gorm.DB) *CustomerRepository {
	return &CustomerRepository{database: database}
}

func (repo *CustomerRepository) FindByID(customerID uint) (models.Customer, error) {
	var customer models.Customer
	if err := repo.database.First(&customer, customerID).Error; err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

func (repo *CustomerRepository) FindByUserID(userID uint) (models.Customer, error) {
	var customer models.Customer
	if err := repo.database.Where("user_id = ?", userID).First(&customer).Error; err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

func (repo *CustomerRepository) Create(customer *models.Customer) error {
	return repo.database.Create(customer).Error
}

func (repo *CustomerRepository) UpdateByID(customerID uint, updates map[string]any) error {
	return repo.database.Model(&models.Customer{}).Where("id = ?", customerID).Updates(updates).Error
}

func (repo *CustomerRepository) CreateWeightEntry(entry *models.WeightEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *CustomerRepository) LatestWeightEntry(customerID uint) (models.WeightEntry, bool, error) {
	var entry models.WeightEntry
	result := repo.database.
		Where("customer_id = ?", customerID).
		Order("entry_date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.WeightEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WeightEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *CustomerRepository) ListWeightEntries(customerID uint) ([]models.WeightEntry, error) {
	entries := make([]models.WeightEntry, 0)
	if err := repo.database.
		Where("customer_id = ?", customerID).
		Order("entry_date DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
