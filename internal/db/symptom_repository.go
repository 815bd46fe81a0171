package db

import (
	"github.com/terraincognita07/cyra/internal/models"
	"gorm.io/gorm"
)

type SymptomRepository struct {
	database *gorm.DB
}

func NewSymptomRepository(database *gorm.DB) *SymptomRepository {
	return &SymptomRepository{database: database}
}

func (repo *SymptomRepository) ListAll() ([]models.SymptomType, error) {
	symptoms := make([]models.SymptomType, 0)
	if err := repo.database.Order("id ASC").Find(&symptoms).Error; err != nil {
		return nil, err
	}
	return symptoms, nil
}

func (repo *SymptomRepository) ExistsByID(symptomID uint) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.SymptomType{}).
		Where("id = ?", symptomID).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

// EnsureBuiltins seeds the builtin symptom catalog once on startup.
func (repo *SymptomRepository) EnsureBuiltins() error {
	var count int64
	if err := repo.database.Model(&models.SymptomType{}).
		Where("is_builtin = ?", true).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	builtins := models.DefaultBuiltinSymptoms()
	symptoms := make([]models.SymptomType, 0, len(builtins))
	for _, builtin := range builtins {
		symptoms = append(symptoms, models.SymptomType{
			Name:      builtin.Name,
			Icon:      builtin.Icon,
			Color:     builtin.Color,
			IsBuiltin: true,
		})
	}
	return repo.database.Create(&symptoms).Error
}
