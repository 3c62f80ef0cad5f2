package history

import (
	"github.com/jinzhu/gorm"

	"mealplanner/internal/models"
)

// GormRepository persists past-meal records in the SQLite database.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a repository backed by the given database.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) All() ([]models.PastMealRecord, error) {
	var records []models.PastMealRecord
	if err := r.db.Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *GormRepository) Append(record *models.PastMealRecord) error {
	return r.db.Create(record).Error
}
