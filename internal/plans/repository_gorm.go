package plans

import (
	"github.com/jinzhu/gorm"

	"mealplanner/internal/models"
)

// GormRepository persists saved meal plans in the SQLite database.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a repository backed by the given database.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) All() ([]models.SavedMealPlan, error) {
	var saved []models.SavedMealPlan
	if err := r.db.Order("id").Find(&saved).Error; err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *GormRepository) FindByName(folded string) (*models.SavedMealPlan, error) {
	var plan models.SavedMealPlan
	err := r.db.Where("LOWER(TRIM(name)) = ?", folded).First(&plan).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *GormRepository) Create(plan *models.SavedMealPlan) error {
	return r.db.Create(plan).Error
}

func (r *GormRepository) Update(plan *models.SavedMealPlan) error {
	return r.db.Save(plan).Error
}

func (r *GormRepository) Delete(folded string) error {
	result := r.db.Where("LOWER(TRIM(name)) = ?", folded).Delete(&models.SavedMealPlan{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
