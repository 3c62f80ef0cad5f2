package dishes

import (
	"github.com/jinzhu/gorm"

	"mealplanner/internal/models"
)

// GormRepository persists the dish catalog in the SQLite database.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a repository backed by the given database.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) All() ([]models.Dish, error) {
	var dishes []models.Dish
	if err := r.db.Order("id").Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

func (r *GormRepository) FindByID(id string) (*models.Dish, error) {
	var dish models.Dish
	err := r.db.Where("dish_id = ?", id).First(&dish).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *GormRepository) Create(dish *models.Dish) error {
	return r.db.Create(dish).Error
}

func (r *GormRepository) Update(dish *models.Dish) error {
	return r.db.Save(dish).Error
}

func (r *GormRepository) Delete(id string) error {
	result := r.db.Where("dish_id = ?", id).Delete(&models.Dish{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
