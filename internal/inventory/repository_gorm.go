package inventory

import (
	"github.com/jinzhu/gorm"

	"mealplanner/internal/models"
)

// GormRepository persists inventory rows in the SQLite database.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a repository backed by the given database.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) All() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := r.db.Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepository) FindByName(folded string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.db.Where("LOWER(TRIM(name)) = ?", folded).First(&item).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepository) Create(item *models.InventoryItem) error {
	return r.db.Create(item).Error
}

func (r *GormRepository) Update(item *models.InventoryItem) error {
	return r.db.Save(item).Error
}

// Delete removes the row if present; deleting an absent name is a no-op.
func (r *GormRepository) Delete(folded string) error {
	return r.db.Where("LOWER(TRIM(name)) = ?", folded).Delete(&models.InventoryItem{}).Error
}
