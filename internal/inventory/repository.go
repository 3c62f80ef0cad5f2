package inventory

import (
	"errors"

	"mealplanner/internal/models"
)

// ErrNotFound is returned when no inventory row matches the requested name.
var ErrNotFound = errors.New("inventory item not found")

// Repository provides raw access to inventory rows keyed by the case-folded
// item name. Merge-on-add, replace, and decrement semantics live in Store,
// not here.
type Repository interface {
	All() ([]models.InventoryItem, error)
	FindByName(folded string) (*models.InventoryItem, error)
	Create(item *models.InventoryItem) error
	Update(item *models.InventoryItem) error
	Delete(folded string) error
}
