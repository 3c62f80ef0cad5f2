package dishes

import (
	"errors"

	"mealplanner/internal/models"
)

// ErrNotFound is returned when no dish matches the requested id.
var ErrNotFound = errors.New("dish not found")

// Repository provides raw access to the dish catalog in insertion order.
type Repository interface {
	All() ([]models.Dish, error)
	FindByID(id string) (*models.Dish, error)
	Create(dish *models.Dish) error
	Update(dish *models.Dish) error
	Delete(id string) error
}
