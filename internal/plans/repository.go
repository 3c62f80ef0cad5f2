package plans

import (
	"errors"

	"mealplanner/internal/models"
)

// ErrNotFound is returned when no saved plan matches the requested name.
var ErrNotFound = errors.New("meal plan not found")

// Repository stores named meal plans keyed by the case-folded plan name.
type Repository interface {
	All() ([]models.SavedMealPlan, error)
	FindByName(folded string) (*models.SavedMealPlan, error)
	Create(plan *models.SavedMealPlan) error
	Update(plan *models.SavedMealPlan) error
	Delete(folded string) error
}
