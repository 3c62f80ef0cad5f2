package history

import "mealplanner/internal/models"

// Repository stores past-meal records. The log is append-only; no deletion
// is part of the contract.
type Repository interface {
	All() ([]models.PastMealRecord, error)
	Append(record *models.PastMealRecord) error
}
