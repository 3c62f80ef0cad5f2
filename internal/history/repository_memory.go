package history

import "mealplanner/internal/models"

// InMemoryRepository keeps past-meal records in process memory; used by
// tests.
type InMemoryRepository struct {
	records []models.PastMealRecord
}

// NewInMemoryRepository creates an empty in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) All() ([]models.PastMealRecord, error) {
	records := make([]models.PastMealRecord, len(r.records))
	copy(records, r.records)
	return records, nil
}

func (r *InMemoryRepository) Append(record *models.PastMealRecord) error {
	record.ID = uint(len(r.records) + 1)
	r.records = append(r.records, *record)
	return nil
}
