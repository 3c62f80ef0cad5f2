package plans

import (
	"mealplanner/internal/models"
)

// InMemoryRepository keeps saved meal plans in process memory; used by
// tests.
type InMemoryRepository struct {
	plans  map[string]*models.SavedMealPlan
	order  []string
	nextID uint
}

// NewInMemoryRepository creates an empty in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		plans: make(map[string]*models.SavedMealPlan),
	}
}

func (r *InMemoryRepository) All() ([]models.SavedMealPlan, error) {
	saved := make([]models.SavedMealPlan, 0, len(r.plans))
	for _, folded := range r.order {
		if plan, ok := r.plans[folded]; ok {
			saved = append(saved, *plan)
		}
	}
	return saved, nil
}

func (r *InMemoryRepository) FindByName(folded string) (*models.SavedMealPlan, error) {
	plan, ok := r.plans[folded]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *plan
	return &copied, nil
}

func (r *InMemoryRepository) Create(plan *models.SavedMealPlan) error {
	r.nextID++
	plan.ID = r.nextID

	folded := models.FoldName(plan.Name)
	copied := *plan
	r.plans[folded] = &copied
	r.order = append(r.order, folded)
	return nil
}

func (r *InMemoryRepository) Update(plan *models.SavedMealPlan) error {
	folded := models.FoldName(plan.Name)
	if _, ok := r.plans[folded]; !ok {
		return ErrNotFound
	}
	copied := *plan
	r.plans[folded] = &copied
	return nil
}

func (r *InMemoryRepository) Delete(folded string) error {
	if _, ok := r.plans[folded]; !ok {
		return ErrNotFound
	}
	delete(r.plans, folded)
	for i, key := range r.order {
		if key == folded {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
