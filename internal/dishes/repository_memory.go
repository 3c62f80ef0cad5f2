package dishes

import (
	"mealplanner/internal/models"
)

// InMemoryRepository keeps the dish catalog in process memory; used by
// tests.
type InMemoryRepository struct {
	dishes []models.Dish
}

// NewInMemoryRepository creates an empty in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) All() ([]models.Dish, error) {
	dishes := make([]models.Dish, len(r.dishes))
	copy(dishes, r.dishes)
	return dishes, nil
}

func (r *InMemoryRepository) FindByID(id string) (*models.Dish, error) {
	for i := range r.dishes {
		if r.dishes[i].DishID == id {
			copied := r.dishes[i]
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (r *InMemoryRepository) Create(dish *models.Dish) error {
	dish.ID = uint(len(r.dishes) + 1)
	r.dishes = append(r.dishes, *dish)
	return nil
}

func (r *InMemoryRepository) Update(dish *models.Dish) error {
	for i := range r.dishes {
		if r.dishes[i].DishID == dish.DishID {
			r.dishes[i] = *dish
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) Delete(id string) error {
	for i := range r.dishes {
		if r.dishes[i].DishID == id {
			r.dishes = append(r.dishes[:i], r.dishes[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
