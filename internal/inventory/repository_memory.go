package inventory

import (
	"mealplanner/internal/models"
)

// InMemoryRepository keeps inventory rows in process memory. Used by tests
// and as a lightweight store when no database is configured.
type InMemoryRepository struct {
	items  map[string]*models.InventoryItem
	order  []string
	nextID uint
}

// NewInMemoryRepository creates an empty in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		items: make(map[string]*models.InventoryItem),
	}
}

func (r *InMemoryRepository) All() ([]models.InventoryItem, error) {
	items := make([]models.InventoryItem, 0, len(r.items))
	for _, folded := range r.order {
		if item, ok := r.items[folded]; ok {
			items = append(items, *item)
		}
	}
	return items, nil
}

func (r *InMemoryRepository) FindByName(folded string) (*models.InventoryItem, error) {
	item, ok := r.items[folded]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *InMemoryRepository) Create(item *models.InventoryItem) error {
	r.nextID++
	item.ID = r.nextID

	folded := models.FoldName(item.Name)
	copied := *item
	r.items[folded] = &copied
	r.order = append(r.order, folded)
	return nil
}

func (r *InMemoryRepository) Update(item *models.InventoryItem) error {
	folded := models.FoldName(item.Name)
	if _, ok := r.items[folded]; !ok {
		return ErrNotFound
	}
	copied := *item
	r.items[folded] = &copied
	return nil
}

func (r *InMemoryRepository) Delete(folded string) error {
	if _, ok := r.items[folded]; !ok {
		return nil
	}
	delete(r.items, folded)
	for i, key := range r.order {
		if key == folded {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
