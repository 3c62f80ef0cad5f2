package dishes

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"mealplanner/internal/models"
)

// Validation errors surfaced verbatim to the caller.
var (
	ErrNameRequired    = errors.New("dish name is required")
	ErrInvalidCategory = errors.New("dish category must be one of: " + strings.Join(models.Categories, ", "))
	ErrNoIngredients   = errors.New("dish must have at least one ingredient")
	ErrDuplicateName   = errors.New("a dish with this name already exists")
)

// Service manages the dish catalog. The meal planning core only reads the
// catalog; the CRUD surface exists for the client's dish library.
type Service struct {
	repo Repository
}

// NewService creates a catalog service over the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every dish in catalog insertion order.
func (s *Service) List() ([]models.Dish, error) {
	return s.repo.All()
}

// Get returns the dish with the given id.
func (s *Service) Get(id string) (*models.Dish, error) {
	return s.repo.FindByID(id)
}

// FindByName returns the first dish whose name matches case-insensitively.
func (s *Service) FindByName(name string) (*models.Dish, error) {
	all, err := s.repo.All()
	if err != nil {
		return nil, err
	}
	folded := models.FoldName(name)
	for i := range all {
		if models.FoldName(all[i].Name) == folded {
			return &all[i], nil
		}
	}
	return nil, ErrNotFound
}

// Add validates and stores a new dish, assigning its opaque id.
func (s *Service) Add(dish models.Dish) (*models.Dish, error) {
	dish.Name = strings.TrimSpace(dish.Name)
	if err := s.validate(dish); err != nil {
		return nil, err
	}
	if taken, err := s.nameTaken(dish.Name, ""); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrDuplicateName
	}

	dish.DishID = uuid.New().String()
	if err := s.repo.Create(&dish); err != nil {
		return nil, err
	}
	return &dish, nil
}

// Update validates and overwrites the dish with the given id.
func (s *Service) Update(id string, updates models.Dish) (*models.Dish, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	existing.Name = strings.TrimSpace(updates.Name)
	existing.Category = updates.Category
	existing.Ingredients = updates.Ingredients

	if err := s.validate(*existing); err != nil {
		return nil, err
	}
	if taken, err := s.nameTaken(existing.Name, id); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrDuplicateName
	}

	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Remove deletes the dish; a missing id is an error, unlike inventory
// deletes.
func (s *Service) Remove(id string) error {
	return s.repo.Delete(id)
}

func (s *Service) validate(dish models.Dish) error {
	if dish.Name == "" {
		return ErrNameRequired
	}
	if !models.ValidCategory(dish.Category) {
		return ErrInvalidCategory
	}
	if len(dish.Ingredients) == 0 {
		return ErrNoIngredients
	}
	return nil
}

func (s *Service) nameTaken(name, excludeID string) (bool, error) {
	all, err := s.repo.All()
	if err != nil {
		return false, err
	}
	folded := models.FoldName(name)
	for i := range all {
		if all[i].DishID != excludeID && models.FoldName(all[i].Name) == folded {
			return true, nil
		}
	}
	return false, nil
}
