package plans

import (
	"errors"
	"strings"
	"time"

	"mealplanner/internal/models"
)

// Validation errors surfaced verbatim to the caller.
var (
	ErrNameRequired = errors.New("plan name is required")
	ErrPlanRequired = errors.New("plan content is required")
)

const timestampFormat = "2006-01-02 15:04:05"

// Service manages named meal plan snapshots. A generated plan is transient;
// saving it under a name is how the user keeps a copy of the edited text.
type Service struct {
	repo Repository
}

// NewService creates a service over the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every saved plan in insertion order.
func (s *Service) List() ([]models.SavedMealPlan, error) {
	return s.repo.All()
}

// Save stores plan text under a name. Saving to an existing name keeps the
// original creation date and stamps the update time.
func (s *Service) Save(name, planText string) (*models.SavedMealPlan, error) {
	name = strings.TrimSpace(name)
	planText = strings.TrimSpace(planText)
	if name == "" {
		return nil, ErrNameRequired
	}
	if planText == "" {
		return nil, ErrPlanRequired
	}

	now := time.Now().Format(timestampFormat)

	existing, err := s.repo.FindByName(models.FoldName(name))
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		existing.Plan = planText
		existing.UpdatedDate = now
		return existing, s.repo.Update(existing)
	}

	plan := &models.SavedMealPlan{Name: name, Plan: planText, Date: now}
	return plan, s.repo.Create(plan)
}

// Remove deletes the saved plan with the given name.
func (s *Service) Remove(name string) error {
	return s.repo.Delete(models.FoldName(name))
}
