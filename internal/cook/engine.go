package cook

import (
	"errors"
	"strings"
	"time"

	"mealplanner/internal/dishes"
	"mealplanner/internal/history"
	"mealplanner/internal/inventory"
)

// DefaultAmount is consumed per ingredient when the caller gives no
// override.
const DefaultAmount = 1.0

// ErrDishNameRequired is returned for a blank dish name; nothing is logged
// or decremented in that case.
var ErrDishNameRequired = errors.New("dish name is required")

// IngredientUsage reports the inventory effect of one ingredient.
type IngredientUsage struct {
	Ingredient string  `json:"ingredient"`
	Matched    string  `json:"matched,omitempty"`
	Requested  float64 `json:"requested"`
	Consumed   float64 `json:"consumed"`
	Remaining  float64 `json:"remaining"`
	Resolved   bool    `json:"resolved"`
}

// ConsumptionReport summarizes one mark-cooked call. Unresolved lists the
// ingredients that matched nothing in inventory so the caller can warn the
// user; their presence is not an error.
type ConsumptionReport struct {
	DishName    string            `json:"dish_name"`
	Date        string            `json:"date"`
	Ingredients []IngredientUsage `json:"ingredients"`
	Unresolved  []string          `json:"unresolved,omitempty"`
}

// Engine marks dishes as cooked: it decrements inventory per ingredient and
// appends one past-meal record per call.
type Engine struct {
	store   *inventory.Store
	catalog *dishes.Service
	log     *history.Log
	now     func() time.Time
}

// NewEngine creates an engine over the given collaborators.
func NewEngine(store *inventory.Store, catalog *dishes.Service, log *history.Log) *Engine {
	return &Engine{store: store, catalog: catalog, log: log, now: time.Now}
}

// MarkCooked records that dishName was cooked today. When consume is true
// and the dish exists in the catalog, each ingredient is decremented by its
// override amount (default 1.0, re-clamped to be non-negative). Decrements
// are applied independently with no rollback: an ingredient that cannot be
// resolved yields zero consumption and never blocks the others. A dish
// missing from the catalog still gets its history record, since the client
// may mark an arbitrary plan line as cooked.
func (e *Engine) MarkCooked(dishName string, consume bool, amounts map[string]float64) (*ConsumptionReport, error) {
	name := strings.TrimSpace(dishName)
	if name == "" {
		return nil, ErrDishNameRequired
	}

	report := &ConsumptionReport{
		DishName: name,
		Date:     e.now().Format(history.DateFormat),
	}

	if consume {
		dish, err := e.catalog.FindByName(name)
		switch {
		case err == nil:
			e.consumeIngredients(report, dish.Ingredients, amounts)
		case errors.Is(err, dishes.ErrNotFound):
			// Not in the catalog; log history only.
		default:
			return nil, err
		}
	}

	if err := e.log.Record(report.Date, name); err != nil {
		return nil, err
	}
	return report, nil
}

func (e *Engine) consumeIngredients(report *ConsumptionReport, ingredients []string, amounts map[string]float64) {
	for _, ingredient := range ingredients {
		amount := DefaultAmount
		if override, ok := amounts[ingredient]; ok {
			amount = override
		}
		if amount < 0 {
			amount = 0
		}

		usage := IngredientUsage{Ingredient: ingredient, Requested: amount}
		result, err := e.store.Decrement(ingredient, amount)
		if err == nil && result.Resolved {
			usage.Matched = result.Matched
			usage.Consumed = result.Removed
			usage.Remaining = result.After
			usage.Resolved = true
		} else {
			report.Unresolved = append(report.Unresolved, ingredient)
		}
		report.Ingredients = append(report.Ingredients, usage)
	}
}
