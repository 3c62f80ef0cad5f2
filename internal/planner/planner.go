package planner

import (
	"sort"
	"strings"

	"mealplanner/internal/models"
)

// Per-day composition limits: one vegetable and one meat dish are always
// attempted, then extras up to the cap.
const (
	extraDishesPerDay = 2
	maxDishesPerDay   = 4
	minDishesPerDay   = 2
)

type scoredDish struct {
	dish  models.Dish
	score float64
}

// Generate builds a 7-day meal plan from the dish catalog and the names of
// items currently in inventory. Dishes are scored by the fraction of their
// ingredients covered by inventory; only dishes with at least one covered
// ingredient are eligible, and dishes in recent (cooked within the last
// week) are excluded. Each day gets a vegetable dish and a meat or seafood
// dish when available, preferring dishes not yet scheduled this week, plus
// a few of the best remaining dishes. A day with nothing eligible gets the
// (待定) placeholder.
//
// Generation is deterministic for a given catalog and inventory: ties are
// broken by catalog insertion order.
func Generate(dishes []models.Dish, inventoryNames []string, recent map[string]bool, startDay int) models.MealPlan {
	plan := models.NewMealPlan(startDay)

	var eligible []scoredDish
	for _, dish := range dishes {
		if recent[dish.Name] {
			continue
		}
		if score := scoreDish(dish, inventoryNames); score > 0 {
			eligible = append(eligible, scoredDish{dish: dish, score: score})
		}
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].score > eligible[j].score
	})

	var vegetable, meat []scoredDish
	for _, sd := range eligible {
		switch sd.dish.Category {
		case models.CategoryVegetable:
			vegetable = append(vegetable, sd)
		case models.CategoryMeat, models.CategorySeafood:
			meat = append(meat, sd)
		}
	}

	used := make(map[string]int)
	for _, label := range plan.Order {
		var day []string

		pick := func(pool []scoredDish) {
			for _, sd := range pool {
				if used[sd.dish.Name] == 0 {
					day = append(day, sd.dish.Name)
					used[sd.dish.Name]++
					return
				}
			}
			if len(pool) == 0 {
				return
			}
			// Everything scheduled already; reuse the least-used dish.
			best := pool[0]
			for _, sd := range pool[1:] {
				if used[sd.dish.Name] < used[best.dish.Name] {
					best = sd
				}
			}
			day = append(day, best.dish.Name)
			used[best.dish.Name]++
		}
		pick(vegetable)
		pick(meat)

		added := 0
		for _, sd := range eligible {
			if added >= extraDishesPerDay {
				break
			}
			if onDay(day, sd.dish.Name) {
				continue
			}
			day = append(day, sd.dish.Name)
			used[sd.dish.Name]++
			added++
		}

		if len(day) < minDishesPerDay {
			for _, sd := range eligible {
				if len(day) >= maxDishesPerDay {
					break
				}
				if onDay(day, sd.dish.Name) {
					continue
				}
				day = append(day, sd.dish.Name)
				used[sd.dish.Name]++
			}
		}

		if len(day) == 0 {
			day = []string{models.Placeholder}
		}
		plan.Days[label] = day
	}

	return plan
}

// scoreDish returns the fraction of the dish's ingredients that match an
// inventory item.
func scoreDish(dish models.Dish, inventoryNames []string) float64 {
	if len(dish.Ingredients) == 0 {
		return 0
	}

	matched := 0
	for _, ingredient := range dish.Ingredients {
		for _, name := range inventoryNames {
			if matchIngredient(name, ingredient) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(dish.Ingredients))
}

// matchIngredient reports whether an inventory item name satisfies a dish
// ingredient. Partial matching lets 鸡翅 cover 鸡翅根 and 鸡翅中; a shared
// two-character prefix catches close variants.
func matchIngredient(inventoryName, ingredient string) bool {
	inv := models.FoldName(inventoryName)
	ing := models.FoldName(ingredient)
	if inv == "" || ing == "" {
		return false
	}
	if inv == ing {
		return true
	}
	if strings.Contains(inv, ing) || strings.Contains(ing, inv) {
		return true
	}

	invRunes := []rune(inv)
	ingRunes := []rune(ing)
	if len(invRunes) >= 2 && len(ingRunes) >= 2 {
		return string(invRunes[:2]) == string(ingRunes[:2])
	}
	return false
}

func onDay(day []string, name string) bool {
	for _, scheduled := range day {
		if scheduled == name {
			return true
		}
	}
	return false
}
