package inventory

import (
	"errors"
	"math"
	"strings"
	"sync"
	"unicode/utf8"

	"mealplanner/internal/models"
)

// ErrEmptyName is returned when an operation is given a blank item name.
var ErrEmptyName = errors.New("item name is required")

// Store owns the merge and consumption semantics of the inventory. Every
// read-modify-write sequence runs under a single mutex: two interleaved
// decrements on the same item are not commutative once the quantity floors
// at zero, so they must be serialized.
//
// Accumulate and Replace are deliberately separate operations. Committing
// parsed receipt rows adds to an existing quantity, while a direct edit
// overwrites it; one overloaded upsert invites confusing the two call sites.
type Store struct {
	mu   sync.Mutex
	repo Repository
}

// NewStore creates a store over the given repository.
func NewStore(repo Repository) *Store {
	return &Store{repo: repo}
}

// Items returns every inventory item in stable repository order.
func (s *Store) Items() ([]models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.All()
}

// Accumulate adds qty to the item with the same case-folded name, creating
// it when absent. Unit and category refresh only when supplied, so a bare
// restock does not erase earlier details.
func (s *Store) Accumulate(name string, qty float64, unit, category string) (*models.InventoryItem, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if qty < 0 {
		qty = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.FindByName(models.FoldName(name))
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		existing.Quantity += qty
		if unit != "" {
			existing.Unit = unit
		}
		if category != "" {
			existing.Category = models.NormalizeCategory(category)
		}
		return existing, s.repo.Update(existing)
	}

	item := &models.InventoryItem{
		Name:     strings.TrimSpace(name),
		Quantity: qty,
		Unit:     unit,
		Category: models.NormalizeCategory(category),
	}
	return item, s.repo.Create(item)
}

// Replace overwrites the item's quantity, unit, and category, creating the
// item when absent. This is the direct-edit path.
func (s *Store) Replace(name string, qty float64, unit, category string) (*models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaceLocked(name, qty, unit, category)
}

func (s *Store) replaceLocked(name string, qty float64, unit, category string) (*models.InventoryItem, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if qty < 0 {
		qty = 0
	}

	existing, err := s.repo.FindByName(models.FoldName(name))
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		existing.Name = strings.TrimSpace(name)
		existing.Quantity = qty
		existing.Unit = unit
		existing.Category = models.NormalizeCategory(category)
		return existing, s.repo.Update(existing)
	}

	item := &models.InventoryItem{
		Name:     strings.TrimSpace(name),
		Quantity: qty,
		Unit:     unit,
		Category: models.NormalizeCategory(category),
	}
	return item, s.repo.Create(item)
}

// Rename applies a direct edit that may change the item's name. A change in
// the case-folded name is a delete of the old row followed by a create;
// otherwise it behaves as a plain replace.
func (s *Store) Rename(oldName, name string, qty float64, unit, category string) (*models.InventoryItem, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	oldFolded := models.FoldName(oldName)
	if oldFolded != models.FoldName(name) {
		if err := s.repo.Delete(oldFolded); err != nil {
			return nil, err
		}
	}
	return s.replaceLocked(name, qty, unit, category)
}

// Delete removes the item; absence is not an error.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Delete(models.FoldName(name))
}

// DecrementResult reports the outcome of a single ingredient decrement.
type DecrementResult struct {
	Matched  string
	Before   float64
	After    float64
	Removed  float64
	Resolved bool
}

// Decrement reduces the quantity of the item matching name by amount,
// flooring at zero. Resolution prefers an exact case-insensitive match;
// otherwise a substring match in either direction wins, ties broken by the
// shortest matching key and then store order. An unresolved name is a no-op
// with Removed 0, never an error: a dish ingredient may simply not be
// tracked.
func (s *Store) Decrement(name string, amount float64) (DecrementResult, error) {
	if amount < 0 {
		amount = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.repo.All()
	if err != nil {
		return DecrementResult{}, err
	}

	target := resolve(items, name)
	if target == nil {
		return DecrementResult{}, nil
	}

	before := target.Quantity
	removed := math.Min(amount, before)
	target.Quantity = before - removed
	if err := s.repo.Update(target); err != nil {
		return DecrementResult{}, err
	}

	return DecrementResult{
		Matched:  target.Name,
		Before:   before,
		After:    target.Quantity,
		Removed:  removed,
		Resolved: true,
	}, nil
}

// resolve picks the inventory item for an ingredient name: exact folded
// match first, then the shortest key related by substring in either
// direction.
func resolve(items []models.InventoryItem, name string) *models.InventoryItem {
	folded := models.FoldName(name)
	if folded == "" {
		return nil
	}

	for i := range items {
		if models.FoldName(items[i].Name) == folded {
			return &items[i]
		}
	}

	var best *models.InventoryItem
	bestLen := 0
	for i := range items {
		key := models.FoldName(items[i].Name)
		if !strings.Contains(key, folded) && !strings.Contains(folded, key) {
			continue
		}
		keyLen := utf8.RuneCountInString(key)
		if best == nil || keyLen < bestLen {
			best = &items[i]
			bestLen = keyLen
		}
	}
	return best
}
