package models

import (
	"strings"

	"github.com/jinzhu/gorm"
)

// InventoryItem represents a tracked ingredient in the kitchen inventory.
// Identity is the case-folded name; at most one row exists per folded name
// and the quantity is never negative.
type InventoryItem struct {
	gorm.Model `json:"-"`
	Name       string  `gorm:"not null" json:"item"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	Category   string  `json:"category"`
}

// TableName sets the table name for InventoryItem
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// InventoryCandidate is one row produced by the receipt parser. Candidates
// are not persisted until the caller commits them to the inventory store.
type InventoryCandidate struct {
	Item     string  `json:"item"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
}

// Inventory and dish categories. The set is fixed; 其他 is the default
// when no rule recognizes an ingredient.
const (
	CategoryMeat      = "肉类"
	CategorySeafood   = "海鲜"
	CategoryVegetable = "蔬菜"
	CategorySoy       = "豆制品"
	CategoryEgg       = "蛋类"
	CategoryStaple    = "主食"
	CategoryCondiment = "调料"
	CategoryOther     = "其他"
)

// Categories lists every valid category in display order.
var Categories = []string{
	CategoryMeat,
	CategorySeafood,
	CategoryVegetable,
	CategorySoy,
	CategoryEgg,
	CategoryStaple,
	CategoryCondiment,
	CategoryOther,
}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// NormalizeCategory maps unrecognized categories to 其他.
func NormalizeCategory(c string) string {
	if ValidCategory(c) {
		return c
	}
	return CategoryOther
}

// FoldName normalizes an item name for identity comparison.
func FoldName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
