package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/jinzhu/gorm"
)

// StringSlice represents a slice of strings that can be stored in the database
type StringSlice []string

// Value converts the slice to a JSON string for storage
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// Scan converts the database value back to a slice
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported type for StringSlice")
	}
}

// Dish represents a named recipe in the dish catalog. The planner treats the
// name as the lookup key; DishID is the opaque identifier used by the API.
type Dish struct {
	gorm.Model  `json:"-"`
	DishID      string      `gorm:"column:dish_id;unique_index" json:"id"`
	Name        string      `gorm:"not null" json:"name"`
	Category    string      `json:"category"`
	Ingredients StringSlice `gorm:"type:text" json:"ingredients"`
}

// TableName sets the table name for Dish
func (Dish) TableName() string {
	return "dishes"
}
