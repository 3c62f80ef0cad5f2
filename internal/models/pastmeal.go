package models

import "github.com/jinzhu/gorm"

// PastMealRecord is one entry in the append-only cooked-meals log.
// Date is the calendar date of marking-cooked, formatted YYYY-MM-DD.
type PastMealRecord struct {
	gorm.Model `json:"-"`
	Date       string `json:"date"`
	DishName   string `json:"dish_name"`
}

// TableName sets the table name for PastMealRecord
func (PastMealRecord) TableName() string {
	return "past_meals"
}
