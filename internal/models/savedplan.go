package models

import "github.com/jinzhu/gorm"

// SavedMealPlan is a named snapshot of a meal plan's block text. Saving
// under an existing name keeps the original date and stamps UpdatedDate.
type SavedMealPlan struct {
	gorm.Model  `json:"-"`
	Name        string `gorm:"not null" json:"name"`
	Plan        string `gorm:"type:text" json:"plan"`
	Date        string `json:"date"`
	UpdatedDate string `json:"updated_date,omitempty"`
}

// TableName sets the table name for SavedMealPlan
func (SavedMealPlan) TableName() string {
	return "meal_plans"
}
