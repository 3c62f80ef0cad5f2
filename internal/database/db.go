package database

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"mealplanner/internal/models"
)

var db *gorm.DB

// InitDB opens the SQLite database and migrates the schema
func InitDB(dbPath string) error {
	var err error
	db, err = gorm.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Configure connection pool
	db.DB().SetMaxIdleConns(10)
	db.DB().SetMaxOpenConns(100)
	db.DB().SetConnMaxLifetime(time.Hour)

	db.AutoMigrate(
		&models.InventoryItem{},
		&models.Dish{},
		&models.PastMealRecord{},
		&models.SavedMealPlan{},
	)

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return db
}

// CloseDB closes the database connection
func CloseDB() error {
	if db != nil {
		return db.Close()
	}
	return nil
}
