package history

import (
	"time"

	"mealplanner/internal/models"
)

// DateFormat is the calendar-date layout used throughout the log.
const DateFormat = "2006-01-02"

// Log records cooked meals in insertion order.
type Log struct {
	repo Repository
}

// NewLog creates a log over the given repository.
func NewLog(repo Repository) *Log {
	return &Log{repo: repo}
}

// Record appends one entry for a cooked dish.
func (l *Log) Record(date, dishName string) error {
	return l.repo.Append(&models.PastMealRecord{Date: date, DishName: dishName})
}

// All returns every record in insertion order. The client reverses the list
// for display; the log does not pre-sort.
func (l *Log) All() ([]models.PastMealRecord, error) {
	return l.repo.All()
}

// RecentDishNames returns the set of dish names cooked on or after cutoff.
// Records with unparsable dates are skipped.
func (l *Log) RecentDishNames(cutoff time.Time) (map[string]bool, error) {
	records, err := l.repo.All()
	if err != nil {
		return nil, err
	}

	recent := make(map[string]bool)
	for _, record := range records {
		mealDate, err := time.Parse(DateFormat, record.Date)
		if err != nil {
			continue
		}
		if !mealDate.Before(cutoff) && record.DishName != "" {
			recent[record.DishName] = true
		}
	}
	return recent, nil
}
