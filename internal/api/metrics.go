package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	receiptsParsed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mealplanner_receipts_parsed_total",
		Help: "Number of receipt texts parsed into inventory candidates",
	})
	plansGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mealplanner_plans_generated_total",
		Help: "Number of weekly meal plans generated",
	})
	dishesCooked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mealplanner_dishes_cooked_total",
		Help: "Number of dishes marked as cooked",
	})
)
