package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mealplanner/internal/cook"
	"mealplanner/internal/models"
)

// GetPastMeals lists the cooked-meal history in insertion order.
func (s *Server) GetPastMeals(c *gin.Context) {
	records, err := s.log.All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if records == nil {
		records = []models.PastMealRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"past_meals": records})
}

// RecordMeal marks a dish as cooked: it appends one history record and,
// when consume_ingredients is set, decrements inventory per ingredient.
func (s *Server) RecordMeal(c *gin.Context) {
	var req struct {
		DishName           string             `json:"dish_name"`
		ConsumeIngredients bool               `json:"consume_ingredients"`
		IngredientAmounts  map[string]float64 `json:"ingredient_amounts"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := s.engine.MarkCooked(req.DishName, req.ConsumeIngredients, req.IngredientAmounts)
	if errors.Is(err, cook.ErrDishNameRequired) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	dishesCooked.Inc()
	s.hub.Broadcast(EventMealCooked, report)
	if req.ConsumeIngredients {
		s.hub.Broadcast(EventInventoryChanged, nil)
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Meal recorded successfully", "report": report})
}
