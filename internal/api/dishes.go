package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mealplanner/internal/dishes"
	"mealplanner/internal/models"
)

type dishRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Ingredients []string `json:"ingredients"`
}

// GetDishes lists the dish catalog in insertion order.
func (s *Server) GetDishes(c *gin.Context) {
	all, err := s.catalog.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if all == nil {
		all = []models.Dish{}
	}
	c.JSON(http.StatusOK, gin.H{"dishes": all})
}

// AddDish creates a new dish.
func (s *Server) AddDish(c *gin.Context) {
	var req dishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dish, err := s.catalog.Add(models.Dish{
		Name:        req.Name,
		Category:    req.Category,
		Ingredients: models.StringSlice(req.Ingredients),
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.hub.Broadcast(EventDishesChanged, nil)
	c.JSON(http.StatusCreated, gin.H{"dish": dish})
}

// UpdateDish overwrites an existing dish.
func (s *Server) UpdateDish(c *gin.Context) {
	var req dishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dish, err := s.catalog.Update(c.Param("id"), models.Dish{
		Name:        req.Name,
		Category:    req.Category,
		Ingredients: models.StringSlice(req.Ingredients),
	})
	if errors.Is(err, dishes.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.hub.Broadcast(EventDishesChanged, nil)
	c.JSON(http.StatusOK, gin.H{"dish": dish})
}

// DeleteDish removes a dish; unlike inventory deletes, a missing id is an
// error.
func (s *Server) DeleteDish(c *gin.Context) {
	err := s.catalog.Remove(c.Param("id"))
	if errors.Is(err, dishes.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.hub.Broadcast(EventDishesChanged, nil)
	c.JSON(http.StatusOK, gin.H{"message": "Dish deleted successfully"})
}
