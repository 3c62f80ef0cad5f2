package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mealplanner/internal/models"
	"mealplanner/internal/planner"
	"mealplanner/internal/plans"
)

// recentWindow is how far back the planner looks for dishes to avoid
// repeating.
const recentWindow = 7 * 24 * time.Hour

// GeneratePlan builds a fresh 7-day plan from the current inventory and
// dish catalog. The plan is returned as block text; it is transient and not
// persisted unless the client saves it under a name.
func (s *Server) GeneratePlan(c *gin.Context) {
	var req struct {
		StartDay int `json:"start_day"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.StartDay < 0 || req.StartDay >= len(models.WeekdayLabels) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_day must be between 0 and 6"})
		return
	}

	items, err := s.store.Items()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	catalog, err := s.catalog.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	recent, err := s.log.RecentDishNames(time.Now().Add(-recentWindow))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}

	plan := planner.Generate(catalog, names, recent, req.StartDay)
	plansGenerated.Inc()
	c.JSON(http.StatusOK, gin.H{"meal_plan": plan.Render()})
}

// GetMealPlans lists every saved meal plan.
func (s *Server) GetMealPlans(c *gin.Context) {
	saved, err := s.plans.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if saved == nil {
		saved = []models.SavedMealPlan{}
	}
	c.JSON(http.StatusOK, gin.H{"meal_plans": saved})
}

// SaveMealPlan stores plan text under a name, overwriting an existing plan
// of the same name.
func (s *Server) SaveMealPlan(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
		Plan string `json:"plan"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := s.plans.Save(req.Name, req.Plan)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"meal_plan": saved})
}

// DeleteMealPlan removes a saved plan by name.
func (s *Server) DeleteMealPlan(c *gin.Context) {
	err := s.plans.Remove(c.Param("name"))
	if errors.Is(err, plans.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal plan not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal plan deleted successfully"})
}
