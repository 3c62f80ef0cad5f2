package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"mealplanner/internal/cook"
	"mealplanner/internal/dishes"
	"mealplanner/internal/history"
	"mealplanner/internal/inventory"
	"mealplanner/internal/plans"
)

// Server wires the meal planning core to its HTTP surface. All error
// responses carry a JSON body {"error": string}; the browser client
// surfaces that string verbatim.
type Server struct {
	router  *gin.Engine
	store   *inventory.Store
	catalog *dishes.Service
	log     *history.Log
	plans   *plans.Service
	engine  *cook.Engine
	hub     *Hub
}

// NewServer creates the API server and registers all routes.
func NewServer(store *inventory.Store, catalog *dishes.Service, log *history.Log, planStore *plans.Service, engine *cook.Engine) *Server {
	router := gin.Default()
	router.Use(cors.Default())

	s := &Server{
		router:  router,
		store:   store,
		catalog: catalog,
		log:     log,
		plans:   planStore,
		engine:  engine,
		hub:     NewHub(),
	}

	s.setupRoutes()
	return s
}

// Router returns the Gin router
func (s *Server) Router() *gin.Engine {
	return s.router
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Meal planner API is running"})
	})

	// Change feed for connected clients
	s.router.GET("/ws", s.handleWebSocket)

	api := s.router.Group("/api")
	{
		// Receipt parsing and plan generation
		api.POST("/parse-inventory", s.ParseInventory)
		api.POST("/generate-plan", s.GeneratePlan)

		// Inventory management
		api.GET("/inventory", s.GetInventory)
		api.POST("/inventory", s.AddInventoryItem)
		api.PUT("/inventory/:name", s.UpdateInventoryItem)
		api.DELETE("/inventory/:name", s.DeleteInventoryItem)

		// Dish catalog
		api.GET("/dishes", s.GetDishes)
		api.POST("/dishes", s.AddDish)
		api.PUT("/dishes/:id", s.UpdateDish)
		api.DELETE("/dishes/:id", s.DeleteDish)

		// Cooked-meal history
		api.GET("/past-meals", s.GetPastMeals)
		api.POST("/past-meals", s.RecordMeal)

		// Saved meal plans
		api.GET("/meal-plans", s.GetMealPlans)
		api.POST("/meal-plans", s.SaveMealPlan)
		api.DELETE("/meal-plans/:name", s.DeleteMealPlan)
	}
}
