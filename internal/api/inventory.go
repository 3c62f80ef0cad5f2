package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mealplanner/internal/models"
	"mealplanner/internal/parser"
)

type inventoryRequest struct {
	Item     string  `json:"item"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
}

// ParseInventory parses raw purchase text into inventory candidates. With
// save=false this is a pure preview; with save=true the candidates are
// committed with accumulate semantics.
func (s *Server) ParseInventory(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
		Save bool   `json:"save"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no text provided"})
		return
	}

	candidates := parser.ParseReceipt(req.Text)
	receiptsParsed.Inc()
	if candidates == nil {
		candidates = []models.InventoryCandidate{}
	}

	if req.Save {
		for _, candidate := range candidates {
			if _, err := s.store.Accumulate(candidate.Item, candidate.Quantity, candidate.Unit, candidate.Category); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}
		s.hub.Broadcast(EventInventoryChanged, nil)
	}

	c.JSON(http.StatusOK, gin.H{"inventory": candidates})
}

// GetInventory lists every inventory item.
func (s *Server) GetInventory(c *gin.Context) {
	items, err := s.store.Items()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if items == nil {
		items = []models.InventoryItem{}
	}
	c.JSON(http.StatusOK, gin.H{"inventory": items})
}

// AddInventoryItem adds an item with accumulate semantics: quantities of an
// existing name add up.
func (s *Server) AddInventoryItem(c *gin.Context) {
	var req inventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := s.store.Accumulate(req.Item, req.Quantity, req.Unit, req.Category)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.hub.Broadcast(EventInventoryChanged, nil)
	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// UpdateInventoryItem applies a direct edit with replace semantics. A new
// name is a delete of the old row followed by a create.
func (s *Server) UpdateInventoryItem(c *gin.Context) {
	var req inventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := s.store.Rename(c.Param("name"), req.Item, req.Quantity, req.Unit, req.Category)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.hub.Broadcast(EventInventoryChanged, nil)
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// DeleteInventoryItem removes an item; deleting an absent name succeeds.
func (s *Server) DeleteInventoryItem(c *gin.Context) {
	if err := s.store.Delete(c.Param("name")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.hub.Broadcast(EventInventoryChanged, nil)
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}
