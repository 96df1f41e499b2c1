package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-orders-api/menu"
)

// MenuHandler serves the static catalog.
type MenuHandler struct{}

func NewMenuHandler() *MenuHandler {
	return &MenuHandler{}
}

// GetMenu handles GET /api/menu: categories and items in one payload
func (h *MenuHandler) GetMenu(c *gin.Context) {
	respondData(c, http.StatusOK, gin.H{
		"categories": menu.Categories,
		"foodItems":  menu.FoodItems,
	})
}

// GetCategories handles GET /api/menu/categories
func (h *MenuHandler) GetCategories(c *gin.Context) {
	respondData(c, http.StatusOK, menu.Categories)
}

// GetItems handles GET /api/menu/items
func (h *MenuHandler) GetItems(c *gin.Context) {
	respondData(c, http.StatusOK, menu.FoodItems)
}

// GetItemsByCategory handles GET /api/menu/items/:categoryId. An
// unknown category yields an empty list and a null category, not a 404.
func (h *MenuHandler) GetItemsByCategory(c *gin.Context) {
	categoryID := c.Param("categoryId")
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"data":     menu.ItemsByCategory(categoryID),
		"category": menu.CategoryByID(categoryID),
	})
}

// Search handles GET /api/menu/search?q=
func (h *MenuHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		respondError(c, http.StatusBadRequest, "Search query is required", "")
		return
	}

	results := menu.Search(q)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    results,
		"count":   len(results),
		"query":   q,
	})
}
