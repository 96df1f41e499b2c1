package routes

import (
	"github.com/gin-gonic/gin"

	"restaurant-orders-api/handlers"
)

// SetupRoutes registers the public API on the /api group.
func SetupRoutes(api *gin.RouterGroup, orders *handlers.OrderHandler, menu *handlers.MenuHandler, visitors *handlers.VisitorHandler) {
	// ── Menu (static catalog) ──────────────────────────────────────
	m := api.Group("/menu")
	{
		m.GET("", menu.GetMenu)
		m.GET("/categories", menu.GetCategories)
		m.GET("/items", menu.GetItems)
		m.GET("/items/:categoryId", menu.GetItemsByCategory)
		m.GET("/search", menu.Search)
	}

	// ── Orders (in-memory ledger) ──────────────────────────────────
	o := api.Group("/orders")
	{
		o.GET("", orders.List)
		o.POST("", orders.Create)
		// static routes before the :id wildcard
		o.GET("/stats", orders.Stats)
		o.GET("/flow", orders.Flow)
		o.GET("/:id", orders.Get)
		o.PUT("/:id/status", orders.UpdateStatus)
		o.DELETE("/:id", orders.Cancel)
	}

	// ── Visitors (CRM) ─────────────────────────────────────────────
	v := api.Group("/visitors")
	{
		v.GET("", visitors.List)
		v.POST("", visitors.Create)
		v.GET("/:id", visitors.Get)
		v.PUT("/:id", visitors.Update)
		v.DELETE("/:id", visitors.Delete)
		v.POST("/:id/contact", visitors.LogContact)
		v.GET("/:id/messages", visitors.Messages)
	}
}
