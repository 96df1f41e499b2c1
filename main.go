package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"restaurant-orders-api/config"
	"restaurant-orders-api/handlers"
	"restaurant-orders-api/ledger"
	"restaurant-orders-api/middleware"
	"restaurant-orders-api/routes"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	// Visitor CRM database
	db := config.InitDB(cfg.VisitorsDB)

	// In-memory order ledger, lives for the process lifetime
	orderLedger := ledger.New()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the Restaurant Orders API",
			"health":  "/api/health",
			"menu":    "/api/menu",
		})
	})

	// The whole API surface sits behind the per-IP rate limit
	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	api := r.Group("/api")
	api.Use(limiter.Middleware())

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   "1.0.0",
		})
	})

	routes.SetupRoutes(api, handlers.NewOrderHandler(orderLedger), handlers.NewMenuHandler(), handlers.NewVisitorHandler(db))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Route not found"})
	})

	port := cfg.Port
	logger.Info("server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
