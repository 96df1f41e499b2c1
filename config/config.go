package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"restaurant-orders-api/models"
)

// Config holds everything read from the environment at boot.
type Config struct {
	Port           string
	AllowedOrigins []string
	VisitorsDB     string
	RateLimit      int
	RateWindow     time.Duration
}

// Load reads .env if present, then the environment. Every key has a
// development default.
func Load() Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	return Config{
		Port:           getEnv("PORT", "5000"),
		AllowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS")),
		VisitorsDB:     getEnv("VISITORS_DB", "visitors.db"),
		RateLimit:      getEnvInt("RATE_LIMIT", 100),
		RateWindow:     time.Duration(getEnvInt("RATE_WINDOW_MINUTES", 15)) * time.Minute,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("ignoring %s=%q: %v", key, v, err)
		return fallback
	}
	return i
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// InitDB opens the visitor CRM database and migrates its schema.
func InitDB(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(&models.Visitor{}, &models.MessageLog{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	return db
}
