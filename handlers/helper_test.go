package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"restaurant-orders-api/handlers"
	"restaurant-orders-api/ledger"
	"restaurant-orders-api/models"
	"restaurant-orders-api/routes"
)

// newServer wires the full /api surface over a fresh ledger and an
// in-memory CRM database.
func newServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Visitor{}, &models.MessageLog{}))

	r := gin.New()
	api := r.Group("/api")
	routes.SetupRoutes(api,
		handlers.NewOrderHandler(ledger.New()),
		handlers.NewMenuHandler(),
		handlers.NewVisitorHandler(db),
	)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func validOrderBody() map[string]any {
	return map[string]any{
		"items": []map[string]any{
			{"id": 17, "name": "Samosa", "price": 60, "quantity": 2},
		},
		"customer": map[string]any{"name": "Raj", "phone": "9999999999"},
		"total":    120,
	}
}

func createOrder(t *testing.T, r *gin.Engine) int {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/orders", validOrderBody())
	require.Equal(t, http.StatusCreated, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	return int(data["id"].(float64))
}
