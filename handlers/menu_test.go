package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMenu(t *testing.T) {
	r := newServer(t)

	w := do(t, r, http.MethodGet, "/api/menu", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w)["data"].(map[string]any)
	assert.Len(t, data["categories"].([]any), 7)
	assert.Len(t, data["foodItems"].(map[string]any), 7)
}

func TestGetCategories(t *testing.T) {
	r := newServer(t)

	w := do(t, r, http.MethodGet, "/api/menu/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["data"].([]any), 7)
}

func TestGetItemsByCategory(t *testing.T) {
	r := newServer(t)

	w := do(t, r, http.MethodGet, "/api/menu/items/drinks", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Len(t, resp["data"].([]any), 6)
	assert.Equal(t, "Drinks", resp["category"].(map[string]any)["name"])

	// unknown category: empty list, null category, still 200
	w = do(t, r, http.MethodGet, "/api/menu/items/sushi", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode(t, w)
	assert.Empty(t, resp["data"])
	assert.Nil(t, resp["category"])
}

func TestMenuSearch(t *testing.T) {
	r := newServer(t)

	w := do(t, r, http.MethodGet, "/api/menu/search?q=biryani", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, float64(2), resp["count"])
	assert.Equal(t, "biryani", resp["query"])

	w = do(t, r, http.MethodGet, "/api/menu/search", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Search query is required", decode(t, w)["error"])
}
