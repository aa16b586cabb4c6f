package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogBackend(products []map[string]interface{}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products/public/all":
			json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": products})
		case "/products/search":
			json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": products})
		default:
			http.NotFound(w, r)
		}
	}
}

func TestGetCollection_FiltersByCategory(t *testing.T) {
	app, server := newTestApp(catalogBackend([]map[string]interface{}{
		{"id": "p1", "name": "Tee", "category": "Tops", "price": 100},
		{"id": "p2", "name": "Joggers", "category": "Bottoms", "price": 150},
	}))
	defer server.Close()
	router := newTestRouter(app)

	code, body := doJSON(t, router, http.MethodGet, "/collection?category=tops", "")

	assert.Equal(t, http.StatusOK, code)
	products := body["products"].([]interface{})
	require.Len(t, products, 1)
	assert.Equal(t, "Tee", products[0].(map[string]interface{})["name"])
}

func TestGetCollection_UnsuccessfulBackendRendersEmptyState(t *testing.T) {
	app, server := newTestApp(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false})
	})
	defer server.Close()
	router := newTestRouter(app)

	code, body := doJSON(t, router, http.MethodGet, "/collection", "")

	// Empty state, not an error page.
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, body["products"])
	assert.Equal(t, 0.0, body["total"])
}

func TestGetSaleProducts_OnlyDiscounted(t *testing.T) {
	app, server := newTestApp(catalogBackend([]map[string]interface{}{
		{"id": "p1", "name": "Tee", "price": 100, "discountPercentage": 20},
		{"id": "p2", "name": "Joggers", "price": 150},
		{"id": "p3", "name": "Cap", "price": 40, "isOnSale": true},
	}))
	defer server.Close()
	router := newTestRouter(app)

	code, body := doJSON(t, router, http.MethodGet, "/sale", "")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 2.0, body["total"])
}

func TestGetSets_EmptyStateWhenNoneMatch(t *testing.T) {
	app, server := newTestApp(catalogBackend([]map[string]interface{}{
		{"id": "p1", "name": "Tee", "price": 100},
	}))
	defer server.Close()
	router := newTestRouter(app)

	code, body := doJSON(t, router, http.MethodGet, "/sets", "")

	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, body["products"])
}

func TestSearchSuggestions_BlankQueryShortCircuits(t *testing.T) {
	// Backend must not be called at all for a blank query.
	app, server := newTestApp(func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend should not be called for a blank query")
	})
	defer server.Close()
	router := newTestRouter(app)

	code, body := doJSON(t, router, http.MethodGet, "/search/suggestions?q=", "")

	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, body["suggestions"])
}

func TestSearchSuggestions_BackendFailureDegrades(t *testing.T) {
	app, server := newTestApp(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	})
	defer server.Close()
	router := newTestRouter(app)

	code, body := doJSON(t, router, http.MethodGet, "/search/suggestions?q=tee", "")

	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, body["suggestions"])
}

func TestGetCollection_NormalizesImagePaths(t *testing.T) {
	app, server := newTestApp(catalogBackend([]map[string]interface{}{
		{"id": "p1", "name": "Tee", "price": 100, "images": []string{"/uploads/tee.jpg"}},
	}))
	defer server.Close()
	router := newTestRouter(app)

	_, body := doJSON(t, router, http.MethodGet, "/collection", "")

	products := body["products"].([]interface{})
	require.Len(t, products, 1)
	images := products[0].(map[string]interface{})["images"].([]interface{})
	assert.Equal(t, server.URL+"/uploads/tee.jpg", images[0])
}
