package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCarousel_ResolvesImagePaths(t *testing.T) {
	app, server := newTestApp(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/carousel-images/public/active", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": []map[string]interface{}{
				{"id": "c1", "image": "/uploads/hero.jpg", "position": 1},
			},
		})
	})
	defer server.Close()
	router := newTestRouter(app)

	code, body := doJSON(t, router, http.MethodGet, "/carousel", "")

	require.Equal(t, http.StatusOK, code)
	images := body["images"].([]interface{})
	require.Len(t, images, 1)
	img := images[0].(map[string]interface{})
	assert.Equal(t, server.URL+"/uploads/hero.jpg", img["image"])
}

func TestGetCarousel_FallsBackWhenBackendDown(t *testing.T) {
	app, server := newTestApp(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	})
	defer server.Close()
	router := newTestRouter(app)

	code, body := doJSON(t, router, http.MethodGet, "/carousel", "")

	require.Equal(t, http.StatusOK, code)
	images := body["images"].([]interface{})
	require.Len(t, images, len(fallbackCarousel))
	img := images[0].(map[string]interface{})
	assert.Equal(t, "fallback-1", img["id"])
}

func TestGetCarousel_EmptyListAlsoFallsBack(t *testing.T) {
	app, server := newTestApp(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": []interface{}{}})
	})
	defer server.Close()
	router := newTestRouter(app)

	_, body := doJSON(t, router, http.MethodGet, "/carousel", "")
	require.Len(t, body["images"].([]interface{}), len(fallbackCarousel))
}

func TestGetBlogBySlug_NormalizesSlug(t *testing.T) {
	app, server := newTestApp(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/blogs/public/by-url/summer-style-guide", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"id": "b1", "title": "Summer Style Guide"},
		})
	})
	defer server.Close()
	router := newTestRouter(app)

	code, body := doJSON(t, router, http.MethodGet, "/blogs/Summer%20Style%20Guide%21", "")

	require.Equal(t, http.StatusOK, code)
	blog := body["blog"].(map[string]interface{})
	assert.Equal(t, "Summer Style Guide", blog["title"])
}

func TestGetBlogBySlug_NotFound(t *testing.T) {
	app, server := newTestApp(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	defer server.Close()
	router := newTestRouter(app)

	code, body := doJSON(t, router, http.MethodGet, "/blogs/missing-post", "")

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Blog post not found", body["error"])
}

func TestGetBlogs_FailureDegradesToEmpty(t *testing.T) {
	app, server := newTestApp(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	})
	defer server.Close()
	router := newTestRouter(app)

	code, body := doJSON(t, router, http.MethodGet, "/blogs", "")

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0.0, body["total"])
}

func TestGetSettings_ReportsActiveCurrency(t *testing.T) {
	app, server := newTestApp(func(w http.ResponseWriter, r *http.Request) {})
	defer server.Close()
	router := newTestRouter(app)

	_, body := doJSON(t, router, http.MethodGet, "/settings", "")
	assert.Equal(t, "USD", body["currency"])
	assert.Equal(t, "$", body["currencySymbol"])

	app.Currency.Set("AED")

	_, body = doJSON(t, router, http.MethodGet, "/settings", "")
	assert.Equal(t, "AED", body["currency"])
	assert.Equal(t, "AED", body["currencySymbol"])
}
