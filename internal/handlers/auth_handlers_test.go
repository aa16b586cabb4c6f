package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_ForwardsCredentials(t *testing.T) {
	app, server := newTestApp(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "amina@example.com", payload["email"])
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"token": "backend-jwt",
				"user":  map[string]string{"name": "Amina K"},
			},
		})
	})
	defer server.Close()
	router := newTestRouter(app)

	code, body := doJSON(t, router, http.MethodPost, "/auth/login",
		`{"email":"amina@example.com","password":"hunter2"}`)

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "backend-jwt", body["token"])
}

func TestLogin_RejectedCredentialsAre401(t *testing.T) {
	app, server := newTestApp(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "bad credentials",
		})
	})
	defer server.Close()
	router := newTestRouter(app)

	code, body := doJSON(t, router, http.MethodPost, "/auth/login",
		`{"email":"amina@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid email or password", body["error"])
}

func TestGetProfile_PassesBearerThrough(t *testing.T) {
	app, server := newTestApp(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer backend-jwt", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"name": "Amina K", "isBanned": false},
		})
	})
	defer server.Close()
	router := newTestRouter(app)

	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer backend-jwt")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "Amina K", user["name"])
}

func TestGetProfile_MissingTokenRejected(t *testing.T) {
	app, server := newTestApp(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("backend should not be called without a token")
	})
	defer server.Close()
	router := newTestRouter(app)

	code, body := doJSON(t, router, http.MethodGet, "/auth/profile", "")

	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Authorization token required", body["error"])
}
