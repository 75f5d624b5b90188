package routes

import (
	"encoding/json"
	"net/http"
	"testing"

	"blogapi/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func TestSetupRoutes(t *testing.T) {
	router := setupTestRouter(t, setupTestDB(t))

	w := request(t, router, "POST", "/posts", `{"title":"T","author":"A","content":"hello"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var post models.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
	}{
		{name: "Root", method: "GET", path: "/", expectedStatus: http.StatusOK},
		{name: "GET posts", method: "GET", path: "/posts", expectedStatus: http.StatusOK},
		{name: "GET single post", method: "GET", path: "/posts/" + post.ID, expectedStatus: http.StatusOK},
		{name: "GET post comments", method: "GET", path: "/posts/" + post.ID + "/comments", expectedStatus: http.StatusOK},
		{name: "Search", method: "GET", path: "/search?q=hello", expectedStatus: http.StatusOK},
		{name: "Filter", method: "GET", path: "/filter?author=A", expectedStatus: http.StatusOK},
		{name: "Unknown post", method: "GET", path: "/posts/invalid", expectedStatus: http.StatusNotFound},
		{name: "Unknown route", method: "GET", path: "/nowhere", expectedStatus: http.StatusNotFound},
		{name: "Unsupported method", method: "PATCH", path: "/posts/" + post.ID, expectedStatus: http.StatusNotFound},
		{name: "Missing comment", method: "DELETE", path: "/comments/none", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := request(t, router, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		})
	}
}

func TestUnmatchedRouteBody(t *testing.T) {
	router := setupTestRouter(t, setupTestDB(t))

	for _, tc := range []struct{ method, path string }{
		{"GET", "/nowhere"},
		{"PATCH", "/posts"},
		{"POST", "/comments/abc"},
	} {
		w := request(t, router, tc.method, tc.path, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Resource not found"}`, w.Body.String())
	}
}

func TestRateLimitedRoutes(t *testing.T) {
	router := SetupRoutes(Dependencies{
		PostService: nil,
		Logger:      zap.NewNop(),
		Limiter:     rate.NewLimiter(rate.Limit(0.0001), 1),
	})

	first := request(t, router, "GET", "/", "")
	second := request(t, router, "GET", "/", "")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestNewServer(t *testing.T) {
	router := setupTestRouter(t, setupTestDB(t))
	srv := NewServer(":0", router)

	assert.Equal(t, ":0", srv.Addr)
	assert.NotNil(t, srv.Handler)
	assert.NotZero(t, srv.ReadTimeout)
}
