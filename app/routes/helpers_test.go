package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blogapi/app/repositories"
	"blogapi/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestDB(t *testing.T) *badger.DB {
	db, err := repositories.OpenInMemory(nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func setupTestRouter(t *testing.T, db *badger.DB) *mux.Router {
	postRepo := repositories.NewBadgerPostRepository(db)
	return SetupRoutes(Dependencies{
		PostService:    services.NewPostService(postRepo),
		CommentService: services.NewCommentService(postRepo),
		Logger:         zap.NewNop(),
	})
}

func request(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
