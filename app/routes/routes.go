package routes

import (
	"net/http"
	"time"

	"blogapi/app/controllers"
	"blogapi/app/middleware"
	"blogapi/app/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Dependencies are the collaborators the router wires into controllers.
type Dependencies struct {
	PostService    *services.PostService
	CommentService *services.CommentService
	Logger         *zap.Logger
	// Limiter is optional; nil disables rate limiting.
	Limiter *rate.Limiter
}

// SetupRoutes defines the application's routes and returns a router.
func SetupRoutes(deps Dependencies) *mux.Router {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recoverer(log))
	router.Use(middleware.ContentTypeJSON)
	if deps.Limiter != nil {
		router.Use(middleware.RateLimit(deps.Limiter))
	}

	postController := controllers.NewPostController(deps.PostService, log)
	commentController := controllers.NewCommentController(deps.CommentService, log)

	router.HandleFunc("/", postController.Home).Methods("GET")
	router.HandleFunc("/search", postController.Search).Methods("GET")
	router.HandleFunc("/filter", postController.Filter).Methods("GET")

	// Posts endpoints
	posts := router.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("", postController.Create).Methods("POST")
	posts.HandleFunc("/{id}", postController.Show).Methods("GET")
	posts.HandleFunc("/{id}", postController.Edit).Methods("PUT")
	posts.HandleFunc("/{id}", postController.Delete).Methods("DELETE")
	posts.HandleFunc("/{id}/like", postController.Like).Methods("POST")

	// Comments endpoints
	posts.HandleFunc("/{id}/comment", commentController.Create).Methods("POST")
	posts.HandleFunc("/{id}/comments", commentController.Index).Methods("GET")
	router.HandleFunc("/comments/{commentId}", commentController.Edit).Methods("PUT")
	router.HandleFunc("/comments/{commentId}", commentController.Delete).Methods("DELETE")

	// mux skips middleware for unmatched requests, so wrap the fallbacks directly.
	notFound := middleware.Logger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteError(w, http.StatusNotFound, "Resource not found")
	}))
	router.NotFoundHandler = notFound
	router.MethodNotAllowedHandler = notFound

	return router
}

// NewServer builds the HTTP server for the given address and router.
func NewServer(addr string, router http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
