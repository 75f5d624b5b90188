package controllers

import (
	"encoding/json"
	"net/http"

	"blogapi/app/models"
	"blogapi/app/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
	log         *zap.Logger
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService, log *zap.Logger) *PostController {
	return &PostController{
		postService: postService,
		log:         log,
	}
}

// likeRequest carries the optional unlike flag, kept raw so any JSON value can be judged for truthiness.
type likeRequest struct {
	Unlike json.RawMessage `json:"unlike"`
}

// Home answers the API root
func (pc *PostController) Home(w http.ResponseWriter, r *http.Request) {
	sendMessage(w, "Welcome to the Blog API")
}

// Index handles listing all posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts(r.Context())
	if err != nil {
		sendServiceError(w, r, pc.log, err)
		return
	}
	sendJSON(w, http.StatusOK, posts)
}

// Show handles displaying a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	post, err := pc.postService.GetPost(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		sendServiceError(w, r, pc.log, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.PostInput
	if err := decodeBody(r, &in); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	post, err := pc.postService.CreatePost(r.Context(), in)
	if err != nil {
		sendServiceError(w, r, pc.log, err)
		return
	}
	sendJSON(w, http.StatusCreated, post)
}

// Edit handles a partial update of an existing post
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	var patch models.PostPatch
	if err := decodeBody(r, &patch); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	post, err := pc.postService.UpdatePost(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		sendServiceError(w, r, pc.log, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Delete handles deleting a post
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := pc.postService.DeletePost(r.Context(), mux.Vars(r)["id"]); err != nil {
		sendServiceError(w, r, pc.log, err)
		return
	}
	sendMessage(w, "Post deleted successfully")
}

// Like adds or removes a like and answers with the new count only
func (pc *PostController) Like(w http.ResponseWriter, r *http.Request) {
	var req likeRequest
	if err := decodeBody(r, &req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	likes, err := pc.postService.LikePost(r.Context(), mux.Vars(r)["id"], models.Truthy(req.Unlike))
	if err != nil {
		sendServiceError(w, r, pc.log, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]int{"likes": likes})
}

// Search handles GET /search?q=
func (pc *PostController) Search(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.SearchPosts(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		sendServiceError(w, r, pc.log, err)
		return
	}
	sendJSON(w, http.StatusOK, posts)
}

// Filter handles GET /filter?author=&tag=
func (pc *PostController) Filter(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	posts, err := pc.postService.FilterPosts(r.Context(), query.Get("author"), query.Get("tag"))
	if err != nil {
		sendServiceError(w, r, pc.log, err)
		return
	}
	sendJSON(w, http.StatusOK, posts)
}
