package controllers

import (
	"net/http"

	"blogapi/app/models"
	"blogapi/app/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
	log            *zap.Logger
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService, log *zap.Logger) *CommentController {
	return &CommentController{
		commentService: commentService,
		log:            log,
	}
}

// Index handles listing all comments for a post
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	comments, err := cc.commentService.ListComments(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		sendServiceError(w, r, cc.log, err)
		return
	}
	sendJSON(w, http.StatusOK, comments)
}

// Create handles adding a comment; it answers with the whole updated post
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CommentInput
	if err := decodeBody(r, &in); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	post, err := cc.commentService.AddComment(r.Context(), mux.Vars(r)["id"], in)
	if err != nil {
		sendServiceError(w, r, cc.log, err)
		return
	}
	sendJSON(w, http.StatusCreated, post)
}

// Edit handles replacing the content of a comment
func (cc *CommentController) Edit(w http.ResponseWriter, r *http.Request) {
	var in models.CommentContent
	if err := decodeBody(r, &in); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	comment, err := cc.commentService.UpdateComment(r.Context(), mux.Vars(r)["commentId"], in)
	if err != nil {
		sendServiceError(w, r, cc.log, err)
		return
	}
	sendJSON(w, http.StatusOK, comment)
}

// Delete handles deleting a comment
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := cc.commentService.DeleteComment(r.Context(), mux.Vars(r)["commentId"]); err != nil {
		sendServiceError(w, r, cc.log, err)
		return
	}
	sendMessage(w, "Comment deleted successfully")
}
