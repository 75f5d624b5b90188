package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"blogapi/app/middleware"
	"blogapi/app/models"
	"blogapi/app/services"

	"go.uber.org/zap"
)

// Helper methods for consistent response handling

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendMessage(w http.ResponseWriter, message string) {
	sendJSON(w, http.StatusOK, map[string]string{"message": message})
}

func sendError(w http.ResponseWriter, status int, message string) {
	middleware.WriteError(w, status, message)
}

// decodeBody decodes a JSON request body into dst. An empty body leaves dst untouched.
func decodeBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// sendServiceError maps service errors onto status codes. Anything
// unrecognised is logged and reported as a generic 500.
func sendServiceError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		sendError(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, services.ErrPostNotFound):
		sendError(w, http.StatusNotFound, "Post not found")
	case errors.Is(err, services.ErrCommentNotFound):
		sendError(w, http.StatusNotFound, "Comment not found")
	case errors.Is(err, services.ErrStoreUninitialized):
		sendError(w, http.StatusInternalServerError, "Posts data not initialized")
	default:
		log.Error("request failed",
			zap.Error(err),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
		sendError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
