package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/prokashpul/techpulse/internal/middleware"
	"github.com/prokashpul/techpulse/internal/models"
)

// CommentService defines the comment operations required by the HTTP
// handlers.
type CommentService interface {
	// ForPost returns the comments shown under a post, per the
	// configured scope.
	ForPost(ctx context.Context, postID string) ([]models.Comment, error)
	// Add appends a comment and returns the stored record.
	Add(ctx context.Context, postID, userID, userName, content string) (models.Comment, error)
}

// CommentHandler handles comment reads and appends.
type CommentHandler struct {
	// CommentService performs the underlying comment operations.
	CommentService CommentService
	// Validate checks request payloads.
	Validate *validator.Validate
}

// List handles GET /api/posts/{id}/comments.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	comments, err := h.CommentService.ForPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

// CommentRequest represents the JSON payload for adding a comment.
type CommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// Create handles POST /api/posts/{id}/comments. The session user is
// the author.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user := middleware.UserFromContext(r.Context())
	comment, err := h.CommentService.Add(r.Context(), chi.URLParam(r, "id"), user.ID, user.Name, req.Content)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}
