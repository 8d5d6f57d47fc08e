package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/prokashpul/techpulse/internal/content"
	"github.com/prokashpul/techpulse/internal/middleware"
	"github.com/prokashpul/techpulse/internal/models"
	"github.com/prokashpul/techpulse/internal/repository"
)

// defaultPageSize is the page size used when the caller omits limit.
const defaultPageSize = 6

// PostService defines the post operations required by the HTTP
// handlers.
type PostService interface {
	Page(ctx context.Context, page, limit int) (repository.Page, error)
	PageByCategory(ctx context.Context, category string, page, limit int) (repository.Page, error)
	Search(ctx context.Context, query string) ([]models.BlogPost, error)
	ByID(ctx context.Context, id string) (*models.BlogPost, error)
	Related(ctx context.Context, id string) ([]models.BlogPost, error)
	Popular(ctx context.Context) ([]models.BlogPost, error)
	Categories(ctx context.Context) ([]repository.Category, error)
	Create(ctx context.Context, draft models.BlogPost) (models.BlogPost, error)
	Update(ctx context.Context, post models.BlogPost) error
	Delete(ctx context.Context, id string) error
}

// PostHandler handles post browsing, search, and the admin CRUD.
type PostHandler struct {
	// PostService performs the underlying post operations.
	PostService PostService
	// Validate checks mutation payloads.
	Validate *validator.Validate
}

// List handles GET /api/posts?page=&limit=&category=. An absent or
// "All" category returns the unfiltered collection.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", defaultPageSize)
	category := r.URL.Query().Get("category")

	var (
		result repository.Page
		err    error
	)
	if category == "" || category == repository.CategoryAll {
		result, err = h.PostService.Page(r.Context(), page, limit)
	} else {
		result, err = h.PostService.PageByCategory(r.Context(), category, page, limit)
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Search handles GET /api/posts/search?q=. The empty query means "not
// searching" and is rejected rather than matched against everything.
func (h *PostHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "empty query", http.StatusBadRequest)
		return
	}
	posts, err := h.PostService.Search(r.Context(), query)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

// postResponse wraps a post with the render-mode hint derived by tag
// sniffing.
type postResponse struct {
	models.BlogPost
	// RenderAs is "html" or "markdown".
	RenderAs string `json:"renderAs"`
}

// Get handles GET /api/posts/{id}. An unknown id is an empty 404, not
// an application error.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.PostService.ByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if post == nil {
		http.Error(w, "post not found", http.StatusNotFound)
		return
	}
	renderAs := "markdown"
	if content.IsHTML(post.Content) {
		renderAs = "html"
	}
	writeJSON(w, http.StatusOK, postResponse{BlogPost: *post, RenderAs: renderAs})
}

// Related handles GET /api/posts/{id}/related.
func (h *PostHandler) Related(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.Related(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

// Popular handles GET /api/posts/popular.
func (h *PostHandler) Popular(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.Popular(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

// Categories handles GET /api/categories.
func (h *PostHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.PostService.Categories(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// PostRequest is the JSON payload for creating or updating a post.
type PostRequest struct {
	Title      string   `json:"title" validate:"required"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content" validate:"required"`
	CoverImage string   `json:"coverImage"`
	Tags       []string `json:"tags"`
}

// Create handles POST /api/posts. The session user becomes the author;
// an empty excerpt is derived from the content.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	author := middleware.UserFromContext(r.Context())
	if req.Excerpt == "" {
		req.Excerpt = content.Excerpt(req.Content)
	}

	created, err := h.PostService.Create(r.Context(), models.BlogPost{
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Tags:       req.Tags,
	})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Update handles PUT /api/posts/{id} as a full-record replace. An
// unknown id leaves the collection untouched.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	var post models.BlogPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	post.ID = chi.URLParam(r, "id")
	if post.Title == "" || post.Content == "" {
		http.Error(w, "title and content are required", http.StatusBadRequest)
		return
	}
	if err := h.PostService.Update(r.Context(), post); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/posts/{id}, idempotently.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.PostService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// queryInt parses a positive integer query parameter, falling back to
// def when absent or malformed.
func queryInt(r *http.Request, name string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v < 1 {
		return def
	}
	return v
}
