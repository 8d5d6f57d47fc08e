package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/prokashpul/techpulse/internal/content"
	"github.com/prokashpul/techpulse/internal/middleware"
)

// Generator defines the generative assist operations required by the
// HTTP handlers. Each result is a string or an explicit empty "no
// result"; failures never surface as errors here.
type Generator interface {
	HasKey(userKey string) bool
	Title(ctx context.Context, userKey, topic string) string
	BlogPost(ctx context.Context, userKey, topic string) (string, []string)
	EditImage(ctx context.Context, userKey, imageBase64, prompt string) string
	Thumbnail(ctx context.Context, userKey, prompt string) string
}

// AssistHandler handles the AI-assisted authoring endpoints. Routing
// mounts it behind the admin gate; the session user's API key, when
// set, overrides the configured one.
type AssistHandler struct {
	// Generator performs the remote generation calls.
	Generator Generator
	// Validate checks request payloads.
	Validate *validator.Validate
}

// userKey returns the session user's personal API key, if any.
func userKey(r *http.Request) string {
	if user := middleware.UserFromContext(r.Context()); user != nil {
		return user.APIKey
	}
	return ""
}

// requireKey rejects the request when neither a user key nor a
// configured key exists. Missing keys are a validation failure with a
// user-facing message, not an assist failure.
func (h *AssistHandler) requireKey(w http.ResponseWriter, r *http.Request) (string, bool) {
	key := userKey(r)
	if !h.Generator.HasKey(key) {
		http.Error(w, "API key missing: add your Gemini API key in settings", http.StatusBadRequest)
		return "", false
	}
	return key, true
}

// TopicRequest represents the JSON payload for title and post
// generation.
type TopicRequest struct {
	Topic string `json:"topic" validate:"required"`
}

// Title handles POST /api/assist/title.
func (h *AssistHandler) Title(w http.ResponseWriter, r *http.Request) {
	key, ok := h.requireKey(w, r)
	if !ok {
		return
	}
	var req TopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"title": h.Generator.Title(r.Context(), key, req.Topic),
	})
}

// BlogPostResponse is the generated article with its grounding source
// URIs and a derived excerpt.
type BlogPostResponse struct {
	Content string   `json:"content"`
	Sources []string `json:"sources"`
	Excerpt string   `json:"excerpt"`
}

// BlogPost handles POST /api/assist/post.
func (h *AssistHandler) BlogPost(w http.ResponseWriter, r *http.Request) {
	key, ok := h.requireKey(w, r)
	if !ok {
		return
	}
	var req TopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	body, sources := h.Generator.BlogPost(r.Context(), key, req.Topic)
	writeJSON(w, http.StatusOK, BlogPostResponse{
		Content: body,
		Sources: sources,
		Excerpt: content.Excerpt(body),
	})
}

// ThumbnailRequest represents the JSON payload for cover image
// generation.
type ThumbnailRequest struct {
	Prompt string `json:"prompt"`
}

// Thumbnail handles POST /api/assist/thumbnail. An empty image in the
// response means no result; the caller presents the retry affordance.
func (h *AssistHandler) Thumbnail(w http.ResponseWriter, r *http.Request) {
	key, ok := h.requireKey(w, r)
	if !ok {
		return
	}
	var req ThumbnailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"image": h.Generator.Thumbnail(r.Context(), key, req.Prompt),
	})
}

// ImageEditRequest represents the JSON payload for image editing. The
// image is base64, with or without a data-URL prefix.
type ImageEditRequest struct {
	Image  string `json:"image" validate:"required"`
	Prompt string `json:"prompt" validate:"required"`
}

// EditImage handles POST /api/assist/image.
func (h *AssistHandler) EditImage(w http.ResponseWriter, r *http.Request) {
	key, ok := h.requireKey(w, r)
	if !ok {
		return
	}
	var req ImageEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"image": h.Generator.EditImage(r.Context(), key, req.Image, req.Prompt),
	})
}
