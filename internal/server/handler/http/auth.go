package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/prokashpul/techpulse/internal/middleware"
	"github.com/prokashpul/techpulse/internal/models"
)

// AuthService defines the session and user operations required by the
// HTTP handlers.
type AuthService interface {
	// Login authenticates and establishes the session; nil user means
	// failed credentials.
	Login(ctx context.Context, email, password string) (*models.User, error)
	// LoginWithGoogle establishes the fixed demo account session.
	LoginWithGoogle(ctx context.Context) (*models.User, error)
	// Logout clears the session.
	Logout(ctx context.Context) error
	// UpdateProfile replaces the user record with the same id.
	UpdateProfile(ctx context.Context, user models.User) error
}

// AuthHandler handles login, logout, and profile requests.
type AuthHandler struct {
	// AuthService performs the underlying session operations.
	AuthService AuthService
	// Validate checks request payloads.
	Validate *validator.Validate
}

// LoginRequest represents the JSON payload for password login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /api/auth/login. Failed credentials yield 401
// with a generic message.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if user == nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// LoginWithGoogle handles POST /api/auth/google. It always succeeds;
// no third-party identity verification occurs.
func (h *AuthHandler) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthService.LoginWithGoogle(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.AuthService.Logout(r.Context()); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /api/auth/me. An anonymous session is an empty state
// (JSON null), not an error.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, middleware.UserFromContext(r.Context()))
}

// ProfileRequest represents the JSON payload for a profile update. The
// API key, when present, must look like a Gemini key.
type ProfileRequest struct {
	ID     string          `json:"id" validate:"required"`
	Name   string          `json:"name" validate:"required"`
	Email  string          `json:"email" validate:"required,email"`
	Role   models.UserRole `json:"role" validate:"required,oneof=ADMIN USER GUEST"`
	Avatar string          `json:"avatar"`
	Bio    string          `json:"bio"`
	APIKey string          `json:"apiKey" validate:"omitempty,startswith=AI"`
}

// UpdateProfile handles PUT /api/auth/profile as a full-record
// replace. Users may edit themselves; only administrators may edit
// others.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	current := middleware.UserFromContext(r.Context())
	if current.ID != req.ID && current.Role != models.RoleAdmin {
		http.Error(w, "cannot edit another user", http.StatusForbidden)
		return
	}

	updated := models.User{
		ID:     req.ID,
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
		Avatar: req.Avatar,
		Bio:    req.Bio,
		APIKey: req.APIKey,
	}
	if err := h.AuthService.UpdateProfile(r.Context(), updated); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
