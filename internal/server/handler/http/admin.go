package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/prokashpul/techpulse/internal/models"
	"github.com/prokashpul/techpulse/internal/repository"
)

// AdminService defines the admin console operations required by the
// HTTP handlers.
type AdminService interface {
	// Users returns the full user collection.
	Users(ctx context.Context) ([]models.User, error)
	// DeleteUser removes a user by id, idempotently.
	DeleteUser(ctx context.Context, id string) error
}

// StatsService provides the dashboard aggregates.
type StatsService interface {
	Stats(ctx context.Context) (repository.Stats, error)
}

// AdminHandler handles the admin console endpoints. Routing mounts it
// behind the admin gate.
type AdminHandler struct {
	// AdminService performs user management.
	AdminService AdminService
	// StatsService computes the dashboard figures.
	StatsService StatsService
}

// Users handles GET /api/admin/users.
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.AdminService.Users(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// DeleteUser handles DELETE /api/admin/users/{id}.
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.AdminService.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsService.Stats(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
