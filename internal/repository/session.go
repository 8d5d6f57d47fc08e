package repository

import (
	"context"

	"github.com/prokashpul/techpulse/internal/models"
	"github.com/prokashpul/techpulse/internal/storage"
)

// FileSessionRepository persists the single session reference. Only
// the user id is stored; the user record is always derived from the
// users collection, so there is no second copy to reconcile.
type FileSessionRepository struct {
	store *storage.Store
}

// NewFileSessionRepository creates a session repository over the given
// store.
func NewFileSessionRepository(store *storage.Store) *FileSessionRepository {
	return &FileSessionRepository{store: store}
}

// Current returns the persisted session reference, or nil when logged
// out.
func (r *FileSessionRepository) Current(ctx context.Context) (*models.Session, error) {
	return r.store.Session()
}

// Set establishes the session for the given user id.
func (r *FileSessionRepository) Set(ctx context.Context, userID string) error {
	return r.store.SaveSession(models.Session{UserID: userID})
}

// Clear removes the session reference.
func (r *FileSessionRepository) Clear(ctx context.Context) error {
	return r.store.ClearSession()
}
