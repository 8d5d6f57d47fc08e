package repository

import (
	"context"

	"github.com/prokashpul/techpulse/internal/models"
	"github.com/prokashpul/techpulse/internal/storage"
)

// FileUserRepository implements user lookups and mutations over the
// JSON file store.
type FileUserRepository struct {
	store *storage.Store
}

// NewFileUserRepository creates a user repository over the given store.
func NewFileUserRepository(store *storage.Store) *FileUserRepository {
	return &FileUserRepository{store: store}
}

// All returns the full user collection, seeding the built-in accounts
// on first read.
func (r *FileUserRepository) All(ctx context.Context) ([]models.User, error) {
	return r.store.Users()
}

// ByEmail scans for the user with the given login email. Email is the
// lookup key but is not unique-enforced; the first match wins. Absence
// returns nil.
func (r *FileUserRepository) ByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.store.Users()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

// ByID scans for the user with the given id. Absence returns nil.
func (r *FileUserRepository) ByID(ctx context.Context, id string) (*models.User, error) {
	users, err := r.store.Users()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, nil
}

// Add appends a user record and persists the collection.
func (r *FileUserRepository) Add(ctx context.Context, user models.User) error {
	users, err := r.store.Users()
	if err != nil {
		return err
	}
	return r.store.SaveUsers(append(users, user))
}

// Update replaces the stored record with the same id. An unknown id is
// a silent no-op.
func (r *FileUserRepository) Update(ctx context.Context, user models.User) error {
	users, err := r.store.Users()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = user
			return r.store.SaveUsers(users)
		}
	}
	return nil
}

// Delete removes the user with the given id. Deleting an absent id is
// idempotent.
func (r *FileUserRepository) Delete(ctx context.Context, id string) error {
	users, err := r.store.Users()
	if err != nil {
		return err
	}
	filtered := users[:0:0]
	for _, u := range users {
		if u.ID != id {
			filtered = append(filtered, u)
		}
	}
	return r.store.SaveUsers(filtered)
}
