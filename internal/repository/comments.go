package repository

import (
	"context"

	"github.com/prokashpul/techpulse/internal/models"
	"github.com/prokashpul/techpulse/internal/storage"
)

// FileCommentRepository implements comment reads and appends over the
// JSON file store. Comments are append-only.
type FileCommentRepository struct {
	store *storage.Store
}

// NewFileCommentRepository creates a comment repository over the given
// store.
func NewFileCommentRepository(store *storage.Store) *FileCommentRepository {
	return &FileCommentRepository{store: store}
}

// All returns the full comment collection. An empty slot yields the
// built-in demo comments.
func (r *FileCommentRepository) All(ctx context.Context) ([]models.Comment, error) {
	return r.store.Comments()
}

// Add appends the comment and persists the full collection, including
// any still-unpersisted built-in comments.
func (r *FileCommentRepository) Add(ctx context.Context, comment models.Comment) error {
	comments, err := r.store.Comments()
	if err != nil {
		return err
	}
	return r.store.SaveComments(append(comments, comment))
}
