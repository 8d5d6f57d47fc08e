// Package service provides the blog business logic, delegating
// persistence to file-backed repositories.
package service

import (
	"context"

	"github.com/prokashpul/techpulse/internal/models"
	"github.com/prokashpul/techpulse/internal/repository"
)

// PostRepository defines the persistence operations required by the
// post service.
type PostRepository interface {
	// Page returns the 1-based page of the newest-first collection.
	Page(ctx context.Context, page, limit int) (repository.Page, error)
	// PageByCategory pages posts matching category; CategoryAll disables the filter.
	PageByCategory(ctx context.Context, category string, page, limit int) (repository.Page, error)
	// Search matches title or excerpt case-insensitively, unpaginated.
	Search(ctx context.Context, query string) ([]models.BlogPost, error)
	// ByID returns the post or nil when absent.
	ByID(ctx context.Context, id string) (*models.BlogPost, error)
	// Related returns up to five other recent posts.
	Related(ctx context.Context, id string) ([]models.BlogPost, error)
	// Popular returns the five most viewed posts.
	Popular(ctx context.Context) ([]models.BlogPost, error)
	// Categories counts tag occurrences across all posts.
	Categories(ctx context.Context) ([]repository.Category, error)
	// Stats aggregates the dashboard figures.
	Stats(ctx context.Context) (repository.Stats, error)
	// Create persists a new post and returns it with id, timestamp, and views set.
	Create(ctx context.Context, draft models.BlogPost) (models.BlogPost, error)
	// Update replaces by id; unknown ids are a silent no-op.
	Update(ctx context.Context, post models.BlogPost) error
	// Delete removes by id, idempotently.
	Delete(ctx context.Context, id string) error
}

// PostService implements post browsing, search, and the admin CRUD by
// delegating to a PostRepository.
type PostService struct {
	repo PostRepository
}

// NewPostService constructs a PostService using the provided repository.
func NewPostService(repo PostRepository) *PostService {
	return &PostService{repo: repo}
}

// Page returns one page of the newest-first post collection.
func (s *PostService) Page(ctx context.Context, page, limit int) (repository.Page, error) {
	return s.repo.Page(ctx, page, limit)
}

// PageByCategory returns one page of posts in the given category.
func (s *PostService) PageByCategory(ctx context.Context, category string, page, limit int) (repository.Page, error) {
	return s.repo.PageByCategory(ctx, category, page, limit)
}

// Search returns every post matching the query. The empty query means
// "not searching" and is rejected before reaching this method.
func (s *PostService) Search(ctx context.Context, query string) ([]models.BlogPost, error) {
	return s.repo.Search(ctx, query)
}

// ByID returns the post with the given id, or nil when absent.
func (s *PostService) ByID(ctx context.Context, id string) (*models.BlogPost, error) {
	return s.repo.ByID(ctx, id)
}

// Related returns up to five recent posts other than the given one.
func (s *PostService) Related(ctx context.Context, id string) ([]models.BlogPost, error) {
	return s.repo.Related(ctx, id)
}

// Popular returns the five most viewed posts.
func (s *PostService) Popular(ctx context.Context) ([]models.BlogPost, error) {
	return s.repo.Popular(ctx)
}

// Categories returns tag occurrence counts for the category browser.
func (s *PostService) Categories(ctx context.Context) ([]repository.Category, error) {
	return s.repo.Categories(ctx)
}

// Stats returns the admin dashboard aggregates.
func (s *PostService) Stats(ctx context.Context) (repository.Stats, error) {
	return s.repo.Stats(ctx)
}

// Create persists a new post authored by the given user.
func (s *PostService) Create(ctx context.Context, draft models.BlogPost) (models.BlogPost, error) {
	return s.repo.Create(ctx, draft)
}

// Update replaces the stored post with the same id.
func (s *PostService) Update(ctx context.Context, post models.BlogPost) error {
	return s.repo.Update(ctx, post)
}

// Delete removes the post with the given id.
func (s *PostService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
