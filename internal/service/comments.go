package service

import (
	"context"
	"fmt"
	"time"

	"github.com/prokashpul/techpulse/internal/models"
)

// CommentScope selects how comments are read for a post. The original
// system returned every stored comment regardless of post; that
// behavior is preserved as an explicit mode rather than assumed.
type CommentScope string

const (
	// CommentScopeAll returns every comment for any post (demo behavior).
	CommentScopeAll CommentScope = "all"
	// CommentScopePost filters comments by their post id.
	CommentScopePost CommentScope = "post"
)

// CommentRepository defines the persistence operations required by the
// comment service.
type CommentRepository interface {
	// All returns the full comment collection.
	All(ctx context.Context) ([]models.Comment, error)
	// Add appends a comment record.
	Add(ctx context.Context, comment models.Comment) error
}

// CommentService implements comment reads and appends over a
// CommentRepository.
type CommentService struct {
	repo  CommentRepository
	scope CommentScope
}

// NewCommentService constructs a CommentService with the given read
// scope. An unknown scope falls back to CommentScopeAll.
func NewCommentService(repo CommentRepository, scope CommentScope) *CommentService {
	if scope != CommentScopePost {
		scope = CommentScopeAll
	}
	return &CommentService{repo: repo, scope: scope}
}

// ForPost returns the comments shown under the given post, honoring
// the configured scope.
func (s *CommentService) ForPost(ctx context.Context, postID string) ([]models.Comment, error) {
	comments, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	if s.scope == CommentScopeAll {
		return comments, nil
	}
	filtered := []models.Comment{}
	for _, c := range comments {
		if c.PostID == postID {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// Add appends a comment with a timestamp-derived id and the current
// creation time, persists it, and returns the stored record.
func (s *CommentService) Add(ctx context.Context, postID, userID, userName, content string) (models.Comment, error) {
	now := time.Now().UTC()
	comment := models.Comment{
		ID:        fmt.Sprintf("c-%d", now.UnixMilli()),
		PostID:    postID,
		UserID:    userID,
		UserName:  userName,
		Content:   content,
		CreatedAt: now.Format(time.RFC3339),
	}
	if err := s.repo.Add(ctx, comment); err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}
