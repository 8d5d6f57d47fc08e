package service

import (
	"context"
	"strings"
	"testing"

	"github.com/prokashpul/techpulse/internal/models"
)

type mockCommentRepo struct {
	comments []models.Comment
}

func (m *mockCommentRepo) All(ctx context.Context) ([]models.Comment, error) {
	return m.comments, nil
}

func (m *mockCommentRepo) Add(ctx context.Context, comment models.Comment) error {
	m.comments = append(m.comments, comment)
	return nil
}

func fixtureComments() []models.Comment {
	return []models.Comment{
		{ID: "c1", PostID: "post-0", Content: "first"},
		{ID: "c2", PostID: "post-0", Content: "second"},
		{ID: "c3", PostID: "post-9", Content: "elsewhere"},
	}
}

func TestForPost_ScopeAllReturnsEverything(t *testing.T) {
	svc := NewCommentService(&mockCommentRepo{comments: fixtureComments()}, CommentScopeAll)

	comments, err := svc.ForPost(context.Background(), "post-0")
	if err != nil {
		t.Fatalf("ForPost returned error: %v", err)
	}
	if len(comments) != 3 {
		t.Errorf("scope all returned %d comments; want all 3", len(comments))
	}
}

func TestForPost_ScopePostFilters(t *testing.T) {
	svc := NewCommentService(&mockCommentRepo{comments: fixtureComments()}, CommentScopePost)

	comments, err := svc.ForPost(context.Background(), "post-0")
	if err != nil {
		t.Fatalf("ForPost returned error: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("scope post returned %d comments; want 2", len(comments))
	}
	for _, c := range comments {
		if c.PostID != "post-0" {
			t.Errorf("comment %s has post id %q", c.ID, c.PostID)
		}
	}
}

func TestNewCommentService_UnknownScopeFallsBackToAll(t *testing.T) {
	svc := NewCommentService(&mockCommentRepo{comments: fixtureComments()}, CommentScope("bogus"))

	comments, err := svc.ForPost(context.Background(), "post-0")
	if err != nil {
		t.Fatalf("ForPost returned error: %v", err)
	}
	if len(comments) != 3 {
		t.Errorf("fallback scope returned %d comments; want 3", len(comments))
	}
}

func TestAdd_AssignsIDAndTimestamp(t *testing.T) {
	repo := &mockCommentRepo{}
	svc := NewCommentService(repo, CommentScopeAll)

	comment, err := svc.Add(context.Background(), "post-1", "user-1", "Jane Doe", "nice read")
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if !strings.HasPrefix(comment.ID, "c-") {
		t.Errorf("comment id = %q; want c- prefix", comment.ID)
	}
	if comment.CreatedAt == "" {
		t.Error("comment timestamp not set")
	}
	if comment.PostID != "post-1" || comment.UserID != "user-1" || comment.UserName != "Jane Doe" {
		t.Errorf("unexpected comment fields: %+v", comment)
	}
	if len(repo.comments) != 1 {
		t.Errorf("comment not persisted, repo has %d", len(repo.comments))
	}
}
