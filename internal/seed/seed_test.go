package seed

import (
	"testing"
	"time"

	"github.com/prokashpul/techpulse/internal/models"
)

func TestUsers_BuiltInAccounts(t *testing.T) {
	users := Users()
	if len(users) != 2 {
		t.Fatalf("Users() returned %d; want 2", len(users))
	}
	if users[0].Email != AdminEmail || users[0].Role != models.RoleAdmin {
		t.Errorf("first user = %+v; want built-in admin", users[0])
	}
	if users[1].Role != models.RoleUser {
		t.Errorf("second user role = %q; want USER", users[1].Role)
	}
}

func TestGeneratePosts(t *testing.T) {
	posts := GeneratePosts(5)
	if len(posts) != 5 {
		t.Fatalf("GeneratePosts(5) returned %d posts", len(posts))
	}

	var prev time.Time
	for i, p := range posts {
		if p.ID == "" || p.Title == "" || p.Content == "" {
			t.Errorf("post %d has empty fields: %+v", i, p)
		}
		if len(p.Tags) == 0 {
			t.Errorf("post %d has no tags", i)
		}
		created, err := time.Parse(time.RFC3339, p.CreatedAt)
		if err != nil {
			t.Fatalf("post %d timestamp %q: %v", i, p.CreatedAt, err)
		}
		if i > 0 && !created.Before(prev) {
			t.Errorf("post %d is not older than post %d", i, i-1)
		}
		prev = created
	}
	if posts[0].ID != "post-0" || posts[4].ID != "post-4" {
		t.Errorf("unexpected ids: %s ... %s", posts[0].ID, posts[4].ID)
	}
}
