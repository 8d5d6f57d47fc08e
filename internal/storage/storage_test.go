package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prokashpul/techpulse/internal/models"
	"github.com/prokashpul/techpulse/internal/seed"
)

func TestUsers_SeedsOnFirstRead(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, 0)

	users, err := s.Users()
	if err != nil {
		t.Fatalf("Users failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 seeded users, got %d", len(users))
	}
	if users[0].Email != seed.AdminEmail {
		t.Errorf("first seeded user = %q; want admin", users[0].Email)
	}

	// Seeding is an observable side effect: the slot now exists on disk.
	if _, err := os.Stat(filepath.Join(dir, usersFile)); err != nil {
		t.Errorf("users slot not persisted after seeding read: %v", err)
	}
}

func TestPosts_SeedsConfiguredCount(t *testing.T) {
	s := New(t.TempDir(), 7)

	posts, err := s.Posts()
	if err != nil {
		t.Fatalf("Posts failed: %v", err)
	}
	if len(posts) != 7 {
		t.Fatalf("expected 7 seeded posts, got %d", len(posts))
	}
	if posts[0].ID != "post-0" {
		t.Errorf("first seeded post id = %q; want post-0", posts[0].ID)
	}
}

func TestPosts_RoundTrip(t *testing.T) {
	s := New(t.TempDir(), 1)

	want := []models.BlogPost{{ID: "p1", Title: "hello", Tags: []string{"AI"}}}
	if err := s.SavePosts(want); err != nil {
		t.Fatalf("SavePosts failed: %v", err)
	}
	got, err := s.Posts()
	if err != nil {
		t.Fatalf("Posts failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "p1" || got[0].Title != "hello" {
		t.Errorf("unexpected posts after round trip: %+v", got)
	}
}

func TestPosts_CorruptSlotPropagates(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, postsFile), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := New(dir, 1)
	if _, err := s.Posts(); err == nil {
		t.Fatal("expected decode error for corrupt slot, got nil")
	}
}

func TestComments_SeedNotPersisted(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, 1)

	comments, err := s.Comments()
	if err != nil {
		t.Fatalf("Comments failed: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 built-in comments, got %d", len(comments))
	}
	// Reading built-in comments must not write the slot.
	if _, err := os.Stat(filepath.Join(dir, commentsFile)); !os.IsNotExist(err) {
		t.Errorf("comments slot written by read, stat err = %v", err)
	}

	if err := s.SaveComments(comments); err != nil {
		t.Fatalf("SaveComments failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, commentsFile)); err != nil {
		t.Errorf("comments slot missing after save: %v", err)
	}
}

func TestSession_Lifecycle(t *testing.T) {
	s := New(t.TempDir(), 1)

	sess, err := s.Session()
	if err != nil {
		t.Fatalf("Session failed: %v", err)
	}
	if sess != nil {
		t.Fatalf("expected no session, got %+v", sess)
	}

	if err := s.SaveSession(models.Session{UserID: "admin-1"}); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}
	sess, err = s.Session()
	if err != nil {
		t.Fatalf("Session failed: %v", err)
	}
	if sess == nil || sess.UserID != "admin-1" {
		t.Fatalf("unexpected session: %+v", sess)
	}

	if err := s.ClearSession(); err != nil {
		t.Fatalf("ClearSession failed: %v", err)
	}
	// Clearing twice is a no-op.
	if err := s.ClearSession(); err != nil {
		t.Fatalf("second ClearSession failed: %v", err)
	}
	sess, err = s.Session()
	if err != nil {
		t.Fatalf("Session failed: %v", err)
	}
	if sess != nil {
		t.Errorf("expected cleared session, got %+v", sess)
	}
}
