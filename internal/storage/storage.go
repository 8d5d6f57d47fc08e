// Package storage implements the persisted store: four independently
// keyed JSON slots (users, posts, comments, current session) written as
// files under a data directory. Reads of an empty users or posts slot
// seed and persist the built-in dataset as a side effect.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/prokashpul/techpulse/internal/models"
	"github.com/prokashpul/techpulse/internal/seed"
)

// Slot file names, namespaced under the application prefix. No schema
// version field is stored; structural changes are not migrated.
const (
	usersFile    = "techpulse_users.json"
	postsFile    = "techpulse_posts.json"
	commentsFile = "techpulse_comments.json"
	sessionFile  = "techpulse_current_user.json"
)

// Store provides synchronous JSON-shaped access to the four slots.
// Every read returns a fresh copy decoded from disk; every save
// overwrites the whole slot. There are no cross-slot transactions.
type Store struct {
	dir      string
	seedSize int
	mu       sync.Mutex
}

// New returns a Store rooted at dir. The directory is created on
// demand by the first write. seedSize controls how many posts are
// generated when the posts slot is seeded; zero means the default.
func New(dir string, seedSize int) *Store {
	if seedSize <= 0 {
		seedSize = seed.DefaultPostCount
	}
	return &Store{dir: dir, seedSize: seedSize}
}

// Users returns the stored user collection, seeding the built-in
// accounts on first read of an empty slot.
func (s *Store) Users() ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []models.User
	ok, err := s.readSlot(usersFile, &users)
	if err != nil {
		return nil, err
	}
	if !ok {
		users = seed.Users()
		if err := s.writeSlot(usersFile, users); err != nil {
			return nil, err
		}
	}
	return users, nil
}

// SaveUsers overwrites the users slot.
func (s *Store) SaveUsers(users []models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeSlot(usersFile, users)
}

// Posts returns the stored post collection, seeding the generated
// archive on first read of an empty slot.
func (s *Store) Posts() ([]models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var posts []models.BlogPost
	ok, err := s.readSlot(postsFile, &posts)
	if err != nil {
		return nil, err
	}
	if !ok {
		posts = seed.GeneratePosts(s.seedSize)
		if err := s.writeSlot(postsFile, posts); err != nil {
			return nil, err
		}
	}
	return posts, nil
}

// SavePosts overwrites the posts slot.
func (s *Store) SavePosts(posts []models.BlogPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeSlot(postsFile, posts)
}

// Comments returns the stored comment collection. An empty slot yields
// the built-in demo comments without persisting them; they are only
// written to disk by the first SaveComments.
func (s *Store) Comments() ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var comments []models.Comment
	ok, err := s.readSlot(commentsFile, &comments)
	if err != nil {
		return nil, err
	}
	if !ok {
		return seed.Comments(), nil
	}
	return comments, nil
}

// SaveComments overwrites the comments slot.
func (s *Store) SaveComments(comments []models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeSlot(commentsFile, comments)
}

// Session returns the persisted session reference, or nil when no
// session is stored.
func (s *Store) Session() (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sess models.Session
	ok, err := s.readSlot(sessionFile, &sess)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &sess, nil
}

// SaveSession overwrites the session slot.
func (s *Store) SaveSession(sess models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeSlot(sessionFile, sess)
}

// ClearSession removes the session slot. Clearing an absent session is
// a no-op.
func (s *Store) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(filepath.Join(s.dir, sessionFile))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// readSlot decodes the named slot into v. It reports whether the slot
// existed. A malformed slot returns the decode error unchanged.
func (s *Store) readSlot(name string, v any) (bool, error) {
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(v); err != nil {
		return false, err
	}
	return true, nil
}

// writeSlot serializes v and overwrites the named slot unconditionally.
func (s *Store) writeSlot(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(v)
}
