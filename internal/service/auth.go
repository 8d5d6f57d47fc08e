package service

import (
	"context"
	"fmt"
	"time"

	"github.com/prokashpul/techpulse/internal/models"
	"github.com/prokashpul/techpulse/internal/seed"
)

// UserRepository defines the persistence operations required by the
// auth service.
type UserRepository interface {
	// All returns the full user collection.
	All(ctx context.Context) ([]models.User, error)
	// ByEmail returns the first user with the given email, or nil.
	ByEmail(ctx context.Context, email string) (*models.User, error)
	// ByID returns the user with the given id, or nil.
	ByID(ctx context.Context, id string) (*models.User, error)
	// Add appends a user record.
	Add(ctx context.Context, user models.User) error
	// Update replaces by id; unknown ids are a silent no-op.
	Update(ctx context.Context, user models.User) error
	// Delete removes by id, idempotently.
	Delete(ctx context.Context, id string) error
}

// SessionRepository defines the session slot operations required by
// the auth service.
type SessionRepository interface {
	// Current returns the persisted session reference, or nil.
	Current(ctx context.Context) (*models.Session, error)
	// Set establishes the session for the given user id.
	Set(ctx context.Context, userID string) error
	// Clear removes the session reference.
	Clear(ctx context.Context) error
}

// AuthService tracks the active session and authenticates users
// against the stored user collection. Credential checking is the
// demo strategy in demo_auth.go; see its warnings.
type AuthService struct {
	users    UserRepository
	sessions SessionRepository
}

// NewAuthService constructs an AuthService over the given repositories.
func NewAuthService(users UserRepository, sessions SessionRepository) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

// Login authenticates the email/password pair with the demo strategy
// and, on success, establishes the session and returns the user. A
// failed login returns nil with no error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.ByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	user = resolveDemoLogin(email, password, user)
	if user == nil {
		return nil, nil
	}
	if err := s.sessions.Set(ctx, user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

// googleDemoEmail identifies the fixed account used by the simulated
// Google sign-in. No third-party identity verification occurs.
const googleDemoEmail = "google_demo@techpulse.com"

// LoginWithGoogle unconditionally succeeds: it finds or lazily creates
// the fixed demo account, persists it if new, and establishes the
// session.
func (s *AuthService) LoginWithGoogle(ctx context.Context) (*models.User, error) {
	user, err := s.users.ByEmail(ctx, googleDemoEmail)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user = &models.User{
			ID:     fmt.Sprintf("google-%d", time.Now().UnixMilli()),
			Name:   "Google User",
			Email:  googleDemoEmail,
			Role:   models.RoleUser,
			Avatar: "https://ui-avatars.com/api/?name=Google+User&background=DB4437&color=fff",
			Bio:    "I signed up with Google!",
		}
		if err := s.users.Add(ctx, *user); err != nil {
			return nil, err
		}
	}
	if err := s.sessions.Set(ctx, user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout clears the session slot. Logging out while anonymous is a
// no-op.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// CurrentUser resolves the persisted session reference against the
// users collection. An absent reference, or a reference to a deleted
// user, yields nil (anonymous).
func (s *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	sess, err := s.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, nil
	}
	return s.users.ByID(ctx, sess.UserID)
}

// UpdateProfile replaces the user record with the same id. The session
// needs no mirror write: it stores only the user id and CurrentUser
// always re-reads the collection.
func (s *AuthService) UpdateProfile(ctx context.Context, user models.User) error {
	return s.users.Update(ctx, user)
}

// IsAdmin reports whether the active session belongs to an
// administrator. This gate is advisory: there is no server boundary
// behind it to re-check.
func (s *AuthService) IsAdmin(ctx context.Context) (bool, error) {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		return false, err
	}
	return user != nil && user.Role == models.RoleAdmin, nil
}

// Users returns the full user collection for the admin console.
func (s *AuthService) Users(ctx context.Context) ([]models.User, error) {
	return s.users.All(ctx)
}

// DeleteUser removes the user with the given id.
func (s *AuthService) DeleteUser(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

// seededAdmin returns the built-in administrator record, used as the
// fallback when the hardcoded pair is presented but the stored
// collection no longer contains the admin account.
func seededAdmin() *models.User {
	admin := seed.Users()[0]
	return &admin
}
