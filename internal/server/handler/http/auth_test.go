package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/prokashpul/techpulse/internal/middleware"
	"github.com/prokashpul/techpulse/internal/models"
)

// fakeAuthService implements AuthService for testing.
type fakeAuthService struct {
	loginUser  *models.User
	loginErr   error
	googleUser *models.User
	logoutErr  error
	updated    *models.User
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	return f.loginUser, f.loginErr
}

func (f *fakeAuthService) LoginWithGoogle(ctx context.Context) (*models.User, error) {
	return f.googleUser, nil
}

func (f *fakeAuthService) Logout(ctx context.Context) error {
	return f.logoutErr
}

func (f *fakeAuthService) UpdateProfile(ctx context.Context, user models.User) error {
	f.updated = &user
	return nil
}

// fakeResolver implements middleware.UserResolver.
type fakeResolver struct {
	user *models.User
}

func (f *fakeResolver) CurrentUser(ctx context.Context) (*models.User, error) {
	return f.user, nil
}

func TestAuthHandler_Login(t *testing.T) {
	admin := &models.User{ID: "admin-1", Email: "prokashpul2@gmail.com", Role: models.RoleAdmin}

	tests := []struct {
		name           string
		body           string
		service        *fakeAuthService
		expectedCode   int
		expectedSubstr string
	}{
		{
			name:           "invalid JSON",
			body:           `not a json`,
			service:        &fakeAuthService{},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "invalid request",
		},
		{
			name:           "missing password",
			body:           `{"email":"prokashpul2@gmail.com"}`,
			service:        &fakeAuthService{},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "Password",
		},
		{
			name:           "malformed email",
			body:           `{"email":"not-an-email","password":"x"}`,
			service:        &fakeAuthService{},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "Email",
		},
		{
			name:           "failed credentials",
			body:           `{"email":"nobody@example.com","password":"x"}`,
			service:        &fakeAuthService{loginUser: nil},
			expectedCode:   http.StatusUnauthorized,
			expectedSubstr: "invalid credentials",
		},
		{
			name:           "success",
			body:           `{"email":"prokashpul2@gmail.com","password":"Proksh2"}`,
			service:        &fakeAuthService{loginUser: admin},
			expectedCode:   http.StatusOK,
			expectedSubstr: `"admin-1"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &AuthHandler{AuthService: tt.service, Validate: validator.New()}
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.Login(rec, req)

			if rec.Code != tt.expectedCode {
				t.Errorf("status = %d; want %d", rec.Code, tt.expectedCode)
			}
			if !strings.Contains(rec.Body.String(), tt.expectedSubstr) {
				t.Errorf("body = %q; want substring %q", rec.Body.String(), tt.expectedSubstr)
			}
		})
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := &AuthHandler{AuthService: &fakeAuthService{}, Validate: validator.New()}

	t.Run("anonymous is null, not an error", func(t *testing.T) {
		wrapped := middleware.WithSession(&fakeResolver{})(http.HandlerFunc(h.Me))
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		rec := httptest.NewRecorder()

		wrapped.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d; want 200", rec.Code)
		}
		if strings.TrimSpace(rec.Body.String()) != "null" {
			t.Errorf("body = %q; want null", rec.Body.String())
		}
	})

	t.Run("logged in returns the user", func(t *testing.T) {
		user := &models.User{ID: "user-1", Name: "Jane Doe", Email: "jane@example.com", Role: models.RoleUser}
		wrapped := middleware.WithSession(&fakeResolver{user: user})(http.HandlerFunc(h.Me))
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		rec := httptest.NewRecorder()

		wrapped.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d; want 200", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"user-1"`) {
			t.Errorf("body = %q; want user-1", rec.Body.String())
		}
	})
}

func TestAuthHandler_UpdateProfile(t *testing.T) {
	self := &models.User{ID: "user-1", Role: models.RoleUser}

	tests := []struct {
		name         string
		session      *models.User
		body         string
		expectedCode int
	}{
		{
			name:         "edit own profile",
			session:      self,
			body:         `{"id":"user-1","name":"Jane","email":"jane@example.com","role":"USER"}`,
			expectedCode: http.StatusOK,
		},
		{
			name:         "edit someone else as non-admin",
			session:      self,
			body:         `{"id":"user-2","name":"Other","email":"other@example.com","role":"USER"}`,
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "admin edits someone else",
			session:      &models.User{ID: "admin-1", Role: models.RoleAdmin},
			body:         `{"id":"user-2","name":"Other","email":"other@example.com","role":"USER"}`,
			expectedCode: http.StatusOK,
		},
		{
			name:         "malformed API key",
			session:      self,
			body:         `{"id":"user-1","name":"Jane","email":"jane@example.com","role":"USER","apiKey":"sk-wrong-vendor"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "well-formed API key",
			session:      self,
			body:         `{"id":"user-1","name":"Jane","email":"jane@example.com","role":"USER","apiKey":"AIzaSyExample"}`,
			expectedCode: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &AuthHandler{AuthService: &fakeAuthService{}, Validate: validator.New()}
			wrapped := middleware.WithSession(&fakeResolver{user: tt.session})(http.HandlerFunc(h.UpdateProfile))
			req := httptest.NewRequest(http.MethodPut, "/api/auth/profile", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			wrapped.ServeHTTP(rec, req)

			if rec.Code != tt.expectedCode {
				t.Errorf("status = %d; want %d, body %q", rec.Code, tt.expectedCode, rec.Body.String())
			}
		})
	}
}
