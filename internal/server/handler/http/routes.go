package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/prokashpul/techpulse/internal/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves the
// blog API. It applies JSON content-type enforcement, request logging,
// and session resolution, and mounts the browsing, auth, comment,
// admin, and assist endpoints under /api. Post mutations, the admin
// console, and the assist endpoints sit behind the admin gate.
func NewRouter(
	postHandler *PostHandler,
	authHandler *AuthHandler,
	commentHandler *CommentHandler,
	adminHandler *AdminHandler,
	assistHandler *AssistHandler,
	sessions middleware.UserResolver,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))
	// Resolve the persisted session once per request
	r.Use(middleware.WithSession(sessions))

	r.Route("/api", func(r chi.Router) {
		// Public browsing endpoints
		r.Get("/posts", postHandler.List)
		r.Get("/posts/search", postHandler.Search)
		r.Get("/posts/popular", postHandler.Popular)
		r.Get("/posts/{id}", postHandler.Get)
		r.Get("/posts/{id}/related", postHandler.Related)
		r.Get("/posts/{id}/comments", commentHandler.List)
		r.Get("/categories", postHandler.Categories)

		// Session endpoints
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/google", authHandler.LoginWithGoogle)
		r.Post("/auth/logout", authHandler.Logout)
		r.Get("/auth/me", authHandler.Me)

		// Logged-in endpoints
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)
			r.Post("/posts/{id}/comments", commentHandler.Create)
			r.Put("/auth/profile", authHandler.UpdateProfile)
		})

		// Admin console and authoring endpoints
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)

			r.Post("/posts", postHandler.Create)
			r.Put("/posts/{id}", postHandler.Update)
			r.Delete("/posts/{id}", postHandler.Delete)

			r.Get("/admin/users", adminHandler.Users)
			r.Delete("/admin/users/{id}", adminHandler.DeleteUser)
			r.Get("/admin/stats", adminHandler.Stats)

			r.Post("/assist/title", assistHandler.Title)
			r.Post("/assist/post", assistHandler.BlogPost)
			r.Post("/assist/thumbnail", assistHandler.Thumbnail)
			r.Post("/assist/image", assistHandler.EditImage)
		})
	})

	return r
}
