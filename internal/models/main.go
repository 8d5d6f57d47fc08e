// Package models defines the core data structures for users, posts,
// comments, and the persisted session reference.
package models

// UserRole defines the set of valid user role identifiers.
type UserRole string

const (
	// RoleAdmin grants access to the admin console.
	RoleAdmin UserRole = "ADMIN"
	// RoleUser is a regular registered user.
	RoleUser UserRole = "USER"
	// RoleGuest is an unauthenticated visitor.
	RoleGuest UserRole = "GUEST"
)

// User represents an application user.
type User struct {
	// ID is the unique identifier for the user.
	ID string `json:"id"`
	// Name is the display name shown next to posts and comments.
	Name string `json:"name"`
	// Email is the login key. Uniqueness is not enforced at write time.
	Email string `json:"email"`
	// Role controls access to the admin console.
	Role UserRole `json:"role"`
	// Avatar is a URI to the profile image.
	Avatar string `json:"avatar,omitempty"`
	// Bio holds an optional short biography.
	Bio string `json:"bio,omitempty"`
	// APIKey is an optional user-provided Gemini API key.
	APIKey string `json:"apiKey,omitempty"`
}

// BlogPost represents a published article. Content may be HTML or
// Markdown; the distinction is made by tag sniffing at render time.
type BlogPost struct {
	// ID is the unique identifier, derived from the creation timestamp.
	ID string `json:"id"`
	// Title is the headline of the post.
	Title string `json:"title"`
	// Excerpt is a short summary, derivable from the content.
	Excerpt string `json:"excerpt"`
	// Content is the post body, HTML or Markdown.
	Content string `json:"content"`
	// CoverImage is a URI or embedded data image for the card and header.
	CoverImage string `json:"coverImage"`
	// AuthorID references the authoring user.
	AuthorID string `json:"authorId"`
	// AuthorName is the denormalized display name of the author.
	AuthorName string `json:"authorName"`
	// Tags is the ordered tag list; the first tag acts as the primary category.
	Tags []string `json:"tags"`
	// CreatedAt is the RFC 3339 creation timestamp.
	CreatedAt string `json:"createdAt"`
	// Views is the view counter.
	Views int `json:"views"`
}

// Comment represents a reader comment on a post. Comments are
// append-only; no edit or delete is exposed.
type Comment struct {
	// ID is the unique identifier, derived from the creation timestamp.
	ID string `json:"id"`
	// PostID references the commented post.
	PostID string `json:"postId"`
	// UserID references the commenting user.
	UserID string `json:"userId"`
	// UserName is the denormalized display name of the commenter.
	UserName string `json:"userName"`
	// Content is the comment body.
	Content string `json:"content"`
	// CreatedAt is the RFC 3339 creation timestamp.
	CreatedAt string `json:"createdAt"`
}

// Session is the persisted session reference. It stores only the
// identity of the logged-in user; the user record itself is always
// resolved from the users collection.
type Session struct {
	// UserID references the authenticated user.
	UserID string `json:"userId"`
}
