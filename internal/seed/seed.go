// Package seed holds the built-in dataset that populates an empty store
// on first access: two users, two comments, and a generated post archive.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/prokashpul/techpulse/internal/models"
)

// DefaultPostCount is how many posts are generated on first read of an
// empty posts slot.
const DefaultPostCount = 50

// AdminEmail is the login of the built-in administrator account.
const AdminEmail = "prokashpul2@gmail.com"

// Users returns the built-in user accounts.
func Users() []models.User {
	return []models.User{
		{
			ID:     "admin-1",
			Name:   "Prokash Pul",
			Email:  AdminEmail,
			Role:   models.RoleAdmin,
			Avatar: "https://picsum.photos/id/64/200/200",
			Bio:    "Full Stack Developer & AI Enthusiast. Building the future of tech blogging.",
		},
		{
			ID:     "user-1",
			Name:   "Jane Doe",
			Email:  "jane@example.com",
			Role:   models.RoleUser,
			Avatar: "https://picsum.photos/id/65/200/200",
			Bio:    "Tech reader and occasional writer.",
		},
	}
}

// Comments returns the built-in demo comments.
func Comments() []models.Comment {
	now := time.Now().UTC()
	return []models.Comment{
		{
			ID:        "c1",
			PostID:    "post-0",
			UserID:    "user-2",
			UserName:  "Michael Scott",
			Content:   "This is a fantastic article! The insights on Generative AI are spot on. I really liked how you explained the efficiency gains.",
			CreatedAt: now.Add(-24 * time.Hour).Format(time.RFC3339),
		},
		{
			ID:        "c2",
			PostID:    "post-0",
			UserID:    "user-3",
			UserName:  "Sarah Connor",
			Content:   "I am worried about the future implications. We need to be careful with how we deploy these models.",
			CreatedAt: now.Add(-time.Hour).Format(time.RFC3339),
		},
	}
}

// GeneratePosts builds count placeholder posts authored by the built-in
// admin. Titles and images are deterministic; timestamps step back one
// day per post so post-0 is the newest.
func GeneratePosts(count int) []models.BlogPost {
	now := time.Now().UTC()
	posts := make([]models.BlogPost, 0, count)
	for i := 0; i < count; i++ {
		posts = append(posts, models.BlogPost{
			ID:         fmt.Sprintf("post-%d", i),
			Title:      fmt.Sprintf("The Future of AI: Trend #%d", i+1),
			Excerpt:    fmt.Sprintf("Exploring the deep impact of artificial intelligence on sector %d. We dive into the details using Gemini...", i+1),
			Content:    postContent(i),
			CoverImage: fmt.Sprintf("https://picsum.photos/id/%d/800/600", 10+i),
			AuthorID:   "admin-1",
			AuthorName: "Prokash Pul",
			Tags:       []string{"AI", "Tech", "Future", "Innovation"},
			CreatedAt:  now.Add(-time.Duration(i) * 24 * time.Hour).Format(time.RFC3339),
			Views:      rand.Intn(5000),
		})
	}
	return posts
}

func postContent(i int) string {
	return fmt.Sprintf(`
# The AI Revolution %d

Artificial Intelligence is reshaping our world. In this post, we explore how **Generative AI** is changing the landscape.

## Key Takeaways
1. Efficiency is up by 40%%.
2. Creativity is being augmented, not replaced.
3. New job roles are emerging.

> "AI is the new electricity." - Andrew Ng

![AI Abstract](https://picsum.photos/id/%d/800/400)

## Conclusion
The future is bright if we build responsibly.
`, i+1, 10+i)
}
