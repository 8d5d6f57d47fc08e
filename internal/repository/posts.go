// Package repository provides file-backed persistence over the four
// store slots. Every operation reads the full collection, derives or
// transforms it in memory, and rewrites the full collection; nothing
// is indexed or cached between calls.
package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/prokashpul/techpulse/internal/models"
	"github.com/prokashpul/techpulse/internal/storage"
)

// CategoryAll is the sentinel category that disables filtering.
const CategoryAll = "All"

// Page is one slice of the post collection in newest-first order.
type Page struct {
	// Posts holds the requested slice.
	Posts []models.BlogPost `json:"posts"`
	// HasMore reports whether later pages exist.
	HasMore bool `json:"hasMore"`
}

// Category is a tag name with its occurrence count across all posts.
type Category struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// FilePostRepository implements post queries and mutations over the
// JSON file store.
type FilePostRepository struct {
	store *storage.Store
}

// NewFilePostRepository creates a post repository over the given store.
func NewFilePostRepository(store *storage.Store) *FilePostRepository {
	return &FilePostRepository{store: store}
}

// sorted returns the full collection ordered by creation time
// descending. Ordering between equal timestamps is unspecified.
func (r *FilePostRepository) sorted() ([]models.BlogPost, error) {
	posts, err := r.store.Posts()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return createdAt(posts[i]).After(createdAt(posts[j]))
	})
	return posts, nil
}

func createdAt(p models.BlogPost) time.Time {
	t, _ := time.Parse(time.RFC3339, p.CreatedAt)
	return t
}

// Page returns the 1-based page of the given size. HasMore is false
// only once the final page has been served.
func (r *FilePostRepository) Page(ctx context.Context, page, limit int) (Page, error) {
	posts, err := r.sorted()
	if err != nil {
		return Page{}, err
	}
	return slicePage(posts, page, limit), nil
}

// PageByCategory pages posts whose tag list contains category,
// matched case-insensitively. CategoryAll disables the filter.
func (r *FilePostRepository) PageByCategory(ctx context.Context, category string, page, limit int) (Page, error) {
	posts, err := r.sorted()
	if err != nil {
		return Page{}, err
	}
	if category != CategoryAll {
		filtered := posts[:0:0]
		for _, p := range posts {
			if hasTag(p, category) {
				filtered = append(filtered, p)
			}
		}
		posts = filtered
	}
	return slicePage(posts, page, limit), nil
}

func hasTag(p models.BlogPost, category string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, category) {
			return true
		}
	}
	return false
}

// Search returns every post whose title or excerpt contains query,
// case-insensitively. The content body is not searched and results are
// not paginated. Callers define the empty query as "not searching" and
// must not route it here.
func (r *FilePostRepository) Search(ctx context.Context, query string) ([]models.BlogPost, error) {
	posts, err := r.sorted()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	matches := []models.BlogPost{}
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Excerpt), q) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// ByID scans for the post with the given id. Absence is not an error;
// it returns nil.
func (r *FilePostRepository) ByID(ctx context.Context, id string) (*models.BlogPost, error) {
	posts, err := r.sorted()
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

// Related returns up to five of the newest posts other than the one
// with the given id.
func (r *FilePostRepository) Related(ctx context.Context, id string) ([]models.BlogPost, error) {
	posts, err := r.sorted()
	if err != nil {
		return nil, err
	}
	related := []models.BlogPost{}
	for _, p := range posts {
		if p.ID == id {
			continue
		}
		related = append(related, p)
		if len(related) == 5 {
			break
		}
	}
	return related, nil
}

// Popular returns the five most viewed posts.
func (r *FilePostRepository) Popular(ctx context.Context) ([]models.BlogPost, error) {
	posts, err := r.sorted()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Views > posts[j].Views
	})
	if len(posts) > 5 {
		posts = posts[:5]
	}
	return posts, nil
}

// Categories scans every post's tag list and counts occurrences,
// ordered by count descending, then name.
func (r *FilePostRepository) Categories(ctx context.Context) ([]Category, error) {
	posts, err := r.store.Posts()
	if err != nil {
		return nil, err
	}
	counts := map[string]int{}
	for _, p := range posts {
		for _, t := range p.Tags {
			counts[t]++
		}
	}
	categories := make([]Category, 0, len(counts))
	for name, count := range counts {
		categories = append(categories, Category{Name: name, Count: count})
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Count != categories[j].Count {
			return categories[i].Count > categories[j].Count
		}
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

// Stats aggregates the dashboard figures: post count, summed views,
// and the newest-first per-post view series.
type Stats struct {
	TotalPosts int         `json:"totalPosts"`
	TotalViews int         `json:"totalViews"`
	Series     []PostViews `json:"series"`
}

// PostViews is one point of the dashboard view series.
type PostViews struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Views int    `json:"views"`
}

// Stats recomputes the dashboard aggregates from the full collection.
func (r *FilePostRepository) Stats(ctx context.Context) (Stats, error) {
	posts, err := r.sorted()
	if err != nil {
		return Stats{}, err
	}
	stats := Stats{TotalPosts: len(posts), Series: make([]PostViews, 0, len(posts))}
	for _, p := range posts {
		stats.TotalViews += p.Views
		stats.Series = append(stats.Series, PostViews{ID: p.ID, Title: p.Title, Views: p.Views})
	}
	return stats, nil
}

// Create assigns a timestamp-derived id, sets the creation time and a
// zero view count, prepends the post, and persists the collection.
func (r *FilePostRepository) Create(ctx context.Context, draft models.BlogPost) (models.BlogPost, error) {
	posts, err := r.sorted()
	if err != nil {
		return models.BlogPost{}, err
	}
	now := time.Now().UTC()
	draft.ID = fmt.Sprintf("post-%d", now.UnixMilli())
	draft.CreatedAt = now.Format(time.RFC3339)
	draft.Views = 0

	updated := append([]models.BlogPost{draft}, posts...)
	if err := r.store.SavePosts(updated); err != nil {
		return models.BlogPost{}, err
	}
	return draft, nil
}

// Update replaces the stored record with the same id. An unknown id is
// a silent no-op and the collection is not rewritten.
func (r *FilePostRepository) Update(ctx context.Context, post models.BlogPost) error {
	posts, err := r.sorted()
	if err != nil {
		return err
	}
	for i := range posts {
		if posts[i].ID == post.ID {
			posts[i] = post
			return r.store.SavePosts(posts)
		}
	}
	return nil
}

// Delete removes the post with the given id. Deleting an absent id is
// idempotent.
func (r *FilePostRepository) Delete(ctx context.Context, id string) error {
	posts, err := r.sorted()
	if err != nil {
		return err
	}
	filtered := posts[:0:0]
	for _, p := range posts {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	return r.store.SavePosts(filtered)
}

// slicePage cuts the 1-based page out of posts. HasMore is computed
// against the unclamped slice end, so it is false exactly when the
// final page has been reached.
func slicePage(posts []models.BlogPost, page, limit int) Page {
	start := (page - 1) * limit
	end := start + limit

	sliceStart := start
	if sliceStart > len(posts) {
		sliceStart = len(posts)
	}
	sliceEnd := end
	if sliceEnd > len(posts) {
		sliceEnd = len(posts)
	}
	out := make([]models.BlogPost, sliceEnd-sliceStart)
	copy(out, posts[sliceStart:sliceEnd])
	return Page{Posts: out, HasMore: end < len(posts)}
}
