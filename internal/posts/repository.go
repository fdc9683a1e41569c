package posts

import "context"

// Repository is the posts persistence contract. Backed by the SQL
// repository when a database handle resolved at startup, by the in-memory
// fallback store otherwise; both honor the same ordering and id rules.
type Repository interface {
	// List returns all posts newest first. Ties on created_at keep
	// insertion order. An empty store yields an empty slice, not an error.
	List(ctx context.Context) ([]*Post, error)

	// Create persists a post and returns it with its assigned id and
	// timestamps. The id is assigned exactly once, by the storing backend.
	Create(ctx context.Context, title, content string, imageURL *string) (*Post, error)
}
