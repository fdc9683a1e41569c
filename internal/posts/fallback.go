package posts

import (
	"context"
	"sort"
	"sync"
)

var _ Repository = (*FallbackStore)(nil)

// FallbackStore keeps posts in process memory for the no-database case
// (local development, first boot before any backend is wired). Contents
// live and die with the process.
type FallbackStore struct {
	mu     sync.Mutex
	posts  []*Post
	nextID int64
}

func NewFallbackStore() *FallbackStore {
	return &FallbackStore{nextID: 1}
}

func (s *FallbackStore) List(_ context.Context) ([]*Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Post, len(s.posts))
	copy(out, s.posts)
	// Stable sort over the insertion-ordered slice keeps equal timestamps
	// in insertion order.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out, nil
}

func (s *FallbackStore) Create(_ context.Context, title, content string, imageURL *string) (*Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := NowUTC()
	post := &Post{
		ID:        s.nextID,
		Title:     title,
		Content:   content,
		ImageURL:  imageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.posts = append(s.posts, post)
	s.nextID++
	return post, nil
}
