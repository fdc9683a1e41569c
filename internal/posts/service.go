package posts

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jeremyjsx/journal/internal/events"
)

// ImagePutter is the slice of the image store the service needs.
type ImagePutter interface {
	Put(ctx context.Context, data []byte, filename, contentType string) (string, error)
}

// ImageUpload is an optional attachment on post creation.
type ImageUpload struct {
	Data        []byte
	Filename    string
	ContentType string
}

type Service struct {
	repo      Repository
	images    ImagePutter
	publisher events.Publisher
	logger    *slog.Logger
}

func NewService(repo Repository, images ImagePutter, publisher events.Publisher, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		images:    images,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *Service) ListPosts(ctx context.Context) ([]*Post, error) {
	return s.repo.List(ctx)
}

// CreatePost persists an optional image, then the post row, in that order.
// A post row never references an image that failed to store. There is no
// compensation the other way: an uploaded blob is orphaned if the row
// insert fails.
func (s *Service) CreatePost(ctx context.Context, title, content string, image *ImageUpload) (*Post, error) {
	var imageURL *string
	if image != nil && len(image.Data) > 0 {
		url, err := s.images.Put(ctx, image.Data, image.Filename, image.ContentType)
		if err != nil {
			return nil, fmt.Errorf("store image: %w", err)
		}
		imageURL = &url
	}

	post, err := s.repo.Create(ctx, title, content, imageURL)
	if err != nil {
		return nil, err
	}

	// Best effort: a broker outage must not fail the write.
	e := events.NewPostCreated(post.ID, post.Title, post.ImageURL != nil)
	if err := s.publisher.PublishPostCreated(ctx, e); err != nil {
		s.logger.Warn("publish post.created failed", "post_id", post.ID, "error", err)
	}

	return post, nil
}
