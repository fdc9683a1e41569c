// Package images is the put/get layer over the blob backend. When no blob
// backend resolved, Put degrades to a self-contained data URI so posts
// still render locally; Get in that mode reports the backend as
// unavailable, since nothing was ever stored under a key.
package images

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"regexp"
	"time"

	"github.com/jeremyjsx/journal/internal/storage"
)

var (
	ErrNotFound    = errors.New("image not found")
	ErrUnavailable = errors.New("blob backend not configured")
)

// Keys never collide in practice and are never reused, which is what makes
// the immutable cache directive on the serving path safe.
var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

const defaultContentType = "image/jpeg"

type Store struct {
	blob    storage.Storage
	baseURL string
}

// NewStore builds an image store. blob may be nil (absent capability).
// baseURL prefixes returned retrieval URLs; empty means relative paths.
func NewStore(blob storage.Storage, baseURL string) *Store {
	return &Store{blob: blob, baseURL: baseURL}
}

// Put stores the image and returns its reference URL. With a blob backend
// the reference points at the serving endpoint; without one, the reference
// IS the content, inline-encoded.
func (s *Store) Put(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	if s.blob == nil {
		return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)), nil
	}

	key := GenerateKey(filename)
	if err := s.blob.Upload(ctx, key, bytes.NewReader(data), contentType); err != nil {
		return "", fmt.Errorf("upload image %s: %w", key, err)
	}
	return s.baseURL + "/api/images/" + key, nil
}

// Get fetches image bytes and content type by key.
func (s *Store) Get(ctx context.Context, key string) (io.ReadCloser, string, error) {
	if s.blob == nil {
		return nil, "", ErrUnavailable
	}

	body, contentType, err := s.blob.Download(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("download image %s: %w", key, err)
	}
	if contentType == "" {
		contentType = defaultContentType
	}
	return body, contentType, nil
}

// GenerateKey derives a storage key from upload time and the sanitized
// original filename.
func GenerateKey(filename string) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), unsafeChars.ReplaceAllString(filename, "_"))
}
