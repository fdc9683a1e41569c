package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jeremyjsx/journal/internal/posts"
)

const maxUploadBytes = 32 << 20

type PostsHandler struct {
	svc        *posts.Service
	logger     *slog.Logger
	devDetails bool
}

// NewPostsHandler builds the posts endpoints. devDetails controls whether
// 500 responses carry the underlying error message.
func NewPostsHandler(svc *posts.Service, logger *slog.Logger, devDetails bool) *PostsHandler {
	return &PostsHandler{
		svc:        svc,
		logger:     logger,
		devDetails: devDetails,
	}
}

func (h *PostsHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := h.svc.ListPosts(r.Context())
		if err != nil {
			h.logger.Error("list posts failed", "error", err)
			h.writeFailure(w, "Failed to fetch posts", err)
			return
		}
		if result == nil {
			result = []*posts.Post{}
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func (h *PostsHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid form data")
			return
		}

		title := strings.TrimSpace(r.FormValue("title"))
		content := strings.TrimSpace(r.FormValue("content"))
		if title == "" || content == "" {
			writeError(w, http.StatusBadRequest, "Title and content are required")
			return
		}

		var image *posts.ImageUpload
		file, header, err := r.FormFile("image")
		if err == nil {
			defer file.Close()
			data, readErr := io.ReadAll(file)
			if readErr != nil {
				h.logger.Error("read image upload failed", "error", readErr)
				h.writeFailure(w, "Failed to create post", readErr)
				return
			}
			if len(data) > 0 {
				image = &posts.ImageUpload{
					Data:        data,
					Filename:    header.Filename,
					ContentType: header.Header.Get("Content-Type"),
				}
			}
		} else if !errors.Is(err, http.ErrMissingFile) {
			writeError(w, http.StatusBadRequest, "Invalid form data")
			return
		}

		post, err := h.svc.CreatePost(r.Context(), title, content, image)
		if err != nil {
			h.logger.Error("create post failed", "error", err)
			h.writeFailure(w, "Failed to create post", err)
			return
		}

		writeJSON(w, http.StatusCreated, post)
	}
}

func (h *PostsHandler) writeFailure(w http.ResponseWriter, message string, err error) {
	if h.devDetails {
		writeErrorDetails(w, http.StatusInternalServerError, message, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, message)
}
