package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/jeremyjsx/journal/internal/images"
)

type ImagesHandler struct {
	store  *images.Store
	logger *slog.Logger
}

func NewImagesHandler(store *images.Store, logger *slog.Logger) *ImagesHandler {
	return &ImagesHandler{
		store:  store,
		logger: logger,
	}
}

func (h *ImagesHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename := r.PathValue("filename")
		if filename == "" {
			writeError(w, http.StatusBadRequest, "Filename is required")
			return
		}

		body, contentType, err := h.store.Get(r.Context(), filename)
		if err != nil {
			switch {
			case errors.Is(err, images.ErrUnavailable):
				// Misconfiguration, not a missing resource.
				writeError(w, http.StatusServiceUnavailable, "Image storage not available")
			case errors.Is(err, images.ErrNotFound):
				writeError(w, http.StatusNotFound, "Image not found")
			default:
				h.logger.Error("serve image failed", "key", filename, "error", err)
				writeError(w, http.StatusInternalServerError, "Failed to serve image")
			}
			return
		}
		defer body.Close()

		// Keys are never reused or rewritten, so the content behind one is
		// immutable.
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		if _, err := io.Copy(w, body); err != nil {
			h.logger.Error("stream image failed", "key", filename, "error", err)
		}
	}
}
