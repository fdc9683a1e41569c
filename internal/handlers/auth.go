package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jeremyjsx/journal/internal/auth"
)

type AuthHandler struct {
	password string
	secure   bool
	logger   *slog.Logger
}

// NewAuthHandler takes the configured admin secret and whether issued
// cookies should carry the Secure flag.
func NewAuthHandler(password string, secure bool, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		password: password,
		secure:   secure,
		logger:   logger,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

func (h *AuthHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if !auth.VerifyPassword(req.Password, h.password) {
			h.logger.Info("login rejected")
			writeError(w, http.StatusUnauthorized, "Invalid password")
			return
		}

		http.SetCookie(w, auth.NewSessionCookie(h.secure))
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}
