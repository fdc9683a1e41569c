// Package auth implements the shared-secret session model: one admin
// identity, one sentinel cookie. There are no per-user accounts.
package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

const (
	CookieName  = "auth"
	CookieValue = "authenticated"

	// Sessions last seven days.
	CookieMaxAge = 7 * 24 * 60 * 60
)

// VerifyPassword compares the submitted secret against the configured one.
// Both sides are trimmed first; pasted secrets routinely pick up stray
// whitespace.
func VerifyPassword(submitted, expected string) bool {
	s := strings.TrimSpace(submitted)
	e := strings.TrimSpace(expected)
	return subtle.ConstantTimeCompare([]byte(s), []byte(e)) == 1
}

// NewSessionCookie issues the session marker. Secure is set only in
// production so local plain-HTTP development still works.
func NewSessionCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    CookieValue,
		Path:     "/",
		MaxAge:   CookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	}
}

// IsAuthenticated reports whether the request carries a valid session
// marker. The value must equal the sentinel exactly.
func IsAuthenticated(r *http.Request) bool {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return false
	}
	return c.Value == CookieValue
}
