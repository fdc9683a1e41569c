package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestVerifyPassword(t *testing.T) {
	t.Run("exact match", func(t *testing.T) {
		if !VerifyPassword("admin123", "admin123") {
			t.Error("expected match")
		}
	})

	t.Run("whitespace trimmed on both sides", func(t *testing.T) {
		if !VerifyPassword("  admin123\n", "admin123 ") {
			t.Error("expected match after trimming")
		}
	})

	t.Run("mismatch", func(t *testing.T) {
		if VerifyPassword("wrong", "admin123") {
			t.Error("expected mismatch")
		}
	})

	t.Run("empty submitted", func(t *testing.T) {
		if VerifyPassword("", "admin123") {
			t.Error("expected mismatch")
		}
	})
}

func TestNewSessionCookie(t *testing.T) {
	c := NewSessionCookie(false)
	if c.Name != "auth" || c.Value != "authenticated" {
		t.Errorf("cookie name=%q value=%q", c.Name, c.Value)
	}
	if c.MaxAge != 604800 {
		t.Errorf("MaxAge = %d, want 604800", c.MaxAge)
	}
	if !c.HttpOnly {
		t.Error("cookie must be HttpOnly")
	}
	if c.SameSite != http.SameSiteLaxMode {
		t.Errorf("SameSite = %v, want Lax", c.SameSite)
	}
	if c.Secure {
		t.Error("Secure must be off outside production")
	}

	if !NewSessionCookie(true).Secure {
		t.Error("Secure must be on in production")
	}
}

func TestIsAuthenticated(t *testing.T) {
	t.Run("no cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/api/posts", nil)
		if IsAuthenticated(r) {
			t.Error("expected unauthenticated")
		}
	})

	t.Run("wrong value", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/api/posts", nil)
		r.AddCookie(&http.Cookie{Name: CookieName, Value: "nope"})
		if IsAuthenticated(r) {
			t.Error("expected unauthenticated")
		}
	})

	t.Run("sentinel value", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/api/posts", nil)
		r.AddCookie(&http.Cookie{Name: CookieName, Value: CookieValue})
		if !IsAuthenticated(r) {
			t.Error("expected authenticated")
		}
	})
}
