package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIssue(t *testing.T) {
	first := Issue()
	second := Issue()

	// Tokens are opaque but well-formed UUIDs, and fresh every time
	_, err := uuid.Parse(first)
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestFromRequest(t *testing.T) {
	t.Run("Cookie Present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: "token-123"})

		token, ok := FromRequest(req, DefaultCookieName)

		assert.True(t, ok)
		assert.Equal(t, "token-123", token)
	})

	t.Run("Cookie Absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		token, ok := FromRequest(req, DefaultCookieName)

		assert.False(t, ok)
		assert.Empty(t, token)
	})

	t.Run("Cookie Empty", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: ""})

		token, ok := FromRequest(req, DefaultCookieName)

		assert.False(t, ok)
		assert.Empty(t, token)
	})
}

func TestNewCookie(t *testing.T) {
	cookie := NewCookie(DefaultCookieName, "token-123", DefaultMaxAge)

	assert.Equal(t, DefaultCookieName, cookie.Name)
	assert.Equal(t, "token-123", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 604800, cookie.MaxAge)
}
