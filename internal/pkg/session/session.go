// Package session implements the opaque cookie identity carried by ledger
// clients. A token's authority derives purely from possession: issuance,
// attachment and extraction are separate capabilities so each can be tested
// on its own, and nothing here talks to a store.
package session

import (
	"net/http"

	"github.com/google/uuid"
)

const (
	// DefaultCookieName is the cookie carrying the session token
	DefaultCookieName = "sessionId"

	// DefaultMaxAge is the cookie lifetime in seconds (7 days)
	DefaultMaxAge = 60 * 60 * 24 * 7
)

// Issue generates a fresh opaque session token
func Issue() string {
	return uuid.NewString()
}

// FromRequest extracts the session token from the request cookie.
// Returns false when no cookie is present.
func FromRequest(r *http.Request, cookieName string) (string, bool) {
	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// NewCookie builds the session cookie for a token with path "/" and the
// given lifetime in seconds
func NewCookie(cookieName, token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:   cookieName,
		Value:  token,
		Path:   "/",
		MaxAge: maxAge,
	}
}
