package service

import "github.com/google/uuid"

// SessionManager owns the mapping from an opaque session token to an
// authenticated user id. State is server-side only; the token travels in a
// cookie managed by the delivery layer. Sessions have no expiry: an entry
// lives until Clear.
type SessionManager interface {
	// Create opens a session for the user and returns its opaque token.
	Create(userID uuid.UUID) (string, error)

	// Get resolves a token to the user id it was bound to.
	Get(token string) (uuid.UUID, bool)

	// Clear removes the session. Clearing an unknown token is a no-op.
	Clear(token string)
}
