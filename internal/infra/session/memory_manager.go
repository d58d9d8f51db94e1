// Package session provides the server-side session store. Tokens are
// opaque random strings; the mapping to user ids lives only in this
// process.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"

	"ladle/internal/domain/service"
	"ladle/internal/errors"

	"github.com/google/uuid"
)

const tokenBytes = 32

// memoryManager implements service.SessionManager with a mutex-guarded
// map. Writes are atomic per token; concurrent writers to the same token
// resolve last-writer-wins.
type memoryManager struct {
	mu       sync.RWMutex
	sessions map[string]uuid.UUID
}

// NewMemoryManager is the constructor for the in-memory session manager.
func NewMemoryManager() service.SessionManager {
	return &memoryManager{
		sessions: make(map[string]uuid.UUID),
	}
}

// Create opens a session bound to userID and returns its token.
func (m *memoryManager) Create(userID uuid.UUID) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate session token")
	}
	token := hex.EncodeToString(buf)

	m.mu.Lock()
	m.sessions[token] = userID
	m.mu.Unlock()

	return token, nil
}

// Get resolves a token to its user id.
func (m *memoryManager) Get(token string) (uuid.UUID, bool) {
	m.mu.RLock()
	userID, ok := m.sessions[token]
	m.mu.RUnlock()

	return userID, ok
}

// Clear removes the session for token.
func (m *memoryManager) Clear(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}
