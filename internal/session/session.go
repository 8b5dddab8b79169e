package session

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrNotFound = errors.New("session not found or signed out")
	ErrExpired  = errors.New("session expired")
)

// Session is the signed-in identity handed to handlers. It is created at
// sign-in, injected by the auth middleware, and torn down at sign-out —
// there is no package-global "current user".
type Session struct {
	ID        string // JWT token ID (jti)
	UserID    uint
	ProfileID uint
	Role      string
	FullName  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Manager tracks live sessions by token ID. A JWT whose session was destroyed
// (sign-out, deactivation) is refused even if its signature is still valid.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create registers the session at sign-in.
func (m *Manager) Create(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
}

// Get returns the live session for the token ID, evicting it when expired.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	if time.Now().After(s.ExpiresAt) {
		m.Destroy(id)
		return nil, ErrExpired
	}
	return s, nil
}

// Destroy tears the session down at sign-out.
func (m *Manager) Destroy(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// DestroyUser drops every live session of a user (account deactivation).
func (m *Manager) DestroyUser(userID uint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		if s.UserID == userID {
			delete(m.sessions, id)
		}
	}
}

// Count reports live sessions; used by the admin dashboard.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
