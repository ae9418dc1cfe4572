package tui

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionInfo describes one connected SSH player.
type SessionInfo struct {
	ID      string
	User    string
	Remote  string
	Started time.Time
}

// SessionRegistry tracks active sessions and enforces a connection limit.
// Thread-safe for concurrent access.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]SessionInfo
	limit    int // 0 means unlimited
}

// NewSessionRegistry creates a new session registry.
func NewSessionRegistry(limit int) *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]SessionInfo),
		limit:    limit,
	}
}

// Register adds a session and returns its new ID.
// Returns false if the registry is full.
func (r *SessionRegistry) Register(user, remote string) (SessionInfo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.limit > 0 && len(r.sessions) >= r.limit {
		return SessionInfo{}, false
	}

	info := SessionInfo{
		ID:      uuid.NewString(),
		User:    user,
		Remote:  remote,
		Started: time.Now(),
	}
	r.sessions[info.ID] = info
	return info, true
}

// Unregister removes a session from the registry.
func (r *SessionRegistry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Get retrieves a session by ID.
func (r *SessionRegistry) Get(id string) (SessionInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Count returns the number of registered sessions.
func (r *SessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
