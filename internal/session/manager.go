package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const sweepInterval = time.Minute

// Manager tracks live sessions and expires the ones idle past the TTL.
type Manager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
}

func NewManager(ttl time.Duration) *Manager {
	m := &Manager{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
	}
	go m.sweep()
	return m
}

// Create starts a fresh session with an empty cart.
func (m *Manager) Create() *Session {
	s := newSession()

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	return s
}

// Get returns the session for the given ID, if it is still alive.
func (m *Manager) Get(id uuid.UUID) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Resolve returns the session identified by the raw header value, creating
// a new one when the value is missing, malformed, or expired.
func (m *Manager) Resolve(raw string) *Session {
	if raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			if s, ok := m.Get(id); ok {
				return s
			}
		}
	}
	return m.Create()
}

// Destroy removes a session, discarding all of its state.
func (m *Manager) Destroy(id uuid.UUID) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// sweep drops idle sessions to keep the map from growing without bound.
func (m *Manager) sweep() {
	for {
		time.Sleep(sweepInterval)

		m.mu.Lock()
		for id, s := range m.sessions {
			s.mu.Lock()
			idle := time.Since(s.lastSeen)
			s.mu.Unlock()

			if idle > m.ttl {
				delete(m.sessions, id)
			}
		}
		m.mu.Unlock()
	}
}
