package cart

import (
	"sync"

	"github.com/google/uuid"
)

// SessionManager holds one Store per guest ordering session. Sessions live
// only in memory; a cart disappears with the process, which matches the
// session-scoped lifecycle of the cart itself.
type SessionManager struct {
	mu     sync.RWMutex
	stores map[string]*Store
}

func NewSessionManager() *SessionManager {
	return &SessionManager{stores: make(map[string]*Store)}
}

// Create opens a new empty cart session and returns its id.
func (m *SessionManager) Create() (string, *Store) {
	id := uuid.New().String()
	store := NewStore()

	m.mu.Lock()
	m.stores[id] = store
	m.mu.Unlock()

	return id, store
}

func (m *SessionManager) Get(id string) (*Store, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	store, ok := m.stores[id]
	return store, ok
}

// Delete drops a session, typically after checkout.
func (m *SessionManager) Delete(id string) {
	m.mu.Lock()
	delete(m.stores, id)
	m.mu.Unlock()
}
