package cart

import (
	"sync"
)

// Service hands out the cart Store for each browsing session. A session's
// store is restored from storage on first access and kept in memory
// afterwards with a write-through persistence listener attached. Carts
// in different server instances sharing one storage are last-write-wins,
// same as multiple browser tabs.
type Service struct {
	mu      sync.Mutex
	storage Storage
	stores  map[string]*Store
}

// NewService creates a Service over the given storage backend.
func NewService(storage Storage) *Service {
	return &Service{
		storage: storage,
		stores:  make(map[string]*Store),
	}
}

// ForSession returns the cart store for sessionID, restoring it from
// storage the first time the session is seen.
func (s *Service) ForSession(sessionID string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	if store, ok := s.stores[sessionID]; ok {
		return store
	}

	key := Key(sessionID)
	store := Restore(s.storage, key)
	Persist(store, s.storage, key)
	s.stores[sessionID] = store
	return store
}

// Drop forgets the in-memory store for sessionID. The persisted entry is
// left alone; the next ForSession restores from it.
func (s *Service) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.stores, sessionID)
}
