package cart

import (
	"encoding/json"
	"log"
)

// Storage is the durable key-value store carts are persisted to. Get
// reports absence with ok=false; a storage error is distinct from
// absence.
type Storage interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// keyPrefix namespaces cart entries in the shared storage.
const keyPrefix = "dragondore:cart:"

// Key returns the storage key for a session's cart.
func Key(sessionID string) string {
	return keyPrefix + sessionID
}

// encode serializes cart lines for storage.
func encode(lines []Line) (string, error) {
	data, err := json.Marshal(lines)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decode parses a persisted cart payload. Any parse failure is treated
// as absence: the caller gets an empty cart, never an error.
func decode(payload string) []Line {
	var lines []Line
	if err := json.Unmarshal([]byte(payload), &lines); err != nil {
		log.Printf("cart: discarding malformed persisted cart: %v", err)
		return nil
	}
	return lines
}

// Restore loads the cart for key from storage. An absent, unreadable or
// malformed entry yields an empty cart.
func Restore(storage Storage, key string) *Store {
	payload, ok, err := storage.Get(key)
	if err != nil {
		log.Printf("cart: restore failed for %s, starting empty: %v", key, err)
		return NewStore()
	}
	if !ok {
		return NewStore()
	}
	return NewStoreWithLines(decode(payload))
}

// Persist subscribes a write-through listener on the store: after every
// mutation the whole cart is serialized and written under key. Write
// failures are logged, not propagated; the in-memory cart stays
// authoritative for the session.
func Persist(store *Store, storage Storage, key string) {
	store.Subscribe(func(lines []Line) {
		payload, err := encode(lines)
		if err != nil {
			log.Printf("cart: encode failed for %s: %v", key, err)
			return
		}
		if err := storage.Set(key, payload); err != nil {
			log.Printf("cart: persist failed for %s: %v", key, err)
		}
	})
}

// MemoryStorage is an in-memory Storage, used in tests and as a last
// resort when no durable backend is configured.
type MemoryStorage struct {
	values map[string]string
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

// Get returns the stored value for key.
func (m *MemoryStorage) Get(key string) (string, bool, error) {
	value, ok := m.values[key]
	return value, ok, nil
}

// Set stores value under key.
func (m *MemoryStorage) Set(key, value string) error {
	m.values[key] = value
	return nil
}
