// Package cart implements the takeaway shopping cart: an ordered list of
// (menu item, quantity) lines with quantity merging, totals, and
// write-through persistence to a pluggable key-value storage.
package cart

import (
	"sync"

	"dragondore/internal/catalog"
)

// Line is one cart entry: a menu item and how many of it. Quantity is
// always >= 1; a line whose quantity would drop to zero is removed.
type Line struct {
	Item     catalog.Item `json:"item"`
	Quantity int          `json:"quantity"`
}

// LineTotal returns price × quantity for this line.
func (l Line) LineTotal() float64 {
	return l.Item.Price * float64(l.Quantity)
}

// Listener is notified after every cart mutation with a snapshot of the
// current lines. The persistence adapter is the main listener; the UI
// layer can register its own.
type Listener func(lines []Line)

// Store holds one cart. All operations are safe for concurrent use;
// mutations run to completion under the lock and listeners fire while
// the lock is still held, so listener order matches mutation order.
type Store struct {
	mu        sync.Mutex
	lines     []Line
	listeners []Listener
}

// NewStore creates an empty cart.
func NewStore() *Store {
	return &Store{}
}

// NewStoreWithLines creates a cart pre-populated with the given lines,
// typically restored from storage.
func NewStoreWithLines(lines []Line) *Store {
	s := &Store{}
	s.lines = append(s.lines, lines...)
	return s
}

// Subscribe registers a listener for cart changes.
func (s *Store) Subscribe(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// AddItem adds one unit of item to the cart. If a line for the item
// already exists its quantity is incremented, otherwise a new line is
// appended. Always succeeds.
func (s *Store) AddItem(item catalog.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Item.ID == item.ID {
			s.lines[i].Quantity++
			s.notify()
			return
		}
	}
	s.lines = append(s.lines, Line{Item: item, Quantity: 1})
	s.notify()
}

// SetQuantity sets the line for id to exactly quantity. A quantity of
// zero or less removes the line; a missing id is a no-op for removal and
// ignored otherwise.
func (s *Store) SetQuantity(id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(id)
		s.notify()
		return
	}
	for i := range s.lines {
		if s.lines[i].Item.ID == id {
			s.lines[i].Quantity = quantity
			break
		}
	}
	s.notify()
}

// RemoveItem removes the line for id. No-op if absent.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(id)
	s.notify()
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.notify()
}

// Lines returns a copy of the cart lines in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// TotalItemCount returns the sum of all quantities, 0 for an empty cart.
func (s *Store) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// TotalPrice returns the sum of price × quantity over all lines, in full
// precision. Rounding to two decimals happens at render time only.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, line := range s.lines {
		total += line.LineTotal()
	}
	return total
}

func (s *Store) removeLocked(id string) {
	for i := range s.lines {
		if s.lines[i].Item.ID == id {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

func (s *Store) snapshotLocked() []Line {
	lines := make([]Line, len(s.lines))
	copy(lines, s.lines)
	return lines
}

func (s *Store) notify() {
	snapshot := s.snapshotLocked()
	for _, fn := range s.listeners {
		fn(snapshot)
	}
}
