package cart

import (
	"errors"
	"log"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Persister stores the serialized cart for a session. Last-write-wins; no
// transactional guarantees.
type Persister interface {
	SaveCart(sessionID string, items []Item) error
	LoadCart(sessionID string) ([]Item, error)
	DeleteCart(sessionID string) error
}

// Store holds the cart for one session. Entries are keyed by line key and
// kept in insertion order for display. The in-memory state is authoritative
// for the session; every mutation is persisted, and persistence failures are
// logged but never surfaced to the caller.
type Store struct {
	sessionID string
	items     []Item
	index     map[string]int
	persister Persister
}

// NewStore loads the persisted cart for the session. A missing or corrupt
// blob yields an empty cart, never an error.
func NewStore(sessionID string, persister Persister) *Store {
	s := &Store{
		sessionID: sessionID,
		index:     make(map[string]int),
		persister: persister,
	}

	items, err := persister.LoadCart(sessionID)
	if err != nil {
		log.Printf("Warning: failed to load cart for session %s, starting empty: %v", sessionID, err)
		return s
	}

	for _, item := range items {
		if item.Quantity < 1 {
			continue
		}
		if _, exists := s.index[item.Key]; exists {
			continue
		}
		s.index[item.Key] = len(s.items)
		s.items = append(s.items, item)
	}
	return s
}

// Add inserts an item, merging by key: an existing line with the same key
// gets its quantity increased instead of a duplicate row.
func (s *Store) Add(item Item) error {
	if item.Quantity < 1 {
		return ErrInvalidQuantity
	}

	if pos, exists := s.index[item.Key]; exists {
		s.items[pos].Quantity += item.Quantity
	} else {
		s.index[item.Key] = len(s.items)
		s.items = append(s.items, item)
	}

	s.persist()
	return nil
}

// Remove deletes the line with the given key. Absent keys are a no-op.
func (s *Store) Remove(key string) {
	pos, exists := s.index[key]
	if !exists {
		return
	}

	s.items = append(s.items[:pos], s.items[pos+1:]...)
	delete(s.index, key)
	for i := pos; i < len(s.items); i++ {
		s.index[s.items[i].Key] = i
	}

	s.persist()
}

// SetQuantity replaces the quantity of the line at key. Values below 1 are
// rejected; the cart never holds a zero or negative quantity. Absent keys
// are a no-op.
func (s *Store) SetQuantity(key string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	pos, exists := s.index[key]
	if !exists {
		return nil
	}

	s.items[pos].Quantity = quantity
	s.persist()
	return nil
}

// Increment raises the line's quantity by one.
func (s *Store) Increment(key string) {
	pos, exists := s.index[key]
	if !exists {
		return
	}
	s.items[pos].Quantity++
	s.persist()
}

// Decrement lowers the line's quantity by one, removing the line entirely
// when it would drop below 1.
func (s *Store) Decrement(key string) {
	pos, exists := s.index[key]
	if !exists {
		return
	}
	if s.items[pos].Quantity <= 1 {
		s.Remove(key)
		return
	}
	s.items[pos].Quantity--
	s.persist()
}

// Clear empties the cart and persists the empty state.
func (s *Store) Clear() {
	s.items = nil
	s.index = make(map[string]int)
	if err := s.persister.DeleteCart(s.sessionID); err != nil {
		log.Printf("Warning: failed to clear persisted cart for session %s: %v", s.sessionID, err)
	}
}

// Items returns the lines in insertion order.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of distinct lines.
func (s *Store) Len() int {
	return len(s.items)
}

// TotalItems is the sum of quantities over current lines, recomputed on
// every call.
func (s *Store) TotalItems() int {
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of unit price times quantity over current lines,
// recomputed on every call.
func (s *Store) TotalPrice() int {
	total := 0
	for _, item := range s.items {
		total += item.UnitPrice * item.Quantity
	}
	return total
}

func (s *Store) persist() {
	if err := s.persister.SaveCart(s.sessionID, s.items); err != nil {
		log.Printf("Warning: failed to persist cart for session %s: %v", s.sessionID, err)
	}
}
