package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/cleared-dev/pnl/internal/model"
)

// ErrNotFound is returned for an unknown session ID.
var ErrNotFound = errors.New("session not found")

type slot struct {
	mu sync.Mutex
	s  *Session
}

// Store keeps one Session per caller and serializes access to each.
type Store struct {
	mu    sync.RWMutex
	slots map[string]*slot
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{slots: make(map[string]*slot)}
}

// Create starts a new session over l and returns its ID.
func (st *Store) Create(l model.Ledger) string {
	id := uuid.NewString()
	st.mu.Lock()
	st.slots[id] = &slot{s: New(id, l)}
	st.mu.Unlock()
	return id
}

// With runs fn while holding the session's lock.
func (st *Store) With(id string, fn func(s *Session) error) error {
	st.mu.RLock()
	sl, ok := st.slots[id]
	st.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}

	sl.mu.Lock()
	defer sl.mu.Unlock()
	return fn(sl.s)
}

// Delete ends a session. Unknown IDs are ignored.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.slots, id)
	st.mu.Unlock()
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.slots)
}
