package game

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("session not found")

// Store keeps live sessions in memory, keyed by id. Sessions vanish with
// the process; there is no persistence layer behind this.
type Store struct {
	mu       sync.Mutex
	nextID   int64
	sessions map[int64]*Session
}

func NewStore() *Store {
	return &Store{sessions: map[int64]*Session{}}
}

// Add registers a session and returns its id.
func (s *Store) Add(session *Session) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.sessions[s.nextID] = session
	return s.nextID
}

// Get retrieves a session by id, or ErrNotFound.
func (s *Store) Get(id int64) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return session, nil
}

// Delete removes a session by id, or ErrNotFound.
func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
