// Package session owns the mutable scene state for each editing session.
// The store serializes writers; everything underneath it is pure, so a
// snapshot handed out here stays safe to read concurrently.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"scenedirector/internal/domain"
)

// Session wraps one scene plus its session-wide flags. Locked guards every
// mutation, including reset.
type Session struct {
	ID        string            `json:"id"`
	State     domain.SceneState `json:"state"`
	Locked    bool              `json:"locked"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type Store struct {
	mu sync.Mutex
	m  map[string]*Session
}

func NewStore() *Store {
	return &Store{m: make(map[string]*Session)}
}

// Create registers a new session with the documented scene defaults.
func (s *Store) Create() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &Session{
		ID:        uuid.NewString(),
		State:     domain.NewSceneState(),
		UpdatedAt: time.Now(),
	}
	s.m[sess.ID] = sess
	return snapshot(sess)
}

// Get returns a copy of the session, or domain.ErrNotFound.
func (s *Store) Get(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.m[id]
	if !ok {
		return Session{}, domain.ErrNotFound
	}
	return snapshot(sess), nil
}

// Mutate applies fn to the session's state under the store lock. fn
// receives the current state and the session's lock flag and returns the
// next state; a lock-respecting fn returns its input unchanged when
// locked is true.
func (s *Store) Mutate(id string, fn func(state domain.SceneState, locked bool) domain.SceneState) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.m[id]
	if !ok {
		return Session{}, domain.ErrNotFound
	}
	sess.State = fn(sess.State.Clone(), sess.Locked)
	sess.UpdatedAt = time.Now()
	return snapshot(sess), nil
}

// SetLocked flips the settings lock. Flipping the lock itself is always
// allowed; it is the guarded mutations that the flag protects.
func (s *Store) SetLocked(id string, locked bool) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.m[id]
	if !ok {
		return Session{}, domain.ErrNotFound
	}
	sess.Locked = locked
	sess.UpdatedAt = time.Now()
	return snapshot(sess), nil
}

func snapshot(sess *Session) Session {
	out := *sess
	out.State = sess.State.Clone()
	return out
}
