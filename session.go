package main

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"lg/wellness-go-api/nutrition"
)

// session is one user's working state: an intake ledger and at most one
// saved profile. Handlers hold mu for the whole request.
type session struct {
	mu       sync.Mutex
	ledger   nutrition.Ledger
	profile  *nutrition.UserProfile
	lastSeen time.Time
}

// sessionStore owns every live session, keyed by a random UUID. Idle sessions
// are evicted lazily on access.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*session
	ttl      time.Duration
	now      func() time.Time
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		sessions: make(map[uuid.UUID]*session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// create registers a fresh empty session and returns its id.
func (s *sessionStore) create() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()

	id := uuid.New()
	s.sessions[id] = &session{lastSeen: s.now()}
	return id
}

// get returns the session and refreshes its idle timer. Expired sessions are
// reported as missing.
func (s *sessionStore) get(id uuid.UUID) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	if now.Sub(sess.lastSeen) > s.ttl {
		delete(s.sessions, id)
		return nil, false
	}
	sess.lastSeen = now
	return sess, true
}

// end removes the session. Returns false if it did not exist.
func (s *sessionStore) end(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

func (s *sessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// sweepLocked drops idle sessions. Caller holds s.mu.
func (s *sessionStore) sweepLocked() {
	now := s.now()
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
		}
	}
}
