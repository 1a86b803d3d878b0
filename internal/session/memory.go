package session

import (
	"context"
	"sync"
)

// memoryStore keeps the session in process memory. Used by tests and
// as a throwaway store for one-off CLI invocations.
type memoryStore struct {
	mu   sync.RWMutex
	sess Session
}

// Load implements Store.
func (s *memoryStore) Load(ctx context.Context) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess, nil
}

// Login implements Store.
func (s *memoryStore) Login(ctx context.Context, token, userID string) error {
	if token == "" || userID == "" {
		return ErrPartialCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = Session{Token: token, UserID: userID}
	return nil
}

// Logout implements Store.
func (s *memoryStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = Session{}
	return nil
}

// Close implements Store.
func (s *memoryStore) Close() error {
	return nil
}
