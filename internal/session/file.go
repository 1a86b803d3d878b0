package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const sessionFile = "session.json"

// fileStore persists the session as session.json in the voxboard home
// directory. This is the durable client-side key-value storage a fresh
// process reads at startup.
type fileStore struct {
	dir string
	mu  sync.Mutex
}

func (s *fileStore) path() string {
	return filepath.Join(s.dir, sessionFile)
}

// Load implements Store. A missing file yields the zero Session.
func (s *fileStore) Load(ctx context.Context) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Session{}, nil
		}
		return Session{}, fmt.Errorf("read session file: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, fmt.Errorf("parse session file: %w", err)
	}

	// A half-written session is as good as no session.
	if !sess.Authenticated() {
		return Session{}, nil
	}
	return sess, nil
}

// Login implements Store.
func (s *fileStore) Login(ctx context.Context, token, userID string) error {
	if token == "" || userID == "" {
		return ErrPartialCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	data, err := json.Marshal(Session{Token: token, UserID: userID})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	// 0600: the file holds a bearer token.
	if err := os.WriteFile(s.path(), data, 0600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Logout implements Store.
func (s *fileStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *fileStore) Close() error {
	return nil
}
