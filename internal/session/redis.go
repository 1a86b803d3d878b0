package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// redisStore persists the session in Redis, for operators who share
// one login across hosts. The session has no TTL; it lives until
// Logout, matching the file driver.
type redisStore struct {
	client *redis.Client
	key    string
}

// Load implements Store.
func (s *redisStore) Load(ctx context.Context) (Session, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return Session{}, nil
	}
	if err != nil {
		return Session{}, fmt.Errorf("read session key: %w", err)
	}

	var sess Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return Session{}, fmt.Errorf("parse session value: %w", err)
	}
	if !sess.Authenticated() {
		return Session{}, nil
	}
	return sess, nil
}

// Login implements Store.
func (s *redisStore) Login(ctx context.Context, token, userID string) error {
	if token == "" || userID == "" {
		return ErrPartialCredentials
	}

	data, err := json.Marshal(Session{Token: token, UserID: userID})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("write session key: %w", err)
	}
	return nil
}

// Logout implements Store.
func (s *redisStore) Logout(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("delete session key: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *redisStore) Close() error {
	return s.client.Close()
}
