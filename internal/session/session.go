// Package session persists the client's authentication state: an
// opaque bearer token and the user identifier it belongs to. The token
// is trusted until a request using it fails; there is no expiry,
// refresh, or validation logic here.
package session

import (
	"context"
	"errors"
)

// Session is the client's record of being authenticated. Token and
// UserID are always set together or both absent.
type Session struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

// Authenticated reports whether the session holds credentials.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.UserID != ""
}

// Store defines the interface for session persistence. Implementations
// must keep Token and UserID atomic: Login writes both, Logout clears
// both, and Load never returns one without the other.
type Store interface {
	// Load reads the persisted session. A missing session is not an
	// error; it yields the zero Session.
	Load(ctx context.Context) (Session, error)

	// Login persists both credential values, replacing any prior session.
	Login(ctx context.Context, token, userID string) error

	// Logout clears the persisted session. Clearing an absent session
	// is a no-op.
	Logout(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}

var (
	// ErrInvalidDriver is returned by NewStore for an unknown driver name.
	ErrInvalidDriver = errors.New("session: unknown store driver")

	// ErrInvalidConfig is returned when a driver's required options are missing.
	ErrInvalidConfig = errors.New("session: invalid store configuration")

	// ErrPartialCredentials is returned by Login when only one of
	// token/userID is supplied.
	ErrPartialCredentials = errors.New("session: token and user id must be set together")
)
