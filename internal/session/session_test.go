package session

import (
	"context"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewStore(DriverFile, WithDir(dir))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if err := store.Login(ctx, "tok-123", "alice"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	// A fresh store over the same directory simulates a new process start.
	reopened, err := NewStore(DriverFile, WithDir(dir))
	if err != nil {
		t.Fatalf("NewStore (reopen) failed: %v", err)
	}

	sess, err := reopened.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if sess.Token != "tok-123" || sess.UserID != "alice" {
		t.Errorf("Load: got %+v, want token tok-123 / user alice", sess)
	}
	if !sess.Authenticated() {
		t.Error("session should be authenticated after login")
	}
}

func TestFileStoreLogoutClearsSession(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, _ := NewStore(DriverFile, WithDir(dir))
	if err := store.Login(ctx, "tok", "bob"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if err := store.Logout(ctx); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	sess, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if sess.Authenticated() {
		t.Errorf("session should be empty after logout, got %+v", sess)
	}
}

func TestFileStoreLoadWithoutSession(t *testing.T) {
	store, _ := NewStore(DriverFile, WithDir(t.TempDir()))
	sess, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load on empty dir should not error: %v", err)
	}
	if sess.Authenticated() {
		t.Errorf("expected empty session, got %+v", sess)
	}
}

func TestLoginRejectsPartialCredentials(t *testing.T) {
	ctx := context.Background()
	store, _ := NewStore(DriverMemory)

	if err := store.Login(ctx, "tok", ""); err != ErrPartialCredentials {
		t.Errorf("Login with empty user id: got %v, want ErrPartialCredentials", err)
	}
	if err := store.Login(ctx, "", "carol"); err != ErrPartialCredentials {
		t.Errorf("Login with empty token: got %v, want ErrPartialCredentials", err)
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(DriverMemory)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if err := store.Login(ctx, "t", "u"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	sess, _ := store.Load(ctx)
	if sess.Token != "t" || sess.UserID != "u" {
		t.Errorf("Load: got %+v", sess)
	}

	if err := store.Logout(ctx); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	sess, _ = store.Load(ctx)
	if sess.Authenticated() {
		t.Errorf("session should be empty after logout, got %+v", sess)
	}
}

func TestNewStoreValidation(t *testing.T) {
	if _, err := NewStore(DriverFile); err != ErrInvalidConfig {
		t.Errorf("file driver without dir: got %v, want ErrInvalidConfig", err)
	}
	if _, err := NewStore(DriverRedis); err != ErrInvalidConfig {
		t.Errorf("redis driver without client: got %v, want ErrInvalidConfig", err)
	}
	if _, err := NewStore(Driver("bolt")); err != ErrInvalidDriver {
		t.Errorf("unknown driver: got %v, want ErrInvalidDriver", err)
	}
}
