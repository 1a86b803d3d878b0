package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/voxboard-dev/voxboard/internal/log"
	"github.com/voxboard-dev/voxboard/internal/session"
)

// newTestClient builds a Client against an httptest server with an
// in-memory session store.
func newTestClient(t *testing.T, handler http.Handler) (*Client, session.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store, err := session.NewStore(session.DriverMemory)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	return New(srv.URL, store, log.Discard()), store
}

func TestBearerTokenAttachedWhenPresent(t *testing.T) {
	ctx := context.Background()

	var gotAuth string
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))

	if err := store.Login(ctx, "tok-abc", "u1"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if _, err := client.ListScripts(ctx, "u1"); err != nil {
		t.Fatalf("ListScripts failed: %v", err)
	}
	if gotAuth != "Bearer tok-abc" {
		t.Errorf("Authorization header: got %q, want %q", gotAuth, "Bearer tok-abc")
	}
}

func TestNoAuthorizationHeaderWithoutToken(t *testing.T) {
	ctx := context.Background()

	headerSet := false
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, headerSet = r.Header["Authorization"]
		w.Write([]byte(`[]`))
	}))

	if _, err := client.ListScripts(ctx, "u1"); err != nil {
		t.Fatalf("ListScripts failed: %v", err)
	}
	if headerSet {
		t.Error("Authorization header must be omitted when no token is stored")
	}
}

func TestRequestIDAttached(t *testing.T) {
	var gotID string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`[]`))
	}))

	if _, err := client.ListScripts(context.Background(), "u1"); err != nil {
		t.Fatalf("ListScripts failed: %v", err)
	}
	if gotID == "" {
		t.Error("X-Request-ID header missing")
	}
}

func TestServerErrorMessageExtracted(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "kbName is required"}`))
	}))

	_, err := client.ListKnowledgeBases(context.Background(), "u1")
	if err == nil {
		t.Fatal("expected error for 400 response")
	}

	apiErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("Status: got %d, want 400", apiErr.Status)
	}
	if apiErr.Message != "kbName is required" {
		t.Errorf("Message: got %q, want %q", apiErr.Message, "kbName is required")
	}
}

func TestServerErrorGenericFallbackMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.ListAppointments(context.Background(), "u1")
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if err.Error() == "" {
		t.Error("error message must never be empty")
	}
}

func TestTransportFailureHasNonEmptyMessage(t *testing.T) {
	store, _ := session.NewStore(session.DriverMemory)
	// Nothing listens on this port.
	client := New("http://127.0.0.1:1", store, log.Discard())

	ops := []func() error{
		func() error { _, err := client.GetUserConfig(context.Background(), "u1"); return err },
		func() error { _, err := client.ListKnowledgeBases(context.Background(), "u1"); return err },
		func() error { _, err := client.ListScripts(context.Background(), "u1"); return err },
		func() error { _, err := client.ListAppointments(context.Background(), "u1"); return err },
		func() error { _, err := client.ListCallLogs(context.Background(), "u1", CallFilters{}); return err },
		func() error { _, err := client.Login(context.Background(), "a@b.c", "pw"); return err },
	}
	for i, op := range ops {
		err := op()
		if err == nil {
			t.Errorf("op %d: expected error when transport is unreachable", i)
			continue
		}
		if err.Error() == "" {
			t.Errorf("op %d: error message must be non-empty", i)
		}
	}
}
