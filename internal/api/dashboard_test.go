package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/voxboard-dev/voxboard/internal/log"
	"github.com/voxboard-dev/voxboard/internal/session"
)

func TestSummarySubstitutesFallbackOnServerError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "no such column: calls.started_at"}`))
	}))

	res := client.GetSummary(context.Background(), "u1")
	if res.Summary == nil {
		t.Fatal("summary must never be nil")
	}
	if !res.Degraded {
		t.Error("Degraded should be true when the endpoint fails")
	}
	if !res.SchemaMismatch() {
		t.Error("SchemaMismatch should detect the backend column error")
	}
	assertWellFormedFallback(t, res.Summary)
}

func TestSummarySubstitutesFallbackOnTransportFailure(t *testing.T) {
	store, _ := session.NewStore(session.DriverMemory)
	client := New("http://127.0.0.1:1", store, log.Discard())

	res := client.GetSummary(context.Background(), "u1")
	if res.Summary == nil {
		t.Fatal("summary must never be nil")
	}
	if !res.Degraded {
		t.Error("Degraded should be true on transport failure")
	}
	if res.Reason == "" {
		t.Error("Reason should carry the failure message")
	}
	if res.SchemaMismatch() {
		t.Error("a connection failure is not a schema mismatch")
	}
	assertWellFormedFallback(t, res.Summary)
}

func TestSummaryPassesThroughLiveData(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"twilioConfigured":false,"callsToday":7,"recentCalls":[],"recentAppointments":[]}`))
	}))

	res := client.GetSummary(context.Background(), "u1")
	if res.Degraded {
		t.Error("Degraded should be false on success")
	}
	if res.Summary.CallsToday != 7 {
		t.Errorf("CallsToday: got %d, want 7", res.Summary.CallsToday)
	}
	if res.Summary.TwilioConfigured {
		t.Error("live data must pass through unchanged, flag should stay false")
	}
}

func assertWellFormedFallback(t *testing.T, s *DashboardSummary) {
	t.Helper()
	if !s.TwilioConfigured || !s.LLMConfigured || !s.DeepgramConfigured {
		t.Error("fallback summary must report all three integrations configured")
	}
	if len(s.RecentCalls) == 0 || len(s.RecentAppointments) == 0 {
		t.Error("fallback preview lists must be non-empty")
	}
	if s.CallsToday == 0 || s.CallsThisMonth == 0 {
		t.Error("fallback counts must be non-zero")
	}
}

func TestFallbackSummaryTimestampsRelativeToNow(t *testing.T) {
	s := FallbackSummary()

	first, err := time.Parse(time.RFC3339, s.RecentCalls[0].StartedAt)
	if err != nil {
		t.Fatalf("recent call timestamp is not RFC3339: %v", err)
	}
	age := time.Since(first)
	if age < time.Hour || age > 3*time.Hour {
		t.Errorf("first synthetic call should be about two hours old, got %s", age)
	}

	today := time.Now().Format("2006-01-02")
	if s.RecentAppointments[0].AppointmentDate != today {
		t.Errorf("first synthetic appointment: got %q, want today %q",
			s.RecentAppointments[0].AppointmentDate, today)
	}
}
