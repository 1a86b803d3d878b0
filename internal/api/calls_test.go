package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestListCallLogsSerializesFilters(t *testing.T) {
	var gotPath, gotQuery string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[{"id":"c1","status":"completed","duration":60}]`))
	}))

	logs, err := client.ListCallLogs(context.Background(), "u1", CallFilters{Status: "completed"})
	if err != nil {
		t.Fatalf("ListCallLogs failed: %v", err)
	}

	if gotPath != "/call-logs/u1" {
		t.Errorf("path: got %q, want /call-logs/u1", gotPath)
	}
	if gotQuery != "status=completed" {
		t.Errorf("query: got %q, want status=completed", gotQuery)
	}
	if len(logs) != 1 || logs[0].ID != "c1" || logs[0].Status != "completed" {
		t.Errorf("decoded logs: got %+v", logs)
	}
}

func TestListCallLogsOmitsEmptyFilters(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))

	_, err := client.ListCallLogs(context.Background(), "u1", CallFilters{})
	if err != nil {
		t.Fatalf("ListCallLogs failed: %v", err)
	}
	if gotQuery != "" {
		t.Errorf("empty filters must not be serialized, got query %q", gotQuery)
	}
}

func TestCallLogFieldFallback(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantFrom    string
		wantStarted string
	}{
		{
			name:        "legacy fields only",
			raw:         `{"id":"c1","phone_number":"+15550001111","created_at":"2024-03-01T10:00:00Z"}`,
			wantFrom:    "+15550001111",
			wantStarted: "2024-03-01T10:00:00Z",
		},
		{
			name:        "current fields only",
			raw:         `{"id":"c2","fromNumber":"+15550002222","startedAt":"2024-03-02T10:00:00Z"}`,
			wantFrom:    "+15550002222",
			wantStarted: "2024-03-02T10:00:00Z",
		},
		{
			name:        "current fields win over legacy",
			raw:         `{"id":"c3","fromNumber":"+15550003333","phone_number":"+15559999999","startedAt":"2024-03-03T10:00:00Z","created_at":"2024-01-01T00:00:00Z"}`,
			wantFrom:    "+15550003333",
			wantStarted: "2024-03-03T10:00:00Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c CallLog
			if err := json.Unmarshal([]byte(tt.raw), &c); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if got := c.From(); got != tt.wantFrom {
				t.Errorf("From: got %q, want %q", got, tt.wantFrom)
			}
			if got := c.Started(); got != tt.wantStarted {
				t.Errorf("Started: got %q, want %q", got, tt.wantStarted)
			}
		})
	}
}

func TestListRecordingsPath(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[{"recording_sid":"RE1","recording_url":"http://x/RE1","duration":42}]`))
	}))

	recs, err := client.ListRecordings(context.Background(), "u1", "CA99")
	if err != nil {
		t.Fatalf("ListRecordings failed: %v", err)
	}
	if gotPath != "/call/u1/CA99/recordings" {
		t.Errorf("path: got %q", gotPath)
	}
	if len(recs) != 1 || recs[0].RecordingSID != "RE1" {
		t.Errorf("decoded recordings: got %+v", recs)
	}
}

func TestGetTranscriptAbsence(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))

	tr, err := client.GetTranscript(context.Background(), "CA99")
	if err != nil {
		t.Fatalf("GetTranscript failed: %v", err)
	}
	if tr.HasText() {
		t.Error("transcript with neither field should report no text")
	}
}

func TestRecordingAudioURL(t *testing.T) {
	c, _ := newTestClient(t, http.NotFoundHandler())
	got := c.RecordingAudioURL("RE123")
	want := c.BaseURL() + "/recordings/RE123"
	if got != want {
		t.Errorf("RecordingAudioURL: got %q, want %q", got, want)
	}
}

func TestSaveCallNotesBody(t *testing.T) {
	var got map[string]string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{}`))
	}))

	if err := client.SaveCallNotes(context.Background(), "CA5", "callback tomorrow"); err != nil {
		t.Fatalf("SaveCallNotes failed: %v", err)
	}
	if got["call_sid"] != "CA5" || got["notes"] != "callback tomorrow" {
		t.Errorf("body: got %v", got)
	}
}

func TestDialOutboundBody(t *testing.T) {
	var gotPath string
	var got map[string]string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{}`))
	}))

	if err := client.DialOutbound(context.Background(), "u1", "+15557654321"); err != nil {
		t.Fatalf("DialOutbound failed: %v", err)
	}
	if gotPath != "/calls/outbound" {
		t.Errorf("path: got %q", gotPath)
	}
	if got["userId"] != "u1" || got["toNumber"] != "+15557654321" {
		t.Errorf("body: got %v", got)
	}
}
