package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
)

func TestSaveScriptRejectsInvalidJSONBeforeTransport(t *testing.T) {
	var hits atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{}`))
	}))

	_, err := client.SaveScript(context.Background(), &Script{
		ScriptName:    "greeting",
		ScriptContent: `{"greeting": "hello"`, // unbalanced brace
	})
	if !errors.Is(err, ErrInvalidScriptJSON) {
		t.Fatalf("got %v, want ErrInvalidScriptJSON", err)
	}
	if hits.Load() != 0 {
		t.Errorf("transport was invoked %d times; invalid scripts must never reach it", hits.Load())
	}
}

func TestSaveScriptValidJSON(t *testing.T) {
	var got Script
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"id":"s1","scriptName":"greeting"}`))
	}))

	saved, err := client.SaveScript(context.Background(), &Script{
		ScriptName:    "greeting",
		ScriptContent: `{"greeting": "hello"}`,
	})
	if err != nil {
		t.Fatalf("SaveScript failed: %v", err)
	}
	if got.ScriptName != "greeting" {
		t.Errorf("posted script name: got %q", got.ScriptName)
	}
	if saved.ID != "s1" {
		t.Errorf("saved script id: got %q, want s1", saved.ID)
	}
}

func TestDeleteScriptPath(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))

	if err := client.DeleteScript(context.Background(), "s9"); err != nil {
		t.Fatalf("DeleteScript failed: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/scripts/s9" {
		t.Errorf("got %s %s, want DELETE /scripts/s9", gotMethod, gotPath)
	}
}
