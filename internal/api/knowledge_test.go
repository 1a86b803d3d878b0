package api

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestUploadKnowledgeBaseMultipartForm(t *testing.T) {
	var gotUserID, gotKBName, gotFilename, gotContent, gotContentType string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm failed: %v", err)
			return
		}
		gotUserID = r.FormValue("userId")
		gotKBName = r.FormValue("kbName")

		f, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("FormFile failed: %v", err)
			return
		}
		defer f.Close()
		gotFilename = header.Filename
		data, _ := io.ReadAll(f)
		gotContent = string(data)

		w.Write([]byte(`{"id":"kb1","kbName":"faq","originalFilename":"faq.txt"}`))
	}))

	kb, err := client.UploadKnowledgeBase(context.Background(), "u1", "faq", "faq.txt",
		strings.NewReader("Q: hours?\nA: 9-5"))
	if err != nil {
		t.Fatalf("UploadKnowledgeBase failed: %v", err)
	}

	if !strings.HasPrefix(gotContentType, "multipart/form-data") {
		t.Errorf("Content-Type: got %q, want multipart/form-data", gotContentType)
	}
	if gotUserID != "u1" || gotKBName != "faq" {
		t.Errorf("form fields: userId=%q kbName=%q", gotUserID, gotKBName)
	}
	if gotFilename != "faq.txt" || gotContent != "Q: hours?\nA: 9-5" {
		t.Errorf("file part: name=%q content=%q", gotFilename, gotContent)
	}
	if kb.ID != "kb1" {
		t.Errorf("decoded kb: got %+v", kb)
	}
}

func TestDeleteKnowledgeBasePath(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))

	if err := client.DeleteKnowledgeBase(context.Background(), "kb7"); err != nil {
		t.Fatalf("DeleteKnowledgeBase failed: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/knowledge/kb7" {
		t.Errorf("got %s %s, want DELETE /knowledge/kb7", gotMethod, gotPath)
	}
}
