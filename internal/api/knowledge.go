package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

// ListKnowledgeBases fetches the user's uploaded documents.
func (c *Client) ListKnowledgeBases(ctx context.Context, userID string) ([]KnowledgeBase, error) {
	var kbs []KnowledgeBase
	if err := c.getJSON(ctx, "/knowledge/"+url.PathEscape(userID), nil, &kbs); err != nil {
		return nil, c.fail("list_knowledge_bases", err)
	}
	return kbs, nil
}

// UploadKnowledgeBase adds a document via multipart upload: the file
// plus userId and kbName form fields. This is the one call that
// overrides the default JSON content type.
func (c *Client) UploadKnowledgeBase(ctx context.Context, userID, kbName, filename string, file io.Reader) (*KnowledgeBase, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, c.fail("upload_knowledge_base", fmt.Errorf("building multipart form: %w", err))
	}
	if _, err := io.Copy(fw, file); err != nil {
		return nil, c.fail("upload_knowledge_base", fmt.Errorf("reading upload file: %w", err))
	}
	if err := mw.WriteField("userId", userID); err != nil {
		return nil, c.fail("upload_knowledge_base", fmt.Errorf("building multipart form: %w", err))
	}
	if err := mw.WriteField("kbName", kbName); err != nil {
		return nil, c.fail("upload_knowledge_base", fmt.Errorf("building multipart form: %w", err))
	}
	if err := mw.Close(); err != nil {
		return nil, c.fail("upload_knowledge_base", fmt.Errorf("finalizing multipart form: %w", err))
	}

	var kb KnowledgeBase
	if err := c.do(ctx, http.MethodPost, "/knowledge/upload", nil, &buf, mw.FormDataContentType(), &kb); err != nil {
		return nil, c.fail("upload_knowledge_base", err)
	}
	return &kb, nil
}

// DeleteKnowledgeBase removes a document by id.
func (c *Client) DeleteKnowledgeBase(ctx context.Context, id string) error {
	if err := c.delete(ctx, "/knowledge/"+url.PathEscape(id)); err != nil {
		return c.fail("delete_knowledge_base", err)
	}
	return nil
}
