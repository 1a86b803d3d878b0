package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
)

// ErrInvalidScriptJSON is returned by SaveScript before any network
// I/O when the script content does not parse as JSON. The server does
// not enforce this; the client must.
var ErrInvalidScriptJSON = errors.New("script content is not valid JSON")

// ListScripts fetches the user's conversational scripts.
func (c *Client) ListScripts(ctx context.Context, userID string) ([]Script, error) {
	var scripts []Script
	if err := c.getJSON(ctx, "/scripts/"+url.PathEscape(userID), nil, &scripts); err != nil {
		return nil, c.fail("list_scripts", err)
	}
	return scripts, nil
}

// SaveScript saves a script, full-replacing by name. The script
// content is validated as JSON first; an invalid script never reaches
// the transport.
func (c *Client) SaveScript(ctx context.Context, script *Script) (*Script, error) {
	if !json.Valid([]byte(script.ScriptContent)) {
		return nil, ErrInvalidScriptJSON
	}

	var saved Script
	if err := c.postJSON(ctx, "/scripts", script, &saved); err != nil {
		return nil, c.fail("save_script", err)
	}
	return &saved, nil
}

// DeleteScript removes a script by id.
func (c *Client) DeleteScript(ctx context.Context, id string) error {
	if err := c.delete(ctx, "/scripts/"+url.PathEscape(id)); err != nil {
		return c.fail("delete_script", err)
	}
	return nil
}
