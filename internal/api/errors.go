package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Error is a normalized server error response. Message is always a
// non-empty human-readable string suitable for direct display.
type Error struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// errorBody matches the two shapes the backend uses for error payloads.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// newError builds an *Error from a non-2xx response, extracting the
// message from the body when present and falling back to a generic
// string so the message is never empty.
func newError(resp *http.Response) *Error {
	msg := ""

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err == nil && len(body) > 0 {
		var eb errorBody
		if json.Unmarshal(body, &eb) == nil {
			if eb.Error != "" {
				msg = eb.Error
			} else if eb.Message != "" {
				msg = eb.Message
			}
		}
	}

	if msg == "" {
		msg = fmt.Sprintf("request failed: %s", http.StatusText(resp.StatusCode))
	}

	return &Error{Status: resp.StatusCode, Message: msg}
}
