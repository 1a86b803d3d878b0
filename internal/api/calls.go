package api

import (
	"context"
	"net/url"
)

// CallFilters narrows a call-log listing. Empty fields are omitted
// from the query string entirely, never sent as empty values.
type CallFilters struct {
	StartDate   string // YYYY-MM-DD
	EndDate     string // YYYY-MM-DD
	Status      string
	PhoneNumber string
}

// query serializes the filters, skipping unset fields.
func (f CallFilters) query() url.Values {
	q := url.Values{}
	if f.StartDate != "" {
		q.Set("startDate", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("endDate", f.EndDate)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.PhoneNumber != "" {
		q.Set("phoneNumber", f.PhoneNumber)
	}
	return q
}

// ListCallLogs fetches the user's call history, optionally filtered
// server-side.
func (c *Client) ListCallLogs(ctx context.Context, userID string, filters CallFilters) ([]CallLog, error) {
	var logs []CallLog
	if err := c.getJSON(ctx, "/call-logs/"+url.PathEscape(userID), filters.query(), &logs); err != nil {
		return nil, c.fail("list_call_logs", err)
	}
	return logs, nil
}

// ListRecordings fetches the recordings for one call.
func (c *Client) ListRecordings(ctx context.Context, userID, callID string) ([]Recording, error) {
	var recs []Recording
	path := "/call/" + url.PathEscape(userID) + "/" + url.PathEscape(callID) + "/recordings"
	if err := c.getJSON(ctx, path, nil, &recs); err != nil {
		return nil, c.fail("list_recordings", err)
	}
	return recs, nil
}

// GetTranscript fetches the transcript for one call. A call with no
// transcript yields a Transcript whose HasText is false, not an error.
func (c *Client) GetTranscript(ctx context.Context, callID string) (*Transcript, error) {
	var tr Transcript
	if err := c.getJSON(ctx, "/call/"+url.PathEscape(callID)+"/transcript", nil, &tr); err != nil {
		return nil, c.fail("get_transcript", err)
	}
	return &tr, nil
}

// RecordingAudioURL returns the audio stream proxy URL for a
// recording. The stream itself is fetched by the audio player, not
// through this client.
func (c *Client) RecordingAudioURL(recordingSID string) string {
	return c.baseURL + "/recordings/" + url.PathEscape(recordingSID)
}

// SaveCallNotes attaches operator notes to a call.
func (c *Client) SaveCallNotes(ctx context.Context, callSID, notes string) error {
	body := map[string]string{
		"call_sid": callSID,
		"notes":    notes,
	}
	if err := c.postJSON(ctx, "/call-notes", body, nil); err != nil {
		return c.fail("save_call_notes", err)
	}
	return nil
}

// DialOutbound asks the platform to place an outbound call to the
// given number on the user's behalf.
func (c *Client) DialOutbound(ctx context.Context, userID, toNumber string) error {
	body := map[string]string{
		"userId":   userID,
		"toNumber": toNumber,
	}
	if err := c.postJSON(ctx, "/calls/outbound", body, nil); err != nil {
		return c.fail("dial_outbound", err)
	}
	return nil
}
