package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voxboard-dev/voxboard/internal/api"
	"github.com/voxboard-dev/voxboard/internal/player"
	"github.com/voxboard-dev/voxboard/internal/tui"
)

// detailFetchDelay defers the detail dialog's auxiliary fetches
// slightly so a dialog that is opened and immediately closed never
// issues them against the server for nothing.
const detailFetchDelay = 300 * time.Millisecond

// LoadCallLogsCmd fetches the call history with the given filters.
func LoadCallLogsCmd(client *api.Client, userID string, filters api.CallFilters) tea.Cmd {
	return func() tea.Msg {
		logs, err := client.ListCallLogs(context.Background(), userID, filters)
		return tui.CallLogsLoadedMsg{Logs: logs, Err: err}
	}
}

// LoadRecordingsCmd fetches the recordings for the call open in the
// detail dialog, after a short delay. Seq is echoed back so the view
// can discard results that arrive after the dialog moved on.
func LoadRecordingsCmd(client *api.Client, userID, callID string, seq int) tea.Cmd {
	return func() tea.Msg {
		time.Sleep(detailFetchDelay)
		recs, err := client.ListRecordings(context.Background(), userID, callID)
		return tui.RecordingsLoadedMsg{Seq: seq, Recs: recs, Err: err}
	}
}

// LoadTranscriptCmd fetches the transcript for the call open in the
// detail dialog, after a short delay. Seq works as in
// LoadRecordingsCmd.
func LoadTranscriptCmd(client *api.Client, callID string, seq int) tea.Cmd {
	return func() tea.Msg {
		time.Sleep(detailFetchDelay)
		tr, err := client.GetTranscript(context.Background(), callID)
		return tui.TranscriptLoadedMsg{Seq: seq, Transcript: tr, Err: err}
	}
}

// SaveCallNotesCmd attaches notes to a call.
func SaveCallNotesCmd(client *api.Client, callSID, notes string) tea.Cmd {
	return func() tea.Msg {
		return tui.NotesSavedMsg{Err: client.SaveCallNotes(context.Background(), callSID, notes)}
	}
}

// DialOutboundCmd places an outbound call.
func DialOutboundCmd(client *api.Client, userID, toNumber string) tea.Cmd {
	return func() tea.Msg {
		return tui.OutboundDialedMsg{Err: client.DialOutbound(context.Background(), userID, toNumber)}
	}
}

// PlayRecordingCmd starts playback of a recording through the audio
// player, stopping any clip already playing.
func PlayRecordingCmd(p *player.Player, client *api.Client, recordingSID string) tea.Cmd {
	return func() tea.Msg {
		err := p.Play(recordingSID, client.RecordingAudioURL(recordingSID))
		return tui.PlaybackMsg{SID: recordingSID, Err: err}
	}
}
