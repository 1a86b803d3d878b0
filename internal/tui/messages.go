package tui

import (
	"github.com/voxboard-dev/voxboard/internal/api"
	"github.com/voxboard-dev/voxboard/internal/session"
)

// ============================================================================
// Session Messages
// ============================================================================

// SessionCheckedMsg reports the persisted session found at startup.
type SessionCheckedMsg struct {
	Session session.Session
	Err     error
}

// LoginResultMsg reports the outcome of a credential exchange. On
// success the session store has already been written.
type LoginResultMsg struct {
	UserID string
	Err    error
}

// LoggedOutMsg reports that the session store has been cleared.
type LoggedOutMsg struct {
	Err error
}

// ============================================================================
// Dashboard Messages
// ============================================================================

// SummaryLoadedMsg carries the dashboard summary. It never carries an
// error: a failed fetch arrives as degraded fallback data.
type SummaryLoadedMsg struct {
	Result api.SummaryResult
}

// ============================================================================
// Call Log Messages
// ============================================================================

// CallLogsLoadedMsg carries a fetched call-log page.
type CallLogsLoadedMsg struct {
	Logs []api.CallLog
	Err  error
}

// RecordingsLoadedMsg carries the recordings for the call open in the
// detail dialog. Seq ties the result to the dialog generation that
// requested it; stale results are discarded.
type RecordingsLoadedMsg struct {
	Seq  int
	Recs []api.Recording
	Err  error
}

// TranscriptLoadedMsg carries the transcript for the call open in the
// detail dialog. Seq works as in RecordingsLoadedMsg.
type TranscriptLoadedMsg struct {
	Seq        int
	Transcript *api.Transcript
	Err        error
}

// NotesSavedMsg reports the outcome of saving call notes.
type NotesSavedMsg struct {
	Err error
}

// OutboundDialedMsg reports the outcome of placing an outbound call.
type OutboundDialedMsg struct {
	Err error
}

// PlaybackMsg reports the outcome of starting audio playback.
type PlaybackMsg struct {
	SID string
	Err error
}

// ============================================================================
// Appointment Messages
// ============================================================================

// AppointmentsLoadedMsg carries the fetched appointment list.
type AppointmentsLoadedMsg struct {
	Appts []api.Appointment
	Err   error
}

// AppointmentSavedMsg reports the outcome of creating an appointment.
type AppointmentSavedMsg struct {
	Err error
}

// AppointmentDeletedMsg reports the outcome of deleting an appointment.
type AppointmentDeletedMsg struct {
	Err error
}

// ============================================================================
// Knowledge Base Messages
// ============================================================================

// KnowledgeLoadedMsg carries the fetched document list.
type KnowledgeLoadedMsg struct {
	KBs []api.KnowledgeBase
	Err error
}

// KnowledgeUploadedMsg reports the outcome of a document upload.
type KnowledgeUploadedMsg struct {
	Err error
}

// KnowledgeDeletedMsg reports the outcome of a document deletion.
type KnowledgeDeletedMsg struct {
	Err error
}

// ============================================================================
// Script Messages
// ============================================================================

// ScriptsLoadedMsg carries the fetched script list.
type ScriptsLoadedMsg struct {
	Scripts []api.Script
	Err     error
}

// ScriptSavedMsg reports the outcome of saving a script.
type ScriptSavedMsg struct {
	Err error
}

// ScriptDeletedMsg reports the outcome of deleting a script.
type ScriptDeletedMsg struct {
	Err error
}

// ============================================================================
// Settings Messages
// ============================================================================

// UserConfigLoadedMsg carries the fetched platform configuration.
type UserConfigLoadedMsg struct {
	Config *api.UserConfig
	Err    error
}

// UserConfigSavedMsg reports the outcome of saving the configuration.
type UserConfigSavedMsg struct {
	Err error
}

// ============================================================================
// Utility Messages
// ============================================================================

// CtrlCResetMsg clears the quit confirmation after its timeout.
type CtrlCResetMsg struct{}
