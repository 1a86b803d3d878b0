// Package api is the data-access layer for the voice-AI platform's
// REST API. One method per REST operation; every method returns the
// decoded response on success and a non-nil error with a human-readable
// message on failure. The dashboard summary is the single exception to
// that contract (see dashboard.go).
package api

// UserConfig is the full per-user platform configuration. Saves are
// whole-object replacements; there are no partial-field updates.
type UserConfig struct {
	UserID   string         `json:"userId"`
	Twilio   TwilioConfig   `json:"twilioConfig"`
	LLM      LLMConfig      `json:"llmConfig"`
	Deepgram DeepgramConfig `json:"deepgramConfig"`
}

// TwilioConfig holds telephony credentials.
type TwilioConfig struct {
	AccountSID  string `json:"accountSid"`
	AuthToken   string `json:"authToken"`
	PhoneNumber string `json:"phoneNumber"`
}

// LLMConfig holds language-model credentials.
type LLMConfig struct {
	Provider string `json:"provider"`
	APIKey   string `json:"apiKey"`
	Model    string `json:"model"`
}

// DeepgramConfig holds speech credentials and voice settings.
type DeepgramConfig struct {
	APIKey   string `json:"apiKey"`
	Model    string `json:"model"`
	Voice    string `json:"voice"`
	Language string `json:"language"`
}

// KnowledgeBase is an uploaded document. Immutable after upload except
// for deletion.
type KnowledgeBase struct {
	ID               string `json:"id"`
	KBName           string `json:"kbName"`
	OriginalFilename string `json:"originalFilename"`
	CreatedAt        string `json:"createdAt"`
}

// Script is a conversational script. ScriptContent is a JSON-encoded
// string and must parse as JSON before any save is attempted.
type Script struct {
	ID            string `json:"id,omitempty"`
	UserID        string `json:"userId,omitempty"`
	ScriptName    string `json:"scriptName"`
	ScriptContent string `json:"scriptContent"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
}

// Appointment is a customer booking. AppointmentDate is YYYY-MM-DD.
type Appointment struct {
	ID              string `json:"id,omitempty"`
	UserID          string `json:"userId,omitempty"`
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	Notes           string `json:"notes,omitempty"`
}

// ConversationTurn is one exchange in a call's conversation history.
type ConversationTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CallLog is a completed or in-progress call record. The backend has
// used two field-naming schemes over time (fromNumber/startedAt and
// phone_number/created_at); readers must tolerate both, which is why
// the legacy fields exist alongside the current ones. Use From and
// Started instead of reading the fields directly.
type CallLog struct {
	ID          string `json:"id"`
	FromNumber  string `json:"fromNumber,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"` // legacy name for FromNumber
	ToNumber    string `json:"toNumber,omitempty"`
	Duration    int    `json:"duration"` // seconds
	StartedAt   string `json:"startedAt,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"` // legacy name for StartedAt
	EndedAt     string `json:"endedAt,omitempty"`
	Status      string `json:"status"`
	CallSID     string `json:"callSid,omitempty"`

	ConversationHistory []ConversationTurn `json:"conversationHistory,omitempty"`
	Notes               string             `json:"notes,omitempty"`
}

// From returns the caller number, preferring the current field name
// and falling back to the legacy one.
func (c CallLog) From() string {
	if c.FromNumber != "" {
		return c.FromNumber
	}
	return c.PhoneNumber
}

// Started returns the call start timestamp, preferring the current
// field name and falling back to the legacy one.
func (c CallLog) Started() string {
	if c.StartedAt != "" {
		return c.StartedAt
	}
	return c.CreatedAt
}

// Recording is one audio recording of a call, fetched per call rather
// than embedded in the CallLog.
type Recording struct {
	RecordingSID  string `json:"recording_sid"`
	RecordingURL  string `json:"recording_url"`
	Duration      int    `json:"duration"` // seconds
	DateCreated   string `json:"date_created"`
	Transcription string `json:"transcription,omitempty"`
}

// TranscriptPart is one timed segment of a call transcript.
type TranscriptPart struct {
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// Transcript is a call's transcript. Either field may be absent.
type Transcript struct {
	FullTranscript string           `json:"full_transcript,omitempty"`
	Parts          []TranscriptPart `json:"transcript_parts,omitempty"`
}

// HasText reports whether any transcript content exists. Absence of
// both fields means the call has no transcript.
func (t Transcript) HasText() bool {
	return t.FullTranscript != "" || len(t.Parts) > 0
}

// RecentCall is a bounded dashboard preview of a call.
type RecentCall struct {
	ID         string `json:"id"`
	FromNumber string `json:"fromNumber"`
	Duration   int    `json:"duration"`
	StartedAt  string `json:"startedAt"`
	Outcome    string `json:"outcome"`
}

// RecentAppointment is a bounded dashboard preview of an appointment.
type RecentAppointment struct {
	ID              string `json:"id"`
	CustomerName    string `json:"customerName"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
}

// DashboardSummary is the aggregate payload behind the dashboard
// screen: counts, readiness flags, and two bounded preview lists.
type DashboardSummary struct {
	ConfigurationComplete bool `json:"configurationComplete"`
	TwilioConfigured      bool `json:"twilioConfigured"`
	LLMConfigured         bool `json:"llmConfigured"`
	DeepgramConfigured    bool `json:"deepgramConfigured"`

	CallsToday           int `json:"callsToday"`
	CallsThisMonth       int `json:"callsThisMonth"`
	AppointmentsToday    int `json:"appointmentsToday"`
	UpcomingAppointments int `json:"upcomingAppointments"`
	KnowledgeBaseCount   int `json:"knowledgeBaseCount"`
	ScriptCount          int `json:"scriptCount"`

	RecentCalls        []RecentCall        `json:"recentCalls"`
	RecentAppointments []RecentAppointment `json:"recentAppointments"`
}

// AuthResult is the credential exchange response from login/register.
type AuthResult struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}
