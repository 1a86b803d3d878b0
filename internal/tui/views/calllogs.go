package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/voxboard-dev/voxboard/internal/api"
	"github.com/voxboard-dev/voxboard/internal/player"
	"github.com/voxboard-dev/voxboard/internal/tui"
	"github.com/voxboard-dev/voxboard/internal/tui/commands"
	"github.com/voxboard-dev/voxboard/pkg/validation"
)

// filter panel field indexes.
const (
	filterStartDate = iota
	filterEndDate
	filterStatus
	filterPhone
	filterFieldCount
)

// CallLogsModel is the view model for the call history screen. The
// detail dialog lazily fetches recordings and transcript; both fetches
// carry a sequence number so results that arrive after the dialog
// moved on are discarded.
type CallLogsModel struct {
	client *api.Client
	userID string
	player *player.Player

	loading bool
	errMsg  string
	status  string
	logs    []api.CallLog
	table   table.Model
	spinner spinner.Model

	filterOpen  bool
	filterFocus int
	filters     []textinput.Model

	detailOpen bool
	detail     api.CallLog
	detailSeq  int
	recordings []api.Recording
	recLoading bool
	recErr     string
	recCursor  int
	transcript *api.Transcript
	trLoading  bool
	trErr      string

	notesEditing bool
	notesInput   textinput.Model

	dialOpen  bool
	dialInput textinput.Model

	width  int
	height int
}

// NewCallLogsModel creates the call logs screen.
func NewCallLogsModel(client *api.Client, userID string, p *player.Player) CallLogsModel {
	columns := []table.Column{
		{Title: "From", Width: 16},
		{Title: "To", Width: 16},
		{Title: "Duration", Width: 10},
		{Title: "Started", Width: 22},
		{Title: "Status", Width: 12},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(12),
		table.WithFocused(true),
	)

	filters := make([]textinput.Model, filterFieldCount)
	placeholders := []string{"Start date (YYYY-MM-DD)", "End date (YYYY-MM-DD)", "Status", "Phone number"}
	for i := range filters {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 40
		filters[i] = ti
	}

	notes := textinput.New()
	notes.Placeholder = "Notes for this call"
	notes.CharLimit = 500

	dial := textinput.New()
	dial.Placeholder = "+15551234567"
	dial.CharLimit = 20

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return CallLogsModel{
		client:     client,
		userID:     userID,
		player:     p,
		loading:    true,
		table:      t,
		filters:    filters,
		notesInput: notes,
		dialInput:  dial,
		spinner:    sp,
	}
}

// Init triggers the call-log fetch on screen entry.
func (m CallLogsModel) Init() tea.Cmd {
	return tea.Batch(
		commands.LoadCallLogsCmd(m.client, m.userID, m.currentFilters()),
		m.spinner.Tick,
	)
}

// Editing reports whether a dialog or form owns the keyboard, in which
// case Tab must not switch screens.
func (m CallLogsModel) Editing() bool {
	return m.filterOpen || m.detailOpen || m.notesEditing || m.dialOpen
}

// currentFilters reads the filter panel into CallFilters. Blank inputs
// stay unset and are omitted from the request.
func (m CallLogsModel) currentFilters() api.CallFilters {
	return api.CallFilters{
		StartDate:   strings.TrimSpace(m.filters[filterStartDate].Value()),
		EndDate:     strings.TrimSpace(m.filters[filterEndDate].Value()),
		Status:      strings.TrimSpace(m.filters[filterStatus].Value()),
		PhoneNumber: strings.TrimSpace(m.filters[filterPhone].Value()),
	}
}

// Update handles messages for the call logs screen.
func (m CallLogsModel) Update(msg tea.Msg) (CallLogsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tui.CallLogsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errMsg = "Failed to load call logs: " + msg.Err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.logs = msg.Logs
		m.table.SetRows(callRows(msg.Logs))
		return m, nil

	case tui.RecordingsLoadedMsg:
		// Stale result from a dialog that has been closed or reopened.
		if msg.Seq != m.detailSeq {
			return m, nil
		}
		m.recLoading = false
		if msg.Err != nil {
			m.recErr = msg.Err.Error()
			return m, nil
		}
		m.recordings = msg.Recs
		m.recCursor = 0
		return m, nil

	case tui.TranscriptLoadedMsg:
		if msg.Seq != m.detailSeq {
			return m, nil
		}
		m.trLoading = false
		if msg.Err != nil {
			m.trErr = msg.Err.Error()
			return m, nil
		}
		m.transcript = msg.Transcript
		return m, nil

	case tui.NotesSavedMsg:
		if msg.Err != nil {
			m.errMsg = "Failed to save notes: " + msg.Err.Error()
			return m, nil
		}
		m.status = "Notes saved"
		// Re-read from the server after a write.
		m.loading = true
		return m, tea.Batch(
			commands.LoadCallLogsCmd(m.client, m.userID, m.currentFilters()),
			m.spinner.Tick,
		)

	case tui.OutboundDialedMsg:
		if msg.Err != nil {
			m.errMsg = "Failed to start call: " + msg.Err.Error()
		} else {
			m.status = "Call initiated"
		}
		return m, nil

	case tui.PlaybackMsg:
		if msg.Err != nil {
			m.recErr = msg.Err.Error()
		}
		return m, nil

	case spinner.TickMsg:
		if m.loading || m.recLoading || m.trLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m CallLogsModel) handleKey(msg tea.KeyMsg) (CallLogsModel, tea.Cmd) {
	switch {
	case m.notesEditing:
		return m.handleNotesKey(msg)
	case m.dialOpen:
		return m.handleDialKey(msg)
	case m.detailOpen:
		return m.handleDetailKey(msg)
	case m.filterOpen:
		return m.handleFilterKey(msg)
	}

	switch msg.String() {
	case "r":
		m.loading = true
		m.status = ""
		return m, tea.Batch(commands.LoadCallLogsCmd(m.client, m.userID, m.currentFilters()), m.spinner.Tick)

	case "f":
		m.filterOpen = true
		m.setFilterFocus(0)
		return m, nil

	case "o":
		m.dialOpen = true
		m.dialInput.SetValue("")
		m.dialInput.Focus()
		return m, nil

	case tui.KeyEnter:
		idx := m.table.Cursor()
		if idx < 0 || idx >= len(m.logs) {
			return m, nil
		}
		return m.openDetail(m.logs[idx])
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// openDetail opens the detail dialog and defers the two auxiliary
// fetches; they are independent and update independent state.
func (m CallLogsModel) openDetail(call api.CallLog) (CallLogsModel, tea.Cmd) {
	m.detailOpen = true
	m.detail = call
	m.detailSeq++
	m.recordings = nil
	m.transcript = nil
	m.recErr = ""
	m.trErr = ""
	m.recLoading = true
	m.trLoading = true
	m.recCursor = 0

	callID := call.CallSID
	if callID == "" {
		callID = call.ID
	}
	return m, tea.Batch(
		commands.LoadRecordingsCmd(m.client, m.userID, callID, m.detailSeq),
		commands.LoadTranscriptCmd(m.client, callID, m.detailSeq),
		m.spinner.Tick,
	)
}

func (m CallLogsModel) handleDetailKey(msg tea.KeyMsg) (CallLogsModel, tea.Cmd) {
	switch msg.String() {
	case tui.KeyEsc:
		m.detailOpen = false
		// Invalidate in-flight fetches and silence the player.
		m.detailSeq++
		m.recLoading = false
		m.trLoading = false
		m.player.Stop()
		return m, nil

	case tui.KeyUp:
		if m.recCursor > 0 {
			m.recCursor--
		}
		return m, nil

	case tui.KeyDown:
		if m.recCursor < len(m.recordings)-1 {
			m.recCursor++
		}
		return m, nil

	case "p":
		if m.recCursor >= 0 && m.recCursor < len(m.recordings) {
			rec := m.recordings[m.recCursor]
			return m, commands.PlayRecordingCmd(m.player, m.client, rec.RecordingSID)
		}
		return m, nil

	case "s":
		m.player.Stop()
		return m, nil

	case "n":
		m.notesEditing = true
		m.notesInput.SetValue(m.detail.Notes)
		m.notesInput.Focus()
		return m, nil
	}
	return m, nil
}

func (m CallLogsModel) handleNotesKey(msg tea.KeyMsg) (CallLogsModel, tea.Cmd) {
	switch msg.String() {
	case tui.KeyEsc:
		m.notesEditing = false
		m.notesInput.SetValue("")
		return m, nil

	case tui.KeyEnter:
		notes := m.notesInput.Value()
		m.notesEditing = false
		m.detail.Notes = notes
		callSID := m.detail.CallSID
		if callSID == "" {
			callSID = m.detail.ID
		}
		return m, commands.SaveCallNotesCmd(m.client, callSID, notes)
	}

	var cmd tea.Cmd
	m.notesInput, cmd = m.notesInput.Update(msg)
	return m, cmd
}

func (m CallLogsModel) handleDialKey(msg tea.KeyMsg) (CallLogsModel, tea.Cmd) {
	switch msg.String() {
	case tui.KeyEsc:
		m.dialOpen = false
		m.dialInput.SetValue("")
		return m, nil

	case tui.KeyEnter:
		number := strings.TrimSpace(m.dialInput.Value())
		if err := validation.ValidatePhone(number); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.dialOpen = false
		m.dialInput.SetValue("")
		m.errMsg = ""
		return m, commands.DialOutboundCmd(m.client, m.userID, number)
	}

	var cmd tea.Cmd
	m.dialInput, cmd = m.dialInput.Update(msg)
	return m, cmd
}

func (m CallLogsModel) handleFilterKey(msg tea.KeyMsg) (CallLogsModel, tea.Cmd) {
	switch msg.String() {
	case tui.KeyEsc:
		m.filterOpen = false
		return m, nil

	case tui.KeyTab, tui.KeyDown:
		m.setFilterFocus((m.filterFocus + 1) % filterFieldCount)
		return m, nil

	case tui.KeyUp:
		m.setFilterFocus((m.filterFocus + filterFieldCount - 1) % filterFieldCount)
		return m, nil

	case "ctrl+x":
		for i := range m.filters {
			m.filters[i].SetValue("")
		}
		return m, nil

	case tui.KeyEnter:
		// Apply: serialize the filters and re-fetch from the server.
		f := m.currentFilters()
		if f.StartDate != "" {
			if err := validation.ValidateDate(f.StartDate); err != nil {
				m.errMsg = "Start " + err.Error()
				return m, nil
			}
		}
		if f.EndDate != "" {
			if err := validation.ValidateDate(f.EndDate); err != nil {
				m.errMsg = "End " + err.Error()
				return m, nil
			}
		}
		m.filterOpen = false
		m.errMsg = ""
		m.loading = true
		return m, tea.Batch(commands.LoadCallLogsCmd(m.client, m.userID, f), m.spinner.Tick)
	}

	var cmd tea.Cmd
	m.filters[m.filterFocus], cmd = m.filters[m.filterFocus].Update(msg)
	return m, cmd
}

func (m *CallLogsModel) setFilterFocus(idx int) {
	for i := range m.filters {
		if i == idx {
			m.filters[i].Focus()
		} else {
			m.filters[i].Blur()
		}
	}
	m.filterFocus = idx
}

func callRows(logs []api.CallLog) []table.Row {
	rows := make([]table.Row, len(logs))
	for i, c := range logs {
		rows[i] = table.Row{
			c.From(),
			c.ToNumber,
			formatDuration(c.Duration),
			formatWhen(c.Started()),
			c.Status,
		}
	}
	return rows
}

// View renders the call logs screen.
func (m CallLogsModel) View() string {
	if m.detailOpen {
		return m.viewDetail()
	}

	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render("Call Logs"))
	b.WriteString("\n\n")

	if m.errMsg != "" {
		b.WriteString(tui.ErrorStyle.Render(m.errMsg))
		b.WriteString("\n\n")
	} else if m.status != "" {
		b.WriteString(tui.SuccessStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	if m.filterOpen {
		b.WriteString(tui.TitleStyle.Render("Filters"))
		b.WriteString("\n")
		for i := range m.filters {
			b.WriteString(m.filters[i].View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(tui.DimStyle.Render("Enter: Apply · Ctrl+X: Clear · Esc: Close"))
		return tui.BoxStyle.Render(b.String())
	}

	if m.dialOpen {
		b.WriteString(tui.TitleStyle.Render("Outbound call"))
		b.WriteString("\n")
		b.WriteString(m.dialInput.View())
		b.WriteString("\n\n")
		b.WriteString(tui.DimStyle.Render("Enter: Call now · Esc: Cancel"))
		return tui.BoxStyle.Render(b.String())
	}

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading call logs...")
	} else if len(m.logs) == 0 {
		b.WriteString(tui.DimStyle.Render("No calls found"))
	} else {
		b.WriteString(m.table.View())
	}

	b.WriteString("\n\n")
	b.WriteString(tui.DimStyle.Render("Enter: Details · f: Filters · o: Outbound call · r: Refresh"))
	return tui.BoxStyle.Render(b.String())
}

func (m CallLogsModel) viewDetail() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Call details"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("From: %s    To: %s\n", m.detail.From(), m.detail.ToNumber))
	b.WriteString(fmt.Sprintf("Started: %s    Duration: %s    Status: %s\n\n",
		formatWhen(m.detail.Started()), formatDuration(m.detail.Duration), m.detail.Status))

	b.WriteString(tui.TitleStyle.Render("Recordings"))
	b.WriteString("\n")
	switch {
	case m.recLoading:
		b.WriteString(m.spinner.View() + " Loading recordings...\n")
	case m.recErr != "":
		b.WriteString(tui.ErrorStyle.Render("Failed to load recordings: "+m.recErr) + "\n")
	case len(m.recordings) == 0:
		b.WriteString(tui.DimStyle.Render("No recordings for this call") + "\n")
	default:
		playingSID, playing := m.player.Playing()
		for i, rec := range m.recordings {
			cursor := "  "
			if i == m.recCursor {
				cursor = "> "
			}
			mark := "  "
			if playing && rec.RecordingSID == playingSID {
				mark = tui.PlayingMark + " "
			}
			b.WriteString(fmt.Sprintf("%s%s%s  %s\n", cursor, mark, rec.RecordingSID, formatDuration(rec.Duration)))
		}
	}
	b.WriteString("\n")

	b.WriteString(tui.TitleStyle.Render("Transcript"))
	b.WriteString("\n")
	switch {
	case m.trLoading:
		b.WriteString(m.spinner.View() + " Loading transcript...\n")
	case m.trErr != "":
		b.WriteString(tui.ErrorStyle.Render("Failed to load transcript: "+m.trErr) + "\n")
	case m.transcript == nil || !m.transcript.HasText():
		b.WriteString(tui.DimStyle.Render("No transcript available") + "\n")
	case m.transcript.FullTranscript != "":
		b.WriteString(m.transcript.FullTranscript + "\n")
	default:
		for _, part := range m.transcript.Parts {
			b.WriteString(tui.DimStyle.Render(part.Timestamp) + "  " + part.Text + "\n")
		}
	}

	if m.notesEditing {
		b.WriteString("\n")
		b.WriteString(tui.TitleStyle.Render("Notes"))
		b.WriteString("\n")
		b.WriteString(m.notesInput.View())
		b.WriteString("\n")
		b.WriteString(tui.DimStyle.Render("Enter: Save · Esc: Cancel"))
	} else {
		if m.detail.Notes != "" {
			b.WriteString("\n")
			b.WriteString(tui.TitleStyle.Render("Notes"))
			b.WriteString("\n")
			b.WriteString(m.detail.Notes)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(tui.DimStyle.Render("p: Play · s: Stop · n: Notes · Esc: Back"))
	}

	return tui.BoxStyle.Render(b.String())
}
