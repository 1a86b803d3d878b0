package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/voxboard-dev/voxboard/internal/api"
	"github.com/voxboard-dev/voxboard/internal/tui"
	"github.com/voxboard-dev/voxboard/internal/tui/commands"
)

// upload dialog field indexes.
const (
	kbFieldName = iota
	kbFieldPath
	kbFieldCount
)

// KnowledgeModel is the view model for the knowledge-base screen.
// Documents are immutable after upload: the only mutations are upload
// and delete, and both re-fetch the list.
type KnowledgeModel struct {
	client *api.Client
	userID string

	loading   bool
	uploading bool
	errMsg    string
	status    string
	kbs       []api.KnowledgeBase
	table     table.Model
	spinner   spinner.Model

	uploadOpen  bool
	uploadFocus int
	uploadForm  []textinput.Model
	formErr     string
}

// NewKnowledgeModel creates the knowledge-base screen.
func NewKnowledgeModel(client *api.Client, userID string) KnowledgeModel {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "File", Width: 28},
		{Title: "Uploaded", Width: 22},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(12),
		table.WithFocused(true),
	)

	form := make([]textinput.Model, kbFieldCount)
	placeholders := []string{"Knowledge base name", "Local file path"}
	for i := range form {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 300
		form[i] = ti
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return KnowledgeModel{
		client:     client,
		userID:     userID,
		loading:    true,
		table:      t,
		uploadForm: form,
		spinner:    sp,
	}
}

// Init triggers the document fetch on screen entry.
func (m KnowledgeModel) Init() tea.Cmd {
	return tea.Batch(commands.LoadKnowledgeCmd(m.client, m.userID), m.spinner.Tick)
}

// Editing reports whether the upload dialog owns the keyboard.
func (m KnowledgeModel) Editing() bool {
	return m.uploadOpen
}

// Update handles messages for the knowledge-base screen.
func (m KnowledgeModel) Update(msg tea.Msg) (KnowledgeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tui.KnowledgeLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errMsg = "Failed to load knowledge bases: " + msg.Err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.kbs = msg.KBs
		rows := make([]table.Row, len(msg.KBs))
		for i, kb := range msg.KBs {
			rows[i] = table.Row{kb.KBName, kb.OriginalFilename, formatWhen(kb.CreatedAt)}
		}
		m.table.SetRows(rows)
		return m, nil

	case tui.KnowledgeUploadedMsg:
		m.uploading = false
		if msg.Err != nil {
			m.errMsg = "Upload failed: " + msg.Err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Document uploaded"
		m.loading = true
		return m, tea.Batch(commands.LoadKnowledgeCmd(m.client, m.userID), m.spinner.Tick)

	case tui.KnowledgeDeletedMsg:
		if msg.Err != nil {
			m.errMsg = "Failed to delete document: " + msg.Err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Document deleted"
		m.loading = true
		return m, tea.Batch(commands.LoadKnowledgeCmd(m.client, m.userID), m.spinner.Tick)

	case spinner.TickMsg:
		if m.loading || m.uploading {
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

func (m KnowledgeModel) handleKey(msg tea.KeyMsg) (KnowledgeModel, tea.Cmd) {
	if m.uploadOpen {
		return m.handleUploadKey(msg)
	}

	switch msg.String() {
	case "r":
		m.loading = true
		m.status = ""
		return m, tea.Batch(commands.LoadKnowledgeCmd(m.client, m.userID), m.spinner.Tick)

	case "u":
		m.uploadOpen = true
		m.formErr = ""
		for i := range m.uploadForm {
			m.uploadForm[i].SetValue("")
		}
		m.setUploadFocus(0)
		return m, nil

	case "d":
		idx := m.table.Cursor()
		if idx < 0 || idx >= len(m.kbs) {
			return m, nil
		}
		m.status = ""
		return m, commands.DeleteKnowledgeCmd(m.client, m.kbs[idx].ID)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m KnowledgeModel) handleUploadKey(msg tea.KeyMsg) (KnowledgeModel, tea.Cmd) {
	switch msg.String() {
	case tui.KeyEsc:
		m.uploadOpen = false
		return m, nil

	case tui.KeyTab, tui.KeyDown:
		m.setUploadFocus((m.uploadFocus + 1) % kbFieldCount)
		return m, nil

	case tui.KeyUp:
		m.setUploadFocus((m.uploadFocus + kbFieldCount - 1) % kbFieldCount)
		return m, nil

	case tui.KeyEnter:
		name := strings.TrimSpace(m.uploadForm[kbFieldName].Value())
		path := strings.TrimSpace(m.uploadForm[kbFieldPath].Value())
		if name == "" {
			m.formErr = "name is required"
			return m, nil
		}
		if path == "" {
			m.formErr = "file path is required"
			return m, nil
		}
		m.uploadOpen = false
		m.uploading = true
		m.status = ""
		return m, tea.Batch(commands.UploadKnowledgeCmd(m.client, m.userID, name, path), m.spinner.Tick)
	}

	var cmd tea.Cmd
	m.uploadForm[m.uploadFocus], cmd = m.uploadForm[m.uploadFocus].Update(msg)
	return m, cmd
}

func (m *KnowledgeModel) setUploadFocus(idx int) {
	for i := range m.uploadForm {
		if i == idx {
			m.uploadForm[i].Focus()
		} else {
			m.uploadForm[i].Blur()
		}
	}
	m.uploadFocus = idx
}

// View renders the knowledge-base screen.
func (m KnowledgeModel) View() string {
	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render("Knowledge Bases"))
	b.WriteString("\n\n")

	if m.uploadOpen {
		b.WriteString(tui.TitleStyle.Render("Upload document"))
		b.WriteString("\n")
		if m.formErr != "" {
			b.WriteString(tui.ErrorStyle.Render(m.formErr))
			b.WriteString("\n")
		}
		for i := range m.uploadForm {
			b.WriteString(m.uploadForm[i].View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(tui.DimStyle.Render("Enter: Upload · Esc: Cancel"))
		return tui.BoxStyle.Render(b.String())
	}

	if m.errMsg != "" {
		b.WriteString(tui.ErrorStyle.Render(m.errMsg))
		b.WriteString("\n\n")
	} else if m.status != "" {
		b.WriteString(tui.SuccessStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	switch {
	case m.uploading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Uploading...")
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading knowledge bases...")
	case len(m.kbs) == 0:
		b.WriteString(tui.DimStyle.Render("No documents uploaded yet"))
	default:
		b.WriteString(m.table.View())
	}

	b.WriteString("\n\n")
	b.WriteString(tui.DimStyle.Render("u: Upload · d: Delete · r: Refresh"))
	return tui.BoxStyle.Render(b.String())
}
