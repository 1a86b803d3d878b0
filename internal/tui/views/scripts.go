package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/voxboard-dev/voxboard/internal/api"
	"github.com/voxboard-dev/voxboard/internal/tui"
	"github.com/voxboard-dev/voxboard/internal/tui/commands"
	"github.com/voxboard-dev/voxboard/pkg/validation"
)

// ScriptsModel is the view model for the scripts screen. Script content
// must parse as JSON; the editor refuses to save anything else, so
// malformed content never reaches the server.
type ScriptsModel struct {
	client *api.Client
	userID string

	loading bool
	errMsg  string
	status  string
	scripts []api.Script
	table   table.Model
	spinner spinner.Model

	editorOpen  bool
	editingID   string
	nameInput   textinput.Model
	contentArea textarea.Model
	editorFocus int // 0 name, 1 content
	editorErr   string
}

// NewScriptsModel creates the scripts screen.
func NewScriptsModel(client *api.Client, userID string) ScriptsModel {
	columns := []table.Column{
		{Title: "Name", Width: 28},
		{Title: "Updated", Width: 22},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(12),
		table.WithFocused(true),
	)

	name := textinput.New()
	name.Placeholder = "Script name"
	name.CharLimit = 120

	content := textarea.New()
	content.Placeholder = `{"greeting": "..."}`
	content.SetHeight(10)
	content.CharLimit = 0

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return ScriptsModel{
		client:      client,
		userID:      userID,
		loading:     true,
		table:       t,
		nameInput:   name,
		contentArea: content,
		spinner:     sp,
	}
}

// Init triggers the script fetch on screen entry.
func (m ScriptsModel) Init() tea.Cmd {
	return tea.Batch(commands.LoadScriptsCmd(m.client, m.userID), m.spinner.Tick)
}

// Editing reports whether the editor owns the keyboard.
func (m ScriptsModel) Editing() bool {
	return m.editorOpen
}

// Update handles messages for the scripts screen.
func (m ScriptsModel) Update(msg tea.Msg) (ScriptsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tui.ScriptsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errMsg = "Failed to load scripts: " + msg.Err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.scripts = msg.Scripts
		rows := make([]table.Row, len(msg.Scripts))
		for i, s := range msg.Scripts {
			rows[i] = table.Row{s.ScriptName, formatWhen(s.UpdatedAt)}
		}
		m.table.SetRows(rows)
		return m, nil

	case tui.ScriptSavedMsg:
		if msg.Err != nil {
			m.errMsg = "Failed to save script: " + msg.Err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Script saved"
		m.loading = true
		return m, tea.Batch(commands.LoadScriptsCmd(m.client, m.userID), m.spinner.Tick)

	case tui.ScriptDeletedMsg:
		if msg.Err != nil {
			m.errMsg = "Failed to delete script: " + msg.Err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Script deleted"
		m.loading = true
		return m, tea.Batch(commands.LoadScriptsCmd(m.client, m.userID), m.spinner.Tick)

	case spinner.TickMsg:
		if m.loading {
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

func (m ScriptsModel) handleKey(msg tea.KeyMsg) (ScriptsModel, tea.Cmd) {
	if m.editorOpen {
		return m.handleEditorKey(msg)
	}

	switch msg.String() {
	case "r":
		m.loading = true
		m.status = ""
		return m, tea.Batch(commands.LoadScriptsCmd(m.client, m.userID), m.spinner.Tick)

	case "a":
		m.openEditor(api.Script{})
		return m, nil

	case tui.KeyEnter:
		idx := m.table.Cursor()
		if idx < 0 || idx >= len(m.scripts) {
			return m, nil
		}
		m.openEditor(m.scripts[idx])
		return m, nil

	case "d":
		idx := m.table.Cursor()
		if idx < 0 || idx >= len(m.scripts) {
			return m, nil
		}
		m.status = ""
		return m, commands.DeleteScriptCmd(m.client, m.scripts[idx].ID)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// openEditor loads a script into the editor, or a blank form for a new
// script.
func (m *ScriptsModel) openEditor(s api.Script) {
	m.editorOpen = true
	m.editorErr = ""
	m.editingID = s.ID
	m.nameInput.SetValue(s.ScriptName)
	m.contentArea.SetValue(s.ScriptContent)
	m.setEditorFocus(0)
}

func (m ScriptsModel) handleEditorKey(msg tea.KeyMsg) (ScriptsModel, tea.Cmd) {
	switch msg.String() {
	case tui.KeyEsc:
		m.editorOpen = false
		return m, nil

	case tui.KeyTab:
		m.setEditorFocus(1 - m.editorFocus)
		return m, nil

	case "ctrl+s":
		name := strings.TrimSpace(m.nameInput.Value())
		content := m.contentArea.Value()
		if err := validation.ValidateScript(name, content); err != nil {
			m.editorErr = err.Error()
			return m, nil
		}
		script := &api.Script{
			ID:            m.editingID,
			UserID:        m.userID,
			ScriptName:    name,
			ScriptContent: content,
		}
		m.editorOpen = false
		m.status = ""
		return m, commands.SaveScriptCmd(m.client, script)
	}

	var cmd tea.Cmd
	if m.editorFocus == 0 {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.contentArea, cmd = m.contentArea.Update(msg)
	}
	return m, cmd
}

func (m *ScriptsModel) setEditorFocus(idx int) {
	m.editorFocus = idx
	if idx == 0 {
		m.nameInput.Focus()
		m.contentArea.Blur()
	} else {
		m.nameInput.Blur()
		m.contentArea.Focus()
	}
}

// View renders the scripts screen.
func (m ScriptsModel) View() string {
	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render("Scripts"))
	b.WriteString("\n\n")

	if m.editorOpen {
		title := "Edit script"
		if m.editingID == "" {
			title = "New script"
		}
		b.WriteString(tui.TitleStyle.Render(title))
		b.WriteString("\n")
		if m.editorErr != "" {
			b.WriteString(tui.ErrorStyle.Render(m.editorErr))
			b.WriteString("\n")
		}
		b.WriteString(m.nameInput.View())
		b.WriteString("\n\n")
		b.WriteString(m.contentArea.View())
		b.WriteString("\n\n")
		b.WriteString(tui.DimStyle.Render("Ctrl+S: Save · Tab: Switch field · Esc: Cancel"))
		return tui.BoxStyle.Render(b.String())
	}

	if m.errMsg != "" {
		b.WriteString(tui.ErrorStyle.Render(m.errMsg))
		b.WriteString("\n\n")
	} else if m.status != "" {
		b.WriteString(tui.SuccessStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading scripts...")
	} else if len(m.scripts) == 0 {
		b.WriteString(tui.DimStyle.Render("No scripts yet"))
	} else {
		b.WriteString(m.table.View())
	}

	b.WriteString("\n\n")
	b.WriteString(tui.DimStyle.Render("a: New · Enter: Edit · d: Delete · r: Refresh"))
	return tui.BoxStyle.Render(b.String())
}
