// Package views provides the per-screen view models for the voxboard TUI.
package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/voxboard-dev/voxboard/internal/api"
	"github.com/voxboard-dev/voxboard/internal/session"
	"github.com/voxboard-dev/voxboard/internal/tui"
	"github.com/voxboard-dev/voxboard/internal/tui/commands"
	"github.com/voxboard-dev/voxboard/pkg/validation"
)

// login form field indexes.
const (
	loginFieldName = iota
	loginFieldEmail
	loginFieldPassword
	loginFieldCount
)

// LoginModel is the view model for the login/register screen.
type LoginModel struct {
	client *api.Client
	store  session.Store

	inputs       []textinput.Model
	focus        int
	registerMode bool
	loading      bool
	errMsg       string
	spinner      spinner.Model
	width        int
}

// NewLoginModel creates the login screen.
func NewLoginModel(client *api.Client, store session.Store) LoginModel {
	inputs := make([]textinput.Model, loginFieldCount)

	name := textinput.New()
	name.Placeholder = "Full name"
	name.CharLimit = 100
	inputs[loginFieldName] = name

	email := textinput.New()
	email.Placeholder = "Email address"
	email.CharLimit = 255
	email.Focus()
	inputs[loginFieldEmail] = email

	password := textinput.New()
	password.Placeholder = "Password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 128
	inputs[loginFieldPassword] = password

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return LoginModel{
		client:  client,
		store:   store,
		inputs:  inputs,
		focus:   loginFieldEmail,
		spinner: sp,
	}
}

// Init returns the initial command for the login screen.
func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the login screen.
func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tui.LoginResultMsg:
		m.loading = false
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
		}
		// Success is handled by the app model, which switches screens.
		return m, nil

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		switch msg.String() {
		case tui.KeyTab, tui.KeyDown:
			m.cycleFocus(1)
			return m, nil
		case tui.KeyUp:
			m.cycleFocus(-1)
			return m, nil
		case "ctrl+r":
			m.registerMode = !m.registerMode
			m.errMsg = ""
			if !m.registerMode && m.focus == loginFieldName {
				m.setFocus(loginFieldEmail)
			}
			return m, nil
		case tui.KeyEnter:
			return m.submit()
		}
	}

	var cmds []tea.Cmd
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.loading {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// submit validates the form and issues the credential exchange.
func (m LoginModel) submit() (LoginModel, tea.Cmd) {
	name := strings.TrimSpace(m.inputs[loginFieldName].Value())
	email := strings.TrimSpace(m.inputs[loginFieldEmail].Value())
	password := m.inputs[loginFieldPassword].Value()

	var err error
	if m.registerMode {
		err = validation.ValidateRegister(name, email, password)
	} else {
		err = validation.ValidateLogin(email, password)
	}
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.errMsg = ""
	m.loading = true

	var cmd tea.Cmd
	if m.registerMode {
		cmd = commands.RegisterCmd(m.client, m.store, name, email, password)
	} else {
		cmd = commands.LoginCmd(m.client, m.store, email, password)
	}
	return m, tea.Batch(cmd, m.spinner.Tick)
}

func (m *LoginModel) cycleFocus(dir int) {
	first := loginFieldEmail
	if m.registerMode {
		first = loginFieldName
	}
	n := loginFieldCount - first
	next := first + ((m.focus-first+dir)+n)%n
	m.setFocus(next)
}

func (m *LoginModel) setFocus(idx int) {
	for i := range m.inputs {
		if i == idx {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	m.focus = idx
}

// View renders the login screen.
func (m LoginModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Voice AI Platform"))
	b.WriteString("\n")
	if m.registerMode {
		b.WriteString(tui.DimStyle.Render("Create a new account"))
	} else {
		b.WriteString(tui.DimStyle.Render("Sign in to your account"))
	}
	b.WriteString("\n\n")

	if m.errMsg != "" {
		b.WriteString(tui.ErrorStyle.Render(m.errMsg))
		b.WriteString("\n\n")
	}

	if m.registerMode {
		b.WriteString(m.inputs[loginFieldName].View())
		b.WriteString("\n")
	}
	b.WriteString(m.inputs[loginFieldEmail].View())
	b.WriteString("\n")
	b.WriteString(m.inputs[loginFieldPassword].View())
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Signing in...")
	} else {
		hint := "Enter: Sign in · Ctrl+R: Switch to register"
		if m.registerMode {
			hint = "Enter: Create account · Ctrl+R: Switch to sign in"
		}
		b.WriteString(tui.DimStyle.Render(hint))
	}

	return tui.BoxStyle.Render(b.String())
}
