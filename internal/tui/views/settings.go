package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/voxboard-dev/voxboard/internal/api"
	"github.com/voxboard-dev/voxboard/internal/tui"
	"github.com/voxboard-dev/voxboard/internal/tui/commands"
)

// settings form field indexes.
const (
	setTwilioSID = iota
	setTwilioToken
	setTwilioPhone
	setLLMProvider
	setLLMKey
	setLLMModel
	setDeepgramKey
	setDeepgramModel
	setDeepgramVoice
	setDeepgramLanguage
	setFieldCount
)

// SettingsModel is the view model for the platform configuration
// screen. Saving sends the entire configuration object back; there are
// no partial-field updates.
type SettingsModel struct {
	client *api.Client
	userID string

	loading bool
	saving  bool
	errMsg  string
	status  string
	inputs  []textinput.Model
	focus   int
	spinner spinner.Model
}

// NewSettingsModel creates the settings screen.
func NewSettingsModel(client *api.Client, userID string) SettingsModel {
	inputs := make([]textinput.Model, setFieldCount)
	placeholders := []string{
		"Twilio account SID",
		"Twilio auth token",
		"Twilio phone number",
		"LLM provider",
		"LLM API key",
		"LLM model",
		"Deepgram API key",
		"Deepgram model",
		"Deepgram voice",
		"Deepgram language",
	}
	secret := map[int]bool{setTwilioToken: true, setLLMKey: true, setDeepgramKey: true}
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 200
		if secret[i] {
			ti.EchoMode = textinput.EchoPassword
		}
		inputs[i] = ti
	}
	inputs[0].Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return SettingsModel{
		client:  client,
		userID:  userID,
		loading: true,
		inputs:  inputs,
		spinner: sp,
	}
}

// Editing reports whether the form owns the keyboard. The settings
// screen is one big form, so Tab always cycles its fields; leaving the
// screen uses Shift+Tab.
func (m SettingsModel) Editing() bool {
	return true
}

// Init triggers the configuration fetch on screen entry.
func (m SettingsModel) Init() tea.Cmd {
	return tea.Batch(commands.LoadUserConfigCmd(m.client, m.userID), m.spinner.Tick)
}

// Update handles messages for the settings screen.
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tui.UserConfigLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errMsg = "Failed to load configuration: " + msg.Err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.setForm(msg.Config)
		return m, nil

	case tui.UserConfigSavedMsg:
		m.saving = false
		if msg.Err != nil {
			m.errMsg = "Failed to save configuration: " + msg.Err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Configuration saved"
		return m, nil

	case spinner.TickMsg:
		if m.loading || m.saving {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyTab, tui.KeyDown:
			m.setFocus((m.focus + 1) % setFieldCount)
			return m, nil
		case tui.KeyUp:
			m.setFocus((m.focus + setFieldCount - 1) % setFieldCount)
			return m, nil
		case "ctrl+s":
			m.saving = true
			m.status = ""
			return m, tea.Batch(commands.SaveUserConfigCmd(m.client, m.formConfig()), m.spinner.Tick)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// setForm fills the inputs from a fetched configuration.
func (m *SettingsModel) setForm(cfg *api.UserConfig) {
	if cfg == nil {
		return
	}
	m.inputs[setTwilioSID].SetValue(cfg.Twilio.AccountSID)
	m.inputs[setTwilioToken].SetValue(cfg.Twilio.AuthToken)
	m.inputs[setTwilioPhone].SetValue(cfg.Twilio.PhoneNumber)
	m.inputs[setLLMProvider].SetValue(cfg.LLM.Provider)
	m.inputs[setLLMKey].SetValue(cfg.LLM.APIKey)
	m.inputs[setLLMModel].SetValue(cfg.LLM.Model)
	m.inputs[setDeepgramKey].SetValue(cfg.Deepgram.APIKey)
	m.inputs[setDeepgramModel].SetValue(cfg.Deepgram.Model)
	m.inputs[setDeepgramVoice].SetValue(cfg.Deepgram.Voice)
	m.inputs[setDeepgramLanguage].SetValue(cfg.Deepgram.Language)
}

// formConfig assembles the full configuration object from the form.
func (m SettingsModel) formConfig() *api.UserConfig {
	return &api.UserConfig{
		UserID: m.userID,
		Twilio: api.TwilioConfig{
			AccountSID:  strings.TrimSpace(m.inputs[setTwilioSID].Value()),
			AuthToken:   strings.TrimSpace(m.inputs[setTwilioToken].Value()),
			PhoneNumber: strings.TrimSpace(m.inputs[setTwilioPhone].Value()),
		},
		LLM: api.LLMConfig{
			Provider: strings.TrimSpace(m.inputs[setLLMProvider].Value()),
			APIKey:   strings.TrimSpace(m.inputs[setLLMKey].Value()),
			Model:    strings.TrimSpace(m.inputs[setLLMModel].Value()),
		},
		Deepgram: api.DeepgramConfig{
			APIKey:   strings.TrimSpace(m.inputs[setDeepgramKey].Value()),
			Model:    strings.TrimSpace(m.inputs[setDeepgramModel].Value()),
			Voice:    strings.TrimSpace(m.inputs[setDeepgramVoice].Value()),
			Language: strings.TrimSpace(m.inputs[setDeepgramLanguage].Value()),
		},
	}
}

func (m *SettingsModel) setFocus(idx int) {
	for i := range m.inputs {
		if i == idx {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	m.focus = idx
}

// View renders the settings screen.
func (m SettingsModel) View() string {
	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render("Settings"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading configuration...")
		return tui.BoxStyle.Render(b.String())
	}

	if m.errMsg != "" {
		b.WriteString(tui.ErrorStyle.Render(m.errMsg))
		b.WriteString("\n\n")
	} else if m.status != "" {
		b.WriteString(tui.SuccessStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	sections := []struct {
		title  string
		fields []int
	}{
		{"Twilio", []int{setTwilioSID, setTwilioToken, setTwilioPhone}},
		{"LLM", []int{setLLMProvider, setLLMKey, setLLMModel}},
		{"Deepgram", []int{setDeepgramKey, setDeepgramModel, setDeepgramVoice, setDeepgramLanguage}},
	}
	for _, sec := range sections {
		b.WriteString(tui.LabelStyle.Render(sec.title))
		b.WriteString("\n")
		for _, f := range sec.fields {
			b.WriteString(m.inputs[f].View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.saving {
		b.WriteString(m.spinner.View())
		b.WriteString(" Saving...")
	} else {
		b.WriteString(tui.DimStyle.Render("Ctrl+S: Save · Tab: Next field"))
	}

	return tui.BoxStyle.Render(b.String())
}
