// Package app provides the main TUI application that wires all views
// together.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/voxboard-dev/voxboard/internal/api"
	"github.com/voxboard-dev/voxboard/internal/player"
	"github.com/voxboard-dev/voxboard/internal/session"
	"github.com/voxboard-dev/voxboard/internal/tui"
	"github.com/voxboard-dev/voxboard/internal/tui/commands"
	"github.com/voxboard-dev/voxboard/internal/tui/views"
)

// Application states.
type state int

const (
	stateChecking state = iota
	stateLogin
	stateMain
)

// Navigation tabs, in display order.
type tab int

const (
	tabDashboard tab = iota
	tabCalls
	tabAppointments
	tabKnowledge
	tabScripts
	tabSettings
	tabCount
)

var tabNames = [tabCount]string{
	"Dashboard",
	"Calls",
	"Appointments",
	"Knowledge",
	"Scripts",
	"Settings",
}

// App is the main TUI application. It gates everything behind the
// persisted session, then routes between the six screens.
type App struct {
	client *api.Client
	store  session.Store
	player *player.Player

	state        state
	ctrlCPending bool
	width        int
	height       int

	userID string

	loginView        views.LoginModel
	dashboardView    views.DashboardModel
	callsView        views.CallLogsModel
	appointmentsView views.AppointmentsModel
	knowledgeView    views.KnowledgeModel
	scriptsView      views.ScriptsModel
	settingsView     views.SettingsModel
	activeTab        tab
}

// New creates the application.
func New(client *api.Client, store session.Store, p *player.Player) *App {
	return &App{
		client:    client,
		store:     store,
		player:    p,
		state:     stateChecking,
		loginView: views.NewLoginModel(client, store),
	}
}

// Init checks for a persisted session before showing anything.
func (a *App) Init() tea.Cmd {
	return commands.CheckSessionCmd(a.store)
}

// Update handles messages and routes them to the owning view.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, a.routeToActive(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyCtrlC:
			if a.ctrlCPending {
				a.player.Stop()
				return a, tea.Quit
			}
			a.ctrlCPending = true
			return a, tea.Tick(time.Second, func(time.Time) tea.Msg {
				return tui.CtrlCResetMsg{}
			})

		case tui.KeyCtrlL:
			if a.state == stateMain {
				a.player.Stop()
				return a, commands.LogoutCmd(a.store)
			}

		case tui.KeyTab:
			if a.state == stateMain && !a.activeEditing() {
				return a, a.switchTab((a.activeTab + 1) % tabCount)
			}

		case "shift+tab":
			if a.state == stateMain {
				return a, a.switchTab((a.activeTab + tabCount - 1) % tabCount)
			}
		}
		return a, a.routeToActive(msg)

	case tui.CtrlCResetMsg:
		a.ctrlCPending = false
		return a, nil

	case tui.SessionCheckedMsg:
		if msg.Err == nil && msg.Session.Authenticated() {
			return a, a.enterMain(msg.Session.UserID)
		}
		a.state = stateLogin
		return a, a.loginView.Init()

	case tui.LoginResultMsg:
		if msg.Err == nil {
			return a, a.enterMain(msg.UserID)
		}
		var cmd tea.Cmd
		a.loginView, cmd = a.loginView.Update(msg)
		return a, cmd

	case tui.LoggedOutMsg:
		a.state = stateLogin
		a.userID = ""
		a.loginView = views.NewLoginModel(a.client, a.store)
		return a, a.loginView.Init()
	}

	// Async results go to the view that owns them regardless of which
	// tab is showing; everything else goes to the active view.
	switch msg.(type) {
	case tui.SummaryLoadedMsg:
		return a, a.routeTo(tabDashboard, msg)
	case tui.CallLogsLoadedMsg, tui.RecordingsLoadedMsg, tui.TranscriptLoadedMsg,
		tui.NotesSavedMsg, tui.OutboundDialedMsg, tui.PlaybackMsg:
		return a, a.routeTo(tabCalls, msg)
	case tui.AppointmentsLoadedMsg, tui.AppointmentSavedMsg, tui.AppointmentDeletedMsg:
		return a, a.routeTo(tabAppointments, msg)
	case tui.KnowledgeLoadedMsg, tui.KnowledgeUploadedMsg, tui.KnowledgeDeletedMsg:
		return a, a.routeTo(tabKnowledge, msg)
	case tui.ScriptsLoadedMsg, tui.ScriptSavedMsg, tui.ScriptDeletedMsg:
		return a, a.routeTo(tabScripts, msg)
	case tui.UserConfigLoadedMsg, tui.UserConfigSavedMsg:
		return a, a.routeTo(tabSettings, msg)
	}

	return a, a.routeToActive(msg)
}

// enterMain builds the authenticated screens and opens the dashboard.
func (a *App) enterMain(userID string) tea.Cmd {
	a.state = stateMain
	a.userID = userID
	a.activeTab = tabDashboard
	a.dashboardView = views.NewDashboardModel(a.client, userID)
	a.callsView = views.NewCallLogsModel(a.client, userID, a.player)
	a.appointmentsView = views.NewAppointmentsModel(a.client, userID)
	a.knowledgeView = views.NewKnowledgeModel(a.client, userID)
	a.scriptsView = views.NewScriptsModel(a.client, userID)
	a.settingsView = views.NewSettingsModel(a.client, userID)
	return a.dashboardView.Init()
}

// switchTab activates a tab and re-fetches its data so every screen
// entry shows fresh server state.
func (a *App) switchTab(t tab) tea.Cmd {
	a.player.Stop()
	a.activeTab = t
	switch t {
	case tabDashboard:
		a.dashboardView = views.NewDashboardModel(a.client, a.userID)
		return a.dashboardView.Init()
	case tabCalls:
		a.callsView = views.NewCallLogsModel(a.client, a.userID, a.player)
		return a.callsView.Init()
	case tabAppointments:
		a.appointmentsView = views.NewAppointmentsModel(a.client, a.userID)
		return a.appointmentsView.Init()
	case tabKnowledge:
		a.knowledgeView = views.NewKnowledgeModel(a.client, a.userID)
		return a.knowledgeView.Init()
	case tabScripts:
		a.scriptsView = views.NewScriptsModel(a.client, a.userID)
		return a.scriptsView.Init()
	case tabSettings:
		a.settingsView = views.NewSettingsModel(a.client, a.userID)
		return a.settingsView.Init()
	}
	return nil
}

// activeEditing reports whether the active view's form or dialog owns
// the Tab key.
func (a *App) activeEditing() bool {
	switch a.activeTab {
	case tabCalls:
		return a.callsView.Editing()
	case tabAppointments:
		return a.appointmentsView.Editing()
	case tabKnowledge:
		return a.knowledgeView.Editing()
	case tabScripts:
		return a.scriptsView.Editing()
	case tabSettings:
		return a.settingsView.Editing()
	}
	return false
}

// routeTo delivers a message to a specific main-screen view.
func (a *App) routeTo(t tab, msg tea.Msg) tea.Cmd {
	if a.state != stateMain {
		return nil
	}
	var cmd tea.Cmd
	switch t {
	case tabDashboard:
		a.dashboardView, cmd = a.dashboardView.Update(msg)
	case tabCalls:
		a.callsView, cmd = a.callsView.Update(msg)
	case tabAppointments:
		a.appointmentsView, cmd = a.appointmentsView.Update(msg)
	case tabKnowledge:
		a.knowledgeView, cmd = a.knowledgeView.Update(msg)
	case tabScripts:
		a.scriptsView, cmd = a.scriptsView.Update(msg)
	case tabSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	}
	return cmd
}

// routeToActive delivers a message to whichever view is showing.
func (a *App) routeToActive(msg tea.Msg) tea.Cmd {
	switch a.state {
	case stateLogin:
		var cmd tea.Cmd
		a.loginView, cmd = a.loginView.Update(msg)
		return cmd
	case stateMain:
		return a.routeTo(a.activeTab, msg)
	}
	return nil
}

// View renders the current application state.
func (a *App) View() string {
	var content string

	switch a.state {
	case stateChecking:
		content = tui.DimStyle.Render("Checking session...")

	case stateLogin:
		content = a.loginView.View()

	case stateMain:
		switch a.activeTab {
		case tabDashboard:
			content = a.dashboardView.View()
		case tabCalls:
			content = a.callsView.View()
		case tabAppointments:
			content = a.appointmentsView.View()
		case tabKnowledge:
			content = a.knowledgeView.View()
		case tabScripts:
			content = a.scriptsView.View()
		case tabSettings:
			content = a.settingsView.View()
		}
		content = lipgloss.JoinVertical(lipgloss.Center, content, "", a.renderTabBar())
	}

	if a.ctrlCPending {
		content = lipgloss.JoinVertical(lipgloss.Center, content,
			tui.WarningStyle.Render("Press Ctrl+C again to quit"))
	}

	if a.width > 0 && a.height > 0 {
		content = lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func (a *App) renderTabBar() string {
	rendered := make([]string, 0, int(tabCount)+1)
	for i := tab(0); i < tabCount; i++ {
		if i == a.activeTab {
			rendered = append(rendered, tui.ActiveTabStyle.Render(tabNames[i]))
		} else {
			rendered = append(rendered, tui.InactiveTabStyle.Render(tabNames[i]))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	hint := tui.DimStyle.Render("Tab: Next screen · Ctrl+L: Log out · Ctrl+C Ctrl+C: Quit")
	return lipgloss.JoinVertical(lipgloss.Center, bar, hint)
}
