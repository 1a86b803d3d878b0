package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/voxboard-dev/voxboard/internal/api"
	"github.com/voxboard-dev/voxboard/internal/tui"
	"github.com/voxboard-dev/voxboard/internal/tui/commands"
)

// DashboardModel is the view model for the dashboard screen. It is the
// one screen that never shows an error banner: a failed summary fetch
// arrives as degraded fallback data instead.
type DashboardModel struct {
	client *api.Client
	userID string

	loading bool
	result  api.SummaryResult
	loaded  bool
	spinner spinner.Model
	width   int
}

// NewDashboardModel creates the dashboard screen.
func NewDashboardModel(client *api.Client, userID string) DashboardModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return DashboardModel{
		client:  client,
		userID:  userID,
		loading: true,
		spinner: sp,
	}
}

// Init triggers the summary fetch on screen entry.
func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(
		commands.LoadSummaryCmd(m.client, m.userID),
		m.spinner.Tick,
	)
}

// Update handles messages for the dashboard screen.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tui.SummaryLoadedMsg:
		m.loading = false
		m.loaded = true
		m.result = msg.Result
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "r" {
			m.loading = true
			return m, tea.Batch(commands.LoadSummaryCmd(m.client, m.userID), m.spinner.Tick)
		}

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View renders the dashboard screen.
func (m DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Dashboard"))
	b.WriteString("\n\n")

	if m.loading && !m.loaded {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading summary...")
		return tui.BoxStyle.Render(b.String())
	}
	if !m.loaded {
		b.WriteString(tui.DimStyle.Render("No data yet"))
		return tui.BoxStyle.Render(b.String())
	}

	s := m.result.Summary

	counts := [][2]string{
		{"Calls today", fmt.Sprintf("%d", s.CallsToday)},
		{"Calls this month", fmt.Sprintf("%d", s.CallsThisMonth)},
		{"Appointments today", fmt.Sprintf("%d", s.AppointmentsToday)},
		{"Upcoming appointments", fmt.Sprintf("%d", s.UpcomingAppointments)},
		{"Knowledge bases", fmt.Sprintf("%d", s.KnowledgeBaseCount)},
		{"Scripts", fmt.Sprintf("%d", s.ScriptCount)},
	}
	var cells []string
	for _, c := range counts {
		cell := tui.TitleStyle.Render(c[1]) + "\n" + tui.DimStyle.Render(c[0])
		cells = append(cells, lipgloss.NewStyle().Padding(0, 2).Render(cell))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	b.WriteString("\n\n")

	b.WriteString(renderFlag("Twilio", s.TwilioConfigured))
	b.WriteString("  ")
	b.WriteString(renderFlag("LLM", s.LLMConfigured))
	b.WriteString("  ")
	b.WriteString(renderFlag("Deepgram", s.DeepgramConfigured))
	b.WriteString("\n\n")

	b.WriteString(tui.TitleStyle.Render("Recent calls"))
	b.WriteString("\n")
	if len(s.RecentCalls) == 0 {
		b.WriteString(tui.DimStyle.Render("No recent calls"))
		b.WriteString("\n")
	}
	for _, c := range s.RecentCalls {
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			c.FromNumber, formatDuration(c.Duration), tui.DimStyle.Render(formatWhen(c.StartedAt))))
	}
	b.WriteString("\n")

	b.WriteString(tui.TitleStyle.Render("Recent appointments"))
	b.WriteString("\n")
	if len(s.RecentAppointments) == 0 {
		b.WriteString(tui.DimStyle.Render("No recent appointments"))
		b.WriteString("\n")
	}
	for _, a := range s.RecentAppointments {
		b.WriteString(fmt.Sprintf("%s  %s %s\n",
			a.CustomerName, a.AppointmentDate, tui.DimStyle.Render(a.AppointmentTime)))
	}

	if m.result.Degraded {
		b.WriteString("\n")
		if m.result.SchemaMismatch() {
			b.WriteString(tui.WarningStyle.Render("Showing example data: the summary endpoint reports a schema mismatch"))
		} else {
			b.WriteString(tui.DimStyle.Render("Showing example data while the summary endpoint is unavailable"))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(tui.DimStyle.Render("r: Refresh"))

	return tui.BoxStyle.Render(b.String())
}

func renderFlag(name string, ok bool) string {
	if ok {
		return tui.FlagOn + " " + name
	}
	return tui.FlagOff + " " + name
}

func formatDuration(seconds int) string {
	d := time.Duration(seconds) * time.Second
	return d.String()
}

// formatWhen shortens an RFC3339 timestamp for display, falling back
// to the raw string when it does not parse.
func formatWhen(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("Jan 02 15:04")
}
