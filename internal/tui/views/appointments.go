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
	"github.com/voxboard-dev/voxboard/pkg/validation"
)

// create dialog field indexes.
const (
	apptFieldName = iota
	apptFieldPhone
	apptFieldDate
	apptFieldTime
	apptFieldNotes
	apptFieldCount
)

// AppointmentsModel is the view model for the appointments screen. The
// date filter is applied client-side over the fetched list; mutations
// re-fetch the list rather than patching it in place.
type AppointmentsModel struct {
	client *api.Client
	userID string

	loading bool
	errMsg  string
	status  string
	appts   []api.Appointment
	shown   []api.Appointment
	table   table.Model
	spinner spinner.Model

	dateFilter textinput.Model
	filtering  bool

	createOpen  bool
	createFocus int
	createForm  []textinput.Model
	formErr     string
}

// NewAppointmentsModel creates the appointments screen.
func NewAppointmentsModel(client *api.Client, userID string) AppointmentsModel {
	columns := []table.Column{
		{Title: "Customer", Width: 20},
		{Title: "Phone", Width: 16},
		{Title: "Date", Width: 12},
		{Title: "Time", Width: 10},
		{Title: "Notes", Width: 24},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(12),
		table.WithFocused(true),
	)

	filter := textinput.New()
	filter.Placeholder = "YYYY-MM-DD"
	filter.CharLimit = 10

	form := make([]textinput.Model, apptFieldCount)
	placeholders := []string{"Customer name", "Customer phone", "Date (YYYY-MM-DD)", "Time (HH:MM)", "Notes"}
	for i := range form {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 200
		form[i] = ti
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return AppointmentsModel{
		client:     client,
		userID:     userID,
		loading:    true,
		table:      t,
		dateFilter: filter,
		createForm: form,
		spinner:    sp,
	}
}

// Init triggers the appointment fetch on screen entry.
func (m AppointmentsModel) Init() tea.Cmd {
	return tea.Batch(commands.LoadAppointmentsCmd(m.client, m.userID), m.spinner.Tick)
}

// Editing reports whether a dialog or form owns the keyboard.
func (m AppointmentsModel) Editing() bool {
	return m.createOpen || m.filtering
}

// Update handles messages for the appointments screen.
func (m AppointmentsModel) Update(msg tea.Msg) (AppointmentsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tui.AppointmentsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errMsg = "Failed to load appointments: " + msg.Err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.appts = msg.Appts
		m.applyFilter()
		return m, nil

	case tui.AppointmentSavedMsg:
		if msg.Err != nil {
			m.errMsg = "Failed to create appointment: " + msg.Err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Appointment created"
		m.loading = true
		return m, tea.Batch(commands.LoadAppointmentsCmd(m.client, m.userID), m.spinner.Tick)

	case tui.AppointmentDeletedMsg:
		if msg.Err != nil {
			m.errMsg = "Failed to delete appointment: " + msg.Err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Appointment deleted"
		m.loading = true
		return m, tea.Batch(commands.LoadAppointmentsCmd(m.client, m.userID), m.spinner.Tick)

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

func (m AppointmentsModel) handleKey(msg tea.KeyMsg) (AppointmentsModel, tea.Cmd) {
	switch {
	case m.createOpen:
		return m.handleCreateKey(msg)
	case m.filtering:
		return m.handleFilterKey(msg)
	}

	switch msg.String() {
	case "r":
		m.loading = true
		m.status = ""
		return m, tea.Batch(commands.LoadAppointmentsCmd(m.client, m.userID), m.spinner.Tick)

	case "f":
		m.filtering = true
		m.dateFilter.Focus()
		return m, nil

	case "a":
		m.openCreate()
		return m, nil

	case "d":
		idx := m.table.Cursor()
		if idx < 0 || idx >= len(m.shown) {
			return m, nil
		}
		m.status = ""
		return m, commands.DeleteAppointmentCmd(m.client, m.shown[idx].ID)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m AppointmentsModel) handleFilterKey(msg tea.KeyMsg) (AppointmentsModel, tea.Cmd) {
	switch msg.String() {
	case tui.KeyEsc:
		m.filtering = false
		m.dateFilter.Blur()
		return m, nil

	case "ctrl+x":
		m.dateFilter.SetValue("")
		m.applyFilter()
		return m, nil

	case tui.KeyEnter:
		date := strings.TrimSpace(m.dateFilter.Value())
		if date != "" {
			if err := validation.ValidateDate(date); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
		}
		m.errMsg = ""
		m.filtering = false
		m.dateFilter.Blur()
		m.applyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.dateFilter, cmd = m.dateFilter.Update(msg)
	return m, cmd
}

// openCreate resets the dialog to a blank form so values from an
// earlier booking never leak into a new one.
func (m *AppointmentsModel) openCreate() {
	m.createOpen = true
	m.formErr = ""
	for i := range m.createForm {
		m.createForm[i].SetValue("")
	}
	m.setCreateFocus(0)
}

func (m AppointmentsModel) handleCreateKey(msg tea.KeyMsg) (AppointmentsModel, tea.Cmd) {
	switch msg.String() {
	case tui.KeyEsc:
		m.createOpen = false
		return m, nil

	case tui.KeyTab, tui.KeyDown:
		m.setCreateFocus((m.createFocus + 1) % apptFieldCount)
		return m, nil

	case tui.KeyUp:
		m.setCreateFocus((m.createFocus + apptFieldCount - 1) % apptFieldCount)
		return m, nil

	case tui.KeyEnter:
		appt := &api.Appointment{
			UserID:          m.userID,
			CustomerName:    strings.TrimSpace(m.createForm[apptFieldName].Value()),
			CustomerPhone:   strings.TrimSpace(m.createForm[apptFieldPhone].Value()),
			AppointmentDate: strings.TrimSpace(m.createForm[apptFieldDate].Value()),
			AppointmentTime: strings.TrimSpace(m.createForm[apptFieldTime].Value()),
			Notes:           strings.TrimSpace(m.createForm[apptFieldNotes].Value()),
		}
		if err := validation.ValidateAppointment(appt.CustomerName, appt.CustomerPhone, appt.AppointmentDate, appt.AppointmentTime); err != nil {
			m.formErr = err.Error()
			return m, nil
		}
		m.createOpen = false
		m.status = ""
		return m, commands.CreateAppointmentCmd(m.client, appt)
	}

	var cmd tea.Cmd
	m.createForm[m.createFocus], cmd = m.createForm[m.createFocus].Update(msg)
	return m, cmd
}

func (m *AppointmentsModel) setCreateFocus(idx int) {
	for i := range m.createForm {
		if i == idx {
			m.createForm[i].Focus()
		} else {
			m.createForm[i].Blur()
		}
	}
	m.createFocus = idx
}

// applyFilter recomputes the visible rows from the full list and the
// current date filter.
func (m *AppointmentsModel) applyFilter() {
	m.shown = api.FilterByDate(m.appts, strings.TrimSpace(m.dateFilter.Value()))
	rows := make([]table.Row, len(m.shown))
	for i, a := range m.shown {
		rows[i] = table.Row{a.CustomerName, a.CustomerPhone, a.AppointmentDate, a.AppointmentTime, a.Notes}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

// View renders the appointments screen.
func (m AppointmentsModel) View() string {
	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render("Appointments"))
	b.WriteString("\n\n")

	if m.createOpen {
		b.WriteString(tui.TitleStyle.Render("New appointment"))
		b.WriteString("\n")
		if m.formErr != "" {
			b.WriteString(tui.ErrorStyle.Render(m.formErr))
			b.WriteString("\n")
		}
		for i := range m.createForm {
			b.WriteString(m.createForm[i].View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(tui.DimStyle.Render("Enter: Create · Esc: Cancel"))
		return tui.BoxStyle.Render(b.String())
	}

	if m.errMsg != "" {
		b.WriteString(tui.ErrorStyle.Render(m.errMsg))
		b.WriteString("\n\n")
	} else if m.status != "" {
		b.WriteString(tui.SuccessStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	if m.filtering {
		b.WriteString(tui.LabelStyle.Render("Filter by date: "))
		b.WriteString(m.dateFilter.View())
		b.WriteString("\n")
		b.WriteString(tui.DimStyle.Render("Enter: Apply · Ctrl+X: Clear · Esc: Close"))
		b.WriteString("\n\n")
	} else if f := strings.TrimSpace(m.dateFilter.Value()); f != "" {
		b.WriteString(tui.DimStyle.Render("Showing " + f))
		b.WriteString("\n\n")
	}

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading appointments...")
	} else if len(m.shown) == 0 {
		b.WriteString(tui.DimStyle.Render("No appointments found"))
	} else {
		b.WriteString(m.table.View())
	}

	b.WriteString("\n\n")
	b.WriteString(tui.DimStyle.Render("a: New · d: Delete · f: Filter by date · r: Refresh"))
	return tui.BoxStyle.Render(b.String())
}
