package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voxboard-dev/voxboard/internal/api"
	"github.com/voxboard-dev/voxboard/internal/tui"
)

// LoadAppointmentsCmd fetches the full appointment list. Date
// filtering happens client-side in the view.
func LoadAppointmentsCmd(client *api.Client, userID string) tea.Cmd {
	return func() tea.Msg {
		appts, err := client.ListAppointments(context.Background(), userID)
		return tui.AppointmentsLoadedMsg{Appts: appts, Err: err}
	}
}

// CreateAppointmentCmd books a new appointment.
func CreateAppointmentCmd(client *api.Client, appt *api.Appointment) tea.Cmd {
	return func() tea.Msg {
		_, err := client.CreateAppointment(context.Background(), appt)
		return tui.AppointmentSavedMsg{Err: err}
	}
}

// DeleteAppointmentCmd removes an appointment.
func DeleteAppointmentCmd(client *api.Client, id string) tea.Cmd {
	return func() tea.Msg {
		return tui.AppointmentDeletedMsg{Err: client.DeleteAppointment(context.Background(), id)}
	}
}
