package api

import (
	"context"
	"net/url"
)

// ListAppointments fetches all of the user's appointments. Date
// filtering is applied client-side; see FilterByDate.
func (c *Client) ListAppointments(ctx context.Context, userID string) ([]Appointment, error) {
	var appts []Appointment
	if err := c.getJSON(ctx, "/appointments/"+url.PathEscape(userID), nil, &appts); err != nil {
		return nil, c.fail("list_appointments", err)
	}
	return appts, nil
}

// CreateAppointment books a new appointment.
func (c *Client) CreateAppointment(ctx context.Context, appt *Appointment) (*Appointment, error) {
	var created Appointment
	if err := c.postJSON(ctx, "/appointments", appt, &created); err != nil {
		return nil, c.fail("create_appointment", err)
	}
	return &created, nil
}

// DeleteAppointment removes an appointment by id.
func (c *Client) DeleteAppointment(ctx context.Context, id string) error {
	if err := c.delete(ctx, "/appointments/"+url.PathEscape(id)); err != nil {
		return c.fail("delete_appointment", err)
	}
	return nil
}

// FilterByDate returns the appointments whose AppointmentDate equals
// date exactly (YYYY-MM-DD string comparison, no timezone conversion).
// An empty date returns the input unfiltered.
func FilterByDate(appts []Appointment, date string) []Appointment {
	if date == "" {
		return appts
	}
	filtered := make([]Appointment, 0, len(appts))
	for _, a := range appts {
		if a.AppointmentDate == date {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
