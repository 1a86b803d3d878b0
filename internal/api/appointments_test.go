package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestFilterByDateExactMatch(t *testing.T) {
	appts := []Appointment{
		{ID: "a1", CustomerName: "Ann", AppointmentDate: "2024-01-01"},
		{ID: "a2", CustomerName: "Ben", AppointmentDate: "2024-01-02"},
	}

	got := FilterByDate(appts, "2024-01-01")
	if len(got) != 1 || got[0].ID != "a1" {
		t.Errorf("FilterByDate: got %+v, want only a1", got)
	}

	// No partial or prefix matching.
	if got := FilterByDate(appts, "2024-01"); len(got) != 0 {
		t.Errorf("prefix date must not match, got %+v", got)
	}
}

func TestFilterByDateEmptyFilter(t *testing.T) {
	appts := []Appointment{
		{ID: "a1", AppointmentDate: "2024-01-01"},
		{ID: "a2", AppointmentDate: "2024-01-02"},
	}
	if got := FilterByDate(appts, ""); len(got) != 2 {
		t.Errorf("empty filter should return all appointments, got %d", len(got))
	}
}

func TestCreateAppointmentPostsFullRecord(t *testing.T) {
	var got Appointment
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"id":"new-1","customerName":"Ann"}`))
	}))

	created, err := client.CreateAppointment(context.Background(), &Appointment{
		UserID:          "u1",
		CustomerName:    "Ann",
		CustomerPhone:   "+15551230000",
		AppointmentDate: "2024-05-01",
		AppointmentTime: "09:30",
	})
	if err != nil {
		t.Fatalf("CreateAppointment failed: %v", err)
	}
	if got.CustomerName != "Ann" || got.AppointmentDate != "2024-05-01" {
		t.Errorf("posted appointment: got %+v", got)
	}
	if created.ID != "new-1" {
		t.Errorf("created id: got %q", created.ID)
	}
}

func TestListAppointmentsPath(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	}))

	if _, err := client.ListAppointments(context.Background(), "u1"); err != nil {
		t.Fatalf("ListAppointments failed: %v", err)
	}
	if gotPath != "/appointments/u1" {
		t.Errorf("path: got %q", gotPath)
	}
}
