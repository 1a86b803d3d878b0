// summary.go implements the "voxboard summary" command printing the
// dashboard aggregate.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the dashboard summary",
	Long: `Print call and appointment counts, integration readiness, and
recent activity. When the summary endpoint is unavailable this shows
example data and says so; it never fails.`,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}
	defer d.Close()

	ctx := context.Background()
	sess, err := d.requireSession(ctx)
	if err != nil {
		return err
	}

	res := d.client.GetSummary(ctx, sess.UserID)
	s := res.Summary

	fmt.Printf("Calls today:            %d\n", s.CallsToday)
	fmt.Printf("Calls this month:       %d\n", s.CallsThisMonth)
	fmt.Printf("Appointments today:     %d\n", s.AppointmentsToday)
	fmt.Printf("Upcoming appointments:  %d\n", s.UpcomingAppointments)
	fmt.Printf("Knowledge bases:        %d\n", s.KnowledgeBaseCount)
	fmt.Printf("Scripts:                %d\n", s.ScriptCount)
	fmt.Println()
	fmt.Printf("Twilio:   %s\n", readiness(s.TwilioConfigured))
	fmt.Printf("LLM:      %s\n", readiness(s.LLMConfigured))
	fmt.Printf("Deepgram: %s\n", readiness(s.DeepgramConfigured))

	if len(s.RecentCalls) > 0 {
		fmt.Println()
		fmt.Println("Recent calls:")
		for _, c := range s.RecentCalls {
			fmt.Printf("  %-16s  %4ds  %s\n", c.FromNumber, c.Duration, c.StartedAt)
		}
	}
	if len(s.RecentAppointments) > 0 {
		fmt.Println()
		fmt.Println("Recent appointments:")
		for _, a := range s.RecentAppointments {
			fmt.Printf("  %-20s  %s %s\n", a.CustomerName, a.AppointmentDate, a.AppointmentTime)
		}
	}

	if res.Degraded {
		fmt.Println()
		if res.SchemaMismatch() {
			fmt.Println("Note: showing example data; the summary endpoint reports a schema mismatch.")
		} else {
			fmt.Println("Note: showing example data; the summary endpoint is unavailable.")
		}
	}
	return nil
}

func readiness(ok bool) string {
	if ok {
		return "configured"
	}
	return "not configured"
}
