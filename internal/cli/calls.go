// calls.go implements the "voxboard calls" command group: list, dial,
// and notes.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voxboard-dev/voxboard/internal/api"
	"github.com/voxboard-dev/voxboard/pkg/validation"
)

var callFilterFlags struct {
	startDate string
	endDate   string
	status    string
	phone     string
}

var callsCmd = &cobra.Command{
	Use:   "calls",
	Short: "Work with call history",
}

var callsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List call logs",
	RunE:  runCallsList,
}

var callsDialCmd = &cobra.Command{
	Use:   "dial <number>",
	Short: "Place an outbound call",
	Args:  cobra.ExactArgs(1),
	RunE:  runCallsDial,
}

var callsNotesCmd = &cobra.Command{
	Use:   "notes <call-sid> <notes...>",
	Short: "Attach notes to a call",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runCallsNotes,
}

func init() {
	callsListCmd.Flags().StringVar(&callFilterFlags.startDate, "start", "", "Earliest date (YYYY-MM-DD)")
	callsListCmd.Flags().StringVar(&callFilterFlags.endDate, "end", "", "Latest date (YYYY-MM-DD)")
	callsListCmd.Flags().StringVar(&callFilterFlags.status, "status", "", "Call status")
	callsListCmd.Flags().StringVar(&callFilterFlags.phone, "phone", "", "Caller number")

	callsCmd.AddCommand(callsListCmd)
	callsCmd.AddCommand(callsDialCmd)
	callsCmd.AddCommand(callsNotesCmd)
}

func runCallsList(cmd *cobra.Command, args []string) error {
	for _, date := range []string{callFilterFlags.startDate, callFilterFlags.endDate} {
		if date != "" {
			if err := validation.ValidateDate(date); err != nil {
				return err
			}
		}
	}

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

	logs, err := d.client.ListCallLogs(ctx, sess.UserID, api.CallFilters{
		StartDate:   callFilterFlags.startDate,
		EndDate:     callFilterFlags.endDate,
		Status:      callFilterFlags.status,
		PhoneNumber: callFilterFlags.phone,
	})
	if err != nil {
		return err
	}

	if len(logs) == 0 {
		fmt.Println("No calls found")
		return nil
	}

	fmt.Printf("%-36s  %-16s  %-16s  %6s  %-24s  %s\n",
		"SID", "From", "To", "Secs", "Started", "Status")
	for _, c := range logs {
		sid := c.CallSID
		if sid == "" {
			sid = c.ID
		}
		fmt.Printf("%-36s  %-16s  %-16s  %6d  %-24s  %s\n",
			sid, c.From(), c.ToNumber, c.Duration, c.Started(), c.Status)
	}
	return nil
}

func runCallsDial(cmd *cobra.Command, args []string) error {
	number := strings.TrimSpace(args[0])
	if err := validation.ValidatePhone(number); err != nil {
		return err
	}

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

	if err := d.client.DialOutbound(ctx, sess.UserID, number); err != nil {
		return err
	}
	fmt.Printf("Calling %s\n", number)
	return nil
}

func runCallsNotes(cmd *cobra.Command, args []string) error {
	callSID := args[0]
	notes := strings.Join(args[1:], " ")

	d, err := buildDeps()
	if err != nil {
		return err
	}
	defer d.Close()

	ctx := context.Background()
	if _, err := d.requireSession(ctx); err != nil {
		return err
	}

	if err := d.client.SaveCallNotes(ctx, callSID, notes); err != nil {
		return err
	}
	fmt.Println("Notes saved")
	return nil
}
