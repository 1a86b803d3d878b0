// appointments.go implements the "voxboard appointments" command
// group: list, create, and delete.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voxboard-dev/voxboard/internal/api"
	"github.com/voxboard-dev/voxboard/pkg/validation"
)

var apptFlags struct {
	date  string
	name  string
	phone string
	time  string
	notes string
}

var appointmentsCmd = &cobra.Command{
	Use:     "appointments",
	Aliases: []string{"appts"},
	Short:   "Work with appointments",
}

var appointmentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List appointments",
	RunE:  runAppointmentsList,
}

var appointmentsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Book a new appointment",
	RunE:  runAppointmentsCreate,
}

var appointmentsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Cancel an appointment",
	Args:  cobra.ExactArgs(1),
	RunE:  runAppointmentsDelete,
}

func init() {
	appointmentsListCmd.Flags().StringVar(&apptFlags.date, "date", "", "Show only this date (YYYY-MM-DD)")

	appointmentsCreateCmd.Flags().StringVar(&apptFlags.name, "name", "", "Customer name")
	appointmentsCreateCmd.Flags().StringVar(&apptFlags.phone, "phone", "", "Customer phone")
	appointmentsCreateCmd.Flags().StringVar(&apptFlags.date, "date", "", "Date (YYYY-MM-DD)")
	appointmentsCreateCmd.Flags().StringVar(&apptFlags.time, "time", "", "Time (HH:MM)")
	appointmentsCreateCmd.Flags().StringVar(&apptFlags.notes, "notes", "", "Notes")

	appointmentsCmd.AddCommand(appointmentsListCmd)
	appointmentsCmd.AddCommand(appointmentsCreateCmd)
	appointmentsCmd.AddCommand(appointmentsDeleteCmd)
}

func runAppointmentsList(cmd *cobra.Command, args []string) error {
	if apptFlags.date != "" {
		if err := validation.ValidateDate(apptFlags.date); err != nil {
			return err
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

	appts, err := d.client.ListAppointments(ctx, sess.UserID)
	if err != nil {
		return err
	}
	appts = api.FilterByDate(appts, apptFlags.date)

	if len(appts) == 0 {
		fmt.Println("No appointments found")
		return nil
	}

	fmt.Printf("%-36s  %-20s  %-16s  %-10s  %-8s  %s\n",
		"ID", "Customer", "Phone", "Date", "Time", "Notes")
	for _, a := range appts {
		fmt.Printf("%-36s  %-20s  %-16s  %-10s  %-8s  %s\n",
			a.ID, a.CustomerName, a.CustomerPhone, a.AppointmentDate, a.AppointmentTime, a.Notes)
	}
	return nil
}

func runAppointmentsCreate(cmd *cobra.Command, args []string) error {
	if err := validation.ValidateAppointment(apptFlags.name, apptFlags.phone, apptFlags.date, apptFlags.time); err != nil {
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

	created, err := d.client.CreateAppointment(ctx, &api.Appointment{
		UserID:          sess.UserID,
		CustomerName:    apptFlags.name,
		CustomerPhone:   apptFlags.phone,
		AppointmentDate: apptFlags.date,
		AppointmentTime: apptFlags.time,
		Notes:           apptFlags.notes,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created appointment %s for %s on %s %s\n",
		created.ID, created.CustomerName, created.AppointmentDate, created.AppointmentTime)
	return nil
}

func runAppointmentsDelete(cmd *cobra.Command, args []string) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}
	defer d.Close()

	ctx := context.Background()
	if _, err := d.requireSession(ctx); err != nil {
		return err
	}

	if err := d.client.DeleteAppointment(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println("Appointment deleted")
	return nil
}
