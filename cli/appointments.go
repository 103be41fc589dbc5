package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"vaxbook/models"
	"vaxbook/services/catalog"

	"github.com/spf13/cobra"
)

const displayLayout = "02/01/2006 15:04"

func (a *app) appointmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "appointments",
		Aliases: []string{"history"},
		Short:   "Book, list and cancel vaccinations",
	}

	var upcoming bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List your appointments, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, err := a.client.ListAppointments(cmd.Context())
			if err != nil {
				return err
			}
			shown := catalog.SortAppointments(all)
			if upcoming {
				shown = catalog.Upcoming(all, time.Now())
			}
			return a.emit(shown, func(w io.Writer) { printAppointments(w, shown) })
		},
	}
	list.Flags().BoolVar(&upcoming, "upcoming", false, "only pending or confirmed appointments in the future")

	var childID, vaccineID, date, clock string
	book := &cobra.Command{
		Use:   "book",
		Short: "Book a vaccination (08:00-17:00)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			appt, err := a.client.BookAppointmentAt(cmd.Context(), childID, vaccineID, date, clock)
			if err != nil {
				return err
			}
			return a.emit(appt, func(w io.Writer) {
				fmt.Fprintf(w, "Booked %s for %s (status %s)\n", appt.ID, appt.Date.Format(displayLayout), appt.Status)
			})
		},
	}
	book.Flags().StringVar(&childID, "child", "", "child id")
	book.Flags().StringVar(&vaccineID, "vaccine", "", "vaccine id")
	book.Flags().StringVar(&date, "date", "", "date, DD/MM/YYYY")
	book.Flags().StringVar(&clock, "time", "", "time, HH:MM")

	cancel := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a pending appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appt, err := a.client.CancelAppointment(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.emit(appt, func(w io.Writer) {
				fmt.Fprintf(w, "Appointment %s is now %s\n", appt.ID, appt.Status)
			})
		},
	}

	cmd.AddCommand(list, book, cancel)
	return cmd
}

func printAppointments(w io.Writer, list []models.Appointment) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No appointments.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCHILD\tVACCINE\tDATE (UTC)\tSTATUS")
	for _, appt := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", appt.ID, appt.ChildName(), appt.VaccineName(), appt.Date.Format(displayLayout), appt.Status)
	}
	tw.Flush()
}
