package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"vaxbook/models"
	"vaxbook/services/catalog"

	"github.com/spf13/cobra"
)

func (a *app) vaccinesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vaccines",
		Short: "Browse the vaccine catalogue",
	}

	var search string
	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List vaccines, optionally filtered by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, err := a.client.ListVaccines(cmd.Context())
			if err != nil {
				return err
			}
			shown := catalog.FilterVaccines(all, search, limit)
			return a.emit(shown, func(w io.Writer) {
				if len(shown) == 0 {
					fmt.Fprintln(w, "No vaccines found.")
					return
				}
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tPRICE\tAGE")
				for _, v := range shown {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", v.ID, v.Name, catalog.FormatPrice(v.Price), v.AgeRange)
				}
				tw.Flush()
			})
		},
	}
	list.Flags().StringVarP(&search, "search", "s", "", "filter by name")
	list.Flags().IntVarP(&limit, "limit", "n", 0, fmt.Sprintf("maximum results, 0 for all (the home screen shows %d)", catalog.HomeLimit))

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one vaccine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.client.GetVaccine(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.emit(v, func(w io.Writer) { printVaccine(w, v) })
		},
	}

	cmd.AddCommand(list, get)
	return cmd
}

func printVaccine(w io.Writer, v *models.Vaccine) {
	fmt.Fprintf(w, "%s\n", v.Name)
	fmt.Fprintf(w, "  ID:    %s\n", v.ID)
	fmt.Fprintf(w, "  Price: %s\n", catalog.FormatPrice(v.Price))
	if v.AgeRange != "" {
		fmt.Fprintf(w, "  Age:   %s\n", v.AgeRange)
	}
	if v.Description != "" {
		fmt.Fprintf(w, "  %s\n", v.Description)
	}
	if v.Image != "" {
		fmt.Fprintf(w, "  Image: %s\n", v.Image)
	}
}
