package cli

import (
	"fmt"
	"io"
	"strings"

	"vaxbook/models"
	"vaxbook/services/catalog"

	"github.com/spf13/cobra"
)

func (a *app) supportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "support",
		Short: "Show support contact details",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			contact := catalog.SupportContact()
			return a.emit(contact, func(w io.Writer) {
				fmt.Fprintf(w, "Hotline: %s\nEmail:   %s\n", contact.Hotline, contact.Email)
			})
		},
	}
}

func (a *app) guideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide",
		Short: "Show the vaccination guide",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			content := struct {
				Guides    []models.VaccinationGuide `json:"guides"`
				Schedule  []models.ScheduleEntry    `json:"schedule"`
				Tips      []string                  `json:"tips"`
				Emergency string                    `json:"emergency"`
				MoreInfo  string                    `json:"moreInfo"`
			}{
				Guides:    catalog.VaccinationGuides(),
				Schedule:  catalog.VaccinationSchedule(),
				Tips:      catalog.ParentTips(),
				Emergency: catalog.EmergencyNumber,
				MoreInfo:  catalog.GuideURL,
			}
			return a.emit(content, func(w io.Writer) {
				for _, g := range content.Guides {
					fmt.Fprintf(w, "%s\n  %s\n", g.Title, g.Description)
					for _, d := range g.Details {
						fmt.Fprintf(w, "  • %s\n", d)
					}
					fmt.Fprintln(w)
				}
				fmt.Fprintln(w, "Lịch tiêm chủng cơ bản")
				for _, e := range content.Schedule {
					fmt.Fprintf(w, "  %-10s %s\n", e.Age, strings.Join(e.Vaccines, ", "))
				}
				fmt.Fprintln(w)
				for _, tip := range content.Tips {
					fmt.Fprintf(w, "  • %s\n", tip)
				}
				fmt.Fprintf(w, "\nCấp cứu: %s\nTìm hiểu thêm: %s\n", content.Emergency, content.MoreInfo)
			})
		},
	}
}
