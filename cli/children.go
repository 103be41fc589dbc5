package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"vaxbook/models"

	"github.com/spf13/cobra"
)

type childFlags struct {
	name, dob, gender, history string
}

func (f *childFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "child's name")
	cmd.Flags().StringVar(&f.dob, "dob", "", "date of birth, DD/MM/YYYY")
	cmd.Flags().StringVar(&f.gender, "gender", "", "gender (male/female, Nam/Nữ)")
	cmd.Flags().StringVar(&f.history, "history", "", "medical history")
}

// overlay fills draft fields with the flags that were set.
func (f *childFlags) overlay(draft models.NewChild) models.NewChild {
	if f.name != "" {
		draft.Name = f.name
	}
	if f.dob != "" {
		draft.BirthDate = f.dob
	}
	if f.gender != "" {
		draft.Gender = models.Gender(f.gender)
	}
	if f.history != "" {
		draft.MedicalHistory = f.history
	}
	return draft
}

func (a *app) childrenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "children",
		Short: "Manage child profiles",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List your children",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			children, err := a.client.ListChildren(cmd.Context())
			if err != nil {
				return err
			}
			return a.emit(children, func(w io.Writer) {
				if len(children) == 0 {
					fmt.Fprintln(w, "No child profiles yet.")
					return
				}
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tBORN\tGENDER")
				for _, c := range children {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.ID, c.Name, c.DateOfBirth, c.Gender)
				}
				tw.Flush()
			})
		},
	}

	var addFlags childFlags
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a child profile; missing fields come from the saved draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			draft, err := a.client.Session().ChildDraft(ctx)
			if err != nil {
				return err
			}
			in := models.NewChild{}
			if draft != nil {
				in = *draft
			}
			in = addFlags.overlay(in)

			child, err := a.client.AddChild(ctx, in)
			if err != nil {
				return err
			}
			if draft != nil {
				if err := a.client.Session().ClearChildDraft(ctx); err != nil {
					return err
				}
			}
			return a.emit(child, func(w io.Writer) {
				fmt.Fprintf(w, "Added %s (%s)\n", child.Name, child.ID)
			})
		},
	}
	addFlags.register(add)

	var draftFlags childFlags
	var discard bool
	draft := &cobra.Command{
		Use:   "draft",
		Short: "Save or show an unsent child profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			mgr := a.client.Session()
			if discard {
				if err := mgr.ClearChildDraft(ctx); err != nil {
					return err
				}
				fmt.Fprintln(a.out(), "Draft cleared.")
				return nil
			}
			current, err := mgr.ChildDraft(ctx)
			if err != nil {
				return err
			}
			d := models.NewChild{}
			if current != nil {
				d = *current
			}
			d = draftFlags.overlay(d)
			if d != (models.NewChild{}) {
				if err := mgr.SaveChildDraft(ctx, d); err != nil {
					return err
				}
			}
			return a.emit(d, func(w io.Writer) {
				fmt.Fprintf(w, "Name:    %s\nBorn:    %s\nGender:  %s\nHistory: %s\n", d.Name, d.BirthDate, d.Gender, d.MedicalHistory)
			})
		},
	}
	draftFlags.register(draft)
	draft.Flags().BoolVar(&discard, "clear", false, "discard the saved draft")

	cmd.AddCommand(list, add, draft)
	return cmd
}
