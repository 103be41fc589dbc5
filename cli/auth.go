package cli

import (
	"errors"
	"fmt"
	"io"

	"vaxbook/services/session"
	"vaxbook/services/validation"

	"github.com/spf13/cobra"
)

func (a *app) loginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.client.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			return a.emit(s.Claims, func(w io.Writer) {
				fmt.Fprintf(w, "Logged in as %s <%s>\n", s.Claims.Name, s.Claims.Email)
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func (a *app) registerCmd() *cobra.Command {
	var name, email, password, confirm string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a customer account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validation.ValidateRegistration(name, email, password, confirm); err != nil {
				return err
			}
			res, err := a.client.Register(cmd.Context(), name, email, password)
			if err != nil {
				return err
			}
			return a.emit(res, func(w io.Writer) {
				fmt.Fprintln(w, "Account created. Log in with `vaxbook login`.")
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&confirm, "confirm", "", "repeat the password")
	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.client.Session().Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(a.out(), "Logged out.")
			return nil
		},
	}
}

func (a *app) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.client.Session().Current(cmd.Context())
			if errors.Is(err, session.ErrNoSession) {
				return errors.New("not logged in, run `vaxbook login`")
			}
			if err != nil {
				return err
			}
			return a.emit(s.Claims, func(w io.Writer) {
				fmt.Fprintf(w, "%s <%s>", s.Claims.Name, s.Claims.Email)
				if s.Claims.Role != "" {
					fmt.Fprintf(w, " (%s)", s.Claims.Role)
				}
				fmt.Fprintln(w)
			})
		},
	}
}
