package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/SscSPs/bank_portal/internal/apperrors"
	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *cli) newLoginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the core banking API",
		Long: `Log in and keep the session for later commands.

The password is taken from --password, then BANKCTL_PASSWORD, and is
read from standard input when neither is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv("BANKCTL_PASSWORD")
			}
			if password == "" {
				fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("failed to read password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}

			ctx, cancel := c.context(cmd)
			defer cancel()

			a := c.app
			sess, err := a.svc.Session.Login(ctx, domain.Credentials{Username: username, Password: password})
			if err != nil {
				if errors.Is(err, apperrors.ErrUnauthorized) || errors.Is(err, apperrors.ErrValidation) {
					return errors.New(apperrors.Message(err, "invalid username or password"))
				}
				return a.explain(err)
			}
			if err := a.state.Set(sess.ID); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Logged in as %s\n", sess.User.DisplayName())
			if layout, ok := domain.LayoutFor(sess.Roles()); ok {
				fmt.Fprintf(out, "Dashboard: %s\n", layout.DashboardPath())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func (c *cli) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			a := c.app
			if id := a.state.SessionID(); id != "" {
				if err := a.svc.Session.Logout(ctx, id); err != nil {
					return a.explain(err)
				}
			}
			if err := a.state.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func (c *cli) newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			a := c.app
			sess, err := a.session(ctx)
			if err != nil {
				return err
			}
			sess, err = a.svc.Session.RefreshIdentity(ctx, sess)
			if err != nil {
				return a.explain(err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", sess.User.DisplayName(), sess.User.Username)
			if sess.User.Email != "" {
				fmt.Fprintf(out, "Email: %s\n", sess.User.Email)
			}
			roles := make([]string, 0, len(sess.User.Roles))
			for _, r := range sess.Roles().Sorted() {
				roles = append(roles, string(r))
			}
			fmt.Fprintf(out, "Roles: %s\n", strings.Join(roles, ", "))
			fmt.Fprintf(out, "Session expires: %s\n", sess.ExpiresAt.Local().Format("2006-01-02 15:04"))
			return nil
		},
	}
}

func (c *cli) newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Show the navigation menu for your roles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			a := c.app
			sess, err := a.session(ctx)
			if err != nil {
				return err
			}
			menu, err := a.svc.Navigation.Menu(ctx, sess)
			if errors.Is(err, apperrors.ErrIdentityUnresolved) {
				fmt.Fprintln(cmd.OutOrStdout(), "Loading...")
				return nil
			}
			if err != nil {
				return a.explain(err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s menu\n", menu.Layout)
			for _, item := range menu.Items {
				fmt.Fprintf(out, "  %-24s %s\n", item.Label, item.Path)
			}
			return nil
		},
	}
}
