// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-acervo/models"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List and delete accounts",
	}

	cmd.AddCommand(newUsersListCommand(rootOpts))
	cmd.AddCommand(newUsersDeleteCommand(rootOpts))

	return cmd
}

func newUsersListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, rootOpts, runUsersList)
		},
	}
}

func runUsersList(ctx context.Context, e *env) error {
	users, err := e.services.AdminService.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("error listing users: %w", err)
	}
	if users == nil {
		users = []models.User{}
	}

	return e.out.result(users, func() {
		if len(users) == 0 {
			e.out.line("no users")
			return
		}
		rows := make([][]string, 0, len(users))
		for _, u := range users {
			rows = append(rows, []string{u.Username, u.Name, u.Email})
		}
		e.out.table([]string{"USERNAME", "NAME", "EMAIL"}, rows)
	})
}

func newUsersDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <username>",
		Short: "Delete an account with its records, images and memberships",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := strings.ToLower(strings.TrimSpace(args[0]))
			if !yes {
				ok, err := confirm(cmd, fmt.Sprintf("Delete user %q and all of their records?", username))
				if err != nil {
					return err
				}
				if !ok {
					return ErrAborted
				}
			}

			return withEnv(cmd, rootOpts, func(ctx context.Context, e *env) error {
				if err := e.services.AdminService.DeleteUser(ctx, username); err != nil {
					return fmt.Errorf("error deleting user %q: %w", username, err)
				}
				return e.out.result(map[string]string{"deleted": username}, func() {
					e.out.line("user %s deleted", username)
				})
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	return cmd
}

// confirm asks a yes/no question on stderr and reads the answer from the
// command input. Anything but y or yes is a no.
func confirm(cmd *cobra.Command, question string) (bool, error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "%s [y/N]: ", question)

	answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && answer == "" {
		return false, nil
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "s", "sim":
		return true, nil
	default:
		return false, nil
	}
}
