// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/MKhiriev/go-acervo/internal/validators"
	"github.com/MKhiriev/go-acervo/models"
)

// NewAdminCommand creates the admin command group.
func NewAdminCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage the administrator account",
	}

	var fromStdin bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create the administrator account or reset its password",
		Long: `Create the "admin" account, or replace its password when it exists.

The password is read twice from the terminal. With --password-stdin it is
read once from the first line of standard input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd, fromStdin)
			if err != nil {
				return err
			}
			return withEnv(cmd, rootOpts, func(ctx context.Context, e *env) error {
				return runAdminInit(ctx, e, password)
			})
		},
	}
	initCmd.Flags().BoolVar(&fromStdin, "password-stdin", false, "read the password from standard input")
	cmd.AddCommand(initCmd)

	return cmd
}

func runAdminInit(ctx context.Context, e *env, password string) error {
	created, err := e.services.AuthService.SetAdminPassword(ctx, password)
	if err != nil {
		return fmt.Errorf("error setting admin password: %w", err)
	}

	return e.out.result(map[string]bool{"created": created}, func() {
		if created {
			e.out.line("admin account created")
			return
		}
		e.out.line("admin password updated")
	})
}

// readPassword returns a password that passes the registration rules.
func readPassword(cmd *cobra.Command, fromStdin bool) (string, error) {
	var user models.User

	if fromStdin {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("error reading password: %w", err)
		}
		user.Password = strings.TrimRight(line, "\r\n")
		user.PasswordConfirm = user.Password
	} else {
		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			return "", fmt.Errorf("%w: use --password-stdin", ErrNoTerminal)
		}

		var err error
		if user.Password, err = prompt(cmd, fd, "New admin password: "); err != nil {
			return "", err
		}
		if user.PasswordConfirm, err = prompt(cmd, fd, "Repeat password: "); err != nil {
			return "", err
		}
	}

	err := validators.NewUserValidator().Validate(cmd.Context(), user, validators.FieldPassword, validators.FieldPasswordConfirm)
	if err != nil {
		return "", err
	}

	return user.Password, nil
}

func prompt(cmd *cobra.Command, fd int, label string) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), label)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("error reading password: %w", err)
	}
	return string(b), nil
}
