// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-acervo/internal/store"
	"github.com/MKhiriev/go-acervo/models"
)

// NewGroupsCommand creates the groups command group.
func NewGroupsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Inspect groups",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every group with its members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, rootOpts, runGroupsList)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show <group>",
		Short: "Show the members of a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, rootOpts, func(ctx context.Context, e *env) error {
				return runGroupsShow(ctx, e, strings.TrimSpace(args[0]))
			})
		},
	})

	return cmd
}

func runGroupsList(ctx context.Context, e *env) error {
	groups, err := e.services.GroupService.ListGroups(ctx)
	if err != nil {
		return fmt.Errorf("error listing groups: %w", err)
	}
	if groups == nil {
		groups = []models.Group{}
	}

	return e.out.result(groups, func() {
		if len(groups) == 0 {
			e.out.line("no groups")
			return
		}
		rows := make([][]string, 0, len(groups))
		for _, g := range groups {
			rows = append(rows, []string{g.Name, strconv.Itoa(len(g.Members)), strings.Join(g.Members, ", ")})
		}
		e.out.table([]string{"GROUP", "SIZE", "MEMBERS"}, rows)
	})
}

func runGroupsShow(ctx context.Context, e *env, name string) error {
	groups, err := e.services.GroupService.ListGroups(ctx)
	if err != nil {
		return fmt.Errorf("error listing groups: %w", err)
	}

	var group *models.Group
	for i := range groups {
		if groups[i].Name == name {
			group = &groups[i]
			break
		}
	}
	if group == nil {
		return fmt.Errorf("%w: %s", store.ErrGroupNotFound, name)
	}

	users, err := e.services.AdminService.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("error listing users: %w", err)
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.Username] = u.Name
	}

	members := make([]models.Member, 0, len(group.Members))
	for _, username := range group.Members {
		members = append(members, models.Member{Username: username, Name: names[username]})
	}

	return e.out.result(members, func() {
		e.out.line("group %s", group.Name)
		rows := make([][]string, 0, len(members))
		for _, m := range members {
			rows = append(rows, []string{m.Username, m.Name})
		}
		e.out.table([]string{"USERNAME", "NAME"}, rows)
	})
}
