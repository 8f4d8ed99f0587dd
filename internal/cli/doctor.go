// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-acervo/internal/store"
)

// Problem is one finding of the doctor command.
type Problem struct {
	Subject string `json:"subject"`
	Issue   string `json:"issue"`
}

// DoctorReport is the doctor command result.
type DoctorReport struct {
	Users    int       `json:"users"`
	Records  int       `json:"records"`
	Images   int       `json:"images"`
	Problems []Problem `json:"problems"`
}

// NewDoctorCommand creates the doctor command.
func NewDoctorCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the stores for damage",
		Long: `Check that the shared document parses, that the record store of every
account loads, that every referenced image exists and that every group
member has an account. Exits with an error when anything is wrong.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, rootOpts, runDoctor)
		},
	}
}

func runDoctor(ctx context.Context, e *env) error {
	report := diagnose(ctx, e.storages)

	err := e.out.result(report, func() {
		e.out.line("%d users, %d records, %d images checked", report.Users, report.Records, report.Images)
		if len(report.Problems) == 0 {
			e.out.line("no problems found")
			return
		}
		rows := make([][]string, 0, len(report.Problems))
		for _, p := range report.Problems {
			rows = append(rows, []string{p.Subject, p.Issue})
		}
		e.out.table([]string{"SUBJECT", "ISSUE"}, rows)
	})
	if err != nil {
		return err
	}

	if len(report.Problems) > 0 {
		return fmt.Errorf("%w: %d", ErrProblemsFound, len(report.Problems))
	}
	return nil
}

// diagnose never stops at the first finding. A corrupt document ends the
// run early since nothing else can be listed without it.
func diagnose(ctx context.Context, s *store.Storages) DoctorReport {
	report := DoctorReport{Problems: []Problem{}}
	add := func(subject, format string, args ...any) {
		report.Problems = append(report.Problems, Problem{Subject: subject, Issue: fmt.Sprintf(format, args...)})
	}

	users, err := s.UserRepository.ListUsers(ctx)
	if err != nil {
		add("document", "%v", err)
		return report
	}
	report.Users = len(users)

	if cookie, err := s.UserRepository.CookieSettings(ctx); err == nil && !cookie.HasUsableKey() {
		add("document", "session signing key is missing or public; the server replaces it on start")
	}

	known := make(map[string]bool, len(users))
	for _, u := range users {
		known[u.Username] = true

		records, err := s.RecordRepository.Load(ctx, u.Username)
		if err != nil {
			add("records of "+u.Username, "%v", err)
			continue
		}
		report.Records += len(records)

		for _, r := range records {
			if !r.HasImage() {
				continue
			}
			report.Images++

			rc, err := s.ImageStorage.Open(ctx, r.ImagePath)
			if err != nil {
				if errors.Is(err, store.ErrImageNotFound) {
					add("image "+r.ImagePath, "missing, referenced by %s record %s", u.Username, r.ID)
				} else {
					add("image "+r.ImagePath, "%v", err)
				}
				continue
			}
			rc.Close()
		}
	}

	groups, err := s.MembershipRepository.ListGroups(ctx)
	if err != nil {
		add("groups", "%v", err)
		return report
	}
	for _, g := range groups {
		for _, member := range g.Members {
			if !known[member] {
				add("group "+g.Name, "member %s has no account", member)
			}
		}
	}

	return report
}
