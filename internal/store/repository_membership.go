// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"sort"

	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/MKhiriev/go-acervo/models"
)

// membershipRepository is the [MembershipRepository] over the "grupos" and
// "convites" sections of the shared configuration document.
//
// Group names reaching this layer are already normalized.
type membershipRepository struct {
	logger *logger.Logger
	doc    *DocumentStore
}

// NewMembershipRepository constructs a [MembershipRepository] backed by doc.
func NewMembershipRepository(doc *DocumentStore, logger *logger.Logger) MembershipRepository {
	logger.Debug().Msg("creating membership repository")
	return &membershipRepository{
		doc:    doc,
		logger: logger,
	}
}

// CreateGroup creates group with creator as its sole member. A name already
// used by a group or by an invite list is rejected, and so is a creator
// without an account.
func (r *membershipRepository) CreateGroup(ctx context.Context, group, creator string) (models.Group, error) {
	log := logger.FromContext(ctx)

	err := r.doc.Update(ctx, func(d *Document) error {
		if _, ok := d.Groups[group]; ok {
			return ErrGroupAlreadyExists
		}
		if _, ok := d.Invites[group]; ok {
			return ErrGroupAlreadyExists
		}
		if _, ok := d.Credentials.Usernames[creator]; !ok {
			return ErrNoUserWasFound
		}

		d.Groups[group] = []string{creator}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*membershipRepository.CreateGroup").Str("group", group).Msg("error creating group")
		return models.Group{}, err
	}

	return models.Group{Name: group, Members: []string{creator}}, nil
}

// Invite records a pending invite of invitee into group on behalf of
// inviter, who must be a member.
func (r *membershipRepository) Invite(ctx context.Context, group, inviter, invitee string) error {
	log := logger.FromContext(ctx)

	err := r.doc.Update(ctx, func(d *Document) error {
		members, ok := d.Groups[group]
		if !ok {
			return ErrGroupNotFound
		}
		if !slices.Contains(members, inviter) {
			return ErrNotAMember
		}
		if _, ok = d.Credentials.Usernames[invitee]; !ok {
			return ErrNoUserWasFound
		}
		if slices.Contains(members, invitee) {
			return ErrAlreadyMember
		}
		if slices.Contains(d.Invites[group], invitee) {
			return ErrAlreadyInvited
		}

		d.Invites[group] = append(d.Invites[group], invitee)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*membershipRepository.Invite").
			Str("group", group).Str("invitee", invitee).Msg("error inviting user")
		return err
	}

	return nil
}

// AcceptInvite turns the pending invite of username into membership,
// appended after the current members.
func (r *membershipRepository) AcceptInvite(ctx context.Context, group, username string) error {
	return r.resolveInvite(ctx, group, username, true)
}

// DeclineInvite drops the pending invite of username.
func (r *membershipRepository) DeclineInvite(ctx context.Context, group, username string) error {
	return r.resolveInvite(ctx, group, username, false)
}

func (r *membershipRepository) resolveInvite(ctx context.Context, group, username string, accept bool) error {
	log := logger.FromContext(ctx)

	err := r.doc.Update(ctx, func(d *Document) error {
		invitees := d.Invites[group]
		if !slices.Contains(invitees, username) {
			return ErrNoSuchInvite
		}
		d.Invites[group] = slices.DeleteFunc(invitees, func(u string) bool { return u == username })

		if accept && !slices.Contains(d.Groups[group], username) {
			d.Groups[group] = append(d.Groups[group], username)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*membershipRepository.resolveInvite").
			Str("group", group).Bool("accept", accept).Msg("error resolving invite")
		return err
	}

	return nil
}

// Leave removes username from group. The group is deleted, together with
// its pending invites, when its last member leaves.
func (r *membershipRepository) Leave(ctx context.Context, group, username string) error {
	log := logger.FromContext(ctx)

	err := r.doc.Update(ctx, func(d *Document) error {
		members, ok := d.Groups[group]
		if !ok {
			return ErrGroupNotFound
		}
		if !slices.Contains(members, username) {
			return ErrNotAMember
		}

		d.Groups[group] = slices.DeleteFunc(members, func(u string) bool { return u == username })
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*membershipRepository.Leave").Str("group", group).Msg("error leaving group")
		return err
	}

	return nil
}

// Members lists the members of group in join order with their display
// names.
func (r *membershipRepository) Members(ctx context.Context, group string) ([]models.Member, error) {
	var members []models.Member
	err := r.doc.View(ctx, func(d *Document) error {
		usernames, ok := d.Groups[group]
		if !ok {
			return ErrGroupNotFound
		}

		members = make([]models.Member, 0, len(usernames))
		for _, username := range usernames {
			members = append(members, models.Member{
				Username: username,
				Name:     d.Credentials.Usernames[username].Name,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return members, nil
}

// GroupsFor returns the names of the groups username belongs to, sorted.
func (r *membershipRepository) GroupsFor(ctx context.Context, username string) ([]string, error) {
	groups := []string{}
	err := r.doc.View(ctx, func(d *Document) error {
		for group, members := range d.Groups {
			if slices.Contains(members, username) {
				groups = append(groups, group)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(groups)
	return groups, nil
}

// PendingInvitesFor returns the invites addressed to username, sorted by
// group.
func (r *membershipRepository) PendingInvitesFor(ctx context.Context, username string) ([]models.Invite, error) {
	invites := []models.Invite{}
	err := r.doc.View(ctx, func(d *Document) error {
		for group, invitees := range d.Invites {
			if slices.Contains(invitees, username) {
				invites = append(invites, models.Invite{Group: group, Username: username})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(invites, func(i, j int) bool { return invites[i].Group < invites[j].Group })
	return invites, nil
}

// ListGroups returns every group, sorted by name.
func (r *membershipRepository) ListGroups(ctx context.Context) ([]models.Group, error) {
	groups := []models.Group{}
	err := r.doc.View(ctx, func(d *Document) error {
		for name, members := range d.Groups {
			groups = append(groups, models.Group{Name: name, Members: slices.Clone(members)})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })
	return groups, nil
}
