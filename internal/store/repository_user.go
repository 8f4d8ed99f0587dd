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

// userRepository is the [UserRepository] over the "credentials" section of
// the shared configuration document.
type userRepository struct {
	logger *logger.Logger
	doc    *DocumentStore
}

// NewUserRepository constructs a [UserRepository] backed by doc.
func NewUserRepository(doc *DocumentStore, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		doc:    doc,
		logger: logger,
	}
}

// CreateUser stores the credentials of a new account. The username and the
// email must both be unused.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	err := r.doc.Update(ctx, func(d *Document) error {
		if _, ok := d.Credentials.Usernames[user.Username]; ok {
			return ErrUsernameAlreadyExists
		}
		for _, c := range d.Credentials.Usernames {
			if c.Email == user.Email {
				return ErrEmailAlreadyExists
			}
		}

		d.Credentials.Usernames[user.Username] = Credential{
			Name:     user.Name,
			Email:    user.Email,
			Password: user.PasswordHash,
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("error creating user")
		return err
	}

	return nil
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := r.doc.View(ctx, func(d *Document) error {
		c, ok := d.Credentials.Usernames[username]
		if !ok {
			return ErrNoUserWasFound
		}
		user = credentialToUser(username, c)
		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// ListUsers returns every account ordered by username, without password
// hashes.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.doc.View(ctx, func(d *Document) error {
		users = make([]models.User, 0, len(d.Credentials.Usernames))
		for username, c := range d.Credentials.Usernames {
			users = append(users, credentialToUser(username, c).Public())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

// SetPasswordHash replaces the password of username, creating the account
// with the username as display name when it does not exist yet.
func (r *userRepository) SetPasswordHash(ctx context.Context, username, passwordHash string) (bool, error) {
	log := logger.FromContext(ctx)

	var created bool
	err := r.doc.Update(ctx, func(d *Document) error {
		c, ok := d.Credentials.Usernames[username]
		if !ok {
			created = true
			c = Credential{Name: username}
		}
		c.Password = passwordHash
		d.Credentials.Usernames[username] = c
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetPasswordHash").Str("username", username).Msg("error setting password")
		return false, err
	}

	return created, nil
}

func (r *userRepository) DeleteUser(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	err := r.doc.Update(ctx, func(d *Document) error {
		if _, ok := d.Credentials.Usernames[username]; !ok {
			return ErrNoUserWasFound
		}
		delete(d.Credentials.Usernames, username)

		for group, members := range d.Groups {
			d.Groups[group] = slices.DeleteFunc(members, func(m string) bool { return m == username })
		}
		for group, invitees := range d.Invites {
			d.Invites[group] = slices.DeleteFunc(invitees, func(m string) bool { return m == username })
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Str("username", username).Msg("error deleting user")
		return err
	}

	return nil
}

func (r *userRepository) CookieSettings(ctx context.Context) (models.CookieSettings, error) {
	var cookie models.CookieSettings
	err := r.doc.View(ctx, func(d *Document) error {
		cookie = d.Cookie
		return nil
	})

	return cookie, err
}

func credentialToUser(username string, c Credential) models.User {
	return models.User{
		Username:     username,
		Name:         c.Name,
		Email:        c.Email,
		PasswordHash: c.Password,
	}
}
