// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"regexp"
	"unicode/utf8"

	"github.com/MKhiriev/go-acervo/models"
)

// Field names accepted by [UserValidator].
const (
	FieldUsername        = "username"
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldPasswordConfirm = "password_confirm"
)

const minPasswordLength = 4

var (
	usernamePattern = regexp.MustCompile(`^[a-z0-9_]{3,20}$`)
	emailPattern    = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
)

// UserValidator checks registration data. It expects already normalized
// input (see [NormalizeRegistration]). Uniqueness of username and email is
// checked by the store.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate implements [Validator] for models.User and *models.User. Without
// fields every registration rule is checked; with fields only those named.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldUsername, FieldEmail, FieldPassword, FieldPasswordConfirm}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldName:
			if user.Name == "" {
				errs = append(errs, ErrInvalidName)
			}
		case FieldUsername:
			if !usernamePattern.MatchString(user.Username) {
				errs = append(errs, ErrInvalidUsername)
			}
		case FieldEmail:
			if !emailPattern.MatchString(user.Email) {
				errs = append(errs, ErrInvalidEmail)
			}
		case FieldPassword:
			if utf8.RuneCountInString(user.Password) < minPasswordLength {
				errs = append(errs, ErrPasswordTooShort)
			}
		case FieldPasswordConfirm:
			if user.Password != user.PasswordConfirm {
				errs = append(errs, ErrPasswordMismatch)
			}
		default:
			return ErrUnknownField
		}
	}

	return errors.Join(errs...)
}
