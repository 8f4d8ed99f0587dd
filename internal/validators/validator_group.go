// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"regexp"
	"unicode/utf8"

	"github.com/MKhiriev/go-acervo/models"
)

const maxGroupNameLength = 64

// Group identifiers become YAML keys and URL path segments: lowercase
// letters of any script, digits, underscores and hyphens.
var groupNamePattern = regexp.MustCompile(`^[\p{Ll}\p{Lo}\p{N}_-]+$`)

// GroupNameValidator checks normalized group identifiers (see
// [NormalizeGroupName]).
type GroupNameValidator struct {
}

func NewGroupNameValidator() Validator {
	return &GroupNameValidator{}
}

// Validate implements [Validator] for a group identifier given as string
// or as models.CreateGroupRequest. Field scoping is not supported.
func (v *GroupNameValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if len(fields) > 0 {
		return ErrUnknownField
	}

	switch value := obj.(type) {
	case string:
		return validateGroupName(value)
	case models.CreateGroupRequest:
		return validateGroupName(value.Name)
	case *models.CreateGroupRequest:
		return validateGroupName(value.Name)
	default:
		return ErrUnsupportedType
	}
}

func validateGroupName(name string) error {
	if name == "" || utf8.RuneCountInString(name) > maxGroupNameLength || !groupNamePattern.MatchString(name) {
		return ErrInvalidGroupName
	}
	return nil
}
