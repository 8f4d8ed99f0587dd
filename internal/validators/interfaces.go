// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules of the catalog: registration
// data, group names, artwork records and uploaded photos.
//
// Every validator implements [Validator]. Validation reports every failed
// rule at once, joined with errors.Join, so callers can show the full list
// to the user. Use errors.Is to test for a specific rule.
//
// Normalization (trimming, lowercasing, title-casing) is done by the
// Normalize* functions before validation; validators never mutate input.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
