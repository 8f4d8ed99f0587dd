// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ViewKind selects whose records a collection view shows.
type ViewKind string

const (
	// PersonalView shows the session user's own records.
	PersonalView ViewKind = "personal"
	// GroupView shows the concatenated records of every group member.
	GroupView ViewKind = "group"
)

// PersonalViewLabel is the display name of the personal viewing context.
const PersonalViewLabel = "Meu Acervo"

// ViewContext is the active viewing context of a session. It is never
// persisted.
type ViewContext struct {
	Kind  ViewKind `json:"kind"`
	Group string   `json:"group,omitempty"`
}

// Personal returns the personal viewing context.
func Personal() ViewContext {
	return ViewContext{Kind: PersonalView}
}

// InGroup returns the viewing context of group.
func InGroup(group string) ViewContext {
	return ViewContext{Kind: GroupView, Group: group}
}

// IsPersonal reports whether v is the personal context. The zero value is
// treated as personal.
func (v ViewContext) IsPersonal() bool {
	return v.Kind != GroupView
}

// String returns the display label of the context.
func (v ViewContext) String() string {
	if v.IsPersonal() {
		return PersonalViewLabel
	}
	return v.Group
}

// CollectionView is the record list produced for a viewing context.
type CollectionView struct {
	Context ViewContext `json:"context"`
	Records []Artwork   `json:"records"`
}
