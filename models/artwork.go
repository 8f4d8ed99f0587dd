// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// EntryDateLayout is the day-precision layout used for Artwork.EntryDate.
const EntryDateLayout = "02/01/2006"

// UnnamedArtworkLabel is displayed for records without a name.
const UnnamedArtworkLabel = "Sem Nome"

// Artwork is a single catalog record ("quadro") owned by exactly one user:
// the user whose record store contains it.
type Artwork struct {
	// ID is a globally unique identifier assigned at creation and preserved
	// across edits.
	ID string `json:"id"`

	// Name is the title of the artwork. Required.
	Name string `json:"name"`

	// Author lists the author(s) of the artwork. Required.
	Author string `json:"author"`

	// EntryDate is the date the artwork entered the collection, formatted
	// with EntryDateLayout, or empty when unknown.
	EntryDate string `json:"entry_date"`

	// Location is the free-text current location of the artwork.
	Location string `json:"location"`

	// Description is a short free-text description.
	Description string `json:"description"`

	// ImagePath is the image store filename of the thumbnail, or empty when
	// the record has no image.
	ImagePath string `json:"image_path,omitempty"`

	// Owner is set only on records returned for a group viewing context and
	// names the member whose store holds the record. It is never persisted.
	Owner string `json:"owner,omitempty"`
}

// HasImage reports whether the record references an image file.
func (a Artwork) HasImage() bool {
	return a.ImagePath != ""
}

// Label returns the display label of the record. Records tagged with an
// owner are suffixed with "(de owner)" so equal names coming from different
// members stay distinguishable.
func (a Artwork) Label() string {
	name := a.Name
	if name == "" {
		name = UnnamedArtworkLabel
	}
	if a.Owner != "" {
		return fmt.Sprintf("%s (de %s)", name, a.Owner)
	}
	return name
}

// EditableBy reports whether username may edit or delete the record as it
// was returned by the collection view: untagged records belong to the
// viewer, tagged ones only to their owner.
func (a Artwork) EditableBy(username string) bool {
	return a.Owner == "" || a.Owner == username
}
