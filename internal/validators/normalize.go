// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"strings"

	"github.com/MKhiriev/go-acervo/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.BrazilianPortuguese)

// NormalizeUsername trims, lowercases and removes every space.
func NormalizeUsername(username string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(username)), " ", "")
}

// NormalizeEmail trims and lowercases.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeDisplayName trims and title-cases every word ("ana maria" -> "Ana Maria").
func NormalizeDisplayName(name string) string {
	return titleCaser.String(strings.TrimSpace(name))
}

// NormalizeGroupName trims, lowercases and replaces spaces with underscores
// ("Readers Club" -> "readers_club").
func NormalizeGroupName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// NormalizeRegistration applies the registration formatting rules to user.
// Passwords are left untouched.
func NormalizeRegistration(user models.User) models.User {
	user.Username = NormalizeUsername(user.Username)
	user.Email = NormalizeEmail(user.Email)
	user.Name = NormalizeDisplayName(user.Name)
	return user
}

// NormalizeArtwork trims the free-text fields of a record.
func NormalizeArtwork(artwork models.Artwork) models.Artwork {
	artwork.Name = strings.TrimSpace(artwork.Name)
	artwork.Author = strings.TrimSpace(artwork.Author)
	artwork.EntryDate = strings.TrimSpace(artwork.EntryDate)
	artwork.Location = strings.TrimSpace(artwork.Location)
	artwork.Description = strings.TrimSpace(artwork.Description)
	return artwork
}
