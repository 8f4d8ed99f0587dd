// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-acervo/models"
)

const artworksTable = "artworks"

var artworkColumns = []string{
	"id",
	"name",
	"author",
	"entry_date",
	"location",
	"description",
	"image_path",
}

// lockOwnerPostgres serializes read-modify-write cycles of one owner until
// the surrounding transaction ends.
const lockOwnerPostgres = `SELECT pg_advisory_xact_lock(hashtext($1));`

func buildSelectArtworksQuery(b sq.StatementBuilderType, owner string) (string, []any, error) {
	return b.Select(artworkColumns...).
		From(artworksTable).
		Where(sq.Eq{"owner": owner}).
		OrderBy("position").
		ToSql()
}

func buildDeleteArtworksQuery(b sq.StatementBuilderType, owner string) (string, []any, error) {
	return b.Delete(artworksTable).
		Where(sq.Eq{"owner": owner}).
		ToSql()
}

// buildInsertArtworksQuery inserts records in order, numbering their
// positions from zero. records must not be empty.
func buildInsertArtworksQuery(b sq.StatementBuilderType, owner string, records []models.Artwork) (string, []any, error) {
	insert := b.Insert(artworksTable).
		Columns(append([]string{"owner", "position"}, artworkColumns...)...)

	for i, a := range records {
		insert = insert.Values(owner, i, a.ID, a.Name, a.Author, a.EntryDate, a.Location, a.Description, a.ImagePath)
	}

	return insert.ToSql()
}
