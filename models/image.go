// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"path/filepath"
	"strings"
)

// AllowedImageExtensions lists the photo extensions accepted for records.
var AllowedImageExtensions = []string{".png", ".jpg", ".jpeg"}

// ImageUpload describes an uploaded photo before it reaches the image store.
type ImageUpload struct {
	// Filename is the client-side file name; only its extension is kept.
	Filename string

	// Size is the upload size in bytes, or -1 when unknown.
	Size int64

	// Head holds the first bytes of the content, used for type sniffing.
	Head []byte
}

// Extension returns the lowercased extension of Filename, including the dot.
func (i ImageUpload) Extension() string {
	return strings.ToLower(filepath.Ext(i.Filename))
}
