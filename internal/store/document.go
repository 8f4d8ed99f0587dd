// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/MKhiriev/go-acervo/models"
	"gopkg.in/yaml.v3"
)

// Document is the shared configuration document: session cookie settings,
// account credentials, groups and pending invites. Keys the application
// does not know about are kept in Extra and written back unchanged.
type Document struct {
	Cookie      models.CookieSettings `yaml:"cookie"`
	Credentials Credentials           `yaml:"credentials"`
	// Groups maps a group name to its members in join order.
	Groups map[string][]string `yaml:"grupos"`
	// Invites maps a group name to the usernames invited into it.
	Invites map[string][]string `yaml:"convites"`

	Extra map[string]any `yaml:",inline"`
}

// Credentials holds the registered accounts keyed by username.
type Credentials struct {
	Usernames map[string]Credential `yaml:"usernames"`

	Extra map[string]any `yaml:",inline"`
}

// Credential is a single registered account.
type Credential struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`

	Extra map[string]any `yaml:",inline"`
}

const cookieKeySize = 32

// DefaultDocument returns the document used when none has been written yet.
func DefaultDocument() *Document {
	return &Document{
		Cookie:      models.DefaultCookieSettings(),
		Credentials: Credentials{Usernames: map[string]Credential{}},
		Groups:      map[string][]string{},
		Invites:     map[string][]string{},
	}
}

// normalize fills the sections a hand-edited document may lack.
func (d *Document) normalize() {
	defaults := models.DefaultCookieSettings()
	if d.Cookie.Name == "" {
		d.Cookie.Name = defaults.Name
	}
	if d.Cookie.ExpiryDays <= 0 {
		d.Cookie.ExpiryDays = defaults.ExpiryDays
	}
	if d.Credentials.Usernames == nil {
		d.Credentials.Usernames = map[string]Credential{}
	}
	if d.Groups == nil {
		d.Groups = map[string][]string{}
	}
	if d.Invites == nil {
		d.Invites = map[string][]string{}
	}
}

// prune drops empty groups and empty invite lists, plus invites into
// groups that no longer exist.
func (d *Document) prune() {
	for group, members := range d.Groups {
		if len(members) == 0 {
			delete(d.Groups, group)
		}
	}
	for group, invitees := range d.Invites {
		if _, ok := d.Groups[group]; !ok || len(invitees) == 0 {
			delete(d.Invites, group)
		}
	}
}

// DocumentStore serializes every access to the shared configuration
// document. Mutations hold an in-process mutex and the backend lock for the
// whole load-mutate-persist cycle.
type DocumentStore struct {
	backend DocumentBackend
	mu      sync.Mutex
	logger  *logger.Logger
}

// NewDocumentStore constructs a [DocumentStore] over backend.
func NewDocumentStore(backend DocumentBackend, logger *logger.Logger) *DocumentStore {
	logger.Debug().Msg("creating document store")
	return &DocumentStore{
		backend: backend,
		logger:  logger,
	}
}

// Init writes the default document when none exists yet and makes sure the
// stored cookie key can sign session tokens.
func (s *DocumentStore) Init(ctx context.Context) error {
	return s.Update(ctx, func(*Document) error { return nil })
}

// View loads the current document and passes it to fn. Changes made by fn
// are discarded.
func (s *DocumentStore) View(ctx context.Context, fn func(*Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return err
	}

	return fn(doc)
}

// Update loads the document, applies fn and persists the result. When fn
// returns an error the stored document is left untouched and the error is
// returned as is.
func (s *DocumentStore) Update(ctx context.Context, fn func(*Document) error) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.backend.Lock(ctx)
	if err != nil {
		log.Err(err).Str("func", "*DocumentStore.Update").Msg("error locking configuration document")
		return err
	}
	defer func() {
		if unlockErr := unlock(); unlockErr != nil {
			log.Err(unlockErr).Str("func", "*DocumentStore.Update").Msg("error unlocking configuration document")
		}
	}()

	doc, err := s.load(ctx)
	if err != nil {
		return err
	}

	if err = fn(doc); err != nil {
		return err
	}
	doc.prune()

	if !doc.Cookie.HasUsableKey() {
		if doc.Cookie.Key == models.DefaultCookieKey {
			log.Warn().Str("func", "*DocumentStore.Update").Msg("replacing the public placeholder cookie key; existing sessions are invalidated")
		}
		if doc.Cookie.Key, err = newCookieKey(); err != nil {
			log.Err(err).Str("func", "*DocumentStore.Update").Msg("error generating cookie key")
			return err
		}
	}

	payload, err := encodeDocument(doc)
	if err != nil {
		log.Err(err).Str("func", "*DocumentStore.Update").Msg("error encoding configuration document")
		return err
	}

	if err = s.backend.Write(ctx, payload); err != nil {
		log.Err(err).Str("func", "*DocumentStore.Update").Msg("error writing configuration document")
		return fmt.Errorf("error writing configuration document: %w", err)
	}

	return nil
}

func (s *DocumentStore) load(ctx context.Context) (*Document, error) {
	log := logger.FromContext(ctx)

	payload, err := s.backend.Read(ctx)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultDocument(), nil
	}
	if err != nil {
		log.Err(err).Str("func", "*DocumentStore.load").Msg("error reading configuration document")
		return nil, fmt.Errorf("error reading configuration document: %w", err)
	}

	doc, err := decodeDocument(payload)
	if err != nil {
		log.Err(err).Str("func", "*DocumentStore.load").Msg("configuration document is corrupt")
		return nil, err
	}

	return doc, nil
}

// newCookieKey returns a random hex encoded 32-byte signing key.
func newCookieKey() (string, error) {
	key := make([]byte, cookieKeySize)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("error generating cookie key: %w", err)
	}
	return hex.EncodeToString(key), nil
}

func decodeDocument(payload []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptDocument, err)
	}
	doc.normalize()

	return &doc, nil
}

func encodeDocument(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("error encoding configuration document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("error encoding configuration document: %w", err)
	}

	return buf.Bytes(), nil
}
