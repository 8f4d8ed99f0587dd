// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the per-session view state of the acervo client:
// the active viewing context, the displayed record list, the selected record
// and the UI mode.
//
// The controller performs no I/O. Callers fetch a [models.CollectionView]
// for [Controller.View] and hand it to [Controller.SetRecords]; permission
// checks happen before any mutation is sent to the server.
package session

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/go-acervo/models"
)

// Mode is the UI mode of a session.
type Mode string

const (
	ModeView  Mode = "view"
	ModeAdd   Mode = "add"
	ModeEdit  Mode = "edit"
	ModePhoto Mode = "photo"
)

// Controller is safe for concurrent use.
type Controller struct {
	mu sync.RWMutex

	username string
	view     models.ViewContext
	records  []models.Artwork

	selectedID string
	mode       Mode
}

// NewController returns a controller for username showing the personal
// collection.
func NewController(username string) *Controller {
	return &Controller{
		username: username,
		view:     models.Personal(),
		records:  []models.Artwork{},
		mode:     ModeView,
	}
}

func (c *Controller) Username() string {
	return c.username
}

// View returns the active viewing context.
func (c *Controller) View() models.ViewContext {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.view
}

// Mode returns the active UI mode.
func (c *Controller) Mode() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// SwitchView activates view. The displayed list, the selection and the mode
// are reset until the records of view arrive.
func (c *Controller) SwitchView(view models.ViewContext) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if view.IsPersonal() {
		view = models.Personal()
	}
	c.view = view
	c.records = []models.Artwork{}
	c.selectedID = ""
	c.mode = ModeView
}

// SetRecords replaces the displayed list with collection. The selection is
// kept when a record with the same ID is still present.
func (c *Controller) SetRecords(collection models.CollectionView) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !sameView(collection.Context, c.view) {
		return fmt.Errorf("%w: got %q, showing %q", ErrStaleView, collection.Context, c.view)
	}

	c.records = append([]models.Artwork{}, collection.Records...)
	if c.selectedID != "" && c.indexOf(c.selectedID) < 0 {
		c.selectedID = ""
		if c.mode == ModeEdit || c.mode == ModePhoto {
			c.mode = ModeView
		}
	}

	return nil
}

// Records returns a copy of the displayed list.
func (c *Controller) Records() []models.Artwork {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Artwork{}, c.records...)
}

// Labels returns the display label of every displayed record, in order.
// Records of other members carry their owner so equal names stay apart.
func (c *Controller) Labels() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	labels := make([]string, len(c.records))
	for i, record := range c.records {
		labels[i] = record.Label()
	}
	return labels
}

// Select marks the record with the given ID as selected.
func (c *Controller) Select(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexOf(id) < 0 {
		return ErrUnknownRecord
	}
	c.selectedID = id
	return nil
}

// SelectIndex selects the i-th displayed record.
func (c *Controller) SelectIndex(i int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i < 0 || i >= len(c.records) {
		return ErrUnknownRecord
	}
	c.selectedID = c.records[i].ID
	return nil
}

// ClearSelection drops the selection and leaves any record-bound mode.
func (c *Controller) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.selectedID = ""
	if c.mode == ModeEdit || c.mode == ModePhoto {
		c.mode = ModeView
	}
}

// Selected returns the selected record.
func (c *Controller) Selected() (models.Artwork, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOf(c.selectedID)
	if i < 0 {
		return models.Artwork{}, false
	}
	return c.records[i], true
}

// SelectedIndex returns the position of the selected record, or -1.
func (c *Controller) SelectedIndex() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.indexOf(c.selectedID)
}

// CanAdd reports whether records can be added in the active context.
func (c *Controller) CanAdd() bool {
	return c.View().IsPersonal()
}

// CanModify reports whether the session user may edit, re-photo or delete
// record.
func (c *Controller) CanModify(record models.Artwork) bool {
	return record.EditableBy(c.username)
}

// BeginAdd enters add mode.
func (c *Controller) BeginAdd() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode != ModeView {
		return ErrBusy
	}
	if !c.view.IsPersonal() {
		return ErrNotPersonalView
	}
	c.mode = ModeAdd
	return nil
}

// BeginEdit enters edit mode for the selected record.
func (c *Controller) BeginEdit() (models.Artwork, error) {
	return c.beginRecordMode(ModeEdit)
}

// BeginPhoto enters photo mode for the selected record.
func (c *Controller) BeginPhoto() (models.Artwork, error) {
	return c.beginRecordMode(ModePhoto)
}

func (c *Controller) beginRecordMode(mode Mode) (models.Artwork, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode != ModeView {
		return models.Artwork{}, ErrBusy
	}
	record, err := c.modifiableSelection()
	if err != nil {
		return models.Artwork{}, err
	}
	c.mode = mode
	return record, nil
}

// CheckDelete returns the selected record if the session user may delete it.
func (c *Controller) CheckDelete() (models.Artwork, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.modifiableSelection()
}

// Done leaves the active mode. When a record was saved its ID becomes the
// selection, so the list refresh that follows keeps it highlighted.
func (c *Controller) Done(saved *models.Artwork) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mode = ModeView
	if saved != nil && saved.ID != "" {
		c.selectedID = saved.ID
	}
}

// Cancel leaves the active mode without changes.
func (c *Controller) Cancel() {
	c.Done(nil)
}

// Contexts lists the viewing contexts the session can switch to: the
// personal collection followed by groups.
func (c *Controller) Contexts(groups []string) []models.ViewContext {
	contexts := make([]models.ViewContext, 0, len(groups)+1)
	contexts = append(contexts, models.Personal())
	for _, group := range groups {
		contexts = append(contexts, models.InGroup(group))
	}
	return contexts
}

func (c *Controller) modifiableSelection() (models.Artwork, error) {
	i := c.indexOf(c.selectedID)
	if i < 0 {
		return models.Artwork{}, ErrNoSelection
	}
	record := c.records[i]
	if !record.EditableBy(c.username) {
		return models.Artwork{}, fmt.Errorf("%w: %q belongs to %s", ErrNotOwner, record.Label(), record.Owner)
	}
	return record, nil
}

func (c *Controller) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, record := range c.records {
		if record.ID == id {
			return i
		}
	}
	return -1
}

func sameView(a, b models.ViewContext) bool {
	if a.IsPersonal() || b.IsPersonal() {
		return a.IsPersonal() == b.IsPersonal()
	}
	return a.Group == b.Group
}
