// Package project stores drawings: metadata, the portable .ddd archive and
// a sqlite-backed library of saved projects.
package project

import (
	"errors"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a project is not in the library or an
// archive is missing an entry.
var ErrNotFound = errors.New("project: not found")

// Metadata describes a project.
type Metadata struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`

	// Saved is false once the drawing has changed since the last save.
	Saved bool `json:"-"`
}

// New returns metadata for a fresh, unsaved project.
func New(name string) Metadata {
	now := time.Now()
	if name == "" {
		name = "Untitled"
	}
	return Metadata{
		ID:         uuid.New(),
		Name:       name,
		CreatedAt:  now,
		ModifiedAt: now,
	}
}

// ParseID parses a project id as printed by List.
func ParseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fmt.Errorf("project: bad id %q: %w", s, err)
	}
	return id, nil
}

// Touch records an edit.
func (m *Metadata) Touch() {
	m.ModifiedAt = time.Now()
	m.Saved = false
}

// MarkSaved records a successful save.
func (m *Metadata) MarkSaved() {
	m.Saved = true
}

// Canvas receives a loaded raster.
type Canvas interface {
	Load(image.Image) error
}

// History is reseeded after a raster replaces the canvas content.
type History interface {
	Reset() error
}

// Apply loads img into c and resets h so the loaded drawing is the only
// recorded state.
func Apply(img image.Image, c Canvas, h History) error {
	if err := c.Load(img); err != nil {
		return fmt.Errorf("project: load raster: %w", err)
	}
	if err := h.Reset(); err != nil {
		return fmt.Errorf("project: reset history: %w", err)
	}
	return nil
}
