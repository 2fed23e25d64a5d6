// internal/domain/region/region.go
package region

import (
	"strings"
	"time"
)

// ID is the canonical identifier of a server region, e.g. "EU".
type ID string

// Canonical IDs of the regions shipped in the default table.
const (
	EU ID = "EU"
	US ID = "US"
)

// Normalize turns raw input ("#eu", " us ") into a canonical ID.
// It does not check that the region exists.
func Normalize(raw string) ID {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "#")
	return ID(strings.ToUpper(strings.TrimSpace(s)))
}

// Profile describes one region. Profiles are immutable once built.
type Profile struct {
	ID          ID
	Name        string
	OffsetHours int // Fixed server offset from UTC

	reference    time.Time // Anchor of the cycle, meaningful only with hasReference
	hasReference bool
}

// NewProfile builds a Profile. A zero reference means "no anchor".
func NewProfile(id ID, name string, offsetHours int, reference time.Time) Profile {
	p := Profile{ID: id, Name: name, OffsetHours: offsetHours}
	if !reference.IsZero() {
		p.reference = reference.UTC()
		p.hasReference = true
	}
	return p
}

// HasReference reports whether the region is anchored.
func (p Profile) HasReference() bool {
	return p.hasReference
}

// ReferenceInstant returns the anchor, or the zero time when there is none.
func (p Profile) ReferenceInstant() time.Time {
	if !p.hasReference {
		return time.Time{}
	}
	return p.reference
}

// DisplayName falls back to the ID when no name is configured.
func (p Profile) DisplayName() string {
	if p.Name == "" {
		return string(p.ID)
	}
	return p.Name
}
