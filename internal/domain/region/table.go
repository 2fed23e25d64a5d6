// internal/domain/region/table.go
package region

import (
	"errors"
	"fmt"
)

// MaxOffsetHours bounds the server offset so that a conversion crosses at most one day.
const MaxOffsetHours = 23

var (
	ErrRegionNotFound   = errors.New("region not found")
	ErrEmptyTable       = errors.New("region table is empty")
	ErrDuplicateRegion  = errors.New("duplicate region id")
	ErrInvalidRegionID  = errors.New("invalid region id")
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrUnknownFallback  = errors.New("fallback region is not in the table")
)

// Table is the validated, ordered mapping from region ID to Profile.
type Table struct {
	order    []ID
	profiles map[ID]Profile
	fallback ID
}

// NewTable validates the profiles and builds a Table. The order of profiles is kept.
func NewTable(fallback ID, profiles ...Profile) (*Table, error) {
	if len(profiles) == 0 {
		return nil, ErrEmptyTable
	}

	t := &Table{
		order:    make([]ID, 0, len(profiles)),
		profiles: make(map[ID]Profile, len(profiles)),
		fallback: Normalize(string(fallback)),
	}
	for _, p := range profiles {
		id := Normalize(string(p.ID))
		if id == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRegionID, p.ID)
		}
		if _, exists := t.profiles[id]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRegion, id)
		}
		if p.OffsetHours > MaxOffsetHours || p.OffsetHours < -MaxOffsetHours {
			return nil, fmt.Errorf("%w: region %s has offset %d", ErrOffsetOutOfRange, id, p.OffsetHours)
		}
		p.ID = id
		t.order = append(t.order, id)
		t.profiles[id] = p
	}

	if _, ok := t.profiles[t.fallback]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFallback, fallback)
	}
	return t, nil
}

// Get returns the profile for id.
func (t *Table) Get(id ID) (Profile, error) {
	p, ok := t.profiles[Normalize(string(id))]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %s", ErrRegionNotFound, id)
	}
	return p, nil
}

// List returns the profiles in table order.
func (t *Table) List() []Profile {
	out := make([]Profile, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.profiles[id])
	}
	return out
}

// IDs returns the region IDs in table order.
func (t *Table) IDs() []ID {
	return append([]ID(nil), t.order...)
}

// Resolve coerces raw input to a known region, using the fallback for anything else.
func (t *Table) Resolve(raw string) ID {
	id := Normalize(raw)
	if _, ok := t.profiles[id]; ok {
		return id
	}
	return t.fallback
}

func (t *Table) Fallback() ID {
	return t.fallback
}
