// Package regions loads the region table from YAML.
//
// The file lists the regions in display order and names the fallback used
// for unknown selections:
//
//	fallback: EU
//	regions:
//	  - id: EU
//	    name: Europe
//	    offset_hours: 1
//	    reference: 2025-11-06T13:00:00Z
//	  - id: US
//	    name: America
//	    offset_hours: -8
//
// A region without reference has no schedule yet.
package regions

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"server_event_timer/internal/domain/region"
)

// DefaultReference anchors the EU cycle of the built-in table.
var DefaultReference = time.Date(2025, time.November, 6, 13, 0, 0, 0, time.UTC)

type fileFormat struct {
	Fallback string  `yaml:"fallback"`
	Regions  []entry `yaml:"regions"`
}

type entry struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	OffsetHours int    `yaml:"offset_hours"`
	Reference   string `yaml:"reference,omitempty"`
}

// Default returns the built-in table. The US region carries no reference;
// deployments that have one supply it through a regions file.
func Default() *region.Table {
	table, err := region.NewTable(region.EU,
		region.NewProfile(region.EU, "Europe", 1, DefaultReference),
		region.NewProfile(region.US, "America", -8, time.Time{}),
	)
	if err != nil {
		panic(fmt.Errorf("built-in region table: %w", err))
	}
	return table
}

// Load reads the table from path, or returns Default when path is empty.
func Load(path string) (*region.Table, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read regions file: %w", err)
	}
	table, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("regions file %s: %w", path, err)
	}
	return table, nil
}

// Parse decodes and validates a YAML region table. Unknown keys are rejected.
func Parse(data []byte) (*region.Table, error) {
	var doc fileFormat
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode: %w", err)
	}
	if len(doc.Regions) == 0 {
		return nil, region.ErrEmptyTable
	}

	profiles := make([]region.Profile, 0, len(doc.Regions))
	for i, e := range doc.Regions {
		var reference time.Time
		if e.Reference != "" {
			var err error
			reference, err = time.Parse(time.RFC3339, e.Reference)
			if err != nil {
				return nil, fmt.Errorf("region #%d (%s): invalid reference: %w", i+1, e.ID, err)
			}
		}
		profiles = append(profiles, region.NewProfile(region.ID(e.ID), e.Name, e.OffsetHours, reference))
	}

	fallback := region.ID(doc.Fallback)
	if fallback == "" {
		fallback = profiles[0].ID
	}
	table, err := region.NewTable(fallback, profiles...)
	if err != nil {
		return nil, err
	}
	return table, nil
}

