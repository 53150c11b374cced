// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tz implements civil.ZoneProvider.
//
// System uses the zone database of the host, through time.LoadLocation.
// Table is a fixed map of zone names to offsets, typically loaded from a YAML
// file, for hosts without a zone database or for tests.
package tz

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"go.llib.dev/frameless/pkg/errorkit"
	"gopkg.in/yaml.v3"

	"gonih.org/civil"
	"gonih.org/civil/internal/cache"
)

// ErrUnknownZone is wrapped by errors for zones a provider does not know.
const ErrUnknownZone errorkit.Error = "unknown zone"

// System looks up zones in the host's zone database. The zero value is ready
// to use.
type System struct {
	// LocalZone is the name returned by Local. If it is empty, the TZ
	// environment variable is used, and if that is empty too, "Local".
	LocalZone string
}

type loaded struct {
	loc *time.Location
	err error
}

// locations memoizes time.LoadLocation, which reads the zone database.
var locations = cache.Cache[string, loaded]{MaxSize: 64}

func load(zone string) loaded {
	loc, err := time.LoadLocation(zone)
	return loaded{loc, err}
}

// Offset implements civil.ZoneProvider.
func (s System) Offset(zone string, at civil.DateTime) (civil.Offset, error) {
	l := locations.Get(zone, load)
	if l.err != nil {
		return civil.Offset{}, fmt.Errorf("%w %q: %w", ErrUnknownZone, zone, l.err)
	}
	return civil.OffsetFromLocation(l.loc, at.StdTime())
}

// Local implements civil.ZoneProvider.
func (s System) Local() string {
	if s.LocalZone != "" {
		return s.LocalZone
	}
	if z := os.Getenv("TZ"); z != "" {
		return z
	}
	return "Local"
}

// Table is a ZoneProvider with a fixed offset per zone.
type Table struct {
	// LocalZone is the name returned by Local.
	LocalZone string
	// Zones maps zone names to their offsets.
	Zones map[string]civil.Offset
}

// Offset implements civil.ZoneProvider. The offset does not depend on at.
func (t *Table) Offset(zone string, _ civil.DateTime) (civil.Offset, error) {
	o, ok := t.Zones[zone]
	if !ok {
		return civil.Offset{}, fmt.Errorf("%w %q", ErrUnknownZone, zone)
	}
	return o, nil
}

// Local implements civil.ZoneProvider.
func (t *Table) Local() string {
	return t.LocalZone
}

// Names returns the zone names of t, sorted.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.Zones))
	for n := range t.Zones {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// tableFile is the YAML form of a Table:
//
//	local: Europe/Berlin
//	zones:
//	  Europe/Berlin: "+01:00"
//	  Asia/Kolkata: "+05:30"
//	  UTC: Z
type tableFile struct {
	Local string            `yaml:"local"`
	Zones map[string]string `yaml:"zones"`
}

// ReadTable decodes a Table from YAML.
func ReadTable(r io.Reader) (*Table, error) {
	var f tableFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding zone table: %w", err)
	}
	t := &Table{LocalZone: f.Local, Zones: make(map[string]civil.Offset, len(f.Zones))}
	for name, v := range f.Zones {
		o, err := civil.ParseOffset(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("zone %q: %w", name, err)
		}
		t.Zones[name] = o
	}
	if t.LocalZone != "" {
		if _, ok := t.Zones[t.LocalZone]; !ok {
			return nil, fmt.Errorf("local zone: %w %q", ErrUnknownZone, t.LocalZone)
		}
	}
	return t, nil
}

// LoadTable reads a Table from the YAML file at path.
func LoadTable(path string) (_ *Table, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer errorkit.Finish(&err, f.Close)
	return ReadTable(f)
}

// MarshalYAML implements yaml.Marshaler.
func (t *Table) MarshalYAML() (any, error) {
	f := tableFile{Local: t.LocalZone, Zones: make(map[string]string, len(t.Zones))}
	for name, o := range t.Zones {
		if o == civil.UTC {
			f.Zones[name] = "Z"
			continue
		}
		f.Zones[name] = o.String()
	}
	return f, nil
}
