// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

// A ZoneProvider knows the offsets of named timezones. This package has no
// timezone database of its own; see package gonih.org/civil/tz for
// implementations.
type ZoneProvider interface {
	// Offset returns the offset of zone at the instant at.
	Offset(zone string, at DateTime) (Offset, error)
	// Local returns the name of the host's local zone.
	Local() string
}
