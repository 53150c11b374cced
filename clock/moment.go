// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clock

import (
	"sync/atomic"
	"time"

	"gonih.org/civil"
)

// seq breaks ties between Moments taken at the same monotonic reading.
var seq atomic.Uint64

// A Moment is a point in time taken from a Source. It pairs a wall clock
// reading, for display, with a monotonic reading, for ordering and elapsed
// time, and a sequence number that is unique within the process.
//
// Moments from different Sources must not be compared.
type Moment struct {
	wall time.Time
	mono time.Duration
	seq  uint64
}

// Take returns the current Moment of src.
func Take(src Source) Moment {
	return Moment{
		wall: src.Now(),
		mono: src.Monotonic(),
		seq:  seq.Add(1),
	}
}

// Wall returns the wall clock reading of m.
func (m Moment) Wall() time.Time { return m.wall }

// DateTime returns the wall clock reading of m in UTC.
func (m Moment) DateTime() civil.DateTime {
	return civil.DateTimeFromUnixNano(m.wall.UnixNano(), civil.UTC)
}

// Compare returns -1, 0 or +1 depending on whether m was taken before, at
// the same time as or after o. Distinct Moments never compare equal.
func (m Moment) Compare(o Moment) int {
	switch {
	case m.mono < o.mono:
		return -1
	case m.mono > o.mono:
		return +1
	case m.seq < o.seq:
		return -1
	case m.seq > o.seq:
		return +1
	}
	return 0
}

// Sub returns the monotonic time elapsed from o to m.
func (m Moment) Sub(o Moment) civil.Duration {
	return civil.DurationFromStd(m.mono - o.mono)
}

// Since returns the monotonic time elapsed since m, according to src.
func (m Moment) Since(src Source) civil.Duration {
	return civil.DurationFromStd(src.Monotonic() - m.mono)
}
