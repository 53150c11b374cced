// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clock provides the sources of the current time for package civil.
//
// Code that needs the current time should accept a Source, so that tests can
// substitute a Virtual clock. System reads the host clock through
// go.llib.dev/testcase/clock, so it also follows timecop travels.
package clock

import (
	"sync"
	"time"

	tcclock "go.llib.dev/testcase/clock"

	"gonih.org/civil"
)

// A Source tells the time.
type Source interface {
	// Now returns the current wall clock time.
	Now() time.Time
	// Monotonic returns the reading of a clock that never goes backwards,
	// relative to an unspecified origin.
	Monotonic() time.Duration
	// Sleep pauses for at least d.
	Sleep(d time.Duration)
}

// processStart is the origin of System's monotonic clock.
var processStart = time.Now()

// System is the host clock.
type System struct{}

// Now implements Source.
func (System) Now() time.Time { return tcclock.Now() }

// Monotonic implements Source. It reads the monotonic clock of the process
// and ignores time travel.
func (System) Monotonic() time.Duration { return time.Since(processStart) }

// Sleep implements Source.
func (System) Sleep(d time.Duration) { tcclock.Sleep(d) }

// Virtual is a Source for tests. It starts out following the host clock and
// can be frozen, set to run from a reference time at a different speed, or
// warped forward. With warp sleep enabled, Sleep advances the clock instead
// of blocking.
//
// The zero value is ready to use. It is safe for concurrent use; every change
// is observed by all subsequent reads from any goroutine.
type Virtual struct {
	// Real is the clock Virtual is based on. If it is nil, time.Now is used.
	Real func() time.Time

	mu        sync.Mutex
	set       bool
	frozen    bool
	ref       time.Time // virtual time at since
	since     time.Time // real time when ref was set
	speed     float64
	warp      time.Duration
	warpSleep bool

	origin   time.Time
	lastMono time.Duration
}

func (v *Virtual) real() time.Time {
	if v.Real != nil {
		return v.Real()
	}
	return time.Now()
}

// Now implements Source.
func (v *Virtual) Now() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.nowLocked()
}

func (v *Virtual) nowLocked() time.Time {
	now := v.real()
	switch {
	case !v.set:
		return now.Add(v.warp)
	case v.frozen:
		return v.ref.Add(v.warp)
	}
	elapsed := float64(now.Sub(v.since)) * v.speed
	return v.ref.Add(time.Duration(elapsed) + v.warp)
}

// Monotonic implements Source. It follows Now, except that it never goes
// backwards when the clock is set to an earlier time.
func (v *Virtual) Monotonic() time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()
	now := v.nowLocked()
	if v.origin.IsZero() {
		v.origin = now
	}
	v.lastMono = max(v.lastMono, now.Sub(v.origin))
	return v.lastMono
}

// Freeze stops the clock at t.
func (v *Virtual) Freeze(t time.Time) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.set, v.frozen = true, true
	v.ref, v.since, v.speed, v.warp = t, v.real(), 0, 0
}

// Set lets the clock run from ref at the given speed, where 1 is real time
// and 2 twice as fast. A speed of 0 is the same as Freeze.
func (v *Virtual) Set(ref time.Time, speed float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.set, v.frozen = true, speed == 0
	v.ref, v.since, v.speed, v.warp = ref, v.real(), speed, 0
}

// Warp moves the clock forward by d. Negative values are ignored.
func (v *Virtual) Warp(d time.Duration) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.warp += max(d, 0)
}

// SetWarpSleep sets whether Sleep warps the clock instead of blocking.
func (v *Virtual) SetWarpSleep(on bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.warpSleep = on
}

// Reset makes the clock follow the real clock again and disables warp sleep.
func (v *Virtual) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.set, v.frozen, v.warpSleep = false, false, false
	v.ref, v.since, v.speed, v.warp = time.Time{}, time.Time{}, 0, 0
}

// Sleep implements Source. With warp sleep enabled it returns immediately
// after moving the clock forward by d.
func (v *Virtual) Sleep(d time.Duration) {
	v.mu.Lock()
	if v.warpSleep {
		v.warp += max(d, 0)
		v.mu.Unlock()
		return
	}
	v.mu.Unlock()
	time.Sleep(d)
}

// Today returns the current date at offset o.
func Today(src Source, o civil.Offset) civil.Date {
	return Now(src, o).Date()
}

// Now returns the current instant read at offset o, with nanosecond
// precision.
func Now(src Source, o civil.Offset) civil.DateTime {
	return civil.DateTimeFromUnixNano(src.Now().UnixNano(), o)
}
