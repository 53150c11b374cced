// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import (
	"math"
	"testing"
	"time"
)

func TestDurationFormat(t *testing.T) {
	for _, tc := range []struct {
		d    Duration
		want string
	}{
		{0, "0 nanoseconds"},
		{Nanoseconds(1), "1 nanosecond"},
		{Nanoseconds(999_999), "999999 nanoseconds"},
		{Milliseconds(1), "1 millisecond"},
		{Milliseconds(250), "250 milliseconds"},
		{Seconds(1), "1.000 second"},
		{Milliseconds(59_999), "59.999 seconds"},
		{Minutes(1), "1 minute and 0.000 seconds"},
		{Minutes(2) + Milliseconds(1500), "2 minutes and 1.500 seconds"},
		{Hours(13), "13 hours, 0 minutes, and 0.00 seconds"},
		{Hours(1) + Minutes(1) + Milliseconds(1005), "1 hour, 1 minute, and 1.00 seconds"},
		{Days(1), "1 day, 0 hours, and 0 minutes"},
		{Days(6) + Hours(23) + Minutes(59), "6 days, 23 hours, and 59 minutes"},
		{Weeks(1) + Hours(15) + Minutes(29), "1 week, 0 days, 15 hours, and 29 minutes"},
		{Days(375), "~1 year, 1 week, 3 days, 0 hours, and 0 minutes"},
		{-Hours(13), "-13 hours, 0 minutes, and 0.00 seconds"},
		{-Milliseconds(1500), "-1.500 seconds"},
	} {
		if got := tc.d.Format(); got != tc.want {
			t.Errorf("Duration(%d).Format() = %q, want %q", int64(tc.d), got, tc.want)
		}
	}
}

func TestDurationFormatIn(t *testing.T) {
	for _, tc := range []struct {
		d        Duration
		u        Unit
		decimals int
		want     string
	}{
		{Seconds(5430), Minute, 1, "90.5 minutes"},
		{Seconds(5430), Hour, 3, "1.508 hours"},
		{Hours(36), Day, 2, "1.50 days"},
		{Days(1), Day, 0, "1 day"},
		{Days(1), Day, 2, "1.00 day"},
		{Days(45), ImpreciseMonth, 1, "~1.5 months"},
		{Milliseconds(1), Second, 18, "0.001000000000000000 seconds"},
		{Minutes(1), Second, -3, "60 seconds"},
	} {
		if got := tc.d.FormatIn(tc.u, tc.decimals); got != tc.want {
			t.Errorf("Duration(%d).FormatIn(%v, %d) = %q, want %q", int64(tc.d), tc.u, tc.decimals, got, tc.want)
		}
	}
	if got := Hours(25).FormatAs([]Unit{Day, Minute}, 0); got != "1 day and 60 minutes" {
		t.Errorf("FormatAs(day, minute) = %q", got)
	}
	if got := Hours(1).FormatAs(nil, 0); got != "" {
		t.Errorf("FormatAs(nil) = %q, want empty", got)
	}
}

func TestDurationAs(t *testing.T) {
	if got := Days(375).As(ImpreciseYear); got != 1 {
		t.Errorf("Days(375).As(ImpreciseYear) = %d, want 1", got)
	}
	if got := Days(59).As(ImpreciseMonth); got != 1 {
		t.Errorf("Days(59).As(ImpreciseMonth) = %d, want 1", got)
	}
	if got := (-Minutes(90)).As(Hour); got != -1 {
		t.Errorf("-90m.As(Hour) = %d, want -1", got)
	}
	if got := Minutes(90).AsFractional(Hour); got != 1.5 {
		t.Errorf("90m.AsFractional(Hour) = %v, want 1.5", got)
	}
	// Large durations keep their nanoseconds.
	d := Duration(math.MaxInt64)
	if got := d.AsFractional(Nanosecond); got != float64(math.MaxInt64) {
		t.Errorf("max.AsFractional(Nanosecond) = %v", got)
	}
}

func TestDurationArithmetic(t *testing.T) {
	a, b := Hours(2), Minutes(30)
	if a.Add(b) != Minutes(150) || a.Sub(b) != Minutes(90) || b.Sub(a).Abs() != Minutes(90) {
		t.Errorf("arithmetic on %d and %d is off", a, b)
	}
	if !b.Sub(a).IsNegative() || a.IsNegative() || a.Inverse() != -a {
		t.Errorf("sign of %d is off", b.Sub(a))
	}
	if a.Compare(b) != 1 || b.Compare(a) != -1 || a.Compare(a) != 0 {
		t.Errorf("Compare(%d, %d) = %d", a, b, a.Compare(b))
	}
	if !b.Less(a) || !b.LessOrEqual(b) || !a.Greater(b) || !a.GreaterOrEqual(a) {
		t.Errorf("ordering of %d and %d is off", a, b)
	}
	if got := DurationFromStd(90 * time.Minute); got != Minutes(90) || got.Std() != 90*time.Minute {
		t.Errorf("DurationFromStd(90m) = %d", got)
	}
}

func TestUnit(t *testing.T) {
	for u, want := range map[Unit]string{
		Nanosecond:     "nanosecond",
		Second:         "second",
		Week:           "week",
		ImpreciseMonth: "month",
		ImpreciseYear:  "year",
		Unit(42):       "Unit(42)",
	} {
		if got := u.String(); got != want {
			t.Errorf("Unit(%d).String() = %q, want %q", int(u), got, want)
		}
	}
	if !ImpreciseMonth.Imprecise() || Week.Imprecise() {
		t.Errorf("Imprecise is off")
	}
	if Week.Duration() != Days(7) || ImpreciseYear.Duration() != Days(365) || ImpreciseMonth.Duration() != Days(30) {
		t.Errorf("unit lengths are off")
	}
}
