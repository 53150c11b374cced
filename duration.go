// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import (
	"math/bits"
	"strconv"
	"strings"
	"time"

	"gonih.org/civil/internal/arith"
)

// A Duration is an elapsed span of time in nanoseconds. It has no calendar
// context; see Period for calendar aware spans.
type Duration int64

// Unit is a unit of Duration. ImpreciseMonth and ImpreciseYear have a fixed
// nominal length (30 and 365 days) and are marked with a "~" when formatted.
type Unit uint8

const (
	Nanosecond Unit = iota
	Microsecond
	Millisecond
	Second
	Minute
	Hour
	Day
	Week
	ImpreciseMonth
	ImpreciseYear
)

var units = [...]struct {
	ns        int64
	name      string
	imprecise bool
}{
	Nanosecond:     {1, "nanosecond", false},
	Microsecond:    {1e3, "microsecond", false},
	Millisecond:    {1e6, "millisecond", false},
	Second:         {1e9, "second", false},
	Minute:         {60e9, "minute", false},
	Hour:           {3600e9, "hour", false},
	Day:            {nsPerDay, "day", false},
	Week:           {7 * nsPerDay, "week", false},
	ImpreciseMonth: {30 * nsPerDay, "month", true},
	ImpreciseYear:  {365 * nsPerDay, "year", true},
}

// Duration returns the length of one u.
func (u Unit) Duration() Duration {
	return Duration(units[u].ns)
}

// Imprecise reports whether u has a nominal rather than an exact length.
func (u Unit) Imprecise() bool {
	return units[u].imprecise
}

// String returns the singular English name of u.
func (u Unit) String() string {
	if int(u) >= len(units) {
		return "Unit(" + strconv.Itoa(int(u)) + ")"
	}
	return units[u].name
}

// Nanoseconds returns a Duration of n nanoseconds.
func Nanoseconds(n int64) Duration { return Duration(n) }

// Microseconds returns a Duration of n microseconds.
func Microseconds(n int64) Duration { return Duration(n) * Microsecond.Duration() }

// Milliseconds returns a Duration of n milliseconds.
func Milliseconds(n int64) Duration { return Duration(n) * Millisecond.Duration() }

// Seconds returns a Duration of n seconds.
func Seconds(n int64) Duration { return Duration(n) * Second.Duration() }

// Minutes returns a Duration of n minutes.
func Minutes(n int64) Duration { return Duration(n) * Minute.Duration() }

// Hours returns a Duration of n hours.
func Hours(n int64) Duration { return Duration(n) * Hour.Duration() }

// Days returns a Duration of n 24 hour days.
func Days(n int64) Duration { return Duration(n) * Day.Duration() }

// Weeks returns a Duration of n weeks.
func Weeks(n int64) Duration { return Duration(n) * Week.Duration() }

// ImpreciseMonths returns a Duration of n 30 day months.
func ImpreciseMonths(n int64) Duration { return Duration(n) * ImpreciseMonth.Duration() }

// ImpreciseYears returns a Duration of n 365 day years.
func ImpreciseYears(n int64) Duration { return Duration(n) * ImpreciseYear.Duration() }

// DurationFromStd converts a time.Duration.
func DurationFromStd(d time.Duration) Duration {
	return Duration(d)
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// As returns d in whole units of u, truncated toward zero.
func (d Duration) As(u Unit) int64 {
	return int64(d) / units[u].ns
}

// AsFractional returns d in units of u.
func (d Duration) AsFractional(u Unit) float64 {
	ns := units[u].ns
	return float64(int64(d)/ns) + float64(int64(d)%ns)/float64(ns)
}

// Add returns d+o.
func (d Duration) Add(o Duration) Duration { return d + o }

// Sub returns d-o.
func (d Duration) Sub(o Duration) Duration { return d - o }

// Abs returns the absolute value of d.
func (d Duration) Abs() Duration { return arith.Abs(d) }

// Inverse returns -d.
func (d Duration) Inverse() Duration { return -d }

// IsNegative reports whether d < 0.
func (d Duration) IsNegative() bool { return d < 0 }

// Compare returns -1, 0 or +1 depending on whether d is shorter than, equal
// to or longer than o.
func (d Duration) Compare(o Duration) int { return cmpInt(int64(d), int64(o)) }

// Less reports whether d < o.
func (d Duration) Less(o Duration) bool { return d < o }

// LessOrEqual reports whether d <= o.
func (d Duration) LessOrEqual(o Duration) bool { return d <= o }

// Greater reports whether d > o.
func (d Duration) Greater(o Duration) bool { return d > o }

// GreaterOrEqual reports whether d >= o.
func (d Duration) GreaterOrEqual(o Duration) bool { return d >= o }

// String is d.Format().
func (d Duration) String() string {
	return d.Format()
}

// Format renders d for humans. The units are chosen from the magnitude of d:
//
//	at least a year:   ~years, weeks, days, hours and minutes
//	at least a week:   weeks, days, hours and minutes
//	at least a day:    days, hours and minutes
//	at least an hour:  hours, minutes and seconds with 2 decimals
//	at least a minute: minutes and seconds with 3 decimals
//	at least a second: seconds with 3 decimals
//	at least 1ms:      milliseconds
//	otherwise:         nanoseconds
//
// For example "13 hours, 0 minutes, and 0.00 seconds".
func (d Duration) Format() string {
	switch a := d.Abs(); {
	case a >= ImpreciseYear.Duration():
		return d.FormatAs([]Unit{ImpreciseYear, Week, Day, Hour, Minute}, 0)
	case a >= Week.Duration():
		return d.FormatAs([]Unit{Week, Day, Hour, Minute}, 0)
	case a >= Day.Duration():
		return d.FormatAs([]Unit{Day, Hour, Minute}, 0)
	case a >= Hour.Duration():
		return d.FormatAs([]Unit{Hour, Minute, Second}, 2)
	case a >= Minute.Duration():
		return d.FormatAs([]Unit{Minute, Second}, 3)
	case a >= Second.Duration():
		return d.FormatAs([]Unit{Second}, 3)
	case a >= Millisecond.Duration():
		return d.FormatAs([]Unit{Millisecond}, 0)
	}
	return d.FormatAs([]Unit{Nanosecond}, 0)
}

// FormatIn renders d in a single unit with the given number of decimals.
func (d Duration) FormatIn(u Unit, decimals int) string {
	return d.FormatAs([]Unit{u}, decimals)
}

// FormatAs renders d as a list of units, largest first. Every unit but the
// last gets the whole count left after the units before it; the last gets
// the remainder with the given number of decimals, truncated.
func (d Duration) FormatAs(us []Unit, decimals int) string {
	segs := make([]string, 0, len(us))
	rest := int64(d)
	for i, u := range us {
		ns := units[u].ns
		whole, frac := rest/ns, rest%ns
		var num string
		if i < len(us)-1 {
			num = strconv.FormatInt(whole, 10)
			rest = frac
			frac = 0
		} else {
			num = formatDecimal(whole, frac, ns, decimals)
		}
		segs = append(segs, segment(u, num, (whole == 1 || whole == -1) && frac == 0))
	}

	switch len(segs) {
	case 0:
		return ""
	case 1:
		return segs[0]
	case 2:
		return segs[0] + " and " + segs[1]
	}
	return strings.Join(segs[:len(segs)-1], ", ") + ", and " + segs[len(segs)-1]
}

func segment(u Unit, num string, singular bool) string {
	var b strings.Builder
	if units[u].imprecise {
		b.WriteByte('~')
	}
	b.WriteString(num)
	b.WriteByte(' ')
	b.WriteString(units[u].name)
	if !singular {
		b.WriteByte('s')
	}
	return b.String()
}

// formatDecimal renders whole + frac/ns with decimals digits, truncated.
// whole and frac share a sign.
func formatDecimal(whole, frac, ns int64, decimals int) string {
	decimals = min(max(decimals, 0), 18)
	neg := whole < 0 || frac < 0
	if whole < 0 {
		whole = -whole
	}
	if frac < 0 {
		frac = -frac
	}
	b := make([]byte, 0, 24)
	if neg {
		b = append(b, '-')
	}
	b = strconv.AppendInt(b, whole, 10)
	if decimals == 0 {
		return string(b)
	}
	hi, lo := bits.Mul64(uint64(frac), uint64(pow10(decimals)))
	q, _ := bits.Div64(hi, lo, uint64(ns))
	b = append(b, '.')
	return string(appendInt(b, int(q), decimals))
}
