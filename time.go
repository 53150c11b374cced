// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import (
	"fmt"
	"strconv"
	"strings"

	"gonih.org/civil/internal/arith"
)

// Precision is the resolution a Time is rendered with.
type Precision uint8

const (
	SecondPrecision Precision = iota
	MilliPrecision
	MicroPrecision
	NanoPrecision
)

// digits returns the number of fractional digits rendered for p.
func (p Precision) digits() int {
	return [...]int{0, 3, 6, 9}[p]
}

// step returns the number of nanoseconds in one unit of p.
func (p Precision) step() int64 {
	return [...]int64{1e9, 1e6, 1e3, 1}[p]
}

func (p Precision) String() string {
	switch p {
	case SecondPrecision:
		return "second"
	case MilliPrecision:
		return "millisecond"
	case MicroPrecision:
		return "microsecond"
	case NanoPrecision:
		return "nanosecond"
	}
	return "Precision(" + strconv.Itoa(int(p)) + ")"
}

const nsPerDay = 86_400_000_000_000

// A Time is a time of day with a precision. Besides the regular range
// 00:00:00 through 23:59:59.999999999 it can hold the end of the day,
// 24:00:00, and a leap second, 23:59:60.
//
// The precision only affects formatting. Use Equal or Compare rather than ==,
// which also compares precisions.
type Time struct {
	hour, minute, second int
	nano                 int
	prec                 Precision
}

// Midnight is the first instant of a day.
var Midnight = Time{}

// EndOfDay is 24:00:00, the instant a day ends.
var EndOfDay = Time{hour: 24}

// NewTime returns the time with second precision.
func NewTime(hour, minute, second int) (Time, error) {
	return newTime(hour, minute, second, 0, SecondPrecision)
}

// NewTimeMilli returns the time with millisecond precision.
func NewTimeMilli(hour, minute, second, milli int) (Time, error) {
	if milli < 0 || milli > 999 {
		return Time{}, boundsErr("time", "millisecond %d not in [0, 999]", milli)
	}
	return newTime(hour, minute, second, milli*1e6, MilliPrecision)
}

// NewTimeMicro returns the time with microsecond precision.
func NewTimeMicro(hour, minute, second, micro int) (Time, error) {
	if micro < 0 || micro > 999_999 {
		return Time{}, boundsErr("time", "microsecond %d not in [0, 999999]", micro)
	}
	return newTime(hour, minute, second, micro*1e3, MicroPrecision)
}

// NewTimeNano returns the time with nanosecond precision.
func NewTimeNano(hour, minute, second, nano int) (Time, error) {
	if nano < 0 || nano > 999_999_999 {
		return Time{}, boundsErr("time", "nanosecond %d not in [0, 999999999]", nano)
	}
	return newTime(hour, minute, second, nano, NanoPrecision)
}

// MustTime is like NewTime but panics on invalid input.
func MustTime(hour, minute, second int) Time {
	return must(NewTime(hour, minute, second))
}

// MustTimeMilli is like NewTimeMilli but panics on invalid input.
func MustTimeMilli(hour, minute, second, milli int) Time {
	return must(NewTimeMilli(hour, minute, second, milli))
}

// MustTimeMicro is like NewTimeMicro but panics on invalid input.
func MustTimeMicro(hour, minute, second, micro int) Time {
	return must(NewTimeMicro(hour, minute, second, micro))
}

// MustTimeNano is like NewTimeNano but panics on invalid input.
func MustTimeNano(hour, minute, second, nano int) Time {
	return must(NewTimeNano(hour, minute, second, nano))
}

// newTime validates the clock fields. nano is already checked against the
// precision.
func newTime(hour, minute, second, nano int, prec Precision) (Time, error) {
	t := Time{hour, minute, second, nano, prec}
	switch {
	case hour == 24:
		if minute != 0 || second != 0 || nano != 0 {
			return Time{}, boundsErr("time", "only 24:00:00 is valid in hour 24")
		}
	case second == 60:
		if hour != 23 || minute != 59 {
			return Time{}, boundsErr("time", "leap second only valid at 23:59:60")
		}
	case hour < 0 || hour > 23:
		return Time{}, boundsErr("time", "hour %d not in [0, 23]", hour)
	case minute < 0 || minute > 59:
		return Time{}, boundsErr("time", "minute %d not in [0, 59]", minute)
	case second < 0 || second > 59:
		return Time{}, boundsErr("time", "second %d not in [0, 59]", second)
	}
	return t, nil
}

// TimeFromNanoseconds returns the time of day ns nanoseconds after midnight,
// with nanosecond precision. ns is wrapped into a single day, so -1 is
// 23:59:59.999999999. Carrying whole days is up to the caller.
func TimeFromNanoseconds(ns int64) Time {
	ns = arith.FloorMod(ns, nsPerDay)
	sec := ns / 1e9
	return Time{
		hour:   int(sec / 3600),
		minute: int(sec / 60 % 60),
		second: int(sec % 60),
		nano:   int(ns % 1e9),
		prec:   NanoPrecision,
	}
}

// TimeFromDuration is TimeFromNanoseconds(int64(d)).
func TimeFromDuration(d Duration) Time {
	return TimeFromNanoseconds(int64(d))
}

// Hour returns the hour of t, in [0, 24].
func (t Time) Hour() int { return t.hour }

// Minute returns the minute of t.
func (t Time) Minute() int { return t.minute }

// Second returns the second of t, in [0, 60].
func (t Time) Second() int { return t.second }

// Nanosecond returns the fraction of the second of t in nanoseconds.
func (t Time) Nanosecond() int { return t.nano }

// Precision returns the precision of t.
func (t Time) Precision() Precision { return t.prec }

// WithPrecision returns t with precision p, truncating digits p cannot hold.
func (t Time) WithPrecision(p Precision) Time {
	t.nano -= t.nano % int(p.step())
	t.prec = p
	return t
}

// Nanoseconds returns the number of nanoseconds since midnight. 24:00:00 and
// the leap second 23:59:60 both give 86400 seconds.
func (t Time) Nanoseconds() int64 {
	sec := int64(t.hour)*3600 + int64(t.minute)*60 + int64(t.second)
	return sec*1e9 + int64(t.nano)
}

// Duration returns the time elapsed since midnight.
func (t Time) Duration() Duration {
	return Duration(t.Nanoseconds())
}

// AddDuration returns t+d, wrapped around midnight, with the precision of t.
func (t Time) AddDuration(d Duration) Time {
	return TimeFromNanoseconds(t.Nanoseconds() + int64(d)).WithPrecision(t.prec)
}

// SubtractDuration returns t-d, wrapped around midnight, with the precision
// of t.
func (t Time) SubtractDuration(d Duration) Time {
	return TimeFromNanoseconds(t.Nanoseconds() - int64(d)).WithPrecision(t.prec)
}

// Sub returns the duration t-u.
func (t Time) Sub(u Time) Duration {
	return Duration(t.Nanoseconds() - u.Nanoseconds())
}

// LeftInDay returns the time remaining until the end of the day. For midnight
// that is the whole day, 24:00:00.
func (t Time) LeftInDay() Time {
	left := nsPerDay - t.Nanoseconds()
	if left >= nsPerDay {
		return Time{hour: 24, prec: t.prec}
	}
	return TimeFromNanoseconds(left).WithPrecision(t.prec)
}

// Compare returns -1, 0 or +1 depending on whether t is before, equal to or
// after u. Precision is not taken into account.
func (t Time) Compare(u Time) int {
	return cmpInt(t.Nanoseconds(), u.Nanoseconds())
}

// Before reports whether t is earlier than u.
func (t Time) Before(u Time) bool { return t.Compare(u) < 0 }

// After reports whether t is later than u.
func (t Time) After(u Time) bool { return t.Compare(u) > 0 }

// Equal reports whether t and u are the same time of day.
func (t Time) Equal(u Time) bool { return t.Compare(u) == 0 }

// BeforeOrEqual reports whether t is not later than u.
func (t Time) BeforeOrEqual(u Time) bool { return t.Compare(u) <= 0 }

// AfterOrEqual reports whether t is not earlier than u.
func (t Time) AfterOrEqual(u Time) bool { return t.Compare(u) >= 0 }

// String returns t as HH:MM:SS, followed by 3, 6 or 9 fractional digits for
// milli, micro and nanosecond precision.
func (t Time) String() string {
	return string(t.appendISO(make([]byte, 0, 18)))
}

func (t Time) appendISO(b []byte) []byte {
	b = appendInt(b, t.hour, 2)
	b = append(b, ':')
	b = appendInt(b, t.minute, 2)
	b = append(b, ':')
	b = appendInt(b, t.second, 2)
	if n := t.prec.digits(); n > 0 {
		b = append(b, '.')
		b = appendInt(b, t.nano/int(pow10(9-n)), n)
	}
	return b
}

// GoString implements fmt.GoStringer.
func (t Time) GoString() string {
	switch t.prec {
	case MilliPrecision:
		return fmt.Sprintf("civil.MustTimeMilli(%d, %d, %d, %d)", t.hour, t.minute, t.second, t.nano/1e6)
	case MicroPrecision:
		return fmt.Sprintf("civil.MustTimeMicro(%d, %d, %d, %d)", t.hour, t.minute, t.second, t.nano/1e3)
	case NanoPrecision:
		return fmt.Sprintf("civil.MustTimeNano(%d, %d, %d, %d)", t.hour, t.minute, t.second, t.nano)
	}
	return fmt.Sprintf("civil.MustTime(%d, %d, %d)", t.hour, t.minute, t.second)
}

// ParseTime parses HH:MM:SS with an optional fraction, HH:MM, or the compact
// forms HHMMSS and HHMM. The precision is taken from the number of
// fractional digits: none gives seconds, up to 3 milli, up to 6 micro and up
// to 9 nanoseconds.
func ParseTime(s string) (Time, error) {
	clock, frac, hasFrac := strings.Cut(s, ".")
	var hh, mm, ss string
	if f := strings.Split(clock, ":"); len(f) > 1 {
		switch len(f) {
		case 2:
			hh, mm = f[0], f[1]
		case 3:
			hh, mm, ss = f[0], f[1], f[2]
		default:
			return Time{}, parseErr(ErrInvalidFormat, "time", s, "expected HH:MM:SS")
		}
	} else {
		switch len(clock) {
		case 4:
			hh, mm = clock[:2], clock[2:]
		case 6:
			hh, mm, ss = clock[:2], clock[2:4], clock[4:]
		default:
			return Time{}, parseErr(ErrInvalidFormat, "time", s, "expected HH:MM:SS")
		}
	}
	if ss == "" && hasFrac {
		return Time{}, parseErr(ErrInvalidFormat, "time", s, "fraction without seconds")
	}
	if len(hh) != 2 || len(mm) != 2 || !isDigits(hh) || !isDigits(mm) || (ss != "" && (len(ss) != 2 || !isDigits(ss))) {
		return Time{}, parseErr(ErrInvalidFormat, "time", s, "expected two digit fields")
	}
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	sec := 0
	if ss != "" {
		sec, _ = strconv.Atoi(ss)
	}

	var t Time
	var err error
	if !hasFrac {
		t, err = NewTime(h, m, sec)
	} else {
		if len(frac) == 0 || len(frac) > 9 || !isDigits(frac) {
			return Time{}, parseErr(ErrInvalidFormat, "time", s, "fraction must have 1 to 9 digits")
		}
		t, err = timeWithFraction(h, m, sec, frac)
	}
	if err != nil {
		return Time{}, withValue(err, "time", s)
	}
	return t, nil
}

// MustParseTime is like ParseTime but panics on error.
func MustParseTime(s string) Time {
	return must(ParseTime(s))
}

// timeWithFraction builds a time from a string of 1 to 9 fractional digits,
// choosing the smallest precision that holds them.
func timeWithFraction(h, m, s int, frac string) (Time, error) {
	n, _ := strconv.Atoi(frac)
	switch {
	case len(frac) <= 3:
		return NewTimeMilli(h, m, s, n*int(pow10(3-len(frac))))
	case len(frac) <= 6:
		return NewTimeMicro(h, m, s, n*int(pow10(6-len(frac))))
	}
	return NewTimeNano(h, m, s, n*int(pow10(9-len(frac))))
}

// MarshalText implements the encoding.TextMarshaler interface.
func (t Time) MarshalText() ([]byte, error) {
	return t.appendISO(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (t *Time) UnmarshalText(b []byte) error {
	v, err := ParseTime(string(b))
	if err == nil {
		*t = v
	}
	return err
}

func pow10(n int) int64 {
	p := int64(1)
	for ; n > 0; n-- {
		p *= 10
	}
	return p
}
