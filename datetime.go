// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import (
	"strings"
	"time"

	"gonih.org/civil/internal/arith"
)

// A NaiveDateTime is a date and a time of day without an offset: a wall
// clock reading whose relation to UTC is unknown.
type NaiveDateTime struct {
	date Date
	time Time
}

// NewNaiveDateTime combines d and t.
func NewNaiveDateTime(d Date, t Time) NaiveDateTime {
	return NaiveDateTime{d, t}
}

// Date returns the date of n.
func (n NaiveDateTime) Date() Date { return n.date }

// Time returns the time of day of n.
func (n NaiveDateTime) Time() Time { return n.time }

// WithOffset returns n as a reading at offset o.
func (n NaiveDateTime) WithOffset(o Offset) DateTime {
	return DateTime{n, o}
}

// AddDuration returns n+d, carrying whole days into the date. The result has
// the precision of n.
func (n NaiveDateTime) AddDuration(d Duration) NaiveDateTime {
	days, ns := arith.Norm(n.date.UnixDays(), n.time.Nanoseconds()+int64(d), nsPerDay)
	t := TimeFromNanoseconds(ns).WithPrecision(n.time.prec)
	return NaiveDateTime{DateFromUnixDays(days), t}
}

// SubtractDuration returns n-d.
func (n NaiveDateTime) SubtractDuration(d Duration) NaiveDateTime {
	return n.AddDuration(-d)
}

// Sub returns the duration n-u. Like all Durations it only spans about 292
// years before overflowing.
func (n NaiveDateTime) Sub(u NaiveDateTime) Duration {
	days := n.date.UnixDays() - u.date.UnixDays()
	return Duration(days*nsPerDay + n.time.Nanoseconds() - u.time.Nanoseconds())
}

// Compare returns -1, 0 or +1 depending on whether n is before, equal to or
// after u.
func (n NaiveDateTime) Compare(u NaiveDateTime) int {
	if c := n.date.Compare(u.date); c != 0 {
		return c
	}
	return n.time.Compare(u.time)
}

// Before reports whether n is earlier than u.
func (n NaiveDateTime) Before(u NaiveDateTime) bool { return n.Compare(u) < 0 }

// After reports whether n is later than u.
func (n NaiveDateTime) After(u NaiveDateTime) bool { return n.Compare(u) > 0 }

// Equal reports whether n and u are the same reading.
func (n NaiveDateTime) Equal(u NaiveDateTime) bool { return n.Compare(u) == 0 }

// BeforeOrEqual reports whether n is not later than u.
func (n NaiveDateTime) BeforeOrEqual(u NaiveDateTime) bool { return n.Compare(u) <= 0 }

// AfterOrEqual reports whether n is not earlier than u.
func (n NaiveDateTime) AfterOrEqual(u NaiveDateTime) bool { return n.Compare(u) >= 0 }

// UnixNano returns n read as UTC in nanoseconds since the Unix epoch. It
// overflows outside the years 1678 through 2261.
func (n NaiveDateTime) UnixNano() int64 {
	return n.date.UnixDays()*nsPerDay + n.time.Nanoseconds()
}

// Unix returns n read as UTC in seconds since the Unix epoch.
func (n NaiveDateTime) Unix() int64 {
	return n.date.UnixDays()*86400 + n.time.Nanoseconds()/1e9
}

// UnixMilli returns n read as UTC in milliseconds since the Unix epoch.
func (n NaiveDateTime) UnixMilli() int64 {
	return n.date.UnixDays()*86_400_000 + n.time.Nanoseconds()/1e6
}

// NaiveFromUnixNano returns the reading ns nanoseconds after the Unix epoch.
func NaiveFromUnixNano(ns int64) NaiveDateTime {
	return NaiveDateTime{
		DateFromUnixDays(arith.FloorDiv(ns, nsPerDay)),
		TimeFromNanoseconds(ns),
	}
}

// String returns n as {date}T{time}.
func (n NaiveDateTime) String() string {
	return string(n.appendISO(make([]byte, 0, 29)))
}

func (n NaiveDateTime) appendISO(b []byte) []byte {
	b = n.date.appendISO(b)
	b = append(b, 'T')
	return n.time.appendISO(b)
}

// ParseNaive parses {date}T{time}, where date is anything ParseDate accepts
// and time is anything ParseTime accepts. The separator may also be a
// lowercase t or a space.
func ParseNaive(s string) (NaiveDateTime, error) {
	ds, ts, ok := splitDateTime(s)
	if !ok {
		if _, err := ParseDate(s); err == nil {
			return NaiveDateTime{}, parseErr(ErrMissingComponent, "datetime", s, "no time")
		}
		return NaiveDateTime{}, parseErr(ErrInvalidFormat, "datetime", s, "expected {date}T{time}")
	}
	d, err := ParseDate(ds)
	if err != nil {
		return NaiveDateTime{}, withValue(err, "datetime", s)
	}
	t, err := ParseTime(ts)
	if err != nil {
		return NaiveDateTime{}, withValue(err, "datetime", s)
	}
	return NaiveDateTime{d, t}, nil
}

// MustParseNaive is like ParseNaive but panics on error.
func MustParseNaive(s string) NaiveDateTime {
	return must(ParseNaive(s))
}

// splitDateTime splits s at the date/time separator. A space only counts
// after the eight characters a date takes at least, so that dates delimited
// by spaces are not split. Later spaces, such as one before an offset, stay
// in rest.
func splitDateTime(s string) (date, rest string, ok bool) {
	if i := strings.IndexAny(s, "Tt"); i >= 0 {
		return s[:i], s[i+1:], true
	}
	if len(s) > 8 {
		if i := strings.IndexByte(s[8:], ' '); i >= 0 {
			return s[:8+i], s[8+i+1:], true
		}
	}
	return "", "", false
}

// MarshalText implements the encoding.TextMarshaler interface.
func (n NaiveDateTime) MarshalText() ([]byte, error) {
	return n.appendISO(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (n *NaiveDateTime) UnmarshalText(b []byte) error {
	v, err := ParseNaive(string(b))
	if err == nil {
		*n = v
	}
	return err
}

// A DateTime is a wall clock reading at a known offset from UTC, which makes
// it an instant. DateTimes compare by instant; use == only to also compare
// offsets and precisions.
type DateTime struct {
	naive  NaiveDateTime
	offset Offset
}

// NewDateTime combines d, t and o.
func NewDateTime(d Date, t Time, o Offset) DateTime {
	return DateTime{NaiveDateTime{d, t}, o}
}

// DateTimeFromTime converts t, keeping its offset. It fails if the year of t
// is outside [MinYear, MaxYear] or the offset of t's location is out of
// bounds.
func DateTimeFromTime(t time.Time) (DateTime, error) {
	if y := t.Year(); y < MinYear || y > MaxYear {
		return DateTime{}, boundsErr("datetime", "year %d not in [%d, %d]", y, MinYear, MaxYear)
	}
	_, sec := t.Zone()
	o, err := NewOffset(sec / 60)
	if err != nil {
		return DateTime{}, err
	}
	c := Time{hour: t.Hour(), minute: t.Minute(), second: t.Second(), nano: t.Nanosecond(), prec: NanoPrecision}
	return DateTime{NaiveDateTime{DateFromTime(t), c}, o}, nil
}

// DateTimeFromUnixNano returns the instant ns nanoseconds after the Unix
// epoch, read at offset o.
func DateTimeFromUnixNano(ns int64, o Offset) DateTime {
	return NaiveFromUnixNano(ns).WithOffset(UTC).ToOffset(o)
}

// Naive returns the wall clock reading of dt.
func (dt DateTime) Naive() NaiveDateTime { return dt.naive }

// Date returns the local date of dt.
func (dt DateTime) Date() Date { return dt.naive.date }

// Time returns the local time of day of dt.
func (dt DateTime) Time() Time { return dt.naive.time }

// Offset returns the offset of dt.
func (dt DateTime) Offset() Offset { return dt.offset }

// ToUTC returns the same instant at offset zero.
func (dt DateTime) ToUTC() DateTime {
	return DateTime{dt.naive.SubtractDuration(dt.offset.Duration()), UTC}
}

// ToOffset returns the same instant read at offset o.
func (dt DateTime) ToOffset(o Offset) DateTime {
	return DateTime{dt.ToUTC().naive.AddDuration(o.Duration()), o}
}

// ToTimezone returns the same instant read in the named zone. The offset of
// the zone at that instant is looked up with p.
func (dt DateTime) ToTimezone(p ZoneProvider, zone string) (DateTime, error) {
	o, err := p.Offset(zone, dt)
	if err != nil {
		return DateTime{}, err
	}
	return dt.ToOffset(o), nil
}

// ToLocal returns the same instant read in the local zone of p.
func (dt DateTime) ToLocal(p ZoneProvider) (DateTime, error) {
	return dt.ToTimezone(p, p.Local())
}

// StdTime returns dt as a time.Time in a fixed zone. 24:00:00 and leap
// seconds are normalized into the next day or minute.
func (dt DateTime) StdTime() time.Time {
	t := dt.naive.time
	return dt.naive.date.Time(t.hour, t.minute, t.second, t.nano, dt.offset.Location())
}

// AddDuration returns dt+d at the same offset.
func (dt DateTime) AddDuration(d Duration) DateTime {
	return DateTime{dt.naive.AddDuration(d), dt.offset}
}

// SubtractDuration returns dt-d at the same offset.
func (dt DateTime) SubtractDuration(d Duration) DateTime {
	return DateTime{dt.naive.SubtractDuration(d), dt.offset}
}

// Sub returns the duration dt-u between the two instants.
func (dt DateTime) Sub(u DateTime) Duration {
	return dt.ToUTC().naive.Sub(u.ToUTC().naive)
}

// Compare returns -1, 0 or +1 depending on whether dt is before, equal to or
// after u as instants.
func (dt DateTime) Compare(u DateTime) int {
	return dt.ToUTC().naive.Compare(u.ToUTC().naive)
}

// Before reports whether dt is earlier than u.
func (dt DateTime) Before(u DateTime) bool { return dt.Compare(u) < 0 }

// After reports whether dt is later than u.
func (dt DateTime) After(u DateTime) bool { return dt.Compare(u) > 0 }

// Equal reports whether dt and u are the same instant.
func (dt DateTime) Equal(u DateTime) bool { return dt.Compare(u) == 0 }

// BeforeOrEqual reports whether dt is not later than u.
func (dt DateTime) BeforeOrEqual(u DateTime) bool { return dt.Compare(u) <= 0 }

// AfterOrEqual reports whether dt is not earlier than u.
func (dt DateTime) AfterOrEqual(u DateTime) bool { return dt.Compare(u) >= 0 }

// UnixNano returns dt in nanoseconds since the Unix epoch.
func (dt DateTime) UnixNano() int64 { return dt.ToUTC().naive.UnixNano() }

// Unix returns dt in seconds since the Unix epoch.
func (dt DateTime) Unix() int64 { return dt.ToUTC().naive.Unix() }

// UnixMilli returns dt in milliseconds since the Unix epoch.
func (dt DateTime) UnixMilli() int64 { return dt.ToUTC().naive.UnixMilli() }

// String returns dt as {date}T{time}{offset}, with offset "Z" for UTC and
// ±HH:MM otherwise.
func (dt DateTime) String() string {
	return string(dt.appendISO(make([]byte, 0, 35)))
}

func (dt DateTime) appendISO(b []byte) []byte {
	b = dt.naive.appendISO(b)
	if dt.offset == UTC {
		return append(b, 'Z')
	}
	return dt.offset.appendISO(b, true)
}

// ParseDateTime parses {date}T{time}{offset}. See ParseNaive and ParseOffset
// for the accepted parts.
func ParseDateTime(s string) (DateTime, error) {
	ds, rest, ok := splitDateTime(s)
	if !ok {
		// ParseNaive tells a bare date from garbage.
		_, err := ParseNaive(s)
		return DateTime{}, withValue(err, "datetime", s)
	}
	i := strings.IndexAny(rest, "Zz+-")
	if i < 0 {
		i = len(rest)
	}
	n, err := ParseNaive(ds + "T" + strings.TrimRight(rest[:i], " "))
	if err != nil {
		return DateTime{}, withValue(err, "datetime", s)
	}
	if i == len(rest) {
		return DateTime{}, parseErr(ErrMissingComponent, "datetime", s, "no offset")
	}
	o, m, err := scanOffset(rest[i:])
	if err != nil {
		return DateTime{}, withValue(err, "datetime", s)
	}
	if i+m != len(rest) {
		return DateTime{}, parseErr(ErrInvalidFormat, "datetime", s, "extra text after offset")
	}
	return DateTime{n, o}, nil
}

// MustParseDateTime is like ParseDateTime but panics on error.
func MustParseDateTime(s string) DateTime {
	return must(ParseDateTime(s))
}

// MarshalText implements the encoding.TextMarshaler interface.
func (dt DateTime) MarshalText() ([]byte, error) {
	return dt.appendISO(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (dt *DateTime) UnmarshalText(b []byte) error {
	v, err := ParseDateTime(string(b))
	if err == nil {
		*dt = v
	}
	return err
}
