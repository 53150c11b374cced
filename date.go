// Copyright 2009 The Go Authors.
// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package civil contains civil-calendar value types: dates, times of day,
// UTC offsets, naive and offset-qualified datetimes, durations and calendar
// periods.
//
// This package differs from the standard library time package in a few
// ways:
//
//   - A Date has no clock or timezone attached. Adding days to it never goes
//     through a time.Duration and never observes daylight savings.
//   - A Time is a wall clock reading with an explicit precision. The
//     precision decides how many fractional digits are rendered, while all
//     arithmetic and comparisons use the full nanosecond value.
//   - A Period is a span between two datetimes that counts days, months and
//     years the way a calendar does, which is different from dividing a
//     Duration by a fixed unit length.
//   - Layouts use a day.js style directive language (YYYY-MM-DD HH:mm:ss)
//     rather than the reference time of package time.
//
// All types are immutable values and safe for concurrent use. Leap seconds
// can be represented (23:59:60) but are not preserved through arithmetic.
// There is no timezone database in this package; DateTime.ToTimezone takes a
// ZoneProvider.
package civil

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gonih.org/civil/internal/arith"
)

// Valid range of years for NewDate and ParseDate. Years below 1000 are
// rejected to catch two-digit years that slipped through.
const (
	MinYear = 1000
	MaxYear = 9999
)

const (
	// Days in a 400 year Gregorian cycle.
	daysPer400Years = 146097

	// Days from 0000-03-01 to 1970-01-01.
	unixEpochDays = 719468
)

// A Date is a day in the proleptic Gregorian calendar. The zero value is not a
// valid date. Dates can be compared with ==.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate returns the given date, or an error wrapping ErrOutOfBounds if the
// year is outside [MinYear, MaxYear] or month or day do not exist.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, boundsErr("date", "year %d not in [%d, %d]", year, MinYear, MaxYear)
	}
	if month < time.January || month > time.December {
		return Date{}, boundsErr("date", "month %d not in [1, 12]", int(month))
	}
	if n := DaysInMonth(month, year); day < 1 || day > n {
		return Date{}, boundsErr("date", "day %d not in [1, %d] for %v %d", day, n, month, year)
	}
	return Date{year, month, day}, nil
}

// MustDate is like NewDate but panics if the date is invalid. It is meant for
// dates known to be valid at the call site.
func MustDate(year int, month time.Month, day int) Date {
	return must(NewDate(year, month, day))
}

// DateFromTime returns the date of t in t's location. Like DateFromUnixDays,
// the result is not range checked.
func DateFromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{y, m, d}
}

// DateFromUnixDays returns the date n days after 1970-01-01. The result is
// not range checked, so it can carry years outside [MinYear, MaxYear].
func DateFromUnixDays(n int64) Date {
	// https://howardhinnant.github.io/date_algorithms.html#civil_from_days
	z := n + unixEpochDays
	e := z
	if z < 0 {
		e = z - (daysPer400Years - 1)
	}
	era := e / daysPer400Years
	doe := z - era*daysPer400Years                         // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365 // [0, 399]
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100) // [0, 365], counted from March 1st
	mp := (5*doy + 2) / 153                  // [0, 11], 0 is March
	d := doy - (153*mp+2)/5 + 1              // [1, 31]
	m := mp + 3
	if mp >= 10 {
		m = mp - 9
		y++
	}
	return Date{int(y), time.Month(m), int(d)}
}

// UnixDays returns the number of days from 1970-01-01 to d.
func (d Date) UnixDays() int64 {
	// https://howardhinnant.github.io/date_algorithms.html#days_from_civil
	y, m := int64(d.year), int64(d.month)
	if m <= 2 {
		y--
	}
	era := arith.FloorDiv(y, 400)
	yoe := y - era*400
	mp := m - 3
	if m <= 2 {
		mp = m + 9
	}
	doy := (153*mp+2)/5 + int64(d.day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*daysPer400Years + doe - unixEpochDays
}

// Year returns the year of d.
func (d Date) Year() int { return d.year }

// Month returns the month of d.
func (d Date) Month() time.Month { return d.month }

// Day returns the day of the month of d.
func (d Date) Day() int { return d.day }

// Date returns year, month and day of d.
func (d Date) Date() (year int, month time.Month, day int) {
	return d.year, d.month, d.day
}

// MonthYear returns the calendar month d lies in.
func (d Date) MonthYear() MonthYear {
	return MonthYear{d.month, d.year}
}

// YearDay returns the day of the year specified by d, in the range [1,365] for
// non-leap years, and [1,366] in leap years.
func (d Date) YearDay() int {
	n := daysBefore[d.month-1] + d.day
	if d.month > time.February && IsLeapYear(d.year) {
		n++
	}
	return n
}

// monthCodes are the month offsets of the key value weekday method.
var monthCodes = [...]int{
	time.January:   0,
	time.February:  3,
	time.March:     3,
	time.April:     6,
	time.May:       1,
	time.June:      4,
	time.July:      6,
	time.August:    2,
	time.September: 5,
	time.October:   0,
	time.November:  3,
	time.December:  5,
}

// Weekday returns the day of the week of d.
//
// It is computed from century, year, month and leap codes and is only
// guaranteed to be correct for the years 1753 through 2299.
func (d Date) Weekday() time.Weekday {
	yy := arith.FloorMod(d.year, 100)
	century := arith.FloorDiv(d.year, 100)
	code := yy + yy/4
	code += 2 * (3 - arith.FloorMod(century, 4))
	code += monthCodes[d.month]
	code += d.day
	if d.month <= time.February && IsLeapYear(d.year) {
		code--
	}
	return time.Weekday(arith.FloorMod(code, 7))
}

// AddDays returns the date n days after d. Negative n go backwards.
func (d Date) AddDays(n int) Date {
	if n < 0 {
		return d.SubtractDays(-n)
	}
	year, month, day := d.year, d.month, d.day
	for {
		left := DaysInMonth(month, year) - day
		if n <= left {
			return Date{year, month, day + n}
		}
		// Step onto the first of the next month.
		n -= left + 1
		day = 1
		if month == time.December {
			month, year = time.January, year+1
		} else {
			month++
		}
	}
}

// SubtractDays returns the date n days before d. Negative n go forwards.
func (d Date) SubtractDays(n int) Date {
	if n < 0 {
		return d.AddDays(-n)
	}
	year, month, day := d.year, d.month, d.day
	for {
		if n < day {
			return Date{year, month, day - n}
		}
		// Step onto the last day of the previous month.
		n -= day
		if month == time.January {
			month, year = time.December, year-1
		} else {
			month--
		}
		day = DaysInMonth(month, year)
	}
}

// DaysSince returns the number of days from o to d, negative if o is later.
func (d Date) DaysSince(o Date) int {
	return int(d.UnixDays() - o.UnixDays())
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.year != o.year:
		return cmpInt(d.year, o.year)
	case d.month != o.month:
		return cmpInt(int(d.month), int(o.month))
	}
	return cmpInt(d.day, o.day)
}

// Before reports whether d is earlier than o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is later than o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// Equal reports whether d and o are the same date.
func (d Date) Equal(o Date) bool { return d == o }

// BeforeOrEqual reports whether d is not later than o.
func (d Date) BeforeOrEqual(o Date) bool { return d.Compare(o) <= 0 }

// AfterOrEqual reports whether d is not earlier than o.
func (d Date) AfterOrEqual(o Date) bool { return d.Compare(o) >= 0 }

func cmpInt[T int | int64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Time returns the given moment in time on d in the given location.
func (d Date) Time(hour, min, sec, nsec int, loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, hour, min, sec, nsec, loc)
}

// String returns d as YYYY-MM-DD.
func (d Date) String() string {
	return string(d.appendISO(make([]byte, 0, 10)))
}

func (d Date) appendISO(b []byte) []byte {
	b = appendInt(b, d.year, 4)
	b = append(b, '-')
	b = appendInt(b, int(d.month), 2)
	b = append(b, '-')
	return appendInt(b, d.day, 2)
}

// GoString implements fmt.GoStringer and formats d to be printed in Go source code.
func (d Date) GoString() string {
	return fmt.Sprintf("civil.MustDate(%d, %d, %d)", d.year, d.month, d.day)
}

// dateDelimiters are tried in order by ParseDate.
var dateDelimiters = []string{"-", "/", ".", "_", " "}

// ParseDate parses a date as YYYY-MM-DD. The delimiter may also be one of
// "/", ".", "_" or a space, or absent (YYYYMMDD). As a last resort, a ten
// character string is read as fixed-width 4-2-2 fields regardless of its
// delimiters.
//
// The first delimiter that splits s into three fields decides the format;
// field values are validated afterwards.
func ParseDate(s string) (Date, error) {
	for _, sep := range dateDelimiters {
		if f := strings.Split(s, sep); len(f) == 3 {
			return dateFromFields(s, f[0], f[1], f[2])
		}
	}
	switch {
	case len(s) == 8 && isDigits(s):
		return dateFromFields(s, s[:4], s[4:6], s[6:])
	case len(s) == 10:
		return dateFromFields(s, s[:4], s[5:7], s[8:])
	}
	return Date{}, parseErr(ErrInvalidFormat, "date", s, "expected YYYY-MM-DD")
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(s string) Date {
	return must(ParseDate(s))
}

func dateFromFields(s, ys, ms, ds string) (Date, error) {
	if len(ys) != 4 || !isDigits(ys) || !isDigits(ms) || !isDigits(ds) || len(ms) > 2 || len(ds) > 2 {
		return Date{}, parseErr(ErrInvalidFormat, "date", s, "expected YYYY-MM-DD")
	}
	y, _ := strconv.Atoi(ys)
	m, _ := strconv.Atoi(ms)
	dd, _ := strconv.Atoi(ds)
	d, err := NewDate(y, time.Month(m), dd)
	if err != nil {
		return Date{}, withValue(err, "date", s)
	}
	return d, nil
}

// MarshalText implements the encoding.TextMarshaler interface. The date is
// formatted as YYYY-MM-DD.
func (d Date) MarshalText() ([]byte, error) {
	return d.appendISO(make([]byte, 0, 10)), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface, accepting
// everything ParseDate does.
func (d *Date) UnmarshalText(b []byte) error {
	v, err := ParseDate(string(b))
	if err == nil {
		*d = v
	}
	return err
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The date is
// represented as a [binary.Varint] of the number of days since 1970-01-01.
func (d Date) MarshalBinary() ([]byte, error) {
	b := make([]byte, binary.MaxVarintLen64)
	return b[:binary.PutVarint(b, d.UnixDays())], nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (d *Date) UnmarshalBinary(b []byte) error {
	v, i := binary.Varint(b)
	switch {
	case i == 0:
		return &Error{Kind: ErrInvalidFormat, Type: "date", Message: "encoded date truncated"}
	case i < 0:
		return &Error{Kind: ErrOutOfBounds, Type: "date", Message: "encoded date overflows int64"}
	case i != len(b):
		return &Error{Kind: ErrInvalidFormat, Type: "date", Message: "extra data after date"}
	}
	nd := DateFromUnixDays(v)
	if nd.year < MinYear || nd.year > MaxYear {
		return boundsErr("date", "year %d not in [%d, %d]", nd.year, MinYear, MaxYear)
	}
	*d = nd
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// appendInt appends v zero padded to width digits. Negative values get a
// leading minus sign in front of the padding.
func appendInt(b []byte, v, width int) []byte {
	if v < 0 {
		b = append(b, '-')
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v >= 10 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	i--
	buf[i] = byte('0' + v)
	for w := len(buf) - i; w < width; w++ {
		b = append(b, '0')
	}
	return append(b, buf[i:]...)
}
