// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import (
	"fmt"
	"time"
)

// Bounds of an Offset, in minutes: -12:00 through +14:00.
const (
	MinOffsetMinutes = -12 * 60
	MaxOffsetMinutes = 14 * 60
)

// An Offset is the difference of a local wall clock from UTC, in minutes.
// The zero value is UTC. Offsets can be compared with ==.
type Offset struct {
	minutes int
}

// UTC is the zero offset.
var UTC = Offset{}

// NewOffset returns the offset of the given number of minutes, or an error
// wrapping ErrOutOfBounds if it is outside [-12:00, +14:00].
func NewOffset(minutes int) (Offset, error) {
	if minutes < MinOffsetMinutes || minutes > MaxOffsetMinutes {
		return Offset{}, boundsErr("offset", "%d minutes not in [%d, %d]", minutes, MinOffsetMinutes, MaxOffsetMinutes)
	}
	return Offset{minutes}, nil
}

// MustOffset is like NewOffset but panics if minutes is out of bounds.
func MustOffset(minutes int) Offset {
	return must(NewOffset(minutes))
}

// OffsetFromLocation returns the offset of loc at instant t.
func OffsetFromLocation(loc *time.Location, t time.Time) (Offset, error) {
	_, sec := t.In(loc).Zone()
	return NewOffset(sec / 60)
}

// Minutes returns the offset in minutes.
func (o Offset) Minutes() int { return o.minutes }

// Duration returns the offset as a Duration.
func (o Offset) Duration() Duration {
	return Duration(o.minutes) * Minute.Duration()
}

// Location returns a fixed time.Location for o.
func (o Offset) Location() *time.Location {
	if o.minutes == 0 {
		return time.UTC
	}
	return time.FixedZone(o.String(), o.minutes*60)
}

// String returns o as ±HH:MM. A zero offset is rendered as "-00:00", never
// "Z"; callers that want "Z" have to special case UTC.
func (o Offset) String() string {
	return string(o.appendISO(make([]byte, 0, 6), true))
}

// sign returns the rendered sign of o.
func (o Offset) sign() byte {
	if o.minutes > 0 {
		return '+'
	}
	return '-'
}

func (o Offset) hm() (h, m int) {
	v := o.minutes
	if v < 0 {
		v = -v
	}
	return v / 60, v % 60
}

// appendISO appends ±HH:MM, or ±HHMM without colon.
func (o Offset) appendISO(b []byte, colon bool) []byte {
	h, m := o.hm()
	b = append(b, o.sign())
	b = appendInt(b, h, 2)
	if colon {
		b = append(b, ':')
	}
	return appendInt(b, m, 2)
}

// appendShort appends ±HH, followed by :MM if the minutes are not zero.
func (o Offset) appendShort(b []byte) []byte {
	h, m := o.hm()
	b = append(b, o.sign())
	b = appendInt(b, h, 2)
	if m != 0 {
		b = append(b, ':')
		b = appendInt(b, m, 2)
	}
	return b
}

// GoString implements fmt.GoStringer.
func (o Offset) GoString() string {
	return fmt.Sprintf("civil.MustOffset(%d)", o.minutes)
}

// ParseOffset parses "Z", "z", ±HH:MM, ±HHMM or ±HH.
func ParseOffset(s string) (Offset, error) {
	o, n, err := scanOffset(s)
	if err != nil {
		return Offset{}, withValue(err, "offset", s)
	}
	if n != len(s) {
		return Offset{}, parseErr(ErrInvalidFormat, "offset", s, "expected Z or ±HH:MM")
	}
	return o, nil
}

// MustParseOffset is like ParseOffset but panics on error.
func MustParseOffset(s string) Offset {
	return must(ParseOffset(s))
}

// offsetForms are tried in order when scanning an offset at the start of a
// value. Longer forms come first so that ±HH does not match the prefix of
// ±HH:MM.
var offsetForms = []struct {
	n     int
	colon bool
	mins  bool
}{
	{6, true, true},
	{5, false, true},
	{3, false, false},
}

// scanOffset reads an offset at the start of s and returns it with the
// number of bytes consumed.
func scanOffset(s string) (Offset, int, error) {
	if len(s) > 0 && (s[0] == 'Z' || s[0] == 'z') {
		return UTC, 1, nil
	}
	if len(s) == 0 || (s[0] != '+' && s[0] != '-') {
		return Offset{}, 0, parseErr(ErrInvalidFormat, "offset", s, "expected Z or ±HH:MM")
	}
	for _, f := range offsetForms {
		if len(s) < f.n {
			continue
		}
		v := s[:f.n]
		hh := v[1:3]
		var mm string
		switch {
		case f.colon:
			if v[3] != ':' {
				continue
			}
			mm = v[4:6]
		case f.mins:
			mm = v[3:5]
		}
		if !isDigits(hh) || (f.mins && !isDigits(mm)) {
			continue
		}
		h := int(hh[0]-'0')*10 + int(hh[1]-'0')
		m := 0
		if f.mins {
			m = int(mm[0]-'0')*10 + int(mm[1]-'0')
		}
		if m > 59 {
			return Offset{}, 0, boundsErr("offset", "minute %d not in [0, 59]", m)
		}
		total := h*60 + m
		if v[0] == '-' {
			total = -total
		}
		o, err := NewOffset(total)
		return o, f.n, err
	}
	return Offset{}, 0, parseErr(ErrInvalidFormat, "offset", s, "expected Z or ±HH:MM")
}

// MarshalText implements the encoding.TextMarshaler interface.
func (o Offset) MarshalText() ([]byte, error) {
	return o.appendISO(nil, true), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (o *Offset) UnmarshalText(b []byte) error {
	v, err := ParseOffset(string(b))
	if err == nil {
		*o = v
	}
	return err
}
